package urlutil

import "errors"

// Rejection reasons reported by Classify.
const (
	ReasonEmpty             = "empty"
	ReasonMalformed         = "malformed"
	ReasonMissingHost       = "missing host"
	ReasonUnsupportedScheme = "unsupported scheme"
)

// Result is the verdict for one candidate URL.
type Result struct {
	Raw    string `json:"raw"`
	URL    string `json:"url,omitempty"`
	Valid  bool   `json:"valid"`
	Reason string `json:"reason,omitempty"`
}

// FirstValidURL returns the canonical form of the first acceptable candidate.
func FirstValidURL(candidates ...string) (string, bool) {
	for _, c := range candidates {
		if u, ok := CheckValidURL(c); ok {
			return u, true
		}
	}
	return "", false
}

// ValidURLs returns the canonical form of every acceptable candidate in order.
// Candidates that canonicalize to the same URL are returned once.
func ValidURLs(candidates []string) []string {
	seen := make(map[string]struct{}, len(candidates))
	result := make([]string, 0, len(candidates))
	for _, c := range candidates {
		u, ok := CheckValidURL(c)
		if !ok {
			continue
		}
		if _, dup := seen[u]; dup {
			continue
		}
		seen[u] = struct{}{}
		result = append(result, u)
	}
	return result
}

// Classify reports a verdict for each candidate, in order.
func Classify(candidates []string) []Result {
	results := make([]Result, 0, len(candidates))
	for _, c := range candidates {
		parsed, err := Parse(c)
		if err != nil {
			results = append(results, Result{Raw: c, Reason: reason(err)})
			continue
		}
		results = append(results, Result{Raw: c, URL: parsed.String(), Valid: true})
	}
	return results
}

func reason(err error) string {
	switch {
	case errors.Is(err, ErrEmpty):
		return ReasonEmpty
	case errors.Is(err, ErrMissingHost):
		return ReasonMissingHost
	case errors.Is(err, ErrUnsupportedScheme):
		return ReasonUnsupportedScheme
	default:
		return ReasonMalformed
	}
}
