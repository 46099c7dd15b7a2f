package urlutil

import (
	"errors"
	"fmt"
	neturl "net/url"
	"strings"
)

const (
	// SchemeHTTP is the plain HTTP scheme.
	SchemeHTTP = "http"
	// SchemeHTTPS is the TLS HTTP scheme.
	SchemeHTTPS = "https"
)

// Reasons a candidate URL is rejected.
var (
	ErrEmpty             = errors.New("url cannot be empty")
	ErrMalformed         = errors.New("invalid URL format")
	ErrMissingHost       = errors.New("url missing host/domain")
	ErrUnsupportedScheme = errors.New("url must use http:// or https://")
)

// Parse parses rawURL and checks that it is an absolute http or https URL with a host.
// A query or fragment that cannot be written back as a valid URI is malformed.
// The returned error wraps one of ErrEmpty, ErrMalformed, ErrMissingHost or
// ErrUnsupportedScheme.
//
// Example:
//
//	parsed, err := urlutil.Parse(userInput)
//	if errors.Is(err, urlutil.ErrUnsupportedScheme) {
//		return fmt.Errorf("endpoint must be http or https: %w", err)
//	}
func Parse(rawURL string) (*neturl.URL, error) {
	if rawURL == "" {
		return nil, ErrEmpty
	}

	parsed, err := neturl.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}

	if err := checkComponents(parsed); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}

	if parsed.Hostname() == "" {
		return nil, ErrMissingHost
	}

	if !IsHTTPScheme(parsed.Scheme) {
		if parsed.Scheme == "" {
			return nil, ErrUnsupportedScheme
		}
		return nil, fmt.Errorf("%w, got: %s", ErrUnsupportedScheme, parsed.Scheme)
	}

	return parsed, nil
}

// CheckValidURL returns the canonical form of rawURL and true when it is a usable
// http or https endpoint. Otherwise it returns "" and false.
//
// Rejection is not an error: callers are expected to try the next candidate.
func CheckValidURL(rawURL string) (string, bool) {
	parsed, err := Parse(rawURL)
	if err != nil {
		return "", false
	}
	return parsed.String(), true
}

// checkComponents rejects path, query or fragment text that url.URL.String
// would write out verbatim but that is not valid RFC 3986: bytes outside the
// component's character set and "%" not followed by two hex digits. net/url
// keeps a raw query as given and lets "[" and "]" through in paths and
// fragments.
func checkComponents(u *neturl.URL) error {
	if err := checkComponent("path", u.EscapedPath(), "/"); err != nil {
		return err
	}
	if err := checkComponent("query", u.RawQuery, "/?"); err != nil {
		return err
	}
	return checkComponent("fragment", u.EscapedFragment(), "/?")
}

func checkComponent(name, value, extra string) error {
	for i := 0; i < len(value); i++ {
		c := value[i]
		if c == '%' {
			if i+2 >= len(value) || !isHex(value[i+1]) || !isHex(value[i+2]) {
				return fmt.Errorf("invalid escape %q in %s", value[i:min(i+3, len(value))], name)
			}
			i += 2
			continue
		}
		if !isPathChar(c) && strings.IndexByte(extra, c) < 0 {
			return fmt.Errorf("invalid character %q in %s", c, name)
		}
	}
	return nil
}

// isPathChar reports whether c is an RFC 3986 pchar other than "%".
func isPathChar(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	return strings.IndexByte("-._~!$&'()*+,;=:@", c) >= 0
}

func isHex(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}

// IsHTTPScheme reports whether scheme is http or https, ignoring case.
func IsHTTPScheme(scheme string) bool {
	return strings.EqualFold(scheme, SchemeHTTP) || strings.EqualFold(scheme, SchemeHTTPS)
}

// NormalizeScheme prefixes defaultScheme to a bare server address such as
// "10.0.0.1:8848". A value that already carries a scheme ("://") is returned
// unchanged, even when that scheme is not http or https, so that the later
// check still sees and rejects it.
//
// Example:
//
//	normalized := urlutil.NormalizeScheme("example.com:8848", "http")
//	// Returns: "http://example.com:8848"
func NormalizeScheme(rawURL, defaultScheme string) string {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" || strings.Contains(rawURL, "://") {
		return rawURL
	}
	return defaultScheme + "://" + rawURL
}

// SplitServerList splits a comma or semicolon separated server list,
// trimming whitespace and dropping empty entries.
func SplitServerList(list string) []string {
	fields := strings.FieldsFunc(list, func(r rune) bool {
		return r == ',' || r == ';'
	})

	result := make([]string, 0, len(fields))
	for _, f := range fields {
		if f = strings.TrimSpace(f); f != "" {
			result = append(result, f)
		}
	}
	return result
}
