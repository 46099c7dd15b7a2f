// Package urlutil classifies candidate HTTP/HTTPS endpoint URLs.
//
// A client usually holds several candidate endpoints (a configured server list, a
// discovery result, a fallback default) and walks them until one is usable. A
// malformed or unsupported candidate is therefore an expected outcome, not a fault:
// CheckValidURL reports it with a ("", false) sentinel so the caller can move on.
// Parse returns the same verdict as an error when the reason matters.
//
// # Usage
//
// Check a single candidate:
//
//	endpoint, ok := urlutil.CheckValidURL(raw)
//	if !ok {
//		// try the next candidate
//	}
//
// Walk a candidate list:
//
//	endpoint, ok := urlutil.FirstValidURL(configured, discovered, "http://127.0.0.1:8848")
//
// Turn a bare server list into URLs:
//
//	var urls []string
//	for _, addr := range urlutil.SplitServerList("10.0.0.1:8848,10.0.0.2:8848") {
//		urls = append(urls, urlutil.NormalizeScheme(addr, "http"))
//	}
//	accepted := urlutil.ValidURLs(urls)
//
// # Validation Rules
//
// A candidate is accepted when:
//   - It is not empty
//   - It can be parsed by net/url.Parse
//   - It has a non-empty host (rejects "http://", "http://:8080", "http:host")
//   - Its scheme is http or https, compared case-insensitively
//
// # Canonical Form
//
// Accepted URLs are returned as url.URL.String() renders them. The scheme is
// lower-cased, host case is preserved, and escaping is re-encoded. Checking a
// returned URL again yields the same string.
//
// IPv6 literal hosts ("http://[::1]:8080") are accepted. Scheme-relative
// references ("//example.com") are rejected because they carry no scheme.
package urlutil
