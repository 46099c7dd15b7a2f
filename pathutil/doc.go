// Package pathutil validates URL context paths used to namespace a client's endpoints.
//
// A context path is the path prefix a client prepends to every request, for example
// "/nacos" or "/api/v1". A value with consecutive separators ("/a//b", "//") is
// rejected outright: requests built from it would silently hit a different route.
// No normalization is attempted; the caller must fix the configured value.
//
// # Example
//
//	if err := pathutil.CheckContextPath(cfg.ContextPath); err != nil {
//	    return fmt.Errorf("invalid context path %q: %w", cfg.ContextPath, err)
//	}
//
// # Rules
//
//   - An empty path is accepted (no context path configured)
//   - Leading and trailing single separators are accepted ("/", "/a/", "a/")
//   - Any run of two or more '/' characters is rejected with ErrIllegalPath
package pathutil
