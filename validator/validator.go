package validator

import (
	"github.com/jongio/clientcheck/pathutil"
	"github.com/jongio/clientcheck/props"
	"github.com/jongio/clientcheck/urlutil"
)

// Property keys read by this package.
const (
	// ContextPathKey names the context path setting.
	ContextPathKey = "contextPath"
	// ServerAddrKey names the comma separated server address list.
	ServerAddrKey = "serverAddr"
)

// CheckInitParam validates the settings a client reads at initialization.
// A nil source, or one without a context path, is valid.
func CheckInitParam(src props.Source) error {
	if src == nil {
		return nil
	}
	value, ok := src.Property(ContextPathKey)
	if !ok {
		return nil
	}
	if err := pathutil.CheckContextPath(value); err != nil {
		return &ConfigError{Key: ContextPathKey, Value: value, Err: err}
	}
	return nil
}

// CheckContextPath returns a *ConfigError when path contains consecutive separators.
// An empty path is valid.
func CheckContextPath(path string) error {
	if err := pathutil.CheckContextPath(path); err != nil {
		return &ConfigError{Value: path, Err: err}
	}
	return nil
}

// CheckValidURL returns the canonical form of rawURL and true when it is an
// http or https URL with a host, otherwise "" and false.
func CheckValidURL(rawURL string) (string, bool) {
	return urlutil.CheckValidURL(rawURL)
}

// ServerURLs reads the server address list from src and returns the usable
// endpoints. Bare "host:port" entries get defaultScheme. Unusable entries are
// dropped.
func ServerURLs(src props.Source, defaultScheme string) []string {
	return urlutil.ValidURLs(ServerAddrs(src, defaultScheme))
}

// ServerAddrs returns the server address list from src, split and with
// defaultScheme prefixed to bare "host:port" entries, before any validation.
func ServerAddrs(src props.Source, defaultScheme string) []string {
	addrs := urlutil.SplitServerList(props.Get(src, ServerAddrKey, ""))
	for i, a := range addrs {
		addrs[i] = urlutil.NormalizeScheme(a, defaultScheme)
	}
	return addrs
}
