package props

import (
	"os"
	"strings"
	"unicode"
)

// Env reads properties from environment variables.
// The property "contextPath" with prefix "NACOS_" is read from NACOS_CONTEXT_PATH.
type Env struct {
	prefix string
	lookup func(string) (string, bool)
}

// NewEnv returns an environment Source. A nil lookup uses os.LookupEnv.
func NewEnv(prefix string, lookup func(string) (string, bool)) *Env {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	return &Env{prefix: prefix, lookup: lookup}
}

// NewEnvFromSlice returns an environment Source over KEY=VALUE entries,
// such as the output of os.Environ(). Malformed entries are skipped.
func NewEnvFromSlice(prefix string, environ []string) *Env {
	values := SliceToMap(environ)
	return NewEnv(prefix, func(k string) (string, bool) {
		v, ok := values[k]
		return v, ok
	})
}

// Property implements Source. A nil Env has no properties.
func (e *Env) Property(key string) (string, bool) {
	if e == nil {
		return "", false
	}
	return e.lookup(e.Name(key))
}

// Name returns the environment variable name used for key.
func (e *Env) Name(key string) string {
	return e.prefix + EnvKey(key)
}

// EnvKey converts a property key to environment variable naming.
// Camel case boundaries and '.' or '-' separators become underscores.
//
// Example:
//
//	props.EnvKey("contextPath")      // "CONTEXT_PATH"
//	props.EnvKey("server.addr-list") // "SERVER_ADDR_LIST"
func EnvKey(key string) string {
	var b strings.Builder
	b.Grow(len(key) + 4)

	prevLower := false
	for _, r := range key {
		switch {
		case r == '.' || r == '-' || r == '_':
			b.WriteByte('_')
			prevLower = false
		case unicode.IsUpper(r):
			if prevLower {
				b.WriteByte('_')
			}
			b.WriteRune(r)
			prevLower = false
		default:
			b.WriteRune(unicode.ToUpper(r))
			prevLower = unicode.IsLower(r) || unicode.IsDigit(r)
		}
	}
	return b.String()
}

// SliceToMap converts KEY=VALUE entries into a map, skipping malformed rows.
func SliceToMap(envSlice []string) map[string]string {
	result := make(map[string]string, len(envSlice))
	for _, envVar := range envSlice {
		parts := strings.SplitN(envVar, "=", 2)
		if len(parts) != 2 || parts[0] == "" {
			continue
		}
		result[parts[0]] = parts[1]
	}
	return result
}
