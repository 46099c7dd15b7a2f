package props

// Source provides named string properties.
type Source interface {
	// Property returns the value of key and whether it is set.
	Property(key string) (string, bool)
}

// Map is an in-memory Source.
type Map map[string]string

// Property implements Source.
func (m Map) Property(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

type chain []Source

// Chain returns a Source that consults sources in order and returns the first hit.
// Nil sources are skipped.
func Chain(sources ...Source) Source {
	c := make(chain, 0, len(sources))
	for _, s := range sources {
		if s != nil {
			c = append(c, s)
		}
	}
	return c
}

// Property implements Source.
func (c chain) Property(key string) (string, bool) {
	for _, s := range c {
		if v, ok := s.Property(key); ok {
			return v, true
		}
	}
	return "", false
}

// Get returns the value of key from src, or fallback when src is nil or the key is unset.
func Get(src Source, key, fallback string) string {
	if src == nil {
		return fallback
	}
	if v, ok := src.Property(key); ok {
		return v
	}
	return fallback
}
