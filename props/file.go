package props

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// FromYAML parses a YAML document into a Map.
// Nested mappings are flattened with '.' joined keys, sequences of scalars are
// joined with ',' and null values are skipped.
//
// Example:
//
//	server:
//	  addr: [10.0.0.1:8848, 10.0.0.2:8848]
//	contextPath: /nacos
//
// yields {"server.addr": "10.0.0.1:8848,10.0.0.2:8848", "contextPath": "/nacos"}.
func FromYAML(data []byte) (Map, error) {
	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse YAML properties: %w", err)
	}

	result := Map{}
	if err := flatten(result, "", doc); err != nil {
		return nil, err
	}
	return result, nil
}

func flatten(dst Map, prefix string, node map[string]any) error {
	for k, v := range node {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}

		switch val := v.(type) {
		case nil:
			continue
		case map[string]any:
			if err := flatten(dst, key, val); err != nil {
				return err
			}
		case map[any]any:
			return fmt.Errorf("property %q: mapping keys must be strings", key)
		case []any:
			items := make([]string, 0, len(val))
			for _, item := range val {
				switch item.(type) {
				case map[string]any, map[any]any, []any:
					return fmt.Errorf("property %q: sequences must contain scalar values", key)
				case nil:
					continue
				}
				items = append(items, fmt.Sprint(item))
			}
			dst[key] = strings.Join(items, ",")
		default:
			dst[key] = fmt.Sprint(val)
		}
	}
	return nil
}

// ParseProperties parses "key=value" or "key: value" lines into a Map.
// Blank lines and lines starting with '#' or '!' are skipped, keys and values are
// trimmed, and a value wrapped in matching single or double quotes is unquoted.
// Lines without a separator or with an empty key are ignored.
func ParseProperties(data []byte) Map {
	values := Map{}
	lines := strings.Split(string(data), "\n")

	for _, line := range lines {
		line = strings.TrimSpace(line)

		// Skip empty lines and comments
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "!") {
			continue
		}

		idx := strings.IndexAny(line, "=:")
		if idx <= 0 {
			continue
		}

		key := strings.TrimSpace(line[:idx])
		value := strings.TrimSpace(line[idx+1:])
		if key == "" {
			continue
		}

		// Remove surrounding quotes if present (handles both " and ')
		if len(value) >= 2 {
			if (value[0] == '"' && value[len(value)-1] == '"') ||
				(value[0] == '\'' && value[len(value)-1] == '\'') {
				value = value[1 : len(value)-1]
			}
		}

		values[key] = value
	}

	return values
}
