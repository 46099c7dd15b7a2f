package validator

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig matches every *ConfigError via errors.Is.
var ErrInvalidConfig = errors.New("invalid config")

// ConfigError reports a rejected configuration value.
type ConfigError struct {
	// Key is the property name, empty when a raw value was checked.
	Key string
	// Value is the rejected value.
	Value string
	// Err is the underlying reason.
	Err error
}

func (e *ConfigError) Error() string {
	return e.Err.Error()
}

// Unwrap returns the underlying reason.
func (e *ConfigError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrInvalidConfig.
func (e *ConfigError) Is(target error) bool {
	return target == ErrInvalidConfig
}

// Detail describes the error with its key and value, for diagnostics.
func (e *ConfigError) Detail() string {
	if e.Key == "" {
		return fmt.Sprintf("%s: %q", e.Err, e.Value)
	}
	return fmt.Sprintf("%s: %s=%q", e.Err, e.Key, e.Value)
}
