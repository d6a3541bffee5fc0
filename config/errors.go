package config

import (
	"fmt"
	"strings"
)

// ConfigurationError reports a required field that is empty or malformed.
// Load stops at the first one.
type ConfigurationError struct {
	Field  string
	Value  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("invalid configuration: %s: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("invalid configuration: %s %q: %s", e.Field, e.Value, e.Reason)
}

func fieldError(field, value, reason string) *ConfigurationError {
	return &ConfigurationError{Field: field, Value: value, Reason: reason}
}

// MissingAssetError lists every referenced image that is absent from the
// static root.
type MissingAssetError struct {
	Missing []string
}

func (e *MissingAssetError) Error() string {
	return fmt.Sprintf("missing assets: %s", strings.Join(e.Missing, ", "))
}

// MissingDocError lists every header doc link that has no matching page.
type MissingDocError struct {
	Missing []string
}

func (e *MissingDocError) Error() string {
	return fmt.Sprintf("missing doc pages: %s", strings.Join(e.Missing, ", "))
}
