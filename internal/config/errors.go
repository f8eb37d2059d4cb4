package config

import "fmt"

// ConfigError is a fatal startup error: a broken catalog, an unreadable config
// file or missing credentials. It is never recovered from.
type ConfigError struct {
	Source string
	Err    error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("configuration error in %s: %v", e.Source, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}
