package config

import "fmt"

// NotFoundError represents a missing config file.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("config file not found: %s", e.Path)
}

// InvalidError represents a malformed or out-of-range config value.
type InvalidError struct {
	Path    string
	Message string
	Hint    string
}

func (e *InvalidError) Error() string {
	msg := fmt.Sprintf("invalid config: %s\n%s", e.Path, e.Message)
	if e.Hint != "" {
		msg += "\n💡 " + e.Hint
	}
	return msg
}
