package config

import "fmt"

// NotFoundError indicates the config file does not exist.
type NotFoundError struct {
	Path string
	Hint string
}

func (e *NotFoundError) Error() string {
	if e.Hint != "" {
		return fmt.Sprintf("config file not found: %s (%s)", e.Path, e.Hint)
	}
	return fmt.Sprintf("config file not found: %s", e.Path)
}

// InvalidError indicates the config file exists but cannot be parsed.
type InvalidError struct {
	Path    string
	Message string
	Hint    string
}

func (e *InvalidError) Error() string {
	msg := fmt.Sprintf("invalid config %s: %s", e.Path, e.Message)
	if e.Hint != "" {
		msg += " (" + e.Hint + ")"
	}
	return msg
}

// PermissionError indicates the config file cannot be read or written.
type PermissionError struct {
	Path string
	Op   string
}

func (e *PermissionError) Error() string {
	return fmt.Sprintf("permission denied: cannot %s %s", e.Op, e.Path)
}
