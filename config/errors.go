package config

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownLogFormat           = errors.New("unknown log_format (must be 'plain' or 'json')")
	ErrNegativeMaxOpenConnections = errors.New("max_open_connections can't be negative")
	ErrEmptyNamespace             = errors.New("namespace can't be empty when prometheus is enabled")
)

// ErrInSection is returned if validate basic does not pass for any underlying config section.
type ErrInSection struct {
	Err     error
	Section string
}

func (e ErrInSection) Error() string {
	return fmt.Sprintf("error in [%s] section: %s", e.Section, e.Err.Error())
}

func (e ErrInSection) Unwrap() error {
	return e.Err
}
