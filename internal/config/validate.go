package config

import (
	"errors"
	"fmt"
)

// Validate checks the cross-field constraints of the configuration. Every
// violated rule is reported; callers treat a non-nil result as fatal.
func (c AppConfig) Validate() error {
	var errz []error

	if c.Server.Transport == TransportHTTP && c.Server.Port <= 0 {
		errz = append(errz, fmt.Errorf("%w (got %d)", ErrInvalidPort, c.Server.Port))
	}

	if len(errz) == 0 {
		return nil
	}

	return fmt.Errorf("%w:\n%w", ErrValidationFailed, errors.Join(errz...))
}
