package config

import "errors"

var (
	ErrFailedToLoadConfig   = errors.New("failed to load config")
	ErrValidationFailed     = errors.New("Configuration validation failed")
	ErrUnsupportedConfigVer = errors.New("unsupported config version")
	ErrParseToml            = errors.New("failed to parse TOML")
	ErrInterpolation        = errors.New("failed to expand config value")

	// Validation rules
	ErrInvalidPort = errors.New("PORT must be a positive number when using HTTP transport")
)
