package server

import "errors"

var (
	ErrRegistryFailed = errors.New("failed to register capabilities")
	ErrStartFailed    = errors.New("failed to start server")
	ErrHTTPServer     = errors.New("http server error")
	ErrStdioSession   = errors.New("stdio session error")
	ErrStateChange    = errors.New("invalid lifecycle transition")
)
