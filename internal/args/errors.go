package args

import "errors"

var (
	ErrUnknownFlag      = errors.New("unknown flag")
	ErrUnexpectedArg    = errors.New("unexpected argument")
	ErrMissingValue     = errors.New("flag needs a value")
	ErrInvalidTransport = errors.New("transport must be 'stdio' or 'http'")
	ErrInvalidPort      = errors.New("port must be a base 10 integer")
)
