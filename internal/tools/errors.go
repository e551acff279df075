package tools

import "errors"

var (
	ErrDivisionByZero   = errors.New("Division by zero")
	ErrUnknownOperation = errors.New("unknown operation")
	ErrNegativeRepeat   = errors.New("repeat must not be negative")
	ErrRepeatTooLarge   = errors.New("repeated message is too large")
	ErrRegisterTool     = errors.New("failed to register tool")
)
