package resources

import "errors"

var (
	ErrTemplateMismatch = errors.New("uri does not match template")
	ErrRegisterResource = errors.New("failed to register resource")
)
