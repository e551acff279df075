package prompts

import "errors"

var ErrMissingArgument = errors.New("missing required argument")
