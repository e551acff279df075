// Package interpolation expands ${VAR} and ${VAR:default} references in
// configuration strings.
package interpolation

import (
	"errors"
	"fmt"
	"os"
	"regexp"
)

// ErrUndefinedVariable is returned for a reference with no value and no default.
var ErrUndefinedVariable = errors.New("environment variable not defined")

// LookupFunc returns the value of a variable and whether it is set.
type LookupFunc func(key string) (string, bool)

// captures name, an optional colon, and the default
var envVarPattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)(:)?([^}]*)\}`)

// ExpandEnvVars expands references in input against the process environment.
func ExpandEnvVars(input string) (string, error) {
	return Expand(input, os.LookupEnv)
}

// Expand replaces each ${NAME} or ${NAME:default} in input with the value
// from lookup. ${NAME:} expands to the empty string when NAME is unset. An
// unset reference without a default is left in place and reported.
func Expand(input string, lookup LookupFunc) (string, error) {
	if input == "" {
		return "", nil
	}
	if lookup == nil {
		lookup = os.LookupEnv
	}

	var missing []error
	result := envVarPattern.ReplaceAllStringFunc(input, func(match string) string {
		sub := envVarPattern.FindStringSubmatch(match)
		name, hasDefault, def := sub[1], sub[2] == ":", sub[3]

		if value, ok := lookup(name); ok {
			return value
		}
		if hasDefault {
			return def
		}
		missing = append(missing, fmt.Errorf("%w: %s", ErrUndefinedVariable, name))
		return match
	})

	return result, errors.Join(missing...)
}
