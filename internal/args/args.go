// Package args turns the raw argument list into optional overrides for the
// transport, port, and host settings.
package args

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/pflag"

	"github.com/atlanticdynamic/mcpfoundation/internal/config"
)

const (
	flagTransport = "transport"
	flagPort      = "port"
	flagHost      = "host"
	flagConfig    = "config"
	flagHelp      = "help"
)

// ParsedArgs holds the overrides found on the command line. Nil pointers and
// empty strings mean the flag was absent or its value was rejected.
type ParsedArgs struct {
	Transport  config.Transport
	Port       *int
	Host       *string
	ConfigPath string
	Help       bool

	// Unrecognized describes every token that was skipped, in order.
	Unrecognized []string
}

// newFlagSet declares the supported flags. Values are kept as strings and
// validated here, so a bad value drops only that override.
func newFlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet("mcpfoundation", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringP(flagTransport, "t", "", "transport mode: 'stdio' or 'http'")
	fs.StringP(flagPort, "p", "", "port number for HTTP transport")
	fs.StringP(flagHost, "h", "", "host binding for HTTP transport")
	fs.StringP(flagConfig, "c", "", "optional TOML config file")
	fs.Bool(flagHelp, false, "show this help message")
	return fs
}

// Parse scans argv once, left to right. A flag consumes the following token as
// its value unless given as --flag=value. Unknown flags and positional tokens
// are skipped one at a time and reported in Unrecognized. When --help is seen
// the usage text is written to out; Parse never exits.
func Parse(argv []string, out io.Writer) ParsedArgs {
	fs := newFlagSet()
	var parsed ParsedArgs

	for i := 0; i < len(argv); i++ {
		token := argv[i]

		flag, inline, hasInline := lookupFlag(fs, token)
		if flag == nil {
			parsed.skip(token)
			continue
		}

		if flag.Name == flagHelp {
			if !parsed.Help && out != nil {
				PrintUsage(out)
			}
			parsed.Help = true
			continue
		}

		value := inline
		if !hasInline {
			if i+1 >= len(argv) {
				parsed.Unrecognized = append(parsed.Unrecognized,
					fmt.Sprintf("%s: %s", ErrMissingValue, token))
				continue
			}
			i++
			value = argv[i]
		}

		if err := fs.Set(flag.Name, value); err != nil {
			parsed.Unrecognized = append(parsed.Unrecognized, fmt.Sprintf("%s: %s", token, err))
			continue
		}
		parsed.apply(flag.Name, token, value)
	}

	return parsed
}

// lookupFlag resolves --name, --name=value, -n and -n=value against fs.
func lookupFlag(fs *pflag.FlagSet, token string) (*pflag.Flag, string, bool) {
	switch {
	case strings.HasPrefix(token, "--") && len(token) > 2:
		name, value, hasValue := strings.Cut(token[2:], "=")
		return fs.Lookup(name), value, hasValue
	case strings.HasPrefix(token, "-") && len(token) > 1 && token[1] != '-':
		name, value, hasValue := strings.Cut(token[1:], "=")
		if len(name) != 1 {
			return nil, "", false
		}
		return fs.ShorthandLookup(name), value, hasValue
	default:
		return nil, "", false
	}
}

func (p *ParsedArgs) apply(name, token, value string) {
	switch name {
	case flagTransport:
		t, ok := config.ParseTransport(value)
		if !ok {
			p.Unrecognized = append(p.Unrecognized, fmt.Sprintf("%s: %s (got %q)", token, ErrInvalidTransport, value))
			return
		}
		p.Transport = t
	case flagPort:
		port, err := strconv.Atoi(value)
		if err != nil {
			p.Unrecognized = append(p.Unrecognized, fmt.Sprintf("%s: %s (got %q)", token, ErrInvalidPort, value))
			return
		}
		p.Port = &port
	case flagHost:
		p.Host = &value
	case flagConfig:
		p.ConfigPath = value
	}
}

func (p *ParsedArgs) skip(token string) {
	if strings.HasPrefix(token, "-") {
		p.Unrecognized = append(p.Unrecognized, fmt.Sprintf("%s: %s", ErrUnknownFlag, token))
		return
	}
	p.Unrecognized = append(p.Unrecognized, fmt.Sprintf("%s: %s", ErrUnexpectedArg, token))
}

// Apply returns cfg with the transport, port, and host overrides applied.
func (p ParsedArgs) Apply(cfg config.AppConfig) config.AppConfig {
	if p.Transport != "" {
		cfg.Server.Transport = p.Transport
	}
	if p.Port != nil {
		cfg.Server.Port = *p.Port
	}
	if p.Host != nil {
		cfg.Server.Host = *p.Host
	}
	return cfg
}
