package args

import (
	"fmt"
	"io"
)

const usage = `
MCP Server - Customizable Foundation Template

Usage: mcpfoundation [options]

Options:
  --transport, -t <mode>    Transport mode: 'stdio' or 'http' (default: stdio)
  --port, -p <number>       Port number for HTTP transport (default: 3001)
  --host, -h <host>         Host binding for HTTP transport (default: 0.0.0.0)
  --config, -c <path>       Optional TOML config file, read before the environment
  --help                    Show this help message

Commands:
  version                   Print the version and exit
  validate [options]        Validate the effective configuration and exit

Examples:
  mcpfoundation                          # Start in stdio mode
  mcpfoundation --transport http         # Start in HTTP mode on port 3001
  mcpfoundation -t http -p 8080          # Start in HTTP mode on port 8080

For more information, see README.md
`

// Usage returns the fixed help text.
func Usage() string {
	return usage
}

// PrintUsage writes the help text to out.
func PrintUsage(out io.Writer) {
	_, _ = fmt.Fprint(out, usage)
}
