// Package tools holds the example MCP tools. Add a tool by writing its handler
// and appending an entry to registrations.
package tools

import (
	"fmt"
	"log/slog"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// registration adds one tool to a server.
type registration struct {
	name     string
	register func(*mcp.Server) error
}

// registrations is the ordered list of every tool this server exposes.
var registrations = []registration{
	{name: "echo", register: registerEcho},
	{name: "calculate", register: registerCalculate},
	{name: "system_info", register: registerSystemInfo},
	{name: "python_script", register: registerPythonScript},
}

// Names returns the tool names in registration order.
func Names() []string {
	names := make([]string, 0, len(registrations))
	for _, r := range registrations {
		names = append(names, r.name)
	}
	return names
}

// Register adds every tool to srv and logs the result.
func Register(srv *mcp.Server, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default().WithGroup("tools")
	}

	for _, r := range registrations {
		if err := r.register(srv); err != nil {
			return fmt.Errorf("%w %s: %w", ErrRegisterTool, r.name, err)
		}
	}

	logger.Info("Registered tools", "count", len(registrations), "names", Names())
	return nil
}

// textResult wraps text in a single-block tool result.
func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}
}
