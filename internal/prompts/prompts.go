// Package prompts holds the example MCP prompt templates.
package prompts

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// renderFunc builds the prompt text from its arguments. Required arguments
// are already checked.
type renderFunc func(args map[string]string) string

type registration struct {
	prompt *mcp.Prompt
	render renderFunc
}

var registrations = []registration{
	{
		prompt: &mcp.Prompt{
			Name:        "greeting",
			Description: "Generates a personalized greeting",
			Arguments: []*mcp.PromptArgument{
				{Name: "name", Description: "Name of the person to greet", Required: true},
				{Name: "context", Description: "Additional context for the greeting"},
			},
		},
		render: Greeting,
	},
	{
		prompt: &mcp.Prompt{
			Name:        "analyze",
			Description: "Provides a structured analysis prompt",
			Arguments: []*mcp.PromptArgument{
				{Name: "topic", Description: "Topic to analyze", Required: true},
				{Name: "framework", Description: "Analysis framework to use"},
			},
		},
		render: Analyze,
	},
}

// Names returns the prompt names in registration order.
func Names() []string {
	names := make([]string, 0, len(registrations))
	for _, r := range registrations {
		names = append(names, r.prompt.Name)
	}
	return names
}

// Register adds every prompt to srv and logs the result.
func Register(srv *mcp.Server, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default().WithGroup("prompts")
	}

	for _, r := range registrations {
		srv.AddPrompt(r.prompt, newHandler(r))
	}

	logger.Info("Registered prompts", "count", len(registrations), "names", Names())
	return nil
}

func newHandler(r registration) mcp.PromptHandler {
	return func(_ context.Context, req *mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
		var args map[string]string
		if req.Params != nil {
			args = req.Params.Arguments
		}

		for _, a := range r.prompt.Arguments {
			if a.Required && args[a.Name] == "" {
				return nil, fmt.Errorf("%w: %s", ErrMissingArgument, a.Name)
			}
		}

		return &mcp.GetPromptResult{
			Description: r.prompt.Description,
			Messages: []*mcp.PromptMessage{{
				Role:    "user",
				Content: &mcp.TextContent{Text: r.render(args)},
			}},
		}, nil
	}
}

// Greeting renders "Hello, <name>!" with the optional context appended.
func Greeting(args map[string]string) string {
	greeting := fmt.Sprintf("Hello, %s!", args["name"])
	if c := args["context"]; c != "" {
		greeting += " " + c
	}
	return greeting
}

// Analyze renders the analysis request with its fixed checklist.
func Analyze(args map[string]string) string {
	framework := args["framework"]
	if framework == "" {
		framework = "general"
	}
	return fmt.Sprintf(
		"Please provide a %s analysis of: %s\n\nConsider:\n1. Key points\n2. Strengths\n3. Weaknesses\n4. Recommendations",
		framework, args["topic"],
	)
}
