package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// MaxEchoBytes caps the size of the repeated message.
const MaxEchoBytes = 1 << 20

// EchoInput is the argument object of the echo tool.
type EchoInput struct {
	Message string `json:"message" jsonschema:"The message to echo"`
	Repeat  int    `json:"repeat,omitempty" jsonschema:"Number of times to repeat"`
}

// Echo returns the message repeated Repeat times behind a "Message: " prefix.
// A zero repeat count means once. Output larger than MaxEchoBytes is an error.
func Echo(_ context.Context, _ *mcp.CallToolRequest, in EchoInput) (*mcp.CallToolResult, any, error) {
	repeat := in.Repeat
	if repeat == 0 {
		repeat = 1
	}
	if repeat < 0 {
		return nil, nil, fmt.Errorf("%w (got %d)", ErrNegativeRepeat, repeat)
	}
	if n := len(in.Message); n > 0 && repeat > MaxEchoBytes/n {
		return nil, nil, fmt.Errorf("%w: %d bytes x %d exceeds %d bytes", ErrRepeatTooLarge, n, repeat, MaxEchoBytes)
	}

	return textResult("Message: " + strings.Repeat(in.Message, repeat)), nil, nil
}

func registerEcho(srv *mcp.Server) error {
	schema, err := jsonschema.For[EchoInput](nil)
	if err != nil {
		return err
	}
	if p, ok := schema.Properties["repeat"]; ok {
		p.Default = json.RawMessage("1")
	}

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "echo",
		Description: "Echoes back the input message",
		InputSchema: schema,
	}, Echo)
	return nil
}
