package tools

import (
	"context"
	"fmt"
	"strconv"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Operation names accepted by the calculate tool.
const (
	OpAdd      = "add"
	OpSubtract = "subtract"
	OpMultiply = "multiply"
	OpDivide   = "divide"
)

// CalculateInput is the argument object of the calculate tool.
type CalculateInput struct {
	Operation string  `json:"operation" jsonschema:"Mathematical operation"`
	A         float64 `json:"a" jsonschema:"First number"`
	B         float64 `json:"b" jsonschema:"Second number"`
}

// Compute applies op to a and b.
func Compute(op string, a, b float64) (float64, error) {
	switch op {
	case OpAdd:
		return a + b, nil
	case OpSubtract:
		return a - b, nil
	case OpMultiply:
		return a * b, nil
	case OpDivide:
		if b == 0 {
			return 0, ErrDivisionByZero
		}
		return a / b, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownOperation, op)
	}
}

// Calculate formats "<a> <op> <b> = <result>".
func Calculate(_ context.Context, _ *mcp.CallToolRequest, in CalculateInput) (*mcp.CallToolResult, any, error) {
	result, err := Compute(in.Operation, in.A, in.B)
	if err != nil {
		return nil, nil, err
	}

	return textResult(fmt.Sprintf("%s %s %s = %s",
		formatNumber(in.A), in.Operation, formatNumber(in.B), formatNumber(result))), nil, nil
}

// formatNumber prints the shortest decimal form, so 5 prints as "5".
func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func registerCalculate(srv *mcp.Server) error {
	schema, err := jsonschema.For[CalculateInput](nil)
	if err != nil {
		return err
	}
	p, ok := schema.Properties["operation"]
	if !ok {
		return fmt.Errorf("schema has no operation property")
	}
	p.Enum = []any{OpAdd, OpSubtract, OpMultiply, OpDivide}

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "calculate",
		Description: "Performs basic mathematical calculations",
		InputSchema: schema,
	}, Calculate)
	return nil
}
