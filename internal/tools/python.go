package tools

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// PythonScriptInput is the argument object of the python_script tool.
type PythonScriptInput struct {
	Script string `json:"script" jsonschema:"Python script code to execute"`
}

// PythonScript echoes the script back with guidance. Nothing is executed.
func PythonScript(_ context.Context, _ *mcp.CallToolRequest, in PythonScriptInput) (*mcp.CallToolResult, any, error) {
	return textResult(fmt.Sprintf(
		"Python tool execution not implemented in this example.\nScript: %s\n\nSee README.md for implementation guidance.",
		in.Script,
	)), nil, nil
}

func registerPythonScript(srv *mcp.Server) error {
	mcp.AddTool(srv, &mcp.Tool{
		Name:        "python_script",
		Description: "Executes a Python script (placeholder implementation)",
	}, PythonScript)
	return nil
}
