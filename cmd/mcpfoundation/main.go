package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"
)

func main() {
	if err := newApp().Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newApp builds the command tree. The root and validate commands hand their
// raw arguments to the args package instead of letting cli parse them.
func newApp() *cli.Command {
	return &cli.Command{
		Name:            "mcpfoundation",
		Version:         Version,
		Usage:           "MCP server foundation template",
		HideHelp:        true,
		HideVersion:     true,
		SkipFlagParsing: true,
		Action:          serveAction,
		Commands: []*cli.Command{
			versionCmd,
			validateCmd,
		},
	}
}
