package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/atlanticdynamic/mcpfoundation/internal/server"
	"github.com/robbyt/go-supervisor/supervisor"
	"github.com/urfave/cli/v3"
)

func serveAction(ctx context.Context, cmd *cli.Command) error {
	err := serve(ctx, cmd.Args().Slice(), cmd.Root().Writer, nil)
	if err == nil || errors.Is(err, errHelpShown) {
		return nil
	}
	return cli.Exit(fmt.Errorf("failed to run server: %w", err), 1)
}

// serve runs the MCP server until a signal arrives or the stdio client
// disconnects.
func serve(ctx context.Context, argv []string, out, logOut io.Writer) error {
	st, err := prepare(argv, out, logOut)
	if err != nil {
		return err
	}

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	srv, err := server.New(st.cfg,
		server.WithLogHandler(st.handler),
		server.WithVersion(Version),
		server.WithTransportClosedHook(cancel),
	)
	if err != nil {
		st.logger.Error("Failed to create server", "error", err)
		return err
	}

	super, err := supervisor.New(
		supervisor.WithContext(runCtx),
		supervisor.WithLogHandler(st.handler),
		supervisor.WithRunnables(srv),
	)
	if err != nil {
		return fmt.Errorf("failed to create supervisor: %w", err)
	}

	if err := super.Run(); err != nil {
		return err
	}

	st.logger.Info("Server shutdown complete")
	return nil
}
