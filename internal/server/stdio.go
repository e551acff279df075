package server

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) runStdio(ctx context.Context) error {
	transport := s.stdioTransport
	if transport == nil {
		transport = &mcp.StdioTransport{}
	}

	session, err := s.mcp.Connect(ctx, transport, nil)
	if err != nil {
		s.logger.Error("Failed to start server", "error", err)
		return fmt.Errorf("%w: %w", ErrStartFailed, err)
	}

	s.logger.Info("MCP Server started in stdio mode")
	if err := s.markRunning(); err != nil {
		_ = session.Close()
		return err
	}

	done := make(chan error, 1)
	go func() {
		done <- session.Wait()
	}()

	select {
	case <-ctx.Done():
		// Wait returns once the connection is closed
		if err := session.Close(); err != nil {
			s.logger.Debug("Error closing stdio session", "error", err)
		}
		<-done
		return nil
	case err := <-done:
		if err := sessionError(err); err != nil {
			s.logger.Warn("Client disconnected", "error", err)
		} else {
			s.logger.Info("Client disconnected")
		}
		if s.onTransportClosed != nil {
			s.onTransportClosed()
		}
		return nil
	}
}

// sessionError classifies the result of a finished stdio session. A clean
// hang-up is nil. Anything else is wrapped in ErrStdioSession.
func sessionError(err error) error {
	switch {
	case err == nil,
		errors.Is(err, io.EOF),
		errors.Is(err, mcp.ErrConnectionClosed),
		errors.Is(err, context.Canceled):
		return nil
	default:
		return fmt.Errorf("%w: %w", ErrStdioSession, err)
	}
}
