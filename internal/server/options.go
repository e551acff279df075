package server

import (
	"log/slog"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Option configures a Server.
type Option func(*Server)

// WithLogHandler sets a custom slog handler for the Server.
func WithLogHandler(handler slog.Handler) Option {
	return func(s *Server) {
		if handler != nil {
			s.logger = slog.New(handler).WithGroup("server")
		}
	}
}

// WithLogger sets the logger for the Server.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithVersion sets the version advertised during MCP initialization.
func WithVersion(version string) Option {
	return func(s *Server) {
		if version != "" {
			s.version = version
		}
	}
}

// WithStdioTransport replaces the process stdio transport, e.g. with one end
// of mcp.NewInMemoryTransports.
func WithStdioTransport(t mcp.Transport) Option {
	return func(s *Server) {
		if t != nil {
			s.stdioTransport = t
		}
	}
}

// WithTransportClosedHook sets a function called when the stdio client
// disconnects.
func WithTransportClosedHook(fn func()) Option {
	return func(s *Server) {
		s.onTransportClosed = fn
	}
}
