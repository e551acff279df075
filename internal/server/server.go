// Package server bootstraps the MCP runtime and runs it over stdio or HTTP.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/atlanticdynamic/mcpfoundation/internal/config"
	"github.com/atlanticdynamic/mcpfoundation/internal/prompts"
	"github.com/atlanticdynamic/mcpfoundation/internal/resources"
	"github.com/atlanticdynamic/mcpfoundation/internal/server/finitestate"
	"github.com/atlanticdynamic/mcpfoundation/internal/server/mcpmiddleware"
	"github.com/atlanticdynamic/mcpfoundation/internal/tools"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/robbyt/go-supervisor/supervisor"
)

// ServerName is advertised to clients during initialization.
const ServerName = "MCP Foundation Template"

// DefaultVersion is used when no version is supplied.
const DefaultVersion = "1.0.0"

// Interface guards
var (
	_ supervisor.Runnable  = (*Server)(nil)
	_ supervisor.Stateable = (*Server)(nil)
)

// Server owns a single MCP runtime and the transport serving it.
type Server struct {
	cfg     config.AppConfig
	version string
	mcp     *mcp.Server
	logger  *slog.Logger
	fsm     finitestate.Machine

	stdioTransport    mcp.Transport
	onTransportClosed func()

	mu      sync.Mutex
	cancel  context.CancelFunc
	stopped bool
}

// New builds the MCP runtime for cfg and registers every enabled capability.
func New(cfg config.AppConfig, opts ...Option) (*Server, error) {
	s := &Server{
		cfg:     cfg.Clone(),
		version: DefaultVersion,
		logger:  slog.Default().WithGroup("server"),
	}
	for _, opt := range opts {
		opt(s)
	}

	machine, err := finitestate.New(s.logger.Handler())
	if err != nil {
		return nil, fmt.Errorf("unable to create state machine: %w", err)
	}
	s.fsm = machine

	s.mcp = mcp.NewServer(&mcp.Implementation{Name: ServerName, Version: s.version}, nil)
	s.mcp.AddReceivingMiddleware(
		mcpmiddleware.Logging(s.logger),
		mcpmiddleware.Timeout(s.cfg.Tools.MaxExecutionTime),
	)

	if err := s.register(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Server) register() error {
	registries := []struct {
		name    string
		enabled bool
		fn      func(*mcp.Server, *slog.Logger) error
	}{
		{"tools", s.cfg.Features.EnableTools, tools.Register},
		{"resources", s.cfg.Features.EnableResources, resources.Register},
		{"prompts", s.cfg.Features.EnablePrompts, prompts.Register},
	}

	for _, r := range registries {
		if !r.enabled {
			s.logger.Info("Registry disabled", "registry", r.name)
			continue
		}
		if err := r.fn(s.mcp, s.logger); err != nil {
			return fmt.Errorf("%w: %s: %w", ErrRegistryFailed, r.name, err)
		}
	}
	return nil
}

// Run serves the configured transport until ctx is cancelled, Stop is
// called, or the stdio client disconnects.
func (s *Server) Run(ctx context.Context) error {
	if err := s.fsm.Transition(finitestate.StatusBooting); err != nil {
		return fmt.Errorf("%w: %w", ErrStateChange, err)
	}

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	s.mu.Lock()
	s.cancel = cancel
	s.stopped = false
	s.mu.Unlock()

	var err error
	if s.cfg.IsHTTP() {
		err = s.runHTTP(runCtx)
	} else {
		err = s.runStdio(runCtx)
	}

	if err != nil {
		if stateErr := s.fsm.SetState(finitestate.StatusError); stateErr != nil {
			s.logger.Error("Failed to set error state", "error", stateErr)
		}
		return err
	}

	s.fsm.TransitionBool(finitestate.StatusStopping)
	if err := s.fsm.Transition(finitestate.StatusStopped); err != nil {
		return fmt.Errorf("%w: %w", ErrStateChange, err)
	}
	return nil
}

// Stop ends the current Run. Calling it again is a no-op.
func (s *Server) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopped {
		return
	}
	s.stopped = true
	s.logger.Info("MCP Server stopped")

	if s.cancel != nil {
		s.cancel()
	}
}

// String returns the name of this runnable component.
func (s *Server) String() string {
	return "mcpfoundation.Server"
}

// GetState returns the current lifecycle state.
func (s *Server) GetState() string {
	return s.fsm.GetState()
}

// GetStateChan emits lifecycle states until ctx is done.
func (s *Server) GetStateChan(ctx context.Context) <-chan string {
	return s.fsm.GetStateChan(ctx)
}

// IsRunning reports whether the transport is serving.
func (s *Server) IsRunning() bool {
	return s.fsm.GetState() == finitestate.StatusRunning
}

// MCP returns the underlying runtime.
func (s *Server) MCP() *mcp.Server {
	return s.mcp
}

func (s *Server) markRunning() error {
	if err := s.fsm.Transition(finitestate.StatusRunning); err != nil {
		return fmt.Errorf("%w: %w", ErrStateChange, err)
	}
	return nil
}
