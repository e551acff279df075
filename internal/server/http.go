package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/atlanticdynamic/mcpfoundation/internal/server/finitestate"
	"github.com/atlanticdynamic/mcpfoundation/internal/server/middleware/auth"
	"github.com/atlanticdynamic/mcpfoundation/internal/server/middleware/logger"
	"github.com/atlanticdynamic/mcpfoundation/internal/server/middleware/origin"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/robbyt/go-supervisor/runnables/httpserver"
)

const (
	PathMCP    = "/mcp"
	PathHealth = "/health"

	drainTimeout = 5 * time.Second
	idleTimeout  = 2 * time.Minute
)

// healthStatus is the /health response body.
type healthStatus struct {
	Status    string `json:"status"`
	Server    string `json:"server"`
	Version   string `json:"version"`
	Transport string `json:"transport"`
}

// Address returns the host:port the HTTP transport listens on.
func (s *Server) Address() string {
	return net.JoinHostPort(s.cfg.Server.Host, strconv.Itoa(s.cfg.Server.Port))
}

func (s *Server) routes() ([]httpserver.Route, error) {
	requestLogger := logger.New(s.logger.WithGroup("http"))
	authenticator := auth.NewAuthenticator(
		s.cfg.Security.APIKey,
		s.cfg.Security.JWTSecret,
		s.logger.WithGroup("auth"),
	)

	streamable := mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return s.mcp
	}, nil)

	mcpRoute, err := httpserver.NewRouteFromHandlerFunc(
		"mcp",
		PathMCP,
		streamable.ServeHTTP,
		requestLogger,
		origin.New(s.cfg.Security.AllowedOrigins),
		authenticator.Middleware(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create route %s: %w", PathMCP, err)
	}

	healthRoute, err := httpserver.NewRouteFromHandlerFunc(
		"health",
		PathHealth,
		s.handleHealth,
		requestLogger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create route %s: %w", PathHealth, err)
	}

	return []httpserver.Route{*mcpRoute, *healthRoute}, nil
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	body := healthStatus{
		Status:    "ok",
		Server:    ServerName,
		Version:   s.version,
		Transport: s.cfg.Server.Transport.String(),
	}
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.Warn("Failed to write health response", "error", err)
	}
}

func (s *Server) runHTTP(ctx context.Context) error {
	routes, err := s.routes()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrStartFailed, err)
	}

	addr := s.Address()
	runner, err := httpserver.NewRunner(
		httpserver.WithConfigCallback(func() (*httpserver.Config, error) {
			return httpserver.NewConfig(
				addr,
				routes,
				httpserver.WithDrainTimeout(drainTimeout),
				httpserver.WithIdleTimeout(idleTimeout),
			)
		}),
	)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrStartFailed, err)
	}

	var runErr error
	done := make(chan struct{})
	go func() {
		runErr = runner.Run(ctx)
		close(done)
	}()

	if err := s.waitListening(ctx, runner, done, &runErr); err != nil {
		if ctx.Err() != nil {
			<-done
			return nil
		}
		s.logger.Error("Failed to start server", "address", addr, "error", err)
		runner.Stop()
		<-done
		return err
	}

	s.logger.Info("MCP Server started in HTTP mode", "port", s.cfg.Server.Port, "address", addr)
	if err := s.markRunning(); err != nil {
		runner.Stop()
		<-done
		return err
	}

	<-done
	if runErr != nil && ctx.Err() == nil {
		s.logger.Error("HTTP server failed", "error", runErr)
		return fmt.Errorf("%w: %w", ErrHTTPServer, runErr)
	}
	return nil
}

// waitListening blocks until the runner reports Running. It fails when the
// runner exits first; runErr is only read after done is closed.
func (s *Server) waitListening(
	ctx context.Context,
	runner *httpserver.Runner,
	done <-chan struct{},
	runErr *error,
) error {
	stateCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	states := runner.GetStateChan(stateCtx)

	for {
		select {
		case <-done:
			err := *runErr
			if err == nil {
				err = fmt.Errorf("listener on %s exited before serving", s.Address())
			}
			return fmt.Errorf("%w: %w: %w", ErrStartFailed, ErrHTTPServer, err)
		case state, ok := <-states:
			if !ok {
				return fmt.Errorf("%w: %w", ErrStartFailed, ctx.Err())
			}
			switch state {
			case finitestate.StatusRunning:
				return nil
			case finitestate.StatusError:
				return fmt.Errorf("%w: %w: listener on %s entered %s", ErrStartFailed, ErrHTTPServer, s.Address(), state)
			}
		}
	}
}
