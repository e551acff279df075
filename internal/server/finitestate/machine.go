// Package finitestate tracks the lifecycle of the MCP server.
package finitestate

import (
	"context"
	"log/slog"

	"github.com/robbyt/go-fsm"
)

const (
	StatusNew      = fsm.StatusNew
	StatusBooting  = fsm.StatusBooting
	StatusRunning  = fsm.StatusRunning
	StatusStopping = fsm.StatusStopping
	StatusStopped  = fsm.StatusStopped
	StatusError    = fsm.StatusError
	StatusUnknown  = fsm.StatusUnknown
)

// ServerTransitions is the lifecycle of a single Run. The server is never
// reloaded, so there is no Reloading state; Stopped may boot again.
var ServerTransitions = map[string][]string{
	StatusNew:      {StatusBooting, StatusError},
	StatusBooting:  {StatusRunning, StatusStopping, StatusError},
	StatusRunning:  {StatusStopping, StatusStopped, StatusError},
	StatusStopping: {StatusStopped, StatusError},
	StatusStopped:  {StatusBooting, StatusNew, StatusError},
	StatusError:    {StatusNew, StatusStopping, StatusStopped},
}

// Machine is the subset of the state machine used by the server.
type Machine interface {
	// Transition moves to state, failing if the move is not allowed.
	Transition(state string) error

	// TransitionBool is Transition without the error detail.
	TransitionBool(state string) bool

	// SetState forces state regardless of the transition table.
	SetState(state string) error

	// GetState returns the current state.
	GetState() string

	// GetStateChan emits the current state and every change until ctx is done.
	GetStateChan(ctx context.Context) <-chan string
}

// New creates a lifecycle machine starting in StatusNew.
func New(handler slog.Handler) (Machine, error) {
	return fsm.New(handler, StatusNew, ServerTransitions)
}
