package finitestate

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMachine_Lifecycle(t *testing.T) {
	t.Parallel()

	m, err := New(slog.Default().Handler())
	require.NoError(t, err)
	assert.Equal(t, StatusNew, m.GetState())

	require.NoError(t, m.Transition(StatusBooting))
	require.NoError(t, m.Transition(StatusRunning))
	require.NoError(t, m.Transition(StatusStopping))
	require.NoError(t, m.Transition(StatusStopped))
	assert.Equal(t, StatusStopped, m.GetState())
}

func TestMachine_RejectsInvalidTransition(t *testing.T) {
	t.Parallel()

	m, err := New(slog.Default().Handler())
	require.NoError(t, err)

	assert.Error(t, m.Transition(StatusRunning), "cannot run before booting")
	assert.False(t, m.TransitionBool(StatusStopping))
	assert.Equal(t, StatusNew, m.GetState())

	require.NoError(t, m.SetState(StatusError))
	assert.True(t, m.TransitionBool(StatusStopped))
}

func TestMachine_StateChan(t *testing.T) {
	t.Parallel()

	m, err := New(slog.Default().Handler())
	require.NoError(t, err)

	ch := m.GetStateChan(t.Context())
	require.NoError(t, m.Transition(StatusBooting))

	seen := make(map[string]bool)
	require.Eventually(t, func() bool {
		for {
			select {
			case s := <-ch:
				seen[s] = true
			default:
				return seen[StatusBooting]
			}
		}
	}, time.Second, 10*time.Millisecond)
}
