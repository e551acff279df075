package mcpmiddleware

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/robbyt/go-loglater"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// deadlineProbe reports whether the handler saw a deadline.
func deadlineProbe(saw *bool) mcp.MethodHandler {
	return func(ctx context.Context, _ string, _ mcp.Request) (mcp.Result, error) {
		_, *saw = ctx.Deadline()
		return nil, nil
	}
}

func TestTimeout(t *testing.T) {
	t.Parallel()

	t.Run("bounds tool calls", func(t *testing.T) {
		t.Parallel()
		var saw bool
		h := Timeout(time.Second)(deadlineProbe(&saw))
		_, err := h(t.Context(), MethodCallTool, nil)
		require.NoError(t, err)
		assert.True(t, saw)
	})

	t.Run("ignores other methods", func(t *testing.T) {
		t.Parallel()
		var saw bool
		h := Timeout(time.Second)(deadlineProbe(&saw))
		_, err := h(context.Background(), "tools/list", nil)
		require.NoError(t, err)
		assert.False(t, saw)
	})

	t.Run("zero disables", func(t *testing.T) {
		t.Parallel()
		var saw bool
		h := Timeout(0)(deadlineProbe(&saw))
		_, err := h(context.Background(), MethodCallTool, nil)
		require.NoError(t, err)
		assert.False(t, saw)
	})

	t.Run("slow tool is cancelled", func(t *testing.T) {
		t.Parallel()
		slow := func(ctx context.Context, _ string, _ mcp.Request) (mcp.Result, error) {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(5 * time.Second):
				return nil, nil
			}
		}
		_, err := Timeout(10 * time.Millisecond)(slow)(context.Background(), MethodCallTool, nil)
		require.ErrorIs(t, err, context.DeadlineExceeded)
	})
}

func TestLogging(t *testing.T) {
	t.Parallel()

	collector := loglater.NewLogCollector(nil)
	mw := Logging(slog.New(collector))

	ok := mw(func(context.Context, string, mcp.Request) (mcp.Result, error) { return nil, nil })
	_, err := ok(t.Context(), "ping", nil)
	require.NoError(t, err)

	boom := errors.New("boom")
	fail := mw(func(context.Context, string, mcp.Request) (mcp.Result, error) { return nil, boom })
	_, err = fail(t.Context(), MethodCallTool, nil)
	require.ErrorIs(t, err, boom)

	logs := collector.GetLogs()
	require.Len(t, logs, 2)
	assert.Equal(t, slog.LevelDebug, logs[0].Level)
	assert.Equal(t, "MCP request", logs[0].Message)
	assert.Equal(t, slog.LevelWarn, logs[1].Level)
	assert.Equal(t, "MCP request failed", logs[1].Message)
}
