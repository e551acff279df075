// Package mcpmiddleware wraps the MCP method dispatch of a server.
package mcpmiddleware

import (
	"context"
	"log/slog"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// MethodCallTool is the method bounded by Timeout.
const MethodCallTool = "tools/call"

// Timeout bounds every tools/call with d. A non-positive d disables it.
func Timeout(d time.Duration) mcp.Middleware {
	return func(next mcp.MethodHandler) mcp.MethodHandler {
		if d <= 0 {
			return next
		}
		return func(ctx context.Context, method string, req mcp.Request) (mcp.Result, error) {
			if method != MethodCallTool {
				return next(ctx, method, req)
			}
			ctx, cancel := context.WithTimeout(ctx, d)
			defer cancel()
			return next(ctx, method, req)
		}
	}
}

// Logging records each method call at debug, and failures at warn.
func Logging(logger *slog.Logger) mcp.Middleware {
	if logger == nil {
		logger = slog.Default().WithGroup("mcp")
	}
	return func(next mcp.MethodHandler) mcp.MethodHandler {
		return func(ctx context.Context, method string, req mcp.Request) (mcp.Result, error) {
			start := time.Now()
			res, err := next(ctx, method, req)
			attrs := []slog.Attr{
				slog.String("method", method),
				slog.Duration("duration", time.Since(start)),
			}
			if err != nil {
				attrs = append(attrs, slog.String("error", err.Error()))
				logger.LogAttrs(ctx, slog.LevelWarn, "MCP request failed", attrs...)
				return res, err
			}
			logger.LogAttrs(ctx, slog.LevelDebug, "MCP request", attrs...)
			return res, err
		}
	}
}
