// Package logger logs each HTTP request and tags it with a request ID.
package logger

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/robbyt/go-supervisor/runnables/httpserver"
)

// HeaderRequestID carries the request ID in both directions.
const HeaderRequestID = "X-Request-ID"

// New returns a middleware that assigns a request ID when the client sent
// none, echoes it in the response, and logs the request after the rest of
// the chain has run.
func New(logger *slog.Logger) httpserver.HandlerFunc {
	if logger == nil {
		logger = slog.Default().WithGroup("http")
	}

	return func(rp *httpserver.RequestProcessor) {
		r := rp.Request()
		start := time.Now()

		requestID := r.Header.Get(HeaderRequestID)
		if requestID == "" {
			requestID = uuid.Must(uuid.NewV7()).String()
			r.Header.Set(HeaderRequestID, requestID)
		}
		rp.Writer().Header().Set(HeaderRequestID, requestID)

		rp.Next()

		status := rp.Writer().Status()
		if status == 0 {
			status = http.StatusOK
		}

		level := slog.LevelDebug
		switch {
		case status >= 500:
			level = slog.LevelError
		case status >= 400:
			level = slog.LevelWarn
		}

		logger.LogAttrs(r.Context(), level, "HTTP request",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", status),
			slog.Duration("duration", time.Since(start)),
			slog.String("request_id", requestID),
		)
	}
}
