// Package origin restricts cross-origin HTTP requests to a configured list.
package origin

import (
	"net/http"
	"slices"

	"github.com/robbyt/go-supervisor/runnables/httpserver"
)

// Wildcard in the allowed list admits every origin.
const Wildcard = "*"

const (
	allowMethods = "GET, POST, DELETE, OPTIONS"
	allowHeaders = "Content-Type, Authorization, X-API-Key, Mcp-Session-Id, Mcp-Protocol-Version, Last-Event-ID"
)

// New returns a middleware enforcing allowed. With an empty list every request
// passes untouched. Requests without an Origin header always pass. A disallowed
// origin gets 403, and an allowed preflight is answered with 204. Both end
// the chain.
func New(allowed []string) httpserver.HandlerFunc {
	allowed = slices.Clone(allowed)
	allowAny := slices.Contains(allowed, Wildcard)

	return func(rp *httpserver.RequestProcessor) {
		if len(allowed) == 0 {
			rp.Next()
			return
		}

		r := rp.Request()
		origin := r.Header.Get("Origin")
		if origin == "" {
			rp.Next()
			return
		}

		w := rp.Writer()
		if !allowAny && !slices.Contains(allowed, origin) {
			http.Error(w, "Forbidden: origin not allowed", http.StatusForbidden)
			rp.Abort()
			return
		}

		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Add("Vary", "Origin")
		w.Header().Set("Access-Control-Expose-Headers", "Mcp-Session-Id")

		if r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != "" {
			w.Header().Set("Access-Control-Allow-Methods", allowMethods)
			w.Header().Set("Access-Control-Allow-Headers", allowHeaders)
			w.WriteHeader(http.StatusNoContent)
			rp.Abort()
			return
		}

		rp.Next()
	}
}
