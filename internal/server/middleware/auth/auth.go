// Package auth rejects HTTP requests that do not carry a valid API key or
// bearer JWT.
package auth

import (
	"crypto/subtle"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/robbyt/go-supervisor/runnables/httpserver"
)

// HeaderAPIKey carries a raw API key.
const HeaderAPIKey = "X-API-Key"

var (
	ErrNoCredentials      = errors.New("no credentials presented")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Authenticator checks request credentials against an API key, a JWT signing
// secret, or both. The zero value accepts everything.
type Authenticator struct {
	apiKey    []byte
	jwtSecret []byte
	logger    *slog.Logger
}

// NewAuthenticator creates an Authenticator. An empty apiKey or jwtSecret
// disables that method.
func NewAuthenticator(apiKey, jwtSecret string, logger *slog.Logger) *Authenticator {
	if logger == nil {
		logger = slog.Default().WithGroup("auth")
	}
	a := &Authenticator{logger: logger}
	if apiKey != "" {
		a.apiKey = []byte(apiKey)
	}
	if jwtSecret != "" {
		a.jwtSecret = []byte(jwtSecret)
	}
	return a
}

// Enabled reports whether any credential method is configured.
func (a *Authenticator) Enabled() bool {
	return len(a.apiKey) > 0 || len(a.jwtSecret) > 0
}

// Check returns nil when r carries acceptable credentials.
func (a *Authenticator) Check(r *http.Request) error {
	if !a.Enabled() {
		return nil
	}

	if key := r.Header.Get(HeaderAPIKey); key != "" {
		if a.matchAPIKey(key) {
			return nil
		}
		return ErrInvalidCredentials
	}

	token, ok := bearerToken(r)
	if !ok {
		return ErrNoCredentials
	}
	if a.matchAPIKey(token) {
		return nil
	}
	if len(a.jwtSecret) > 0 {
		if err := a.verifyJWT(token); err != nil {
			return errors.Join(ErrInvalidCredentials, err)
		}
		return nil
	}
	return ErrInvalidCredentials
}

// Middleware answers 401 for requests that fail Check and ends the chain.
func (a *Authenticator) Middleware() httpserver.HandlerFunc {
	return func(rp *httpserver.RequestProcessor) {
		r := rp.Request()
		if err := a.Check(r); err != nil {
			a.logger.Warn("Rejected unauthenticated request", "path", r.URL.Path, "error", err)
			w := rp.Writer()
			w.Header().Set("WWW-Authenticate", `Bearer realm="mcp"`)
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			rp.Abort()
			return
		}
		rp.Next()
	}
}

func (a *Authenticator) matchAPIKey(candidate string) bool {
	if len(a.apiKey) == 0 {
		return false
	}
	return subtle.ConstantTimeCompare(a.apiKey, []byte(candidate)) == 1
}

func (a *Authenticator) verifyJWT(raw string) error {
	_, err := jwt.Parse(raw, func(*jwt.Token) (any, error) {
		return a.jwtSecret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	return err
}

func bearerToken(r *http.Request) (string, bool) {
	scheme, token, ok := strings.Cut(r.Header.Get("Authorization"), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
