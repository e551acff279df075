package auth

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/robbyt/go-loglater"
	"github.com/robbyt/go-supervisor/runnables/httpserver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testKey    = "test-api-key"
	testSecret = "test-jwt-secret"
)

func signed(t *testing.T, secret string, method jwt.SigningMethod, exp time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(method, jwt.RegisteredClaims{
		Subject:   "tester",
		ExpiresAt: jwt.NewNumericDate(exp),
	})
	s, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return s
}

func request(headers map[string]string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/mcp", nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	return req
}

func TestCheck(t *testing.T) {
	t.Parallel()

	valid := signed(t, testSecret, jwt.SigningMethodHS256, time.Now().Add(time.Hour))
	expired := signed(t, testSecret, jwt.SigningMethodHS256, time.Now().Add(-time.Hour))
	wrongSecret := signed(t, "other-secret", jwt.SigningMethodHS256, time.Now().Add(time.Hour))
	wrongAlg := signed(t, testSecret, jwt.SigningMethodHS512, time.Now().Add(time.Hour))

	tests := []struct {
		name    string
		key     string
		secret  string
		headers map[string]string
		wantErr error
	}{
		{"disabled accepts anything", "", "", nil, nil},
		{"missing credentials", testKey, "", nil, ErrNoCredentials},
		{"api key header", testKey, "", map[string]string{HeaderAPIKey: testKey}, nil},
		{"wrong api key header", testKey, "", map[string]string{HeaderAPIKey: "nope"}, ErrInvalidCredentials},
		{"api key as bearer", testKey, "", map[string]string{"Authorization": "Bearer " + testKey}, nil},
		{"lowercase bearer", testKey, "", map[string]string{"Authorization": "bearer " + testKey}, nil},
		{"basic auth is not accepted", testKey, "", map[string]string{"Authorization": "Basic dXNlcjpwYXNz"}, ErrNoCredentials},
		{"valid jwt", "", testSecret, map[string]string{"Authorization": "Bearer " + valid}, nil},
		{"expired jwt", "", testSecret, map[string]string{"Authorization": "Bearer " + expired}, ErrInvalidCredentials},
		{"jwt with wrong secret", "", testSecret, map[string]string{"Authorization": "Bearer " + wrongSecret}, ErrInvalidCredentials},
		{"jwt with wrong algorithm", "", testSecret, map[string]string{"Authorization": "Bearer " + wrongAlg}, ErrInvalidCredentials},
		{"jwt when only api key configured", testKey, "", map[string]string{"Authorization": "Bearer " + valid}, ErrInvalidCredentials},
		{"both configured, jwt", testKey, testSecret, map[string]string{"Authorization": "Bearer " + valid}, nil},
		{"both configured, key", testKey, testSecret, map[string]string{HeaderAPIKey: testKey}, nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			a := NewAuthenticator(tc.key, tc.secret, slog.New(loglater.NewLogCollector(nil)))
			err := a.Check(request(tc.headers))
			if tc.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestMiddleware(t *testing.T) {
	t.Parallel()

	collector := loglater.NewLogCollector(nil)
	a := NewAuthenticator(testKey, "", slog.New(collector))
	require.True(t, a.Enabled())

	called := false
	route, err := httpserver.NewRouteFromHandlerFunc("test", "/mcp",
		func(w http.ResponseWriter, _ *http.Request) {
			called = true
			w.WriteHeader(http.StatusOK)
		}, a.Middleware())
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	route.ServeHTTP(rec, request(nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, called)
	assert.Equal(t, "Unauthorized\n", rec.Body.String(), "nothing after the rejection is written")
	assert.NotEmpty(t, rec.Header().Get("WWW-Authenticate"))
	require.Len(t, collector.GetLogs(), 1)

	rec = httptest.NewRecorder()
	route.ServeHTTP(rec, request(map[string]string{HeaderAPIKey: testKey}))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, called)
}
