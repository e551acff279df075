package main

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/atlanticdynamic/mcpfoundation/internal/config"
	"github.com/atlanticdynamic/mcpfoundation/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv blanks every variable the loader reads. Empty values count as unset.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		config.EnvTransport, config.EnvPort, config.EnvHost,
		config.EnvLogLevel, config.EnvLogFormat, config.EnvEnvironment,
		config.EnvAPIKey, config.EnvJWTSecret, config.EnvAllowedOrigins,
		config.EnvEnableTools, config.EnvEnableResources, config.EnvEnablePrompts,
		config.EnvPythonPath, config.EnvNodePath, config.EnvMaxExecutionTime,
	} {
		t.Setenv(key, "")
	}
}

func TestVersionCommand(t *testing.T) {
	var out bytes.Buffer
	app := newApp()
	app.Writer = &out

	require.NoError(t, app.Run(t.Context(), []string{"mcpfoundation", "version"}))
	assert.Equal(t, fmt.Sprintf("mcpfoundation version %s\n", Version), out.String())
}

func TestPrepare(t *testing.T) {
	t.Run("help stops startup", func(t *testing.T) {
		clearEnv(t)
		var out, logs bytes.Buffer

		st, err := prepare([]string{"--help"}, &out, &logs)
		require.ErrorIs(t, err, errHelpShown)
		assert.Nil(t, st)
		assert.Contains(t, out.String(), "Usage: mcpfoundation [options]")
	})

	t.Run("arguments override environment", func(t *testing.T) {
		clearEnv(t)
		t.Setenv(config.EnvTransport, "stdio")
		t.Setenv(config.EnvPort, "9000")
		var out, logs bytes.Buffer

		st, err := prepare([]string{"--transport", "http", "--port", "8080", "-h", "127.0.0.1"}, &out, &logs)
		require.NoError(t, err)
		assert.Equal(t, config.TransportHTTP, st.cfg.Server.Transport)
		assert.Equal(t, 8080, st.cfg.Server.Port)
		assert.Equal(t, "127.0.0.1", st.cfg.Server.Host)
		assert.Empty(t, out.String())
	})

	t.Run("early warnings are replayed", func(t *testing.T) {
		clearEnv(t)
		t.Setenv(config.EnvPort, "abc")
		t.Setenv(config.EnvLogFormat, "json")
		var out, logs bytes.Buffer

		st, err := prepare([]string{"--verbose"}, &out, &logs)
		require.NoError(t, err)
		assert.Equal(t, config.DefaultPort, st.cfg.Server.Port)
		assert.Contains(t, logs.String(), "Ignoring non-numeric port")
		assert.Contains(t, logs.String(), "Ignoring argument")
		assert.Contains(t, logs.String(), "--verbose")
	})

	t.Run("http with port zero fails validation", func(t *testing.T) {
		clearEnv(t)
		var out, logs bytes.Buffer

		_, err := prepare([]string{"--transport", "http", "--port", "0"}, &out, &logs)
		require.ErrorIs(t, err, config.ErrValidationFailed)
		assert.Contains(t, logs.String(), "Invalid configuration")
	})

	t.Run("missing config file", func(t *testing.T) {
		clearEnv(t)
		var out, logs bytes.Buffer

		_, err := prepare([]string{"--config", filepath.Join(t.TempDir(), "none.toml")}, &out, &logs)
		require.ErrorIs(t, err, config.ErrFailedToLoadConfig)
		assert.Contains(t, logs.String(), "Failed to load configuration")
	})
}

func TestValidate(t *testing.T) {
	t.Run("prints the effective configuration", func(t *testing.T) {
		clearEnv(t)
		path := filepath.Join(t.TempDir(), "mcpfoundation.toml")
		require.NoError(t, os.WriteFile(path, []byte("version = \"v1\"\n\n[server]\nport = 7000\n"), 0o644))

		var out, logs bytes.Buffer
		require.NoError(t, validate([]string{"--config", path, "--transport", "http"}, &out, &logs))
		assert.Contains(t, out.String(), "Configuration is valid")
		assert.Contains(t, out.String(), "MCP Foundation Configuration")
		assert.Contains(t, out.String(), "7000")
		assert.Contains(t, out.String(), path)
	})

	t.Run("lists registered capabilities", func(t *testing.T) {
		clearEnv(t)

		var out, logs bytes.Buffer
		require.NoError(t, validate(nil, &out, &logs))
		got := out.String()
		assert.Contains(t, got, "Capabilities")
		for _, want := range []string{"echo", "calculate", "file://example/{filename}", "greeting"} {
			assert.Contains(t, got, want)
		}
	})

	t.Run("disabled capabilities are marked", func(t *testing.T) {
		clearEnv(t)
		t.Setenv(config.EnvEnablePrompts, "false")

		var out, logs bytes.Buffer
		require.NoError(t, validate(nil, &out, &logs))
		assert.Contains(t, out.String(), "(disabled)")
		assert.NotContains(t, out.String(), "greeting")
	})

	t.Run("invalid configuration", func(t *testing.T) {
		clearEnv(t)
		t.Setenv(config.EnvTransport, "http")
		t.Setenv(config.EnvPort, "-1")

		var out, logs bytes.Buffer
		err := validate(nil, &out, &logs)
		require.ErrorIs(t, err, config.ErrValidationFailed)
		assert.NotContains(t, out.String(), "Configuration is valid")
	})
}

func TestServe_HTTP(t *testing.T) {
	clearEnv(t)
	port := testutil.GetRandomPort(t)
	var out, logs testutil.LogBuffer

	ctx, cancel := context.WithCancel(t.Context())
	defer cancel()

	errCh := make(chan error, 1)
	go func() {
		errCh <- serve(ctx, []string{
			"--transport", "http",
			"--host", "127.0.0.1",
			"--port", fmt.Sprint(port),
		}, &out, &logs)
	}()

	healthURL := fmt.Sprintf("http://127.0.0.1:%d/health", port)
	require.Eventually(t, func() bool {
		resp, err := http.Get(healthURL)
		if err != nil {
			return false
		}
		_ = resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 5*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-errCh:
		require.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("serve did not return after cancellation")
	}
	assert.True(t, logs.Contains("MCP Server started in HTTP mode"))
	assert.True(t, logs.Contains("Server shutdown complete"))
}
