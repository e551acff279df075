package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		transport Transport
		port      int
		wantErr   bool
	}{
		{"stdio default port", TransportStdio, DefaultPort, false},
		{"stdio zero port", TransportStdio, 0, false},
		{"stdio negative port", TransportStdio, -1, false},
		{"http valid port", TransportHTTP, 8080, false},
		{"http zero port", TransportHTTP, 0, true},
		{"http negative port", TransportHTTP, -5, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			cfg := NewDefault()
			cfg.Server.Transport = tc.transport
			cfg.Server.Port = tc.port

			err := cfg.Validate()
			if !tc.wantErr {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.ErrorIs(t, err, ErrValidationFailed)
			assert.ErrorIs(t, err, ErrInvalidPort)
			assert.Contains(t, err.Error(), "Configuration validation failed:")
			assert.Contains(t, err.Error(), "PORT must be a positive number when using HTTP transport")
		})
	}
}
