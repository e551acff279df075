package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"golang.org/x/net/http/httpguts"
)

// Environment variables read by the Loader.
const (
	EnvTransport        = "TRANSPORT"
	EnvPort             = "PORT"
	EnvHost             = "HOST"
	EnvLogLevel         = "LOG_LEVEL"
	EnvLogFormat        = "LOG_FORMAT"
	EnvEnvironment      = "NODE_ENV"
	EnvAPIKey           = "API_KEY"
	EnvJWTSecret        = "JWT_SECRET"
	EnvAllowedOrigins   = "ALLOWED_ORIGINS"
	EnvEnableTools      = "ENABLE_TOOLS"
	EnvEnableResources  = "ENABLE_RESOURCES"
	EnvEnablePrompts    = "ENABLE_PROMPTS"
	EnvPythonPath       = "PYTHON_PATH"
	EnvNodePath         = "NODE_PATH"
	EnvMaxExecutionTime = "MAX_TOOL_EXECUTION_TIME"
)

// LookupFunc returns the value of an environment variable and whether it is set.
type LookupFunc func(key string) (string, bool)

// Loader builds an AppConfig from defaults, an optional TOML file, and the
// environment, in that order of increasing precedence.
type Loader struct {
	lookup   LookupFunc
	filePath string
	logger   *slog.Logger
}

// NewLoader creates a Loader reading the process environment.
func NewLoader(opts ...Option) *Loader {
	l := &Loader{
		lookup: os.LookupEnv,
		logger: slog.Default().WithGroup("config"),
	}

	for _, opt := range opts {
		opt(l)
	}

	return l
}

// Load returns the assembled configuration. Only problems with the config
// file produce an error; bad environment values fall back to defaults.
func (l *Loader) Load() (AppConfig, error) {
	cfg := NewDefault()

	if l.filePath != "" {
		fc, err := loadFile(l.filePath, l.lookup)
		if err != nil {
			return AppConfig{}, err
		}
		cfg = fc.apply(cfg, l.filePath, l.logger)
		l.logger.Debug("Loaded config file", "path", l.filePath)
	}

	cfg = l.applyEnv(cfg)
	cfg.Security.AllowedOrigins = l.cleanOrigins(cfg.Security.AllowedOrigins)
	return cfg, nil
}

// Load reads the process environment and returns a fully populated
// configuration. It never fails; absent or malformed values use defaults.
func Load() AppConfig {
	cfg, _ := NewLoader().Load() // no file, so no error path
	return cfg
}

func (l *Loader) applyEnv(cfg AppConfig) AppConfig {
	if v, ok := l.get(EnvTransport); ok {
		if t, valid := ParseTransport(v); valid {
			cfg.Server.Transport = t
		} else {
			l.logger.Warn("Ignoring unsupported transport", "env", EnvTransport, "value", v,
				"using", cfg.Server.Transport)
		}
	}

	if v, ok := l.get(EnvPort); ok {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = port
		} else {
			l.logger.Warn("Ignoring non-numeric port", "env", EnvPort, "value", v,
				"using", cfg.Server.Port)
		}
	}

	if v, ok := l.get(EnvHost); ok {
		cfg.Server.Host = v
	}
	if v, ok := l.get(EnvLogLevel); ok {
		cfg.Server.LogLevel = LogLevel(strings.ToLower(v))
	}
	if v, ok := l.get(EnvLogFormat); ok {
		cfg.Server.LogFormat = LogFormat(strings.ToLower(v))
	}
	if v, ok := l.get(EnvEnvironment); ok {
		cfg.Server.Environment = v
	}

	if v, ok := l.get(EnvAPIKey); ok {
		cfg.Security.APIKey = v
	}
	if v, ok := l.get(EnvJWTSecret); ok {
		cfg.Security.JWTSecret = v
	}
	if v, ok := l.get(EnvAllowedOrigins); ok {
		cfg.Security.AllowedOrigins = strings.Split(v, ",")
	}

	// only the literal "false" disables a feature
	if v, ok := l.lookup(EnvEnableTools); ok {
		cfg.Features.EnableTools = v != "false"
	}
	if v, ok := l.lookup(EnvEnableResources); ok {
		cfg.Features.EnableResources = v != "false"
	}
	if v, ok := l.lookup(EnvEnablePrompts); ok {
		cfg.Features.EnablePrompts = v != "false"
	}

	if v, ok := l.get(EnvPythonPath); ok {
		cfg.Tools.PythonPath = v
	}
	if v, ok := l.get(EnvNodePath); ok {
		cfg.Tools.NodePath = v
	}
	if v, ok := l.get(EnvMaxExecutionTime); ok {
		if ms, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.Tools.MaxExecutionTime = time.Duration(ms) * time.Millisecond
		} else {
			l.logger.Warn("Ignoring non-numeric execution time", "env", EnvMaxExecutionTime,
				"value", v, "using", cfg.Tools.MaxExecutionTime)
		}
	}

	return cfg
}

// get returns the variable only when it is set to a non-empty value, so an
// empty variable behaves like an absent one.
func (l *Loader) get(key string) (string, bool) {
	v, ok := l.lookup(key)
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

// cleanOrigins trims each origin and drops entries that cannot be sent back
// in an Access-Control-Allow-Origin header.
func (l *Loader) cleanOrigins(origins []string) []string {
	cleaned := make([]string, 0, len(origins))
	for _, o := range origins {
		o = strings.TrimSpace(o)
		if o == "" {
			continue
		}
		if !httpguts.ValidHeaderFieldValue(o) {
			l.logger.Warn("Dropping invalid allowed origin", "origin", o)
			continue
		}
		cleaned = append(cleaned, o)
	}
	return cleaned
}
