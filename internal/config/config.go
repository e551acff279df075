// Package config assembles the server configuration from defaults, an optional
// TOML file, and the process environment.
package config

import (
	"slices"
	"time"
)

// Transport selects the byte transport used to carry MCP messages.
type Transport string

const (
	TransportStdio Transport = "stdio"
	TransportHTTP  Transport = "http"
)

// ParseTransport returns the Transport named by s, and false if s is not one
// of the supported literals.
func ParseTransport(s string) (Transport, bool) {
	switch Transport(s) {
	case TransportStdio, TransportHTTP:
		return Transport(s), true
	default:
		return "", false
	}
}

// String returns the string representation of Transport
func (t Transport) String() string {
	return string(t)
}

// LogFormat represents the logging output format
type LogFormat string

// LogLevel represents the logging verbosity level
type LogLevel string

// Constants for LogFormat
const (
	LogFormatText LogFormat = "text"
	LogFormatJSON LogFormat = "json"
)

// Constants for LogLevel
const (
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)

// Default values substituted for any setting that is not provided.
const (
	DefaultTransport        = TransportStdio
	DefaultPort             = 3001
	DefaultHost             = "0.0.0.0"
	DefaultLogLevel         = LogLevelInfo
	DefaultLogFormat        = LogFormatText
	DefaultEnvironment      = "development"
	DefaultPythonPath       = "python3"
	DefaultNodePath         = "node"
	DefaultMaxExecutionTime = 30 * time.Second
)

// AppConfig is the complete application configuration. It is built once per
// process and passed by value; nothing downstream mutates it.
type AppConfig struct {
	Server   Server   `toml:"server"`
	Security Security `toml:"security"`
	Features Features `toml:"features"`
	Tools    Tools    `toml:"tools"`
}

// Server contains transport and logging settings.
type Server struct {
	Transport   Transport `toml:"transport"`
	Port        int       `toml:"port"`
	Host        string    `toml:"host"`
	LogLevel    LogLevel  `toml:"log_level"`
	LogFormat   LogFormat `toml:"log_format"`
	Environment string    `toml:"environment"`
}

// Security contains the optional HTTP access controls.
type Security struct {
	APIKey         string   `toml:"api_key,omitempty"`
	JWTSecret      string   `toml:"jwt_secret,omitempty"`
	AllowedOrigins []string `toml:"allowed_origins"`
}

// Features toggles the capability registries.
type Features struct {
	EnableTools     bool `toml:"enable_tools"`
	EnableResources bool `toml:"enable_resources"`
	EnablePrompts   bool `toml:"enable_prompts"`
}

// Tools contains tool execution settings.
type Tools struct {
	PythonPath       string        `toml:"python_path"`
	NodePath         string        `toml:"node_path"`
	MaxExecutionTime time.Duration `toml:"max_execution_time"`
}

// NewDefault returns an AppConfig populated with every default.
func NewDefault() AppConfig {
	return AppConfig{
		Server: Server{
			Transport:   DefaultTransport,
			Port:        DefaultPort,
			Host:        DefaultHost,
			LogLevel:    DefaultLogLevel,
			LogFormat:   DefaultLogFormat,
			Environment: DefaultEnvironment,
		},
		Security: Security{
			AllowedOrigins: []string{},
		},
		Features: Features{
			EnableTools:     true,
			EnableResources: true,
			EnablePrompts:   true,
		},
		Tools: Tools{
			PythonPath:       DefaultPythonPath,
			NodePath:         DefaultNodePath,
			MaxExecutionTime: DefaultMaxExecutionTime,
		},
	}
}

// Clone returns a copy that shares no slices with c.
func (c AppConfig) Clone() AppConfig {
	c.Security.AllowedOrigins = slices.Clone(c.Security.AllowedOrigins)
	if c.Security.AllowedOrigins == nil {
		c.Security.AllowedOrigins = []string{}
	}
	return c
}

// IsHTTP reports whether the HTTP transport is selected.
func (c AppConfig) IsHTTP() bool {
	return c.Server.Transport == TransportHTTP
}

// AuthEnabled reports whether HTTP requests must present credentials.
func (s Security) AuthEnabled() bool {
	return s.APIKey != "" || s.JWTSecret != ""
}
