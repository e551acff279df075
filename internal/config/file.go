package config

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/atlanticdynamic/mcpfoundation/internal/interpolation"
	"github.com/pelletier/go-toml/v2"
)

// VersionLatest is the only config file version understood by this build.
const VersionLatest = "v1"

// fileConfig is the on-disk shape. Pointer fields distinguish an absent key
// from a zero value, so only keys present in the file override defaults.
// Tagged string values may reference ${VAR} or ${VAR:default}.
type fileConfig struct {
	Version  *string      `toml:"version"`
	Server   fileServer   `toml:"server"`
	Security fileSecurity `toml:"security"`
	Features fileFeatures `toml:"features"`
	Tools    fileTools    `toml:"tools"`
}

type fileServer struct {
	Transport   *string `toml:"transport"`
	Port        *int    `toml:"port"`
	Host        *string `toml:"host"        env_interpolation:"yes"`
	LogLevel    *string `toml:"log_level"`
	LogFormat   *string `toml:"log_format"`
	Environment *string `toml:"environment" env_interpolation:"yes"`
}

type fileSecurity struct {
	APIKey         *string  `toml:"api_key"         env_interpolation:"yes"`
	JWTSecret      *string  `toml:"jwt_secret"      env_interpolation:"yes"`
	AllowedOrigins []string `toml:"allowed_origins" env_interpolation:"yes"`
}

type fileFeatures struct {
	EnableTools     *bool `toml:"enable_tools"`
	EnableResources *bool `toml:"enable_resources"`
	EnablePrompts   *bool `toml:"enable_prompts"`
}

type fileTools struct {
	PythonPath         *string `toml:"python_path" env_interpolation:"yes"`
	NodePath           *string `toml:"node_path"   env_interpolation:"yes"`
	MaxExecutionTimeMS *int64  `toml:"max_execution_time_ms"`
}

func loadFile(path string, lookup LookupFunc) (*fileConfig, error) {
	if ext := filepath.Ext(path); ext != ".toml" {
		return nil, fmt.Errorf("%w: unsupported config extension: '%s'", ErrFailedToLoadConfig, ext)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToLoadConfig, err)
	}

	fc, err := parseFile(data)
	if err != nil {
		return nil, err
	}

	if err := interpolation.ExpandStruct(fc, interpolation.LookupFunc(lookup)); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInterpolation, err)
	}
	return fc, nil
}

func parseFile(data []byte) (*fileConfig, error) {
	fc := &fileConfig{}
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(fc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParseToml, err)
	}

	if fc.Version != nil && *fc.Version != VersionLatest {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedConfigVer, *fc.Version)
	}

	return fc, nil
}

// apply overlays the keys present in the file onto cfg. Values that cannot
// be used are reported on logger and leave the current setting in place.
func (fc *fileConfig) apply(cfg AppConfig, path string, logger *slog.Logger) AppConfig {
	s := fc.Server
	if s.Transport != nil {
		if t, ok := ParseTransport(*s.Transport); ok {
			cfg.Server.Transport = t
		} else {
			logger.Warn("Ignoring unsupported transport", "file", path, "value", *s.Transport,
				"using", cfg.Server.Transport)
		}
	}
	setIf(&cfg.Server.Port, s.Port)
	setIf(&cfg.Server.Host, s.Host)
	if s.LogLevel != nil {
		cfg.Server.LogLevel = LogLevel(*s.LogLevel)
	}
	if s.LogFormat != nil {
		cfg.Server.LogFormat = LogFormat(*s.LogFormat)
	}
	setIf(&cfg.Server.Environment, s.Environment)

	setIf(&cfg.Security.APIKey, fc.Security.APIKey)
	setIf(&cfg.Security.JWTSecret, fc.Security.JWTSecret)
	if fc.Security.AllowedOrigins != nil {
		cfg.Security.AllowedOrigins = fc.Security.AllowedOrigins
	}

	setIf(&cfg.Features.EnableTools, fc.Features.EnableTools)
	setIf(&cfg.Features.EnableResources, fc.Features.EnableResources)
	setIf(&cfg.Features.EnablePrompts, fc.Features.EnablePrompts)

	setIf(&cfg.Tools.PythonPath, fc.Tools.PythonPath)
	setIf(&cfg.Tools.NodePath, fc.Tools.NodePath)
	if fc.Tools.MaxExecutionTimeMS != nil {
		cfg.Tools.MaxExecutionTime = time.Duration(*fc.Tools.MaxExecutionTimeMS) * time.Millisecond
	}

	return cfg
}

func setIf[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
