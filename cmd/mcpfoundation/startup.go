package main

import (
	"errors"
	"io"
	"io/fs"
	"log/slog"

	"github.com/atlanticdynamic/mcpfoundation/internal/args"
	"github.com/atlanticdynamic/mcpfoundation/internal/config"
	"github.com/atlanticdynamic/mcpfoundation/internal/logging"
	"github.com/joho/godotenv"
	"github.com/robbyt/go-loglater"
)

const dotEnvFile = ".env"

var errHelpShown = errors.New("help shown")

// startup is the result of the steps shared by serve and validate.
type startup struct {
	cfg        config.AppConfig
	configPath string
	handler    slog.Handler
	logger     *slog.Logger
}

// prepare loads .env, parses argv, loads and validates the configuration,
// then builds the log handler. Warnings raised before the handler exists are
// buffered and replayed into it. errHelpShown means usage went to out. A nil
// logOut logs to stderr through the default logger.
func prepare(argv []string, out io.Writer, logOut io.Writer) (*startup, error) {
	early := loglater.NewLogCollector(nil)
	earlyLogger := slog.New(early)

	if err := godotenv.Load(dotEnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		earlyLogger.Warn("Failed to load .env file", "path", dotEnvFile, "error", err)
	}

	parsed := args.Parse(argv, out)
	if parsed.Help {
		return nil, errHelpShown
	}
	for _, msg := range parsed.Unrecognized {
		earlyLogger.Warn("Ignoring argument", "reason", msg)
	}

	loaderOpts := []config.Option{config.WithLogHandler(early)}
	if parsed.ConfigPath != "" {
		loaderOpts = append(loaderOpts, config.WithFile(parsed.ConfigPath))
	}

	cfg, loadErr := config.NewLoader(loaderOpts...).Load()
	if loadErr == nil {
		cfg = parsed.Apply(cfg)
	}

	// with no usable config the handler falls back to defaults
	server := cfg.Server
	if loadErr != nil {
		server = config.NewDefault().Server
	}
	handler := setupHandler(server, logOut)
	logger := slog.New(handler)

	if err := early.PlayLogs(handler); err != nil {
		logger.Warn("Failed to replay startup logs", "error", err)
	}

	if loadErr != nil {
		logger.Error("Failed to load configuration", "error", loadErr)
		return nil, loadErr
	}
	if err := cfg.Validate(); err != nil {
		logger.Error("Invalid configuration", "error", err)
		return nil, err
	}

	return &startup{cfg: cfg, configPath: parsed.ConfigPath, handler: handler, logger: logger}, nil
}

// setupHandler installs the process-wide logger, unless logOut redirects
// output somewhere else.
func setupHandler(server config.Server, logOut io.Writer) slog.Handler {
	if logOut == nil {
		return logging.SetupLogger(string(server.LogFormat), string(server.LogLevel))
	}
	return logging.SetupHandler(string(server.LogFormat), string(server.LogLevel), logOut)
}
