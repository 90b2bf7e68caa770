package app

import (
	"io"
	"log/slog"
)

// App encapsulates one pipeline invocation: its configuration, an isolated
// logger, and the orchestration that turns inputs into a build description
// and hands it to the external executor.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	config *Config
}

// NewApp is the constructor for the main application.
func NewApp(outW io.Writer, cfg *Config) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, outW)
	logger.Debug("Logger configured successfully.")

	return &App{
		outW:   outW,
		logger: logger,
		config: cfg,
	}
}

// Config returns the application's configuration. This is primarily for
// testing.
func (a *App) Config() *Config {
	return a.config
}
