package main

import (
	"log/slog"
	"os"

	"github.com/cadencehq/cadence-server/internal/config"
	"github.com/cadencehq/cadence-server/internal/logger"
)

// initLogger initializes the default slog logger from app configuration
func initLogger(cfg *config.Config) {
	env := os.Getenv("ENVIRONMENT")
	if env == "" {
		env = logger.EnvironmentDev
	}
	addSource := env == logger.EnvironmentDev

	lc := logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		logger.DefaultServiceName,
		logger.DefaultVersion,
		env,
		addSource,
	)

	opts := &slog.HandlerOptions{
		Level:     lc.LogLevel(),
		AddSource: lc.AddSource,
	}

	var handler slog.Handler
	if lc.IsJSON() {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	slog.SetDefault(slog.New(handler.WithAttrs(lc.BaseAttributes())))
}
