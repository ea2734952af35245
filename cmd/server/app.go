package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/lexiblog/lexiblog-api/internal/config"
	"github.com/lexiblog/lexiblog-api/internal/generation"
	"github.com/lexiblog/lexiblog-api/internal/metrics"
	"github.com/lexiblog/lexiblog-api/internal/platform/llm"
	"github.com/lexiblog/lexiblog-api/internal/service"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// application holds all the shared application dependencies.
type application struct {
	config   *config.Config
	logger   *slog.Logger
	registry *prometheus.Registry

	factory    generation.ClientFactory
	dispatcher service.ContentService
}

// newApplication creates a new application instance with all dependencies
// initialized. The model credential is not required here; requests that
// need it fail at dispatch time until it is configured.
func newApplication(cfg *config.Config, logger *slog.Logger, reg *prometheus.Registry) (*application, error) {
	factory, err := llm.NewFactory(cfg.LLM, logger)
	if err != nil {
		return nil, err
	}

	if cfg.LLM.APIKey() == "" {
		logger.Warn("model credential not configured; generation requests will fail until it is set",
			"provider", factory.Provider())
	}

	return buildApplication(cfg, logger, reg, factory)
}

// buildApplication wires the service layer on top of factory.
func buildApplication(
	cfg *config.Config,
	logger *slog.Logger,
	reg *prometheus.Registry,
	factory generation.ClientFactory,
) (*application, error) {
	app := &application{
		config:   cfg,
		logger:   logger,
		registry: reg,
		factory:  factory,
	}

	var rec *metrics.Recorder
	if cfg.Server.MetricsEnabled {
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		rec = metrics.NewRecorder(reg)
	}

	dispatcher, err := service.NewDispatcher(
		factory,
		logger.With("component", "dispatcher"),
		rec,
		service.DispatcherConfig{
			Model:   cfg.LLM.ModelName,
			Timeout: cfg.LLM.Timeout(),
		},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create dispatcher: %w", err)
	}
	app.dispatcher = dispatcher

	logger.Info("Application initialized successfully",
		"provider", factory.Provider(),
		"metrics_enabled", cfg.Server.MetricsEnabled)
	return app, nil
}

// Run starts the application server, handling lifecycle and cleanup.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}
