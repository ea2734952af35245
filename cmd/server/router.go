package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/lexiblog/lexiblog-api/internal/api"
	apiMiddleware "github.com/lexiblog/lexiblog-api/internal/api/middleware"
	"github.com/lexiblog/lexiblog-api/internal/metrics"
)

// setupRouter creates and configures the application router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.Trace(app.logger))

	generationHandler := api.NewGenerationHandler(
		app.dispatcher,
		app.logger,
		app.config.Server.MaxBodyBytes,
	)

	r.Route("/api", func(r chi.Router) {
		r.Post("/gemini", generationHandler.Generate)
		r.Post("/generate-sentences", generationHandler.GenerateSentences)
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, err := w.Write([]byte("OK"))
		if err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	if app.config.Server.MetricsEnabled {
		r.Handle("/metrics", metrics.Handler(app.registry))
	}

	return r
}
