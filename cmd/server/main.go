// Package main implements the entry point for the lexiblog API server, which
// turns short content requests into prompts for a generative language model
// and returns normalized results to the blog frontend.
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/prometheus/client_golang/prometheus"
)

// main is the entry point for the lexiblog-api server.
// It loads configuration, sets up logging, wires the generation service and
// serves HTTP until interrupted.
func main() {
	fmt.Println("Lexiblog API Server Starting...")

	app, err := initializeApp()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	if err := app.Run(context.Background()); err != nil {
		app.logger.Error("Application stopped with error", "error", err)
		os.Exit(1)
	}
}

// initializeApp loads configuration and sets up application components.
func initializeApp() (*application, error) {
	cfg, err := loadAppConfig()
	if err != nil {
		return nil, err
	}

	logger, err := setupAppLogger(cfg)
	if err != nil {
		return nil, err
	}

	return newApplication(cfg, logger, prometheus.NewRegistry())
}
