// Package main implements the entry point for the todo summary API server,
// which manages a personal task list and generates LLM summaries of pending
// tasks for delivery to Slack.
package main

import (
	"context"
	"log"
	"log/slog"

	"github.com/todosum/todosum-api/internal/config"
	"github.com/todosum/todosum-api/internal/platform/logger"
)

func main() {
	app, err := initializeApp(context.Background())
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	if err := app.startHTTPServer(context.Background(), app.setupRouter()); err != nil {
		app.logger.Error("Server exited with error", "error", err)
		app.cleanup()
		log.Fatalf("Server error: %v", err)
	}
}

// initializeApp loads configuration and sets up application components:
// logging, storage, the summarizer, and the dispatcher. External credentials
// are validated here, so a misconfigured deployment fails fast instead of at
// the first summarize or dispatch request.
func initializeApp(ctx context.Context) (*application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	appLogger := logger.Setup(cfg.Server)

	slog.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"database_configured", cfg.Database.URL != "",
		"model", cfg.LLM.ModelName)

	return newApplication(ctx, cfg, appLogger)
}
