package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/todosum/todosum-api/internal/config"
	"github.com/todosum/todosum-api/internal/notify"
	"github.com/todosum/todosum-api/internal/platform/gemini"
	"github.com/todosum/todosum-api/internal/platform/memory"
	"github.com/todosum/todosum-api/internal/platform/postgres"
	"github.com/todosum/todosum-api/internal/platform/slack"
	"github.com/todosum/todosum-api/internal/service"
	"github.com/todosum/todosum-api/internal/store"
	"github.com/todosum/todosum-api/internal/summary"
)

// application holds the long-lived dependencies shared by all requests.
type application struct {
	config      *config.Config
	logger      *slog.Logger
	db          *sql.DB // nil when the in-memory store is selected
	taskService service.TaskService
	summarizer  summary.Summarizer
	dispatcher  notify.Dispatcher
}

// newApplication wires together the task store, service layer, summarizer,
// and dispatcher from the validated configuration.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
	}

	taskStore, err := app.setupTaskStore(ctx)
	if err != nil {
		return nil, err
	}

	taskService, err := service.NewTaskService(taskStore, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create task service: %w", err)
	}
	app.taskService = taskService

	summarizer, err := gemini.NewSummarizer(ctx, logger, cfg.LLM)
	if err != nil {
		return nil, fmt.Errorf("failed to create summarizer: %w", err)
	}
	app.summarizer = summarizer

	dispatcher, err := slack.NewClient(logger, cfg.Slack, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create Slack dispatcher: %w", err)
	}
	app.dispatcher = dispatcher

	return app, nil
}

// setupTaskStore selects the storage backend. A configured database URL
// selects PostgreSQL (with migrations applied on startup); an empty URL
// selects the in-memory store, which keeps the service runnable without a
// database during development.
func (app *application) setupTaskStore(ctx context.Context) (store.TaskStore, error) {
	if app.config.Database.URL == "" {
		app.logger.Warn("no database URL configured, using in-memory task store")
		return memory.NewTaskStore(), nil
	}

	db, err := setupDatabase(ctx, app.config.Database, app.logger)
	if err != nil {
		return nil, err
	}
	app.db = db

	if err := postgres.RunMigrations(ctx, db, app.logger); err != nil {
		_ = db.Close()
		app.db = nil
		return nil, err
	}

	return postgres.NewPostgresTaskStore(db), nil
}

// cleanup releases resources held by the application.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("failed to close database connection", "error", err)
		}
	}
}
