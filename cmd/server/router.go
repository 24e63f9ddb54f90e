package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/todosum/todosum-api/internal/api"
	apiMiddleware "github.com/todosum/todosum-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes
// and middleware. Returns the configured router.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)

	taskHandler := api.NewTaskHandler(app.taskService, app.logger)
	summaryHandler := api.NewSummaryHandler(app.taskService, app.summarizer, app.dispatcher, app.logger)

	r.Route("/api", func(r chi.Router) {
		// Todo CRUD endpoints
		r.Get("/todos", taskHandler.ListTasks)
		r.Post("/todos", taskHandler.CreateTask)
		r.Put("/todos/{id}", taskHandler.UpdateTask)
		r.Delete("/todos/{id}", taskHandler.DeleteTask)

		// AI summary endpoint
		r.Post("/todos/summarize", summaryHandler.Summarize)

		// Slack integration endpoint
		r.Post("/slack/send-summary", summaryHandler.SendSummary)
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
