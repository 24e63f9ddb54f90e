// Package api provides HTTP handlers for the API.
package api

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/todosum/todosum-api/internal/api/shared"
	"github.com/todosum/todosum-api/internal/domain"
	"github.com/todosum/todosum-api/internal/platform/logger"
	"github.com/todosum/todosum-api/internal/service"
)

// TaskHandler handles task CRUD HTTP requests.
type TaskHandler struct {
	taskService service.TaskService
	validator   *validator.Validate
	logger      *slog.Logger
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(taskService service.TaskService, log *slog.Logger) *TaskHandler {
	if log == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for TaskHandler")
	}

	return &TaskHandler{
		taskService: taskService,
		validator:   newValidator(),
		logger:      log.With(slog.String("component", "task_handler")),
	}
}

// ListTasks handles GET /api/todos requests.
// It returns every task in store insertion order.
func (h *TaskHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.taskService.List(r.Context())
	if err != nil {
		respondWithMappedError(w, r, err, "Failed to fetch todos")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, tasksToResponse(tasks))
}

// CreateTask handles POST /api/todos requests.
func (h *TaskHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req CreateTaskRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		var invalid validator.ValidationErrors
		if errors.As(err, &invalid) {
			shared.RespondWithValidationErrors(w, r, "Invalid todo data", fieldErrorsFrom(invalid))
			return
		}
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid todo data")
		return
	}

	input := service.CreateTaskInput{
		Title:       req.Title,
		Description: *req.Description,
		Priority:    domain.Priority(req.Priority),
	}
	if req.DueDate != nil {
		due, err := time.Parse(dueDateLayout, *req.DueDate)
		if err != nil {
			// Validator already checked the format; this only fires for
			// out-of-range dates like 2024-02-31.
			shared.RespondWithValidationErrors(w, r, "Invalid todo data", []domain.FieldError{
				{Field: "dueDate", Reason: "must be a date in YYYY-MM-DD format"},
			})
			return
		}
		input.DueDate = &due
	}
	if req.Completed != nil {
		input.Completed = *req.Completed
	}

	task, err := h.taskService.Create(r.Context(), input)
	if err != nil {
		log.Error("failed to create task", "error", err)
		respondWithMappedError(w, r, err, "Failed to create todo")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, taskToResponse(task))
}

// UpdateTask handles PUT /api/todos/{id} requests.
// Absent fields are left untouched; the update either fully applies or not at all.
func (h *TaskHandler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	id, ok := taskIDFromPath(w, r)
	if !ok {
		return
	}

	var req UpdateTaskRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		var invalid validator.ValidationErrors
		if errors.As(err, &invalid) {
			shared.RespondWithValidationErrors(w, r, "Invalid todo data", fieldErrorsFrom(invalid))
			return
		}
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid todo data")
		return
	}

	patch := domain.TaskPatch{
		Title:       req.Title,
		Description: req.Description,
		Completed:   req.Completed,
	}
	if req.Priority != nil {
		priority := domain.Priority(*req.Priority)
		patch.Priority = &priority
	}
	if req.DueDate.Set {
		var due *time.Time
		if !req.DueDate.Null {
			parsed, err := time.Parse(dueDateLayout, req.DueDate.Raw)
			if err != nil {
				shared.RespondWithValidationErrors(w, r, "Invalid todo data", []domain.FieldError{
					{Field: "dueDate", Reason: "must be a date in YYYY-MM-DD format"},
				})
				return
			}
			due = &parsed
		}
		patch.DueDate = &due
	}

	task, err := h.taskService.Update(r.Context(), id, patch)
	if err != nil {
		respondWithMappedError(w, r, err, "Failed to update todo")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, taskToResponse(task))
}

// DeleteTask handles DELETE /api/todos/{id} requests.
func (h *TaskHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	id, ok := taskIDFromPath(w, r)
	if !ok {
		return
	}

	if err := h.taskService.Delete(r.Context(), id); err != nil {
		respondWithMappedError(w, r, err, "Failed to delete todo")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// taskIDFromPath extracts the integer task ID from the URL path. A
// non-numeric id cannot match any stored task, so it reports not-found, and
// an error response has already been written when ok is false.
func taskIDFromPath(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusNotFound, "Todo not found")
		return 0, false
	}
	return id, true
}
