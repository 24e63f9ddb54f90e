// Package service implements the application's business logic on top of the
// persistence interfaces defined in internal/store.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/todosum/todosum-api/internal/domain"
	"github.com/todosum/todosum-api/internal/store"
)

// CreateTaskInput carries the validated fields for a new task.
// Completed defaults to false when the client omits it.
type CreateTaskInput struct {
	Title       string
	Description string
	Priority    domain.Priority
	DueDate     *time.Time
	Completed   bool
}

// TaskService provides task-related operations: CRUD plus the derived
// pending-task view consumed by the summary pipeline.
type TaskService interface {
	// List returns all tasks in store insertion order, with no implicit
	// filtering.
	List(ctx context.Context) ([]*domain.Task, error)

	// Create builds a task from validated input, stamps its timestamps
	// (CreatedAt == UpdatedAt), persists it and returns the stored record
	// with its assigned ID.
	Create(ctx context.Context, input CreateTaskInput) (*domain.Task, error)

	// Update merges the provided fields onto the existing task and refreshes
	// UpdatedAt. Returns store.ErrTaskNotFound if the id does not exist; in
	// that case nothing is written.
	Update(ctx context.Context, id int64, patch domain.TaskPatch) (*domain.Task, error)

	// Delete removes the task. Returns store.ErrTaskNotFound if the id does
	// not exist, so a repeated delete is observable as not-found.
	Delete(ctx context.Context, id int64) error

	// Pending returns all tasks that are not completed. The view is
	// recomputed from the store on every call, never cached, so it always
	// reflects the latest store state.
	Pending(ctx context.Context) ([]*domain.Task, error)
}

type taskServiceImpl struct {
	taskStore store.TaskStore
	logger    *slog.Logger
}

// NewTaskService creates a new TaskService backed by the given store.
func NewTaskService(taskStore store.TaskStore, logger *slog.Logger) (TaskService, error) {
	if taskStore == nil {
		return nil, errors.New("task store cannot be nil")
	}
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	return &taskServiceImpl{
		taskStore: taskStore,
		logger:    logger.With(slog.String("component", "task_service")),
	}, nil
}

// List implements TaskService.List.
func (s *taskServiceImpl) List(ctx context.Context) ([]*domain.Task, error) {
	tasks, err := s.taskStore.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

// Create implements TaskService.Create.
func (s *taskServiceImpl) Create(ctx context.Context, input CreateTaskInput) (*domain.Task, error) {
	task, err := domain.NewTask(input.Title, input.Description, input.Priority, input.DueDate)
	if err != nil {
		return nil, fmt.Errorf("invalid task input: %w", err)
	}
	task.Completed = input.Completed

	if err := s.taskStore.Create(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	s.logger.DebugContext(ctx, "task created",
		slog.Int64("task_id", task.ID),
		slog.String("priority", string(task.Priority)))
	return task, nil
}

// Update implements TaskService.Update.
// The patch is applied to a copy fetched from the store; if the apply or the
// write fails, the store is left unchanged.
func (s *taskServiceImpl) Update(ctx context.Context, id int64, patch domain.TaskPatch) (*domain.Task, error) {
	task, err := s.taskStore.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, store.ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to load task %d: %w", id, err)
	}

	if err := task.Apply(patch); err != nil {
		return nil, fmt.Errorf("invalid task update: %w", err)
	}

	if err := s.taskStore.Update(ctx, task); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, store.ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to update task %d: %w", id, err)
	}

	s.logger.DebugContext(ctx, "task updated", slog.Int64("task_id", task.ID))
	return task, nil
}

// Delete implements TaskService.Delete.
func (s *taskServiceImpl) Delete(ctx context.Context, id int64) error {
	if err := s.taskStore.Delete(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.ErrTaskNotFound
		}
		return fmt.Errorf("failed to delete task %d: %w", id, err)
	}

	s.logger.DebugContext(ctx, "task deleted", slog.Int64("task_id", id))
	return nil
}

// Pending implements TaskService.Pending.
func (s *taskServiceImpl) Pending(ctx context.Context) ([]*domain.Task, error) {
	tasks, err := s.taskStore.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	pending := make([]*domain.Task, 0, len(tasks))
	for _, task := range tasks {
		if task.IsPending() {
			pending = append(pending, task)
		}
	}
	return pending, nil
}
