// Package store defines interfaces for data persistence operations.
// These interfaces abstract the underlying data storage mechanism from
// the application's core logic, allowing business rules to remain
// independent of specific database technologies or persistence details.
package store

import (
	"context"

	"github.com/todosum/todosum-api/internal/domain"
)

// TaskStore defines the interface for task data persistence.
type TaskStore interface {
	// List retrieves all tasks in insertion order. An empty store yields an
	// empty slice, not an error.
	List(ctx context.Context) ([]*domain.Task, error)

	// GetByID retrieves a task by its unique ID.
	// Returns ErrTaskNotFound if the task does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Task, error)

	// Create persists a new task and assigns its ID. The task must be valid
	// according to domain validation rules. The stored task, with ID
	// populated, is written back through the same pointer.
	Create(ctx context.Context, task *domain.Task) error

	// Update saves changes to an existing task, matched by ID.
	// Returns ErrTaskNotFound if the task does not exist; in that case the
	// store is left unchanged.
	Update(ctx context.Context, task *domain.Task) error

	// Delete removes a task from the store by its ID.
	// Returns ErrTaskNotFound if the task does not exist, which makes a
	// repeated delete observable as not-found rather than a second success.
	Delete(ctx context.Context, id int64) error
}
