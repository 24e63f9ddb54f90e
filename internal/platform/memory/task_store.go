// Package memory provides an in-memory implementation of the task store
// interface. It preserves insertion order and is safe for concurrent use,
// which makes it suitable for tests and for running the service without a
// database.
package memory

import (
	"context"
	"sync"

	"github.com/todosum/todosum-api/internal/domain"
	"github.com/todosum/todosum-api/internal/store"
)

// TaskStore is a mutex-guarded in-memory implementation of store.TaskStore.
// Tasks are kept in a map keyed by ID with a separate ordered ID slice so
// that List returns tasks in insertion order, matching the behavior of the
// PostgreSQL store's ORDER BY id.
type TaskStore struct {
	mu     sync.Mutex
	tasks  map[int64]*domain.Task
	order  []int64
	nextID int64
}

// NewTaskStore creates an empty in-memory task store.
func NewTaskStore() *TaskStore {
	return &TaskStore{
		tasks:  make(map[int64]*domain.Task),
		nextID: 1,
	}
}

// Ensure TaskStore implements store.TaskStore interface
var _ store.TaskStore = (*TaskStore)(nil)

// List implements store.TaskStore.List.
func (s *TaskStore) List(ctx context.Context) ([]*domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tasks := make([]*domain.Task, 0, len(s.order))
	for _, id := range s.order {
		tasks = append(tasks, copyTask(s.tasks[id]))
	}
	return tasks, nil
}

// GetByID implements store.TaskStore.GetByID.
func (s *TaskStore) GetByID(ctx context.Context, id int64) (*domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	task, ok := s.tasks[id]
	if !ok {
		return nil, store.ErrTaskNotFound
	}
	return copyTask(task), nil
}

// Create implements store.TaskStore.Create.
func (s *TaskStore) Create(ctx context.Context, task *domain.Task) error {
	if err := task.Validate(); err != nil {
		return store.ErrInvalidEntity
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	task.ID = s.nextID
	s.nextID++

	s.tasks[task.ID] = copyTask(task)
	s.order = append(s.order, task.ID)
	return nil
}

// Update implements store.TaskStore.Update.
func (s *TaskStore) Update(ctx context.Context, task *domain.Task) error {
	if err := task.Validate(); err != nil {
		return store.ErrInvalidEntity
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.tasks[task.ID]; !ok {
		return store.ErrTaskNotFound
	}
	s.tasks[task.ID] = copyTask(task)
	return nil
}

// Delete implements store.TaskStore.Delete.
func (s *TaskStore) Delete(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.tasks[id]; !ok {
		return store.ErrTaskNotFound
	}
	delete(s.tasks, id)

	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

// copyTask returns a shallow copy so callers cannot mutate stored state.
// DueDate is duplicated too since it is a pointer.
func copyTask(t *domain.Task) *domain.Task {
	c := *t
	if t.DueDate != nil {
		due := *t.DueDate
		c.DueDate = &due
	}
	return &c
}
