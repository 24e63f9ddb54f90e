package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/todosum/todosum-api/internal/domain"
	"github.com/todosum/todosum-api/internal/platform/logger"
	"github.com/todosum/todosum-api/internal/store"
)

// PostgresTaskStore implements the store.TaskStore interface
// using a PostgreSQL database as the storage backend.
type PostgresTaskStore struct {
	db store.DBTX
}

// NewPostgresTaskStore creates a new PostgreSQL implementation of the
// TaskStore interface. It accepts a database connection or transaction that
// should be initialized and managed by the caller.
func NewPostgresTaskStore(db store.DBTX) *PostgresTaskStore {
	if db == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("db cannot be nil")
	}
	return &PostgresTaskStore{db: db}
}

// Ensure PostgresTaskStore implements store.TaskStore interface
var _ store.TaskStore = (*PostgresTaskStore)(nil)

// List implements store.TaskStore.List.
// ORDER BY id preserves insertion order since ids come from a sequence.
func (s *PostgresTaskStore) List(ctx context.Context) ([]*domain.Task, error) {
	log := logger.FromContext(ctx)

	query := `
		SELECT id, title, description, priority, due_date, completed, created_at, updated_at
		FROM tasks
		ORDER BY id ASC
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		log.Error("failed to query tasks", "error", err)
		return nil, fmt.Errorf("failed to query tasks: %w", err)
	}
	defer func() { _ = rows.Close() }()

	tasks := make([]*domain.Task, 0)
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			log.Error("failed to scan task row", "error", err)
			return nil, fmt.Errorf("failed to scan task row: %w", err)
		}
		tasks = append(tasks, task)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate task rows: %w", err)
	}

	return tasks, nil
}

// GetByID implements store.TaskStore.GetByID.
// Returns store.ErrTaskNotFound if the task does not exist.
func (s *PostgresTaskStore) GetByID(ctx context.Context, id int64) (*domain.Task, error) {
	query := `
		SELECT id, title, description, priority, due_date, completed, created_at, updated_at
		FROM tasks
		WHERE id = $1
	`

	row := s.db.QueryRowContext(ctx, query, id)
	task, err := scanTask(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to get task %d: %w", id, err)
	}

	return task, nil
}

// Create implements store.TaskStore.Create.
// The database assigns the id from the tasks sequence; the assigned id is
// written back onto the task.
func (s *PostgresTaskStore) Create(ctx context.Context, task *domain.Task) error {
	log := logger.FromContext(ctx)

	if err := task.Validate(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	query := `
		INSERT INTO tasks (title, description, priority, due_date, completed, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`

	err := s.db.QueryRowContext(ctx, query,
		task.Title,
		task.Description,
		string(task.Priority),
		dueDateValue(task.DueDate),
		task.Completed,
		task.CreatedAt,
		task.UpdatedAt,
	).Scan(&task.ID)
	if err != nil {
		log.Error("failed to insert task", "error", err)
		return fmt.Errorf("failed to insert task: %w", err)
	}

	return nil
}

// Update implements store.TaskStore.Update.
// Returns store.ErrTaskNotFound if the task does not exist.
func (s *PostgresTaskStore) Update(ctx context.Context, task *domain.Task) error {
	log := logger.FromContext(ctx)

	if err := task.Validate(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	query := `
		UPDATE tasks
		SET title = $1, description = $2, priority = $3, due_date = $4, completed = $5, updated_at = $6
		WHERE id = $7
	`

	result, err := s.db.ExecContext(ctx, query,
		task.Title,
		task.Description,
		string(task.Priority),
		dueDateValue(task.DueDate),
		task.Completed,
		task.UpdatedAt,
		task.ID,
	)
	if err != nil {
		log.Error("failed to update task", "task_id", task.ID, "error", err)
		return fmt.Errorf("failed to update task: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return store.ErrTaskNotFound
	}

	return nil
}

// Delete implements store.TaskStore.Delete.
// Returns store.ErrTaskNotFound if the task does not exist.
func (s *PostgresTaskStore) Delete(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	result, err := s.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete task", "task_id", id, "error", err)
		return fmt.Errorf("failed to delete task: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return store.ErrTaskNotFound
	}

	return nil
}

// rowScanner covers both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanTask maps one database row onto a domain task.
func scanTask(row rowScanner) (*domain.Task, error) {
	var (
		task     domain.Task
		priority string
		dueDate  sql.NullTime
	)

	err := row.Scan(
		&task.ID,
		&task.Title,
		&task.Description,
		&priority,
		&dueDate,
		&task.Completed,
		&task.CreatedAt,
		&task.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	task.Priority = domain.Priority(priority)
	if dueDate.Valid {
		due := dueDate.Time
		task.DueDate = &due
	}

	return &task, nil
}

// dueDateValue converts the optional due date into a nullable SQL value.
func dueDateValue(due *time.Time) sql.NullTime {
	if due == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *due, Valid: true}
}
