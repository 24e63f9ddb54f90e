package domain

import (
	"fmt"
	"time"
)

// Task-specific validation errors. Both wrap ErrValidation so callers can
// classify them with a single errors.Is check.
var (
	// ErrTaskTitleEmpty is returned when a task's title is empty.
	ErrTaskTitleEmpty = fmt.Errorf("%w: task title cannot be empty", ErrValidation)

	// ErrTaskPriorityInvalid is returned when a task's priority is not one of
	// the known priority levels.
	ErrTaskPriorityInvalid = fmt.Errorf("%w: task priority must be low, medium, or high", ErrValidation)
)

// Priority is the urgency level assigned to a task.
type Priority string

// Known priority levels, ordered from least to most urgent.
const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// IsValid reports whether p is one of the known priority levels.
func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Task represents a single actionable item on the user's list.
// The ID is assigned by the task store on creation and is immutable
// afterwards. DueDate is optional; a nil value means no deadline.
type Task struct {
	ID          int64
	Title       string
	Description string
	Priority    Priority
	DueDate     *time.Time
	Completed   bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewTask creates a new Task from validated input. The store assigns the ID
// when the task is persisted; CreatedAt and UpdatedAt are stamped with the
// same instant so that a freshly created task satisfies
// CreatedAt == UpdatedAt. Returns an error if validation fails.
func NewTask(title, description string, priority Priority, dueDate *time.Time) (*Task, error) {
	now := time.Now().UTC()
	task := &Task{
		Title:       title,
		Description: description,
		Priority:    priority,
		DueDate:     dueDate,
		Completed:   false,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := task.Validate(); err != nil {
		return nil, err
	}

	return task, nil
}

// Validate checks if the Task has valid data.
// Returns an error if any field fails validation.
func (t *Task) Validate() error {
	if t.Title == "" {
		return ErrTaskTitleEmpty
	}

	if !t.Priority.IsValid() {
		return ErrTaskPriorityInvalid
	}

	return nil
}

// TaskPatch describes a partial update to a task. Nil fields are left
// untouched by Apply; DueDate uses a double pointer so that "clear the due
// date" (outer non-nil, inner nil) is distinguishable from "leave it alone"
// (outer nil).
type TaskPatch struct {
	Title       *string
	Description *string
	Priority    *Priority
	DueDate     **time.Time
	Completed   *bool
}

// Apply merges the patch onto the task and refreshes UpdatedAt. Only fields
// present in the patch are changed; CreatedAt and ID are never touched.
// UpdatedAt is kept monotonically non-decreasing even if the clock reads
// earlier than the previous stamp.
func (t *Task) Apply(patch TaskPatch) error {
	updated := *t

	if patch.Title != nil {
		updated.Title = *patch.Title
	}
	if patch.Description != nil {
		updated.Description = *patch.Description
	}
	if patch.Priority != nil {
		updated.Priority = *patch.Priority
	}
	if patch.DueDate != nil {
		updated.DueDate = *patch.DueDate
	}
	if patch.Completed != nil {
		updated.Completed = *patch.Completed
	}

	if err := updated.Validate(); err != nil {
		return err
	}

	now := time.Now().UTC()
	if now.Before(updated.UpdatedAt) {
		now = updated.UpdatedAt
	}
	updated.UpdatedAt = now

	*t = updated
	return nil
}

// IsPending reports whether the task still needs attention.
func (t *Task) IsPending() bool {
	return !t.Completed
}
