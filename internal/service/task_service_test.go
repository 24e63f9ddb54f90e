package service

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/todosum/todosum-api/internal/domain"
	"github.com/todosum/todosum-api/internal/platform/memory"
	"github.com/todosum/todosum-api/internal/store"
)

func newTestService(t *testing.T) TaskService {
	t.Helper()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc, err := NewTaskService(memory.NewTaskStore(), log)
	require.NoError(t, err)
	return svc
}

func TestNewTaskServiceRequiresDependencies(t *testing.T) {
	t.Parallel()

	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	_, err := NewTaskService(nil, log)
	assert.Error(t, err)

	_, err = NewTaskService(memory.NewTaskStore(), nil)
	assert.Error(t, err)
}

func TestCreateStampsEqualTimestamps(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := newTestService(t)

	due := time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC)
	task, err := svc.Create(ctx, CreateTaskInput{
		Title:       "Ship report",
		Description: "Q3 numbers",
		Priority:    domain.PriorityHigh,
		DueDate:     &due,
	})

	require.NoError(t, err)
	assert.NotZero(t, task.ID)
	assert.Equal(t, task.CreatedAt, task.UpdatedAt)
	assert.False(t, task.Completed)
}

func TestCreateRejectsInvalidInput(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := newTestService(t)

	_, err := svc.Create(ctx, CreateTaskInput{Title: "", Priority: domain.PriorityLow})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrTaskTitleEmpty)
}

func TestPendingRoundTrip(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := newTestService(t)

	task, err := svc.Create(ctx, CreateTaskInput{
		Title:    "toggle me",
		Priority: domain.PriorityMedium,
	})
	require.NoError(t, err)

	containsID := func(tasks []*domain.Task, id int64) bool {
		for _, tk := range tasks {
			if tk.ID == id {
				return true
			}
		}
		return false
	}

	pending, err := svc.Pending(ctx)
	require.NoError(t, err)
	assert.True(t, containsID(pending, task.ID))

	completed := true
	_, err = svc.Update(ctx, task.ID, domain.TaskPatch{Completed: &completed})
	require.NoError(t, err)

	pending, err = svc.Pending(ctx)
	require.NoError(t, err)
	assert.False(t, containsID(pending, task.ID))

	completed = false
	_, err = svc.Update(ctx, task.ID, domain.TaskPatch{Completed: &completed})
	require.NoError(t, err)

	pending, err = svc.Pending(ctx)
	require.NoError(t, err)
	assert.True(t, containsID(pending, task.ID))
}

func TestUpdateRefreshesUpdatedAtAndMergesFields(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := newTestService(t)

	task, err := svc.Create(ctx, CreateTaskInput{
		Title:       "original",
		Description: "desc",
		Priority:    domain.PriorityLow,
	})
	require.NoError(t, err)

	title := "renamed"
	updated, err := svc.Update(ctx, task.ID, domain.TaskPatch{Title: &title})
	require.NoError(t, err)

	assert.Equal(t, "renamed", updated.Title)
	assert.Equal(t, "desc", updated.Description)
	assert.Equal(t, domain.PriorityLow, updated.Priority)
	assert.Equal(t, task.CreatedAt, updated.CreatedAt)
	assert.True(t, updated.UpdatedAt.After(task.CreatedAt))
}

func TestUpdateNotFoundNeverMutatesStore(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := newTestService(t)

	_, err := svc.Create(ctx, CreateTaskInput{Title: "kept", Priority: domain.PriorityLow})
	require.NoError(t, err)

	title := "ghost"
	_, err = svc.Update(ctx, 9999, domain.TaskPatch{Title: &title})
	assert.ErrorIs(t, err, store.ErrTaskNotFound)

	tasks, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "kept", tasks[0].Title)
}

func TestDeleteSignalsNotFoundOnSecondCall(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := newTestService(t)

	task, err := svc.Create(ctx, CreateTaskInput{Title: "doomed", Priority: domain.PriorityLow})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, task.ID))
	assert.ErrorIs(t, svc.Delete(ctx, task.ID), store.ErrTaskNotFound)
}

func TestListReturnsAllTasksUnfiltered(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := newTestService(t)

	_, err := svc.Create(ctx, CreateTaskInput{Title: "open", Priority: domain.PriorityLow})
	require.NoError(t, err)

	done, err := svc.Create(ctx, CreateTaskInput{Title: "done", Priority: domain.PriorityLow, Completed: true})
	require.NoError(t, err)
	assert.True(t, done.Completed)

	tasks, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, tasks, 2)
}
