package summary

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/todosum/todosum-api/internal/domain"
)

func TestRenderTaskLine(t *testing.T) {
	t.Parallel()

	due := time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		task *domain.Task
		want string
	}{
		{
			name: "full_task",
			task: &domain.Task{
				Title:       "Ship report",
				Description: "Q3 numbers",
				Priority:    domain.PriorityHigh,
				DueDate:     &due,
			},
			want: "- [HIGH] Ship report (Due: 2024-01-10): Q3 numbers",
		},
		{
			name: "no_due_date",
			task: &domain.Task{
				Title:       "Water plants",
				Description: "balcony only",
				Priority:    domain.PriorityLow,
			},
			want: "- [LOW] Water plants: balcony only",
		},
		{
			name: "no_description",
			task: &domain.Task{
				Title:    "Call dentist",
				Priority: domain.PriorityMedium,
				DueDate:  &due,
			},
			want: "- [MEDIUM] Call dentist (Due: 2024-01-10)",
		},
		{
			name: "title_only",
			task: &domain.Task{
				Title:    "Inbox zero",
				Priority: domain.PriorityLow,
			},
			want: "- [LOW] Inbox zero",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, RenderTaskLine(tt.task))
		})
	}
}

func TestBuildPrompt(t *testing.T) {
	t.Parallel()

	tasks := []*domain.Task{
		{Title: "Ship report", Priority: domain.PriorityHigh},
		{Title: "Water plants", Priority: domain.PriorityLow},
	}

	prompt := BuildPrompt(tasks)

	require.Contains(t, prompt, "- [HIGH] Ship report\n- [LOW] Water plants")
	assert.Contains(t, prompt, "pending todo items")
	assert.Contains(t, prompt, "High priority items that need immediate attention")
	assert.Contains(t, prompt, "Overall recommendations for task prioritization")
}
