package summary

import (
	"fmt"
	"strings"

	"github.com/todosum/todosum-api/internal/domain"
)

// dueDateLayout is the date format used when rendering due dates into the prompt.
const dueDateLayout = "2006-01-02"

// promptInstructions asks the model to group its output into four bands:
// urgent items, near-term items, low-urgency items, and a prioritization
// recommendation.
const promptInstructions = `Provide a well-structured summary that includes:
1. High priority items that need immediate attention
2. Medium priority tasks for this week
3. Low priority items that can be done when time permits
4. Overall recommendations for task prioritization

Keep the summary professional and actionable.`

// RenderTaskLine renders a single task into one prompt line encoding its
// priority, title, optional due date, and optional description, e.g.
//
//	- [HIGH] Ship report (Due: 2024-01-10): Q3 numbers
func RenderTaskLine(task *domain.Task) string {
	var b strings.Builder

	fmt.Fprintf(&b, "- [%s] %s", strings.ToUpper(string(task.Priority)), task.Title)
	if task.DueDate != nil {
		fmt.Fprintf(&b, " (Due: %s)", task.DueDate.Format(dueDateLayout))
	}
	if task.Description != "" {
		fmt.Fprintf(&b, ": %s", task.Description)
	}

	return b.String()
}

// BuildPrompt renders the given tasks into the full prompt sent to the
// text-generation capability.
func BuildPrompt(tasks []*domain.Task) string {
	lines := make([]string, 0, len(tasks))
	for _, task := range tasks {
		lines = append(lines, RenderTaskLine(task))
	}

	return fmt.Sprintf(`Please analyze the following pending todo items and provide a concise, actionable summary. Focus on priorities, deadlines, and recommendations for task completion order:

%s

%s`, strings.Join(lines, "\n"), promptInstructions)
}
