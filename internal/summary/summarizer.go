// Package summary defines the boundary between the application core and the
// external text-generation capability that turns pending tasks into a
// natural-language summary.
package summary

import (
	"context"

	"github.com/todosum/todosum-api/internal/domain"
)

// Summarizer defines the interface for generating a natural-language summary
// from a set of tasks. This interface serves as a boundary between the
// application core and external AI/LLM services.
//
// Callers must pass a non-empty task slice; short-circuiting an empty pending
// set is an orchestration concern and happens before a Summarizer is invoked.
type Summarizer interface {
	// Summarize produces a summary of the given tasks. The result is
	// all-or-nothing: there is no partial or streaming output, and failures
	// are never retried internally. The caller decides whether to invoke the
	// operation again.
	Summarize(ctx context.Context, tasks []*domain.Task) (string, error)
}
