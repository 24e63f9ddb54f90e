// Package gemini implements the summary.Summarizer interface using Google's
// Gemini API.
package gemini

import (
	"context"
	"fmt"
	"log/slog"

	"google.golang.org/genai"

	"github.com/todosum/todosum-api/internal/config"
	"github.com/todosum/todosum-api/internal/domain"
	"github.com/todosum/todosum-api/internal/summary"
)

// Summarizer generates task summaries by sending a rendered prompt to the
// Gemini API. It holds no state between calls beyond the shared client; it is
// a pure request/response adapter over the external capability.
type Summarizer struct {
	logger *slog.Logger
	client *genai.Client
	model  string
}

// NewSummarizer creates a new Gemini-backed Summarizer with the provided
// dependencies. Configuration is validated here, at construction time, so a
// missing credential fails startup instead of the first summarize request.
func NewSummarizer(ctx context.Context, logger *slog.Logger, cfg config.LLMConfig) (*Summarizer, error) {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for Summarizer")
	}

	if cfg.GeminiAPIKey == "" {
		return nil, fmt.Errorf("%w: gemini API key cannot be empty", summary.ErrInvalidConfig)
	}
	if cfg.ModelName == "" {
		return nil, fmt.Errorf("%w: model name cannot be empty", summary.ErrInvalidConfig)
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create Gemini client: %v", summary.ErrInvalidConfig, err)
	}

	return &Summarizer{
		logger: logger.With(slog.String("component", "gemini_summarizer")),
		client: client,
		model:  cfg.ModelName,
	}, nil
}

// Ensure Summarizer implements summary.Summarizer interface
var _ summary.Summarizer = (*Summarizer)(nil)

// Summarize implements summary.Summarizer.
// It makes exactly one API call per invocation; failures are surfaced to the
// caller and never retried here.
func (s *Summarizer) Summarize(ctx context.Context, tasks []*domain.Task) (string, error) {
	if len(tasks) == 0 {
		return "", summary.ErrNoTasks
	}

	prompt := summary.BuildPrompt(tasks)

	s.logger.DebugContext(ctx, "calling Gemini API",
		"model", s.model,
		"task_count", len(tasks),
		"prompt_length", len(prompt))

	resp, err := s.client.Models.GenerateContent(ctx, s.model, genai.Text(prompt), nil)
	if err != nil {
		s.logger.ErrorContext(ctx, "Gemini API call failed", "error", err)
		return "", fmt.Errorf("%w: %v", summary.ErrGenerationFailed, err)
	}

	if resp == nil || len(resp.Candidates) == 0 {
		return "", fmt.Errorf("%w: no content generated", summary.ErrInvalidResponse)
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("%w: empty content in response", summary.ErrInvalidResponse)
	}

	s.logger.DebugContext(ctx, "Gemini API call successful", "summary_length", len(text))
	return text, nil
}
