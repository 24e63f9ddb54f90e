package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/todosum/todosum-api/internal/domain"
	"github.com/todosum/todosum-api/internal/notify"
	"github.com/todosum/todosum-api/internal/platform/memory"
	"github.com/todosum/todosum-api/internal/service"
	"github.com/todosum/todosum-api/internal/store"
	"github.com/todosum/todosum-api/internal/summary"
)

// MockSummarizer is a mock implementation of summary.Summarizer for testing.
type MockSummarizer struct {
	SummarizeFn func(ctx context.Context, tasks []*domain.Task) (string, error)
	Calls       int
}

// Summarize implements summary.Summarizer.
func (m *MockSummarizer) Summarize(ctx context.Context, tasks []*domain.Task) (string, error) {
	m.Calls++
	if m.SummarizeFn != nil {
		return m.SummarizeFn(ctx, tasks)
	}
	return "", nil
}

// MockDispatcher is a mock implementation of notify.Dispatcher for testing.
type MockDispatcher struct {
	SendFn  func(ctx context.Context, msg notify.SummaryMessage) (*notify.Receipt, error)
	Calls   int
	LastMsg notify.SummaryMessage
}

// Send implements notify.Dispatcher.
func (m *MockDispatcher) Send(ctx context.Context, msg notify.SummaryMessage) (*notify.Receipt, error) {
	m.Calls++
	m.LastMsg = msg
	if m.SendFn != nil {
		return m.SendFn(ctx, msg)
	}
	return &notify.Receipt{StatusCode: http.StatusOK, Body: "ok"}, nil
}

// newSummaryRouter builds the summarize/dispatch routes over a service seeded
// with the given tasks.
func newSummaryRouter(
	t *testing.T,
	seed []service.CreateTaskInput,
	summarizer summary.Summarizer,
	dispatcher notify.Dispatcher,
) http.Handler {
	t.Helper()

	svc, err := service.NewTaskService(memory.NewTaskStore(), discardLogger())
	require.NoError(t, err)
	for _, input := range seed {
		_, err := svc.Create(context.Background(), input)
		require.NoError(t, err)
	}

	handler := NewSummaryHandler(svc, summarizer, dispatcher, discardLogger())

	r := chi.NewRouter()
	r.Post("/api/todos/summarize", handler.Summarize)
	r.Post("/api/slack/send-summary", handler.SendSummary)
	return r
}

func TestSummarizeEmptyPendingSetSkipsGenerator(t *testing.T) {
	t.Parallel()

	summarizer := &MockSummarizer{}
	seed := []service.CreateTaskInput{
		{Title: "already done", Priority: domain.PriorityHigh, Completed: true},
	}
	router := newSummaryRouter(t, seed, summarizer, &MockDispatcher{})

	rec := doJSON(t, router, http.MethodPost, "/api/todos/summarize", nil)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp SummaryResponse
	decodeBody(t, rec, &resp)
	assert.Equal(t, "No pending todos to summarize.", resp.Summary)
	assert.Zero(t, summarizer.Calls, "generator must not be invoked for an empty pending set")
}

func TestSummarizeReturnsGeneratedText(t *testing.T) {
	t.Parallel()

	summarizer := &MockSummarizer{
		SummarizeFn: func(ctx context.Context, tasks []*domain.Task) (string, error) {
			require.Len(t, tasks, 2)
			return "Focus on the report first.", nil
		},
	}
	seed := []service.CreateTaskInput{
		{Title: "Ship report", Priority: domain.PriorityHigh},
		{Title: "Water plants", Priority: domain.PriorityLow},
		{Title: "already done", Priority: domain.PriorityMedium, Completed: true},
	}
	router := newSummaryRouter(t, seed, summarizer, &MockDispatcher{})

	rec := doJSON(t, router, http.MethodPost, "/api/todos/summarize", nil)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp SummaryResponse
	decodeBody(t, rec, &resp)
	assert.Equal(t, "Focus on the report first.", resp.Summary)
	assert.Equal(t, 1, summarizer.Calls)
}

func TestSummarizeGeneratorFailure(t *testing.T) {
	t.Parallel()

	summarizer := &MockSummarizer{
		SummarizeFn: func(ctx context.Context, tasks []*domain.Task) (string, error) {
			return "", fmt.Errorf("%w: boom", summary.ErrGenerationFailed)
		},
	}
	seed := []service.CreateTaskInput{
		{Title: "Ship report", Priority: domain.PriorityHigh},
	}
	router := newSummaryRouter(t, seed, summarizer, &MockDispatcher{})

	rec := doJSON(t, router, http.MethodPost, "/api/todos/summarize", nil)

	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var resp struct {
		Message string `json:"message"`
	}
	decodeBody(t, rec, &resp)
	assert.Equal(t, "Failed to generate AI summary. Please check your Gemini API key and try again.", resp.Message)
}

func TestSendSummaryRequiresSummary(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body map[string]interface{}
	}{
		{name: "empty_object", body: map[string]interface{}{}},
		{name: "empty_string", body: map[string]interface{}{"summary": ""}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			dispatcher := &MockDispatcher{}
			router := newSummaryRouter(t, nil, &MockSummarizer{}, dispatcher)

			rec := doJSON(t, router, http.MethodPost, "/api/slack/send-summary", tt.body)

			require.Equal(t, http.StatusBadRequest, rec.Code)

			var resp struct {
				Message string `json:"message"`
			}
			decodeBody(t, rec, &resp)
			assert.Equal(t, "Summary is required", resp.Message)
			assert.Zero(t, dispatcher.Calls, "no outbound call may happen without a summary")
		})
	}
}

func TestSendSummarySuccess(t *testing.T) {
	t.Parallel()

	dispatcher := &MockDispatcher{}
	router := newSummaryRouter(t, nil, &MockSummarizer{}, dispatcher)

	rec := doJSON(t, router, http.MethodPost, "/api/slack/send-summary", map[string]interface{}{
		"summary": "All quiet on the task front.",
	})

	require.Equal(t, http.StatusOK, rec.Code)

	var resp MessageResponse
	decodeBody(t, rec, &resp)
	assert.Equal(t, "Summary sent to Slack successfully", resp.Message)

	require.Equal(t, 1, dispatcher.Calls)
	assert.Equal(t, "All quiet on the task front.", dispatcher.LastMsg.Body)
	assert.Contains(t, dispatcher.LastMsg.Title, "Todo Summary Assistant")
	assert.False(t, dispatcher.LastMsg.GeneratedAt.IsZero())
}

func TestSendSummaryDispatcherFailure(t *testing.T) {
	t.Parallel()

	dispatcher := &MockDispatcher{
		SendFn: func(ctx context.Context, msg notify.SummaryMessage) (*notify.Receipt, error) {
			return nil, fmt.Errorf("%w: webhook returned status 500", notify.ErrDeliveryFailed)
		},
	}
	router := newSummaryRouter(t, nil, &MockSummarizer{}, dispatcher)

	rec := doJSON(t, router, http.MethodPost, "/api/slack/send-summary", map[string]interface{}{
		"summary": "doomed",
	})

	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var resp struct {
		Message string `json:"message"`
	}
	decodeBody(t, rec, &resp)
	assert.Equal(t, "Failed to send summary to Slack. Please check your Slack configuration and try again.", resp.Message)
}

func TestGetSafeErrorMessage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, "An unexpected error occurred"},
		{"task_not_found", fmt.Errorf("wrapped: %w", store.ErrTaskNotFound), "Todo not found"},
		{"validation", domain.ErrTaskTitleEmpty, "Invalid todo data"},
		{"generation", summary.ErrGenerationFailed, "Failed to generate AI summary. Please check your Gemini API key and try again."},
		{"delivery", notify.ErrDeliveryFailed, "Failed to send summary to Slack. Please check your Slack configuration and try again."},
		{"unknown", errors.New("mystery"), "An unexpected error occurred"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, GetSafeErrorMessage(tt.err))
		})
	}
}

func TestMapErrorToStatusCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", domain.NewValidationError("title", "is required"), http.StatusBadRequest},
		{"not_found", fmt.Errorf("wrapped: %w", store.ErrTaskNotFound), http.StatusNotFound},
		{"generation", summary.ErrGenerationFailed, http.StatusInternalServerError},
		{"delivery", notify.ErrDeliveryFailed, http.StatusInternalServerError},
		{"unknown", errors.New("mystery"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, MapErrorToStatusCode(tt.err))
		})
	}
}
