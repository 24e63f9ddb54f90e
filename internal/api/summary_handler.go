package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/todosum/todosum-api/internal/api/shared"
	"github.com/todosum/todosum-api/internal/notify"
	"github.com/todosum/todosum-api/internal/platform/logger"
	"github.com/todosum/todosum-api/internal/service"
	"github.com/todosum/todosum-api/internal/summary"
)

// emptyPendingSummary is returned when there is nothing to summarize. The
// generator is not invoked in that case.
const emptyPendingSummary = "No pending todos to summarize."

// summaryTitle is the mrkdwn title block of the dispatched Slack message.
const summaryTitle = "*\U0001F4CB Todo Summary Assistant*"

// SummaryHandler handles the summary-generation and channel-dispatch endpoints.
type SummaryHandler struct {
	taskService service.TaskService
	summarizer  summary.Summarizer
	dispatcher  notify.Dispatcher
	logger      *slog.Logger
}

// NewSummaryHandler creates a new SummaryHandler.
func NewSummaryHandler(
	taskService service.TaskService,
	summarizer summary.Summarizer,
	dispatcher notify.Dispatcher,
	log *slog.Logger,
) *SummaryHandler {
	if log == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for SummaryHandler")
	}

	return &SummaryHandler{
		taskService: taskService,
		summarizer:  summarizer,
		dispatcher:  dispatcher,
		logger:      log.With(slog.String("component", "summary_handler")),
	}
}

// Summarize handles POST /api/todos/summarize requests.
// It fetches the pending task set and short-circuits with a canned message
// when there is nothing to summarize; otherwise it invokes the generator
// exactly once and wraps its text in a summary envelope.
func (h *SummaryHandler) Summarize(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	pending, err := h.taskService.Pending(r.Context())
	if err != nil {
		respondWithMappedError(w, r, err, summaryFailureMessage)
		return
	}

	if len(pending) == 0 {
		log.Debug("no pending tasks, skipping summary generation")
		shared.RespondWithJSON(w, r, http.StatusOK, SummaryResponse{Summary: emptyPendingSummary})
		return
	}

	text, err := h.summarizer.Summarize(r.Context(), pending)
	if err != nil {
		respondWithMappedError(w, r, err, summaryFailureMessage)
		return
	}

	log.Debug("summary generated", slog.Int("pending_count", len(pending)))
	shared.RespondWithJSON(w, r, http.StatusOK, SummaryResponse{Summary: text})
}

// SendSummary handles POST /api/slack/send-summary requests.
// A missing or empty summary is rejected before any outbound call is attempted.
func (h *SummaryHandler) SendSummary(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req SendSummaryRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if req.Summary == "" {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Summary is required")
		return
	}

	msg := notify.SummaryMessage{
		Title:       summaryTitle,
		Body:        req.Summary,
		GeneratedAt: time.Now(),
	}

	receipt, err := h.dispatcher.Send(r.Context(), msg)
	if err != nil {
		respondWithMappedError(w, r, err, slackFailureMessage)
		return
	}

	log.Debug("summary dispatched to Slack", slog.Int("status_code", receipt.StatusCode))
	shared.RespondWithJSON(w, r, http.StatusOK, MessageResponse{Message: "Summary sent to Slack successfully"})
}
