package api

import (
	"errors"
	"net/http"

	"github.com/todosum/todosum-api/internal/api/shared"
	"github.com/todosum/todosum-api/internal/domain"
	"github.com/todosum/todosum-api/internal/notify"
	"github.com/todosum/todosum-api/internal/store"
	"github.com/todosum/todosum-api/internal/summary"
)

// Guidance messages for failures of the external collaborators. They tell the
// caller what to check without leaking internal diagnostic detail.
const (
	summaryFailureMessage = "Failed to generate AI summary. Please check your Gemini API key and try again."
	slackFailureMessage   = "Failed to send summary to Slack. Please check your Slack configuration and try again."
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Bad request errors
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, store.ErrInvalidEntity):
		return http.StatusBadRequest

	// Not found errors
	case store.IsNotFoundError(err):
		return http.StatusNotFound

	// External collaborator failures: configuration or transient delivery,
	// either way a server-side fault from the client's point of view
	case errors.Is(err, summary.ErrInvalidConfig),
		errors.Is(err, summary.ErrGenerationFailed),
		errors.Is(err, summary.ErrInvalidResponse),
		errors.Is(err, notify.ErrMissingWebhook),
		errors.Is(err, notify.ErrDeliveryFailed):
		return http.StatusInternalServerError

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message based
// on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, store.ErrTaskNotFound):
		return "Todo not found"

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, store.ErrInvalidEntity):
		return "Invalid todo data"

	case errors.Is(err, summary.ErrInvalidConfig),
		errors.Is(err, summary.ErrGenerationFailed),
		errors.Is(err, summary.ErrInvalidResponse):
		return summaryFailureMessage

	case errors.Is(err, notify.ErrMissingWebhook),
		errors.Is(err, notify.ErrDeliveryFailed):
		return slackFailureMessage

	default:
		return "An unexpected error occurred"
	}
}

// respondWithMappedError routes a service error through the centralized
// status/message mapping and writes the sanitized response. For generic
// server faults the caller's operation-specific message replaces the
// catch-all one, keeping the wire contract's per-endpoint failure messages.
func respondWithMappedError(w http.ResponseWriter, r *http.Request, err error, serverFaultMessage string) {
	statusCode := MapErrorToStatusCode(err)

	safeMessage := GetSafeErrorMessage(err)
	if statusCode == http.StatusInternalServerError {
		safeMessage = serverFaultMessage
	}

	shared.RespondWithErrorAndLog(w, r, statusCode, safeMessage, err)
}
