package notify

import "errors"

// Common errors returned by the notify package.
var (
	// ErrMissingWebhook is returned when the webhook endpoint is not
	// configured. It is raised before any network attempt.
	ErrMissingWebhook = errors.New("webhook URL is not configured")

	// ErrDeliveryFailed is returned when the outbound call fails, either on
	// the network or with a non-success response from the remote side.
	ErrDeliveryFailed = errors.New("failed to deliver notification")
)
