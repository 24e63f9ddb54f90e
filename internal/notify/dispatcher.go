// Package notify defines the boundary between the application core and the
// external notification channel that finished summaries are delivered to.
package notify

import (
	"context"
	"time"
)

// SummaryMessage is a pre-rendered message bound for the notification
// channel: a title block, a body block, and a generation timestamp rendered
// into the footer. Channel is optional; an empty value means the dispatcher's
// configured default channel.
type SummaryMessage struct {
	Channel     string
	Title       string
	Body        string
	GeneratedAt time.Time
}

// Receipt is the acknowledgment returned by the remote side of the channel.
type Receipt struct {
	// StatusCode is the HTTP status returned by the webhook endpoint.
	StatusCode int

	// Body is the raw acknowledgment payload from the remote side.
	Body string
}

// Dispatcher delivers a finished summary to an external channel.
type Dispatcher interface {
	// Send performs a single outbound delivery attempt and returns the remote
	// acknowledgment. Failures are not retried internally; exactly one
	// attempt happens per invocation and the result is propagated to the caller.
	Send(ctx context.Context, msg SummaryMessage) (*Receipt, error)
}
