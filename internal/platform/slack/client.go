// Package slack implements the notify.Dispatcher interface using Slack
// incoming webhooks.
package slack

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/todosum/todosum-api/internal/config"
	"github.com/todosum/todosum-api/internal/notify"
)

// defaultTimeout bounds a single webhook call.
const defaultTimeout = 10 * time.Second

// Client posts messages to a Slack incoming webhook.
type Client struct {
	logger         *slog.Logger
	httpClient     *http.Client
	webhookURL     string
	defaultChannel string
}

// webhookMessage is the JSON payload accepted by Slack incoming webhooks.
type webhookMessage struct {
	Channel string  `json:"channel,omitempty"`
	Blocks  []block `json:"blocks"`
}

// block is a single Block Kit block. Elements is only set for context blocks,
// Text only for section blocks.
type block struct {
	Type     string       `json:"type"`
	Text     *textObject  `json:"text,omitempty"`
	Elements []textObject `json:"elements,omitempty"`
}

type textObject struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// NewClient creates a new webhook client. A missing webhook URL is a
// configuration error detected here, before any network attempt is possible.
// httpClient may be nil, in which case a client with a sane timeout is used.
func NewClient(logger *slog.Logger, cfg config.SlackConfig, httpClient *http.Client) (*Client, error) {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for Client")
	}

	if cfg.WebhookURL == "" {
		return nil, notify.ErrMissingWebhook
	}

	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}

	return &Client{
		logger:         logger.With(slog.String("component", "slack_client")),
		httpClient:     httpClient,
		webhookURL:     cfg.WebhookURL,
		defaultChannel: cfg.DefaultChannel,
	}, nil
}

// Ensure Client implements notify.Dispatcher interface
var _ notify.Dispatcher = (*Client)(nil)

// Send implements notify.Dispatcher.
// It renders the message into Block Kit JSON and performs exactly one POST to
// the webhook endpoint, returning the raw acknowledgment from Slack.
func (c *Client) Send(ctx context.Context, msg notify.SummaryMessage) (*notify.Receipt, error) {
	channel := msg.Channel
	if channel == "" {
		channel = c.defaultChannel
	}

	payload := webhookMessage{
		Channel: channel,
		Blocks: []block{
			{
				Type: "section",
				Text: &textObject{Type: "mrkdwn", Text: msg.Title},
			},
			{
				Type: "section",
				Text: &textObject{Type: "plain_text", Text: msg.Body},
			},
			{
				Type: "context",
				Elements: []textObject{
					{Type: "mrkdwn", Text: fmt.Sprintf("Generated on %s", msg.GeneratedAt.Format(time.RFC1123))},
				},
			},
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal webhook payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.webhookURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	c.logger.DebugContext(ctx, "posting summary to Slack webhook", "channel", channel)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.ErrorContext(ctx, "Slack webhook call failed", "error", err)
		return nil, fmt.Errorf("%w: %v", notify.ErrDeliveryFailed, err)
	}
	defer func() { _ = resp.Body.Close() }()

	ack, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read response: %v", notify.ErrDeliveryFailed, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.ErrorContext(ctx, "Slack webhook rejected message",
			"status_code", resp.StatusCode,
			"response", string(ack))
		return nil, fmt.Errorf("%w: webhook returned status %d", notify.ErrDeliveryFailed, resp.StatusCode)
	}

	return &notify.Receipt{
		StatusCode: resp.StatusCode,
		Body:       string(ack),
	}, nil
}
