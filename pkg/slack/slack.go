// Package slack posts an order-created message to a Slack incoming webhook.
// The webhook is best-effort: a missing URL is a logged no-op and any failure
// is reported as a NotificationError for the caller to log, never to surface.
package slack

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"orderdesk/internal/apperrors"
	"orderdesk/internal/models"
	"orderdesk/internal/money"
)

// DefaultTimeout bounds the webhook call so it can never hold up the
// order-creation response for long.
const DefaultTimeout = 10 * time.Second

// Config holds webhook settings.
type Config struct {
	WebhookURL string
	Timeout    time.Duration
}

// Client posts messages to one configured webhook URL.
type Client struct {
	url        string
	httpClient *http.Client
}

// NewClient creates a new webhook client. An empty URL yields a client whose
// notifications are no-ops.
func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		url:        cfg.WebhookURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Block Kit payload shapes, only the parts this client sends.

type text struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type block struct {
	Type   string `json:"type"`
	Text   *text  `json:"text,omitempty"`
	Fields []text `json:"fields,omitempty"`
}

type message struct {
	Text   string  `json:"text"`
	Blocks []block `json:"blocks"`
}

func buildOrderMessage(order *models.Order) message {
	lines := make([]string, 0, len(order.Items))
	for _, it := range order.Items {
		lines = append(lines, fmt.Sprintf("• %s (x%d) - %s VND", it.ProductName, it.Quantity, money.FormatVND(it.Total)))
	}

	return message{
		Text: "🎉 New Order Received!",
		Blocks: []block{
			{
				Type: "header",
				Text: &text{Type: "plain_text", Text: fmt.Sprintf("New Order: %s", order.OrderNumber)},
			},
			{
				Type: "section",
				Fields: []text{
					{Type: "mrkdwn", Text: fmt.Sprintf("*Customer:*\n%s", order.CustomerName)},
					{Type: "mrkdwn", Text: fmt.Sprintf("*Phone:*\n%s", order.CustomerPhone)},
					{Type: "mrkdwn", Text: fmt.Sprintf("*Email:*\n%s", order.CustomerEmail)},
					{Type: "mrkdwn", Text: fmt.Sprintf("*Total:*\n%s VND", money.FormatVND(order.Subtotal))},
				},
			},
			{
				Type: "section",
				Text: &text{Type: "mrkdwn", Text: fmt.Sprintf("*Items:*\n%s", strings.Join(lines, "\n"))},
			},
		},
	}
}

// NotifyOrderCreated posts the order-created message. With no URL configured
// it logs a warning and returns nil.
func (c *Client) NotifyOrderCreated(ctx context.Context, order *models.Order) error {
	if c.url == "" {
		log.Println("Slack webhook URL not configured, skipping order notification")
		return nil
	}

	body, err := json.Marshal(buildOrderMessage(order))
	if err != nil {
		return apperrors.WrapNotification(fmt.Errorf("marshal message: %w", err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return apperrors.WrapNotification(fmt.Errorf("build request: %w", err))
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return apperrors.WrapNotification(fmt.Errorf("post webhook: %w", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return apperrors.WrapNotification(fmt.Errorf("webhook returned status %d", resp.StatusCode))
	}
	return nil
}
