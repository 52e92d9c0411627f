package slack

import (
	"context"
	"net/http"
	"strings"

	"domain-expiry-checker/internal/config"
	"domain-expiry-checker/internal/domain"
	"domain-expiry-checker/internal/notifier/webhook"
)

type Slack struct {
	webhookURL string
	client     *http.Client
}

type payload struct {
	Text string `json:"text"`
}

func New(cfg config.WebhookConfig, client *http.Client) domain.Notifier {
	return &Slack{
		webhookURL: cfg.WebhookURL,
		client:     client,
	}
}

func (s *Slack) Name() string {
	return config.NotifierSlack
}

// Send posts the message with Markdown bold collapsed to Slack mrkdwn bold.
func (s *Slack) Send(ctx context.Context, message string) error {
	return webhook.PostJSON(ctx, s.client, s.webhookURL, payload{Text: strings.ReplaceAll(message, "**", "*")}, webhook.Is2xx)
}
