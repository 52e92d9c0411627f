package discord

import (
	"context"
	"net/http"

	"domain-expiry-checker/internal/config"
	"domain-expiry-checker/internal/domain"
	"domain-expiry-checker/internal/notifier/webhook"
)

type Discord struct {
	webhookURL string
	client     *http.Client
}

type payload struct {
	Content string `json:"content"`
}

func New(cfg config.WebhookConfig, client *http.Client) domain.Notifier {
	return &Discord{
		webhookURL: cfg.WebhookURL,
		client:     client,
	}
}

func (d *Discord) Name() string {
	return config.NotifierDiscord
}

func (d *Discord) Send(ctx context.Context, message string) error {
	return webhook.PostJSON(ctx, d.client, d.webhookURL, payload{Content: message}, webhook.Is2xx)
}
