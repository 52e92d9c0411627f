package telegram

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"domain-expiry-checker/internal/config"
	"domain-expiry-checker/internal/domain"
	"domain-expiry-checker/internal/notifier/webhook"
)

const parseMode = "MarkdownV2"

var markdownEscaper = strings.NewReplacer(
	".", `\.`,
	"-", `\-`,
	"(", `\(`,
	")", `\)`,
	"!", `\!`,
)

type Telegram struct {
	endpoint string
	chatID   string
	client   *http.Client
}

type payload struct {
	ChatID    string `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode"`
}

func New(cfg config.TelegramConfig, client *http.Client) domain.Notifier {
	return &Telegram{
		endpoint: fmt.Sprintf("%s/bot%s/sendMessage", strings.TrimRight(cfg.APIURL, "/"), cfg.BotToken),
		chatID:   cfg.ChatID,
		client:   client,
	}
}

func (t *Telegram) Name() string {
	return config.NotifierTelegram
}

func (t *Telegram) Send(ctx context.Context, message string) error {
	return webhook.PostJSON(ctx, t.client, t.endpoint, payload{
		ChatID:    t.chatID,
		Text:      Escape(message),
		ParseMode: parseMode,
	}, webhook.IsOK)
}

// Escape backslash-escapes the MarkdownV2 characters alerts can contain.
func Escape(message string) string {
	return markdownEscaper.Replace(message)
}
