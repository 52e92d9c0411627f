package notifier

import (
	"context"
	"net/http"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"domain-expiry-checker/internal/config"
	"domain-expiry-checker/internal/domain"
	"domain-expiry-checker/internal/notifier/discord"
	"domain-expiry-checker/internal/notifier/slack"
	"domain-expiry-checker/internal/notifier/telegram"
	"domain-expiry-checker/internal/notifier/webhook"
)

// Module exports the notifier module
var Module = fx.Options(
	fx.Provide(webhook.NewHTTPClient),
	fx.Provide(NewManagerFromConfig),
)

type Manager struct {
	notifiers []domain.Notifier
	metrics   domain.MetricsCollector
	logger    *zap.Logger
}

func NewManager(notifiers []domain.Notifier, metrics domain.MetricsCollector, logger *zap.Logger) *Manager {
	return &Manager{
		notifiers: notifiers,
		metrics:   metrics,
		logger:    logger.With(zap.String("component", "notifier")),
	}
}

// NewManagerFromConfig enables every sink whose secrets are present.
func NewManagerFromConfig(cfg *config.Config, client *http.Client, metrics domain.MetricsCollector, logger *zap.Logger) *Manager {
	var notifiers []domain.Notifier

	n := cfg.Notifiers
	if n.Telegram.Enabled() {
		notifiers = append(notifiers, telegram.New(n.Telegram, client))
	} else if n.Telegram.BotToken != "" || n.Telegram.ChatID != "" {
		logger.Warn("telegram needs both bot token and chat id, skipping")
	}
	if n.Discord.Enabled() {
		notifiers = append(notifiers, discord.New(n.Discord, client))
	}
	if n.Slack.Enabled() {
		notifiers = append(notifiers, slack.New(n.Slack, client))
	}

	return NewManager(notifiers, metrics, logger)
}

func (m *Manager) Notifiers() []domain.Notifier {
	return m.notifiers
}

// Dispatch sends message to every sink once. A failing sink is logged and
// does not stop the remaining ones. It returns the number of successful
// deliveries.
func (m *Manager) Dispatch(ctx context.Context, message string) int {
	if len(m.notifiers) == 0 {
		m.logger.Warn("no notification service is configured",
			zap.String("message", message))
		return 0
	}

	sent := 0
	for _, n := range m.notifiers {
		m.logger.Info("sending notification", zap.String("sink", n.Name()))

		err := n.Send(ctx, message)
		m.metrics.RecordNotification(n.Name(), err)
		if err != nil {
			m.logger.Error("failed to send notification",
				zap.String("sink", n.Name()),
				zap.Error(err),
			)
			continue
		}

		m.logger.Info("notification sent", zap.String("sink", n.Name()))
		sent++
	}

	return sent
}
