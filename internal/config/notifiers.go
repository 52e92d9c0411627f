package config

const (
	NotifierTelegram = "telegram"
	NotifierDiscord  = "discord"
	NotifierSlack    = "slack"
)

const DefaultTelegramAPIURL = "https://api.telegram.org"

type NotifiersConfig struct {
	Telegram TelegramConfig `json:"telegram"`
	Discord  WebhookConfig  `json:"discord"`
	Slack    WebhookConfig  `json:"slack"`
}

type TelegramConfig struct {
	BotToken string `json:"bot_token"`
	ChatID   string `json:"chat_id"`
	APIURL   string `json:"api_url" validate:"required,url"`
}

// Enabled requires both secrets; one without the other is ignored.
func (t TelegramConfig) Enabled() bool {
	return t.BotToken != "" && t.ChatID != ""
}

type WebhookConfig struct {
	WebhookURL string `json:"webhook_url" validate:"omitempty,url"`
}

func (w WebhookConfig) Enabled() bool {
	return w.WebhookURL != ""
}
