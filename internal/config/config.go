package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/fx"

	"domain-expiry-checker/internal/domain"
)

const (
	DefaultConfigPath  = "config.json"
	DefaultDomainsFile = "domains.txt"
)

// Environment variables read at startup
const (
	EnvConfigPath        = "CONFIG_PATH"
	EnvDomainFile        = "DOMAIN_FILE"
	EnvTelegramBotToken  = "TELEGRAM_BOT_TOKEN"
	EnvTelegramChatID    = "TELEGRAM_CHAT_ID"
	EnvDiscordWebhookURL = "DISCORD_WEBHOOK_URL"
	EnvSlackWebhookURL   = "SLACK_WEBHOOK_URL"
)

// Module exports the config module
var Module = fx.Options(
	fx.Provide(NewConfig),
)

var validate *validator.Validate

type Config struct {
	DomainsFile string          `json:"domains_file" validate:"required"`
	Whois       WhoisConfig     `json:"whois"`
	SSL         SSLConfig       `json:"ssl"`
	Notifiers   NotifiersConfig `json:"notifiers"`
	Metrics     MetricsConfig   `json:"metrics"`

	// Source is the file the config was read from, empty for defaults.
	Source string `json:"-"`
}

type WhoisConfig struct {
	Schedule       domain.ScheduleConfig `json:"schedule"`
	TimeoutSeconds int                   `json:"timeout_seconds" validate:"gt=0"`
}

func (w WhoisConfig) Timeout() time.Duration {
	return time.Duration(w.TimeoutSeconds) * time.Second
}

type SSLConfig struct {
	Schedule              domain.ScheduleConfig `json:"schedule"`
	Port                  int                   `json:"port" validate:"gt=0,lte=65535"`
	ConnectTimeoutSeconds int                   `json:"connect_timeout_seconds" validate:"gt=0"`
}

func (s SSLConfig) Timeout() time.Duration {
	return time.Duration(s.ConnectTimeoutSeconds) * time.Second
}

type MetricsConfig struct {
	TextfilePath string `json:"textfile_path" validate:"omitempty,promfile"`
}

// Options carries the startup overrides that do not come from the file.
type Options struct {
	Path        string
	DomainsFile string
}

// Default returns the built-in schedules and timeouts
func Default() *Config {
	return &Config{
		DomainsFile: DefaultDomainsFile,
		Whois: WhoisConfig{
			Schedule: domain.ScheduleConfig{
				SpecificDays:    []int{60, 59, 58, 45, 30, 15},
				DailyWindowDays: 10,
			},
			TimeoutSeconds: 30,
		},
		SSL: SSLConfig{
			Schedule: domain.ScheduleConfig{
				SpecificDays:    []int{30, 15, 7},
				DailyWindowDays: 3,
			},
			Port:                  443,
			ConnectTimeoutSeconds: 5,
		},
		Notifiers: NotifiersConfig{
			Telegram: TelegramConfig{APIURL: DefaultTelegramAPIURL},
		},
	}
}

// NewConfig builds the Config from the file, the environment and opts, in
// increasing order of precedence. A missing file is not an error.
func NewConfig(opts Options) (*Config, error) {
	path := opts.Path
	if path == "" {
		path = os.Getenv(EnvConfigPath)
	}
	if path == "" {
		path = DefaultConfigPath
	}

	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("error reading config: %w", err)
	default:
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("error parsing config: %w", err)
		}
		cfg.Source = path
	}

	applyEnv(cfg)
	if opts.DomainsFile != "" {
		cfg.DomainsFile = opts.DomainsFile
	}

	if err := validate.Struct(cfg); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			return nil, formatValidationErrors(validationErrors)
		}
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

func applyEnv(cfg *Config) {
	overrides := []struct {
		env    string
		target *string
	}{
		{EnvDomainFile, &cfg.DomainsFile},
		{EnvTelegramBotToken, &cfg.Notifiers.Telegram.BotToken},
		{EnvTelegramChatID, &cfg.Notifiers.Telegram.ChatID},
		{EnvDiscordWebhookURL, &cfg.Notifiers.Discord.WebhookURL},
		{EnvSlackWebhookURL, &cfg.Notifiers.Slack.WebhookURL},
	}

	for _, o := range overrides {
		if v := strings.TrimSpace(os.Getenv(o.env)); v != "" {
			*o.target = v
		}
	}
}

func init() {
	validate = validator.New()

	if err := validate.RegisterValidation("promfile", validatePromFile); err != nil {
		panic(fmt.Sprintf("failed to register promfile validator: %v", err))
	}
}

// validatePromFile accepts paths the node_exporter textfile collector will
// pick up: a .prom file inside an existing directory.
func validatePromFile(fl validator.FieldLevel) bool {
	path := fl.Field().String()
	if filepath.Ext(path) != ".prom" {
		return false
	}
	if info, err := os.Stat(filepath.Dir(path)); err != nil {
		return false
	} else {
		return info.IsDir()
	}
}

// formatValidationErrors formats validation errors into a user-friendly error message
func formatValidationErrors(errors validator.ValidationErrors) error {
	var errMsgs []string
	for _, err := range errors {
		errMsgs = append(errMsgs, fmt.Sprintf(
			"field '%s' failed validation: %s",
			err.Namespace(),
			err.Tag(),
		))
	}
	return fmt.Errorf("validation errors: %v", errMsgs)
}
