package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"domain-expiry-checker/app"
	"domain-expiry-checker/internal/common"
)

var (
	configPath  string
	domainsFile string
	env         string
)

var rootCmd = &cobra.Command{
	Use:   "domain-expiry-checker",
	Short: "Check WHOIS registration and TLS certificate expiry for a list of domains",
	Long: `Runs one pass over the domain list, resolves the registration expiry via WHOIS
and the certificate expiry via a live TLS handshake, and sends a single
aggregated alert to every configured Telegram, Discord or Slack sink.

Secrets are read from TELEGRAM_BOT_TOKEN, TELEGRAM_CHAT_ID,
DISCORD_WEBHOOK_URL and SLACK_WEBHOOK_URL.`,
	SilenceUsage: true,
	Args:         cobra.NoArgs,
	RunE:         run,
}

func init() {
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to the JSON config file (default $CONFIG_PATH or config.json)")
	rootCmd.Flags().StringVarP(&domainsFile, "domains", "d", "", "Path to the domain list (overrides config and $DOMAIN_FILE)")
	rootCmd.Flags().StringVar(&env, "env", app.EnvDevelopment, "Logging environment: development or production")
}

func run(cmd *cobra.Command, _ []string) error {
	logger, err := app.NewLogger(env)
	if err != nil {
		return err
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	application := app.NewApplication(
		common.WithLogger(logger),
		common.WithConfigPath(configPath),
		common.WithDomainsFile(domainsFile),
	)

	if err := application.Run(ctx); err != nil {
		logger.Error("run failed", zap.Error(err))
		return err
	}

	return nil
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
