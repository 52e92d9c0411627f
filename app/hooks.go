package app

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"domain-expiry-checker/internal/config"
	"domain-expiry-checker/internal/notifier"
)

type hookParams struct {
	fx.In

	Logger    *zap.Logger
	Lifecycle fx.Lifecycle
	Config    *config.Config
	Notifier  *notifier.Manager
}

func registerHooks(p hookParams) {
	p.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			source := p.Config.Source
			if source == "" {
				source = "defaults"
			}

			sinks := make([]string, 0, len(p.Notifier.Notifiers()))
			for _, n := range p.Notifier.Notifiers() {
				sinks = append(sinks, n.Name())
			}

			p.Logger.Info("starting application",
				zap.String("config", source),
				zap.String("domains_file", p.Config.DomainsFile),
				zap.Strings("sinks", sinks),
			)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			p.Logger.Info("stopping application")
			return nil
		},
	})
}
