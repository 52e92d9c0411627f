package runner

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"domain-expiry-checker/internal/checker"
	"domain-expiry-checker/internal/domain"
	"domain-expiry-checker/internal/notifier"
)

var Module = fx.Options(
	fx.Provide(func(c *checker.DomainChecker, m *notifier.Manager, metrics domain.MetricsCollector, logger *zap.Logger) *Runner {
		return New(c, m, metrics, logger)
	}),
)
