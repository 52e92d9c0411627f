package app

import (
	"context"
	"time"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	"domain-expiry-checker/internal/checker"
	"domain-expiry-checker/internal/common"
	"domain-expiry-checker/internal/config"
	"domain-expiry-checker/internal/domain"
	"domain-expiry-checker/internal/domainlist"
	"domain-expiry-checker/internal/metrics"
	"domain-expiry-checker/internal/notifier"
	"domain-expiry-checker/internal/runner"
)

// Modules assembles the graph shared by the binary and the tests.
func Modules(options *common.ServiceOptions) fx.Option {
	return fx.Options(
		// Provide application-wide dependencies
		fx.Supply(options.Logger),
		fx.Supply(config.Options{
			Path:        options.ConfigPath,
			DomainsFile: options.DomainsFile,
		}),

		// Register all modules
		config.Module,
		domainlist.Module,
		metrics.Module,
		checker.Module,
		notifier.Module,
		runner.Module,

		// Register lifecycle hooks
		fx.Invoke(registerHooks),

		// Configure fx logging
		fx.WithLogger(func(logger *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: logger}
		}),
	)
}

// job is the single check run the graph exists for.
type job struct {
	runner    *runner.Runner
	domains   []domain.Name
	collector *metrics.Collector
	config    *config.Config
	logger    *zap.Logger
}

func captureJob(target *job) fx.Option {
	return fx.Invoke(func(
		r *runner.Runner,
		domains []domain.Name,
		collector *metrics.Collector,
		cfg *config.Config,
		logger *zap.Logger,
	) {
		*target = job{runner: r, domains: domains, collector: collector, config: cfg, logger: logger}
	})
}

// execute runs the checks and then exports metrics, even when the run was
// cancelled. A metrics export failure is logged, not returned.
func (j *job) execute(ctx context.Context, now time.Time) error {
	err := j.runner.Run(ctx, j.domains, now)

	if flushErr := j.collector.Flush(j.config); flushErr != nil {
		j.logger.Error("failed to export metrics", zap.Error(flushErr))
	}

	return err
}
