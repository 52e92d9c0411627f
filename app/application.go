package app

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"domain-expiry-checker/internal/common"
)

type Application struct {
	app    *fx.App
	logger *zap.Logger
	now    func() time.Time
	job    job
}

func NewApplication(opts ...common.Option) *Application {
	options := common.NewServiceOptions(opts...)

	app := &Application{
		logger: options.Logger,
		now:    options.Now,
	}

	// Build fx application
	app.app = fx.New(
		Modules(options),
		captureJob(&app.job),

		// Set timeouts
		fx.StopTimeout(30*time.Second),
		fx.StartTimeout(30*time.Second),
	)

	return app
}

// Err reports a graph construction failure, such as an invalid config.
func (a *Application) Err() error {
	return a.app.Err()
}

func (a *Application) Start(ctx context.Context) error {
	return a.app.Start(ctx)
}

func (a *Application) Stop(ctx context.Context) error {
	return a.app.Stop(ctx)
}

// Run starts the graph, performs one check run and stops the graph again.
func (a *Application) Run(ctx context.Context) error {
	if err := a.Err(); err != nil {
		return fmt.Errorf("failed to build application: %w", err)
	}

	startCtx, cancel := context.WithTimeout(ctx, a.app.StartTimeout())
	defer cancel()
	if err := a.Start(startCtx); err != nil {
		return fmt.Errorf("failed to start application: %w", err)
	}

	runErr := a.job.execute(ctx, a.now())

	stopCtx, stopCancel := context.WithTimeout(context.Background(), a.app.StopTimeout())
	defer stopCancel()
	if err := a.Stop(stopCtx); err != nil {
		a.logger.Error("failed to stop application gracefully", zap.Error(err))
	}

	return runErr
}
