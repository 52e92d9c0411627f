package runner

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"domain-expiry-checker/internal/domain"
)

const alertSeparator = "\n\n"

// Checker produces the alerts for one domain
type Checker interface {
	Check(ctx context.Context, name domain.Name, now time.Time) []domain.Alert
}

// Dispatcher delivers the aggregated message to every configured sink
type Dispatcher interface {
	Dispatch(ctx context.Context, message string) int
}

type Runner struct {
	checker    Checker
	dispatcher Dispatcher
	metrics    domain.MetricsCollector
	logger     *zap.Logger
}

func New(checker Checker, dispatcher Dispatcher, metrics domain.MetricsCollector, logger *zap.Logger) *Runner {
	return &Runner{
		checker:    checker,
		dispatcher: dispatcher,
		metrics:    metrics,
		logger:     logger.With(zap.String("component", "runner")),
	}
}

// Run checks every domain in order and sends at most one aggregated
// message. Check failures end up in the message, so the only error
// returned is a cancelled context, in which case nothing is sent.
func (r *Runner) Run(ctx context.Context, domains []domain.Name, now time.Time) error {
	r.logger.Info("starting all checks",
		zap.String("date", now.UTC().Format("2006-01-02")),
		zap.Int("domains", len(domains)))

	if len(domains) == 0 {
		r.logger.Info("no domains to check")
		r.metrics.RecordRun(0, 0)
		return nil
	}

	var alerts []domain.Alert
	for _, name := range domains {
		if err := ctx.Err(); err != nil {
			r.logger.Warn("run cancelled before dispatch", zap.Error(err))
			return err
		}

		r.logger.Info("checking domain", zap.String("domain", string(name)))
		alerts = append(alerts, r.checker.Check(ctx, name, now)...)
	}

	if err := ctx.Err(); err != nil {
		r.logger.Warn("run cancelled before dispatch", zap.Error(err))
		return err
	}

	r.metrics.RecordRun(len(domains), len(alerts))

	if len(alerts) == 0 {
		r.logger.Info("all domains and SSL certs are fine, no alerts")
		return nil
	}

	r.logger.Info("dispatching alerts", zap.Int("alerts", len(alerts)))
	r.dispatcher.Dispatch(ctx, Compose(alerts))
	return nil
}

// Compose joins alert texts into the single outgoing message.
func Compose(alerts []domain.Alert) string {
	texts := make([]string, 0, len(alerts))
	for _, a := range alerts {
		texts = append(texts, a.Text)
	}
	return strings.Join(texts, alertSeparator)
}
