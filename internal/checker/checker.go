package checker

import (
	"context"
	"time"

	"go.uber.org/zap"

	"domain-expiry-checker/internal/domain"
	"domain-expiry-checker/internal/schedule"
)

// DomainChecker runs every configured source against a domain, in order.
type DomainChecker struct {
	sources []Source
	metrics domain.MetricsCollector
	logger  *zap.Logger
}

func NewDomainChecker(metrics domain.MetricsCollector, logger *zap.Logger, sources ...Source) *DomainChecker {
	return &DomainChecker{
		sources: sources,
		metrics: metrics,
		logger:  logger.With(zap.String("component", "domain_checker")),
	}
}

// Check attempts each source exactly once. A failing source never stops
// the next one; alerts keep the source order.
func (c *DomainChecker) Check(ctx context.Context, name domain.Name, now time.Time) []domain.Alert {
	var alerts []domain.Alert

	for _, src := range c.sources {
		start := time.Now()
		outcome := src.Resolve(ctx, name)

		result, alert := Evaluate(src, name, outcome, now)
		result.Duration = time.Since(start)

		c.logResult(result)
		c.metrics.RecordCheck(result)

		if alert != nil {
			alerts = append(alerts, *alert)
		}
	}

	return alerts
}

// Evaluate applies the source's schedule to an outcome.
func Evaluate(src Source, name domain.Name, outcome domain.ExpiryOutcome, now time.Time) (domain.CheckResult, *domain.Alert) {
	result := domain.CheckResult{
		Domain:  name,
		Source:  src.Kind(),
		Outcome: outcome,
	}

	switch outcome.Status {
	case domain.StatusResolved:
		result.DaysLeft = schedule.DaysLeft(outcome.Expiry, now)
		if !schedule.ShouldNotify(result.DaysLeft, src.Schedule()) {
			return result, nil
		}
		alert := src.ExpiryAlert(name, result.DaysLeft, outcome.Expiry)
		result.Alerted = true
		return result, &alert

	case domain.StatusFailed:
		alert := src.FailureAlert(name, outcome)
		result.Alerted = true
		return result, &alert

	default:
		return result, nil
	}
}

func (c *DomainChecker) logResult(result domain.CheckResult) {
	fields := []zap.Field{
		zap.String("domain", string(result.Domain)),
		zap.String("source", string(result.Source)),
		zap.Duration("duration", result.Duration),
	}

	switch result.Outcome.Status {
	case domain.StatusResolved:
		c.logger.Info("expiry resolved", append(fields,
			zap.Int("days_left", result.DaysLeft),
			zap.String("expires_on", result.Outcome.Expiry.Format(alertDateLayout)),
			zap.Bool("alert", result.Alerted))...)
	case domain.StatusUnresolved:
		c.logger.Info("expiration date not found", fields...)
	case domain.StatusFailed:
		c.logger.Error("expiry check failed", append(fields,
			zap.String("category", string(result.Outcome.Category)),
			zap.Error(result.Outcome.Err))...)
	}
}
