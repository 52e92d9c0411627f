package checker

import (
	"context"
	"time"

	"domain-expiry-checker/internal/domain"
)

const alertDateLayout = "2006-01-02"

// Source resolves one kind of expiry for a domain and knows how to word
// the alerts it produces.
type Source interface {
	Kind() domain.SourceKind
	Schedule() domain.ScheduleConfig
	Resolve(ctx context.Context, name domain.Name) domain.ExpiryOutcome
	ExpiryAlert(name domain.Name, daysLeft int, expiry time.Time) domain.Alert
	FailureAlert(name domain.Name, outcome domain.ExpiryOutcome) domain.Alert
}
