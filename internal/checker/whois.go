package checker

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"domain-expiry-checker/internal/domain"
	"domain-expiry-checker/internal/interfaces"
	"domain-expiry-checker/internal/whois"
)

// Layouts tried on the raw value when the parser gave up on it. Layouts
// without a zone parse as UTC.
var whoisDateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05Z0700",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02T15:04:05 MST",
	"2006-01-02 15:04:05 MST",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"2006.01.02 15:04:05",
	"2006.01.02",
	"2006/01/02 15:04:05",
	"2006/01/02",
	"2006. 01. 02.",
	"20060102",
	"02-Jan-2006",
	"02-Jan-2006 15:04:05",
	"02.01.2006",
	"02.01.2006 15:04:05",
	"January 2 2006",
	"Jan 02 2006",
	"Mon Jan 2 15:04:05 MST 2006",
	time.RFC1123,
	time.RFC1123Z,
}

var errNoExpiration = errors.New("no expiration date in whois record")

type WhoisSource struct {
	client   interfaces.WhoisClient
	schedule domain.ScheduleConfig
	logger   *zap.Logger
}

func NewWhoisSource(client interfaces.WhoisClient, schedule domain.ScheduleConfig, logger *zap.Logger) *WhoisSource {
	return &WhoisSource{
		client:   client,
		schedule: schedule,
		logger:   logger.With(zap.String("component", "whois_source")),
	}
}

func (s *WhoisSource) Kind() domain.SourceKind {
	return domain.SourceWhois
}

func (s *WhoisSource) Schedule() domain.ScheduleConfig {
	return s.schedule
}

func (s *WhoisSource) Resolve(ctx context.Context, name domain.Name) domain.ExpiryOutcome {
	record, err := s.client.Lookup(ctx, string(name))
	if err != nil {
		if whois.IsNotFound(err) {
			s.logger.Warn("domain is not registered", zap.String("domain", string(name)))
		}
		return failed("lookup", domain.FailureWhois, "whois lookup failed", err)
	}

	expiry, err := RecordExpiration(record)
	if errors.Is(err, errNoExpiration) {
		return domain.Unresolved()
	}
	if err != nil {
		return failed("parse", domain.FailureWhois, "unreadable expiration date", err)
	}

	return domain.Resolved(expiry)
}

func (s *WhoisSource) ExpiryAlert(name domain.Name, daysLeft int, expiry time.Time) domain.Alert {
	return domain.Alert{
		Kind:   domain.AlertWhois,
		Source: domain.SourceWhois,
		Domain: name,
		Text: fmt.Sprintf("🚨 **Domain Alert** 🚨\n`%s` will expire in **%d** days!\n(Expiration Date: %s)",
			name, daysLeft, expiry.Format(alertDateLayout)),
	}
}

func (s *WhoisSource) FailureAlert(name domain.Name, outcome domain.ExpiryOutcome) domain.Alert {
	return domain.Alert{
		Kind:   domain.AlertError,
		Source: domain.SourceWhois,
		Domain: name,
		Text:   fmt.Sprintf("❌ Could not check WHOIS for `%s`. Error: %v", name, outcome.Err),
	}
}

// RecordExpiration prefers the parser's reading of the expiration date and
// falls back to the raw values when the parser returned none.
func RecordExpiration(record *interfaces.WhoisRecord) (time.Time, error) {
	if record.Expiration != nil {
		return record.Expiration.UTC(), nil
	}
	return NormalizeExpiration(record.ExpirationDates)
}

// NormalizeExpiration collapses the registry's expiration field into a
// single UTC instant. Only the first value is considered.
func NormalizeExpiration(values []string) (time.Time, error) {
	if len(values) == 0 {
		return time.Time{}, errNoExpiration
	}

	raw := strings.TrimSpace(values[0])
	if raw == "" {
		return time.Time{}, errNoExpiration
	}

	for _, layout := range whoisDateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC(), nil
		}
	}

	return time.Time{}, fmt.Errorf("unrecognized date format %q", raw)
}

var _ Source = (*WhoisSource)(nil)
