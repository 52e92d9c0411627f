package schedule

import (
	"math"
	"slices"
	"time"

	"domain-expiry-checker/internal/domain"
)

// ShouldNotify reports whether daysLeft hits one of the specific days or
// falls inside the trailing daily window [0, DailyWindowDays].
// Negative values only notify when listed explicitly.
func ShouldNotify(daysLeft int, cfg domain.ScheduleConfig) bool {
	if slices.Contains(cfg.SpecificDays, daysLeft) {
		return true
	}
	return daysLeft >= 0 && daysLeft <= cfg.DailyWindowDays
}

// DaysLeft returns the floor of the whole-day difference between expiry and now.
func DaysLeft(expiry, now time.Time) int {
	d := expiry.UTC().Sub(now.UTC())
	return int(math.Floor(d.Hours() / 24))
}
