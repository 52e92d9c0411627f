package domain

import (
	"time"
)

// Name is a hostname taken verbatim from the domain list.
type Name string

type SourceKind string

const (
	SourceWhois SourceKind = "whois"
	SourceSSL   SourceKind = "ssl"
)

type OutcomeStatus string

const (
	StatusResolved   OutcomeStatus = "resolved"
	StatusUnresolved OutcomeStatus = "unresolved"
	StatusFailed     OutcomeStatus = "failed"
)

// FailureCategory lets operators triage a failed check from the alert alone.
type FailureCategory string

const (
	FailureWhois     FailureCategory = "whois"
	FailureTimeout   FailureCategory = "timeout"
	FailureHandshake FailureCategory = "handshake"
	FailureUnknown   FailureCategory = "unknown"
)

// ExpiryOutcome is the result of resolving one expiry source for one domain.
// Expiry is only meaningful when Status is StatusResolved and is always UTC.
type ExpiryOutcome struct {
	Status   OutcomeStatus
	Expiry   time.Time
	Category FailureCategory
	Err      error
}

func Resolved(expiry time.Time) ExpiryOutcome {
	return ExpiryOutcome{Status: StatusResolved, Expiry: expiry.UTC()}
}

func Unresolved() ExpiryOutcome {
	return ExpiryOutcome{Status: StatusUnresolved}
}

func Failed(category FailureCategory, err error) ExpiryOutcome {
	return ExpiryOutcome{Status: StatusFailed, Category: category, Err: err}
}

// ScheduleConfig decides on which days-left values a notification is due.
type ScheduleConfig struct {
	SpecificDays    []int `json:"specific_days" validate:"dive,gte=0"`
	DailyWindowDays int   `json:"daily_window_days" validate:"gte=0"`
}

type AlertKind string

const (
	AlertWhois AlertKind = "whois"
	AlertSSL   AlertKind = "ssl"
	AlertError AlertKind = "error"
)

type Alert struct {
	Kind   AlertKind
	Source SourceKind
	Domain Name
	Text   string
}

// CheckResult is what a single source produced for a single domain.
type CheckResult struct {
	Domain   Name
	Source   SourceKind
	Outcome  ExpiryOutcome
	DaysLeft int
	Alerted  bool
	Duration time.Duration
}
