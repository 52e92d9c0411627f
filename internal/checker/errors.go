package checker

import (
	"fmt"

	"domain-expiry-checker/internal/domain"
)

// CheckError represents an error that occurred while resolving an expiry source
type CheckError struct {
	Stage    string                 // The stage where the error occurred
	Category domain.FailureCategory // Triage bucket shown to operators
	Message  string                 // Human-readable error message
	Err      error                  // Original error
}

func (e *CheckError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Stage, e.Message)
	}
	return fmt.Sprintf("%s: %s: %v", e.Stage, e.Message, e.Err)
}

func (e *CheckError) Unwrap() error {
	return e.Err
}

func NewCheckError(stage string, category domain.FailureCategory, message string, err error) error {
	return &CheckError{
		Stage:    stage,
		Category: category,
		Message:  message,
		Err:      err,
	}
}

// failed wraps err into a CheckError and the matching outcome.
func failed(stage string, category domain.FailureCategory, message string, err error) domain.ExpiryOutcome {
	return domain.Failed(category, NewCheckError(stage, category, message, err))
}
