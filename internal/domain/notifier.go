package domain

import "context"

// Notifier delivers one aggregated alert message to an external channel.
type Notifier interface {
	Name() string
	Send(ctx context.Context, message string) error
}
