package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"domain-expiry-checker/internal/domain"
)

type Notifier struct {
	mock.Mock
	name string
}

func NewNotifier(name string) *Notifier {
	return &Notifier{name: name}
}

func (n *Notifier) Name() string {
	return n.name
}

func (n *Notifier) Send(ctx context.Context, message string) error {
	args := n.Called(ctx, message)
	return args.Error(0)
}

var _ domain.Notifier = (*Notifier)(nil)
