package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"domain-expiry-checker/internal/interfaces"
)

type WhoisClient struct {
	mock.Mock
}

func (m *WhoisClient) Lookup(ctx context.Context, domain string) (*interfaces.WhoisRecord, error) {
	args := m.Called(ctx, domain)
	record, _ := args.Get(0).(*interfaces.WhoisRecord)
	return record, args.Error(1)
}

var _ interfaces.WhoisClient = (*WhoisClient)(nil)
