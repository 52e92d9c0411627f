package whois

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/likexian/whois"
	whoisparser "github.com/likexian/whois-parser"
	"go.uber.org/zap"

	"domain-expiry-checker/internal/interfaces"
)

// Querier returns the raw registry response for a domain.
type Querier interface {
	Whois(domain string, servers ...string) (string, error)
}

// Parser turns a raw registry response into structured data.
type Parser func(text string) (whoisparser.WhoisInfo, error)

type Client struct {
	querier Querier
	parse   Parser
	logger  *zap.Logger
}

func NewClient(timeout time.Duration, logger *zap.Logger) *Client {
	return NewClientWith(whois.NewClient().SetTimeout(timeout), whoisparser.Parse, logger)
}

func NewClientWith(querier Querier, parse Parser, logger *zap.Logger) *Client {
	return &Client{
		querier: querier,
		parse:   parse,
		logger:  logger.With(zap.String("component", "whois")),
	}
}

// Lookup queries the registry and extracts the expiration values. The
// underlying protocol client has no context support, so cancellation only
// abandons the pending query; its own timeout bounds the goroutine.
func (c *Client) Lookup(ctx context.Context, domain string) (*interfaces.WhoisRecord, error) {
	type lookupResult struct {
		raw string
		err error
	}

	ch := make(chan lookupResult, 1)
	go func() {
		raw, err := c.querier.Whois(domain)
		ch <- lookupResult{raw, err}
	}()

	var raw string
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.err != nil {
			return nil, fmt.Errorf("whois query failed: %w", res.err)
		}
		raw = res.raw
	}

	info, err := c.parse(raw)
	if err != nil {
		return nil, fmt.Errorf("whois response parse failed: %w", err)
	}

	record := &interfaces.WhoisRecord{Domain: domain}
	if info.Domain == nil {
		return record, nil
	}

	if parsed := info.Domain.ExpirationDateInTime; parsed != nil {
		expiration := parsed.UTC()
		record.Expiration = &expiration
	}

	switch {
	case info.Domain.ExpirationDate != "":
		record.ExpirationDates = append(record.ExpirationDates, info.Domain.ExpirationDate)
	case record.Expiration != nil:
		record.ExpirationDates = append(record.ExpirationDates, record.Expiration.Format(time.RFC3339))
	}

	c.logger.Debug("whois lookup completed",
		zap.String("domain", domain),
		zap.Strings("expiration_dates", record.ExpirationDates),
		zap.Bool("parsed", record.Expiration != nil))

	return record, nil
}

// IsNotFound reports whether the registry has no record for the domain.
func IsNotFound(err error) bool {
	return errors.Is(err, whoisparser.ErrNotFoundDomain)
}

var _ interfaces.WhoisClient = (*Client)(nil)
