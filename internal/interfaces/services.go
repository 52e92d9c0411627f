package interfaces

import (
	"context"
	"net"
	"time"
)

// WhoisRecord is the part of a registry response the checker cares about.
// Expiration is the parser's reading of the first expiration value, nil
// when it could not make sense of it. ExpirationDates keeps the raw values.
type WhoisRecord struct {
	Domain          string
	Expiration      *time.Time
	ExpirationDates []string
}

// WhoisClient defines the interface for WHOIS lookups
type WhoisClient interface {
	Lookup(ctx context.Context, domain string) (*WhoisRecord, error)
}

// Dialer defines the interface for opening raw TCP connections
type Dialer interface {
	DialContext(ctx context.Context, network, address string) (net.Conn, error)
}
