package checker

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"errors"
	"fmt"
	"net"
	"strconv"
	"time"

	"go.uber.org/zap"

	"domain-expiry-checker/internal/domain"
	"domain-expiry-checker/internal/interfaces"
)

const (
	DefaultTLSPort    = 443
	DefaultTLSTimeout = 5 * time.Second
)

var errNoPeerCertificate = errors.New("server presented no certificate")

type TLSSource struct {
	dialer   interfaces.Dialer
	port     int
	timeout  time.Duration
	rootCAs  *x509.CertPool
	schedule domain.ScheduleConfig
	logger   *zap.Logger
}

type TLSOption func(*TLSSource)

func WithDialer(d interfaces.Dialer) TLSOption {
	return func(s *TLSSource) {
		s.dialer = d
	}
}

// WithRootCAs replaces the system trust store.
func WithRootCAs(pool *x509.CertPool) TLSOption {
	return func(s *TLSSource) {
		s.rootCAs = pool
	}
}

func WithPort(port int) TLSOption {
	return func(s *TLSSource) {
		s.port = port
	}
}

func WithTimeout(timeout time.Duration) TLSOption {
	return func(s *TLSSource) {
		s.timeout = timeout
	}
}

func NewTLSSource(schedule domain.ScheduleConfig, logger *zap.Logger, opts ...TLSOption) *TLSSource {
	s := &TLSSource{
		port:     DefaultTLSPort,
		timeout:  DefaultTLSTimeout,
		schedule: schedule,
		logger:   logger.With(zap.String("component", "tls_source")),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.dialer == nil {
		s.dialer = &net.Dialer{Timeout: s.timeout}
	}
	return s
}

func (s *TLSSource) Kind() domain.SourceKind {
	return domain.SourceSSL
}

func (s *TLSSource) Schedule() domain.ScheduleConfig {
	return s.schedule
}

// Resolve connects to the domain, completes a verified handshake and
// returns the leaf certificate's NotAfter. The timeout bounds both the
// TCP connect and the handshake.
func (s *TLSSource) Resolve(ctx context.Context, name domain.Name) domain.ExpiryOutcome {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	address := net.JoinHostPort(string(name), strconv.Itoa(s.port))
	conn, err := s.dialer.DialContext(ctx, "tcp", address)
	if err != nil {
		return failed("connect", classifyDialError(err), "tcp connect failed", err)
	}
	defer conn.Close()

	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(deadline)
	}

	tlsConn := tls.Client(conn, &tls.Config{
		ServerName: string(name),
		RootCAs:    s.rootCAs,
	})
	if err := tlsConn.HandshakeContext(ctx); err != nil {
		return failed("handshake", classifyHandshakeError(err), "tls handshake failed", err)
	}

	certs := tlsConn.ConnectionState().PeerCertificates
	if len(certs) == 0 {
		return failed("handshake", domain.FailureHandshake, "no leaf certificate", errNoPeerCertificate)
	}

	s.logger.Debug("peer certificate received",
		zap.String("domain", string(name)),
		zap.String("subject", certs[0].Subject.CommonName),
		zap.Time("not_after", certs[0].NotAfter))

	return domain.Resolved(certs[0].NotAfter)
}

func (s *TLSSource) ExpiryAlert(name domain.Name, daysLeft int, expiry time.Time) domain.Alert {
	return domain.Alert{
		Kind:   domain.AlertSSL,
		Source: domain.SourceSSL,
		Domain: name,
		Text: fmt.Sprintf("🛡️ **SSL Alert** 🛡️\n`%s` SSL certificate will expire in **%d** days!\n(Expiration Date: %s)",
			name, daysLeft, expiry.Format(alertDateLayout)),
	}
}

func (s *TLSSource) FailureAlert(name domain.Name, outcome domain.ExpiryOutcome) domain.Alert {
	var text string
	switch outcome.Category {
	case domain.FailureTimeout:
		text = fmt.Sprintf("❌ SSL check for `%s` timed out. (Port %d closed?)", name, s.port)
	case domain.FailureHandshake:
		text = fmt.Sprintf("❌ SSL check for `%s` failed. (No SSL certificate?)", name)
	default:
		text = fmt.Sprintf("❌ Unknown SSL error for `%s`: %v", name, outcome.Err)
	}

	return domain.Alert{
		Kind:   domain.AlertError,
		Source: domain.SourceSSL,
		Domain: name,
		Text:   text,
	}
}

// DNS failures count as handshake failures; refused or reset connections
// are left as unknown.
func classifyDialError(err error) domain.FailureCategory {
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return domain.FailureHandshake
	}
	if isTimeout(err) {
		return domain.FailureTimeout
	}
	return domain.FailureUnknown
}

func classifyHandshakeError(err error) domain.FailureCategory {
	if isTimeout(err) {
		return domain.FailureTimeout
	}
	if errors.Is(err, context.Canceled) {
		return domain.FailureUnknown
	}
	return domain.FailureHandshake
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return netErr.Timeout()
	}
	return false
}

var _ Source = (*TLSSource)(nil)
