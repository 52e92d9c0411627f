package checker

import (
	"context"
	"crypto/x509"
	"errors"
	"net"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"domain-expiry-checker/internal/domain"
)

var testSSLSchedule = domain.ScheduleConfig{
	SpecificDays:    []int{30, 15, 7},
	DailyWindowDays: 3,
}

type dialerFunc func(ctx context.Context, network, address string) (net.Conn, error)

func (f dialerFunc) DialContext(ctx context.Context, network, address string) (net.Conn, error) {
	return f(ctx, network, address)
}

func listenerPort(t *testing.T, addr net.Addr) int {
	t.Helper()
	_, portStr, err := net.SplitHostPort(addr.String())
	require.NoError(t, err)
	port, err := strconv.Atoi(portStr)
	require.NoError(t, err)
	return port
}

// startListener accepts connections and hands each one to handle.
func startListener(t *testing.T, handle func(net.Conn)) int {
	t.Helper()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	var wg sync.WaitGroup
	t.Cleanup(func() {
		ln.Close()
		wg.Wait()
	})

	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			conn, err := ln.Accept()
			if err != nil {
				return
			}
			handle(conn)
		}
	}()

	return listenerPort(t, ln.Addr())
}

func TestTLSSourceResolveSuccess(t *testing.T) {
	server := httptest.NewTLSServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	defer server.Close()

	pool := x509.NewCertPool()
	pool.AddCert(server.Certificate())

	src := NewTLSSource(testSSLSchedule, zap.NewNop(),
		WithPort(listenerPort(t, server.Listener.Addr())),
		WithRootCAs(pool),
		WithTimeout(2*time.Second),
	)

	outcome := src.Resolve(context.Background(), "127.0.0.1")
	require.Equal(t, domain.StatusResolved, outcome.Status, "unexpected error: %v", outcome.Err)
	assert.True(t, server.Certificate().NotAfter.Equal(outcome.Expiry))
	assert.Equal(t, time.UTC, outcome.Expiry.Location())
}

func TestTLSSourceUntrustedCertificate(t *testing.T) {
	server := httptest.NewTLSServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	defer server.Close()

	src := NewTLSSource(testSSLSchedule, zap.NewNop(),
		WithPort(listenerPort(t, server.Listener.Addr())),
		WithRootCAs(x509.NewCertPool()),
		WithTimeout(2*time.Second),
	)

	outcome := src.Resolve(context.Background(), "127.0.0.1")
	assert.Equal(t, domain.StatusFailed, outcome.Status)
	assert.Equal(t, domain.FailureHandshake, outcome.Category)
}

func TestTLSSourceFailureCategories(t *testing.T) {
	t.Run("Silent server times out", func(t *testing.T) {
		var mu sync.Mutex
		var held []net.Conn
		t.Cleanup(func() {
			mu.Lock()
			defer mu.Unlock()
			for _, c := range held {
				c.Close()
			}
		})

		port := startListener(t, func(c net.Conn) {
			mu.Lock()
			held = append(held, c)
			mu.Unlock()
		})

		src := NewTLSSource(testSSLSchedule, zap.NewNop(), WithPort(port), WithTimeout(150*time.Millisecond))

		start := time.Now()
		outcome := src.Resolve(context.Background(), "127.0.0.1")

		assert.Equal(t, domain.StatusFailed, outcome.Status)
		assert.Equal(t, domain.FailureTimeout, outcome.Category)
		assert.Less(t, time.Since(start), 2*time.Second)
	})

	t.Run("Server closing immediately fails the handshake", func(t *testing.T) {
		port := startListener(t, func(c net.Conn) { c.Close() })

		src := NewTLSSource(testSSLSchedule, zap.NewNop(), WithPort(port), WithTimeout(2*time.Second))
		outcome := src.Resolve(context.Background(), "127.0.0.1")

		assert.Equal(t, domain.StatusFailed, outcome.Status)
		assert.Equal(t, domain.FailureHandshake, outcome.Category)
	})

	t.Run("Refused connection is unknown", func(t *testing.T) {
		ln, err := net.Listen("tcp", "127.0.0.1:0")
		require.NoError(t, err)
		port := listenerPort(t, ln.Addr())
		require.NoError(t, ln.Close())

		src := NewTLSSource(testSSLSchedule, zap.NewNop(), WithPort(port), WithTimeout(2*time.Second))
		outcome := src.Resolve(context.Background(), "127.0.0.1")

		assert.Equal(t, domain.StatusFailed, outcome.Status)
		assert.Equal(t, domain.FailureUnknown, outcome.Category)
	})

	t.Run("Unresolvable host is a handshake failure", func(t *testing.T) {
		var dialed string
		dialer := dialerFunc(func(_ context.Context, _, address string) (net.Conn, error) {
			dialed = address
			return nil, &net.OpError{Op: "dial", Net: "tcp", Err: &net.DNSError{
				Err: "no such host", Name: "nope.invalid", IsNotFound: true,
			}}
		})

		src := NewTLSSource(testSSLSchedule, zap.NewNop(), WithDialer(dialer))
		outcome := src.Resolve(context.Background(), "nope.invalid")

		assert.Equal(t, "nope.invalid:443", dialed)
		assert.Equal(t, domain.FailureHandshake, outcome.Category)
	})

	t.Run("Dial deadline is a timeout", func(t *testing.T) {
		dialer := dialerFunc(func(ctx context.Context, _, _ string) (net.Conn, error) {
			<-ctx.Done()
			return nil, ctx.Err()
		})

		src := NewTLSSource(testSSLSchedule, zap.NewNop(), WithDialer(dialer), WithTimeout(50*time.Millisecond))
		outcome := src.Resolve(context.Background(), "slow.example")

		assert.Equal(t, domain.FailureTimeout, outcome.Category)
	})
}

func TestClassifyErrors(t *testing.T) {
	assert.Equal(t, domain.FailureTimeout, classifyHandshakeError(context.DeadlineExceeded))
	assert.Equal(t, domain.FailureUnknown, classifyHandshakeError(context.Canceled))
	assert.Equal(t, domain.FailureHandshake, classifyHandshakeError(errors.New("remote error: tls: handshake failure")))
	assert.Equal(t, domain.FailureUnknown, classifyDialError(errors.New("connection refused")))
}

func TestTLSSourceAlerts(t *testing.T) {
	src := NewTLSSource(testSSLSchedule, zap.NewNop())
	expiry := time.Date(2026, 5, 20, 23, 59, 59, 0, time.UTC)

	alert := src.ExpiryAlert("example.com", 7, expiry)
	assert.Equal(t, domain.AlertSSL, alert.Kind)
	assert.Equal(t, "🛡️ **SSL Alert** 🛡️\n`example.com` SSL certificate will expire in **7** days!\n(Expiration Date: 2026-05-20)", alert.Text)

	tests := []struct {
		category domain.FailureCategory
		expected string
	}{
		{domain.FailureTimeout, "❌ SSL check for `example.com` timed out. (Port 443 closed?)"},
		{domain.FailureHandshake, "❌ SSL check for `example.com` failed. (No SSL certificate?)"},
		{domain.FailureUnknown, "❌ Unknown SSL error for `example.com`: connection reset"},
	}

	for _, tt := range tests {
		t.Run(string(tt.category), func(t *testing.T) {
			failure := src.FailureAlert("example.com", domain.Failed(tt.category, errors.New("connection reset")))
			assert.Equal(t, domain.AlertError, failure.Kind)
			assert.Equal(t, domain.SourceSSL, failure.Source)
			assert.Equal(t, tt.expected, failure.Text)
		})
	}
}
