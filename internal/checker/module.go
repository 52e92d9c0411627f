package checker

import (
	"crypto/x509"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"domain-expiry-checker/internal/config"
	"domain-expiry-checker/internal/domain"
	"domain-expiry-checker/internal/interfaces"
	"domain-expiry-checker/internal/whois"
)

// Module exports the checker module
var Module = fx.Options(
	fx.Provide(NewWhoisClient),
	fx.Provide(NewWhoisSourceFromConfig),
	fx.Provide(NewTLSSourceFromConfig),
	fx.Provide(func(w *WhoisSource, t *TLSSource, metrics domain.MetricsCollector, logger *zap.Logger) *DomainChecker {
		return NewDomainChecker(metrics, logger, w, t)
	}),
)

// NewWhoisClient creates the registry client with the configured timeout
func NewWhoisClient(cfg *config.Config, logger *zap.Logger) interfaces.WhoisClient {
	return whois.NewClient(cfg.Whois.Timeout(), logger)
}

func NewWhoisSourceFromConfig(cfg *config.Config, client interfaces.WhoisClient, logger *zap.Logger) *WhoisSource {
	return NewWhoisSource(client, cfg.Whois.Schedule, logger)
}

// TLSSourceParams lets tests supply a trust store without touching config.
type TLSSourceParams struct {
	fx.In

	Config  *config.Config
	Logger  *zap.Logger
	RootCAs *x509.CertPool `optional:"true"`
}

func NewTLSSourceFromConfig(p TLSSourceParams) *TLSSource {
	return NewTLSSource(p.Config.SSL.Schedule, p.Logger,
		WithPort(p.Config.SSL.Port),
		WithTimeout(p.Config.SSL.Timeout()),
		WithRootCAs(p.RootCAs),
	)
}
