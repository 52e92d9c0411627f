package domainlist

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"domain-expiry-checker/internal/config"
	"domain-expiry-checker/internal/domain"
)

var Module = fx.Provide(ProvideDomains)

func ProvideDomains(cfg *config.Config, logger *zap.Logger) []domain.Name {
	return Load(cfg.DomainsFile, logger.With(zap.String("component", "domainlist")))
}
