package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"domain-expiry-checker/internal/config"
	"domain-expiry-checker/internal/domain"
)

// Module provides the metrics collector
var Module = fx.Options(
	fx.Provide(NewCollector),
	fx.Provide(func(c *Collector) domain.MetricsCollector { return c }),
)

type Collector struct {
	logger        *zap.Logger
	registry      *prometheus.Registry
	daysLeft      *prometheus.GaugeVec
	checkStatus   *prometheus.GaugeVec
	checksTotal   *prometheus.CounterVec
	checkDuration *prometheus.HistogramVec
	alertsTotal   *prometheus.CounterVec
	notifications *prometheus.CounterVec
	domains       prometheus.Gauge
	alertsLastRun prometheus.Gauge
	lastRun       prometheus.Gauge
}

func NewCollector(logger *zap.Logger) *Collector {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Collector{
		logger:   logger.With(zap.String("component", "metrics")),
		registry: registry,
		daysLeft: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "domain_expiry_days_left",
				Help: "Whole days until expiry, negative once expired",
			},
			[]string{"domain", "source"},
		),
		checkStatus: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "domain_expiry_check_success",
				Help: "Latest check status (1 if the expiry was resolved, 0 otherwise)",
			},
			[]string{"domain", "source"},
		),
		checksTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "domain_expiry_checks_total",
				Help: "Total number of expiry checks performed",
			},
			[]string{"source", "status", "category"},
		),
		checkDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "domain_expiry_check_duration_seconds",
				Help:    "Duration of expiry checks",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"source"},
		),
		alertsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "domain_expiry_alerts_total",
				Help: "Total number of alerts produced",
			},
			[]string{"source"},
		),
		notifications: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "domain_expiry_notifications_total",
				Help: "Total number of notification deliveries by sink and result",
			},
			[]string{"sink", "status"},
		),
		domains: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "domain_expiry_domains",
				Help: "Number of domains checked in the last run",
			},
		),
		alertsLastRun: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "domain_expiry_last_run_alerts",
				Help: "Number of alerts produced by the last run",
			},
		),
		lastRun: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "domain_expiry_last_run_timestamp_seconds",
				Help: "Unix time the last run finished",
			},
		),
	}
}

func (c *Collector) RecordCheck(result domain.CheckResult) {
	name := string(result.Domain)
	source := string(result.Source)

	c.checksTotal.WithLabelValues(source, string(result.Outcome.Status), string(result.Outcome.Category)).Inc()
	c.checkDuration.WithLabelValues(source).Observe(result.Duration.Seconds())

	status := 0.0
	if result.Outcome.Status == domain.StatusResolved {
		status = 1.0
		c.daysLeft.WithLabelValues(name, source).Set(float64(result.DaysLeft))
	}
	c.checkStatus.WithLabelValues(name, source).Set(status)

	if result.Alerted {
		c.alertsTotal.WithLabelValues(source).Inc()
	}
}

func (c *Collector) RecordNotification(sink string, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	c.notifications.WithLabelValues(sink, status).Inc()
}

func (c *Collector) RecordRun(domains int, alerts int) {
	c.domains.Set(float64(domains))
	c.alertsLastRun.Set(float64(alerts))
	c.lastRun.SetToCurrentTime()
}

// WriteTextfile dumps the registry in the node_exporter textfile format.
func (c *Collector) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, c.registry); err != nil {
		return fmt.Errorf("failed to write metrics textfile: %w", err)
	}
	c.logger.Debug("metrics written", zap.String("path", path))
	return nil
}

// Flush writes the textfile when one is configured.
func (c *Collector) Flush(cfg *config.Config) error {
	if cfg.Metrics.TextfilePath == "" {
		return nil
	}
	return c.WriteTextfile(cfg.Metrics.TextfilePath)
}
