package mocks

import (
	"sync"

	"domain-expiry-checker/internal/domain"
)

// MetricsCollector records every call for later assertions
type MetricsCollector struct {
	mu            sync.Mutex
	Checks        []domain.CheckResult
	Notifications map[string][]error
	Runs          [][2]int
}

func NewMetricsCollector() *MetricsCollector {
	return &MetricsCollector{
		Notifications: make(map[string][]error),
	}
}

func (m *MetricsCollector) RecordCheck(result domain.CheckResult) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Checks = append(m.Checks, result)
}

func (m *MetricsCollector) RecordNotification(sink string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Notifications[sink] = append(m.Notifications[sink], err)
}

func (m *MetricsCollector) RecordRun(domains int, alerts int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Runs = append(m.Runs, [2]int{domains, alerts})
}

var _ domain.MetricsCollector = (*MetricsCollector)(nil)
