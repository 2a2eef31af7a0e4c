package providers

import (
	"sync"
	"time"
)

// nopLogger satisfies Logger for provider tests without touching the filesystem.
type nopLogger struct{}

func (nopLogger) Errorf(_ TypeEnum, _ string, _ ...interface{}) {}
func (nopLogger) Warnf(_ TypeEnum, _ string, _ ...interface{})  {}
func (nopLogger) Debugf(_ TypeEnum, _ string, _ ...interface{}) {}
func (nopLogger) Infof(_ TypeEnum, _ string, _ ...interface{})  {}
func (nopLogger) Fatalf(_ TypeEnum, _ string, _ ...interface{}) {}
func (nopLogger) Close()                                        {}

type countingMetrics struct {
	mu          sync.Mutex
	requests    int
	lastStatus  int
	cacheHits   int
	cacheMisses int
}

func (m *countingMetrics) IncRequestsTotal(_ string, status int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.requests++
	m.lastStatus = status
}
func (m *countingMetrics) ObserveRequestDuration(_ string, _ time.Duration) {}
func (m *countingMetrics) IncCacheHits() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cacheHits++
}
func (m *countingMetrics) IncCacheMisses() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cacheMisses++
}
func (m *countingMetrics) ObserveRefreshDuration(_ time.Duration)     {}
func (m *countingMetrics) IncRefreshFailures()                        {}
func (m *countingMetrics) ObservePersistenceDuration(_ time.Duration) {}
func (m *countingMetrics) SetGamesTracked(_ int)                      {}
func (m *countingMetrics) SetTotalPlaying(_ int64)                    {}
func (m *countingMetrics) SetTotalVisits(_ int64)                     {}
