package providers

import (
	"time"

	"gamepulse/internal/structures"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type MetricsProviderInterface interface {
	IncRequestsTotal(endpoint string, status int)
	ObserveRequestDuration(endpoint string, duration time.Duration)
	IncCacheHits()
	IncCacheMisses()
	ObserveRefreshDuration(duration time.Duration)
	IncRefreshFailures()
	ObservePersistenceDuration(duration time.Duration)
	SetGamesTracked(count int)
	SetTotalPlaying(count int64)
	SetTotalVisits(count int64)
}

type MetricsProvider struct {
	requestsTotal       *prometheus.CounterVec
	requestDuration     *prometheus.HistogramVec
	cacheHits           prometheus.Counter
	cacheMisses         prometheus.Counter
	refreshDuration     prometheus.Histogram
	refreshFailures     prometheus.Counter
	persistenceDuration prometheus.Histogram
	gamesTracked        prometheus.Gauge
	totalPlaying        prometheus.Gauge
	totalVisits         prometheus.Gauge
}

func (m *MetricsProvider) IncRequestsTotal(endpoint string, status int) {
	m.requestsTotal.WithLabelValues(endpoint, httpStatusBucket(status)).Inc()
}

func (m *MetricsProvider) ObserveRequestDuration(endpoint string, duration time.Duration) {
	m.requestDuration.WithLabelValues(endpoint).Observe(duration.Seconds())
}

func (m *MetricsProvider) IncCacheHits() {
	m.cacheHits.Inc()
}

func (m *MetricsProvider) IncCacheMisses() {
	m.cacheMisses.Inc()
}

func (m *MetricsProvider) ObserveRefreshDuration(duration time.Duration) {
	m.refreshDuration.Observe(duration.Seconds())
}

func (m *MetricsProvider) IncRefreshFailures() {
	m.refreshFailures.Inc()
}

func (m *MetricsProvider) ObservePersistenceDuration(duration time.Duration) {
	m.persistenceDuration.Observe(duration.Seconds())
}

func (m *MetricsProvider) SetGamesTracked(count int) {
	m.gamesTracked.Set(float64(count))
}

func (m *MetricsProvider) SetTotalPlaying(count int64) {
	m.totalPlaying.Set(float64(count))
}

func (m *MetricsProvider) SetTotalVisits(count int64) {
	m.totalVisits.Set(float64(count))
}

func httpStatusBucket(code int) string {
	switch {
	case code < 200:
		return "1xx"
	case code < 300:
		return "2xx"
	case code < 400:
		return "3xx"
	case code < 500:
		return "4xx"
	default:
		return "5xx"
	}
}

func NewMetricsProvider(conf *structures.Config) MetricsProviderInterface {
	if !conf.Metrics.Enabled {
		return &noopMetrics{}
	}

	return &MetricsProvider{
		requestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "gamepulse_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"endpoint", "status"}),

		requestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "gamepulse_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"endpoint"}),

		cacheHits: promauto.NewCounter(prometheus.CounterOpts{
			Name: "gamepulse_cache_hits_total",
			Help: "Total number of cache hits",
		}),

		cacheMisses: promauto.NewCounter(prometheus.CounterOpts{
			Name: "gamepulse_cache_misses_total",
			Help: "Total number of cache misses",
		}),

		refreshDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "gamepulse_refresh_duration_seconds",
			Help:    "Duration of snapshot refresh pipeline runs in seconds",
			Buckets: prometheus.DefBuckets,
		}),

		refreshFailures: promauto.NewCounter(prometheus.CounterOpts{
			Name: "gamepulse_refresh_failures_total",
			Help: "Total number of failed snapshot refresh runs",
		}),

		persistenceDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "gamepulse_persistence_duration_seconds",
			Help:    "Duration of snapshot persistence operations in seconds",
			Buckets: prometheus.DefBuckets,
		}),

		gamesTracked: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "gamepulse_games_tracked",
			Help: "Number of games in the most recent snapshot",
		}),

		totalPlaying: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "gamepulse_total_playing",
			Help: "Sum of active players across all tracked games",
		}),

		totalVisits: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "gamepulse_total_visits",
			Help: "Sum of visits across all tracked games",
		}),
	}
}

// noopMetrics is a no-op implementation for when metrics are disabled.
type noopMetrics struct{}

func (n *noopMetrics) IncRequestsTotal(_ string, _ int)                 {}
func (n *noopMetrics) ObserveRequestDuration(_ string, _ time.Duration) {}
func (n *noopMetrics) IncCacheHits()                                    {}
func (n *noopMetrics) IncCacheMisses()                                  {}
func (n *noopMetrics) ObserveRefreshDuration(_ time.Duration)           {}
func (n *noopMetrics) IncRefreshFailures()                              {}
func (n *noopMetrics) ObservePersistenceDuration(_ time.Duration)       {}
func (n *noopMetrics) SetGamesTracked(_ int)                            {}
func (n *noopMetrics) SetTotalPlaying(_ int64)                          {}
func (n *noopMetrics) SetTotalVisits(_ int64)                           {}
