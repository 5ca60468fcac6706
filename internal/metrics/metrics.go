package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all prometheus metrics
type Metrics struct {
	CacheHits        prometheus.Counter
	CacheMisses      prometheus.Counter
	UpstreamRequests *prometheus.CounterVec
	UpstreamSeconds  prometheus.Histogram
	ScanRuns         prometheus.Counter
	ScanDays         *prometheus.CounterVec
}

// New creates new prometheus metrics registered on the default registry
func New(namespace string) *Metrics {
	return &Metrics{
		CacheHits: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_hits_total",
			Help:      "Day lookups served from the cache",
		}),
		CacheMisses: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_misses_total",
			Help:      "Day lookups that went to the upstream gateway",
		}),
		UpstreamRequests: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "upstream_requests_total",
			Help:      "Upstream gateway calls by result",
		}, []string{"result"}),
		UpstreamSeconds: promauto.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "upstream_request_seconds",
			Help:      "Upstream gateway call latency",
			Buckets:   prometheus.DefBuckets,
		}),
		ScanRuns: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "scan_runs_total",
			Help:      "Scan runs started",
		}),
		ScanDays: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "scan_days_total",
			Help:      "Scanned days by terminal state",
		}, []string{"state"}),
	}
}
