package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrors counts Redis errors by operation type.
	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "wellspring_redis_error_total",
		Help: "Total number of Redis errors by operation type",
	}, []string{"operation"})

	// EntriesLogged counts tracked entries created, by entry kind.
	EntriesLogged = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "wellspring_entries_logged_total",
		Help: "Total number of entries logged by kind",
	}, []string{"kind"})

	// AggregationLatency records dashboard aggregation latency by read path.
	AggregationLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "wellspring_aggregation_latency_seconds",
		Help:    "Dashboard aggregation latency in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"path"})
)

// ObserveAggregation records the latency of one aggregation read.
func ObserveAggregation(path string, start time.Time) {
	AggregationLatency.WithLabelValues(path).Observe(time.Since(start).Seconds())
}
