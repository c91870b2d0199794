package sigcache

import (
	"github.com/go-kit/kit/metrics"
	"github.com/go-kit/kit/metrics/discard"
	prometheus "github.com/go-kit/kit/metrics/prometheus"
	stdprometheus "github.com/prometheus/client_golang/prometheus"
)

const (
	// MetricsSubsystem is a subsystem shared by all metrics exposed by this
	// package.
	MetricsSubsystem = "sigcache"
)

// Metrics contains metrics exposed by this package.
type Metrics struct {
	// Number of cached signature fingerprints.
	Size metrics.Gauge

	// Estimated dynamic footprint of the cache in bytes.
	SizeBytes metrics.Gauge

	// Number of lookups answered from the cache.
	Hits metrics.Counter

	// Number of lookups that fell through to full verification.
	Misses metrics.Counter

	// Number of entries discarded to stay under the byte bound.
	Evictions metrics.Counter
}

// PrometheusMetrics returns Metrics build using Prometheus client library.
// Optionally, labels can be provided along with their values ("foo",
// "fooValue").
func PrometheusMetrics(namespace string, labelsAndValues ...string) *Metrics {
	labels := []string{}
	for i := 0; i < len(labelsAndValues); i += 2 {
		labels = append(labels, labelsAndValues[i])
	}
	return &Metrics{
		Size: prometheus.NewGaugeFrom(stdprometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: MetricsSubsystem,
			Name:      "size",
			Help:      "Number of cached signature fingerprints.",
		}, labels).With(labelsAndValues...),
		SizeBytes: prometheus.NewGaugeFrom(stdprometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: MetricsSubsystem,
			Name:      "size_bytes",
			Help:      "Estimated dynamic footprint of the cache in bytes.",
		}, labels).With(labelsAndValues...),
		Hits: prometheus.NewCounterFrom(stdprometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: MetricsSubsystem,
			Name:      "hits",
			Help:      "Number of lookups answered from the cache.",
		}, labels).With(labelsAndValues...),
		Misses: prometheus.NewCounterFrom(stdprometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: MetricsSubsystem,
			Name:      "misses",
			Help:      "Number of lookups that fell through to full verification.",
		}, labels).With(labelsAndValues...),
		Evictions: prometheus.NewCounterFrom(stdprometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: MetricsSubsystem,
			Name:      "evictions",
			Help:      "Number of entries discarded to stay under the byte bound.",
		}, labels).With(labelsAndValues...),
	}
}

// NopMetrics returns no-op Metrics.
func NopMetrics() *Metrics {
	return &Metrics{
		Size:      discard.NewGauge(),
		SizeBytes: discard.NewGauge(),
		Hits:      discard.NewCounter(),
		Misses:    discard.NewCounter(),
		Evictions: discard.NewCounter(),
	}
}
