package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Registry holds every metric the analyzer exports.
type Registry struct {
	// Analysis metrics
	AnalysesTotal      *prometheus.CounterVec
	AnalysisDuration   *prometheus.HistogramVec
	PathsEnumerated    prometheus.Histogram
	MatrixPairsTotal   prometheus.Histogram
	UnreachablePairs   prometheus.Counter
	ImpactedPathsTotal prometheus.Counter

	// Topology metrics
	TopologyNodes prometheus.Gauge
	TopologyLinks prometheus.Gauge
	IngestErrors  prometheus.Counter

	registry *prometheus.Registry
}

var (
	defaultRegistry *Registry
	once            sync.Once
)

// DefaultRegistry returns the process-wide metrics registry.
func DefaultRegistry() *Registry {
	once.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}

// NewRegistry creates a registry with all metrics initialized.
func NewRegistry() *Registry {
	r := &Registry{
		registry: prometheus.NewRegistry(),
	}
	r.initAnalysisMetrics()
	r.initTopologyMetrics()
	return r
}

// PrometheusRegistry exposes the underlying registry for HTTP handlers.
func (r *Registry) PrometheusRegistry() *prometheus.Registry {
	return r.registry
}
