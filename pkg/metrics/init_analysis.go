package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initAnalysisMetrics() {
	r.AnalysesTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "netpath_analyses_total",
			Help: "Total number of analysis operations executed",
		},
		[]string{"operation", "status"},
	)

	r.AnalysisDuration = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "netpath_analysis_duration_seconds",
			Help:    "Analysis operation duration in seconds",
			Buckets: []float64{0.001, 0.01, 0.05, 0.1, 0.5, 1.0, 5.0, 30.0},
		},
		[]string{"operation"},
	)

	r.PathsEnumerated = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "netpath_paths_enumerated",
			Help:    "Number of paths produced per enumeration call",
			Buckets: []float64{1, 5, 10, 25, 50, 100},
		},
	)

	r.MatrixPairsTotal = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "netpath_matrix_pairs",
			Help:    "Number of node pairs computed per cost matrix build",
			Buckets: []float64{10, 100, 1000, 10000, 100000},
		},
	)

	r.UnreachablePairs = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "netpath_unreachable_pairs_total",
			Help: "Total node pairs found unreachable during analysis",
		},
	)

	r.ImpactedPathsTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "netpath_impacted_paths_total",
			Help: "Total paths classified as changed by impact analysis",
		},
	)
}
