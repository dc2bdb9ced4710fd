package metrics

import (
	"time"
)

// RecordAnalysis records one analysis operation with its duration.
func (r *Registry) RecordAnalysis(operation, status string, duration time.Duration) {
	r.AnalysesTotal.WithLabelValues(operation, status).Inc()
	r.AnalysisDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// RecordEnumeration records the size of one path enumeration result.
func (r *Registry) RecordEnumeration(pathCount int) {
	r.PathsEnumerated.Observe(float64(pathCount))
}

// RecordMatrix records the size of one cost-matrix build and how many of
// its pairs were unreachable.
func (r *Registry) RecordMatrix(pairs, unreachable int) {
	r.MatrixPairsTotal.Observe(float64(pairs))
	r.UnreachablePairs.Add(float64(unreachable))
}

// RecordImpact records how many paths an impact analysis classified as
// changed.
func (r *Registry) RecordImpact(affectedPaths int) {
	r.ImpactedPathsTotal.Add(float64(affectedPaths))
}

// SetTopologySize updates the topology gauges after a successful load.
func (r *Registry) SetTopologySize(nodes, links int) {
	r.TopologyNodes.Set(float64(nodes))
	r.TopologyLinks.Set(float64(links))
}
