package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initTopologyMetrics() {
	r.TopologyNodes = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "netpath_topology_nodes",
			Help: "Number of nodes in the most recently loaded topology",
		},
	)

	r.TopologyLinks = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "netpath_topology_links",
			Help: "Number of links in the most recently loaded topology",
		},
	)

	r.IngestErrors = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "netpath_ingest_errors_total",
			Help: "Total topology documents rejected during ingestion",
		},
	)
}
