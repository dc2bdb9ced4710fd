package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jmcgarr/netpath/pkg/analysis"
	"github.com/jmcgarr/netpath/pkg/ingest"
	"github.com/jmcgarr/netpath/pkg/logging"
	"github.com/jmcgarr/netpath/pkg/metrics"
	"github.com/jmcgarr/netpath/pkg/topology"
)

func main() {
	topoFile := flag.String("topology", "", "Path to the topology file (YAML or JSON)")
	modifiedFile := flag.String("modified", "", "Optional modified topology for impact analysis")
	from := flag.String("from", "", "Enumerate paths from this node id")
	to := flag.String("to", "", "Enumerate paths to this node id")
	maxPaths := flag.Int("max-paths", 50, "Path enumeration limit")
	workers := flag.Int("workers", 1, "Worker count for the cost matrix build")
	sources := flag.String("source-countries", "", "Comma-separated source countries for impact analysis")
	dests := flag.String("dest-countries", "", "Comma-separated destination countries for impact analysis")
	flag.Parse()

	logger := logging.NewDefaultLogger().With(
		logging.Component("netpath"),
		logging.ReportID(uuid.NewString()),
	)

	if *topoFile == "" {
		fmt.Fprintln(os.Stderr, "usage: netpath -topology <file> [-modified <file>] [-from <id> -to <id>]")
		os.Exit(2)
	}

	reg := metrics.DefaultRegistry()

	nodes, links, err := ingest.LoadFile(*topoFile)
	if err != nil {
		reg.IngestErrors.Inc()
		logger.Error("topology load failed", logging.File(*topoFile), logging.Error(err))
		os.Exit(1)
	}
	reg.SetTopologySize(len(nodes), len(links))
	logger.Info("topology loaded",
		logging.File(*topoFile),
		logging.NodeCount(len(nodes)),
		logging.LinkCount(len(links)))

	runMatrix(logger, reg, nodes, links, *workers)

	if *from != "" && *to != "" {
		runEnumeration(logger, reg, nodes, links, *from, *to, *maxPaths)
	}

	if *modifiedFile != "" {
		runImpact(logger, reg, nodes, links, *modifiedFile, splitList(*sources), splitList(*dests))
	}
}

func runMatrix(logger logging.Logger, reg *metrics.Registry, nodes []topology.Node, links []topology.Link, workers int) {
	start := time.Now()
	matrix, err := analysis.BuildCostMatrix(nodes, links, analysis.MatrixOptions{Workers: workers})
	if err != nil {
		reg.RecordAnalysis("cost_matrix", "error", time.Since(start))
		logger.Error("cost matrix build failed", logging.Error(err))
		os.Exit(1)
	}

	unreachable := 0
	fmt.Printf("Cost matrix (%d nodes):\n", len(matrix.IDs))
	for i, from := range matrix.IDs {
		for j, to := range matrix.IDs {
			if i == j {
				continue
			}
			cost := matrix.Costs[i][j]
			if analysis.IsUnreachable(cost) {
				unreachable++
				fmt.Printf("  %-12s -> %-12s unreachable\n", from, to)
				continue
			}
			fmt.Printf("  %-12s -> %-12s %g\n", from, to, cost)
		}
	}

	reg.RecordAnalysis("cost_matrix", "success", time.Since(start))
	reg.RecordMatrix(len(matrix.IDs)*len(matrix.IDs), unreachable)
	logger.Info("cost matrix built",
		logging.NodeCount(len(matrix.IDs)),
		logging.Latency(time.Since(start)))

	// The matrix's realized routes double as the transit ranking input.
	var paths []topology.Path
	for _, p := range matrix.PathByPair {
		paths = append(paths, *p)
	}
	ranked := analysis.ScoreTransitCountries(nodes, paths)
	if len(ranked) > 0 {
		fmt.Println("\nTransit criticality:")
		for _, tc := range ranked {
			fmt.Printf("  %-8s score %6.2f  paths %-4d pairs %-3d transit nodes %d\n",
				tc.Country, tc.Score, tc.PathCount, len(tc.Pairs), tc.TransitNodeCount)
		}
	}
}

func runEnumeration(logger logging.Logger, reg *metrics.Registry, nodes []topology.Node, links []topology.Link, from, to string, maxPaths int) {
	start := time.Now()
	paths, err := analysis.EnumeratePaths(nodes, links, from, to, analysis.PathOptions{MaxPaths: maxPaths})
	if err != nil {
		reg.RecordAnalysis("enumerate_paths", "error", time.Since(start))
		logger.Error("path enumeration failed", logging.PairKey(from, to), logging.Error(err))
		os.Exit(1)
	}

	reg.RecordAnalysis("enumerate_paths", "success", time.Since(start))
	reg.RecordEnumeration(len(paths))

	fmt.Printf("\nPaths %s -> %s (%d found):\n", from, to, len(paths))
	for _, p := range paths {
		fmt.Printf("  cost %-8g %s\n", p.TotalCost, strings.Join(p.Nodes, " -> "))
	}
}

func runImpact(logger logging.Logger, reg *metrics.Registry, nodes []topology.Node, original []topology.Link, modifiedFile string, sources, dests []string) {
	modNodes, modified, err := ingest.LoadFile(modifiedFile)
	if err != nil {
		reg.IngestErrors.Inc()
		logger.Error("modified topology load failed", logging.File(modifiedFile), logging.Error(err))
		os.Exit(1)
	}
	if !sameNodeIDs(nodes, modNodes) {
		logger.Error("modified topology declares a different node set",
			logging.File(modifiedFile),
			logging.NodeCount(len(modNodes)))
		os.Exit(1)
	}

	start := time.Now()
	impact, err := analysis.AnalyzeImpact(nodes, original, modified, analysis.ImpactOptions{
		SourceCountries: sources,
		DestCountries:   dests,
	})
	if err != nil {
		reg.RecordAnalysis("impact", "error", time.Since(start))
		logger.Error("impact analysis failed", logging.Error(err))
		os.Exit(1)
	}

	reg.RecordAnalysis("impact", "success", time.Since(start))
	reg.RecordImpact(impact.AffectedPaths)

	fmt.Printf("\nImpact: %d of %d paths affected\n", impact.AffectedPaths, impact.TotalPaths)
	for _, pair := range impact.ChangedPairs {
		fmt.Printf("  changed pair %s -> %s\n", pair.Source, pair.Dest)
	}
	for _, li := range impact.Links {
		fmt.Printf("  link %d (%s <-> %s): %d downstream nodes\n",
			li.Index, li.Endpoints[0], li.Endpoints[1], len(li.Downstream))
	}

	logger.Info("impact analysis complete",
		logging.PathCount(impact.AffectedPaths),
		logging.Latency(time.Since(start)))
}

// sameNodeIDs reports whether two node slices declare the same set of ids.
// The impact comparison is positional over links, so it only makes sense
// when both documents describe the same nodes.
func sameNodeIDs(a, b []topology.Node) bool {
	if len(a) != len(b) {
		return false
	}
	ids := make(map[string]bool, len(a))
	for _, n := range a {
		ids[n.ID] = true
	}
	for _, n := range b {
		if !ids[n.ID] {
			return false
		}
	}
	return true
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
