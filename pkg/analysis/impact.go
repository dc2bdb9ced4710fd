package analysis

import (
	"errors"
	"fmt"
	"sort"

	"github.com/jmcgarr/netpath/pkg/topology"
)

// ErrMisalignedLinks is returned when the original and modified link slices
// differ in length. Impact attribution compares links positionally, so the
// caller must supply index-aligned collections; a silent mismatch would
// attribute changes to the wrong links.
var ErrMisalignedLinks = errors.New("original and modified link collections are not index-aligned")

// CountryPair is an ordered source/destination country combination.
type CountryPair struct {
	Source string
	Dest   string
}

// LinkImpact attributes observed path changes to one modified link.
type LinkImpact struct {
	// Index is the link's stable position in the original collection.
	Index int
	// Endpoints are the two node ids the link locally touches.
	Endpoints [2]string
	// Downstream is every node id appearing on a changed path that
	// traversed this link in either direction, sorted for determinism.
	Downstream []string
}

// ImpactResult aggregates a before/after topology comparison.
type ImpactResult struct {
	// TotalPaths is the number of node pairs with a route under the
	// original topology.
	TotalPaths int
	// AffectedPaths is the number of node pairs whose best route changed
	// in cost or node sequence, appeared, or disappeared.
	AffectedPaths int
	// ChangedPairs lists the distinct country pairs containing at least
	// one affected node pair, in evaluation order.
	ChangedPairs []CountryPair
	// Links holds per-link attribution for every link whose effective
	// cost or status differs between the two collections.
	Links []LinkImpact
}

// ImpactOptions restricts which country pairs are evaluated. Nil slices
// mean all countries present among the supplied nodes.
type ImpactOptions struct {
	SourceCountries []string
	DestCountries   []string
}

// AnalyzeImpact computes the best route for every concrete node pair across
// the requested country pairs (self country pairs excluded) under both link
// collections and classifies what changed. A route counts as changed when
// its cost differs or its node sequence differs positionally: a reroute
// that happens to cost the same is still a change, because operators care
// about route identity, not only cost.
//
// The two link slices must be index-aligned (same length, position i is the
// same link before and after); a length mismatch returns ErrMisalignedLinks.
func AnalyzeImpact(nodes []topology.Node, originalLinks, modifiedLinks []topology.Link, opts ImpactOptions) (*ImpactResult, error) {
	if len(originalLinks) != len(modifiedLinks) {
		return nil, fmt.Errorf("%w: %d original vs %d modified",
			ErrMisalignedLinks, len(originalLinks), len(modifiedLinks))
	}

	idx := buildNodeIndex(nodes)
	byCountry, countryOrder := groupByCountry(nodes)

	sources := opts.SourceCountries
	if sources == nil {
		sources = countryOrder
	}
	dests := opts.DestCountries
	if dests == nil {
		dests = countryOrder
	}

	adjBefore := topology.BuildAdjacency(nodes, originalLinks)
	adjAfter := topology.BuildAdjacency(nodes, modifiedLinks)

	// One relaxation pass per distinct source node, shared across every
	// destination country that pairs with it.
	beforeTrees := make(map[int]searchTree)
	afterTrees := make(map[int]searchTree)
	treeFor := func(trees map[int]searchTree, adj topology.Projection, src int) searchTree {
		if t, ok := trees[src]; ok {
			return t
		}
		t := dijkstraFrom(adj, idx, src)
		trees[src] = t
		return t
	}

	result := &ImpactResult{}
	changedLinks := changedLinkIndices(originalLinks, modifiedLinks)
	downstream := make(map[int]map[string]bool, len(changedLinks))
	for _, li := range changedLinks {
		downstream[li] = make(map[string]bool)
	}

	changedPairSeen := make(map[CountryPair]bool)

	for _, sc := range sources {
		for _, dc := range dests {
			if sc == dc {
				continue
			}
			pair := CountryPair{Source: sc, Dest: dc}

			for _, src := range byCountry[sc] {
				bt := treeFor(beforeTrees, adjBefore, src)
				at := treeFor(afterTrees, adjAfter, src)

				for _, dst := range byCountry[dc] {
					if src == dst {
						continue
					}
					before := bt.pathTo(idx, dst)
					after := at.pathTo(idx, dst)

					if before != nil {
						result.TotalPaths++
					}
					if !routeChanged(before, after) {
						continue
					}

					result.AffectedPaths++
					if !changedPairSeen[pair] {
						changedPairSeen[pair] = true
						result.ChangedPairs = append(result.ChangedPairs, pair)
					}

					for _, li := range changedLinks {
						collectDownstream(downstream[li], originalLinks[li], before)
						collectDownstream(downstream[li], originalLinks[li], after)
					}
				}
			}
		}
	}

	for _, li := range changedLinks {
		touched := make([]string, 0, len(downstream[li]))
		for id := range downstream[li] {
			touched = append(touched, id)
		}
		sort.Strings(touched)
		result.Links = append(result.Links, LinkImpact{
			Index:      li,
			Endpoints:  [2]string{originalLinks[li].Source, originalLinks[li].Target},
			Downstream: touched,
		})
	}

	return result, nil
}

// routeChanged classifies a before/after route pair. Appearing or
// disappearing counts as a change; both absent does not.
func routeChanged(before, after *topology.Path) bool {
	if before == nil && after == nil {
		return false
	}
	if before == nil || after == nil {
		return true
	}
	return before.TotalCost != after.TotalCost || !before.SameRoute(*after)
}

// changedLinkIndices returns the indices where the two collections differ
// in status or effective directional cost. Costs are compared through the
// shared resolution helper so the fallback chain cannot skew attribution.
func changedLinkIndices(original, modified []topology.Link) []int {
	var changed []int
	for i := range original {
		of, or := topology.ResolveCosts(original[i])
		mf, mr := topology.ResolveCosts(modified[i])
		if original[i].Up != modified[i].Up || of != mf || or != mr {
			changed = append(changed, i)
		}
	}
	return changed
}

// collectDownstream adds every node of the path when the path traverses the
// link's endpoint pair adjacently, in either direction. Matching is by node
// ids rather than link index so a logical link is detected no matter which
// of its two adjacency expansions the route used.
func collectDownstream(into map[string]bool, link topology.Link, path *topology.Path) {
	if path == nil || !pathUsesLink(path, link) {
		return
	}
	for _, id := range path.Nodes {
		into[id] = true
	}
}

func pathUsesLink(path *topology.Path, link topology.Link) bool {
	for i := 0; i+1 < len(path.Nodes); i++ {
		a, b := path.Nodes[i], path.Nodes[i+1]
		if (a == link.Source && b == link.Target) || (a == link.Target && b == link.Source) {
			return true
		}
	}
	return false
}

// groupByCountry buckets node indices by country, preserving first-seen
// country order so evaluation order is stable run to run.
func groupByCountry(nodes []topology.Node) (map[string][]int, []string) {
	byCountry := make(map[string][]int)
	var order []string
	for i, n := range nodes {
		if _, ok := byCountry[n.Country]; !ok {
			order = append(order, n.Country)
		}
		byCountry[n.Country] = append(byCountry[n.Country], i)
	}
	return byCountry, order
}
