package topology

// AdjacencyEntry is one directed hop: the neighbor it reaches, the cost of
// traversing the hop in this direction, and the index of the link it came from.
type AdjacencyEntry struct {
	Target    string
	Cost      float64
	LinkIndex int
}

// Projection is the directed expansion of a link collection: for every node
// id, the hops reachable in one step. It is a throwaway value built fresh for
// each computation; it is never cached or shared between calls.
type Projection struct {
	neighbors map[string][]AdjacencyEntry
}

// BuildAdjacency expands every link into at most two directed adjacency
// entries, source->target at the resolved forward cost and target->source at
// the resolved reverse cost, both carrying the link's index.
//
// Links that are down, self-loops, and directions whose resolved cost is
// negative are skipped. Negative costs would break Dijkstra's relaxation
// invariant, so such an edge is treated as absent rather than rejected.
// Endpoints not present in nodes get no entry at all, which makes them
// unreachable instead of an error: filtered-out nodes are a normal query
// outcome, not malformed input.
func BuildAdjacency(nodes []Node, links []Link) Projection {
	known := make(map[string]bool, len(nodes))
	for _, n := range nodes {
		known[n.ID] = true
	}

	p := Projection{neighbors: make(map[string][]AdjacencyEntry, len(nodes))}
	for _, l := range links {
		if !l.Up || l.Source == l.Target {
			continue
		}
		if !known[l.Source] || !known[l.Target] {
			continue
		}

		forward, reverse := ResolveCosts(l)
		if forward >= 0 {
			p.neighbors[l.Source] = append(p.neighbors[l.Source], AdjacencyEntry{
				Target:    l.Target,
				Cost:      forward,
				LinkIndex: l.Index,
			})
		}
		if reverse >= 0 {
			p.neighbors[l.Target] = append(p.neighbors[l.Target], AdjacencyEntry{
				Target:    l.Source,
				Cost:      reverse,
				LinkIndex: l.Index,
			})
		}
	}

	return p
}

// Neighbors returns the directed hops leaving the given node, in link order.
// The returned slice is owned by the projection and must not be modified.
func (p Projection) Neighbors(id string) []AdjacencyEntry {
	return p.neighbors[id]
}
