package topology

// DefaultLinkCost is used when a link carries no cost information at all.
const DefaultLinkCost = 1.0

// Node is a router in the analyzed topology. Nodes are reference data: the
// ingestion layer creates and validates them, the engine only reads them.
type Node struct {
	ID      string `json:"id" yaml:"id"`
	Name    string `json:"name" yaml:"name"`
	Country string `json:"country" yaml:"country"`
	Active  bool   `json:"active" yaml:"active"`
}

// Link is one physical connection with per-direction costs. Costs are
// pointers so that "absent" is distinguishable from zero; ResolveCosts
// applies the fallback chain. Index is the link's stable position in the
// original collection and is what impact attribution reports, which keeps
// parallel links between the same pair of nodes unambiguous.
type Link struct {
	Source      string   `json:"source" yaml:"source"`
	Target      string   `json:"target" yaml:"target"`
	ForwardCost *float64 `json:"forwardCost,omitempty" yaml:"forwardCost,omitempty"`
	ReverseCost *float64 `json:"reverseCost,omitempty" yaml:"reverseCost,omitempty"`
	Cost        *float64 `json:"cost,omitempty" yaml:"cost,omitempty"`
	Up          bool     `json:"up" yaml:"up"`
	Index       int      `json:"index" yaml:"index"`
}

// ResolveCosts returns the effective forward and reverse traversal costs of
// a link: forward falls back from ForwardCost to the legacy Cost field to
// DefaultLinkCost; reverse falls back to the resolved forward cost. Every
// component that expands links into adjacency entries must go through this
// helper so the fallback chain is interpreted identically everywhere.
func ResolveCosts(l Link) (forward, reverse float64) {
	switch {
	case l.ForwardCost != nil:
		forward = *l.ForwardCost
	case l.Cost != nil:
		forward = *l.Cost
	default:
		forward = DefaultLinkCost
	}

	if l.ReverseCost != nil {
		reverse = *l.ReverseCost
	} else {
		reverse = forward
	}

	return forward, reverse
}

// Path is the result of a path computation: the visited node ids in order,
// the traversed link indices (one fewer than nodes), and the sum of the
// directional costs actually used. Paths are values; nothing mutates them
// after they are produced.
type Path struct {
	Nodes     []string `json:"nodes"`
	Links     []int    `json:"links"`
	TotalCost float64  `json:"totalCost"`
}

// Hops returns the number of edges the path traverses.
func (p Path) Hops() int {
	if len(p.Nodes) == 0 {
		return 0
	}
	return len(p.Nodes) - 1
}

// SameRoute reports whether two paths visit exactly the same node sequence.
// Comparison is positional: same length and the same id at every position.
func (p Path) SameRoute(other Path) bool {
	if len(p.Nodes) != len(other.Nodes) {
		return false
	}
	for i, id := range p.Nodes {
		if id != other.Nodes[i] {
			return false
		}
	}
	return true
}
