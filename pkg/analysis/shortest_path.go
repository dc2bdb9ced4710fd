package analysis

import (
	"container/heap"
	"errors"
	"fmt"
	"math"

	"github.com/jmcgarr/netpath/pkg/topology"
)

// ErrUnknownNode is returned when a query names a node id that is not among
// the supplied nodes. A node that exists but has no usable links is a
// different situation: that is ordinary unreachability, not an error.
var ErrUnknownNode = errors.New("unknown node id")

// Unreachable is the cost sentinel for "no path exists".
var Unreachable = math.Inf(1)

// IsUnreachable reports whether a cost is the unreachable sentinel.
func IsUnreachable(cost float64) bool {
	return math.IsInf(cost, 1)
}

// nodeIndex maps node ids to dense indices in supplied-node order. The dense
// form is what the frontier heap operates on; all public results stay in
// terms of string ids.
type nodeIndex struct {
	ids []string
	pos map[string]int
}

func buildNodeIndex(nodes []topology.Node) nodeIndex {
	idx := nodeIndex{
		ids: make([]string, len(nodes)),
		pos: make(map[string]int, len(nodes)),
	}
	for i, n := range nodes {
		idx.ids[i] = n.ID
		idx.pos[n.ID] = i
	}
	return idx
}

// searchTree is the result of one single-source Dijkstra pass: tentative
// costs plus the predecessor node and link for every reached node.
type searchTree struct {
	dist     []float64
	prevNode []int
	prevLink []int
}

// frontierItem is one tentative-cost entry in the relaxation frontier.
type frontierItem struct {
	node int
	cost float64
}

// frontier is a min-heap of tentative costs. A cost decrease pushes a fresh
// entry instead of mutating the old one; the superseded entry stays in the
// heap and is discarded at pop time once its cost no longer matches the
// node's settled distance.
type frontier []frontierItem

func (f frontier) Len() int           { return len(f) }
func (f frontier) Less(i, j int) bool { return f[i].cost < f[j].cost }
func (f frontier) Swap(i, j int)      { f[i], f[j] = f[j], f[i] }

func (f *frontier) Push(x any) {
	*f = append(*f, x.(frontierItem))
}

func (f *frontier) Pop() any {
	old := *f
	n := len(old)
	it := old[n-1]
	*f = old[:n-1]
	return it
}

// dijkstraFrom relaxes outward from the source until the frontier is
// exhausted, using a logarithmic-extract heap keyed by tentative cost.
// Ties keep the first-discovered predecessor (strict improvement only), so
// repeated runs on identical input produce identical trees.
func dijkstraFrom(adj topology.Projection, idx nodeIndex, src int) searchTree {
	n := len(idx.ids)
	t := searchTree{
		dist:     make([]float64, n),
		prevNode: make([]int, n),
		prevLink: make([]int, n),
	}
	for i := 0; i < n; i++ {
		t.dist[i] = Unreachable
		t.prevNode[i] = -1
		t.prevLink[i] = -1
	}

	t.dist[src] = 0
	h := &frontier{{node: src, cost: 0}}

	for h.Len() > 0 {
		it := heap.Pop(h).(frontierItem)
		u, c := it.node, it.cost
		if c > t.dist[u] {
			continue // superseded by a cheaper entry pushed later
		}

		for _, e := range adj.Neighbors(idx.ids[u]) {
			v := idx.pos[e.Target]
			nc := c + e.Cost
			if nc < t.dist[v] {
				t.dist[v] = nc
				t.prevNode[v] = u
				t.prevLink[v] = e.LinkIndex
				heap.Push(h, frontierItem{node: v, cost: nc})
			}
		}
	}

	return t
}

// pathTo reconstructs the realized path from the tree's source to dst, or
// nil when dst was never reached.
func (t searchTree) pathTo(idx nodeIndex, dst int) *topology.Path {
	if IsUnreachable(t.dist[dst]) {
		return nil
	}

	nodeSeq := []string{}
	linkSeq := []int{}
	for v, steps := dst, 0; v != -1; v = t.prevNode[v] {
		// A valid tree walks each node at most once. A longer chain means
		// a predecessor cycle, which must surface instead of allocating
		// without bound.
		steps++
		if steps > len(idx.ids) {
			panic("analysis: predecessor chain exceeds node count")
		}
		nodeSeq = append(nodeSeq, idx.ids[v])
		if t.prevLink[v] != -1 {
			linkSeq = append(linkSeq, t.prevLink[v])
		}
	}
	reverseStrings(nodeSeq)
	reverseInts(linkSeq)

	return &topology.Path{
		Nodes:     nodeSeq,
		Links:     linkSeq,
		TotalCost: t.dist[dst],
	}
}

// ShortestPath computes the minimum-cost path between two nodes over the
// directed adjacency projection of links, honoring asymmetric per-direction
// costs. It returns nil (and no error) when end is unreachable; it returns
// ErrUnknownNode when either id is not among the supplied nodes.
func ShortestPath(nodes []topology.Node, links []topology.Link, start, end string) (*topology.Path, error) {
	idx := buildNodeIndex(nodes)
	si, ok := idx.pos[start]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownNode, start)
	}
	ei, ok := idx.pos[end]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownNode, end)
	}

	if start == end {
		return &topology.Path{Nodes: []string{start}, Links: []int{}}, nil
	}

	adj := topology.BuildAdjacency(nodes, links)
	tree := dijkstraFrom(adj, idx, si)
	return tree.pathTo(idx, ei), nil
}

// ShortestPathCost is the cost-only variant of ShortestPath. Unreachable
// pairs yield the +Inf sentinel, never an error.
func ShortestPathCost(nodes []topology.Node, links []topology.Link, start, end string) (float64, error) {
	path, err := ShortestPath(nodes, links, start, end)
	if err != nil {
		return 0, err
	}
	if path == nil {
		return Unreachable, nil
	}
	return path.TotalCost, nil
}

func reverseStrings(s []string) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

func reverseInts(s []int) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
