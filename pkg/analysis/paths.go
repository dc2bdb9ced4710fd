package analysis

import (
	"fmt"
	"sort"

	"github.com/jmcgarr/netpath/pkg/topology"
)

// PathOptions configures bounded path enumeration.
type PathOptions struct {
	// MaxPaths caps how many loop-free paths are collected before the
	// search stops. The cap is what keeps runtime bounded on dense graphs,
	// where the number of simple paths grows super-exponentially.
	MaxPaths int
}

// DefaultPathOptions returns the default enumeration bound.
func DefaultPathOptions() PathOptions {
	return PathOptions{MaxPaths: 50}
}

// EnumeratePaths collects up to opts.MaxPaths simple paths from start to end
// by depth-first exploration of the adjacency projection, visiting cheaper
// neighbors first so the quota fills with comparatively cheap paths. The
// result is ordered by ascending total cost, then ascending hop count.
//
// Every returned path is loop-free: a neighbor already on the growing path
// is never revisited. Only the first (cheapest) path is guaranteed globally
// minimal; use ShortestPath for strict minimality queries.
//
// A disconnected pair yields an empty slice, not an error. An id missing
// from nodes yields ErrUnknownNode.
func EnumeratePaths(nodes []topology.Node, links []topology.Link, start, end string, opts PathOptions) ([]topology.Path, error) {
	if opts.MaxPaths <= 0 {
		opts.MaxPaths = DefaultPathOptions().MaxPaths
	}

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
		return []topology.Path{{Nodes: []string{start}, Links: []int{}}}, nil
	}

	adj := topology.BuildAdjacency(nodes, links)
	e := &enumerator{
		adj:    adj,
		end:    end,
		max:    opts.MaxPaths,
		onPath: map[string]bool{start: true},
		nodes:  []string{start},
	}
	e.explore(start, 0)

	sort.SliceStable(e.found, func(i, j int) bool {
		if e.found[i].TotalCost != e.found[j].TotalCost {
			return e.found[i].TotalCost < e.found[j].TotalCost
		}
		return e.found[i].Hops() < e.found[j].Hops()
	})

	// The quota can cut exploration off before the global optimum is seen.
	// The head of the result is guaranteed minimal, so anchor it with a
	// relaxation pass when the DFS came up short.
	if best := dijkstraFrom(adj, idx, si).pathTo(idx, ei); best != nil {
		if len(e.found) == 0 || e.found[0].TotalCost > best.TotalCost {
			e.found = append([]topology.Path{*best}, e.found...)
			if len(e.found) > opts.MaxPaths {
				e.found = e.found[:opts.MaxPaths]
			}
		}
	}

	return e.found, nil
}

type enumerator struct {
	adj    topology.Projection
	end    string
	max    int
	onPath map[string]bool
	nodes  []string
	links  []int
	found  []topology.Path
}

// explore extends the growing path from current; returns true once the
// quota is met so callers can unwind without further work.
func (e *enumerator) explore(current string, cost float64) bool {
	neighbors := e.adj.Neighbors(current)

	// Cheapest hop first. Stable so parallel links keep their link order.
	ordered := make([]topology.AdjacencyEntry, len(neighbors))
	copy(ordered, neighbors)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Cost < ordered[j].Cost
	})

	for _, hop := range ordered {
		if e.onPath[hop.Target] {
			continue
		}

		if hop.Target == e.end {
			e.found = append(e.found, topology.Path{
				Nodes:     appendCopy(e.nodes, hop.Target),
				Links:     appendCopyInts(e.links, hop.LinkIndex),
				TotalCost: cost + hop.Cost,
			})
			if len(e.found) >= e.max {
				return true
			}
			continue
		}

		e.onPath[hop.Target] = true
		e.nodes = append(e.nodes, hop.Target)
		e.links = append(e.links, hop.LinkIndex)

		done := e.explore(hop.Target, cost+hop.Cost)

		e.nodes = e.nodes[:len(e.nodes)-1]
		e.links = e.links[:len(e.links)-1]
		delete(e.onPath, hop.Target)

		if done {
			return true
		}
	}

	return false
}

func appendCopy(s []string, v string) []string {
	out := make([]string, len(s)+1)
	copy(out, s)
	out[len(s)] = v
	return out
}

func appendCopyInts(s []int, v int) []int {
	out := make([]int, len(s)+1)
	copy(out, s)
	out[len(s)] = v
	return out
}
