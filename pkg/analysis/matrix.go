package analysis

import (
	"github.com/jmcgarr/netpath/pkg/parallel"
	"github.com/jmcgarr/netpath/pkg/topology"
)

// Pair identifies an ordered source/destination node pair.
type Pair struct {
	From string
	To   string
}

// CostMatrix is the all-pairs shortest-cost table over the supplied nodes.
// Costs is row-major in the order of IDs; unreachable pairs hold the +Inf
// sentinel, which renderers must translate rather than print as a number.
// PathByPair carries the realized route for every reachable ordered pair.
type CostMatrix struct {
	IDs        []string
	Costs      [][]float64
	PathByPair map[Pair]*topology.Path
}

// MatrixOptions configures the matrix build.
type MatrixOptions struct {
	// Workers > 1 fans row computations out over a worker pool. Rows write
	// into pre-assigned slots, so the result is identical to the serial
	// build regardless of completion order.
	Workers int
}

// DefaultMatrixOptions returns the serial configuration.
func DefaultMatrixOptions() MatrixOptions {
	return MatrixOptions{Workers: 1}
}

// BuildCostMatrix computes the shortest-path cost for every ordered pair of
// supplied node ids (self-pairs are 0). The builder performs no filtering:
// callers wanting a per-country or otherwise reduced matrix pre-filter the
// node slice. One adjacency projection is shared across all sources, and
// each row is a single relaxation pass from its source node.
func BuildCostMatrix(nodes []topology.Node, links []topology.Link, opts MatrixOptions) (*CostMatrix, error) {
	idx := buildNodeIndex(nodes)
	adj := topology.BuildAdjacency(nodes, links)
	n := len(idx.ids)

	m := &CostMatrix{
		IDs:        idx.ids,
		Costs:      make([][]float64, n),
		PathByPair: make(map[Pair]*topology.Path, n*n),
	}

	rows := make([]matrixRow, n)
	fillRow := func(i int) {
		rows[i] = buildMatrixRow(adj, idx, i)
	}

	if opts.Workers > 1 && n > 1 {
		pool, err := parallel.NewWorkerPool(opts.Workers)
		if err != nil {
			return nil, err
		}
		for i := 0; i < n; i++ {
			i := i
			// Submit refuses only after Close; a refused row must still
			// be computed, so fall back to the caller's goroutine.
			if !pool.Submit(func() { fillRow(i) }) {
				fillRow(i)
			}
		}
		pool.Close()
	} else {
		for i := 0; i < n; i++ {
			fillRow(i)
		}
	}

	for i := 0; i < n; i++ {
		m.Costs[i] = rows[i].costs
		for j, p := range rows[i].paths {
			if p != nil {
				m.PathByPair[Pair{From: idx.ids[i], To: idx.ids[j]}] = p
			}
		}
	}

	return m, nil
}

type matrixRow struct {
	costs []float64
	paths []*topology.Path
}

func buildMatrixRow(adj topology.Projection, idx nodeIndex, src int) matrixRow {
	n := len(idx.ids)
	row := matrixRow{
		costs: make([]float64, n),
		paths: make([]*topology.Path, n),
	}

	tree := dijkstraFrom(adj, idx, src)
	for j := 0; j < n; j++ {
		if j == src {
			row.costs[j] = 0
			row.paths[j] = &topology.Path{Nodes: []string{idx.ids[src]}, Links: []int{}}
			continue
		}
		row.costs[j] = tree.dist[j]
		row.paths[j] = tree.pathTo(idx, j)
	}

	return row
}

// Cost returns the matrix entry for a pair of ids, or the unreachable
// sentinel when either id is not part of the matrix.
func (m *CostMatrix) Cost(from, to string) float64 {
	fi, fok := indexOf(m.IDs, from)
	ti, tok := indexOf(m.IDs, to)
	if !fok || !tok {
		return Unreachable
	}
	return m.Costs[fi][ti]
}

func indexOf(ids []string, id string) (int, bool) {
	for i, v := range ids {
		if v == id {
			return i, true
		}
	}
	return 0, false
}
