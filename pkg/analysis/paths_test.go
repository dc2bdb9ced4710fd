package analysis

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/jmcgarr/netpath/pkg/topology"
)

// diamond builds the 4-node diamond: a->b 10, a->c 15, b->d 20, c->d 25.
func diamond() ([]topology.Node, []topology.Link) {
	nodes := testNodes("a", "b", "c", "d")
	links := []topology.Link{
		symLink(0, "a", "b", 10),
		symLink(1, "a", "c", 15),
		symLink(2, "b", "d", 20),
		symLink(3, "c", "d", 25),
	}
	return nodes, links
}

func TestEnumeratePaths_DiamondScenario(t *testing.T) {
	nodes, links := diamond()

	paths, err := EnumeratePaths(nodes, links, "a", "d", PathOptions{MaxPaths: 10})
	if err != nil {
		t.Fatalf("EnumeratePaths failed: %v", err)
	}
	if len(paths) == 0 {
		t.Fatal("Expected paths through the diamond")
	}

	wantFirst := topology.Path{
		Nodes:     []string{"a", "b", "d"},
		Links:     []int{0, 2},
		TotalCost: 30,
	}
	if diff := cmp.Diff(wantFirst, paths[0]); diff != "" {
		t.Errorf("Cheapest path mismatch (-want +got):\n%s", diff)
	}

	wantAlternate := topology.Path{
		Nodes:     []string{"a", "c", "d"},
		Links:     []int{1, 3},
		TotalCost: 40,
	}
	found := false
	for _, p := range paths {
		if cmp.Equal(wantAlternate, p) {
			found = true
			break
		}
	}
	if !found {
		t.Errorf("Alternate path [a c d] at cost 40 not found in %v", paths)
	}
}

func TestEnumeratePaths_OrderingInvariant(t *testing.T) {
	nodes, links := diamond()

	paths, err := EnumeratePaths(nodes, links, "a", "d", DefaultPathOptions())
	if err != nil {
		t.Fatalf("EnumeratePaths failed: %v", err)
	}

	for i := 1; i < len(paths); i++ {
		if paths[i].TotalCost < paths[i-1].TotalCost {
			t.Errorf("Paths out of cost order at %d: %v then %v",
				i, paths[i-1].TotalCost, paths[i].TotalCost)
		}
	}
}

func TestEnumeratePaths_SimplicityInvariantWithCycles(t *testing.T) {
	// Ring with a chord: plenty of cyclic walks exist, none may be returned.
	nodes := testNodes("a", "b", "c", "d", "e")
	links := []topology.Link{
		symLink(0, "a", "b", 1),
		symLink(1, "b", "c", 1),
		symLink(2, "c", "d", 1),
		symLink(3, "d", "e", 1),
		symLink(4, "e", "a", 1),
		symLink(5, "b", "d", 1),
	}

	paths, err := EnumeratePaths(nodes, links, "a", "d", DefaultPathOptions())
	if err != nil {
		t.Fatalf("EnumeratePaths failed: %v", err)
	}
	if len(paths) == 0 {
		t.Fatal("Expected paths in the ring")
	}

	for _, p := range paths {
		seen := make(map[string]bool)
		for _, id := range p.Nodes {
			if seen[id] {
				t.Fatalf("Path %v visits %q twice", p.Nodes, id)
			}
			seen[id] = true
		}
	}
}

func TestEnumeratePaths_RespectsLimit(t *testing.T) {
	// Complete-ish graph with many simple paths between a and f.
	nodes := testNodes("a", "b", "c", "d", "e", "f")
	var links []topology.Link
	ids := []string{"a", "b", "c", "d", "e", "f"}
	idx := 0
	for i := range ids {
		for j := i + 1; j < len(ids); j++ {
			links = append(links, symLink(idx, ids[i], ids[j], float64(idx%5+1)))
			idx++
		}
	}

	paths, err := EnumeratePaths(nodes, links, "a", "f", PathOptions{MaxPaths: 7})
	if err != nil {
		t.Fatalf("EnumeratePaths failed: %v", err)
	}
	if len(paths) != 7 {
		t.Errorf("Expected exactly 7 paths under the limit, got %d", len(paths))
	}
}

func TestEnumeratePaths_DisconnectedReturnsEmpty(t *testing.T) {
	nodes := testNodes("a", "b", "c")
	links := []topology.Link{symLink(0, "a", "b", 1)}

	paths, err := EnumeratePaths(nodes, links, "a", "c", DefaultPathOptions())
	if err != nil {
		t.Fatalf("Disconnection must not be an error, got: %v", err)
	}
	if len(paths) != 0 {
		t.Errorf("Expected empty result for disconnected pair, got %v", paths)
	}
}

func TestEnumeratePaths_UnknownNodeFailsFast(t *testing.T) {
	nodes := testNodes("a", "b")
	links := []topology.Link{symLink(0, "a", "b", 1)}

	_, err := EnumeratePaths(nodes, links, "ghost", "b", DefaultPathOptions())
	if !errors.Is(err, ErrUnknownNode) {
		t.Errorf("Expected ErrUnknownNode, got: %v", err)
	}
}

func TestEnumeratePaths_CheapestMatchesShortestPath(t *testing.T) {
	nodes := testNodes("a", "b", "c", "d", "e")
	links := []topology.Link{
		link(0, "a", "b", 4, 9),
		link(1, "b", "c", 3, 2),
		link(2, "a", "c", 9, 1),
		link(3, "c", "d", 2, 2),
		link(4, "b", "d", 8, 8),
		link(5, "d", "e", 1, 5),
	}

	paths, err := EnumeratePaths(nodes, links, "a", "e", DefaultPathOptions())
	if err != nil {
		t.Fatalf("EnumeratePaths failed: %v", err)
	}
	best, err := ShortestPathCost(nodes, links, "a", "e")
	if err != nil {
		t.Fatalf("ShortestPathCost failed: %v", err)
	}

	if len(paths) == 0 {
		t.Fatal("Expected at least one path")
	}
	if paths[0].TotalCost != best {
		t.Errorf("Cheapest enumerated cost %v != shortest path cost %v",
			paths[0].TotalCost, best)
	}
}
