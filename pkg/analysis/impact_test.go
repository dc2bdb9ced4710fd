package analysis

import (
	"errors"
	"testing"

	"github.com/jmcgarr/netpath/pkg/topology"
)

func countryNode(id, country string) topology.Node {
	return topology.Node{ID: id, Name: id, Country: country, Active: true}
}

// impactTopology is a 2x2 country layout: fr1, fr2 in fr; de1, de2 in de,
// with a cheap route fr1-de1 and an expensive detour through fr2/de2.
func impactTopology() ([]topology.Node, []topology.Link) {
	nodes := []topology.Node{
		countryNode("fr1", "fr"),
		countryNode("fr2", "fr"),
		countryNode("de1", "de"),
		countryNode("de2", "de"),
	}
	links := []topology.Link{
		symLink(0, "fr1", "de1", 10),
		symLink(1, "fr1", "fr2", 5),
		symLink(2, "fr2", "de2", 50),
		symLink(3, "de2", "de1", 5),
	}
	return nodes, links
}

func withCost(links []topology.Link, index int, cost float64) []topology.Link {
	out := make([]topology.Link, len(links))
	copy(out, links)
	out[index].ForwardCost = costPtr(cost)
	out[index].ReverseCost = costPtr(cost)
	return out
}

func withStatus(links []topology.Link, index int, up bool) []topology.Link {
	out := make([]topology.Link, len(links))
	copy(out, links)
	out[index].Up = up
	return out
}

func TestAnalyzeImpact_NoChange(t *testing.T) {
	nodes, links := impactTopology()

	result, err := AnalyzeImpact(nodes, links, links, ImpactOptions{})
	if err != nil {
		t.Fatalf("AnalyzeImpact failed: %v", err)
	}

	if result.AffectedPaths != 0 {
		t.Errorf("AffectedPaths = %d, want 0 for identical topologies", result.AffectedPaths)
	}
	if len(result.ChangedPairs) != 0 {
		t.Errorf("ChangedPairs = %v, want none", result.ChangedPairs)
	}
	if len(result.Links) != 0 {
		t.Errorf("Links = %v, want none", result.Links)
	}
	if result.TotalPaths == 0 {
		t.Error("TotalPaths must count the evaluated routes")
	}
}

func TestAnalyzeImpact_CostIncreaseReroutes(t *testing.T) {
	nodes, links := impactTopology()
	// Raising fr1-de1 from 10 to 500 forces the detour for pairs that used it.
	modified := withCost(links, 0, 500)

	result, err := AnalyzeImpact(nodes, links, modified, ImpactOptions{})
	if err != nil {
		t.Fatalf("AnalyzeImpact failed: %v", err)
	}

	if result.AffectedPaths == 0 {
		t.Fatal("Expected affected paths after the cost change")
	}
	if len(result.Links) != 1 {
		t.Fatalf("Links = %+v, want exactly the one changed link", result.Links)
	}

	li := result.Links[0]
	if li.Index != 0 {
		t.Errorf("Changed link index = %d, want 0", li.Index)
	}
	if li.Endpoints != [2]string{"fr1", "de1"} {
		t.Errorf("Endpoints = %v, want [fr1 de1]", li.Endpoints)
	}
	// The before-route fr1->de1 used the link, so both endpoints must be
	// in its downstream set.
	if !containsString(li.Downstream, "fr1") || !containsString(li.Downstream, "de1") {
		t.Errorf("Downstream = %v, want fr1 and de1 present", li.Downstream)
	}
}

func TestAnalyzeImpact_StatusChangeDetected(t *testing.T) {
	nodes, links := impactTopology()
	modified := withStatus(links, 0, false)

	result, err := AnalyzeImpact(nodes, links, modified, ImpactOptions{})
	if err != nil {
		t.Fatalf("AnalyzeImpact failed: %v", err)
	}

	if len(result.Links) != 1 || result.Links[0].Index != 0 {
		t.Fatalf("Links = %+v, want attribution to link 0", result.Links)
	}
	if result.AffectedPaths == 0 {
		t.Error("Taking a link down must affect the routes that used it")
	}
}

func TestAnalyzeImpact_EqualCostRerouteStillCounts(t *testing.T) {
	// Two disjoint routes a->d of equal cost; dropping the used one moves
	// traffic to the other at the same total cost. Route identity changed,
	// so the path must be classified as affected.
	nodes := []topology.Node{
		countryNode("a", "aa"),
		countryNode("b", "bb"),
		countryNode("c", "bb"),
		countryNode("d", "dd"),
	}
	links := []topology.Link{
		symLink(0, "a", "b", 4),
		symLink(1, "b", "d", 6),
		symLink(2, "a", "c", 5),
		symLink(3, "c", "d", 5),
	}
	modified := withStatus(links, 0, false)

	result, err := AnalyzeImpact(nodes, links, modified, ImpactOptions{
		SourceCountries: []string{"aa"},
		DestCountries:   []string{"dd"},
	})
	if err != nil {
		t.Fatalf("AnalyzeImpact failed: %v", err)
	}

	if result.AffectedPaths != 1 {
		t.Errorf("AffectedPaths = %d, want 1 (equal-cost reroute counts)", result.AffectedPaths)
	}
}

func TestAnalyzeImpact_MisalignedLinksFailFast(t *testing.T) {
	nodes, links := impactTopology()

	_, err := AnalyzeImpact(nodes, links, links[:len(links)-1], ImpactOptions{})
	if !errors.Is(err, ErrMisalignedLinks) {
		t.Errorf("Expected ErrMisalignedLinks, got: %v", err)
	}
}

func TestAnalyzeImpact_CountryFilter(t *testing.T) {
	nodes, links := impactTopology()
	modified := withCost(links, 0, 500)

	result, err := AnalyzeImpact(nodes, links, modified, ImpactOptions{
		SourceCountries: []string{"fr"},
		DestCountries:   []string{"de"},
	})
	if err != nil {
		t.Fatalf("AnalyzeImpact failed: %v", err)
	}

	for _, pair := range result.ChangedPairs {
		if pair.Source != "fr" || pair.Dest != "de" {
			t.Errorf("Pair %v outside the requested fr->de scope", pair)
		}
	}
}

func containsString(s []string, v string) bool {
	for _, x := range s {
		if x == v {
			return true
		}
	}
	return false
}
