package topology

import (
	"testing"
)

func costPtr(v float64) *float64 { return &v }

func TestResolveCosts_ForwardOnly(t *testing.T) {
	l := Link{Source: "a", Target: "b", ForwardCost: costPtr(50)}

	forward, reverse := ResolveCosts(l)

	if forward != 50 {
		t.Errorf("forward = %v, want 50", forward)
	}
	// Reverse falls back to the resolved forward cost
	if reverse != 50 {
		t.Errorf("reverse = %v, want 50", reverse)
	}
}

func TestResolveCosts_LegacyCostField(t *testing.T) {
	l := Link{Source: "a", Target: "b", Cost: costPtr(30)}

	forward, reverse := ResolveCosts(l)

	if forward != 30 || reverse != 30 {
		t.Errorf("ResolveCosts = (%v, %v), want (30, 30)", forward, reverse)
	}
}

func TestResolveCosts_NoCostAtAll(t *testing.T) {
	l := Link{Source: "a", Target: "b"}

	forward, reverse := ResolveCosts(l)

	if forward != DefaultLinkCost || reverse != DefaultLinkCost {
		t.Errorf("ResolveCosts = (%v, %v), want (%v, %v)",
			forward, reverse, DefaultLinkCost, DefaultLinkCost)
	}
}

func TestResolveCosts_Asymmetric(t *testing.T) {
	l := Link{Source: "a", Target: "b", ForwardCost: costPtr(10), ReverseCost: costPtr(100)}

	forward, reverse := ResolveCosts(l)

	if forward != 10 {
		t.Errorf("forward = %v, want 10", forward)
	}
	if reverse != 100 {
		t.Errorf("reverse = %v, want 100", reverse)
	}
}

func TestResolveCosts_ForwardCostWinsOverLegacy(t *testing.T) {
	l := Link{Source: "a", Target: "b", ForwardCost: costPtr(5), Cost: costPtr(99)}

	forward, _ := ResolveCosts(l)

	if forward != 5 {
		t.Errorf("forward = %v, want 5 (ForwardCost beats legacy Cost)", forward)
	}
}

func TestPath_SameRoute(t *testing.T) {
	a := Path{Nodes: []string{"a", "b", "c"}}
	b := Path{Nodes: []string{"a", "b", "c"}}
	c := Path{Nodes: []string{"a", "c", "b"}}
	d := Path{Nodes: []string{"a", "b"}}

	if !a.SameRoute(b) {
		t.Error("Identical sequences must compare equal")
	}
	if a.SameRoute(c) {
		t.Error("Reordered sequences must compare different")
	}
	if a.SameRoute(d) {
		t.Error("Sequences of different length must compare different")
	}
}

func TestPath_Hops(t *testing.T) {
	if got := (Path{Nodes: []string{"a", "b", "c"}}).Hops(); got != 2 {
		t.Errorf("Hops = %d, want 2", got)
	}
	if got := (Path{}).Hops(); got != 0 {
		t.Errorf("Hops of empty path = %d, want 0", got)
	}
}
