package semigroups

import (
	"testing"

	"github.com/gitrdm/gosemigroups/pkg/alphabet"
)

func TestWordGraphAddNodesAndTargets(t *testing.T) {
	g := NewWordGraph(2)
	n0 := g.AddNode()
	n1 := g.AddNode()
	if n0 != 0 || n1 != 1 {
		t.Fatalf("expected sequential indices, got %d, %d", n0, n1)
	}
	if g.Target(n0, 0) != UndefinedNode {
		t.Error("new node should have undefined targets")
	}
	g.SetTarget(n0, 0, n1)
	if g.Target(n0, 0) != n1 {
		t.Errorf("Target = %d, want %d", g.Target(n0, 0), n1)
	}
	g.RemoveTarget(n0, 0)
	if g.Target(n0, 0) != UndefinedNode {
		t.Error("RemoveTarget should undefine the edge")
	}
}

func TestWordGraphFollowPath(t *testing.T) {
	g := NewWordGraph(2)
	a, b, c := g.AddNode(), g.AddNode(), g.AddNode()
	g.SetTarget(a, 0, b)
	g.SetTarget(b, 1, c)
	n, ok := g.FollowPath(a, alphabet.Word{0, 1})
	if !ok || n != c {
		t.Errorf("FollowPath = (%d, %v), want (%d, true)", n, ok, c)
	}
	_, ok = g.FollowPath(a, alphabet.Word{1})
	if ok {
		t.Error("expected FollowPath to fail on undefined edge")
	}
}

func TestWordGraphIsCompleteAndCompatible(t *testing.T) {
	g := NewWordGraph(1)
	a, b, c := g.AddNode(), g.AddNode(), g.AddNode()
	if g.IsComplete([]uint32{a, b}) {
		t.Error("expected incomplete graph before edges are set")
	}
	g.SetTarget(a, 0, b)
	g.SetTarget(b, 0, c)
	g.SetTarget(c, 0, c)
	if !g.IsComplete([]uint32{a, b, c}) {
		t.Error("expected complete graph after all edges set")
	}
	rules := []Rule{{Left: alphabet.Word{0}, Right: alphabet.Word{0, 0}}}
	// From c: "0" -> c, "00" -> c: compatible (both loop).
	if !g.IsCompatible([]uint32{c}, rules) {
		t.Error("c should be compatible: both sides loop at c")
	}
	// From a: "0" -> b, "00" -> c: incompatible, b != c.
	if g.IsCompatible([]uint32{a}, rules) {
		t.Error("a should be incompatible: 0 reaches b, 00 reaches c")
	}
}

func TestWordGraphReachableAndAncestors(t *testing.T) {
	g := NewWordGraph(1)
	a, b, c := g.AddNode(), g.AddNode(), g.AddNode()
	g.SetTarget(a, 0, b)
	g.SetTarget(b, 0, c)
	reach := g.NodesReachableFrom(a)
	if len(reach) != 3 {
		t.Errorf("expected 3 reachable nodes from a, got %d", len(reach))
	}
	anc := g.AncestorsOf(c)
	if len(anc) != 2 {
		t.Errorf("expected 2 ancestors of c, got %d", len(anc))
	}
}

func TestWordGraphShrinkToFit(t *testing.T) {
	g := NewWordGraph(1)
	a, b, c := g.AddNode(), g.AddNode(), g.AddNode()
	g.SetTarget(a, 0, c)
	g.FreeNode(b)
	remap := g.ShrinkToFit()
	if remap[b] != UndefinedNode {
		t.Error("freed node should map to UndefinedNode")
	}
	newA, newC := remap[a], remap[c]
	if g.Target(newA, 0) != newC {
		t.Errorf("edge not preserved after compaction: got %d, want %d", g.Target(newA, 0), newC)
	}
	if g.NumNodes() != 2 {
		t.Errorf("expected 2 nodes after compaction, got %d", g.NumNodes())
	}
}
