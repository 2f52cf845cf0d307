package semigroups

import "github.com/gitrdm/gosemigroups/pkg/alphabet"

// UndefinedNode is the sentinel "no target" value for a word graph edge.
const UndefinedNode = ^uint32(0)

// WordGraph is a mutable directed multigraph with a fixed out-degree
// (the alphabet size) per node, stored as a flat, append-only table —
// grounded on the teacher's FDStore trail/snapshot discipline
// (pkg/minikanren/fd.go), generalized here from domain slots to graph
// edges: edge updates never reallocate existing node indices, and growth
// only ever appends.
//
// Nodes are never physically removed; a coincidence marks a node free and
// it goes on freeList for reuse by ShrinkToFit, never by AddNodes (so that
// "append is O(1) amortised" holds unconditionally).
type WordGraph struct {
	degree   int
	targets  []uint32 // flat node*degree + letter -> target-or-UndefinedNode
	active   []bool
	freeList []uint32
}

// NewWordGraph creates a word graph with the given out-degree and no nodes.
func NewWordGraph(degree int) *WordGraph {
	return &WordGraph{degree: degree}
}

// Degree returns the fixed out-degree (alphabet size).
func (g *WordGraph) Degree() int { return g.degree }

// NumNodes returns the number of nodes ever allocated (active or free).
func (g *WordGraph) NumNodes() int { return len(g.active) }

// AddNode appends one fresh active node and returns its index.
func (g *WordGraph) AddNode() uint32 {
	n := uint32(len(g.active))
	g.active = append(g.active, true)
	row := make([]uint32, g.degree)
	for i := range row {
		row[i] = UndefinedNode
	}
	g.targets = append(g.targets, row...)
	return n
}

// AddNodes appends k fresh active nodes and returns the index of the first.
func (g *WordGraph) AddNodes(k int) uint32 {
	first := uint32(len(g.active))
	for i := 0; i < k; i++ {
		g.AddNode()
	}
	return first
}

// IsActive reports whether node n is currently active.
func (g *WordGraph) IsActive(n uint32) bool {
	return int(n) < len(g.active) && g.active[n]
}

// Target returns the node that letter a leads to from node src, or
// UndefinedNode.
func (g *WordGraph) Target(src uint32, a alphabet.Letter) uint32 {
	return g.targets[int(src)*g.degree+int(a)]
}

// SetTarget defines the out-edge (src, a) -> dst.
func (g *WordGraph) SetTarget(src uint32, a alphabet.Letter, dst uint32) {
	g.targets[int(src)*g.degree+int(a)] = dst
}

// RemoveTarget undefines the out-edge (src, a).
func (g *WordGraph) RemoveTarget(src uint32, a alphabet.Letter) {
	g.targets[int(src)*g.degree+int(a)] = UndefinedNode
}

// FreeNode marks n free, clearing its out-edges; n's index is retained (not
// reallocated) until a future ShrinkToFit compaction.
func (g *WordGraph) FreeNode(n uint32) {
	g.active[n] = false
	for a := 0; a < g.degree; a++ {
		g.targets[int(n)*g.degree+a] = UndefinedNode
	}
	g.freeList = append(g.freeList, n)
}

// FollowPath walks word w from src, returning the node reached and true, or
// (UndefinedNode, false) as soon as an edge is undefined.
func (g *WordGraph) FollowPath(src uint32, w alphabet.Word) (uint32, bool) {
	n := src
	for _, a := range w {
		t := g.Target(n, a)
		if t == UndefinedNode {
			return UndefinedNode, false
		}
		n = t
	}
	return n, true
}

// FollowPathPartial is FollowPath but also returns how many letters were
// successfully followed and the node where the trace stopped.
func (g *WordGraph) FollowPathPartial(src uint32, w alphabet.Word) (node uint32, followed int) {
	n := src
	for i, a := range w {
		t := g.Target(n, a)
		if t == UndefinedNode {
			return n, i
		}
		n = t
	}
	return n, len(w)
}

// IsComplete reports whether every node in nodes has every out-edge
// defined, via a straightforward scan (spec.md describes this as BFS but
// completeness needs no traversal order: it is a property of each node in
// isolation).
func (g *WordGraph) IsComplete(nodes []uint32) bool {
	for _, n := range nodes {
		for a := 0; a < g.degree; a++ {
			if g.Target(n, alphabet.Letter(a)) == UndefinedNode {
				return false
			}
		}
	}
	return true
}

// IsCompatible reports whether, for every rule (u, v) in rules and every
// node n in nodes, following u and v from n lead to the same node,
// treating an undefined trace as "not equal".
func (g *WordGraph) IsCompatible(nodes []uint32, rules []Rule) bool {
	for _, n := range nodes {
		for _, r := range rules {
			tu, ok1 := g.FollowPath(n, r.Left)
			tv, ok2 := g.FollowPath(n, r.Right)
			if !ok1 || !ok2 || tu != tv {
				return false
			}
		}
	}
	return true
}

// NodesReachableFrom returns the set of nodes reachable from src by
// breadth-first traversal of defined edges, src included.
func (g *WordGraph) NodesReachableFrom(src uint32) []uint32 {
	seen := map[uint32]bool{src: true}
	queue := []uint32{src}
	order := []uint32{src}
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		for a := 0; a < g.degree; a++ {
			t := g.Target(n, alphabet.Letter(a))
			if t != UndefinedNode && !seen[t] {
				seen[t] = true
				queue = append(queue, t)
				order = append(order, t)
			}
		}
	}
	return order
}

// AncestorsOf computes the in-edge set of dst by reverse breadth-first
// traversal, building the per-node in-edge list lazily as spec.md's Design
// Notes (§9) prescribe ("never use owning back-references... computed on
// demand").
func (g *WordGraph) AncestorsOf(dst uint32) []uint32 {
	inEdges := g.buildInEdges()
	seen := map[uint32]bool{dst: true}
	queue := []uint32{dst}
	order := []uint32{}
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		for _, p := range inEdges[n] {
			if !seen[p] {
				seen[p] = true
				queue = append(queue, p)
				order = append(order, p)
			}
		}
	}
	return order
}

func (g *WordGraph) buildInEdges() map[uint32][]uint32 {
	in := make(map[uint32][]uint32)
	for n := 0; n < len(g.active); n++ {
		if !g.active[n] {
			continue
		}
		for a := 0; a < g.degree; a++ {
			t := g.Target(uint32(n), alphabet.Letter(a))
			if t != UndefinedNode {
				in[t] = append(in[t], uint32(n))
			}
		}
	}
	return in
}

// ShrinkToFit permutes nodes so the active set becomes the prefix
// 0..k-1, returning the permutation old-index -> new-index (UndefinedNode
// for nodes that were free). Callers holding node indices into g must
// remap them through this permutation; the graph itself is left fully
// compacted with no free list.
func (g *WordGraph) ShrinkToFit() []uint32 {
	remap := make([]uint32, len(g.active))
	next := uint32(0)
	for i, a := range g.active {
		if a {
			remap[i] = next
			next++
		} else {
			remap[i] = UndefinedNode
		}
	}
	newTargets := make([]uint32, int(next)*g.degree)
	newActive := make([]bool, next)
	for i, a := range g.active {
		if !a {
			continue
		}
		ni := remap[i]
		newActive[ni] = true
		for l := 0; l < g.degree; l++ {
			t := g.targets[i*g.degree+l]
			nt := UndefinedNode
			if t != UndefinedNode && g.active[t] {
				nt = remap[t]
			}
			newTargets[int(ni)*g.degree+l] = nt
		}
	}
	g.targets = newTargets
	g.active = newActive
	g.freeList = nil
	return remap
}
