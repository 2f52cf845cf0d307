package semigroups

import (
	"github.com/gitrdm/gosemigroups/pkg/alphabet"
	"github.com/gitrdm/gosemigroups/pkg/kernel"
)

// Orbit computes the orbit of a seed ActionPoint under the right (or left)
// action of a finite generator set, producing a bijection point<->index and
// a word graph spanning tree (out-edge (i, a) = orbit index reached by
// acting point i with generator a). This is the shared primitive Konieczny
// uses twice — once for L-classes under the left action, once for
// R-classes under the right action.
//
// Grounded on the teacher's orbit/closure discipline in
// unified_store_adapter.go, generalized here from unifying logic terms to
// hashing kernel.ActionPoint values.
type Orbit struct {
	points []kernel.ActionPoint
	index  map[uint64][]int // hash bucket -> point indices with that hash
	graph  *WordGraph        // spanning tree over the same index space
	right  bool              // true: right action; false: left action
}

// NewOrbit computes the orbit of seed under generators, using the right
// action (kernel.RightActor) if right is true, else the left action
// (kernel.LeftActor). A generator not implementing the required action
// interface panics: the caller chose the wrong action kind for this
// element type.
func NewOrbit(seed kernel.ActionPoint, generators []kernel.Element, right bool) *Orbit {
	o := &Orbit{index: make(map[uint64][]int), graph: NewWordGraph(len(generators)), right: right}
	o.insert(seed)
	for pi := 0; pi < len(o.points); pi++ {
		p := o.points[pi]
		for gi, g := range generators {
			var q kernel.ActionPoint
			if right {
				q = g.(kernel.RightActor).RightAction(p)
			} else {
				q = g.(kernel.LeftActor).LeftAction(p)
			}
			qi, existed := o.find(q)
			if !existed {
				qi = o.insert(q)
			}
			o.graph.SetTarget(uint32(pi), alphabet.Letter(gi), uint32(qi))
		}
	}
	return o
}

// Size returns the number of points in the orbit.
func (o *Orbit) Size() int { return len(o.points) }

// PointAt returns the point discovered at orbit index i.
func (o *Orbit) PointAt(i int) kernel.ActionPoint { return o.points[i] }

// IndexOf returns the orbit index of p and true, or (-1, false) if p was
// never discovered.
func (o *Orbit) IndexOf(p kernel.ActionPoint) (int, bool) {
	return o.find(p)
}

// insert appends a brand-new point (the caller must already know it is
// absent) and adds one node to the spanning-tree graph, keeping the two
// index spaces in lockstep.
func (o *Orbit) insert(p kernel.ActionPoint) int {
	i := len(o.points)
	o.points = append(o.points, p)
	o.index[p.Hash()] = append(o.index[p.Hash()], i)
	o.graph.AddNode()
	return i
}

// find returns (index, true) if p is already present, else (-1, false).
func (o *Orbit) find(p kernel.ActionPoint) (int, bool) {
	for _, i := range o.index[p.Hash()] {
		if o.points[i].Equals(p) {
			return i, true
		}
	}
	return -1, false
}

// Graph returns the orbit's spanning-tree word graph.
func (o *Orbit) Graph() *WordGraph { return o.graph }
