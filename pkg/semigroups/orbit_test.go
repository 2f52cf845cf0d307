package semigroups

import (
	"testing"

	"github.com/gitrdm/gosemigroups/pkg/kernel"
)

func TestOrbitOfImageSetsUnderFullTransformationDegree3(t *testing.T) {
	// Generators: a 3-cycle and a non-injective map.
	gens := []kernel.Element{
		kernel.MustTransformation(1, 2, 0),
		kernel.MustTransformation(1, 0, 0),
	}
	seed := kernel.Identity(3).ImageSet()
	o := NewOrbit(seed, gens, true)
	// Every nonempty subset of {0,1,2} is reachable as some image set; there
	// are 7 nonempty subsets.
	if o.Size() == 0 || o.Size() > 7 {
		t.Fatalf("unexpected orbit size %d", o.Size())
	}
	if _, ok := o.IndexOf(seed); !ok {
		t.Error("seed must be present in its own orbit")
	}
}

func TestOrbitGraphHasOneNodePerPoint(t *testing.T) {
	gens := []kernel.Element{kernel.MustTransformation(1, 0)}
	seed := kernel.Identity(2).ImageSet()
	o := NewOrbit(seed, gens, true)
	if o.Graph().NumNodes() != o.Size() {
		t.Errorf("graph has %d nodes, orbit has %d points", o.Graph().NumNodes(), o.Size())
	}
}
