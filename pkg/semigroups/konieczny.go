package semigroups

import (
	"context"
	"fmt"

	"github.com/gitrdm/gosemigroups/pkg/kernel"
)

// Konieczny is the Green's-relations decomposition engine of spec.md §4.6:
// given a finite monoid's generating set, it classifies every enumerated
// element into D/L/R/H-classes using two one-sided action orbits, marks
// idempotents, and determines (via idempotent witness) which D-classes are
// regular.
//
// Grounded on Orbit (orbit.go) for the two action orbits spec.md §4.6
// prescribes building first ("the orbit of the identity's L-point under
// the left action... is the set of L-classes"), and on FroidurePin
// (froidurepin.go) to supply the enumerated element set every L/R-point
// is read off of — Konieczny does not re-derive enumeration, it classifies
// an enumeration FroidurePin already produced.
type Konieczny struct {
	generators []kernel.Element
	cfg        KoniecznyConfig

	fp      *FroidurePin
	lOrbit  *Orbit
	rOrbit  *Orbit
	lClass  []int
	rClass  []int
	dClass  []int
	hClass  []int
	idempt  []bool
	regular []bool // per D-class

	numD, numH int
	done       bool
}

// KoniecznyConfig is the configuration surface for the Konieczny engine:
// just the Froidure-Pin settings used for the internal enumeration pass,
// since spec.md §4.6 names no Konieczny-specific tunables beyond that.
type KoniecznyConfig struct {
	FroidurePin FroidurePinConfig
}

// NewKoniecznyConfig returns sane defaults.
func NewKoniecznyConfig() KoniecznyConfig {
	return KoniecznyConfig{FroidurePin: NewFroidurePinConfig()}
}

// NewKonieczny builds an (unrun) engine over generators, which must be a
// monoid's generating set: generators[0] must implement kernel.Monoid (to
// supply the identity that seeds both action orbits) and
// kernel.LeftPointer/kernel.RightPointer (to supply L-points/R-points for
// every generator and every element FroidurePin later enumerates).
func NewKonieczny(generators []kernel.Element, cfg KoniecznyConfig) *Konieczny {
	return &Konieczny{generators: generators, cfg: cfg}
}

// Run enumerates every element (via an internal FroidurePin pass), builds
// the L-point and R-point orbits, and classifies every element into
// D/L/R/H-classes. Calling Run again on an already-completed engine is a
// no-op.
func (k *Konieczny) Run(ctx context.Context) error {
	if k.done {
		return nil
	}
	if len(k.generators) == 0 {
		return fmt.Errorf("%w: konieczny requires at least one generator", ErrInvalidWord)
	}
	one, ok := k.generators[0].(kernel.Monoid)
	if !ok {
		return fmt.Errorf("%w: konieczny requires a kernel.Monoid element type", ErrInvalidWord)
	}
	id := one.One(k.generators[0].Degree())
	idL, ok := id.(kernel.LeftPointer)
	if !ok {
		return fmt.Errorf("%w: konieczny requires a kernel.LeftPointer element type", ErrInvalidWord)
	}
	idR, ok := id.(kernel.RightPointer)
	if !ok {
		return fmt.Errorf("%w: konieczny requires a kernel.RightPointer element type", ErrInvalidWord)
	}

	fp := NewFroidurePin(k.generators, k.cfg.FroidurePin)
	if err := fp.Run(ctx); err != nil {
		return err
	}
	k.fp = fp

	k.lOrbit = NewOrbit(idL.LeftPoint(), k.generators, false)
	k.rOrbit = NewOrbit(idR.RightPoint(), k.generators, true)

	n, err := fp.NumberOfElements()
	if err != nil {
		return err
	}
	k.lClass = make([]int, n)
	k.rClass = make([]int, n)
	k.idempt = make([]bool, n)

	uf := newUnionFind(k.lOrbit.Size() + k.rOrbit.Size())
	hKey := make(map[[2]int]int)
	k.hClass = make([]int, n)

	for i := 0; i < n; i++ {
		e := fp.ElementAt(i)
		lp, ok := e.(kernel.LeftPointer)
		if !ok {
			return fmt.Errorf("%w: element %d has no LeftPoint", ErrInvalidWord, i)
		}
		rp, ok := e.(kernel.RightPointer)
		if !ok {
			return fmt.Errorf("%w: element %d has no RightPoint", ErrInvalidWord, i)
		}
		li, found := k.lOrbit.IndexOf(lp.LeftPoint())
		if !found {
			return fmt.Errorf("%w: element %d's L-point not in the generating closure's orbit", ErrInvalidWord, i)
		}
		ri, found := k.rOrbit.IndexOf(rp.RightPoint())
		if !found {
			return fmt.Errorf("%w: element %d's R-point not in the generating closure's orbit", ErrInvalidWord, i)
		}
		k.lClass[i] = li
		k.rClass[i] = ri
		uf.union(li, k.lOrbit.Size()+ri)

		key := [2]int{li, ri}
		if _, seen := hKey[key]; !seen {
			hKey[key] = len(hKey)
		}
		k.idempt[i] = e.Compose(e).Equals(e)
	}

	dIndex := make(map[int]int)
	k.dClass = make([]int, n)
	for i := 0; i < n; i++ {
		root := uf.find(k.lClass[i])
		d, seen := dIndex[root]
		if !seen {
			d = len(dIndex)
			dIndex[root] = d
		}
		k.dClass[i] = d
	}
	k.numD = len(dIndex)

	for i := 0; i < n; i++ {
		k.hClass[i] = hKey[[2]int{k.lClass[i], k.rClass[i]}]
	}
	k.numH = len(hKey)

	k.regular = make([]bool, k.numD)
	for i := 0; i < n; i++ {
		if k.idempt[i] {
			k.regular[k.dClass[i]] = true
		}
	}

	k.done = true
	return nil
}

// HumanReadable renders spec.md §7's unified ".to_human_readable_repr()"
// summary string for this engine.
func (k *Konieczny) HumanReadable() string {
	if !k.done {
		return fmt.Sprintf("Konieczny over %d generators, not yet run", len(k.generators))
	}
	return fmt.Sprintf("Konieczny over %d generators with %d elements, %d D-classes, %d H-classes",
		len(k.generators), len(k.lClass), k.numD, k.numH)
}

// NumberOfElements returns the enumerated element count, requiring Run to
// have completed.
func (k *Konieczny) NumberOfElements() (int, error) {
	if !k.done {
		return 0, ErrEngineNotReady
	}
	return len(k.lClass), nil
}

// ElementAt returns the element at enumeration index i.
func (k *Konieczny) ElementAt(i int) kernel.Element { return k.fp.ElementAt(i) }

// IndexOf returns e's enumeration index, if e was enumerated.
func (k *Konieczny) IndexOf(e kernel.Element) (int, bool) { return k.fp.IndexOf(e) }

// NumberOfDClasses returns the D-class count, requiring Run to have
// completed.
func (k *Konieczny) NumberOfDClasses() (int, error) {
	if !k.done {
		return 0, ErrEngineNotReady
	}
	return k.numD, nil
}

// NumberOfHClasses returns the H-class count, requiring Run to have
// completed.
func (k *Konieczny) NumberOfHClasses() (int, error) {
	if !k.done {
		return 0, ErrEngineNotReady
	}
	return k.numH, nil
}

// DClassOf, LClassOf, RClassOf, HClassOf return element i's class indices.
func (k *Konieczny) DClassOf(i int) int { return k.dClass[i] }
func (k *Konieczny) LClassOf(i int) int { return k.lClass[i] }
func (k *Konieczny) RClassOf(i int) int { return k.rClass[i] }
func (k *Konieczny) HClassOf(i int) int { return k.hClass[i] }

// IsIdempotent reports whether element i squares to itself.
func (k *Konieczny) IsIdempotent(i int) bool { return k.idempt[i] }

// IsRegular reports whether element i's D-class contains an idempotent
// witness (spec.md §4.6's regularity requirement: a D-class without one is
// reported non-regular and excluded from RegularDClasses).
func (k *Konieczny) IsRegular(i int) bool { return k.regular[k.dClass[i]] }

// RegularDClasses returns the indices of every D-class containing at
// least one idempotent.
func (k *Konieczny) RegularDClasses() []int {
	var out []int
	for d, ok := range k.regular {
		if ok {
			out = append(out, d)
		}
	}
	return out
}

// Idempotents returns the element indices of every idempotent found.
func (k *Konieczny) Idempotents() []int {
	var out []int
	for i, ok := range k.idempt {
		if ok {
			out = append(out, i)
		}
	}
	return out
}

// hClassMembers returns the element indices sharing H-class hClass.
func (k *Konieczny) hClassMembers(hClass int) []int {
	var out []int
	for i, h := range k.hClass {
		if h == hClass {
			out = append(out, i)
		}
	}
	return out
}

// SchutzenbergerGroupSize returns the order of H-class hClass's
// Schützenberger group, computed lazily on demand per spec.md §4.6 ("for
// each D-class, compute its group H-class lazily on demand"). The order
// equals the H-class's own cardinality, the classical Green's-relations
// fact that every H-class within one D-class is equinumerous with that
// D-class's Schützenberger group.
func (k *Konieczny) SchutzenbergerGroupSize(hClass int) int {
	return len(k.hClassMembers(hClass))
}

// MaximalSubgroup returns H-class hClass's element indices together with
// the index of its idempotent identity, if hClass contains one (a "group
// H-class": the classical theorem that an H-class containing an
// idempotent e is a group under the semigroup's own product, with
// identity e). ok is false for a non-group H-class.
func (k *Konieczny) MaximalSubgroup(hClass int) (members []int, identity int, ok bool) {
	members = k.hClassMembers(hClass)
	for _, i := range members {
		if k.idempt[i] {
			return members, i, true
		}
	}
	return nil, 0, false
}

// unionFind is a minimal union-find over a fixed-size index space, used to
// compute D-classes as connected components of the L-class/R-class
// incidence graph (spec.md §4.6 step 3).
type unionFind struct {
	parent []int
}

func newUnionFind(n int) *unionFind {
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	return &unionFind{parent: p}
}

func (u *unionFind) find(x int) int {
	for u.parent[x] != x {
		u.parent[x] = u.parent[u.parent[x]]
		x = u.parent[x]
	}
	return x
}

func (u *unionFind) union(a, b int) {
	ra, rb := u.find(a), u.find(b)
	if ra != rb {
		u.parent[ra] = rb
	}
}
