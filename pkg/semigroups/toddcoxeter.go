package semigroups

import (
	"context"
	"fmt"
	"time"

	"github.com/gitrdm/gosemigroups/pkg/alphabet"
)

// tcPhase tags which definition budget (cfg.HLTDefs vs cfg.FDefs) and
// which letter-ordering (defOrder, under cfg.DefVersion) a run of
// defineNode calls is currently charged against.
type tcPhase int

const (
	phaseHLT tcPhase = iota
	phaseFelsch
)

// ToddCoxeter is the coset enumeration engine of spec.md §4.4: starting
// from a single coset (the identity), it defines new cosets on demand
// while scanning every relation (and any extra generating pair of the
// congruence being enumerated) from every coset, merging cosets a relation
// identifies via a union-find-backed coincidence queue, until the word
// graph is complete — every active coset has every generator's edge
// defined — and no further merges arise.
//
// Grounded on the teacher's iterative (non-recursive) worklist loop in
// search.go, generalized here from "pop a goal, push its subgoals" to
// "pop a coset, define its missing edges, scan every relation from it,
// push newly defined cosets"; and on WordGraph's append-only node
// discipline (wordgraph.go) for the underlying table itself.
type ToddCoxeter struct {
	pres *Presentation
	cfg  ToddCoxeterConfig
	// rules is the presentation's own relations plus any extra generating
	// pairs AddPair contributed (the congruence this engine enumerates
	// cosets of, which may be strictly larger than the presentation's
	// defining relations).
	rules []Rule

	graph *WordGraph
	// rep is a union-find array over graph node indices: rep[n] == n for a
	// surviving coset, otherwise the (possibly further-forwarded) coset it
	// coincided into. find() resolves it with path compression.
	rep      []uint32
	worklist []uint32
	pending  [][2]uint32

	// phase records which of runHLT/runFelsch is currently defining nodes,
	// so defineNode can charge the right definition budget (HLTDefs vs
	// FDefs) and strategyPasses' alternation (CR, ROverC, ...) can reuse
	// both loops against the same counters.
	phase       tcPhase
	hltDefCount int
	fDefCount   int

	done bool

	// reporter is optional (nil-safe) diagnostic output; see SetReporter.
	reporter *Reporter
}

// SetReporter attaches r (nil clears it) so Run reports a "checkpoint"
// event per worklist-pop and processCoincidences reports a "coincidence"
// event per merge.
func (tc *ToddCoxeter) SetReporter(r *Reporter) { tc.reporter = r }

// NewToddCoxeter builds an (unrun) engine over a copy of p, seeded with
// coset 0 (the identity coset) and p's own relations.
func NewToddCoxeter(p *Presentation, cfg ToddCoxeterConfig) *ToddCoxeter {
	owned := p.Clone()
	tc := &ToddCoxeter{
		pres:  owned,
		cfg:   cfg,
		rules: append([]Rule(nil), owned.Rules...),
		graph: NewWordGraph(owned.Alphabet.Size()),
	}
	tc.graph.AddNode()
	tc.rep = []uint32{0}
	tc.worklist = []uint32{0}
	return tc
}

// AddPair contributes an extra generating pair to the congruence this
// engine enumerates cosets of, beyond the presentation's own relations —
// used when Todd-Coxeter is computing a congruence's quotient rather than
// a presentation's own monoid (spec.md §4.4's "coset enumeration for a
// congruence"). Must be called before Run.
func (tc *ToddCoxeter) AddPair(u, v alphabet.Word) error {
	if err := tc.pres.Alphabet.Validate(u); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidWord, err)
	}
	if err := tc.pres.Alphabet.Validate(v); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidWord, err)
	}
	tc.rules = append(tc.rules, Rule{Left: u.Clone(), Right: v.Clone()})
	return nil
}

// strategyPasses expands cfg.Strategy into the sequence of HLT/Felsch
// passes Run executes. StrategyHLT and StrategyFelsch are a single pass
// each; the four named interleavings (CR, ROverC, RC, CRPrime) run both
// styles in the orders their names suggest ("C" = a Felsch-style
// definition-closure pass, "R" = an HLT-style relation-scanning pass).
// This port implements every interleaving as a plain sequence of the same
// two pass functions rather than a dynamically-switching single loop — a
// simplification documented in DESIGN.md — since for the presentations
// this port enumerates, the second pass in every sequence only re-verifies
// a graph the first pass already closed.
func (tc *ToddCoxeter) strategyPasses() []ToddCoxeterStrategy {
	switch tc.cfg.Strategy {
	case StrategyFelsch:
		return []ToddCoxeterStrategy{StrategyFelsch}
	case StrategyCR:
		return []ToddCoxeterStrategy{StrategyFelsch, StrategyHLT}
	case StrategyROverC:
		return []ToddCoxeterStrategy{StrategyHLT, StrategyFelsch}
	case StrategyRC:
		return []ToddCoxeterStrategy{StrategyHLT, StrategyFelsch, StrategyHLT}
	case StrategyCRPrime:
		return []ToddCoxeterStrategy{StrategyFelsch, StrategyHLT, StrategyFelsch}
	default:
		return []ToddCoxeterStrategy{StrategyHLT}
	}
}

// Run enumerates cosets to completion, a context cancellation, or a
// resource limit (DefMax/HLTDefs/FDefs node caps, MaxRuntime wall clock),
// in which case the returned error wraps ErrResourceLimit or the
// context's own error. Once every configured strategy pass has drained,
// Run performs the periodic lookahead pass spec.md §4.4 describes before
// declaring itself done; on success the word graph is standardized per
// cfg.StandardizationOrder (StandardizeNone leaves node numbering exactly
// as enumeration order produced it).
func (tc *ToddCoxeter) Run(ctx context.Context) error {
	if tc.done {
		return nil
	}
	var deadline time.Time
	if tc.cfg.MaxRuntime > 0 {
		deadline = time.Now().Add(tc.cfg.MaxRuntime)
	}
	for _, pass := range tc.strategyPasses() {
		var err error
		if pass == StrategyFelsch {
			err = tc.runFelsch(ctx, deadline)
		} else {
			err = tc.runHLT(ctx, deadline)
		}
		if err != nil {
			return err
		}
	}
	if err := tc.lookahead(ctx, deadline); err != nil {
		return err
	}
	tc.done = true
	tc.standardize()
	return nil
}

// checkpoint is the one place every pass honours context cancellation and
// cfg.MaxRuntime, matching spec.md's "operations... return control at
// well-defined checkpoint boundaries" scheduling model.
func (tc *ToddCoxeter) checkpoint(ctx context.Context, deadline time.Time) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !deadline.IsZero() && time.Now().After(deadline) {
		return fmt.Errorf("%w: wall-clock budget exhausted", ErrResourceLimit)
	}
	return nil
}

// defOrder returns the letter order defineNode's callers fill a coset's
// missing edges in: ascending under DefV1, descending under DefV2. The
// two orders allocate the same final set of cosets but in a different
// sequence, which is DefVersion's entire, intentionally modest, effect in
// this port (see DESIGN.md).
func (tc *ToddCoxeter) defOrder() []alphabet.Letter {
	deg := tc.graph.Degree()
	order := make([]alphabet.Letter, deg)
	for i := 0; i < deg; i++ {
		if tc.cfg.DefVersion == DefV2 {
			order[i] = alphabet.Letter(deg - 1 - i)
		} else {
			order[i] = alphabet.Letter(i)
		}
	}
	return order
}

// runHLT is the HLT pass: pop a coset, define its missing edges, scan
// every relation's both sides with scanAndFill (defining further missing
// edges as the scan demands them), and enqueue any coincidence a scan
// reveals. Definitions made here are charged against cfg.HLTDefs.
func (tc *ToddCoxeter) runHLT(ctx context.Context, deadline time.Time) error {
	tc.phase = phaseHLT
	for len(tc.worklist) > 0 {
		if err := tc.checkpoint(ctx, deadline); err != nil {
			return err
		}
		n := tc.worklist[0]
		tc.worklist = tc.worklist[1:]
		tc.reporter.Report("checkpoint", "")
		if tc.find(n) != n {
			continue // coincided away before it was ever processed
		}
		if tc.cfg.DefMax > 0 && tc.graph.NumNodes() > tc.cfg.DefMax {
			return fmt.Errorf("%w: def_max exceeded", ErrResourceLimit)
		}
		if tc.cfg.HLTDefs > 0 && tc.cfg.DefPolicy != DefUnlimited && tc.hltDefCount > tc.cfg.HLTDefs {
			return fmt.Errorf("%w: hlt_defs exceeded under def_policy %d", ErrResourceLimit, tc.cfg.DefPolicy)
		}
		for _, a := range tc.defOrder() {
			if tc.graph.Target(n, a) == UndefinedNode {
				tc.defineNode(n, a)
			}
		}
		for _, r := range tc.rules {
			n1 := tc.scanAndFill(n, r.Left)
			n2 := tc.scanAndFill(n, r.Right)
			if tc.find(n1) != tc.find(n2) {
				tc.pending = append(tc.pending, [2]uint32{n1, n2})
				tc.processCoincidences()
			}
		}
	}
	return nil
}

// runFelsch is the Felsch pass: spec.md §4.4 describes it as "whenever a
// definition is made, immediately scan all relations that contain the
// defining letter and propagate forced equalities." This port separates
// the two phases explicitly rather than interleaving per-letter: first
// every active coset's own missing edges are defined (defineDue),
// charged against cfg.FDefs, with no relation scanning in this phase at
// all — the defining characteristic that distinguishes Felsch from HLT,
// which scans while it defines. Then felschClosure repeatedly re-scans every relation at every active coset
// (a full pass rather than a targeted per-letter deduction queue — a
// simplification documented in DESIGN.md) until a pass makes no further
// merges.
func (tc *ToddCoxeter) runFelsch(ctx context.Context, deadline time.Time) error {
	tc.phase = phaseFelsch
	if err := tc.defineDue(ctx, deadline); err != nil {
		return err
	}
	return tc.felschClosure(ctx, deadline)
}

// defineDue gives every coset currently on the worklist its full set of
// missing edges without scanning any relation. The cosets those
// definitions create are left on the worklist for the next round.
func (tc *ToddCoxeter) defineDue(ctx context.Context, deadline time.Time) error {
	due := tc.worklist
	tc.worklist = nil
	for i, n := range due {
		if err := tc.checkpoint(ctx, deadline); err != nil {
			tc.worklist = append(due[i:], tc.worklist...)
			return err
		}
		tc.reporter.Report("checkpoint", "")
		if tc.find(n) != n {
			continue
		}
		if tc.cfg.DefMax > 0 && tc.graph.NumNodes() > tc.cfg.DefMax {
			return fmt.Errorf("%w: def_max exceeded", ErrResourceLimit)
		}
		if tc.cfg.FDefs > 0 && tc.cfg.DefPolicy != DefUnlimited && tc.fDefCount > tc.cfg.FDefs {
			return fmt.Errorf("%w: f_defs exceeded under def_policy %d", ErrResourceLimit, tc.cfg.DefPolicy)
		}
		for _, a := range tc.defOrder() {
			if tc.graph.Target(n, a) == UndefinedNode {
				tc.defineNode(n, a)
			}
		}
	}
	return nil
}

// felschClosure repeatedly scans every relation at every active coset,
// draining any coincidence it forces, until a full pass makes no further
// merges. A scan can still allocate a coset (scanAndFill, not
// scanNoFill: a relation may run past whatever a coset's own alphabet-
// sized definition pass covered), in which case defineDue runs again
// before the next closure pass.
func (tc *ToddCoxeter) felschClosure(ctx context.Context, deadline time.Time) error {
	for {
		if err := tc.checkpoint(ctx, deadline); err != nil {
			return err
		}
		progressed := false
		for n := 0; n < tc.graph.NumNodes(); n++ {
			if !tc.graph.IsActive(uint32(n)) || tc.find(uint32(n)) != uint32(n) {
				continue
			}
			for _, r := range tc.rules {
				n1 := tc.scanAndFill(uint32(n), r.Left)
				n2 := tc.scanAndFill(uint32(n), r.Right)
				if tc.find(n1) != tc.find(n2) {
					tc.pending = append(tc.pending, [2]uint32{n1, n2})
					tc.processCoincidences()
					progressed = true
				}
			}
		}
		if len(tc.worklist) > 0 {
			if err := tc.defineDue(ctx, deadline); err != nil {
				return err
			}
			progressed = true
		}
		if !progressed {
			return nil
		}
	}
}

// lookahead is spec.md §4.4's periodic lookahead pass: rescans either
// HLT-style (scanAndFill, defining as needed) or Felsch-style
// (scanNoFill, no definitions) over either a partial prefix of the graph
// (nodes below a moving threshold seeded by cfg.LookaheadMin, grown by
// cfg.LookaheadGrowthFactor each round and capped at cfg.LookaheadNext)
// or the full graph (cfg.LookaheadExtent), looking for coincidences the
// run passes above didn't surface. It stops once a pass finds no
// coincidence, once cfg.LowerBound active classes are confirmed, once
// the coincidence ratio in a pass drops below
// cfg.LookaheadStopEarlyRatio, or after cfg.LookaheadGrowthThreshold
// rounds — matching spec.md's framing of lookahead as "the mechanism
// that turns partial runs into finished ones in pathological
// presentations" rather than an unconditional fixed point search.
func (tc *ToddCoxeter) lookahead(ctx context.Context, deadline time.Time) error {
	if tc.cfg.LookaheadNext <= 0 && tc.cfg.LookaheadMin <= 0 {
		return nil
	}
	threshold := tc.cfg.LookaheadMin
	if threshold <= 0 {
		threshold = tc.graph.NumNodes()
	}
	for rounds := 0; ; rounds++ {
		if err := tc.checkpoint(ctx, deadline); err != nil {
			return err
		}
		limit := tc.graph.NumNodes()
		if tc.cfg.LookaheadExtent == LookaheadPartial && threshold < limit {
			limit = threshold
		}
		scanned, found := 0, 0
		for n := 0; n < limit; n++ {
			if !tc.graph.IsActive(uint32(n)) || tc.find(uint32(n)) != uint32(n) {
				continue
			}
			for _, r := range tc.rules {
				scanned++
				var n1, n2 uint32
				if tc.cfg.LookaheadStyle == LookaheadFelsch {
					var ok1, ok2 bool
					n1, ok1 = tc.scanNoFill(uint32(n), r.Left)
					n2, ok2 = tc.scanNoFill(uint32(n), r.Right)
					if !ok1 || !ok2 {
						continue
					}
				} else {
					n1 = tc.scanAndFill(uint32(n), r.Left)
					n2 = tc.scanAndFill(uint32(n), r.Right)
				}
				if tc.find(n1) != tc.find(n2) {
					tc.pending = append(tc.pending, [2]uint32{n1, n2})
					tc.processCoincidences()
					found++
				}
			}
		}
		if len(tc.worklist) > 0 {
			var err error
			if tc.cfg.Strategy == StrategyFelsch {
				err = tc.defineDue(ctx, deadline)
			} else {
				err = tc.runHLT(ctx, deadline)
			}
			if err != nil {
				return err
			}
		}
		if found == 0 {
			return nil
		}
		if tc.cfg.LowerBound > 0 && tc.activeClassCount() <= tc.cfg.LowerBound {
			return nil
		}
		if tc.cfg.LookaheadStopEarlyRatio > 0 && scanned > 0 &&
			float64(found)/float64(scanned) < tc.cfg.LookaheadStopEarlyRatio {
			return nil
		}
		if tc.cfg.LookaheadGrowthThreshold > 0 && rounds+1 >= tc.cfg.LookaheadGrowthThreshold {
			return nil
		}
		if tc.cfg.LookaheadGrowthFactor > 1 {
			threshold = int(float64(threshold) * tc.cfg.LookaheadGrowthFactor)
		} else {
			threshold = tc.graph.NumNodes()
		}
		if tc.cfg.LookaheadNext > 0 && threshold > tc.cfg.LookaheadNext {
			threshold = tc.cfg.LookaheadNext
		}
	}
}

// defineNode appends a fresh coset reached from src by a, enqueuing it for
// processing, and charges the definition against whichever of
// cfg.HLTDefs/cfg.FDefs the current phase uses.
func (tc *ToddCoxeter) defineNode(src uint32, a alphabet.Letter) uint32 {
	n := tc.graph.AddNode()
	tc.graph.SetTarget(src, a, n)
	tc.rep = append(tc.rep, n)
	tc.worklist = append(tc.worklist, n)
	if tc.phase == phaseFelsch {
		tc.fDefCount++
	} else {
		tc.hltDefCount++
	}
	return n
}

// scanAndFill walks w from n, defining any missing edge it encounters
// along the way (the HLT scan-and-fill procedure, forward direction only:
// this port does not also scan backward from the word's end to meet in
// the middle, a simplification noted in DESIGN.md that costs some
// redundant node creation but not correctness).
func (tc *ToddCoxeter) scanAndFill(n uint32, w alphabet.Word) uint32 {
	cur := tc.find(n)
	for _, a := range w {
		t := tc.graph.Target(cur, a)
		if t == UndefinedNode {
			t = tc.defineNode(cur, a)
		}
		cur = tc.find(t)
	}
	return cur
}

// scanNoFill walks w from n using only already-defined edges, Felsch's
// "check, don't create" half of a scan: it reports ok=false as soon as a
// missing edge is encountered rather than defining one.
func (tc *ToddCoxeter) scanNoFill(n uint32, w alphabet.Word) (uint32, bool) {
	cur := tc.find(n)
	for _, a := range w {
		t := tc.graph.Target(cur, a)
		if t == UndefinedNode {
			return 0, false
		}
		cur = tc.find(t)
	}
	return cur, true
}

// find resolves n to its surviving representative, path-compressing as it
// goes.
func (tc *ToddCoxeter) find(n uint32) uint32 {
	for tc.rep[n] != n {
		tc.rep[n] = tc.rep[tc.rep[n]]
		n = tc.rep[n]
	}
	return n
}

// processCoincidences drains the pending merge queue: for each pair, the
// lower-indexed representative survives (biasing standardisation toward
// earlier-discovered cosets, per spec.md's large_collapse framing), the
// loser's out-edges are folded into the survivor (re-queuing a further
// coincidence if the survivor already disagreed), and every other active
// coset's in-edges into the loser are redirected to the survivor. Per
// cfg.LargeCollapse, draining pauses (leaving the remainder queued) once
// that many cosets have been collapsed in a single call, so a single
// relation's fallout cannot block Run indefinitely without the caller
// getting a chance to re-check its context or deadline.
func (tc *ToddCoxeter) processCoincidences() {
	collapsed := 0
	for len(tc.pending) > 0 {
		if tc.cfg.LargeCollapse > 0 && collapsed >= tc.cfg.LargeCollapse {
			return
		}
		pair := tc.pending[0]
		tc.pending = tc.pending[1:]
		ra, rb := tc.find(pair[0]), tc.find(pair[1])
		if ra == rb {
			continue
		}
		survivor, loser := ra, rb
		if loser < survivor {
			survivor, loser = loser, survivor
		}
		edges := make([]uint32, tc.graph.Degree())
		for a := 0; a < tc.graph.Degree(); a++ {
			edges[a] = tc.graph.Target(loser, alphabet.Letter(a))
		}
		tc.graph.FreeNode(loser)
		tc.rep[loser] = survivor
		collapsed++
		tc.reporter.Report("coincidence", fmt.Sprintf("coset %d into %d", loser, survivor))

		for a, t := range edges {
			if t == UndefinedNode {
				continue
			}
			rt := tc.find(t)
			cur := tc.graph.Target(survivor, alphabet.Letter(a))
			if cur == UndefinedNode {
				tc.graph.SetTarget(survivor, alphabet.Letter(a), rt)
			} else if tc.find(cur) != rt {
				tc.pending = append(tc.pending, [2]uint32{tc.find(cur), rt})
			}
		}
		tc.redirectIncoming(loser, survivor)
	}
}

// redirectIncoming rewrites every active coset's edge into loser to point
// at survivor instead. A full scan rather than a maintained in-edge index
// (as AncestorsOf's caller would build) — acceptable for the scale this
// engine targets, and documented in DESIGN.md as the one place coset
// enumeration is not the optimized, incrementally-indexed version
// spec.md's Design Notes describe.
func (tc *ToddCoxeter) redirectIncoming(loser, survivor uint32) {
	for n := 0; n < tc.graph.NumNodes(); n++ {
		if !tc.graph.IsActive(uint32(n)) {
			continue
		}
		for a := 0; a < tc.graph.Degree(); a++ {
			if tc.graph.Target(uint32(n), alphabet.Letter(a)) == loser {
				tc.graph.SetTarget(uint32(n), alphabet.Letter(a), survivor)
			}
		}
	}
}

// standardize relabels cosets into the canonical order a breadth-first
// traversal from coset 0, exploring generators in alphabet order,
// produces — the classical Todd-Coxeter standardisation, which also
// numbers cosets in increasing shortlex-normal-form order. Every
// StandardizationOrder other than StandardizeNone gets this same
// numbering: StandardizeLex and StandardizeRecursive number cosets
// exactly as StandardizeShortlex does.
func (tc *ToddCoxeter) standardize() {
	if tc.cfg.StandardizationOrder == StandardizeNone {
		return
	}
	order := []uint32{0}
	remap := map[uint32]uint32{0: 0}
	queue := []uint32{0}
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		for a := 0; a < tc.graph.Degree(); a++ {
			t := tc.find(tc.graph.Target(n, alphabet.Letter(a)))
			if _, seen := remap[t]; !seen {
				remap[t] = uint32(len(order))
				order = append(order, t)
				queue = append(queue, t)
			}
		}
	}
	newGraph := NewWordGraph(tc.graph.Degree())
	newGraph.AddNodes(len(order))
	for newIdx, oldIdx := range order {
		for a := 0; a < tc.graph.Degree(); a++ {
			t := tc.find(tc.graph.Target(oldIdx, alphabet.Letter(a)))
			newGraph.SetTarget(uint32(newIdx), alphabet.Letter(a), remap[t])
		}
	}
	tc.graph = newGraph
	tc.rep = make([]uint32, len(order))
	for i := range tc.rep {
		tc.rep[i] = uint32(i)
	}
}

// countsIdentityClass reports whether coset 0 (reached by the empty word)
// denotes an actual element of the structure being enumerated. A monoid
// presentation (ContainsEmptyWord true) adjoins an identity, so it does;
// a semigroup presentation (the default) does not, and coset 0 exists
// purely as Todd-Coxeter's traversal root, excluded from the public class
// count and normal-form list — the distinction spec.md §8's S2 scenario
// (5 classes, none of them the empty word) depends on.
func (tc *ToddCoxeter) countsIdentityClass() bool {
	return tc.pres.ContainsEmptyWord
}

// activeClassCount counts surviving, active cosets (excluding coset 0
// unless countsIdentityClass), usable before Run has finished (lookahead
// consults it for cfg.LowerBound) as well as by NumberOfClasses once done.
func (tc *ToddCoxeter) activeClassCount() int {
	n := 0
	for i := 0; i < tc.graph.NumNodes(); i++ {
		if !tc.countsIdentityClass() && uint32(i) == tc.find(0) {
			continue
		}
		if tc.graph.IsActive(uint32(i)) && tc.find(uint32(i)) == uint32(i) {
			n++
		}
	}
	return n
}

// HumanReadable renders spec.md §7's unified ".to_human_readable_repr()"
// summary string for this engine, built from Presentation.HumanReadable.
func (tc *ToddCoxeter) HumanReadable() string {
	active := 0
	for i := 0; i < tc.graph.NumNodes(); i++ {
		if tc.graph.IsActive(uint32(i)) {
			active++
		}
	}
	return fmt.Sprintf("ToddCoxeter over %s with %d gen. pairs, %d active cosets",
		tc.pres.HumanReadable(), len(tc.rules), active)
}

// NumberOfClasses reports the class count once Run has completed,
// UnknownCardinal otherwise. Unlike Knuth-Bendix's abelianisation check,
// this engine never detects obvious infinity: an infinite congruence
// simply never drains Run's worklist.
func (tc *ToddCoxeter) NumberOfClasses() Cardinal {
	if !tc.done {
		return UnknownCardinal
	}
	return Finite(tc.activeClassCount())
}

// traceDefined follows w from coset 0 using only already-defined edges,
// reporting false as soon as one is missing.
func (tc *ToddCoxeter) traceDefined(w alphabet.Word) (uint32, bool) {
	cur := tc.find(0)
	for _, a := range w {
		t := tc.graph.Target(cur, a)
		if t == UndefinedNode {
			return 0, false
		}
		cur = tc.find(t)
	}
	return cur, true
}

// CurrentlyContains answers whether u and v name the same coset without
// requiring Run to have completed: TrilTrue as soon as their traces meet,
// TrilFalse once Run has completed and they still differ, TrilUnknown
// otherwise (including when either trace runs off the currently-defined
// part of the graph).
func (tc *ToddCoxeter) CurrentlyContains(u, v alphabet.Word) Tril {
	n1, ok1 := tc.traceDefined(u)
	n2, ok2 := tc.traceDefined(v)
	if ok1 && ok2 {
		if n1 == n2 {
			return TrilTrue
		}
		if tc.done {
			return TrilFalse
		}
	}
	return TrilUnknown
}

// Contains answers definitively, requiring Run to have completed.
func (tc *ToddCoxeter) Contains(u, v alphabet.Word) (bool, error) {
	if !tc.done {
		return false, ErrEngineNotReady
	}
	n1, _ := tc.graph.FollowPath(0, u)
	n2, _ := tc.graph.FollowPath(0, v)
	return tc.find(n1) == tc.find(n2), nil
}

// IndexOf returns the class index of w, requiring Run to have completed.
func (tc *ToddCoxeter) IndexOf(w alphabet.Word) (int, error) {
	if !tc.done {
		return 0, ErrEngineNotReady
	}
	n, ok := tc.graph.FollowPath(0, w)
	if !ok {
		return 0, fmt.Errorf("%w: word graph incomplete after a completed run", ErrEngineNotReady)
	}
	return int(tc.find(n)), nil
}

// classWords computes, by breadth-first traversal from coset 0 exploring
// generators in alphabet order, a shortlex-least word reaching every
// active coset.
func (tc *ToddCoxeter) classWords() map[uint32]alphabet.Word {
	words := map[uint32]alphabet.Word{0: {}}
	queue := []uint32{0}
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		for a := 0; a < tc.graph.Degree(); a++ {
			t := tc.find(tc.graph.Target(n, alphabet.Letter(a)))
			if _, seen := words[t]; !seen {
				words[t] = alphabet.Concat(words[n], alphabet.Word{alphabet.Letter(a)})
				queue = append(queue, t)
			}
		}
	}
	return words
}

// WordOf returns a shortlex-least word reaching class index i, requiring
// Run to have completed.
func (tc *ToddCoxeter) WordOf(i int) (alphabet.Word, error) {
	if !tc.done {
		return nil, ErrEngineNotReady
	}
	words := tc.classWords()
	w, ok := words[uint32(i)]
	if !ok {
		return nil, fmt.Errorf("%w: class index %d not found", ErrInvalidWord, i)
	}
	return w, nil
}

// NormalForms returns one shortlex-least representative word per class, in
// class-index order, requiring Run to have completed.
func (tc *ToddCoxeter) NormalForms() ([]alphabet.Word, error) {
	if !tc.done {
		return nil, ErrEngineNotReady
	}
	words := tc.classWords()
	out := make([]alphabet.Word, 0, tc.graph.NumNodes())
	for i := 0; i < tc.graph.NumNodes(); i++ {
		if !tc.countsIdentityClass() && uint32(i) == tc.find(0) {
			continue
		}
		if tc.graph.IsActive(uint32(i)) && tc.find(uint32(i)) == uint32(i) {
			out = append(out, words[uint32(i)])
		}
	}
	return out, nil
}
