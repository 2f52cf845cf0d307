package semigroups

import (
	"context"
	"fmt"
	"time"

	"github.com/gitrdm/gosemigroups/pkg/alphabet"
)

// KnuthBendix is the completion engine of spec.md §4.3: it drives a
// Rewriter's pending queue via Knuth-Bendix overlap (critical pair) search
// until either no overlap yields a new rule (confluent) or a configured
// resource limit is hit. The overlap worklist itself is the flat, iterative
// double loop below rather than an explicit queue of pair indices — grounded
// on the teacher's non-recursive worklist loop in search.go, adapted from
// "pop a goal, push its children" to "pop a pair of active rules, push any
// critical pair it yields back onto the rewriter's pending queue".
type KnuthBendix struct {
	pres *Presentation
	rw   Rewriter
	cfg  KnuthBendixConfig

	// reporter is optional (nil-safe) diagnostic output; see SetReporter.
	reporter *Reporter
}

// SetReporter attaches r (nil clears it) so Run reports a "checkpoint"
// event per completion-loop iteration and a "critical_pair" event per rule
// a critical-pair reduction actually adds.
func (kb *KnuthBendix) SetReporter(r *Reporter) { kb.reporter = r }

// NewKnuthBendix builds an engine over a copy of p (per Presentation's
// by-value hand-off contract), seeding the rewriter's pending queue with
// every rule of p.
func NewKnuthBendix(p *Presentation, cfg KnuthBendixConfig) *KnuthBendix {
	owned := p.Clone()
	var rw Rewriter
	if cfg.RewriterBackend == BackendList {
		rw = NewListRewriter(owned.Alphabet, cfg.ReductionOrder)
	} else {
		rw = NewTrieRewriter(owned.Alphabet, cfg.ReductionOrder)
	}
	for _, r := range owned.Rules {
		_ = rw.AddRule(r.Left, r.Right) // a relation with equal sides is a no-op, not an error here
	}
	return &KnuthBendix{pres: owned, rw: rw, cfg: cfg}
}

// Run drives completion to a fixed point: either confluence is reached, the
// context is cancelled, or a configured resource limit (MaxRules,
// MaxPendingRules, MaxRuntime) is hit, in which case the returned error wraps
// ErrResourceLimit or the context's own error.
func (kb *KnuthBendix) Run(ctx context.Context) error {
	return kb.run(ctx, kb.cfg.MaxRuntime)
}

// RunFor is Run bounded additionally by d regardless of the configured
// MaxRuntime (the smaller of the two applies).
func (kb *KnuthBendix) RunFor(ctx context.Context, d time.Duration) error {
	budget := kb.cfg.MaxRuntime
	if budget == 0 || (d > 0 && d < budget) {
		budget = d
	}
	return kb.run(ctx, budget)
}

func (kb *KnuthBendix) run(ctx context.Context, budget time.Duration) error {
	var deadline time.Time
	if budget > 0 {
		deadline = time.Now().Add(budget)
	}
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if !deadline.IsZero() && time.Now().After(deadline) {
			return fmt.Errorf("%w: wall-clock budget exhausted", ErrResourceLimit)
		}
		kb.reporter.Report("checkpoint", "")
		kb.rw.ProcessPendingRules()
		if kb.rw.NumberOfActiveRules() > kb.cfg.MaxRules {
			return fmt.Errorf("%w: max_rules exceeded", ErrResourceLimit)
		}
		active := kb.rw.ActiveRules()
		added := false
		for i := range active {
			for j := range active {
				for _, k := range overlapOffsets(active[i].LHS, active[j].LHS, i == j) {
					select {
					case <-ctx.Done():
						return ctx.Err()
					default:
					}
					left, right := criticalPair(active[i], active[j], k)
					u := kb.rw.Reduce(left)
					v := kb.rw.Reduce(right)
					if u.Equal(v) {
						continue
					}
					if err := kb.rw.AddRule(u, v); err != nil {
						continue
					}
					added = true
					kb.reporter.Report("critical_pair", kb.pres.Alphabet.String(u)+" -> "+kb.pres.Alphabet.String(v))
					if kb.rw.NumberOfPendingRules() > kb.cfg.MaxPendingRules {
						return fmt.Errorf("%w: max_pending_rules exceeded", ErrResourceLimit)
					}
				}
			}
		}
		if !added {
			kb.rw.SetConfluent(true)
			return nil
		}
	}
}

// overlapOffsets returns every overlap length k (1 <= k <= min(|lhs1|,
// |lhs2|)) at which a suffix of lhs1 equals a prefix of lhs2. Only
// suffix-prefix overlaps are searched: inclusion overlaps (one active lhs a
// factor of another) never arise because ProcessPendingRules keeps the
// active set factor-free, demoting any rule that stops being so. When lhs1
// and lhs2 are the same rule, the degenerate full-length self-overlap
// (k == len(lhs1)) is skipped since it always yields a trivial pair.
func overlapOffsets(lhs1, lhs2 alphabet.Word, sameRule bool) []int {
	maxK := len(lhs1)
	if len(lhs2) < maxK {
		maxK = len(lhs2)
	}
	var ks []int
	for k := 1; k <= maxK; k++ {
		if sameRule && k == len(lhs1) {
			continue
		}
		if lhs1[len(lhs1)-k:].Equal(lhs2[:k]) {
			ks = append(ks, k)
		}
	}
	return ks
}

// criticalPair forms the overlap word lhs1 ++ lhs2[k:] (equivalently
// lhs1[:len(lhs1)-k] ++ lhs2) and reduces it one step by each of the two
// rules in turn, giving the pair that must agree for the rule set to be
// confluent at this overlap.
func criticalPair(r1, r2 RewriterRule, k int) (left, right alphabet.Word) {
	left = alphabet.Concat(r1.RHS, r2.LHS[k:])
	right = alphabet.Concat(r1.LHS[:len(r1.LHS)-k], r2.RHS)
	return left, right
}

// HumanReadable renders spec.md §7's unified ".to_human_readable_repr()"
// summary string for this engine, built from Presentation.HumanReadable.
func (kb *KnuthBendix) HumanReadable() string {
	return fmt.Sprintf("KnuthBendix over %s with %d gen. pairs, %d active rules, %d pending rules",
		kb.pres.HumanReadable(), len(kb.pres.Rules), kb.rw.NumberOfActiveRules(), kb.rw.NumberOfPendingRules())
}

// Confluent reports whether the rule set is known confluent (a successful
// Run has returned, or ran to completion before RunFor's deadline).
func (kb *KnuthBendix) Confluent() bool { return kb.rw.ConfluentKnown() }

// NumberOfActiveRules reports the current active rule count.
func (kb *KnuthBendix) NumberOfActiveRules() int { return kb.rw.NumberOfActiveRules() }

// ActiveRules returns a snapshot of the current (oriented) active rule set.
func (kb *KnuthBendix) ActiveRules() []Rule {
	rr := kb.rw.ActiveRules()
	out := make([]Rule, len(rr))
	for i, r := range rr {
		out[i] = Rule{Left: r.LHS, Right: r.RHS}
	}
	return out
}

// NormalForm reduces w to its current canonical representative. Sound at
// any point during completion (equal normal forms imply equal classes);
// only complete once Confluent reports true.
func (kb *KnuthBendix) NormalForm(w alphabet.Word) alphabet.Word { return kb.rw.Reduce(w) }

// CurrentlyContains answers the word problem for (u, v) without requiring
// completion to have finished: TrilTrue as soon as the reduced forms agree,
// TrilFalse once confluence has been established and they still disagree,
// TrilUnknown otherwise (spec.md's NotYetKnown outcome).
func (kb *KnuthBendix) CurrentlyContains(u, v alphabet.Word) Tril {
	if kb.rw.Reduce(u).Equal(kb.rw.Reduce(v)) {
		return TrilTrue
	}
	if kb.rw.ConfluentKnown() {
		return TrilFalse
	}
	return TrilUnknown
}

// Contains answers the word problem definitively, requiring a confluent
// rule set; it returns ErrEngineNotReady otherwise.
func (kb *KnuthBendix) Contains(u, v alphabet.Word) (bool, error) {
	if !kb.rw.ConfluentKnown() {
		return false, ErrEngineNotReady
	}
	return kb.rw.Reduce(u).Equal(kb.rw.Reduce(v)), nil
}

// ObviouslyInfinite reports whether the presentation's abelianisation is
// already infinite: build the matrix whose rows are each rule's generator
// exponent vector (left-side counts minus right-side counts), and check
// whether its rank is less than the number of generators. A rank deficiency
// means some combination of generators is unconstrained in the abelian
// quotient, which is therefore infinite — and so is the (at least as large)
// monoid or semigroup the presentation defines. This is a one-sided test:
// full rank does not prove finiteness, only rank deficiency proves
// infiniteness, matching spec.md's "obvious infinity" framing.
func (kb *KnuthBendix) ObviouslyInfinite() bool {
	n := kb.pres.Alphabet.Size()
	if n == 0 {
		return false
	}
	rows := make([][]float64, 0, len(kb.pres.Rules))
	for _, r := range kb.pres.Rules {
		row := make([]float64, n)
		for _, l := range r.Left {
			row[l]++
		}
		for _, l := range r.Right {
			row[l]--
		}
		rows = append(rows, row)
	}
	return matrixRank(rows, n) < n
}

// matrixRank computes the rank of rows (each of length cols) over the
// reals by Gaussian elimination with partial pivoting, tolerant of
// floating-point noise.
func matrixRank(rows [][]float64, cols int) int {
	const eps = 1e-9
	m := make([][]float64, len(rows))
	for i, r := range rows {
		m[i] = append([]float64(nil), r...)
	}
	rank := 0
	for col := 0; col < cols && rank < len(m); col++ {
		pivot := -1
		best := eps
		for r := rank; r < len(m); r++ {
			if v := absF(m[r][col]); v > best {
				best, pivot = v, r
			}
		}
		if pivot == -1 {
			continue
		}
		m[rank], m[pivot] = m[pivot], m[rank]
		for r := 0; r < len(m); r++ {
			if r == rank {
				continue
			}
			factor := m[r][col] / m[rank][col]
			if absF(factor) < eps {
				continue
			}
			for c := col; c < cols; c++ {
				m[r][c] -= factor * m[rank][c]
			}
		}
		rank++
	}
	return rank
}

func absF(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
