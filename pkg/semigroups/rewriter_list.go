package semigroups

import "github.com/gitrdm/gosemigroups/pkg/alphabet"

// listRewriter is the "indexed list" back-end of spec.md §4.2: a slice of
// active rules in insertion order (it is not kept sorted; the tie-break
// below is applied at match time), scanned left to right, applying the leftmost
// rule whose lhs matches at some position, tie-broken by lhs length
// descending then the rewriter's order.
type listRewriter struct {
	rewriterCore
	active []RewriterRule
}

// NewListRewriter constructs a Rewriter using the indexed-list back-end.
func NewListRewriter(a *alphabet.Alphabet, order alphabet.Order) Rewriter {
	return &listRewriter{rewriterCore: newRewriterCore(a, order)}
}

// AddRule implements Rewriter.
func (r *listRewriter) AddRule(u, v alphabet.Word) error {
	lhs, rhs, err := r.validateAndOrient(u, v)
	if err != nil {
		return err
	}
	r.pending = append(r.pending, RewriterRule{LHS: lhs, RHS: rhs, Status: RulePending})
	return nil
}

// Reduce implements Rewriter by repeatedly applying the best-matching
// active rule until none applies.
func (r *listRewriter) Reduce(w alphabet.Word) alphabet.Word {
	cur := w.Clone()
	for {
		pos, rule, ok := r.leftmostBestMatch(cur)
		if !ok {
			return cur
		}
		tail := cur[pos+len(rule.LHS):].Clone()
		cur = alphabet.Concat(alphabet.Concat(cur[:pos], rule.RHS), tail)
	}
}

// leftmostBestMatch scans positions left to right; at the first position
// where any active rule's lhs matches, it picks the best rule there by the
// tie-break spec.md §4.2 specifies (longest lhs first, then the rewriter's
// order), and returns immediately — later positions are never considered
// once an earlier one has a match.
func (r *listRewriter) leftmostBestMatch(w alphabet.Word) (pos int, best RewriterRule, ok bool) {
	for pos = 0; pos <= len(w); pos++ {
		found := false
		for _, rule := range r.active {
			if rule.Status != RuleActive {
				continue
			}
			if !alphabet.HasPrefix(w[pos:], rule.LHS) {
				continue
			}
			if !found || len(rule.LHS) > len(best.LHS) ||
				(len(rule.LHS) == len(best.LHS) && r.less(rule.LHS, best.LHS)) {
				best = rule
				found = true
			}
		}
		if found {
			return pos, best, true
		}
	}
	return 0, RewriterRule{}, false
}

// ProcessPendingRules implements Rewriter.
func (r *listRewriter) ProcessPendingRules() {
	for len(r.pending) > 0 {
		rule := r.pending[0]
		r.pending = r.pending[1:]
		u := r.Reduce(rule.LHS)
		v := r.Reduce(rule.RHS)
		if u.Equal(v) {
			continue // trivial: both sides collapsed to the same word
		}
		lhs, rhs := u, v
		if r.less(lhs, rhs) {
			lhs, rhs = rhs, lhs
		}
		r.demoteSubsumed(lhs)
		r.active = append(r.active, RewriterRule{LHS: lhs, RHS: rhs, Status: RuleActive})
		r.confluent = false
	}
}

// demoteSubsumed moves every active rule whose lhs contains newLHS as a
// factor back onto the pending queue (spec.md §4.2: "re-examining existing
// rules whose lhs contains a new rule's lhs as factor").
func (r *listRewriter) demoteSubsumed(newLHS alphabet.Word) {
	kept := r.active[:0:0]
	for _, ar := range r.active {
		if alphabet.IndexOf(ar.LHS, newLHS, 0) >= 0 {
			ar.Status = RulePending
			r.pending = append(r.pending, ar)
		} else {
			kept = append(kept, ar)
		}
	}
	r.active = kept
}

// NumberOfActiveRules implements Rewriter.
func (r *listRewriter) NumberOfActiveRules() int { return len(r.active) }

// ActiveRules implements Rewriter.
func (r *listRewriter) ActiveRules() []RewriterRule {
	out := make([]RewriterRule, len(r.active))
	copy(out, r.active)
	return out
}
