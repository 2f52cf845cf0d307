package semigroups

import (
	"fmt"

	"github.com/gitrdm/gosemigroups/pkg/alphabet"
)

// RuleStatus tracks a rewriter rule's place in its lifecycle, per spec.md
// §4.2: pending (not yet indexed), active (participates in reduction),
// inactive (subsumed or redundant, kept only as dead storage for recycling
// its slot).
type RuleStatus int

const (
	RulePending RuleStatus = iota
	RuleActive
	RuleInactive
)

// RewriterRule is one oriented rule lhs -> rhs, lhs > rhs under the
// rewriter's reduction order.
type RewriterRule struct {
	LHS, RHS alphabet.Word
	Status   RuleStatus
}

// RewriterBackend selects which indexing structure a Rewriter uses to find,
// given a word, which active rule's lhs occurs as a factor.
type RewriterBackend int

const (
	// BackendList: a slice of active rules kept in insertion order (not
	// sorted), scanned left to right.
	BackendList RewriterBackend = iota
	// BackendTrie: an Aho-Corasick-style trie with failure links, rebuilt
	// from scratch whenever the pending queue drains (per spec.md's
	// Design Notes §9: no incremental failure-link maintenance).
	BackendTrie
)

// Rewriter is an ordered, terminating rule set that reduces words to a
// canonical form, with incremental rule insertion and deferred retroactive
// re-reduction — the public contract of spec.md §4.2, common to both
// back-ends.
type Rewriter interface {
	// Reduce returns the shortlex-smallest (or configured-order-smallest)
	// representative of w reachable by repeatedly applying active rules.
	// Confluent if and only if the rewriter has signalled confluence.
	Reduce(w alphabet.Word) alphabet.Word
	// AddRule enqueues a pending rule from u and v, oriented so that the
	// larger side under the rewriter's order is the lhs; returns
	// ErrInvalidRule if either side contains an out-of-alphabet letter or
	// the two sides are equal.
	AddRule(u, v alphabet.Word) error
	// ProcessPendingRules drains the pending queue: reduces each pending
	// rule's sides against the current active set, discards trivial rules
	// (both sides equal after reduction), and demotes back to pending any
	// existing active rule whose lhs contains a newly active rule's lhs as
	// a factor.
	ProcessPendingRules()
	// NumberOfActiveRules reports the current active-rule count.
	NumberOfActiveRules() int
	// NumberOfPendingRules reports the current pending-rule count.
	NumberOfPendingRules() int
	// ConfluentKnown reports whether confluence has been established by
	// the engine driving this rewriter (the rewriter itself never decides
	// confluence; Knuth-Bendix does, then calls SetConfluent).
	ConfluentKnown() bool
	// SetConfluent records the engine's confluence verdict.
	SetConfluent(bool)
	// ActiveRules returns a snapshot of the active rule set, in the
	// backend's internal order.
	ActiveRules() []RewriterRule
	// Alphabet returns the alphabet words passed to this rewriter must be
	// valid over.
	Alphabet() *alphabet.Alphabet
}

// rewriterCore holds the state and logic common to both back-ends: the
// alphabet, the pending queue and the reduction order. Each back-end
// implements its own Reduce and its own leftmost-match lookup.
type rewriterCore struct {
	alpha      *alphabet.Alphabet
	order      alphabet.Order
	less       func(a, b alphabet.Word) bool
	pending    []RewriterRule
	confluent  bool
	nextRuleID int
}

func newRewriterCore(a *alphabet.Alphabet, order alphabet.Order) rewriterCore {
	if order == "" {
		order = alphabet.Shortlex
	}
	return rewriterCore{alpha: a, order: order, less: alphabet.Less(order)}
}

func (c *rewriterCore) Alphabet() *alphabet.Alphabet { return c.alpha }

func (c *rewriterCore) ConfluentKnown() bool  { return c.confluent }
func (c *rewriterCore) SetConfluent(v bool)   { c.confluent = v }
func (c *rewriterCore) NumberOfPendingRules() int { return len(c.pending) }

// validateAndOrient checks u and v against the alphabet and the reduction
// order, returning the oriented pair (lhs > rhs) or ErrInvalidRule.
func (c *rewriterCore) validateAndOrient(u, v alphabet.Word) (lhs, rhs alphabet.Word, err error) {
	if err := c.alpha.Validate(u); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrInvalidRule, err)
	}
	if err := c.alpha.Validate(v); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrInvalidRule, err)
	}
	if u.Equal(v) {
		return nil, nil, fmt.Errorf("%w: rule sides are equal", ErrInvalidRule)
	}
	if c.less(u, v) {
		u, v = v, u
	}
	return u.Clone(), v.Clone(), nil
}
