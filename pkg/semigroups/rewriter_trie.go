package semigroups

import "github.com/gitrdm/gosemigroups/pkg/alphabet"

// trieNode is one state of the Aho-Corasick-style automaton, keyed on
// alphabet.Letter rather than rune (grounded on the retrieved reference
// Aho-Corasick matcher, other_examples/…itgcl-ahocorasick…, whose node
// shape — children map, fail link, output index — this mirrors directly).
type trieNode struct {
	children map[alphabet.Letter]*trieNode
	fail     *trieNode
	ruleIdx  int // index into trieRewriter.active ending at this node, or -1
}

func newTrieNode() *trieNode {
	return &trieNode{children: make(map[alphabet.Letter]*trieNode), ruleIdx: -1}
}

// trieRewriter is the "trie with failure links" back-end of spec.md §4.2:
// an Aho-Corasick automaton over the active rules' lhs's, giving O(|word|)
// reduction per step. Per the Design Notes (§9), it is rebuilt from
// scratch whenever the active rule set changes — no incremental
// failure-link maintenance is attempted.
type trieRewriter struct {
	rewriterCore
	active []RewriterRule
	root   *trieNode
	dirty  bool
}

// NewTrieRewriter constructs a Rewriter using the trie-with-failure-links
// back-end.
func NewTrieRewriter(a *alphabet.Alphabet, order alphabet.Order) Rewriter {
	r := &trieRewriter{rewriterCore: newRewriterCore(a, order)}
	r.root = newTrieNode()
	r.dirty = true
	return r
}

// AddRule implements Rewriter.
func (r *trieRewriter) AddRule(u, v alphabet.Word) error {
	lhs, rhs, err := r.validateAndOrient(u, v)
	if err != nil {
		return err
	}
	r.pending = append(r.pending, RewriterRule{LHS: lhs, RHS: rhs, Status: RulePending})
	return nil
}

// ProcessPendingRules implements Rewriter.
func (r *trieRewriter) ProcessPendingRules() {
	for len(r.pending) > 0 {
		rule := r.pending[0]
		r.pending = r.pending[1:]
		r.rebuildIfDirty()
		u := r.reduceLocked(rule.LHS)
		v := r.reduceLocked(rule.RHS)
		if u.Equal(v) {
			continue
		}
		lhs, rhs := u, v
		if r.less(lhs, rhs) {
			lhs, rhs = rhs, lhs
		}
		r.demoteSubsumed(lhs)
		r.active = append(r.active, RewriterRule{LHS: lhs, RHS: rhs, Status: RuleActive})
		r.confluent = false
		r.dirty = true
	}
}

func (r *trieRewriter) demoteSubsumed(newLHS alphabet.Word) {
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
	r.dirty = true
}

// rebuildIfDirty rebuilds the automaton from the current active set if it
// has changed since the last build.
func (r *trieRewriter) rebuildIfDirty() {
	if !r.dirty {
		return
	}
	root := newTrieNode()
	for idx, rule := range r.active {
		n := root
		for _, l := range rule.LHS {
			c, ok := n.children[l]
			if !ok {
				c = newTrieNode()
				n.children[l] = c
			}
			n = c
		}
		n.ruleIdx = idx
	}
	buildFailLinks(root)
	r.root = root
	r.dirty = false
}

// buildFailLinks computes Aho-Corasick fail links over root's trie by
// breadth-first traversal, reusing goTo (the same function used at match
// time) so that build-time and run-time transitions are defined identically.
func buildFailLinks(root *trieNode) {
	root.fail = root
	queue := make([]*trieNode, 0, len(root.children))
	for _, c := range root.children {
		c.fail = root
		queue = append(queue, c)
	}
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		for l, c := range n.children {
			queue = append(queue, c)
			if n == root {
				c.fail = root
			} else {
				c.fail = goTo(n.fail, root, l)
			}
		}
	}
}

// goTo is the automaton's transition function: follow the child edge for l
// if present, else fall back along fail links until one is found or root
// is reached (root's own "missing edge" transition is to stay at root).
func goTo(n *trieNode, root *trieNode, l alphabet.Letter) *trieNode {
	for {
		if c, ok := n.children[l]; ok {
			return c
		}
		if n == root {
			return root
		}
		n = n.fail
	}
}

// Reduce implements Rewriter.
func (r *trieRewriter) Reduce(w alphabet.Word) alphabet.Word {
	r.rebuildIfDirty()
	return r.reduceLocked(w)
}

func (r *trieRewriter) reduceLocked(w alphabet.Word) alphabet.Word {
	cur := w.Clone()
	for {
		pos, rule, ok := r.bestMatch(cur)
		if !ok {
			return cur
		}
		tail := cur[pos+len(rule.LHS):].Clone()
		cur = alphabet.Concat(alphabet.Concat(cur[:pos], rule.RHS), tail)
	}
}

// bestMatch scans cur once through the automaton, and at every text
// position checks the current state's own output chain (via fail links)
// for rule lhs's ending there, keeping the candidate with the smallest
// start position (leftmost), tie-broken by lhs length descending then the
// rewriter's order — the same tie-break the list back-end uses, applied
// here across the whole single-pass scan rather than position by position.
func (r *trieRewriter) bestMatch(cur alphabet.Word) (pos int, best RewriterRule, ok bool) {
	state := r.root
	bestStart := -1
	bestLen := -1
	for i, l := range cur {
		state = goTo(state, r.root, l)
		for n := state; n != r.root; n = n.fail {
			if n.ruleIdx < 0 {
				continue
			}
			rule := r.active[n.ruleIdx]
			start := i - len(rule.LHS) + 1
			better := bestStart == -1 || start < bestStart ||
				(start == bestStart && (len(rule.LHS) > bestLen ||
					(len(rule.LHS) == bestLen && r.less(rule.LHS, best.LHS))))
			if better {
				bestStart, bestLen, best = start, len(rule.LHS), rule
			}
		}
	}
	if bestStart == -1 {
		return 0, RewriterRule{}, false
	}
	return bestStart, best, true
}

// NumberOfActiveRules implements Rewriter.
func (r *trieRewriter) NumberOfActiveRules() int { return len(r.active) }

// ActiveRules implements Rewriter.
func (r *trieRewriter) ActiveRules() []RewriterRule {
	out := make([]RewriterRule, len(r.active))
	copy(out, r.active)
	return out
}
