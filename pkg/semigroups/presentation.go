package semigroups

import (
	"fmt"

	"github.com/gitrdm/gosemigroups/pkg/alphabet"
)

// Rule is an unordered pair of words defining a relation in a Presentation.
// (The rewriter's own RewriterRule type, in rewriter.go, is the oriented
// lhs > rhs pair a rewriter actually stores; this one is the user-facing,
// unordered relation.)
type Rule struct {
	Left, Right alphabet.Word
}

// Presentation is a value: an alphabet, an unordered list of relations, and
// a flag for whether the empty word is a legal word of the monoid/semigroup
// being presented. It is copied by value into every engine that accepts
// one; after hand-off the engine owns its own copy and the caller's further
// mutations (via AddRule, RemoveRule, ...) have no effect on the engine.
type Presentation struct {
	Alphabet          *alphabet.Alphabet
	Rules             []Rule
	ContainsEmptyWord bool
}

// NewPresentation builds an empty presentation over alphabet a.
func NewPresentation(a *alphabet.Alphabet) *Presentation {
	return &Presentation{Alphabet: a}
}

// AddRule appends a relation, validating both sides against the alphabet
// and the empty-word flag.
func (p *Presentation) AddRule(u, v alphabet.Word) error {
	if err := p.validateWord(u); err != nil {
		return err
	}
	if err := p.validateWord(v); err != nil {
		return err
	}
	p.Rules = append(p.Rules, Rule{Left: u.Clone(), Right: v.Clone()})
	return nil
}

func (p *Presentation) validateWord(w alphabet.Word) error {
	if err := p.Alphabet.Validate(w); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidWord, err)
	}
	if len(w) == 0 && !p.ContainsEmptyWord {
		return fmt.Errorf("%w: empty word not permitted by this presentation", ErrInvalidWord)
	}
	return nil
}

// RemoveRule deletes the rule at index i.
func (p *Presentation) RemoveRule(i int) {
	p.Rules = append(p.Rules[:i], p.Rules[i+1:]...)
}

// NormalizeRules reorients every rule so its two sides are in Shortlex
// order (Left becomes the shortlex-larger side), and sorts the
// rule list by (Left, Right) shortlex — a user-side helper, not something
// an engine requires, matching spec.md §3's "mutated by user-side helpers".
func (p *Presentation) NormalizeRules() {
	less := alphabet.Less(alphabet.Shortlex)
	for i, r := range p.Rules {
		if less(r.Right, r.Left) {
			continue
		}
		p.Rules[i] = Rule{Left: r.Right, Right: r.Left}
	}
	for i := 1; i < len(p.Rules); i++ {
		for j := i; j > 0 && ruleLess(p.Rules[j], p.Rules[j-1], less); j-- {
			p.Rules[j], p.Rules[j-1] = p.Rules[j-1], p.Rules[j]
		}
	}
}

func ruleLess(a, b Rule, less func(x, y alphabet.Word) bool) bool {
	if !a.Left.Equal(b.Left) {
		return less(a.Left, b.Left)
	}
	return less(a.Right, b.Right)
}

// Validate checks every invariant spec.md §3 requires of a Presentation:
// every word in every rule uses only alphabet letters, and (when
// ContainsEmptyWord is false) no rule equates an empty side.
func (p *Presentation) Validate() error {
	for i, r := range p.Rules {
		if err := p.Alphabet.Validate(r.Left); err != nil {
			return fmt.Errorf("%w: rule %d left side: %v", ErrInvalidWord, i, err)
		}
		if err := p.Alphabet.Validate(r.Right); err != nil {
			return fmt.Errorf("%w: rule %d right side: %v", ErrInvalidWord, i, err)
		}
		if !p.ContainsEmptyWord && (len(r.Left) == 0 || len(r.Right) == 0) {
			return fmt.Errorf("%w: rule %d equates the empty word but ContainsEmptyWord is false", ErrInvalidRule, i)
		}
	}
	return nil
}

// Clone returns a deep copy, the form an engine stores internally after
// accepting a Presentation by value.
func (p *Presentation) Clone() *Presentation {
	rules := make([]Rule, len(p.Rules))
	for i, r := range p.Rules {
		rules[i] = Rule{Left: r.Left.Clone(), Right: r.Right.Clone()}
	}
	return &Presentation{Alphabet: p.Alphabet, Rules: rules, ContainsEmptyWord: p.ContainsEmptyWord}
}

// HumanReadable renders a short summary substring used by every engine's
// own HumanReadable formatting, per spec.md §7's ".to_human_readable_repr()"
// convention ("... over <presentation summary> with N gen. pairs ...").
func (p *Presentation) HumanReadable() string {
	return fmt.Sprintf("%d letters, %d rules", p.Alphabet.Size(), len(p.Rules))
}
