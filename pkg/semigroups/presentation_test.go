package semigroups

import (
	"testing"

	"github.com/gitrdm/gosemigroups/pkg/alphabet"
)

func TestPresentationAddRuleValidates(t *testing.T) {
	a, _ := alphabet.New("ab")
	p := NewPresentation(a)
	u, _ := a.ParseWord("aaa")
	v, _ := a.ParseWord("a")
	if err := p.AddRule(u, v); err != nil {
		t.Fatal(err)
	}
	if len(p.Rules) != 1 {
		t.Fatalf("expected 1 rule, got %d", len(p.Rules))
	}
	if err := p.AddRule(alphabet.Word{}, v); err == nil {
		t.Error("expected error adding empty-word rule when ContainsEmptyWord is false")
	}
}

func TestPresentationValidateCatchesOutOfAlphabetLetters(t *testing.T) {
	a, _ := alphabet.New("ab")
	p := NewPresentation(a)
	p.Rules = append(p.Rules, Rule{Left: alphabet.Word{5}, Right: alphabet.Word{0}})
	if err := p.Validate(); err == nil {
		t.Error("expected validation error for out-of-alphabet letter")
	}
}

func TestPresentationCloneIsIndependent(t *testing.T) {
	a, _ := alphabet.New("ab")
	p := NewPresentation(a)
	u, _ := a.ParseWord("aaa")
	v, _ := a.ParseWord("a")
	_ = p.AddRule(u, v)
	clone := p.Clone()
	clone.Rules[0].Left[0] = 1
	if p.Rules[0].Left[0] == 1 {
		t.Error("mutating clone's rule mutated the original")
	}
}

func TestPresentationNormalizeRulesOrientsShortlex(t *testing.T) {
	a, _ := alphabet.New("ab")
	p := NewPresentation(a)
	u, _ := a.ParseWord("a")
	v, _ := a.ParseWord("aaa")
	p.Rules = append(p.Rules, Rule{Left: u, Right: v}) // wrong orientation
	p.NormalizeRules()
	if len(p.Rules[0].Left) < len(p.Rules[0].Right) {
		t.Error("expected Left to be the shortlex-larger side after normalization")
	}
}
