package semigroups

import (
	"fmt"

	"github.com/gitrdm/gosemigroups/pkg/alphabet"
	"github.com/gitrdm/gosemigroups/pkg/kernel"
)

// This file is the layer-5 "bridges" component of spec.md §2: converting a
// finished engine of one flavour into the starting state of another,
// without re-deriving the underlying congruence from scratch.

// ToToddCoxeter seeds a ToddCoxeter engine from a confluent KnuthBendix's
// active rule set — a reduced, confluent presentation is frequently a much
// better starting point for coset enumeration than the original one.
// Requires kb.Confluent().
func ToToddCoxeter(kb *KnuthBendix, cfg ToddCoxeterConfig) (*ToddCoxeter, error) {
	if !kb.Confluent() {
		return nil, fmt.Errorf("%w: knuth-bendix engine is not confluent", ErrEngineNotReady)
	}
	p := NewPresentation(kb.pres.Alphabet)
	p.ContainsEmptyWord = kb.pres.ContainsEmptyWord
	for _, r := range kb.ActiveRules() {
		if err := p.AddRule(r.Left, r.Right); err != nil {
			return nil, err
		}
	}
	return NewToddCoxeter(p, cfg), nil
}

// ToKnuthBendix seeds a KnuthBendix engine from a ToddCoxeter engine's
// defining relations (its presentation's own rules plus any generating
// pairs AddPair contributed) — useful when coset enumeration's resource
// limits were hit and a rewriting-based attempt might still complete.
func ToKnuthBendix(tc *ToddCoxeter, cfg KnuthBendixConfig) *KnuthBendix {
	p := NewPresentation(tc.pres.Alphabet)
	p.ContainsEmptyWord = tc.pres.ContainsEmptyWord
	for _, r := range tc.rules {
		_ = p.AddRule(r.Left, r.Right) // tc.rules were already validated against this alphabet
	}
	return NewKnuthBendix(p, cfg)
}

// ToFroidurePin seeds a FroidurePin engine from a completed ToddCoxeter's
// word graph: each generator's column of the (standardized, hence
// gap-free) coset table is exactly a transformation of the class-index
// set, and the set of cosets under these transformations is isomorphic to
// the right regular representation of the monoid the presentation
// defines. Requires tc to have completed Run, and its class count must fit
// kernel.Transformation's degree cap (16) — the same cap spec.md's kernel
// catalogue places on bit-packed transformations generally.
func ToFroidurePin(tc *ToddCoxeter, cfg FroidurePinConfig) (*FroidurePin, error) {
	if !tc.done {
		return nil, ErrEngineNotReady
	}
	numNodes := tc.graph.NumNodes()
	gens := make([]kernel.Element, tc.graph.Degree())
	for a := 0; a < tc.graph.Degree(); a++ {
		images := make([]uint8, numNodes)
		for n := 0; n < numNodes; n++ {
			images[n] = uint8(tc.graph.Target(uint32(n), alphabet.Letter(a)))
		}
		tr, err := kernel.NewTransformation(images)
		if err != nil {
			return nil, fmt.Errorf("bridge: right regular representation: %w", err)
		}
		gens[a] = tr
	}
	return NewFroidurePin(gens, cfg), nil
}
