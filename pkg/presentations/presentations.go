// Package presentations is the minimal presentation catalogue of spec.md
// §6 — "a function returning a Presentation" per named family, trimmed to
// the two families the testable scenarios (spec.md §8, S3 and S4) need,
// rather than the full catalogue spec.md §1 explicitly scopes out.
//
// Grounded on original_source/include/libsemigroups/presentation-examples.hpp's
// function-per-family shape (one function per named presentation, taking a
// degree parameter and returning a presentation value).
package presentations

import (
	"fmt"

	"github.com/gitrdm/gosemigroups/pkg/alphabet"
	"github.com/gitrdm/gosemigroups/pkg/semigroups"
)

func word(letters ...int) alphabet.Word {
	w := make(alphabet.Word, len(letters))
	for i, l := range letters {
		w[i] = alphabet.Letter(l)
	}
	return w
}

// coxeterTypeA adds the standard type-A Coxeter presentation of the
// symmetric group on n points (adjacent transpositions s_0..s_{n-2}) to p:
// involutions, long-distance commutation, and the braid relation between
// neighbours. Shared by both families below, each of which adjoins one
// further idempotent generator to a type-A Coxeter skeleton.
func coxeterTypeA(p *semigroups.Presentation, n int) error {
	empty := word()
	for i := 0; i < n-1; i++ {
		if err := p.AddRule(word(i, i), empty); err != nil {
			return err
		}
	}
	for i := 0; i < n-1; i++ {
		for j := i + 2; j < n-1; j++ {
			if err := p.AddRule(word(i, j), word(j, i)); err != nil {
				return err
			}
		}
	}
	for i := 0; i < n-2; i++ {
		if err := p.AddRule(word(i, i+1, i), word(i+1, i, i+1)); err != nil {
			return err
		}
	}
	return nil
}

// SymmetricInverseMonoid returns the Gay presentation of the symmetric
// inverse monoid of degree n (spec.md §8 scenario S4): n-1 Coxeter
// generators 0..n-2 for the symmetric group on n points, plus one further
// idempotent generator n-1 (a partial identity missing one point of its
// domain) commuting with every Coxeter generator except the first, and two
// mixed relations pinning down its interaction with that first generator.
//
// This exact generator/relation shape — verified letter for letter against
// the literal sorted rule dump `symmetric_inverse_monoid_Gay18(4)` produces
// in original_source/tests/test-presentation-examples-1.cpp (the retrieval
// pack ships that test's literal expected output, though not the
// presentation-examples.cpp function body itself) — generalizes directly
// from n=4 to arbitrary n >= 2; see DESIGN.md for the n=4 cross-check.
func SymmetricInverseMonoid(n int) (*semigroups.Presentation, error) {
	if n < 2 {
		return nil, fmt.Errorf("presentations: symmetric inverse monoid needs degree >= 2, got %d", n)
	}
	a := alphabet.Sized(n)
	p := semigroups.NewPresentation(a)
	p.ContainsEmptyWord = true
	if err := coxeterTypeA(p, n); err != nil {
		return nil, err
	}
	e := n - 1
	if err := p.AddRule(word(e, e), word(e)); err != nil {
		return nil, err
	}
	for i := 1; i < n-1; i++ {
		if err := p.AddRule(word(e, i), word(i, e)); err != nil {
			return nil, err
		}
	}
	if err := p.AddRule(word(0, e, 0, e), word(e, 0, e)); err != nil {
		return nil, err
	}
	if err := p.AddRule(word(e, 0, e, 0), word(0, e, 0, e)); err != nil {
		return nil, err
	}
	return p, nil
}

// FullTransformationMonoid returns an Iwahori-style presentation of the
// full transformation monoid of degree n (spec.md §8 scenario S3): the
// same type-A Coxeter skeleton as SymmetricInverseMonoid, generating the
// symmetric group on n points, adjoined with one further idempotent
// generator of defect one.
//
// Unlike SymmetricInverseMonoid, the retrieval pack contains no literal
// rule dump for full_transformation_monoid_II74 (only its declaration and a
// class-count assertion survive in the filtered original_source/ tree).
// This is therefore a best-effort reconstruction from the same Coxeter
// skeleton rather than an independently confirmed relation set: e is taken
// to be a non-injective defect-one idempotent braiding with the first
// Coxeter generator (instead of the commuting/mixed-relation pair
// SymmetricInverseMonoid's genuinely invertible partial identity needs).
// See DESIGN.md — the resulting class count is not independently verified
// against the S3 scenario's literal 3125, since this port cannot run the
// toolchain to check it.
func FullTransformationMonoid(n int) (*semigroups.Presentation, error) {
	if n < 4 {
		return nil, fmt.Errorf("presentations: full transformation monoid (Iwahori) needs degree >= 4, got %d", n)
	}
	a := alphabet.Sized(n)
	p := semigroups.NewPresentation(a)
	p.ContainsEmptyWord = true
	if err := coxeterTypeA(p, n); err != nil {
		return nil, err
	}
	e := n - 1
	if err := p.AddRule(word(e, e), word(e)); err != nil {
		return nil, err
	}
	for i := 1; i < n-1; i++ {
		if err := p.AddRule(word(e, i), word(i, e)); err != nil {
			return nil, err
		}
	}
	if err := p.AddRule(word(0, e, 0, e), word(e, 0, e, 0)); err != nil {
		return nil, err
	}
	return p, nil
}
