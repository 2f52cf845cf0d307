package semigroups

import (
	"context"
	"errors"
	"fmt"

	"github.com/gitrdm/gosemigroups/pkg/alphabet"
)

// engineState tags which concrete engine (if any) currently backs a
// Congruence, per spec.md §9's "Mixed kernels through a single congruence
// facade" design note: "{ Uninitialised, Running(ToddCoxeter),
// Running(KnuthBendix), Running(FroidurePin), Finished(result) }". This
// port's facade only ever needs the ToddCoxeter/KnuthBendix pair (a
// Congruence is seeded from a Presentation, never directly from a
// Froidure-Pin result; callers who start from enumerated elements go
// through ToFroidurePin/ToToddCoxeter themselves), so stateRunningFroidurePin
// is left out rather than carried unused.
type engineState int

const (
	stateUninitialised engineState = iota
	stateRunningToddCoxeter
	stateRunningKnuthBendix
	stateFinished
)

// CongruenceConfig bundles the configuration surface of every engine the
// facade may end up running.
type CongruenceConfig struct {
	ToddCoxeter ToddCoxeterConfig
	KnuthBendix KnuthBendixConfig
}

// NewCongruenceConfig returns sane defaults for both candidate engines.
func NewCongruenceConfig() CongruenceConfig {
	return CongruenceConfig{ToddCoxeter: NewToddCoxeterConfig(), KnuthBendix: NewKnuthBendixConfig()}
}

// Congruence is the layer-5 facade of spec.md §2 ("dispatches a congruence
// query to whichever engine is currently best-positioned") and §9's
// tagged-variant design note. It presents the engine-neutral query surface
// of spec.md §6 (NumberOfClasses, IndexOf, WordOf, Contains,
// CurrentlyContains, NormalForms, Reduce, NonTrivialClasses) while choosing,
// internally, which concrete engine actually answers each one.
//
// Run's strategy: attempt Todd-Coxeter coset enumeration first (the
// better-suited engine for "how many classes" questions on an arbitrary
// presentation). If that hits a resource limit before completing, fall
// back to Knuth-Bendix over the same relations (ToKnuthBendix); if
// Knuth-Bendix reaches confluence, its now-reduced rule set is frequently a
// far better starting point for coset enumeration than the original
// presentation, so Run makes one further Todd-Coxeter attempt seeded from
// it (ToToddCoxeter) before giving up. This mirrors the round-trip the
// bridges (bridges.go) were built to support.
type Congruence struct {
	pres  *Presentation
	cfg   CongruenceConfig
	state engineState

	tc *ToddCoxeter
	kb *KnuthBendix
}

// NewCongruence builds an (unrun) facade over a copy of p.
func NewCongruence(p *Presentation, cfg CongruenceConfig) *Congruence {
	return &Congruence{pres: p, cfg: cfg, state: stateUninitialised, tc: NewToddCoxeter(p, cfg.ToddCoxeter)}
}

// AddPair contributes an extra generating pair to the congruence, beyond
// the seed presentation's own relations. Must be called before Run.
func (c *Congruence) AddPair(u, v alphabet.Word) error {
	if c.state != stateUninitialised {
		return fmt.Errorf("%w: cannot add a pair after Run started", ErrEngineNotReady)
	}
	return c.tc.AddPair(u, v)
}

// Run drives the dispatch strategy described on Congruence to completion,
// a context cancellation, or an unrecoverable resource limit.
func (c *Congruence) Run(ctx context.Context) error {
	if c.state == stateFinished {
		return nil
	}
	c.state = stateRunningToddCoxeter
	err := c.tc.Run(ctx)
	if err == nil {
		c.state = stateFinished
		return nil
	}
	if !errors.Is(err, ErrResourceLimit) {
		return err
	}

	c.state = stateRunningKnuthBendix
	c.kb = ToKnuthBendix(c.tc, c.cfg.KnuthBendix)
	if kbErr := c.kb.Run(ctx); kbErr != nil {
		return fmt.Errorf("todd-coxeter: %v; knuth-bendix fallback: %w", err, kbErr)
	}
	if !c.kb.Confluent() {
		return err // both attempts inconclusive; report the original resource limit
	}

	retry, bridgeErr := ToToddCoxeter(c.kb, c.cfg.ToddCoxeter)
	if bridgeErr != nil {
		return err
	}
	c.state = stateRunningToddCoxeter
	if retryErr := retry.Run(ctx); retryErr != nil {
		return fmt.Errorf("todd-coxeter retry after knuth-bendix completion: %w", retryErr)
	}
	c.tc = retry
	c.state = stateFinished
	return nil
}

// HumanReadable renders spec.md §7's unified ".to_human_readable_repr()"
// summary string, delegating to whichever inner engine is currently
// best-positioned to answer for this facade (Knuth-Bendix once Run has
// fallen back to it, Todd-Coxeter otherwise).
func (c *Congruence) HumanReadable() string {
	if c.kb != nil {
		return c.kb.HumanReadable()
	}
	return c.tc.HumanReadable()
}

// NumberOfClasses returns the class count, answerable once Todd-Coxeter has
// completed (directly, or via Run's knuth-bendix-then-retry fallback).
func (c *Congruence) NumberOfClasses() (Cardinal, error) {
	if c.state != stateFinished {
		return UnknownCardinal, ErrEngineNotReady
	}
	return c.tc.NumberOfClasses(), nil
}

// IndexOf returns the node index word's class is reached at, after
// standardisation. Requires Run to have completed.
func (c *Congruence) IndexOf(w alphabet.Word) (int, error) {
	if c.state != stateFinished {
		return 0, ErrEngineNotReady
	}
	return c.tc.IndexOf(w)
}

// WordOf returns the shortlex-least word reaching class index i. Requires
// Run to have completed.
func (c *Congruence) WordOf(i int) (alphabet.Word, error) {
	if c.state != stateFinished {
		return nil, ErrEngineNotReady
	}
	return c.tc.WordOf(i)
}

// Contains finishes the run if necessary, then reports whether u and v
// denote the same class.
func (c *Congruence) Contains(ctx context.Context, u, v alphabet.Word) (bool, error) {
	if c.state != stateFinished {
		if err := c.Run(ctx); err != nil {
			return false, err
		}
	}
	return c.tc.Contains(u, v)
}

// CurrentlyContains never finishes the run: it answers from whatever
// partial state the best-positioned engine currently holds, returning
// TrilUnknown if neither engine can yet say.
func (c *Congruence) CurrentlyContains(u, v alphabet.Word) Tril {
	if c.kb != nil {
		if t := c.kb.CurrentlyContains(u, v); t != TrilUnknown {
			return t
		}
	}
	return c.tc.CurrentlyContains(u, v)
}

// NormalForms returns every class's normal form, in active-node order.
// Requires Run to have completed.
func (c *Congruence) NormalForms() ([]alphabet.Word, error) {
	if c.state != stateFinished {
		return nil, ErrEngineNotReady
	}
	return c.tc.NormalForms()
}

// Reduce returns w's class's normal form: the shortlex-least word denoting
// the same class as w. Grounded on testable property 2 of spec.md §8
// ("reduce(reduce(u)) == reduce(u)" and "contains(u,v) iff reduce(u) ==
// reduce(v)"), which holds equally whether the normal form is read off a
// completed Knuth-Bendix rewriter or a completed Todd-Coxeter word graph;
// this facade prefers Knuth-Bendix's rewriter when one is confluent (it
// needs no index lookup), falling back to Todd-Coxeter's WordOf(IndexOf(w)).
func (c *Congruence) Reduce(w alphabet.Word) (alphabet.Word, error) {
	if c.kb != nil && c.kb.Confluent() {
		return c.kb.NormalForm(w), nil
	}
	if c.state != stateFinished {
		return nil, ErrEngineNotReady
	}
	i, err := c.tc.IndexOf(w)
	if err != nil {
		return nil, err
	}
	return c.tc.WordOf(i)
}

// NonTrivialClasses groups words by congruence class, discarding any class
// represented by at most one of the supplied words — spec.md §6's
// non_trivial_classes query, specialised from a lazy sequence to a slice
// since this port has no generator/iterator primitive to hand back.
// Requires Run to have completed.
func (c *Congruence) NonTrivialClasses(words []alphabet.Word) ([][]alphabet.Word, error) {
	if c.state != stateFinished {
		return nil, ErrEngineNotReady
	}
	byClass := make(map[int][]alphabet.Word)
	order := make([]int, 0)
	for _, w := range words {
		i, err := c.tc.IndexOf(w)
		if err != nil {
			return nil, err
		}
		if _, seen := byClass[i]; !seen {
			order = append(order, i)
		}
		byClass[i] = append(byClass[i], w)
	}
	var out [][]alphabet.Word
	for _, i := range order {
		if len(byClass[i]) > 1 {
			out = append(out, byClass[i])
		}
	}
	return out, nil
}
