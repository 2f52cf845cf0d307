package semigroups

import (
	"context"
	"testing"

	"github.com/gitrdm/gosemigroups/pkg/alphabet"
	"github.com/stretchr/testify/require"
)

func newKBOverS2(t *testing.T, backend RewriterBackend) *KnuthBendix {
	t.Helper()
	a, err := alphabet.New("01")
	require.NoError(t, err)
	p := NewPresentation(a)
	u1, _ := a.ParseWord("000")
	v1, _ := a.ParseWord("0")
	require.NoError(t, p.AddRule(u1, v1))
	u2, _ := a.ParseWord("0")
	v2, _ := a.ParseWord("11")
	require.NoError(t, p.AddRule(u2, v2))
	cfg := NewKnuthBendixConfig()
	cfg.RewriterBackend = backend
	return NewKnuthBendix(p, cfg)
}

func TestKnuthBendixS2BothBackendsConfluent(t *testing.T) {
	for _, backend := range []RewriterBackend{BackendList, BackendTrie} {
		kb := newKBOverS2(t, backend)
		require.NoError(t, kb.Run(context.Background()))
		require.True(t, kb.Confluent())

		a := kb.pres.Alphabet
		for _, nf := range []string{"0", "1", "00", "01", "001"} {
			w, _ := a.ParseWord(nf)
			got := a.String(kb.NormalForm(w))
			require.Equalf(t, nf, got, "normal form of %s should be itself", nf)
		}

		w000, _ := a.ParseWord("000")
		w11, _ := a.ParseWord("11")
		w0, _ := a.ParseWord("0")
		ok, err := kb.Contains(w000, w0)
		require.NoError(t, err)
		require.True(t, ok)
		ok, err = kb.Contains(w11, w0)
		require.NoError(t, err)
		require.True(t, ok)

		w00, _ := a.ParseWord("00")
		w01, _ := a.ParseWord("01")
		ok, err = kb.Contains(w00, w01)
		require.NoError(t, err)
		require.False(t, ok)
	}
}

func TestKnuthBendixCurrentlyContainsBeforeRun(t *testing.T) {
	kb := newKBOverS2(t, BackendList)
	a := kb.pres.Alphabet
	w000, _ := a.ParseWord("000")
	w0, _ := a.ParseWord("0")
	// Before Run, the seed rules still sit on the pending queue (never
	// processed into the active set), so reduction is a no-op and the
	// word problem for this pair is genuinely undecided yet.
	require.Equal(t, TrilUnknown, kb.CurrentlyContains(w000, w0))

	_, err := kb.Contains(w000, w0)
	require.ErrorIs(t, err, ErrEngineNotReady)
}

func TestKnuthBendixObviouslyInfinite(t *testing.T) {
	a, err := alphabet.New("x")
	require.NoError(t, err)
	freeMonoid := NewPresentation(a)
	kb := NewKnuthBendix(freeMonoid, NewKnuthBendixConfig())
	require.True(t, kb.ObviouslyInfinite(), "a free monoid on one generator is infinite")

	ab, err := alphabet.New("ab")
	require.NoError(t, err)
	commutative := NewPresentation(ab)
	u, _ := ab.ParseWord("ab")
	v, _ := ab.ParseWord("ba")
	require.NoError(t, commutative.AddRule(u, v))
	kb2 := NewKnuthBendix(commutative, NewKnuthBendixConfig())
	require.True(t, kb2.ObviouslyInfinite(), "the free commutative semigroup on two generators is infinite")
}

func TestKnuthBendixNotObviouslyInfiniteWhenRankFull(t *testing.T) {
	a, err := alphabet.New("x")
	require.NoError(t, err)
	p := NewPresentation(a)
	u, _ := a.ParseWord("xx")
	v, _ := a.ParseWord("")
	p.ContainsEmptyWord = true
	require.NoError(t, p.AddRule(u, v))
	kb := NewKnuthBendix(p, NewKnuthBendixConfig())
	require.False(t, kb.ObviouslyInfinite())
}
