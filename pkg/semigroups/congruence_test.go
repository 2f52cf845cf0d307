package semigroups

import (
	"context"
	"testing"

	"github.com/gitrdm/gosemigroups/pkg/alphabet"
	"github.com/stretchr/testify/require"
)

func TestCongruenceTwoGeneratorPresentationS1(t *testing.T) {
	a, err := alphabet.New("ab")
	require.NoError(t, err)
	p := NewPresentation(a)
	require.NoError(t, p.AddRule(mustWord(t, a, "aaa"), mustWord(t, a, "a")))
	require.NoError(t, p.AddRule(mustWord(t, a, "bbbb"), mustWord(t, a, "b")))
	require.NoError(t, p.AddRule(mustWord(t, a, "ababab"), mustWord(t, a, "aa")))

	c := NewCongruence(p, NewCongruenceConfig())
	require.NoError(t, c.Run(context.Background()))

	n, err := c.NumberOfClasses()
	require.NoError(t, err)
	require.Equal(t, Finite(27), n)
}

func TestCongruenceMonogenicLikeMonoidQuerySurface(t *testing.T) {
	a, p := buildS2Presentation(t)
	c := NewCongruence(p, NewCongruenceConfig())
	require.NoError(t, c.Run(context.Background()))

	n, err := c.NumberOfClasses()
	require.NoError(t, err)
	require.Equal(t, Finite(5), n)

	ok, err := c.Contains(context.Background(), mustWord(t, a, "000"), mustWord(t, a, "0"))
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = c.Contains(context.Background(), mustWord(t, a, "00"), mustWord(t, a, "01"))
	require.NoError(t, err)
	require.False(t, ok)

	r1, err := c.Reduce(mustWord(t, a, "000"))
	require.NoError(t, err)
	r2, err := c.Reduce(mustWord(t, a, "0"))
	require.NoError(t, err)
	require.Equal(t, r1, r2)

	classes, err := c.NonTrivialClasses([]alphabet.Word{mustWord(t, a, "000"), mustWord(t, a, "0"), mustWord(t, a, "1")})
	require.NoError(t, err)
	require.Len(t, classes, 1)
	require.Len(t, classes[0], 2)
}

func TestCongruenceNumberOfClassesBeforeRun(t *testing.T) {
	_, p := buildS2Presentation(t)
	c := NewCongruence(p, NewCongruenceConfig())
	_, err := c.NumberOfClasses()
	require.ErrorIs(t, err, ErrEngineNotReady)
}
