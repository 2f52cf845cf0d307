package semigroups

import (
	"context"
	"testing"

	"github.com/gitrdm/gosemigroups/pkg/kernel"
	"github.com/stretchr/testify/require"
)

// The full transformation monoid of degree 3 is a classical worked example
// for Green's relations: three D-classes (one per rank 1, 2, 3), the
// rank-3 D-class is the symmetric group S_3 as a single H-class, and every
// D-class is regular (T_n is always a regular monoid).
func TestKoniecznyFullTransformationMonoidDegree3(t *testing.T) {
	k := NewKonieczny(fullTransformationMonoidDegree3Generators(), NewKoniecznyConfig())
	require.NoError(t, k.Run(context.Background()))

	n, err := k.NumberOfElements()
	require.NoError(t, err)
	require.Equal(t, 27, n)

	numD, err := k.NumberOfDClasses()
	require.NoError(t, err)
	require.Equal(t, 3, numD)

	numH, err := k.NumberOfHClasses()
	require.NoError(t, err)
	require.Equal(t, 13, numH)

	require.Len(t, k.Idempotents(), 10)
	require.Len(t, k.RegularDClasses(), 3)

	for i := 0; i < n; i++ {
		require.True(t, k.IsRegular(i), "the full transformation monoid is regular")
	}

	idx, found := k.fp.IndexOf(kernel.Identity(3))
	require.True(t, found)
	h := k.HClassOf(idx)
	require.Equal(t, 6, k.SchutzenbergerGroupSize(h))

	members, identity, ok := k.MaximalSubgroup(h)
	require.True(t, ok)
	require.Len(t, members, 6)
	require.Equal(t, idx, identity)
}

func TestKoniecznyNumberOfElementsBeforeRun(t *testing.T) {
	k := NewKonieczny(fullTransformationMonoidDegree3Generators(), NewKoniecznyConfig())
	_, err := k.NumberOfElements()
	require.ErrorIs(t, err, ErrEngineNotReady)
	_, err = k.NumberOfDClasses()
	require.ErrorIs(t, err, ErrEngineNotReady)
}
