package perm_test

import (
	"testing"

	"github.com/katalvlaran/symarch/perm"
	"github.com/stretchr/testify/require"
)

func TestComposeAssociativity(t *testing.T) {
	t.Parallel()

	p := perm.MustNew([]int{2, 3, 1, 4, 5})
	q := perm.MustNew([]int{1, 3, 2, 5, 4})
	r := perm.MustNew([]int{5, 4, 3, 2, 1})

	left := p.Compose(q).Compose(r)
	right := p.Compose(q.Compose(r))
	require.True(t, left.Equal(right))
}

func TestIdentityIsNeutral(t *testing.T) {
	t.Parallel()

	p := perm.MustNew([]int{3, 1, 2, 5, 4})
	id := perm.Identity(5)
	require.True(t, p.Compose(id).Equal(p))
	require.True(t, id.Compose(p).Equal(p))
}

func TestDoubleInverse(t *testing.T) {
	t.Parallel()

	p := perm.MustNew([]int{4, 1, 3, 5, 2})
	require.True(t, p.Inverse().Inverse().Equal(p))
}

func TestExtendedPreservesBehaviourOnOriginalDomain(t *testing.T) {
	t.Parallel()

	p := perm.MustNew([]int{2, 3, 1})
	ext := p.Extended(6)
	for x := 1; x <= 3; x++ {
		require.Equal(t, p.At(x), ext.At(x))
	}
	for x := 4; x <= 6; x++ {
		require.Equal(t, x, ext.At(x))
	}
}

func TestStabilizes(t *testing.T) {
	t.Parallel()

	p, err := perm.NewFromCycles(5, [][]int{{2, 4}})
	require.NoError(t, err)
	require.True(t, p.Stabilizes(1, 3, 5))
	require.False(t, p.Stabilizes(1, 2))
	require.True(t, p.Stabilizes())
}

func TestRestrictedKeepsOnlyFullyContainedCycles(t *testing.T) {
	t.Parallel()

	// (1 2 3)(4 5): restricting to {4,5} drops the 3-cycle and keeps the
	// transposition; restricting to {1,2} drops everything.
	p, err := perm.NewFromCycles(5, [][]int{{1, 2, 3}, {4, 5}})
	require.NoError(t, err)

	kept := p.Restricted([]int{4, 5})
	require.Equal(t, 5, kept.Degree())
	require.Equal(t, "(4,5)", kept.String())

	dropped := p.Restricted([]int{1, 2})
	require.True(t, dropped.IsIdentity())
}

func TestNewFromCyclesRejectsDuplicatePoints(t *testing.T) {
	t.Parallel()

	_, err := perm.NewFromCycles(4, [][]int{{1, 2}, {2, 3}})
	require.ErrorIs(t, err, perm.ErrInvalidCycle)
}
