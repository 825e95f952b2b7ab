package perm_test

import (
	"testing"

	"github.com/katalvlaran/symarch/perm"
	"github.com/stretchr/testify/require"
)

func TestIdentity(t *testing.T) {
	t.Parallel()
	id := perm.Identity(5)
	require.True(t, id.IsIdentity())
	require.Equal(t, 5, id.Degree())
	require.Equal(t, "()", id.String())
}

func TestComposeAndInverse(t *testing.T) {
	t.Parallel()

	p := perm.MustNew([]int{2, 3, 1}) // (1 2 3)
	q := perm.MustNew([]int{1, 3, 2}) // (2 3)

	// (p.Compose(q))(i) = q(p(i))
	pq := p.Compose(q)
	require.Equal(t, 3, pq.At(1)) // q(p(1))=q(2)=3
	require.Equal(t, 2, pq.At(2)) // q(p(2))=q(3)=2
	require.Equal(t, 1, pq.At(3)) // q(p(3))=q(1)=1

	require.True(t, p.Compose(p.Inverse()).IsIdentity())
	require.True(t, p.Inverse().Compose(p).IsIdentity())
}

func TestCyclesCanonicalForm(t *testing.T) {
	t.Parallel()

	p, err := perm.NewFromCycles(5, [][]int{{1, 2, 3}, {4, 5}})
	require.NoError(t, err)
	require.Equal(t, "(1,2,3)(4,5)", p.String())
	require.Equal(t, [][]int{{1, 2, 3}, {4, 5}}, p.Cycles())
}

func TestEven(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		perm  perm.Permutation
		even  bool
	}{
		{"identity", perm.Identity(4), true},
		{"transposition", perm.MustNew([]int{2, 1, 3, 4}), false},
		{"3-cycle", perm.MustNew([]int{2, 3, 1, 4}), true},
		{"two disjoint transpositions", perm.MustNew([]int{2, 1, 4, 3}), true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.even, tt.perm.Even())
		})
	}
}

func TestShiftedAndExtended(t *testing.T) {
	t.Parallel()

	p := perm.MustNew([]int{2, 1}) // (1 2) on {1,2}
	shifted := p.Shifted(3)        // now acts on {4,5} within degree 5
	require.Equal(t, 5, shifted.Degree())
	require.Equal(t, 1, shifted.At(1))
	require.Equal(t, 2, shifted.At(2))
	require.Equal(t, 3, shifted.At(3))
	require.Equal(t, 5, shifted.At(4))
	require.Equal(t, 4, shifted.At(5))

	extended := p.Extended(4)
	require.Equal(t, 4, extended.Degree())
	require.Equal(t, 3, extended.At(3))
	require.Equal(t, 4, extended.At(4))
}

func TestInvalidImageRejected(t *testing.T) {
	t.Parallel()
	_, err := perm.New([]int{1, 1})
	require.ErrorIs(t, err, perm.ErrInvalidImage)
}
