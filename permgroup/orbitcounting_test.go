package permgroup_test

import (
	"math/big"
	"testing"

	"github.com/katalvlaran/symarch/perm"
	"github.com/katalvlaran/symarch/permgroup"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestNumAutomorphismOrbitsSymmetric3(t *testing.T) {
	t.Parallel()

	g, err := permgroup.Symmetric(3)
	require.NoError(t, err)

	// Pairs over 3 points under S_3: the diagonal orbit and the
	// off-diagonal orbit.
	n, err := g.NumAutomorphismOrbits(2, false)
	require.NoError(t, err)
	require.Equal(t, big.NewInt(2), n)

	// Restricted to injective pairs, only the off-diagonal orbit remains.
	n, err = g.NumAutomorphismOrbits(2, true)
	require.NoError(t, err)
	require.Equal(t, big.NewInt(1), n)
}

func TestNumAutomorphismOrbitsCyclic4(t *testing.T) {
	t.Parallel()

	g, err := permgroup.Cyclic(4)
	require.NoError(t, err)

	// 16 pairs, each orbit of size 4 under the free rotation action.
	n, err := g.NumAutomorphismOrbits(2, false)
	require.NoError(t, err)
	require.Equal(t, big.NewInt(4), n)
}

func TestNumAutomorphismOrbitsDihedralRing(t *testing.T) {
	t.Parallel()

	// The 2x2 ring's automorphism group: pairs fall into the diagonal,
	// adjacent and opposite orbits.
	g, err := permgroup.Dihedral(4)
	require.NoError(t, err)

	n, err := g.NumAutomorphismOrbits(2, false)
	require.NoError(t, err)
	require.Equal(t, big.NewInt(3), n)
}

func TestNumAutomorphismOrbitsRejectsNonPositiveK(t *testing.T) {
	t.Parallel()

	g, err := permgroup.Cyclic(3)
	require.NoError(t, err)

	_, err = g.NumAutomorphismOrbits(0, false)
	require.ErrorIs(t, err, permgroup.ErrInvalidK)
}

func TestAutomorphismOrbitSizesProductGroup(t *testing.T) {
	t.Parallel()

	a, err := permgroup.Cyclic(2)
	require.NoError(t, err)
	b, err := permgroup.Cyclic(2)
	require.NoError(t, err)
	g, err := permgroup.DirectProduct([]*permgroup.Group{a, b})
	require.NoError(t, err)

	sizes, err := g.AutomorphismOrbitSizes(2, false, rand.New(rand.NewSource(5)))
	require.NoError(t, err)
	require.Equal(t, []int{2, 2, 2, 2, 4, 4}, sizes)
}

func TestAutomorphismOrbitSizesDegradesGracefully(t *testing.T) {
	t.Parallel()

	// The trivial group on 30 points has 30^8 singleton orbits of 8-task
	// mappings: far past the enumeration ceiling, so the analysis reports
	// "unavailable" rather than erroring or attempting it.
	g, err := permgroup.New(30, perm.Set{}, nil)
	require.NoError(t, err)

	sizes, err := g.AutomorphismOrbitSizes(8, false, nil)
	require.NoError(t, err)
	require.Nil(t, sizes)
}
