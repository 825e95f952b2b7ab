package permgroup_test

import (
	"math/big"
	"testing"

	"github.com/katalvlaran/symarch/permgroup"
	"github.com/stretchr/testify/require"
)

func TestSymmetricOrder(t *testing.T) {
	t.Parallel()

	for n := 2; n <= 6; n++ {
		n := n
		t.Run("", func(t *testing.T) {
			t.Parallel()
			g, err := permgroup.Symmetric(n)
			require.NoError(t, err)
			require.True(t, g.IsSymmetric())
			require.True(t, g.IsTransitive())
		})
	}
}

func TestCyclicOrder(t *testing.T) {
	t.Parallel()

	g, err := permgroup.Cyclic(6)
	require.NoError(t, err)
	require.Equal(t, big.NewInt(6), g.Order())
	require.True(t, g.IsTransitive())
}

func TestDihedralOrder(t *testing.T) {
	t.Parallel()

	g, err := permgroup.Dihedral(5)
	require.NoError(t, err)
	require.Equal(t, big.NewInt(10), g.Order())
}

func TestAlternatingOrder(t *testing.T) {
	t.Parallel()

	for n := 3; n <= 6; n++ {
		n := n
		t.Run("", func(t *testing.T) {
			t.Parallel()
			g, err := permgroup.Alternating(n)
			require.NoError(t, err)
			require.True(t, g.IsAlternating())
		})
	}
}

func TestDirectProductOrder(t *testing.T) {
	t.Parallel()

	a, err := permgroup.Cyclic(2)
	require.NoError(t, err)
	b, err := permgroup.Cyclic(3)
	require.NoError(t, err)

	prod, err := permgroup.DirectProduct([]*permgroup.Group{a, b})
	require.NoError(t, err)
	require.Equal(t, 5, prod.Degree())
	require.Equal(t, big.NewInt(6), prod.Order())
}

func TestWreathProductOrder(t *testing.T) {
	t.Parallel()

	base, err := permgroup.Cyclic(2)
	require.NoError(t, err)
	top, err := permgroup.Cyclic(2)
	require.NoError(t, err)

	wreath, err := permgroup.WreathProduct(base, top)
	require.NoError(t, err)
	require.Equal(t, 4, wreath.Degree())
	// |base|^|top| * |top| = 2^2 * 2 = 8
	require.Equal(t, big.NewInt(8), wreath.Order())
}

func TestElementsEnumeratesFullOrder(t *testing.T) {
	t.Parallel()

	g, err := permgroup.Cyclic(4)
	require.NoError(t, err)

	count := 0
	it := g.Elements()
	for _, ok := it.Next(); ok; _, ok = it.Next() {
		count++
	}
	require.Equal(t, 4, count)
}
