package taskmapping_test

import (
	"testing"

	"github.com/katalvlaran/symarch/permgroup"
	"github.com/katalvlaran/symarch/taskmapping"
	"github.com/stretchr/testify/require"
)

func TestRepresentativeOrbitsMatchesIterate(t *testing.T) {
	t.Parallel()

	group, err := permgroup.Dihedral(4)
	require.NoError(t, err)

	mapping := taskmapping.Mapping{1, 2, 1, 3}

	orbitsC := taskmapping.NewCanonicaliser(group, taskmapping.ReprOptions{Method: taskmapping.Orbits}, nil)
	orbitsRepr, _, _, err := orbitsC.Representative(mapping)
	require.NoError(t, err)

	iterC := taskmapping.NewCanonicaliser(group, taskmapping.ReprOptions{Method: taskmapping.Iterate}, nil)
	iterRepr, _, _, err := iterC.Representative(mapping)
	require.NoError(t, err)

	require.True(t, orbitsRepr.Equal(iterRepr))
}

func TestRepresentativeCachesOrbit(t *testing.T) {
	t.Parallel()

	group, err := permgroup.Cyclic(4)
	require.NoError(t, err)

	reps := taskmapping.NewRepresentatives()
	c := taskmapping.NewCanonicaliser(group, taskmapping.DefaultReprOptions(), reps)

	mapping := taskmapping.Mapping{1, 2, 3, 4}
	rotated := mapping.Permuted(group.Generators().Slice()[0])

	_, id1, isNew1, err := c.Representative(mapping)
	require.NoError(t, err)
	require.True(t, isNew1)

	_, id2, isNew2, err := c.Representative(rotated)
	require.NoError(t, err)
	require.False(t, isNew2)
	require.Equal(t, id1, id2)
}

func TestSymmetricShortcut(t *testing.T) {
	t.Parallel()

	group, err := permgroup.Symmetric(4)
	require.NoError(t, err)

	c := taskmapping.NewCanonicaliser(group, taskmapping.ReprOptions{Symmetric: true}, nil)

	a := taskmapping.Mapping{3, 1, 3, 2}
	b := taskmapping.Mapping{4, 2, 4, 1} // same equivalence class under relabelling

	reprA, _, _, err := c.Representative(a)
	require.NoError(t, err)
	reprB, _, _, err := c.Representative(b)
	require.NoError(t, err)

	require.True(t, reprA.Equal(reprB))
	require.Equal(t, taskmapping.Mapping{1, 2, 1, 3}, reprA)
}

func TestLocalSearchFindsNoWorseThanStart(t *testing.T) {
	t.Parallel()

	group, err := permgroup.Dihedral(5)
	require.NoError(t, err)

	mapping := taskmapping.Mapping{5, 4, 3, 2, 1}
	c := taskmapping.NewCanonicaliser(group, taskmapping.ReprOptions{Method: taskmapping.LocalSearch}, nil)

	repr, _, _, err := c.Representative(mapping)
	require.NoError(t, err)
	require.False(t, mapping.Less(repr))
}
