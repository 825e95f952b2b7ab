package orbit_test

import (
	"testing"

	"github.com/katalvlaran/symarch/orbit"
	"github.com/katalvlaran/symarch/perm"
	"github.com/stretchr/testify/require"
)

func TestFromGeneratorsPartitionsDomain(t *testing.T) {
	t.Parallel()

	// (1 2) and (4 5) on a degree-5 domain: orbits {1,2}, {3}, {4,5}.
	a := perm.MustNew([]int{2, 1, 3, 4, 5})
	b := perm.MustNew([]int{1, 2, 3, 5, 4})
	p := orbit.FromGenerators(5, perm.MustNewSet(a, b))

	require.Equal(t, 3, p.NumPartitions())
	require.Equal(t, p.PartitionIndex(1), p.PartitionIndex(2))
	require.Equal(t, p.PartitionIndex(4), p.PartitionIndex(5))
	require.NotEqual(t, p.PartitionIndex(1), p.PartitionIndex(3))
	require.NotEqual(t, p.PartitionIndex(3), p.PartitionIndex(4))

	// Every point of the domain is covered by exactly one orbit.
	covered := 0
	for i := 0; i < p.NumPartitions(); i++ {
		covered += p.At(i).Len()
	}
	require.Equal(t, 5, covered)
}

func TestRemoveAndChangePartition(t *testing.T) {
	t.Parallel()

	p := orbit.NewTrivialPartition(4)
	require.Equal(t, 4, p.NumPartitions())

	p.RemoveFromPartition(3)
	require.Equal(t, -1, p.PartitionIndex(3))

	p.ChangePartition(3, p.PartitionIndex(1))
	require.Equal(t, p.PartitionIndex(1), p.PartitionIndex(3))
	require.Equal(t, 2, p.At(p.PartitionIndex(1)).Len())
}

func TestSplitRefinesAgainstFinerPartition(t *testing.T) {
	t.Parallel()

	// One coarse orbit {1,2,3,4} split by the partition {1,2} | {3,4}
	// yields two cells.
	coarse := orbit.NewPartition(4, []orbit.Orbit{orbit.Of([]int{1, 2, 3, 4})})

	a := perm.MustNew([]int{2, 1, 3, 4})
	b := perm.MustNew([]int{1, 2, 4, 3})
	fine := orbit.FromGenerators(4, perm.MustNewSet(a, b))

	cells := coarse.Split(fine)
	require.Len(t, cells, 2)
	require.Equal(t, 1, cells[0].NumPartitions())
	require.Equal(t, 2, cells[0].At(0).Len())
	require.Equal(t, 2, cells[1].At(0).Len())
}
