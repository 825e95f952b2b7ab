package randomizer_test

import (
	"testing"

	"github.com/katalvlaran/symarch/bsgs"
	"github.com/katalvlaran/symarch/perm"
	"github.com/katalvlaran/symarch/randomizer"
	"github.com/stretchr/testify/require"
)

func symmetricGens(t *testing.T, n int) perm.Set {
	t.Helper()

	transposition, err := perm.NewFromCycles(n, [][]int{{1, 2}})
	require.NoError(t, err)

	pts := make([]int, n)
	for i := range pts {
		pts[i] = i + 1
	}
	cycle, err := perm.NewFromCycles(n, [][]int{pts})
	require.NoError(t, err)

	return perm.MustNewSet(transposition, cycle)
}

func alternatingGens(t *testing.T, n int) perm.Set {
	t.Helper()
	require.True(t, n%2 == 0, "this helper pairs a 3-cycle with an odd-length cycle")

	threeCycle, err := perm.NewFromCycles(n, [][]int{{1, 2, 3}})
	require.NoError(t, err)

	pts := make([]int, n-1)
	for i := range pts {
		pts[i] = i + 2
	}
	longCycle, err := perm.NewFromCycles(n, [][]int{pts})
	require.NoError(t, err)

	return perm.MustNewSet(threeCycle, longCycle)
}

func TestNewRejectsEmptyGenerators(t *testing.T) {
	t.Parallel()

	_, err := randomizer.New(perm.Set{})
	require.ErrorIs(t, err, randomizer.ErrEmptyGenerators)
}

func TestNextStaysInsideGeneratedGroup(t *testing.T) {
	t.Parallel()

	gens := symmetricGens(t, 5)
	chain, err := bsgs.Build(5, gens, &bsgs.Options{Construction: bsgs.SchreierSims})
	require.NoError(t, err)

	pr, err := randomizer.New(gens, randomizer.WithSeed(7))
	require.NoError(t, err)

	for i := 0; i < 50; i++ {
		require.True(t, chain.StripsCompletely(pr.Next()))
	}
}

func TestSymmetricRecognisesSymmetricGroup(t *testing.T) {
	t.Parallel()

	pr, err := randomizer.New(symmetricGens(t, 10), randomizer.WithSeed(1))
	require.NoError(t, err)
	require.True(t, pr.TestSymmetric(1e-6))
}

func TestSymmetricRejectsCyclicGroup(t *testing.T) {
	t.Parallel()

	pts := make([]int, 10)
	for i := range pts {
		pts[i] = i + 1
	}
	cycle, err := perm.NewFromCycles(10, [][]int{pts})
	require.NoError(t, err)

	pr, err := randomizer.New(perm.MustNewSet(cycle), randomizer.WithSeed(1))
	require.NoError(t, err)
	require.False(t, pr.TestSymmetric(1e-6))
}

func TestSymmetricRejectsAlternatingGroup(t *testing.T) {
	t.Parallel()

	// Every element of A_10 is even, so the odd-element witness the
	// symmetric test demands can never appear.
	pr, err := randomizer.New(alternatingGens(t, 10), randomizer.WithSeed(1))
	require.NoError(t, err)
	require.False(t, pr.TestSymmetric(1e-6))
}

func TestAlternatingRecognisesAlternatingGroup(t *testing.T) {
	t.Parallel()

	pr, err := randomizer.New(alternatingGens(t, 10), randomizer.WithSeed(1))
	require.NoError(t, err)
	require.True(t, pr.TestAlternating(1e-6))
}

func TestAlternatingRejectsOddGenerators(t *testing.T) {
	t.Parallel()

	// The 10-cycle is odd, so the group it generates cannot sit inside
	// A_10 and the test must reject.
	pts := make([]int, 10)
	for i := range pts {
		pts[i] = i + 1
	}
	cycle, err := perm.NewFromCycles(10, [][]int{pts})
	require.NoError(t, err)

	pr, err := randomizer.New(perm.MustNewSet(cycle), randomizer.WithSeed(1))
	require.NoError(t, err)
	require.False(t, pr.TestAlternating(1e-6))
}

func TestSmallDegreeNeverRecognised(t *testing.T) {
	t.Parallel()

	pr, err := randomizer.New(symmetricGens(t, 5), randomizer.WithSeed(1))
	require.NoError(t, err)
	require.False(t, pr.TestSymmetric(1e-6))
	require.False(t, pr.TestAlternating(1e-6))
}
