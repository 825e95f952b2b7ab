package taskmapping_test

import (
	"strconv"
	"strings"
	"testing"

	"github.com/katalvlaran/symarch/perm"
	"github.com/katalvlaran/symarch/permgroup"
	"github.com/katalvlaran/symarch/taskmapping"
	"github.com/stretchr/testify/require"
)

// mappingFromKey reverses Mapping.Key, reconstructing the mapping a ground
// truth orbit set recorded under that key.
func mappingFromKey(t *testing.T, key string) taskmapping.Mapping {
	t.Helper()

	parts := strings.Split(key, ",")
	m := make(taskmapping.Mapping, len(parts))
	for i, p := range parts {
		v, err := strconv.Atoi(p)
		require.NoError(t, err)
		m[i] = v
	}
	return m
}

// groundTruthOrbit enumerates mapping's full orbit under the group by BFS
// over the generators closed under inverses, returning every member and
// the lexicographic minimum: the reference the exact canonicalisation
// methods are checked against.
func groundTruthOrbit(group *permgroup.Group, mapping taskmapping.Mapping) (map[string]bool, taskmapping.Mapping) {
	moves := group.Generators().WithInverses().Slice()

	seen := map[string]bool{mapping.Key(): true}
	queue := []taskmapping.Mapping{mapping}
	best := mapping

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, g := range moves {
			next := cur.Permuted(g)
			if seen[next.Key()] {
				continue
			}
			seen[next.Key()] = true
			queue = append(queue, next)
			if next.Less(best) {
				best = next
			}
		}
	}
	return seen, best
}

func TestExactMethodsReturnOrbitMinimum(t *testing.T) {
	t.Parallel()

	groups := map[string]func() (*permgroup.Group, error){
		"dihedral4": func() (*permgroup.Group, error) { return permgroup.Dihedral(4) },
		"cyclic5":   func() (*permgroup.Group, error) { return permgroup.Cyclic(5) },
		"symmetric3 extended": func() (*permgroup.Group, error) {
			s, err := permgroup.Symmetric(3)
			if err != nil {
				return nil, err
			}
			c, err := permgroup.Cyclic(2)
			if err != nil {
				return nil, err
			}
			return permgroup.DirectProduct([]*permgroup.Group{s, c})
		},
	}
	mappings := []taskmapping.Mapping{
		{1, 1}, {1, 2}, {2, 4, 2}, {3, 1, 4}, {4, 3, 2, 1},
	}

	for name, build := range groups {
		name, build := name, build
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			group, err := build()
			require.NoError(t, err)

			for _, m := range mappings {
				valid := true
				for _, v := range m {
					if v > group.Degree() {
						valid = false
					}
				}
				if !valid {
					continue
				}

				orbit, want := groundTruthOrbit(group, m)

				for _, method := range []taskmapping.Method{taskmapping.Iterate, taskmapping.Orbits} {
					c := taskmapping.NewCanonicaliser(group, taskmapping.ReprOptions{Method: method}, nil)
					got, _, _, err := c.Representative(m)
					require.NoError(t, err)
					require.True(t, got.Equal(want), "method %d on %v: got %v want %v", method, m, got, want)
					require.True(t, orbit[got.Key()])
				}
			}
		})
	}
}

func TestLocalSearchStaysInOrbit(t *testing.T) {
	t.Parallel()

	group, err := permgroup.Dihedral(5)
	require.NoError(t, err)

	mappings := []taskmapping.Mapping{{5, 4}, {2, 5, 3}, {1, 1, 4, 4}}
	variants := []taskmapping.Variant{taskmapping.BFS, taskmapping.DFS}

	for _, m := range mappings {
		orbit, _ := groundTruthOrbit(group, m)
		for _, variant := range variants {
			c := taskmapping.NewCanonicaliser(group, taskmapping.ReprOptions{
				Method:              taskmapping.LocalSearch,
				Variant:             variant,
				AugmentWithInverses: true,
			}, nil)
			got, _, _, err := c.Representative(m)
			require.NoError(t, err)
			require.True(t, orbit[got.Key()], "local search left the orbit of %v", m)
			require.False(t, m.Less(got), "local search made %v worse: %v", m, got)
		}
	}
}

func TestSimulatedAnnealingReturnsOrbitMember(t *testing.T) {
	t.Parallel()

	group, err := permgroup.Dihedral(4)
	require.NoError(t, err)

	m := taskmapping.Mapping{3, 4, 2}
	orbit, _ := groundTruthOrbit(group, m)

	c := taskmapping.NewCanonicaliser(group, taskmapping.ReprOptions{
		Method:  taskmapping.LocalSearchSA,
		RNGSeed: 11,
	}, nil)
	got, _, _, err := c.Representative(m)
	require.NoError(t, err)
	require.Len(t, got, len(m))
	require.True(t, orbit[got.Key()], "annealing left the orbit of %v", m)
}

func TestRepresentativeConstantOnOrbit(t *testing.T) {
	t.Parallel()

	group, err := permgroup.Dihedral(4)
	require.NoError(t, err)

	m := taskmapping.Mapping{2, 3}
	orbit, want := groundTruthOrbit(group, m)

	c := taskmapping.NewCanonicaliser(group, taskmapping.ReprOptions{Method: taskmapping.Orbits}, nil)
	for key := range orbit {
		member := mappingFromKey(t, key)
		got, _, _, err := c.Representative(member)
		require.NoError(t, err)
		require.True(t, got.Equal(want), "member %v canonicalised to %v, want %v", member, got, want)
	}
}

func TestRepresentativeIdempotent(t *testing.T) {
	t.Parallel()

	group, err := permgroup.Dihedral(4)
	require.NoError(t, err)

	for _, method := range []taskmapping.Method{taskmapping.Iterate, taskmapping.Orbits} {
		c := taskmapping.NewCanonicaliser(group, taskmapping.ReprOptions{Method: method}, nil)
		first, _, _, err := c.Representative(taskmapping.Mapping{4, 2, 3})
		require.NoError(t, err)
		second, _, _, err := c.Representative(first)
		require.NoError(t, err)
		require.True(t, first.Equal(second))
	}
}

func TestRepresentativeWithOffset(t *testing.T) {
	t.Parallel()

	// C_2 acting on PE indices {3,4} of a larger architecture: offset 2.
	group, err := permgroup.Cyclic(2)
	require.NoError(t, err)

	c := taskmapping.NewCanonicaliser(group, taskmapping.ReprOptions{Method: taskmapping.Orbits, Offset: 2}, nil)

	got, _, _, err := c.Representative(taskmapping.Mapping{4, 3})
	require.NoError(t, err)
	require.Equal(t, taskmapping.Mapping{3, 4}, got)

	// Indices outside the shifted window are rejected.
	_, _, _, err = c.Representative(taskmapping.Mapping{1, 3})
	require.ErrorIs(t, err, taskmapping.ErrPEOutOfRange)
}

func TestMatchShortCircuitsOnKnownRepresentative(t *testing.T) {
	t.Parallel()

	group, err := permgroup.Cyclic(4)
	require.NoError(t, err)

	reps := taskmapping.NewRepresentatives()
	seed := taskmapping.NewCanonicaliser(group, taskmapping.ReprOptions{Method: taskmapping.Orbits}, reps)
	canonical, id, isNew, err := seed.Representative(taskmapping.Mapping{2, 3})
	require.NoError(t, err)
	require.True(t, isNew)

	matcher := taskmapping.NewCanonicaliser(group, taskmapping.ReprOptions{Method: taskmapping.Orbits, Match: true}, reps)
	got, gotID, gotNew, err := matcher.Representative(canonical)
	require.NoError(t, err)
	require.True(t, got.Equal(canonical))
	require.Equal(t, id, gotID)
	require.False(t, gotNew)
}

func TestSymmetricWindowShortcutAgreesWithOrbits(t *testing.T) {
	t.Parallel()

	// S_3 acting on the window {3,4,5} of a degree-5 domain.
	s, err := permgroup.Symmetric(3)
	require.NoError(t, err)
	pad, err := permgroup.New(2, perm.Set{}, nil)
	require.NoError(t, err)
	group, err := permgroup.DirectProduct([]*permgroup.Group{pad, s})
	require.NoError(t, err)

	m := taskmapping.Mapping{4, 5, 4, 3}

	shortcut := taskmapping.NewCanonicaliser(group, taskmapping.ReprOptions{Symmetric: true}, nil)
	fast, _, _, err := shortcut.Representative(m)
	require.NoError(t, err)

	exact := taskmapping.NewCanonicaliser(group, taskmapping.ReprOptions{Method: taskmapping.Orbits}, nil)
	want, _, _, err := exact.Representative(m)
	require.NoError(t, err)

	require.True(t, fast.Equal(want))
	require.Equal(t, taskmapping.Mapping{3, 4, 3, 5}, fast)
}

func TestSymmetricShortcutOnFullGroup(t *testing.T) {
	t.Parallel()

	group, err := permgroup.Symmetric(5)
	require.NoError(t, err)

	c := taskmapping.NewCanonicaliser(group, taskmapping.ReprOptions{Symmetric: true}, nil)
	got, _, _, err := c.Representative(taskmapping.Mapping{3, 5, 3, 1})
	require.NoError(t, err)
	require.Equal(t, taskmapping.Mapping{1, 2, 1, 3}, got)
}

func TestUnknownMethodRejected(t *testing.T) {
	t.Parallel()

	group, err := permgroup.Cyclic(3)
	require.NoError(t, err)

	c := taskmapping.NewCanonicaliser(group, taskmapping.ReprOptions{Method: taskmapping.Method(99)}, nil)
	_, _, _, err = c.Representative(taskmapping.Mapping{1, 2})
	require.ErrorIs(t, err, taskmapping.ErrUnknownMethod)
}

func TestAppendRandomGeneratorsKeepsOrbitsExact(t *testing.T) {
	t.Parallel()

	group, err := permgroup.Dihedral(5)
	require.NoError(t, err)

	m := taskmapping.Mapping{5, 2, 4}
	_, want := groundTruthOrbit(group, m)

	c := taskmapping.NewCanonicaliser(group, taskmapping.ReprOptions{
		Method:                 taskmapping.Orbits,
		AppendRandomGenerators: 3,
		RNGSeed:                9,
	}, nil)
	got, _, _, err := c.Representative(m)
	require.NoError(t, err)
	require.True(t, got.Equal(want))
}
