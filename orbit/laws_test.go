package orbit_test

import (
	"testing"

	"github.com/katalvlaran/symarch/orbit"
	"github.com/katalvlaran/symarch/perm"
	"github.com/katalvlaran/symarch/schreier"
	"github.com/stretchr/testify/require"
)

// Orbits are invariant under padding the generating set with the identity
// or closing it under inverses.
func TestGenerateInvariantUnderIdentityAndInverses(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		gens []perm.Permutation
	}{
		{"rotation", []perm.Permutation{perm.MustNew([]int{2, 3, 4, 1})}},
		{"two transpositions", []perm.Permutation{
			perm.MustNew([]int{2, 1, 3, 4}),
			perm.MustNew([]int{1, 2, 4, 3}),
		}},
		{"three cycle", []perm.Permutation{perm.MustNew([]int{2, 3, 1, 4})}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			plain := perm.MustNewSet(tt.gens...)

			withIdentity := plain.Clone()
			require.NoError(t, withIdentity.Insert(perm.Identity(4)))

			withInverses := plain.WithInverses()

			for x := 1; x <= 4; x++ {
				base := orbit.Generate(x, plain, nil)
				require.True(t, base.Equal(orbit.Generate(x, withIdentity, nil)))
				require.True(t, base.Equal(orbit.Generate(x, withInverses, nil)))
			}
		})
	}
}

func TestUpdateEqualsGenerateOverUnion(t *testing.T) {
	t.Parallel()

	old := perm.MustNewSet(perm.MustNew([]int{2, 1, 3, 4, 5, 6}))   // (1 2)
	fresh := perm.MustNewSet(perm.MustNew([]int{1, 3, 2, 4, 6, 5})) // (2 3)(5 6)
	union := perm.MustNewSet(append(old.Slice(), fresh.Slice()...)...)

	o := orbit.Generate(1, old, nil)
	o.Update(old, fresh, nil)

	require.True(t, o.Equal(orbit.Generate(1, union, nil)))
}

// Point 4 is only reachable by applying an old generator to a point the
// update itself discovered, so the Schreier structure must gain an edge for
// it just as a fresh Generate over the union would install one.
func TestUpdatePopulatesStructureViaOldGenerators(t *testing.T) {
	t.Parallel()

	for _, kind := range []schreier.Kind{schreier.Explicit, schreier.Tree} {
		kind := kind
		t.Run("", func(t *testing.T) {
			t.Parallel()

			old := perm.MustNewSet(
				perm.MustNew([]int{2, 1, 3, 4}), // (1 2)
				perm.MustNew([]int{1, 2, 4, 3}), // (3 4)
			)
			fresh := perm.MustNewSet(perm.MustNew([]int{1, 3, 2, 4})) // (2 3)

			st := schreier.New(kind, 1, 4)
			o := orbit.Generate(1, old, st)
			require.True(t, o.Equal(orbit.Of([]int{1, 2})))

			o.Update(old, fresh, st)
			require.True(t, o.Equal(orbit.Of([]int{1, 2, 3, 4})))

			for x := 1; x <= 4; x++ {
				require.True(t, st.Contains(x))
				require.Equal(t, x, st.Transversal(x).At(1))
			}
		})
	}
}
