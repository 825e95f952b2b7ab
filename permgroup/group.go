package permgroup

import (
	"math/big"

	"github.com/katalvlaran/symarch/bsgs"
	"github.com/katalvlaran/symarch/orbit"
	"github.com/katalvlaran/symarch/perm"
	"golang.org/x/exp/rand"
)

// Group is a permutation group presented by a generating set and backed by
// a BSGS chain for order, membership and random/exhaustive element queries.
type Group struct {
	degree     int
	chain      *bsgs.BSGS
	generators perm.Set
}

// New builds a Group acting on {1..degree} generated by generators, using
// opts (or bsgs.DefaultOptions if nil) to construct the underlying chain.
func New(degree int, generators perm.Set, opts *bsgs.Options) (*Group, error) {
	if !generators.Trivial() && generators.Degree() != degree {
		return nil, ErrDegreeMismatch
	}
	chain, err := bsgs.Build(degree, generators, opts)
	if err != nil {
		return nil, err
	}
	return &Group{degree: degree, chain: chain, generators: generators.Clone()}, nil
}

// FromChain wraps an already-built BSGS chain, pairing it with the
// generating set it was built from.
func FromChain(chain *bsgs.BSGS, generators perm.Set) *Group {
	return &Group{degree: chain.Degree(), chain: chain, generators: generators.Clone()}
}

// Degree returns the size of the domain the group acts on.
func (g *Group) Degree() int { return g.degree }

// BSGS returns the group's underlying chain.
func (g *Group) BSGS() *bsgs.BSGS { return g.chain }

// Generators returns a defensive copy of the group's generating set.
func (g *Group) Generators() perm.Set { return g.generators.Clone() }

// Order returns |G|.
func (g *Group) Order() *big.Int { return g.chain.Order() }

// Trivial reports whether G is the trivial (order-1) group.
func (g *Group) Trivial() bool { return g.chain.BaseSize() == 0 }

// ContainsElement reports whether p is a member of G.
func (g *Group) ContainsElement(p perm.Permutation) bool { return g.chain.StripsCompletely(p) }

// RandomElement draws a uniformly random element of G.
func (g *Group) RandomElement(rng *rand.Rand) perm.Permutation { return g.chain.RandomElement(rng) }

// IsTransitive reports whether G has a single orbit covering the whole
// domain.
func (g *Group) IsTransitive() bool {
	if g.degree <= 1 {
		return true
	}
	if g.generators.Trivial() {
		return g.degree == 1
	}
	return orbit.Generate(1, g.generators, nil).Len() == g.degree
}

// Orbits returns the partition of the domain into orbits under G.
func (g *Group) Orbits() *orbit.Partition {
	return orbit.FromGenerators(g.degree, g.generators)
}

// IsSymmetric reports whether |G| == n!.
func (g *Group) IsSymmetric() bool {
	return g.Order().Cmp(factorial(g.degree)) == 0
}

// SymmetricWindow reports whether g acts as the full symmetric group on a
// contiguous window [smp, lmp] of its domain while fixing every point
// outside it, returning the window bounds when it does. A group for which
// this holds admits O(mapping-length) task-mapping canonicalisation by
// first-occurrence renaming of the window's points.
func (g *Group) SymmetricWindow() (smp, lmp int, ok bool) {
	if g.generators.Trivial() {
		return 0, 0, false
	}

	smp = g.generators.SmallestMovedPoint()
	lmp = g.generators.LargestMovedPoint()
	width := lmp - smp + 1
	if width < 2 {
		return 0, 0, false
	}
	// Support of exactly `width` points between smp and lmp means the moved
	// points form the contiguous window; the order check then pins the
	// action on that window to the full symmetric group.
	if len(g.generators.Support()) != width {
		return 0, 0, false
	}
	if g.Order().Cmp(factorial(width)) != 0 {
		return 0, 0, false
	}
	return smp, lmp, true
}

// IsAlternating reports whether |G| == n!/2.
func (g *Group) IsAlternating() bool {
	if g.degree < 2 {
		return false
	}
	half := new(big.Int).Div(factorial(g.degree), big.NewInt(2))
	return g.Order().Cmp(half) == 0
}

func factorial(n int) *big.Int {
	f := big.NewInt(1)
	for i := 2; i <= n; i++ {
		f.Mul(f, big.NewInt(int64(i)))
	}
	return f
}
