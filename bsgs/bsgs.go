package bsgs

import (
	"math/big"

	"github.com/katalvlaran/symarch/orbit"
	"github.com/katalvlaran/symarch/perm"
	"github.com/katalvlaran/symarch/schreier"
	"golang.org/x/exp/rand"
)

// level is one entry of the stabiliser chain: base point b_i, the strong
// generators S_i fixing b_1..b_{i-1}, and the Schreier structure Sigma_i
// recording the orbit of b_i under S_i.
type level struct {
	point     int
	gens      perm.Set
	structure schreier.Structure
}

// BSGS is an immutable, queryable base-and-strong-generating-set chain.
type BSGS struct {
	degree           int
	base             []int
	strongGenerators perm.Set
	levels           []*level
	transversals     schreier.Kind
}

// Degree returns the size of the domain the chain acts on.
func (b *BSGS) Degree() int { return b.degree }

// Base returns a defensive copy of the ordered base points.
func (b *BSGS) Base() []int {
	cp := make([]int, len(b.base))
	copy(cp, b.base)
	return cp
}

// BaseSize returns k, the number of base points.
func (b *BSGS) BaseSize() int { return len(b.levels) }

// StrongGenerators returns the full strong generating set S.
func (b *BSGS) StrongGenerators() perm.Set { return b.strongGenerators.Clone() }

// StrongGeneratorsAt returns S_i, the strong generators fixing b_1..b_{i-1}.
func (b *BSGS) StrongGeneratorsAt(i int) perm.Set { return b.levels[i].gens.Clone() }

// OrbitAt returns Sigma_i's fundamental orbit, the orbit of b_i under S_i.
func (b *BSGS) OrbitAt(i int) orbit.Orbit { return orbit.Of(b.levels[i].structure.Nodes()) }

// Transversal returns the level-i transversal representative carrying b_i to
// x. Panics with schreier.ErrNotInOrbit if x is outside the level's orbit.
func (b *BSGS) Transversal(i, x int) perm.Permutation {
	return b.levels[i].structure.Transversal(x)
}

// Order returns |G|, the product of the fundamental orbit sizes, computed
// with arbitrary precision since base sizes grow combinatorially with
// degree.
func (b *BSGS) Order() *big.Int {
	order := big.NewInt(1)
	for _, lv := range b.levels {
		order.Mul(order, big.NewInt(int64(len(lv.structure.Nodes()))))
	}
	return order
}

// Strip runs Strip(p, 0): the full sifting of p through every level of the
// chain. It returns the residue left after peeling off one transversal
// element per level, and the 0-based index of the first level at which p's
// image left the level's orbit (or len(levels) if every level was
// consumed).
func (b *BSGS) Strip(p perm.Permutation) (perm.Permutation, int) {
	return b.StripFrom(p, 0)
}

// StripFrom runs Strip(p, offset): sifting starting at the given 0-based
// level instead of from the top of the chain.
func (b *BSGS) StripFrom(p perm.Permutation, offset int) (perm.Permutation, int) {
	return stripThrough(b.levels, p, offset)
}

// StripsCompletely reports whether p is a member of the group described by
// the chain: equivalently, whether Strip(p) fully consumes every level and
// leaves the identity as residue.
func (b *BSGS) StripsCompletely(p perm.Permutation) bool {
	residue, depth := b.Strip(p)
	return depth == len(b.levels) && residue.IsIdentity()
}

// Contains is an alias for StripsCompletely, read as group membership.
func (b *BSGS) Contains(p perm.Permutation) bool { return b.StripsCompletely(p) }

// RandomElement draws a uniformly random element of the described group by
// independently choosing a uniformly random transversal representative at
// each level and composing them, deepest level first.
func (b *BSGS) RandomElement(rng *rand.Rand) perm.Permutation {
	g := perm.Identity(b.degree)
	for i := 0; i < len(b.levels); i++ {
		nodes := b.levels[i].structure.Nodes()
		x := nodes[rng.Intn(len(nodes))]
		u := b.levels[i].structure.Transversal(x)
		g = u.Compose(g)
	}
	return g
}

// stripThrough sifts p through levels[offset:], peeling off one inverse
// transversal element per level as long as the current image stays within
// that level's orbit. It returns the residual permutation and the 0-based
// index of the level at which sifting stopped (len(levels) if every level
// from offset onward was consumed).
func stripThrough(levels []*level, p perm.Permutation, offset int) (perm.Permutation, int) {
	residue := p
	for i := offset; i < len(levels); i++ {
		beta := residue.At(levels[i].point)
		if !levels[i].structure.Contains(beta) {
			return residue, i
		}
		u := levels[i].structure.Transversal(beta)
		residue = residue.Compose(u.Inverse())
	}
	return residue, len(levels)
}
