package permgroup

import (
	"math/big"
	"sort"

	"github.com/katalvlaran/symarch/orbit"
	"github.com/katalvlaran/symarch/perm"
)

// DisjointDecomposition splits g into its orbit constituents: for each
// orbit of g's action on its domain, the subgroup generated by every
// generator's restriction to that orbit. This recovers the direct-product
// structure of groups assembled via DirectProduct (and, for any other
// intransitive group, the coarsest decomposition the orbits alone reveal).
// When complete is true, the constituents are returned only if the product
// of their orders equals |g| (otherwise g itself is the single factor); the
// generators themselves are not compared. When false, the orbit-restricted
// constituents are returned unconditionally.
func (g *Group) DisjointDecomposition(complete bool) []*Group {
	partition := g.Orbits()
	if partition.NumPartitions() <= 1 {
		return []*Group{g}
	}

	factors := make([]*Group, 0, partition.NumPartitions())
	for i := 0; i < partition.NumPartitions(); i++ {
		o := partition.At(i)
		points := o.Slice()

		var restricted perm.Set
		for _, gen := range g.generators.Slice() {
			_ = restricted.Insert(gen.Restricted(points))
		}
		restricted.MinimizeDegree()

		factor, err := New(restricted.Degree(), restricted, nil)
		if err != nil {
			continue
		}
		factors = append(factors, factor)
	}

	if complete && !decompositionReproduces(g, factors) {
		return []*Group{g}
	}
	return factors
}

// decompositionReproduces reports whether |g| equals the product of the
// factor orders, the basic necessary condition for the orbit restriction to
// actually be a direct-product decomposition rather than a mere subgroup of
// one.
func decompositionReproduces(g *Group, factors []*Group) bool {
	product := new(big.Int).Set(factors[0].Order())
	for _, f := range factors[1:] {
		product.Mul(product, f.Order())
	}
	return product.Cmp(g.Order()) == 0
}

// WreathDecomposition attempts to recognise g as a wreath product base wr
// top: it finds a minimal non-trivial block system, reads a base candidate
// off the generators fixing every block setwise (restricted to the first
// block, renumbered by block position) and a top candidate off the
// generators permuting whole blocks, then verifies the factorisation by the
// order identity |base|^numBlocks * |top| == |g|. It reports ok=false when
// no decomposition is evident from the generators; this is a structural
// heuristic, not an exhaustive search over all possible block sizes and
// base/top factorisations.
func (g *Group) WreathDecomposition() (base, top *Group, ok bool) {
	blocks := minimalNonTrivialBlockSystem(g)
	if blocks == nil {
		return nil, nil, false
	}

	numBlocks := len(blocks)
	blockSize := len(blocks[0])

	posOf := make(map[int]int, blockSize)
	for i, x := range blocks[0] {
		posOf[x] = i + 1
	}

	var baseGens perm.Set
	var topGens perm.Set
	for _, gen := range g.generators.Slice() {
		if fixesBlocksSetwise(gen, blocks) {
			img := make([]int, blockSize)
			for i, x := range blocks[0] {
				img[i] = posOf[gen.At(x)]
			}
			restricted, err := perm.New(img)
			if err != nil {
				return nil, nil, false
			}
			_ = baseGens.Insert(restricted)
		} else if permutesBlocks(gen, blocks) {
			img := make([]int, numBlocks)
			for i, blk := range blocks {
				dest := gen.At(blk[0])
				for j, other := range blocks {
					if containsInt(other, dest) {
						img[i] = j + 1
						break
					}
				}
			}
			blockPerm, err := perm.New(img)
			if err != nil {
				return nil, nil, false
			}
			_ = topGens.Insert(blockPerm)
		}
	}

	baseGroup, err := New(blockSize, baseGens, nil)
	if err != nil {
		return nil, nil, false
	}
	topGroup, err := New(numBlocks, topGens, nil)
	if err != nil {
		return nil, nil, false
	}

	expected := new(big.Int).Exp(baseGroup.Order(), big.NewInt(int64(numBlocks)), nil)
	expected.Mul(expected, topGroup.Order())
	if expected.Cmp(g.Order()) != 0 {
		return nil, nil, false
	}
	return baseGroup, topGroup, true
}

// BlockSystem is a partition of the domain into equal-size blocks, each
// setwise invariant under the group's action.
type BlockSystem struct {
	Blocks [][]int
}

// MinimalBlockSystem returns a non-trivial block system of minimal block
// size for a transitive group, seeded from the orbits of the point-1
// stabiliser (a block containing a point is always a union of orbits of
// that point's stabiliser). It returns nil if g is intransitive, primitive
// (no non-trivial system exists), or if no system is evident from the
// generators that fix point 1 — the stabiliser approximation this
// heuristic works from.
func (g *Group) MinimalBlockSystem() *BlockSystem {
	blocks := minimalNonTrivialBlockSystem(g)
	if blocks == nil {
		return nil
	}
	return &BlockSystem{Blocks: blocks}
}

// minimalNonTrivialBlockSystem searches for a non-trivial block system by
// seeding candidate blocks from the stabiliser of point 1: a block
// containing 1 is a union of orbits of that stabiliser, so {1} joined with
// a single stabiliser orbit (smallest first) is the natural candidate.
// Each candidate is closed under generator translation; a candidate whose
// translates tile the domain exactly is a genuine block system. Only
// generators fixing 1 are used to approximate the stabiliser, so this is a
// heuristic: it finds the systems those generators reveal, not every
// system the full stabiliser would.
func minimalNonTrivialBlockSystem(g *Group) [][]int {
	if !g.IsTransitive() || g.degree < 4 {
		return nil
	}

	var stabilizerGens perm.Set
	for _, gen := range g.generators.Slice() {
		if gen.Stabilizes(1) {
			_ = stabilizerGens.Insert(gen)
		}
	}
	if stabilizerGens.Trivial() {
		return nil
	}

	partition := orbit.FromGenerators(g.degree, stabilizerGens)
	for _, seed := range candidateSeeds(partition) {
		blockSize := len(seed)
		if blockSize < 2 || blockSize >= g.degree || g.degree%blockSize != 0 {
			continue
		}
		if blocks := translateSeed(g, seed); blocks != nil {
			return blocks
		}
	}
	return nil
}

// candidateSeeds returns {1} joined with each stabiliser orbit not already
// containing 1, ordered by ascending size so the minimal block system is
// found first.
func candidateSeeds(partition *orbit.Partition) [][]int {
	var orbits [][]int
	for i := 0; i < partition.NumPartitions(); i++ {
		o := partition.At(i).Slice()
		if containsInt(o, 1) {
			continue
		}
		orbits = append(orbits, o)
	}
	sort.Slice(orbits, func(i, j int) bool { return len(orbits[i]) < len(orbits[j]) })

	seeds := make([][]int, 0, len(orbits))
	for _, o := range orbits {
		seed := append([]int{1}, o...)
		sort.Ints(seed)
		seeds = append(seeds, seed)
	}
	return seeds
}

// translateSeed closes seed under translation by every generator. It
// returns the resulting blocks if they partition the domain exactly (each
// generator then maps every block onto a block, making this a genuine
// block system), or nil the moment a translate overlaps an existing block
// without coinciding with it.
func translateSeed(g *Group, seed []int) [][]int {
	blockSize := len(seed)
	blocks := [][]int{seed}
	blockOf := make(map[int]int, g.degree)
	for _, x := range seed {
		blockOf[x] = 0
	}

	for i := 0; i < len(blocks); i++ {
		for _, gen := range g.generators.Slice() {
			img := make([]int, blockSize)
			for j, x := range blocks[i] {
				img[j] = gen.At(x)
			}
			sort.Ints(img)

			if idx, ok := blockOf[img[0]]; ok {
				if !sameInts(blocks[idx], img) {
					return nil
				}
				continue
			}
			for _, x := range img[1:] {
				if _, ok := blockOf[x]; ok {
					return nil
				}
			}
			for _, x := range img {
				blockOf[x] = len(blocks)
			}
			blocks = append(blocks, img)
		}
	}

	if len(blocks)*blockSize != g.degree {
		return nil
	}
	return blocks
}

func sameInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func fixesBlocksSetwise(gen perm.Permutation, blocks [][]int) bool {
	for _, blk := range blocks {
		dest := gen.At(blk[0])
		if !containsInt(blk, dest) {
			return false
		}
		for _, x := range blk[1:] {
			if !containsInt(blk, gen.At(x)) {
				return false
			}
		}
	}
	return true
}

func permutesBlocks(gen perm.Permutation, blocks [][]int) bool {
	for _, blk := range blocks {
		dest := gen.At(blk[0])
		var target []int
		for _, other := range blocks {
			if containsInt(other, dest) {
				target = other
				break
			}
		}
		if target == nil {
			return false
		}
		for _, x := range blk[1:] {
			if !containsInt(target, gen.At(x)) {
				return false
			}
		}
	}
	return true
}

func containsInt(xs []int, x int) bool {
	for _, y := range xs {
		if y == x {
			return true
		}
	}
	return false
}
