package permgroup

import "github.com/katalvlaran/symarch/perm"

// DirectProduct returns the direct product G_1 x ... x G_m, acting on the
// disjoint union of each factor's domain (factor i's points are shifted by
// the sum of the degrees of the factors before it). Its generating set is
// the union, over each factor, of that factor's generators embedded as the
// identity outside their own block.
func DirectProduct(factors []*Group) (*Group, error) {
	if len(factors) == 0 {
		return nil, ErrEmptyFactors
	}

	total := 0
	for _, f := range factors {
		total += f.degree
	}

	var gens perm.Set
	shift := 0
	for _, f := range factors {
		for _, g := range f.generators.Slice() {
			_ = gens.Insert(g.Shifted(shift).Extended(total))
		}
		shift += f.degree
	}

	return New(total, gens, nil)
}

// WreathProduct returns the wreath product base wr top: numBlocks = top's
// degree copies of base's domain, permuted amongst themselves according to
// top and independently within each copy according to base. Its generating
// set is base's generators lifted onto every block, plus top's generators
// lifted to permute whole blocks.
func WreathProduct(base, top *Group) (*Group, error) {
	blockSize := base.degree
	numBlocks := top.degree
	total := blockSize * numBlocks

	var gens perm.Set
	for _, g := range base.generators.Slice() {
		for block := 1; block <= numBlocks; block++ {
			_ = gens.Insert(liftBase(g, block, blockSize, total))
		}
	}
	for _, h := range top.generators.Slice() {
		_ = gens.Insert(liftTop(h, numBlocks, blockSize, total))
	}

	return New(total, gens, nil)
}

// BlockPermutationGroup lifts top's generators (acting on {1..top.Degree()}
// block indices) to the whole-block permutation action they induce over a
// domain split into top.Degree() blocks of blockSize points each: the
// "sigma_super" component of a wreath-product canonicaliser, isolated from
// the per-block base action that WreathProduct otherwise folds in alongside
// it.
func BlockPermutationGroup(top *Group, blockSize int) (*Group, error) {
	total := blockSize * top.degree

	var gens perm.Set
	for _, h := range top.generators.Slice() {
		_ = gens.Insert(liftTop(h, top.degree, blockSize, total))
	}
	return New(total, gens, nil)
}

// liftBase embeds g, a permutation of one block's domain, into the given
// block of a total-degree domain split into equal blocks of blockSize.
func liftBase(g perm.Permutation, block, blockSize, total int) perm.Permutation {
	image := make([]int, total)
	for i := range image {
		image[i] = i + 1
	}
	origin := (block - 1) * blockSize
	for o := 1; o <= blockSize; o++ {
		image[origin+o-1] = origin + g.At(o)
	}
	return perm.MustNew(image)
}

// liftTop embeds h, a permutation of the numBlocks block indices, as the
// permutation of a total-degree domain that moves whole blocks of
// blockSize points according to h, without mixing points within a block.
func liftTop(h perm.Permutation, numBlocks, blockSize, total int) perm.Permutation {
	image := make([]int, total)
	for b := 1; b <= numBlocks; b++ {
		nb := h.At(b)
		origin := (b - 1) * blockSize
		dest := (nb - 1) * blockSize
		for o := 1; o <= blockSize; o++ {
			image[origin+o-1] = dest + o
		}
	}
	return perm.MustNew(image)
}
