package permgroup

import (
	"math/big"
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/symarch/perm"
	"golang.org/x/exp/rand"
)

// NumAutomorphismOrbits counts, via Burnside's lemma, the number of orbits of
// length-k task mappings (sequences of k PE indices in {1..Degree()}) under
// g's action: the sum over every element of g of fix(el)^k (or, when unique
// is true, the falling factorial fix(el)*(fix(el)-1)*...*(fix(el)-k+1),
// restricting to injective mappings), divided by |g|.
//
// This enumerates every element of g, so it is only practical for groups
// small enough to iterate exhaustively (matching the source's own
// implementation, which likewise sums over the full element set).
func (g *Group) NumAutomorphismOrbits(k int, unique bool) (*big.Int, error) {
	if k <= 0 {
		return nil, ErrInvalidK
	}

	sum := new(big.Int)
	count := new(big.Int)
	it := g.Elements()
	for el, ok := it.Next(); ok; el, ok = it.Next() {
		fix := fixedPointCount(func(x int) int { return el.Perm.At(x) }, g.degree)
		sum.Add(sum, orbitCountTerm(fix, k, unique))
		count.Add(count, big.NewInt(1))
	}
	if count.Sign() == 0 {
		return big.NewInt(0), nil
	}

	result := new(big.Int)
	remainder := new(big.Int)
	result.QuoRem(sum, count, remainder)
	return result, nil
}

// orbitCountTerm computes fix^k (unique=false) or the falling factorial
// fix*(fix-1)*...*(fix-k+1) (unique=true, zero once fix<k).
func orbitCountTerm(fix, k int, unique bool) *big.Int {
	if !unique {
		return new(big.Int).Exp(big.NewInt(int64(fix)), big.NewInt(int64(k)), nil)
	}
	if fix < k {
		return big.NewInt(0)
	}
	term := big.NewInt(1)
	for i := 0; i < k; i++ {
		term.Mul(term, big.NewInt(int64(fix-i)))
	}
	return term
}

// fixedPointCount counts points in {1..degree} fixed by at, the image
// function of a single permutation.
func fixedPointCount(at func(int) int, degree int) int {
	n := 0
	for x := 1; x <= degree; x++ {
		if at(x) == x {
			n++
		}
	}
	return n
}

// globallyFixedPoints returns every point fixed by every generator of g
// (equivalently, by every element of g): the points a length-k mapping must
// draw from to lie in a singular orbit (an orbit of size 1).
func (g *Group) globallyFixedPoints() []int {
	gens := g.generators.Slice()
	var fixed []int
	for x := 1; x <= g.degree; x++ {
		ok := true
		for _, gen := range gens {
			if gen.At(x) != x {
				ok = false
				break
			}
		}
		if ok {
			fixed = append(fixed, x)
		}
	}
	return fixed
}

// singularOrbitCount returns the number of length-k mappings drawable from
// n globally-fixed points: n^k (unique=false) or the falling factorial
// n*(n-1)*...*(n-k+1) (unique=true, zero once n<k). These mappings are each
// their own orbit of size 1, since every group element fixes every
// component.
func singularOrbitCount(n, k int, unique bool) *big.Int {
	return orbitCountTerm(n, k, unique)
}

// AutomorphismOrbitSizes enumerates the sizes of every orbit of length-k
// task mappings under g, ascending. Singular orbits (size 1, entirely
// composed of globally-fixed points) are counted analytically; the
// remaining, non-singular orbits are discovered by drawing random mappings
// and exploring each newly-seen orbit by BFS until either every orbit
// predicted by NumAutomorphismOrbits has been found or a budget of
// maxAttemptsPerOrbit draws per predicted orbit (plus 1000) has been spent.
//
// rng defaults to a source seeded with 1 when nil. It returns a nil slice
// with no error, signalling "unavailable", if the total orbit count is zero
// or exceeds 1<<20 (matching the source's graceful-degradation policy for
// capability overflow rather than erroring).
func (g *Group) AutomorphismOrbitSizes(k int, unique bool, rng *rand.Rand) ([]int, error) {
	if k <= 0 {
		return nil, ErrInvalidK
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}

	total, err := g.NumAutomorphismOrbits(k, unique)
	if err != nil {
		return nil, err
	}
	if total.Sign() == 0 {
		return nil, nil
	}
	if !total.IsInt64() || total.Int64() > 1<<20 {
		// Orbit count exceeds what we can enumerate/represent as a plain
		// slice: degrade gracefully rather than attempting an unbounded
		// enumeration.
		return nil, nil
	}
	totalCount := int(total.Int64())

	fixed := g.globallyFixedPoints()
	singular := singularOrbitCount(len(fixed), k, unique)
	var sizes []int
	if singular.IsInt64() {
		for i := int64(0); i < singular.Int64() && len(sizes) < totalCount; i++ {
			sizes = append(sizes, 1)
		}
	}

	moves := g.generators.Slice()
	seen := make(map[string]bool, totalCount)
	const maxAttemptsPerOrbit = 200
	attempts := 0
	for len(sizes) < totalCount && attempts < totalCount*maxAttemptsPerOrbit+1000 {
		attempts++
		m := randomKMapping(g.degree, k, unique, rng)
		rep, size := bfsMappingOrbit(m, moves)
		if size == 1 {
			// Singular orbits were already counted above.
			continue
		}
		key := mappingKey(rep)
		if seen[key] {
			continue
		}
		seen[key] = true
		sizes = append(sizes, size)
	}

	sort.Ints(sizes)
	return sizes, nil
}

func randomKMapping(degree, k int, unique bool, rng *rand.Rand) []int {
	m := make([]int, k)
	if unique {
		perm := rng.Perm(degree)
		for i := 0; i < k && i < degree; i++ {
			m[i] = perm[i] + 1
		}
		return m
	}
	for i := range m {
		m[i] = rng.Intn(degree) + 1
	}
	return m
}

// bfsMappingOrbit explores the orbit of m under moves by breadth-first
// search, returning the lexicographically smallest mapping found (used as a
// canonical key to dedup repeated discovery of the same orbit) and the
// orbit's total size.
func bfsMappingOrbit(m []int, moves []perm.Permutation) ([]int, int) {
	seen := map[string]bool{mappingKey(m): true}
	queue := [][]int{m}
	best := m

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		for _, g := range moves {
			next := make([]int, len(cur))
			for i, v := range cur {
				next[i] = g.At(v)
			}
			key := mappingKey(next)
			if seen[key] {
				continue
			}
			seen[key] = true
			queue = append(queue, next)
			if lessMapping(next, best) {
				best = next
			}
		}
	}

	return best, len(seen)
}

func lessMapping(a, b []int) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return len(a) < len(b)
}

func mappingKey(m []int) string {
	parts := make([]string, len(m))
	for i, v := range m {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}
