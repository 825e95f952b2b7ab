package archgraph

import (
	"github.com/katalvlaran/symarch/perm"
	"github.com/katalvlaran/symarch/permgroup"
)

// GraphSpec describes a (possibly directed, possibly vertex-coloured) graph
// whose automorphism group a GraphGenerator computes: the external,
// nauty-like boundary of the system.
type GraphSpec struct {
	Directed     bool
	NumVertices  int
	Edges        [][2]int
	ColorClasses [][]int
}

// GraphGenerator computes a generating set for a graph's automorphism
// group, together with the degree the generators act on (the number of
// original vertices, which a reducing tool may report independently of the
// spec it was handed). Implementations stand in for an external
// graph-automorphism tool (e.g. nauty/bliss); this module ships two test
// doubles and one genuine, if non-scalable, brute-force implementation.
type GraphGenerator interface {
	Generate(spec GraphSpec) (degree int, generators perm.Set, err error)
}

// IdentityGenerator always reports the trivial automorphism group: a test
// double for exercising ArchGraphSystem plumbing without asserting
// anything about a graph's actual symmetry.
type IdentityGenerator struct{}

// Generate implements GraphGenerator.
func (IdentityGenerator) Generate(spec GraphSpec) (int, perm.Set, error) {
	return spec.NumVertices, perm.Set{}, nil
}

// CayleyTableGenerator reports the automorphisms known a priori for the
// Cayley colour graph of a permutation group: its right-regular
// representation, which is always contained in the true automorphism group
// of its Cayley graph. The GraphSpec argument, Directed included, is not
// consulted. It is a test double for
// exercising systems built over a known group, not a general graph
// automorphism solver.
type CayleyTableGenerator struct {
	Group *permgroup.Group
}

// Generate implements GraphGenerator, ignoring spec and instead returning
// the regular representation of the configured group acting on itself: the
// reported degree is the group's element count, not spec's vertex count.
func (g CayleyTableGenerator) Generate(spec GraphSpec) (int, perm.Set, error) {
	elements := make([]perm.Permutation, 0)
	it := g.Group.Elements()
	for el, ok := it.Next(); ok; el, ok = it.Next() {
		elements = append(elements, el.Perm)
	}

	n := len(elements)
	if n == 0 {
		return 0, perm.Set{}, nil
	}

	index := make(map[string]int, n)
	for i, e := range elements {
		index[e.String()] = i
	}

	var gens perm.Set
	for _, h := range elements {
		image := make([]int, n)
		for i, e := range elements {
			image[i] = index[e.Compose(h).String()] + 1
		}
		p, err := perm.New(image)
		if err != nil {
			return 0, perm.Set{}, err
		}
		_ = gens.Insert(p)
	}
	return n, gens, nil
}

// BruteForceGenerator computes a graph's full automorphism group by
// enumerating every permutation of its vertices (via permgroup.Symmetric)
// and keeping those that preserve adjacency and colour class membership.
// It is only practical for small graphs; MaxVertices bounds it (defaulting
// to 8 when zero).
type BruteForceGenerator struct {
	MaxVertices int
}

// Generate implements GraphGenerator.
func (g BruteForceGenerator) Generate(spec GraphSpec) (int, perm.Set, error) {
	max := g.MaxVertices
	if max == 0 {
		max = 8
	}
	if spec.NumVertices > max {
		return 0, perm.Set{}, ErrTooLargeForBruteForce
	}
	if spec.NumVertices == 0 {
		return 0, perm.Set{}, nil
	}

	adj := make(map[[2]int]bool, len(spec.Edges))
	for _, e := range spec.Edges {
		adj[[2]int{e[0], e[1]}] = true
		if !spec.Directed {
			adj[[2]int{e[1], e[0]}] = true
		}
	}

	colorOf := make([]int, spec.NumVertices+1)
	for c, class := range spec.ColorClasses {
		for _, v := range class {
			colorOf[v] = c + 1
		}
	}

	sym, err := permgroup.Symmetric(spec.NumVertices)
	if err != nil {
		return 0, perm.Set{}, err
	}

	var gens perm.Set
	it := sym.Elements()
	for el, ok := it.Next(); ok; el, ok = it.Next() {
		if preservesGraph(el.Perm, spec, adj, colorOf) {
			_ = gens.Insert(el.Perm)
		}
	}
	return spec.NumVertices, gens, nil
}

func preservesGraph(p perm.Permutation, spec GraphSpec, adj map[[2]int]bool, colorOf []int) bool {
	for v := 1; v <= spec.NumVertices; v++ {
		if colorOf[v] != colorOf[p.At(v)] {
			return false
		}
	}
	for u := 1; u <= spec.NumVertices; u++ {
		for v := 1; v <= spec.NumVertices; v++ {
			if adj[[2]int{u, v}] != adj[[2]int{p.At(u), p.At(v)}] {
				return false
			}
		}
	}
	return true
}
