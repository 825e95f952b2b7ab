package orbit

import (
	"github.com/bits-and-blooms/bitset"
	"github.com/katalvlaran/symarch/perm"
	"github.com/katalvlaran/symarch/schreier"
)

// Orbit is the ordered sequence of points discovered by a BFS from some seed
// point under a generating set. Discovery order, not sorted order, is
// preserved, matching the reference algorithm's behaviour.
type Orbit struct {
	elements []int
}

// Of wraps an already-computed point sequence (e.g. from a schreier.Structure
// built independently) as an Orbit.
func Of(elements []int) Orbit {
	cp := make([]int, len(elements))
	copy(cp, elements)
	return Orbit{elements: cp}
}

// Len returns the number of points in the orbit.
func (o Orbit) Len() int { return len(o.elements) }

// Slice returns a defensive copy of the orbit's points in discovery order.
func (o Orbit) Slice() []int {
	cp := make([]int, len(o.elements))
	copy(cp, o.elements)
	return cp
}

// Contains reports whether x was discovered in this orbit.
func (o Orbit) Contains(x int) bool {
	for _, y := range o.elements {
		if y == x {
			return true
		}
	}
	return false
}

// Equal reports whether o and other contain the same set of points,
// irrespective of discovery order.
func (o Orbit) Equal(other Orbit) bool {
	if len(o.elements) != len(other.elements) {
		return false
	}
	seen := make(map[int]bool, len(o.elements))
	for _, x := range o.elements {
		seen[x] = true
	}
	for _, x := range other.elements {
		if !seen[x] {
			return false
		}
	}
	return true
}

// Generate runs a breadth-first search from x over generators, returning the
// discovered points in discovery order (x first). If ss is non-nil, a label
// is registered for every generator and an edge is recorded for every newly
// discovered point, populating ss as a side effect.
func Generate(x int, generators perm.Set, ss schreier.Structure) Orbit {
	if generators.Trivial() {
		return Orbit{elements: []int{x}}
	}

	gens := generators.Slice()
	labelIdx := make([]int, len(gens))
	if ss != nil {
		for i, g := range gens {
			labelIdx[i] = ss.AddLabel(g)
		}
	}

	degree := generators.Degree()
	seen := bitset.New(uint(degree + 1))
	seen.Set(uint(x))

	discovered := []int{x}
	queue := []int{x}

	for len(queue) > 0 {
		z := queue[0]
		queue = queue[1:]

		for i, g := range gens {
			y := g.At(z)
			if seen.Test(uint(y)) {
				continue
			}
			seen.Set(uint(y))
			discovered = append(discovered, y)
			queue = append(queue, y)

			if ss != nil {
				ss.CreateEdge(z, y, labelIdx[i])
			}
		}
	}

	return Orbit{elements: discovered}
}

// Update extends an orbit already generated under oldGens so that it also
// accounts for newGens, by BFS-scheduling every currently known orbit point
// against newGens (and checking newly found points against all generators,
// since an old generator may reach a point only discoverable via a fresh
// frontier member). The resulting point set equals that of
// Generate(seed, oldGens ∪ newGens, ss); points that were already known keep
// the edges they had in ss, so the edges can differ from a fresh Generate's.
func (o *Orbit) Update(oldGens, newGens perm.Set, ss schreier.Structure) {
	if newGens.Trivial() {
		return
	}

	all, err := perm.NewSet(append(oldGens.Slice(), newGens.Slice()...)...)
	if err != nil {
		panic(err)
	}
	allGens := all.Slice()
	newOffset := oldGens.Len()

	labelIdx := make([]int, len(allGens))
	if ss != nil {
		for i, g := range allGens {
			labelIdx[i] = ss.AddLabel(g)
		}
	}

	degree := allGens[0].Degree()
	original := bitset.New(uint(degree + 1))
	seen := bitset.New(uint(degree + 1))
	for _, x := range o.elements {
		original.Set(uint(x))
		seen.Set(uint(x))
	}

	queue := make([]int, len(o.elements))
	copy(queue, o.elements)

	for len(queue) > 0 {
		z := queue[0]
		queue = queue[1:]

		// The original orbit is already closed under oldGens, so points it
		// contained only need the new generators applied; points the
		// extension discovered need the full set.
		from := 0
		if original.Test(uint(z)) {
			from = newOffset
		}

		for i := from; i < len(allGens); i++ {
			y := allGens[i].At(z)
			if seen.Test(uint(y)) {
				continue
			}
			seen.Set(uint(y))
			o.elements = append(o.elements, y)
			queue = append(queue, y)

			if ss != nil {
				ss.CreateEdge(z, y, labelIdx[i])
			}
		}
	}
}
