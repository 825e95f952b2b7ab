package permgroup

import "github.com/katalvlaran/symarch/perm"

// Element is one member of a group's enumeration, paired with the chain of
// transversal representatives (one per base level, deepest level first)
// whose composition produces it.
type Element struct {
	Perm    perm.Permutation
	Factors []perm.Permutation
}

// Elements returns an Iterator enumerating every element of g exactly once,
// via a mixed-radix counter over the fundamental orbit of each BSGS level:
// the standard BSGS exhaustive-enumeration technique (Holt, Eick & O'Brien,
// "Handbook of Computational Group Theory", §4.1).
func (g *Group) Elements() *Iterator {
	k := g.chain.BaseSize()
	nodes := make([][]int, k)
	for i := 0; i < k; i++ {
		nodes[i] = g.chain.OrbitAt(i).Slice()
	}
	return &Iterator{group: g, nodes: nodes, digits: make([]int, k), first: true}
}

// Iterator walks every element of a Group exactly once. It is not
// goroutine-safe.
type Iterator struct {
	group  *Group
	nodes  [][]int
	digits []int
	first  bool
	done   bool
}

// Next returns the next element, or false once every element has been
// produced.
func (it *Iterator) Next() (Element, bool) {
	if it.done {
		return Element{}, false
	}

	if len(it.digits) == 0 {
		if it.first {
			it.first = false
			return Element{Perm: perm.Identity(it.group.degree)}, true
		}
		it.done = true
		return Element{}, false
	}

	if it.first {
		it.first = false
	} else if !it.advance() {
		it.done = true
		return Element{}, false
	}

	factors := make([]perm.Permutation, len(it.digits))
	g := perm.Identity(it.group.degree)
	for i := 0; i < len(it.digits); i++ {
		x := it.nodes[i][it.digits[i]]
		u := it.group.chain.Transversal(i, x)
		factors[len(it.digits)-1-i] = u
		g = u.Compose(g)
	}
	return Element{Perm: g, Factors: factors}, true
}

// advance increments the mixed-radix counter, returning false on overflow
// (every combination has been produced).
func (it *Iterator) advance() bool {
	for i := len(it.digits) - 1; i >= 0; i-- {
		it.digits[i]++
		if it.digits[i] < len(it.nodes[i]) {
			return true
		}
		it.digits[i] = 0
	}
	return false
}
