package perm

import (
	"fmt"
	"sort"
	"strings"
)

// Permutation is a bijection of the integer domain {1..n}, stored densely as
// an image vector. Degree n is len(image); image[i-1] holds the image of
// point i. Permutation values are immutable: every method that "changes" a
// permutation returns a new one.
type Permutation struct {
	image []int
}

// Identity returns the identity permutation of the given degree.
func Identity(degree int) Permutation {
	if degree < 1 {
		panic(ErrInvalidDegree)
	}
	image := make([]int, degree)
	for i := range image {
		image[i] = i + 1
	}
	return Permutation{image: image}
}

// New validates image as a bijection of {1..len(image)} and returns the
// corresponding Permutation.
func New(image []int) (Permutation, error) {
	n := len(image)
	if n == 0 {
		return Permutation{}, ErrInvalidDegree
	}

	seen := make([]bool, n+1)
	for _, x := range image {
		if x < 1 || x > n || seen[x] {
			return Permutation{}, ErrInvalidImage
		}
		seen[x] = true
	}

	cp := make([]int, n)
	copy(cp, image)
	return Permutation{image: cp}, nil
}

// MustNew is like New but panics on error; intended for tests and constant
// construction sites where the image is known to be valid.
func MustNew(image []int) Permutation {
	p, err := New(image)
	if err != nil {
		panic(err)
	}
	return p
}

// NewFromCycles builds a Permutation of the given degree from disjoint-cycle
// notation. Points not mentioned in any cycle are fixed.
func NewFromCycles(degree int, cycles [][]int) (Permutation, error) {
	if degree < 1 {
		return Permutation{}, ErrInvalidDegree
	}

	image := make([]int, degree)
	for i := range image {
		image[i] = i + 1
	}

	seen := make([]bool, degree+1)
	for _, cycle := range cycles {
		if len(cycle) == 0 {
			continue
		}
		for _, x := range cycle {
			if x < 1 || x > degree || seen[x] {
				return Permutation{}, ErrInvalidCycle
			}
			seen[x] = true
		}
		for i := 0; i < len(cycle); i++ {
			from := cycle[i]
			to := cycle[(i+1)%len(cycle)]
			image[from-1] = to
		}
	}

	return Permutation{image: image}, nil
}

// Degree returns n, the size of the domain {1..n}.
func (p Permutation) Degree() int { return len(p.image) }

// At returns the image of point x under p. x must be in {1..Degree()}.
func (p Permutation) At(x int) int {
	if x < 1 || x > len(p.image) {
		panic(ErrPointOutOfRange)
	}
	return p.image[x-1]
}

// Image returns a defensive copy of the dense image vector.
func (p Permutation) Image() []int {
	cp := make([]int, len(p.image))
	copy(cp, p.image)
	return cp
}

// IsIdentity reports whether p fixes every point of its domain.
func (p Permutation) IsIdentity() bool {
	for i, x := range p.image {
		if x != i+1 {
			return false
		}
	}
	return true
}

// Equal reports whether p and q have the same degree and image.
func (p Permutation) Equal(q Permutation) bool {
	if len(p.image) != len(q.image) {
		return false
	}
	for i := range p.image {
		if p.image[i] != q.image[i] {
			return false
		}
	}
	return true
}

// Compose returns p then q: (p.Compose(q))(i) = q(p(i)). Both must share a
// degree.
func (p Permutation) Compose(q Permutation) Permutation {
	if p.Degree() != q.Degree() {
		panic(ErrDegreeMismatch)
	}
	image := make([]int, len(p.image))
	for i, x := range p.image {
		image[i] = q.image[x-1]
	}
	return Permutation{image: image}
}

// Inverse returns p^-1, such that p.Compose(p.Inverse()) is the identity.
func (p Permutation) Inverse() Permutation {
	image := make([]int, len(p.image))
	for i, x := range p.image {
		image[x-1] = i + 1
	}
	return Permutation{image: image}
}

// Stabilizes reports whether p fixes every point in points.
func (p Permutation) Stabilizes(points ...int) bool {
	for _, x := range points {
		if p.At(x) != x {
			return false
		}
	}
	return true
}

// Cycles returns the canonical disjoint-cycle decomposition: each cycle
// begins with its smallest element, cycles are sorted by first element, and
// fixed points are omitted.
func (p Permutation) Cycles() [][]int {
	n := len(p.image)
	done := make([]bool, n+1)

	var cycles [][]int
	for start := 1; start <= n; start++ {
		if done[start] {
			continue
		}
		done[start] = true

		cycle := []int{start}
		for cur := p.At(start); cur != start; cur = p.At(cur) {
			done[cur] = true
			cycle = append(cycle, cur)
		}

		if len(cycle) > 1 {
			cycles = append(cycles, cycle)
		}
	}

	sort.Slice(cycles, func(i, j int) bool { return cycles[i][0] < cycles[j][0] })
	return cycles
}

// Even reports whether p decomposes into an even number of transpositions
// (a cycle of length k contributes k-1 transpositions).
func (p Permutation) Even() bool {
	odd := false
	for _, cycle := range p.Cycles() {
		if len(cycle)%2 == 0 {
			odd = !odd
		}
	}
	return !odd
}

// Extended returns p padded with fixed points up to the given degree, which
// must be >= p.Degree().
func (p Permutation) Extended(degree int) Permutation {
	if degree < p.Degree() {
		panic(ErrInvalidDegree)
	}
	if degree == p.Degree() {
		return p
	}

	image := make([]int, degree)
	copy(image, p.image)
	for i := p.Degree(); i < degree; i++ {
		image[i] = i + 1
	}
	return Permutation{image: image}
}

// Shifted maps i to p(i-shift)+shift for i > shift, and is the identity on
// {1..shift}. The result has degree p.Degree()+shift.
func (p Permutation) Shifted(shift int) Permutation {
	if shift == 0 {
		return p
	}
	if shift < 0 {
		panic(ErrPointOutOfRange)
	}

	image := make([]int, p.Degree()+shift)
	for i := 0; i < shift; i++ {
		image[i] = i + 1
	}
	for i, x := range p.image {
		image[i+shift] = x + shift
	}
	return Permutation{image: image}
}

// Restricted keeps only the cycles fully contained in domain, dropping every
// other cycle (including fixed points outside domain); the result retains
// p's original degree.
func (p Permutation) Restricted(domain []int) Permutation {
	inDomain := make([]bool, p.Degree()+1)
	for _, x := range domain {
		if x >= 1 && x <= p.Degree() {
			inDomain[x] = true
		}
	}

	var cycles [][]int
	for _, cycle := range p.Cycles() {
		restrict := false
		for _, x := range cycle {
			if !inDomain[x] {
				restrict = true
				break
			}
		}
		if !restrict {
			cycles = append(cycles, cycle)
		}
	}

	restricted, err := NewFromCycles(p.Degree(), cycles)
	if err != nil {
		// cycles were derived from p.Cycles(), so this is unreachable.
		panic(err)
	}
	return restricted
}

// String renders p in disjoint-cycle notation, e.g. "(1,2,3)(4,5)", or "()"
// for the identity.
func (p Permutation) String() string {
	cycles := p.Cycles()
	if len(cycles) == 0 {
		return "()"
	}

	var b strings.Builder
	for _, cycle := range cycles {
		b.WriteByte('(')
		for i, x := range cycle {
			if i > 0 {
				b.WriteByte(',')
			}
			fmt.Fprintf(&b, "%d", x)
		}
		b.WriteByte(')')
	}
	return b.String()
}
