package orbit

import "github.com/katalvlaran/symarch/perm"

// Partition divides the domain {1..n} into disjoint orbits, stored both as
// a list of Orbit values and as a per-point index into that list for O(1)
// membership queries.
type Partition struct {
	degree  int
	parts   []Orbit
	indexOf []int // indexOf[x] = index into parts, or -1 if x belongs to none
}

// NewTrivialPartition returns a partition of {1..degree} into degree
// singleton orbits, one per point.
func NewTrivialPartition(degree int) *Partition {
	p := &Partition{degree: degree, indexOf: make([]int, degree+1)}
	for x := 1; x <= degree; x++ {
		p.parts = append(p.parts, Orbit{elements: []int{x}})
		p.indexOf[x] = len(p.parts) - 1
	}
	return p
}

// NewPartition builds a partition from explicit orbits; points not covered
// by any orbit are left unpartitioned (index -1).
func NewPartition(degree int, parts []Orbit) *Partition {
	p := &Partition{degree: degree, indexOf: make([]int, degree+1)}
	for i := range p.indexOf {
		p.indexOf[i] = -1
	}
	for _, o := range parts {
		p.parts = append(p.parts, o)
		idx := len(p.parts) - 1
		for _, x := range o.elements {
			p.indexOf[x] = idx
		}
	}
	return p
}

// FromGenerators derives the orbit partition of {1..degree} under
// generators by repeatedly generating orbits from the smallest
// not-yet-partitioned point.
func FromGenerators(degree int, generators perm.Set) *Partition {
	p := &Partition{degree: degree, indexOf: make([]int, degree+1)}
	for i := range p.indexOf {
		p.indexOf[i] = -1
	}

	for x := 1; x <= degree; x++ {
		if p.indexOf[x] != -1 {
			continue
		}
		o := Generate(x, generators, nil)
		p.parts = append(p.parts, o)
		idx := len(p.parts) - 1
		for _, y := range o.elements {
			p.indexOf[y] = idx
		}
	}

	return p
}

// NumPartitions returns the number of orbits in the partition.
func (p *Partition) NumPartitions() int { return len(p.parts) }

// PartitionIndex returns the index of x's orbit, or -1 if x is unpartitioned.
func (p *Partition) PartitionIndex(x int) int { return p.indexOf[x] }

// At returns the i-th orbit.
func (p *Partition) At(i int) Orbit { return p.parts[i] }

// Slice returns every orbit in the partition.
func (p *Partition) Slice() []Orbit {
	cp := make([]Orbit, len(p.parts))
	copy(cp, p.parts)
	return cp
}

// RemoveFromPartition detaches x from its current orbit, if any.
func (p *Partition) RemoveFromPartition(x int) {
	idx := p.indexOf[x]
	if idx == -1 {
		return
	}
	elems := p.parts[idx].elements
	for i, y := range elems {
		if y == x {
			p.parts[idx].elements = append(elems[:i], elems[i+1:]...)
			break
		}
	}
	p.indexOf[x] = -1
}

// ChangePartition moves x into the orbit at index i, detaching it from any
// prior orbit first.
func (p *Partition) ChangePartition(x, i int) {
	p.RemoveFromPartition(x)
	p.parts[i].elements = append(p.parts[i].elements, x)
	p.indexOf[x] = i
}

// Split refines p against another partition: for every orbit O of p, group
// O's points by their partition index in other, and return one Partition per
// resulting cell (restricted to the degree/points of p).
func (p *Partition) Split(other *Partition) []*Partition {
	results := make([]*Partition, 0, len(p.parts))

	for _, o := range p.parts {
		cells := make(map[int][]int)
		var order []int
		for _, x := range o.elements {
			key := other.PartitionIndex(x)
			if _, ok := cells[key]; !ok {
				order = append(order, key)
			}
			cells[key] = append(cells[key], x)
		}

		for _, key := range order {
			results = append(results, NewPartition(p.degree, []Orbit{{elements: cells[key]}}))
		}
	}

	return results
}
