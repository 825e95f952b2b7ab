package perm

import "github.com/bits-and-blooms/bitset"

// Set is an ordered multiset of Permutation values sharing a common degree,
// fixed by the first permutation inserted. Insertion order is preserved;
// duplicates are permitted unless Dedup is called.
type Set struct {
	degree int
	perms  []Permutation
}

// NewSet builds a Set from the given permutations, which must share a
// degree. An empty call returns an empty, degree-less Set.
func NewSet(perms ...Permutation) (Set, error) {
	var s Set
	for _, p := range perms {
		if err := s.Insert(p); err != nil {
			return Set{}, err
		}
	}
	return s, nil
}

// MustNewSet is like NewSet but panics on error.
func MustNewSet(perms ...Permutation) Set {
	s, err := NewSet(perms...)
	if err != nil {
		panic(err)
	}
	return s
}

// Insert appends p, enforcing that its degree matches the set's degree (the
// degree of the first permutation ever inserted).
func (s *Set) Insert(p Permutation) error {
	if len(s.perms) == 0 {
		s.degree = p.Degree()
	} else if p.Degree() != s.degree {
		return ErrDegreeMismatch
	}
	s.perms = append(s.perms, p)
	return nil
}

// Degree returns the common degree of every element, or 0 for an empty set.
func (s Set) Degree() int { return s.degree }

// Len returns the number of permutations in the set (not deduplicated).
func (s Set) Len() int { return len(s.perms) }

// Empty reports whether the set holds no permutations.
func (s Set) Empty() bool { return len(s.perms) == 0 }

// Trivial reports whether the set is empty, the sense in which BSGS
// construction treats an empty generating set as describing the trivial
// group.
func (s Set) Trivial() bool { return s.Empty() }

// At returns the i-th inserted permutation.
func (s Set) At(i int) Permutation { return s.perms[i] }

// Slice returns a defensive copy of the underlying permutations in
// insertion order.
func (s Set) Slice() []Permutation {
	cp := make([]Permutation, len(s.perms))
	copy(cp, s.perms)
	return cp
}

// Clone returns an independent copy of s.
func (s Set) Clone() Set {
	return Set{degree: s.degree, perms: s.Slice()}
}

// AssertDegree panics if s is non-empty and its degree differs from deg.
func (s Set) AssertDegree(deg int) {
	if !s.Empty() && s.degree != deg {
		panic(ErrDegreeMismatch)
	}
}

// SmallestMovedPoint returns the smallest point moved by any permutation in
// the set. Panics if the set is trivial.
func (s Set) SmallestMovedPoint() int {
	if s.Trivial() {
		panic(ErrEmptySet)
	}
	for x := 1; x <= s.degree; x++ {
		for _, p := range s.perms {
			if p.At(x) != x {
				return x
			}
		}
	}
	panic("perm: unreachable: no moved point in a non-trivial set")
}

// LargestMovedPoint returns the largest point moved by any permutation in
// the set. Panics if the set is trivial.
func (s Set) LargestMovedPoint() int {
	if s.Trivial() {
		panic(ErrEmptySet)
	}
	for x := s.degree; x >= 1; x-- {
		for _, p := range s.perms {
			if p.At(x) != x {
				return x
			}
		}
	}
	panic("perm: unreachable: no moved point in a non-trivial set")
}

// Support returns, in ascending order, every point moved by at least one
// permutation in the set. Backed by a bitset sized to the degree, since the
// domain is small and dense.
func (s Set) Support() []int {
	if s.Trivial() {
		return nil
	}

	moved := bitset.New(uint(s.degree + 1))
	for _, p := range s.perms {
		for x := 1; x <= s.degree; x++ {
			if p.At(x) != x {
				moved.Set(uint(x))
			}
		}
	}

	support := make([]int, 0, moved.Count())
	for x, ok := moved.NextSet(1); ok; x, ok = moved.NextSet(x + 1) {
		support = append(support, int(x))
	}
	return support
}

// HasInverses reports whether, for every permutation in the set, its
// inverse also appears in the set.
func (s Set) HasInverses() bool {
	present := make(map[string]bool, len(s.perms))
	for _, p := range s.perms {
		present[imageKey(p)] = true
	}
	for _, p := range s.perms {
		if !present[imageKey(p.Inverse())] {
			return false
		}
	}
	return true
}

// WithInverses returns a new set containing every element of s followed by
// the inverse of each, deduplicated.
func (s Set) WithInverses() Set {
	out := s.Clone()
	out.InsertInverses()
	return out
}

// InsertInverses appends the inverse of every currently-present permutation,
// then deduplicates.
func (s *Set) InsertInverses() {
	inverses := make([]Permutation, len(s.perms))
	for i, p := range s.perms {
		inverses[i] = p.Inverse()
	}
	s.perms = append(s.perms, inverses...)
	s.Dedup()
}

// Dedup removes duplicate permutations, keeping the first occurrence's
// position (mirrors PermSet::make_unique).
func (s *Set) Dedup() {
	seen := make(map[string]bool, len(s.perms))
	unique := s.perms[:0:0]
	for _, p := range s.perms {
		key := imageKey(p)
		if seen[key] {
			continue
		}
		seen[key] = true
		unique = append(unique, p)
	}
	s.perms = unique
}

// MinimizeDegree renumbers away every point fixed by all permutations in the
// set, compressing the moved points into a contiguous prefix {1..k}, and
// rewrites every stored permutation over that compressed domain. It is a
// no-op on an empty set.
func (s *Set) MinimizeDegree() {
	if s.Empty() {
		return
	}

	n := s.degree
	compress := make([]int, n+1)
	for i := 1; i <= n; i++ {
		compress[i] = i
	}

	var nonMoved []int
	newDegree := 1
	movedSets := make([][]int, len(s.perms))

	for i := 1; i <= n; i++ {
		moved := false
		for j, p := range s.perms {
			if p.At(i) != i {
				movedSets[j] = append(movedSets[j], i)
				moved = true
			}
		}

		if moved {
			if len(nonMoved) > 0 {
				compressTo := nonMoved[0]
				nonMoved = nonMoved[1:]
				compress[i] = compressTo
				newDegree = compressTo
				nonMoved = append(nonMoved, i)
			} else {
				newDegree = i
			}
		} else {
			nonMoved = append(nonMoved, i)
		}
	}

	for j, p := range s.perms {
		image := make([]int, newDegree)
		for i := 1; i <= newDegree; i++ {
			image[i-1] = i
		}
		for _, x := range movedSets[j] {
			y := p.At(x)
			image[compress[x]-1] = compress[y]
		}
		s.perms[j] = MustNew(image)
	}

	s.degree = newDegree
}

func imageKey(p Permutation) string {
	img := p.image
	b := make([]byte, 0, len(img)*3)
	for _, x := range img {
		b = append(b, byte(x), byte(x>>8), byte(x>>16))
	}
	return string(b)
}
