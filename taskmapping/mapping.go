package taskmapping

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/symarch/perm"
)

// Mapping assigns each task (its index) to a processor (its value, a point
// in {1..degree}). Values carry value semantics throughout this package:
// every transformation returns a new Mapping rather than mutating in
// place.
type Mapping []int

// Permuted returns the mapping obtained by relabelling every processor
// assignment through p: result[i] = p.At(m[i]). This is the action an
// architecture graph's automorphism group exerts on task mappings.
func (m Mapping) Permuted(p perm.Permutation) Mapping {
	out := make(Mapping, len(m))
	for i, v := range m {
		out[i] = p.At(v)
	}
	return out
}

// PermutedOffset is Permuted with every PE index shifted down by offset
// before applying p and back up afterward, so p (which acts on {1..degree})
// can be used to canonicalise a mapping whose PE indices actually live in
// the sub-range [offset+1, offset+degree] of a larger index space.
func (m Mapping) PermutedOffset(p perm.Permutation, offset int) Mapping {
	if offset == 0 {
		return m.Permuted(p)
	}
	out := make(Mapping, len(m))
	for i, v := range m {
		out[i] = p.At(v-offset) + offset
	}
	return out
}

// Clone returns an independent copy of m.
func (m Mapping) Clone() Mapping {
	out := make(Mapping, len(m))
	copy(out, m)
	return out
}

// Equal reports whether m and other assign identical processors to every
// task.
func (m Mapping) Equal(other Mapping) bool {
	if len(m) != len(other) {
		return false
	}
	for i := range m {
		if m[i] != other[i] {
			return false
		}
	}
	return true
}

// Less orders mappings lexicographically by task index, used to pick a
// single canonical representative out of an orbit.
func (m Mapping) Less(other Mapping) bool {
	for i := 0; i < len(m) && i < len(other); i++ {
		if m[i] != other[i] {
			return m[i] < other[i]
		}
	}
	return len(m) < len(other)
}

// Key returns a canonical string encoding of m, suitable for use as a
// Representatives map key.
func (m Mapping) Key() string {
	var b strings.Builder
	for i, v := range m {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(v))
	}
	return b.String()
}

// FirstOccurrenceForm returns m relabelled so that the first distinct value
// encountered (scanning left to right) becomes 1, the second becomes 2, and
// so on: the canonical form of m under the full symmetric group acting on
// processor labels, independent of which labels happened to be used.
func (m Mapping) FirstOccurrenceForm() Mapping {
	max := 0
	for _, v := range m {
		if v > max {
			max = v
		}
	}
	return m.FirstOccurrenceFormWindow(1, max)
}

// FirstOccurrenceFormWindow relabels only the values of m falling inside the
// inclusive window [lo, hi]: the first distinct in-window value encountered
// (scanning left to right) becomes lo, the second lo+1, and so on, while
// values outside the window pass through untouched. This is the canonical
// orbit form under a group acting as the full symmetric group on exactly
// that window of PE indices.
func (m Mapping) FirstOccurrenceFormWindow(lo, hi int) Mapping {
	rank := make(map[int]int, len(m))
	out := make(Mapping, len(m))
	next := lo
	for i, v := range m {
		if v < lo || v > hi {
			out[i] = v
			continue
		}
		r, ok := rank[v]
		if !ok {
			r = next
			rank[v] = r
			next++
		}
		out[i] = r
	}
	return out
}
