package perm

import "errors"

// Sentinel errors for package perm. Callers should branch with errors.Is.
var (
	// ErrInvalidDegree indicates a requested degree is less than 1.
	ErrInvalidDegree = errors.New("perm: degree must be >= 1")

	// ErrInvalidImage indicates a candidate image vector is not a bijection
	// of {1..n}.
	ErrInvalidImage = errors.New("perm: image is not a permutation of 1..n")

	// ErrInvalidCycle indicates a cycle contains an out-of-range or
	// duplicate point.
	ErrInvalidCycle = errors.New("perm: invalid cycle")

	// ErrDegreeMismatch indicates an operation was attempted between two
	// permutations (or a permutation and a set) of differing degree.
	ErrDegreeMismatch = errors.New("perm: degree mismatch")

	// ErrPointOutOfRange indicates a point argument fell outside {1..degree}.
	ErrPointOutOfRange = errors.New("perm: point out of range")

	// ErrEmptySet indicates an operation required at least one permutation
	// in a Set (e.g. Degree, SmallestMovedPoint) but the set was empty.
	ErrEmptySet = errors.New("perm: set is empty")
)
