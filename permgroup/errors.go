package permgroup

import "errors"

// Sentinel errors for package permgroup. Callers should branch with
// errors.Is.
var (
	// ErrDegreeMismatch indicates an operation combined groups or
	// permutations of incompatible degree.
	ErrDegreeMismatch = errors.New("permgroup: degree mismatch")

	// ErrEmptyFactors indicates DirectProduct was called with no factor
	// groups.
	ErrEmptyFactors = errors.New("permgroup: no factor groups supplied")

	// ErrInvalidDegree indicates a constructor was asked for a group acting
	// on fewer points than its definition requires.
	ErrInvalidDegree = errors.New("permgroup: invalid degree for this construction")

	// ErrInvalidK indicates NumAutomorphismOrbits or AutomorphismOrbitSizes
	// was called with a non-positive task-mapping length.
	ErrInvalidK = errors.New("permgroup: k must be positive")
)
