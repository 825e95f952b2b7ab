package bsgs

import "errors"

// Sentinel errors for package bsgs. Callers should branch with errors.Is.
var (
	// ErrEmptyGenerators indicates construction was attempted from a
	// generating set with no common degree established (not to be
	// confused with a trivial generating set, which is valid and yields
	// the trivial group).
	ErrEmptyGenerators = errors.New("bsgs: generating set has no degree")

	// ErrDegreeMismatch indicates generators did not share the group's
	// declared degree.
	ErrDegreeMismatch = errors.New("bsgs: degree mismatch")

	// ErrNotInOrbit indicates a transversal was requested for a point
	// outside the level's fundamental orbit.
	ErrNotInOrbit = errors.New("bsgs: point not in level orbit")

	// ErrUnknownConstruction indicates an unrecognised Construction enum
	// value was supplied in Options.
	ErrUnknownConstruction = errors.New("bsgs: unknown construction method")

	// ErrSolveUnsupported indicates Options.Construction == Solve was
	// requested; the solvable-group specialised path is not implemented
	// (see DESIGN.md — the source's solve() is marked incomplete and is
	// not wired into construction defaults here either).
	ErrSolveUnsupported = errors.New("bsgs: solvable-group construction is unsupported")

	// ErrTimeout indicates construction exceeded its configured wall-clock
	// deadline.
	ErrTimeout = errors.New("bsgs: construction timeout")

	// ErrAborted indicates construction observed a cancelled context.
	ErrAborted = errors.New("bsgs: construction aborted")

	// ErrOrderMismatch indicates a randomised construction's resulting
	// order did not match a caller-supplied expected order.
	ErrOrderMismatch = errors.New("bsgs: order mismatch against expected order")
)
