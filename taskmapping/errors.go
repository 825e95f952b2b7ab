package taskmapping

import "errors"

// Sentinel errors for package taskmapping. Callers should branch with
// errors.Is.
var (
	// ErrPEOutOfRange indicates a Mapping held a PE index outside
	// {Offset+1, ..., Offset+group.Degree()}.
	ErrPEOutOfRange = errors.New("taskmapping: PE index out of range")

	// ErrUnknownMethod indicates an unrecognised ReprOptions.Method value.
	ErrUnknownMethod = errors.New("taskmapping: unknown canonicalisation method")

	// ErrEmptyMapping indicates an operation was attempted on a zero-length
	// Mapping.
	ErrEmptyMapping = errors.New("taskmapping: empty mapping")
)
