package archgraph

import "errors"

// Sentinel errors for package archgraph. Callers should branch with
// errors.Is.
var (
	// ErrEmptyCluster indicates a Cluster system was built with no members.
	ErrEmptyCluster = errors.New("archgraph: cluster has no member systems")

	// ErrNoGenerator indicates a Graph system was asked for automorphisms
	// without a GraphGenerator configured.
	ErrNoGenerator = errors.New("archgraph: graph system has no generator")

	// ErrTooLargeForBruteForce indicates BruteForceGenerator was asked to
	// search a graph above its configured vertex-count ceiling.
	ErrTooLargeForBruteForce = errors.New("archgraph: graph too large for brute-force automorphism search")

	// ErrOrbitCountTooLarge indicates NumAutomorphismOrbits's result does not
	// fit in a machine int.
	ErrOrbitCountTooLarge = errors.New("archgraph: automorphism orbit count too large to represent")
)
