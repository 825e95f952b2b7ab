package taskmapping

// Method selects the canonicalisation strategy a Canonicaliser uses.
type Method int

const (
	// Iterate enumerates every group element exhaustively and keeps the
	// lexicographically smallest image. Exact, but only practical for
	// small groups.
	Iterate Method = iota
	// Orbits performs a breadth-first search of the mapping's orbit using
	// the group's generators, keeping the lexicographically smallest
	// mapping discovered. Exact and generally far cheaper than Iterate.
	Orbits
	// LocalSearch performs a bounded hill-climbing search (breadth- or
	// depth-first, per Variant) from the input mapping, accepting moves
	// that strictly improve the lexicographic order. Heuristic: it may
	// return a local rather than global optimum for very large orbits.
	LocalSearch
	// LocalSearchSA is LocalSearch with a linear-cooling simulated
	// annealing acceptance rule, allowing occasional non-improving moves
	// to escape local optima.
	LocalSearchSA
)

// Variant selects the traversal order LocalSearch uses.
type Variant int

const (
	// BFS explores all neighbours of the current best mapping before
	// descending further.
	BFS Variant = iota
	// DFS follows the first improving neighbour immediately.
	DFS
)

// ReprOptions configures a Canonicaliser.
type ReprOptions struct {
	Method  Method
	Variant Variant

	// Symmetric asks the Canonicaliser to short-circuit the search when the
	// group acts as the full symmetric group on a contiguous window of the
	// domain (verified via permgroup.Group.SymmetricWindow): the
	// representative is then the first-occurrence renaming of the window's
	// PE indices, computed in O(len(mapping)) with no search at all. When
	// the group is not symmetric on a window, the configured Method runs as
	// usual.
	Symmetric bool

	// AugmentWithInverses adds the inverse of every group generator to the
	// move set used by Orbits/LocalSearch, which can shorten search paths
	// at the cost of a larger per-step branching factor.
	AugmentWithInverses bool

	// AppendRandomGenerators adds this many pseudo-random elements of the
	// group to the move set, on top of the generators themselves (and their
	// inverses, when AugmentWithInverses is set). Random long-range moves
	// let LocalSearch escape plateaus a generator-only neighbourhood gets
	// stuck on; they never leave the group, so Orbits stays exact.
	AppendRandomGenerators int

	// Offset shifts every PE index a Mapping holds before a group element is
	// applied to it and shifts back afterward, so a subsystem whose group
	// acts on {1..degree} can canonicalise mappings whose PE indices live in
	// a sub-range [Offset+1, Offset+degree] of a larger architecture's index
	// space (used by archgraph's Cluster/UniformSuper variants).
	Offset int

	// Match, when true and a Representatives cache is present, short-circuits
	// Representative entirely when mapping itself is already recorded as a
	// representative (mapping's orbit has already been canonicalised to
	// exactly this value), skipping the search.
	Match bool

	// MaxSteps bounds LocalSearch (0 means a built-in default of 10000
	// steps).
	MaxSteps int

	// SAIterations is I, the number of annealing steps LocalSearchSA runs
	// (0 means a built-in default of 100).
	SAIterations int
	// SAInitialTemperature is T_init; the temperature at step i is
	// (I-i-1)/I * T_init, cooling linearly to zero (0 means a built-in
	// default of 1.0).
	SAInitialTemperature float64

	// RNGSeed seeds the PRNG used by LocalSearchSA and by the
	// AppendRandomGenerators draws, for reproducible test runs. Every value,
	// zero included, is used as-is as a deterministic seed.
	RNGSeed uint64
}

// DefaultReprOptions returns the exact, orbit-BFS-based canonicalisation
// method with no augmentation, a sensible default when group size is
// unknown ahead of time.
func DefaultReprOptions() ReprOptions {
	return ReprOptions{Method: Orbits}
}

func (o ReprOptions) maxSteps() int {
	if o.MaxSteps > 0 {
		return o.MaxSteps
	}
	return 10000
}

func (o ReprOptions) saIterations() int {
	if o.SAIterations > 0 {
		return o.SAIterations
	}
	return 100
}

func (o ReprOptions) saInitialTemperature() float64 {
	if o.SAInitialTemperature > 0 {
		return o.SAInitialTemperature
	}
	return 1.0
}
