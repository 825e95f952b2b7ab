package archgraph

import (
	"sync"

	"github.com/katalvlaran/symarch/bsgs"
	"github.com/katalvlaran/symarch/perm"
	"github.com/katalvlaran/symarch/permgroup"
	"github.com/katalvlaran/symarch/taskmapping"
)

// System is an ArchGraphSystem: a composable source of an automorphism
// group that also knows how to canonicalise task mappings against it.
type System interface {
	// NumProcessors returns the number of PEs (the degree of the domain
	// Automorphisms acts on).
	NumProcessors() int

	// NumChannels returns the number of communication channels described by
	// this system (0 for a system with no channel structure of its own; the
	// network degree for a uniform super-graph; the sum of members' channel
	// counts for a cluster).
	NumChannels() int

	// Automorphisms returns (computing and caching on first call) this
	// system's automorphism group.
	Automorphisms() (*permgroup.Group, error)

	// Representative returns the canonical form of mapping's orbit under
	// this system's automorphism group, using this system's own repr cache
	// (see InitRepr/ResetRepr).
	Representative(mapping taskmapping.Mapping, opts taskmapping.ReprOptions) (taskmapping.Mapping, error)

	// Orbit returns every mapping reachable from mapping under this
	// system's automorphism group, via breadth-first search.
	Orbit(mapping taskmapping.Mapping) ([]taskmapping.Mapping, error)

	// NumAutomorphismOrbits counts, via Burnside's lemma, the number of
	// orbits of length-k task mappings under this system's automorphism
	// group (falling-factorial weighted when unique is true).
	NumAutomorphismOrbits(k int, unique bool) (int, error)

	// InitRepr eagerly computes the automorphism group and prepares an
	// empty Representatives cache for Representative to use.
	InitRepr() error

	// ResetRepr discards this system's Representatives cache, so the next
	// Representative call starts counting orbits from scratch.
	ResetRepr()
}

// reprCache is embedded by every System implementation to give it a private,
// lazily-initialised Representatives table, matching the source's
// init_repr_/reset_repr_ pattern.
type reprCache struct {
	mu   sync.Mutex
	reps *taskmapping.Representatives
}

func (c *reprCache) representatives() *taskmapping.Representatives {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.reps == nil {
		c.reps = taskmapping.NewRepresentatives()
	}
	return c.reps
}

func (c *reprCache) initRepr() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.reps = taskmapping.NewRepresentatives()
}

func (c *reprCache) resetRepr() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.reps = nil
}

// numAutomorphismOrbitsViaBurnside is the shared NumAutomorphismOrbits
// implementation for every System variant backed by a single automorphism
// group acting directly on the whole mapping (AutomorphismsSystem,
// GraphSystem). Cluster and UniformSuper call it as well, so for them the
// Burnside sum runs over their full product automorphism group.
func numAutomorphismOrbitsViaBurnside(sys System, k int, unique bool) (int, error) {
	group, err := sys.Automorphisms()
	if err != nil {
		return 0, err
	}
	count, err := group.NumAutomorphismOrbits(k, unique)
	if err != nil {
		return 0, err
	}
	if !count.IsInt64() {
		return 0, ErrOrbitCountTooLarge
	}
	return int(count.Int64()), nil
}

// automorphismCache is embedded by every System implementation to give it
// compute-once-then-reuse semantics for Automorphisms.
type automorphismCache struct {
	once  sync.Once
	group *permgroup.Group
	err   error
}

func (c *automorphismCache) resolve(compute func() (*permgroup.Group, error)) (*permgroup.Group, error) {
	c.once.Do(func() {
		c.group, c.err = compute()
	})
	return c.group, c.err
}

// representativeDirect is the shared Representative implementation for
// System variants whose automorphism group acts directly on the whole
// mapping (AutomorphismsSystem, GraphSystem): it builds (or reuses) a
// taskmapping.Canonicaliser over the system's own group and repr cache.
func representativeDirect(sys System, cache *reprCache, mapping taskmapping.Mapping, opts taskmapping.ReprOptions) (taskmapping.Mapping, error) {
	group, err := sys.Automorphisms()
	if err != nil {
		return nil, err
	}
	c := taskmapping.NewCanonicaliser(group, opts, cache.representatives())
	repr, _, _, err := c.Representative(mapping)
	return repr, err
}

// orbitDirect is the shared Orbit implementation for System variants whose
// automorphism group acts directly on the whole mapping: breadth-first
// search over the group's generators, applied with offset shifted by the
// Representative call's own Offset semantics (here always 0, since these
// variants act over their whole domain).
func orbitDirect(sys System, mapping taskmapping.Mapping) ([]taskmapping.Mapping, error) {
	group, err := sys.Automorphisms()
	if err != nil {
		return nil, err
	}
	return bfsOrbit(mapping, group.Generators().Slice(), 0), nil
}

// bfsOrbit enumerates every mapping reachable from mapping by repeatedly
// applying moves (shifted by offset), returning them in discovery order.
func bfsOrbit(mapping taskmapping.Mapping, moves []perm.Permutation, offset int) []taskmapping.Mapping {
	seen := map[string]bool{mapping.Key(): true}
	queue := []taskmapping.Mapping{mapping}
	out := []taskmapping.Mapping{mapping}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		for _, g := range moves {
			next := cur.PermutedOffset(g, offset)
			key := next.Key()
			if seen[key] {
				continue
			}
			seen[key] = true
			queue = append(queue, next)
			out = append(out, next)
		}
	}
	return out
}

// AutomorphismsSystem is the base ArchGraphSystem variant: its automorphism
// group is given directly rather than derived from other systems.
type AutomorphismsSystem struct {
	automorphismCache
	reprCache
	degree int
	group  *permgroup.Group
}

// NewAutomorphisms wraps an already-known automorphism group as a System.
func NewAutomorphisms(group *permgroup.Group) *AutomorphismsSystem {
	return &AutomorphismsSystem{degree: group.Degree(), group: group}
}

// NumProcessors implements System.
func (s *AutomorphismsSystem) NumProcessors() int { return s.degree }

// NumChannels implements System: an AutomorphismsSystem carries no channel
// structure of its own.
func (s *AutomorphismsSystem) NumChannels() int { return 0 }

// Automorphisms implements System.
func (s *AutomorphismsSystem) Automorphisms() (*permgroup.Group, error) {
	return s.resolve(func() (*permgroup.Group, error) { return s.group, nil })
}

// Representative implements System.
func (s *AutomorphismsSystem) Representative(mapping taskmapping.Mapping, opts taskmapping.ReprOptions) (taskmapping.Mapping, error) {
	return representativeDirect(s, &s.reprCache, mapping, opts)
}

// Orbit implements System.
func (s *AutomorphismsSystem) Orbit(mapping taskmapping.Mapping) ([]taskmapping.Mapping, error) {
	return orbitDirect(s, mapping)
}

// NumAutomorphismOrbits implements System.
func (s *AutomorphismsSystem) NumAutomorphismOrbits(k int, unique bool) (int, error) {
	return numAutomorphismOrbitsViaBurnside(s, k, unique)
}

// InitRepr implements System.
func (s *AutomorphismsSystem) InitRepr() error {
	_, err := s.Automorphisms()
	s.reprCache.initRepr()
	return err
}

// ResetRepr implements System.
func (s *AutomorphismsSystem) ResetRepr() { s.reprCache.resetRepr() }

// ClusterSystem is the ArchGraphSystem variant for a cluster of
// independent sub-architectures: its automorphism group is the direct
// product of its members' automorphism groups.
type ClusterSystem struct {
	automorphismCache
	members []System
}

// clusterOffsets returns, for each member, the number of PE indices taken
// by the members before it (member i's own PE indices occupy the global
// sub-range [offset+1, offset+member.NumProcessors()]).
func clusterOffsets(members []System) []int {
	offsets := make([]int, len(members))
	sum := 0
	for i, m := range members {
		offsets[i] = sum
		sum += m.NumProcessors()
	}
	return offsets
}

// extractSubMapping collects, in order, every position/value pair of
// mapping whose value falls in the sub-range (lo, hi] (1-based, inclusive
// of hi), returning the positions and the corresponding values.
func extractSubMapping(mapping taskmapping.Mapping, lo, hi int) (positions []int, values taskmapping.Mapping) {
	for pos, v := range mapping {
		if v > lo && v <= hi {
			positions = append(positions, pos)
			values = append(values, v)
		}
	}
	return positions, values
}

// NewCluster builds a ClusterSystem over the given member systems.
func NewCluster(members []System) (*ClusterSystem, error) {
	if len(members) == 0 {
		return nil, ErrEmptyCluster
	}
	return &ClusterSystem{members: members}, nil
}

// NumProcessors implements System: the sum of each member's processors.
func (s *ClusterSystem) NumProcessors() int {
	total := 0
	for _, m := range s.members {
		total += m.NumProcessors()
	}
	return total
}

// Automorphisms implements System, computing the direct product of every
// member's automorphism group.
func (s *ClusterSystem) Automorphisms() (*permgroup.Group, error) {
	return s.resolve(func() (*permgroup.Group, error) {
		factors := make([]*permgroup.Group, len(s.members))
		for i, m := range s.members {
			g, err := m.Automorphisms()
			if err != nil {
				return nil, err
			}
			factors[i] = g
		}
		return permgroup.DirectProduct(factors)
	})
}

// NumChannels implements System: the sum of each member's channel count.
func (s *ClusterSystem) NumChannels() int {
	total := 0
	for _, m := range s.members {
		total += m.NumChannels()
	}
	return total
}

// Representative implements System by canonicalising each member's slice of
// the mapping independently against that member's own automorphism group,
// then writing the results back into their original positions: a cluster's
// automorphisms never mix PEs across members, so the orbit of the whole
// mapping is exactly the product of the members' individual orbits.
func (s *ClusterSystem) Representative(mapping taskmapping.Mapping, opts taskmapping.ReprOptions) (taskmapping.Mapping, error) {
	offsets := clusterOffsets(s.members)
	out := mapping.Clone()

	for i, m := range s.members {
		lo := opts.Offset + offsets[i]
		hi := lo + m.NumProcessors()
		positions, sub := extractSubMapping(mapping, lo, hi)
		if len(sub) == 0 {
			continue
		}

		childOpts := opts
		childOpts.Offset = lo
		repr, err := m.Representative(sub, childOpts)
		if err != nil {
			return nil, err
		}
		for j, pos := range positions {
			out[pos] = repr[j]
		}
	}

	return out, nil
}

// Orbit implements System via breadth-first search over the full direct
// product group: correct for any cluster, though Representative uses the
// cheaper per-member decomposition instead of paying this cost.
func (s *ClusterSystem) Orbit(mapping taskmapping.Mapping) ([]taskmapping.Mapping, error) {
	return orbitDirect(s, mapping)
}

// NumAutomorphismOrbits implements System.
func (s *ClusterSystem) NumAutomorphismOrbits(k int, unique bool) (int, error) {
	return numAutomorphismOrbitsViaBurnside(s, k, unique)
}

// InitRepr implements System, cascading to every member.
func (s *ClusterSystem) InitRepr() error {
	for _, m := range s.members {
		if err := m.InitRepr(); err != nil {
			return err
		}
	}
	return nil
}

// ResetRepr implements System, cascading to every member.
func (s *ClusterSystem) ResetRepr() {
	for _, m := range s.members {
		m.ResetRepr()
	}
}

// UniformSuperSystem is the ArchGraphSystem variant for a uniform
// super-graph: numChannels identical copies of a processor system, wired
// together by a network system, whose automorphism group is the wreath
// product processors wr network.
type UniformSuperSystem struct {
	automorphismCache
	reprCache
	processors System
	network    System
}

// NewUniformSuper builds a UniformSuperSystem from a per-channel processor
// system and a network topology system describing how channels connect.
func NewUniformSuper(processors, network System) *UniformSuperSystem {
	return &UniformSuperSystem{processors: processors, network: network}
}

// NumProcessors implements System: processors-per-channel times channels.
func (s *UniformSuperSystem) NumProcessors() int {
	return s.processors.NumProcessors() * s.network.NumProcessors()
}

// Automorphisms implements System, computing the wreath product of the
// processor system's automorphism group by the network system's.
func (s *UniformSuperSystem) Automorphisms() (*permgroup.Group, error) {
	return s.resolve(func() (*permgroup.Group, error) {
		base, err := s.processors.Automorphisms()
		if err != nil {
			return nil, err
		}
		top, err := s.network.Automorphisms()
		if err != nil {
			return nil, err
		}
		return permgroup.WreathProduct(base, top)
	})
}

// NumChannels implements System: a uniform super-graph's channel count is
// the number of network vertices, one per processor-system copy.
func (s *UniformSuperSystem) NumChannels() int { return s.network.NumProcessors() }

// Representative implements System in two phases, mirroring the wreath
// product's own structure: first each block (one per network vertex) is
// canonicalised independently against the processor system's automorphism
// group (sigma_proto), then the resulting mapping is canonicalised as a
// whole against the block-permutation action the network system's
// automorphism group induces (sigma_super). Running sigma_proto first and
// sigma_super second is valid because sigma_super never reorders points
// within a block, only the blocks themselves.
func (s *UniformSuperSystem) Representative(mapping taskmapping.Mapping, opts taskmapping.ReprOptions) (taskmapping.Mapping, error) {
	blockSize := s.processors.NumProcessors()
	numBlocks := s.network.NumProcessors()

	out := mapping.Clone()
	for b := 0; b < numBlocks; b++ {
		lo := opts.Offset + b*blockSize
		hi := lo + blockSize
		positions, sub := extractSubMapping(mapping, lo, hi)
		if len(sub) == 0 {
			continue
		}

		childOpts := opts
		childOpts.Offset = lo
		repr, err := s.processors.Representative(sub, childOpts)
		if err != nil {
			return nil, err
		}
		for j, pos := range positions {
			out[pos] = repr[j]
		}
	}

	top, err := s.network.Automorphisms()
	if err != nil {
		return nil, err
	}
	superGroup, err := permgroup.BlockPermutationGroup(top, blockSize)
	if err != nil {
		return nil, err
	}

	superOpts := opts
	c := taskmapping.NewCanonicaliser(superGroup, superOpts, s.reprCache.representatives())
	final, _, _, err := c.Representative(out)
	if err != nil {
		return nil, err
	}
	return final, nil
}

// Orbit implements System via breadth-first search over the full wreath
// product group.
func (s *UniformSuperSystem) Orbit(mapping taskmapping.Mapping) ([]taskmapping.Mapping, error) {
	return orbitDirect(s, mapping)
}

// NumAutomorphismOrbits implements System.
func (s *UniformSuperSystem) NumAutomorphismOrbits(k int, unique bool) (int, error) {
	return numAutomorphismOrbitsViaBurnside(s, k, unique)
}

// InitRepr implements System, cascading to the processor and network
// systems and preparing this system's own super-phase cache.
func (s *UniformSuperSystem) InitRepr() error {
	if err := s.processors.InitRepr(); err != nil {
		return err
	}
	if err := s.network.InitRepr(); err != nil {
		return err
	}
	s.reprCache.initRepr()
	return nil
}

// ResetRepr implements System, cascading to the processor and network
// systems and discarding this system's own super-phase cache.
func (s *UniformSuperSystem) ResetRepr() {
	s.processors.ResetRepr()
	s.network.ResetRepr()
	s.reprCache.resetRepr()
}

// GraphSystem is the ArchGraphSystem variant computing its automorphism
// group from an explicit graph description via an external GraphGenerator.
type GraphSystem struct {
	automorphismCache
	reprCache
	spec      GraphSpec
	generator GraphGenerator
	opts      *bsgs.Options
}

// NewGraph builds a GraphSystem over spec, deferring automorphism
// computation to generator.
func NewGraph(spec GraphSpec, generator GraphGenerator) *GraphSystem {
	return &GraphSystem{spec: spec, generator: generator}
}

// NumProcessors implements System.
func (s *GraphSystem) NumProcessors() int { return s.spec.NumVertices }

// Automorphisms implements System. The group is built over the degree the
// generator reports, which a reducing external tool may choose
// independently of the spec's own vertex count.
func (s *GraphSystem) Automorphisms() (*permgroup.Group, error) {
	return s.resolve(func() (*permgroup.Group, error) {
		if s.generator == nil {
			return nil, ErrNoGenerator
		}
		degree, gens, err := s.generator.Generate(s.spec)
		if err != nil {
			return nil, err
		}
		return permgroup.New(degree, gens, s.opts)
	})
}

// NumChannels implements System: a graph system's channels are its edges.
func (s *GraphSystem) NumChannels() int { return len(s.spec.Edges) }

// Representative implements System.
func (s *GraphSystem) Representative(mapping taskmapping.Mapping, opts taskmapping.ReprOptions) (taskmapping.Mapping, error) {
	return representativeDirect(s, &s.reprCache, mapping, opts)
}

// Orbit implements System.
func (s *GraphSystem) Orbit(mapping taskmapping.Mapping) ([]taskmapping.Mapping, error) {
	return orbitDirect(s, mapping)
}

// NumAutomorphismOrbits implements System.
func (s *GraphSystem) NumAutomorphismOrbits(k int, unique bool) (int, error) {
	return numAutomorphismOrbitsViaBurnside(s, k, unique)
}

// InitRepr implements System.
func (s *GraphSystem) InitRepr() error {
	_, err := s.Automorphisms()
	s.reprCache.initRepr()
	return err
}

// ResetRepr implements System.
func (s *GraphSystem) ResetRepr() { s.reprCache.resetRepr() }
