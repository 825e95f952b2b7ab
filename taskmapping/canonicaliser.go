package taskmapping

import (
	"github.com/katalvlaran/symarch/perm"
	"github.com/katalvlaran/symarch/permgroup"
	"golang.org/x/exp/rand"
)

// Canonicaliser picks one representative Mapping per orbit of a fixed
// permutation group, backed by a shared Representatives cache.
type Canonicaliser struct {
	group *permgroup.Group
	opts  ReprOptions
	reps  *Representatives
}

// NewCanonicaliser builds a Canonicaliser over group using opts, recording
// discovered orbits in reps (which may be shared across Canonicalisers over
// the same group; nil gives this Canonicaliser a fresh cache of its own).
func NewCanonicaliser(group *permgroup.Group, opts ReprOptions, reps *Representatives) *Canonicaliser {
	if reps == nil {
		reps = NewRepresentatives()
	}
	return &Canonicaliser{group: group, opts: opts, reps: reps}
}

// Representatives returns the cache this Canonicaliser records into.
func (c *Canonicaliser) Representatives() *Representatives { return c.reps }

// Representative returns the canonical form of mapping's orbit under the
// configured group and method, the orbit's ID in the shared Representatives
// cache, and whether that orbit had not been seen before.
func (c *Canonicaliser) Representative(mapping Mapping) (Mapping, int, bool, error) {
	if len(mapping) == 0 {
		return nil, 0, false, ErrEmptyMapping
	}
	low, high := c.opts.Offset+1, c.opts.Offset+c.group.Degree()
	for _, v := range mapping {
		if v < low || v > high {
			return nil, 0, false, ErrPEOutOfRange
		}
	}

	if c.opts.Match {
		if id, ok := c.reps.Lookup(mapping); ok {
			return mapping.Clone(), id, false, nil
		}
	}

	if c.opts.Symmetric {
		if smp, lmp, ok := c.group.SymmetricWindow(); ok {
			canonical := mapping.FirstOccurrenceFormWindow(smp+c.opts.Offset, lmp+c.opts.Offset)
			isNew, id := c.reps.Insert(canonical)
			return canonical, id, isNew, nil
		}
	}

	var canonical Mapping
	var err error
	switch c.opts.Method {
	case Iterate:
		canonical, err = c.representativeIterate(mapping)
	case Orbits:
		canonical, err = c.representativeOrbits(mapping)
	case LocalSearch:
		canonical, err = c.representativeLocalSearch(mapping)
	case LocalSearchSA:
		canonical, err = c.representativeLocalSearchSA(mapping)
	default:
		return nil, 0, false, ErrUnknownMethod
	}
	if err != nil {
		return nil, 0, false, err
	}

	isNew, id := c.reps.Insert(canonical)
	return canonical, id, isNew, nil
}

// permute applies p to mapping, honouring c.opts.Offset.
func (c *Canonicaliser) permute(mapping Mapping, p perm.Permutation) Mapping {
	return mapping.PermutedOffset(p, c.opts.Offset)
}

// moveSet returns the permutations a search may apply at each step: the
// group's generators, plus their inverses when AugmentWithInverses is set,
// plus AppendRandomGenerators pseudo-random group elements.
func (c *Canonicaliser) moveSet() []perm.Permutation {
	gens := c.group.Generators().Slice()
	moves := make([]perm.Permutation, 0, 2*len(gens)+c.opts.AppendRandomGenerators)
	moves = append(moves, gens...)
	if c.opts.AugmentWithInverses {
		for _, g := range gens {
			moves = append(moves, g.Inverse())
		}
	}
	if c.opts.AppendRandomGenerators > 0 && !c.group.Trivial() {
		rng := rand.New(rand.NewSource(c.opts.RNGSeed))
		for i := 0; i < c.opts.AppendRandomGenerators; i++ {
			moves = append(moves, c.group.RandomElement(rng))
		}
	}
	return moves
}
