package bsgs

import (
	"context"

	"github.com/katalvlaran/symarch/orbit"
	"github.com/katalvlaran/symarch/perm"
	"github.com/katalvlaran/symarch/randomizer"
	"github.com/katalvlaran/symarch/schreier"
	"github.com/rs/zerolog"
)

// Build constructs a BSGS for the group generated by generators, a
// PermutationSet of the given degree, using opts (or DefaultOptions if nil).
// An empty generating set yields the trivial group.
func Build(degree int, generators perm.Set, opts *Options) (*BSGS, error) {
	return BuildContext(context.Background(), degree, generators, opts)
}

// BuildContext is Build with a context.Context that is polled at each
// Schreier-generator queue step and each product-replacement draw, and
// honoured for Options.Timeout via an errgroup-managed worker.
func BuildContext(ctx context.Context, degree int, generators perm.Set, opts *Options) (*BSGS, error) {
	o := FillDefaults(opts)

	if generators.Trivial() {
		return &BSGS{degree: degree, transversals: o.Transversals}, nil
	}
	if generators.Degree() != degree {
		return nil, ErrDegreeMismatch
	}

	if o.Timeout > 0 {
		return buildWithTimeout(ctx, degree, generators, o)
	}
	return buildDispatch(ctx, degree, generators, o)
}

func buildDispatch(ctx context.Context, degree int, generators perm.Set, o Options) (*BSGS, error) {
	log := o.logger()

	if o.CheckAltSym && degree > 8 {
		if pr, err := randomizer.New(generators); err == nil {
			if pr.TestSymmetric(1e-6) {
				log.Debug().Int("degree", degree).Msg("recognised symmetric group, using textbook BSGS")
				return buildSymmetric(degree, o.Transversals), nil
			}
			if pr.TestAlternating(1e-6) {
				log.Debug().Int("degree", degree).Msg("recognised alternating group, using textbook BSGS")
				return buildAlternating(degree, o.Transversals), nil
			}
		}
	}

	switch o.Construction {
	case Solve:
		return nil, ErrSolveUnsupported
	case SchreierSimsRandom:
		return constructRandomized(ctx, degree, generators, o)
	case Auto, SchreierSims:
		return constructDeterministic(ctx, degree, generators, o)
	default:
		return nil, ErrUnknownConstruction
	}
}

// builder holds the mutable state of a chain under construction.
type builder struct {
	degree    int
	base      []int
	strongGen perm.Set
	levels    []*level
	transKind schreier.Kind
	log       zerolog.Logger
}

func newBuilder(degree int, transKind schreier.Kind) *builder {
	return &builder{degree: degree, transKind: transKind, log: zerolog.Nop()}
}

func (b *builder) finish() *BSGS {
	return &BSGS{
		degree:           b.degree,
		base:             append([]int(nil), b.base...),
		strongGenerators: b.strongGen,
		levels:           b.levels,
		transversals:     b.transKind,
	}
}

func (b *builder) stripFrom(p perm.Permutation, offset int) (perm.Permutation, int) {
	return stripThrough(b.levels, p, offset)
}

// cleanup removes identity permutations and closes the set under inverses,
// matching "from G with identities removed and inverses included".
func cleanup(generators perm.Set) perm.Set {
	var cleaned perm.Set
	for _, g := range generators.Slice() {
		if !g.IsIdentity() {
			_ = cleaned.Insert(g)
		}
	}
	cleaned.InsertInverses()
	return cleaned
}

// chooseInitialBase picks a base that separates every non-identity
// generator: for each generator, in order, if it fixes every point already
// in the base, its first moved point (not already present) is appended.
func chooseInitialBase(gens perm.Set, degree int) []int {
	var base []int
	for _, g := range gens.Slice() {
		if g.Stabilizes(base...) {
			for x := 1; x <= degree; x++ {
				if g.At(x) != x && !containsInt(base, x) {
					base = append(base, x)
					break
				}
			}
		}
	}
	return base
}

func containsInt(xs []int, x int) bool {
	for _, y := range xs {
		if y == x {
			return true
		}
	}
	return false
}

func (b *builder) rebuildLevel(idx int) {
	lv := b.levels[idx]
	st := schreier.New(b.transKind, lv.point, b.degree)
	orbit.Generate(lv.point, lv.gens, st)
	lv.structure = st
}

// filterStabilizing returns the subset of gens that fixes every point in
// prefix.
func filterStabilizing(gens perm.Set, prefix []int) perm.Set {
	var out perm.Set
	if gens.Trivial() {
		return out
	}
	for _, g := range gens.Slice() {
		if g.Stabilizes(prefix...) {
			_ = out.Insert(g)
		}
	}
	return out
}

// extendBaseWith appends a new base point and level: the first point moved
// by residue that is not already part of the base.
func (b *builder) extendBaseWith(residue perm.Permutation) bool {
	for x := 1; x <= b.degree; x++ {
		if residue.At(x) != x && !containsInt(b.base, x) {
			b.base = append(b.base, x)
			b.levels = append(b.levels, &level{point: x})
			b.rebuildLevel(len(b.levels) - 1)
			b.log.Debug().Int("point", x).Int("level", len(b.levels)-1).Msg("extended base")
			return true
		}
	}
	return false
}

// addStrongGenerator inserts residue (and its inverse) into the global
// strong generating set and into every level j >= from whose prefix
// base[0:j] residue stabilises, regenerating that level's orbit and Schreier
// structure.
func (b *builder) addStrongGenerator(residue perm.Permutation, from int) {
	_ = b.strongGen.Insert(residue)
	_ = b.strongGen.Insert(residue.Inverse())
	b.strongGen.Dedup()

	for j := from; j < len(b.levels); j++ {
		if !residue.Stabilizes(b.base[:j]...) {
			continue
		}
		_ = b.levels[j].gens.Insert(residue)
		_ = b.levels[j].gens.Insert(residue.Inverse())
		b.levels[j].gens.Dedup()
		b.rebuildLevel(j)
	}
}

// schreierSimsComplete runs the deterministic Schreier–Sims main loop over
// the builder's current base/levels/strong generators until every level's
// Schreier generators strip completely, extending the base and strong
// generating set as needed.
func (b *builder) schreierSimsComplete(ctx context.Context) error {
	i := len(b.levels) - 1
	for i >= 0 {
		if err := ctx.Err(); err != nil {
			return ErrAborted
		}

		queue := newGeneratorQueue(b.levels[i].gens, orbit.Of(b.levels[i].structure.Nodes()), b.levels[i].structure)
		changed := false

		for {
			if err := ctx.Err(); err != nil {
				return ErrAborted
			}

			sg, ok := queue.Next()
			if !ok {
				break
			}

			residue, depth := b.stripFrom(sg, i)
			if depth == len(b.levels) && residue.IsIdentity() {
				continue
			}

			if i == len(b.levels)-1 {
				b.extendBaseWith(residue)
			}
			b.addStrongGenerator(residue, i)
			changed = true
			break
		}

		if changed {
			// A change at level i may have touched every deeper level too;
			// restart scanning from the new deepest level rather than
			// merely re-entering i.
			i = len(b.levels) - 1
			continue
		}
		i--
	}
	return nil
}

func constructDeterministic(ctx context.Context, degree int, generators perm.Set, o Options) (*BSGS, error) {
	gens := cleanup(generators)
	if gens.Trivial() {
		return &BSGS{degree: degree, transversals: o.Transversals}, nil
	}

	base := chooseInitialBase(gens, degree)
	b := newBuilder(degree, o.Transversals)
	b.log = o.logger()
	b.base = base
	b.strongGen = gens
	b.levels = make([]*level, len(base))
	for i, bp := range base {
		b.levels[i] = &level{point: bp, gens: filterStabilizing(gens, base[:i])}
		b.rebuildLevel(i)
	}

	if err := b.schreierSimsComplete(ctx); err != nil {
		return nil, err
	}
	return b.finish(), nil
}

func constructRandomized(ctx context.Context, degree int, generators perm.Set, o Options) (*BSGS, error) {
	gens := cleanup(generators)
	if gens.Trivial() {
		return &BSGS{degree: degree, transversals: o.Transversals}, nil
	}

	base := chooseInitialBase(gens, degree)
	b := newBuilder(degree, o.Transversals)
	b.log = o.logger()
	b.base = base
	b.strongGen = gens
	b.levels = make([]*level, len(base))
	for i, bp := range base {
		b.levels[i] = &level{point: bp, gens: filterStabilizing(gens, base[:i])}
		b.rebuildLevel(i)
	}

	w := o.SchreierSimsRandomW
	if w <= 0 {
		w = DefaultOptions().SchreierSimsRandomW
	}
	retries := o.SchreierSimsRandomRetries
	if retries <= 0 {
		retries = 1
	}

	pr, err := randomizer.New(b.strongGen)
	if err != nil {
		return nil, err
	}

	for attempt := 0; attempt < retries; attempt++ {
		consecutive := 0
		for consecutive < w {
			if err := ctx.Err(); err != nil {
				return nil, ErrAborted
			}

			g := pr.Next()
			residue, depth := b.stripFrom(g, 0)
			if depth == len(b.levels) && residue.IsIdentity() {
				consecutive++
				continue
			}

			at := depth
			if at == len(b.levels) {
				b.extendBaseWith(residue)
				at = len(b.levels) - 1
			}
			b.addStrongGenerator(residue, at)
			consecutive = 0
		}

		if !o.SchreierSimsRandomUseKnownOrder || o.SchreierSimsRandomKnownOrder == nil {
			return b.finish(), nil
		}
		if b.finish().Order().Cmp(o.SchreierSimsRandomKnownOrder) == 0 {
			return b.finish(), nil
		}
	}

	// Randomised construction's order didn't settle against the known
	// order within the retry budget: fall back to an exact deterministic
	// completion pass over whatever partial chain was built.
	b.log.Debug().Int("retries", retries).Msg("randomised construction fell back to deterministic completion")
	if err := b.schreierSimsComplete(ctx); err != nil {
		return nil, err
	}
	if o.SchreierSimsRandomUseKnownOrder && o.SchreierSimsRandomKnownOrder != nil {
		if b.finish().Order().Cmp(o.SchreierSimsRandomKnownOrder) != 0 {
			return nil, ErrOrderMismatch
		}
	}
	return b.finish(), nil
}

// buildSymmetric installs the textbook BSGS for the symmetric group S_n:
// base (1,...,n-1), strong generators {(i,n) : i = n-1,...,1}, level i's
// fundamental orbit {i,...,n}.
func buildSymmetric(n int, transKind schreier.Kind) *BSGS {
	b := newBuilder(n, transKind)
	if n < 2 {
		return b.finish()
	}

	for i := 1; i <= n-1; i++ {
		b.base = append(b.base, i)
	}
	b.levels = make([]*level, len(b.base))

	var all perm.Set
	for i := n - 1; i >= 1; i-- {
		t := perm.MustNew(transposition(n, i, n))
		_ = all.Insert(t)
	}
	b.strongGen = all

	for idx, bp := range b.base {
		var gens perm.Set
		for i := bp; i <= n-1; i++ {
			_ = gens.Insert(perm.MustNew(transposition(n, i, n)))
		}
		b.levels[idx] = &level{point: bp, gens: gens}
		b.rebuildLevel(idx)
	}
	return b.finish()
}

// buildAlternating installs the textbook BSGS for the alternating group
// A_n: base (1,...,n-2), strong generators the 3-cycles {(i,n-1,n)} and
// their inverses, level i's fundamental orbit {i,...,n}.
func buildAlternating(n int, transKind schreier.Kind) *BSGS {
	b := newBuilder(n, transKind)
	if n < 4 {
		return b.finish()
	}

	for i := 1; i <= n-2; i++ {
		b.base = append(b.base, i)
	}
	b.levels = make([]*level, len(b.base))

	var all perm.Set
	for i := n - 2; i >= 1; i-- {
		c := perm.MustNew(threeCycle(n, i, n-1, n))
		_ = all.Insert(c)
		_ = all.Insert(c.Inverse())
	}
	b.strongGen = all

	for idx, bp := range b.base {
		var gens perm.Set
		for i := bp; i <= n-2; i++ {
			c := perm.MustNew(threeCycle(n, i, n-1, n))
			_ = gens.Insert(c)
			_ = gens.Insert(c.Inverse())
		}
		b.levels[idx] = &level{point: bp, gens: gens}
		b.rebuildLevel(idx)
	}
	return b.finish()
}

func transposition(n, a, c int) []int {
	image := make([]int, n)
	for i := range image {
		image[i] = i + 1
	}
	image[a-1], image[c-1] = c, a
	return image
}

func threeCycle(n, a, b2, c int) []int {
	image := make([]int, n)
	for i := range image {
		image[i] = i + 1
	}
	image[a-1] = b2
	image[b2-1] = c
	image[c-1] = a
	return image
}
