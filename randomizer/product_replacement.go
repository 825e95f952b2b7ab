package randomizer

import (
	"math"

	"github.com/katalvlaran/symarch/perm"
	"golang.org/x/exp/rand"
)

const (
	// DefaultAccumulatorSize is N, the default accumulator array length.
	DefaultAccumulatorSize = 10
	// DefaultBurnIn is W, the number of discarded draws performed at
	// construction time.
	DefaultBurnIn = 20
)

// Option configures a ProductReplacement generator.
type Option func(*config)

type config struct {
	accumulatorSize int
	burnIn          int
	source          rand.Source
}

// WithAccumulatorSize overrides N, the accumulator array length.
func WithAccumulatorSize(n int) Option {
	return func(c *config) { c.accumulatorSize = n }
}

// WithBurnIn overrides W, the number of discarded draws at construction.
func WithBurnIn(w int) Option {
	return func(c *config) { c.burnIn = w }
}

// WithSeed seeds the PRNG deterministically, for reproducible test runs.
func WithSeed(seed uint64) Option {
	return func(c *config) { c.source = rand.NewSource(seed) }
}

// ProductReplacement generates pseudo-random elements of the group
// generated by a permutation set, via the product-replacement algorithm: an
// accumulator array of N group elements is repeatedly scrambled by replacing
// one entry with its product (in a random order, optionally inverted) with
// another, and a running accumulator tracks the output stream.
type ProductReplacement struct {
	degree int
	acc    []perm.Permutation
	accum  perm.Permutation
	rng    *rand.Rand
}

// New builds a ProductReplacement over generators, padding the accumulator
// to the configured size by cycling through the supplied generators, then
// performs the configured burn-in.
func New(generators perm.Set, opts ...Option) (*ProductReplacement, error) {
	if generators.Trivial() {
		return nil, ErrEmptyGenerators
	}

	cfg := config{accumulatorSize: DefaultAccumulatorSize, burnIn: DefaultBurnIn}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.source == nil {
		cfg.source = rand.NewSource(1)
	}

	gens := generators.Slice()
	degree := generators.Degree()

	acc := make([]perm.Permutation, cfg.accumulatorSize)
	for i := range acc {
		acc[i] = gens[i%len(gens)]
	}

	pr := &ProductReplacement{
		degree: degree,
		acc:    acc,
		accum:  perm.Identity(degree),
		rng:    rand.New(cfg.source),
	}

	for i := 0; i < cfg.burnIn; i++ {
		pr.Next()
	}

	return pr, nil
}

// Next returns the next pseudo-random element of the generated group.
func (pr *ProductReplacement) Next() perm.Permutation {
	n := len(pr.acc)
	i := pr.rng.Intn(n)
	j := pr.rng.Intn(n - 1)
	if j >= i {
		j++
	}

	gj := pr.acc[j]
	if pr.rng.Intn(2) == 0 {
		gj = gj.Inverse()
	}

	if pr.rng.Intn(2) == 0 {
		pr.acc[i] = pr.acc[i].Compose(gj)
	} else {
		pr.acc[i] = gj.Compose(pr.acc[i])
	}

	if pr.rng.Intn(2) == 0 {
		pr.accum = pr.accum.Compose(pr.acc[i])
	} else {
		pr.accum = pr.acc[i].Compose(pr.accum)
	}

	return pr.accum
}

// TestAlternating runs the cycle-type Monte Carlo test for recognising that
// the generated group is the alternating group A_n, with false-positive
// probability below epsilon. It first rejects immediately if any element
// currently in the accumulator is odd, since A_n contains only even
// permutations.
func (pr *ProductReplacement) TestAlternating(epsilon float64) bool {
	if pr.degree < 8 {
		return false
	}
	for _, g := range pr.acc {
		if !g.Even() {
			return false
		}
	}

	for i, tries := 0, pr.tries(epsilon); i < tries; i++ {
		if hasDiagnosticCycle(pr.Next(), pr.degree) {
			return true
		}
	}
	return false
}

// TestSymmetric runs the cycle-type Monte Carlo test for recognising that
// the generated group is the full symmetric group S_n, with false-positive
// probability below epsilon.
func (pr *ProductReplacement) TestSymmetric(epsilon float64) bool {
	if pr.degree < 8 {
		return false
	}

	sawOdd := false
	for i, tries := 0, pr.tries(epsilon); i < tries; i++ {
		g := pr.Next()
		if !g.Even() {
			sawOdd = true
		}
		if sawOdd && hasDiagnosticCycle(g, pr.degree) {
			return true
		}
	}
	return false
}

// tries returns the number of Monte Carlo draws needed so that, under the
// classical density bound for diagnostic cycles (at least 1/(4 ln n) of S_n
// elements carry one), the probability of missing every one of them falls
// below epsilon.
func (pr *ProductReplacement) tries(epsilon float64) int {
	density := 1.0 / (4.0 * math.Log(float64(pr.degree)))
	t := math.Log(epsilon) / math.Log(1-density)
	return int(math.Ceil(t))
}

// hasDiagnosticCycle reports whether g has a cycle of prime length p with
// n/2 < p <= n-2: such an element exists in S_n/A_n acting on n points and,
// for a primitive group containing it, forces the group to be S_n or A_n
// (Jordan's theorem). This is the standard recognition primitive used by
// GAP's RecogniseSn/RecogniseAn.
func hasDiagnosticCycle(g perm.Permutation, n int) bool {
	for _, cycle := range g.Cycles() {
		p := len(cycle)
		if p > n/2 && p <= n-2 && isPrime(p) {
			return true
		}
	}
	return false
}

func isPrime(k int) bool {
	if k < 2 {
		return false
	}
	for d := 2; d*d <= k; d++ {
		if k%d == 0 {
			return false
		}
	}
	return true
}
