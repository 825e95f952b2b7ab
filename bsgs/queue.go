package bsgs

import (
	"github.com/katalvlaran/symarch/orbit"
	"github.com/katalvlaran/symarch/perm"
	"github.com/katalvlaran/symarch/schreier"
)

// generatorQueue lazily enumerates the Schreier generators of one BSGS
// level, sg(beta, s) = u_beta . s . u_{s(beta)}^-1, for beta ranging over
// the level's fundamental orbit and s over its strong generators, in
// lexicographic (beta-outer, s-inner) order. Pairs for which the level's
// Schreier structure already records s as the incoming edge of s(beta) are
// skipped, since those reduce to the identity.
type generatorQueue struct {
	gens  []perm.Permutation
	betas []int
	ss    schreier.Structure

	bi, gi int
}

func newGeneratorQueue(strongGens perm.Set, fundamentalOrbit orbit.Orbit, ss schreier.Structure) *generatorQueue {
	q := &generatorQueue{ss: ss}
	if !strongGens.Trivial() {
		q.gens = strongGens.Slice()
	}
	q.betas = fundamentalOrbit.Slice()
	return q
}

// Next returns the next Schreier generator, or false once the queue is
// exhausted.
func (q *generatorQueue) Next() (perm.Permutation, bool) {
	for {
		if q.bi >= len(q.betas) {
			return perm.Permutation{}, false
		}
		if q.gi >= len(q.gens) {
			q.bi++
			q.gi = 0
			continue
		}

		beta := q.betas[q.bi]
		s := q.gens[q.gi]
		q.gi++

		if q.ss.Incoming(beta, s) {
			continue
		}

		uBeta := q.ss.Transversal(beta)
		uSBeta := q.ss.Transversal(s.At(beta))
		return uBeta.Compose(s).Compose(uSBeta.Inverse()), true
	}
}
