package taskmapping

import (
	"math"

	"golang.org/x/exp/rand"
)

// representativeLocalSearchSA is LocalSearch with a linear-cooling simulated
// annealing acceptance rule: at each step a uniformly random move is
// proposed and accepted unconditionally if it raises the mapping's value,
// or with probability exp(delta/temperature) otherwise. Temperature cools
// linearly, T_i = (I-i-1)/I * T_init, over I = SAIterations steps. The last
// accepted state is returned: a valid member of the input's orbit, though
// not necessarily its lexicographic minimum, which is the trade this method
// makes to stay usable on groups far too large for Iterate or Orbits.
func (c *Canonicaliser) representativeLocalSearchSA(mapping Mapping) (Mapping, error) {
	moves := c.moveSet()
	if len(moves) == 0 {
		return mapping.Clone(), nil
	}

	tmin, tmax := c.activeWindow()
	iterations := c.opts.saIterations()
	tInit := c.opts.saInitialTemperature()

	rng := rand.New(rand.NewSource(c.opts.RNGSeed))
	current := mapping.Clone()
	value := saValue(current, tmin, tmax)

	for i := 0; i < iterations; i++ {
		temperature := float64(iterations-i-1) / float64(iterations) * tInit

		move := moves[rng.Intn(len(moves))]
		candidate := c.permute(current, move)
		candidateValue := saValue(candidate, tmin, tmax)

		delta := candidateValue - value
		if delta > 0 || acceptWorse(delta, temperature, rng) {
			current = candidate
			value = candidateValue
		}
	}

	return current, nil
}

// activeWindow returns the PE index range the annealing value function
// scores over: the group's moved-point window, shifted by the configured
// offset (the whole domain when the group moves nothing).
func (c *Canonicaliser) activeWindow() (tmin, tmax int) {
	gens := c.group.Generators()
	if gens.Trivial() {
		return c.opts.Offset + 1, c.opts.Offset + c.group.Degree()
	}
	return c.opts.Offset + gens.SmallestMovedPoint(), c.opts.Offset + gens.LargestMovedPoint()
}

// saValue scores a mapping; larger is better (closer to the lexicographic
// minimum). Only tasks mapped inside the window [tmin, tmax] contribute.
// Each contributing task adds (tmax - task) weighted by an increasing power
// of mult = tmax-tmin+1, from the rightmost contributing task outward, so a
// disagreement in an early task always outweighs any combination of later
// ones. The raw sum S is compressed to log(S - (tmax - tmin)) / numTasks to
// keep deltas in a range a temperature around 1.0 discriminates usefully.
func saValue(m Mapping, tmin, tmax int) float64 {
	mult := float64(tmax - tmin + 1)
	s := 0.0
	weight := 1.0
	contributed := false
	for i := len(m) - 1; i >= 0; i-- {
		v := m[i]
		if v < tmin || v > tmax {
			continue
		}
		s += weight * float64(tmax-v)
		weight *= mult
		contributed = true
	}
	if !contributed {
		return 0
	}

	arg := s - float64(tmax-tmin)
	if arg <= 0 {
		return math.Inf(-1)
	}
	return math.Log(arg) / float64(len(m))
}

// acceptWorse draws the Metropolis acceptance for a non-improving move:
// probability exp(delta/temperature), with delta <= 0.
func acceptWorse(delta, temperature float64, rng *rand.Rand) bool {
	if temperature <= 0 {
		return false
	}
	return rng.Float64() < math.Exp(delta/temperature)
}
