package taskmapping

// representativeLocalSearch performs a bounded hill-climbing search from
// mapping: at each step it examines every neighbour reachable by one move
// and, per c.opts.Variant, either (BFS) advances to the best strictly
// improving neighbour found across the whole frontier, or (DFS) advances
// to the first strictly improving neighbour encountered. It stops when no
// move improves on the current best or c.opts.maxSteps() is exhausted.
// Heuristic: unlike Orbits, it does not guarantee the orbit's true minimum
// for move sets whose improving gradient has local optima.
func (c *Canonicaliser) representativeLocalSearch(mapping Mapping) (Mapping, error) {
	moves := c.moveSet()
	current := mapping.Clone()

	for step := 0; step < c.opts.maxSteps(); step++ {
		improved := false

		if c.opts.Variant == DFS {
			for _, g := range moves {
				candidate := c.permute(current, g)
				if candidate.Less(current) {
					current = candidate
					improved = true
					break
				}
			}
		} else {
			best := current
			for _, g := range moves {
				candidate := c.permute(current, g)
				if candidate.Less(best) {
					best = candidate
				}
			}
			if best.Less(current) {
				current = best
				improved = true
			}
		}

		if !improved {
			break
		}
	}

	return current, nil
}
