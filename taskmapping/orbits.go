package taskmapping

// representativeOrbits performs an exact breadth-first search of mapping's
// orbit under c.group's generating set (and their inverses, if
// AugmentWithInverses), keeping the lexicographically smallest mapping
// discovered. This is the standard orbit-of-a-point BFS applied to the
// mapping space instead of the integer domain, and is exact regardless of
// group size, unlike Iterate, whose cost scales with |G| rather than orbit
// size.
func (c *Canonicaliser) representativeOrbits(mapping Mapping) (Mapping, error) {
	moves := c.moveSet()

	seen := map[string]bool{mapping.Key(): true}
	queue := []Mapping{mapping}
	best := mapping

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		for _, g := range moves {
			next := c.permute(cur, g)
			key := next.Key()
			if seen[key] {
				continue
			}
			// Touching a mapping already recorded as a representative means
			// this orbit has been canonicalised before, and that recorded
			// mapping is its canonical form.
			if _, ok := c.reps.Lookup(next); ok {
				return next, nil
			}
			seen[key] = true
			queue = append(queue, next)

			if next.Less(best) {
				best = next
			}
		}
	}

	return best, nil
}
