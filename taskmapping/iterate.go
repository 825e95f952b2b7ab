package taskmapping

// representativeIterate enumerates every element of c.group and keeps the
// lexicographically smallest image of mapping: exact, but cost-linear in
// |G|, so only practical for small groups.
func (c *Canonicaliser) representativeIterate(mapping Mapping) (Mapping, error) {
	best := mapping.Clone()
	it := c.group.Elements()
	for el, ok := it.Next(); ok; el, ok = it.Next() {
		candidate := c.permute(mapping, el.Perm)
		if candidate.Less(best) {
			best = candidate
		}
	}
	return best, nil
}
