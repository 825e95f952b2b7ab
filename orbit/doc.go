// Package orbit computes the orbit of a point under a set of permutations
// via breadth-first search, optionally recording a schreier.Structure along
// the way, and partitions an entire domain into orbits.
package orbit
