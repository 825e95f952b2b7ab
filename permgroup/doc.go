// Package permgroup wraps a base-and-strong-generating-set chain as a
// queryable permutation group: order, membership, random and exhaustive
// element generation, the classical constructors (symmetric, cyclic,
// dihedral, alternating), and the structural decompositions (direct
// product, wreath product, disjoint decomposition, block systems) used to
// describe architecture-graph symmetry groups.
package permgroup
