// Package archgraph models the symmetry group of a processor/network
// architecture graph as an ArchGraphSystem: a source of an automorphism
// group that may itself be built from other systems (a cluster's direct
// product of its members, a uniform super-graph's wreath product of a
// processor graph and a network topology) or computed from an explicit
// graph description via an external generator (a stand-in for a
// nauty-style automorphism search). Each system computes its automorphism
// group at most once, cached behind a sync.Once.
package archgraph
