// Package perm provides dense permutations of the domain {1..n} and ordered
// sets of permutations sharing a common degree.
//
// A Permutation is immutable after construction: Compose, Inverse, Extended,
// Shifted and Restricted all return fresh values. The domain is
// 1-based throughout, matching the rest of symarch (PE indices, base points,
// task-mapping entries are all 1-based).
//
// Composition follows the "permutations as functions acting on the right"
// convention used throughout symarch: (p.Compose(q))(i) == q.At(p.At(i)).
package perm
