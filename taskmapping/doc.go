// Package taskmapping canonicalises task-to-processor assignments under an
// architecture graph's automorphism group: two mappings related by a group
// element are equivalent placements, and a Canonicaliser picks one
// representative mapping per orbit so that equivalent mappings compare
// equal. Representatives are cached by canonical string so that repeated
// lookups of already-seen orbits short-circuit the search.
package taskmapping
