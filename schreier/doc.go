// Package schreier implements the transversal data structure used by each
// level of a BSGS stabiliser chain: given the orbit of a root point b under a
// set of generators, recover, for any orbit point x, a transversal element
// u_x with u_x(b) = x.
//
// Two interchangeable representations satisfy the same Structure interface:
//
//   - ExplicitTable stores u_x directly for every orbit point (O(1)
//     transversal lookup, O(n) work per discovered edge).
//   - Tree stores, for each non-root node, a parent point and a label index,
//     and reconstructs u_x on demand by walking to the root (O(depth)
//     transversal lookup, O(1) work per discovered edge).
//
// orbit.Generate (package orbit) populates either representation while doing
// its BFS; schreier itself never traverses a generating set on its own.
package schreier
