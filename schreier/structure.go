package schreier

import "github.com/katalvlaran/symarch/perm"

// Kind selects which concrete Structure implementation New builds.
type Kind int

const (
	// Explicit stores a full transversal permutation per orbit point.
	Explicit Kind = iota
	// Tree stores parent+label per orbit point and reconstructs
	// transversals by walking to the root.
	Tree
	// ShallowTree behaves exactly like Tree; it exists as a distinct
	// option value because bsgs.Options.Transversals distinguishes it from
	// Tree (see DESIGN.md for the rationale), but both select the same
	// implementation in this build.
	ShallowTree
)

// Structure is a Schreier transversal: rooted at a fixed point, it answers
// queries about the orbit of that root under whatever generators were used
// to build it.
type Structure interface {
	// Root returns the point this structure is rooted at.
	Root() int

	// AddLabel records label in this structure's label vector and returns
	// its index, for later reference by CreateEdge.
	AddLabel(label perm.Permutation) int

	// CreateEdge records that applying label (referenced by its index)
	// carries origin to destination.
	CreateEdge(origin, destination, labelIndex int)

	// Nodes returns every point currently known to lie in the orbit,
	// including the root, in no particular order.
	Nodes() []int

	// Labels returns every label ever added via AddLabel.
	Labels() perm.Set

	// Contains reports whether x is currently known to lie in the orbit.
	Contains(x int) bool

	// Incoming reports whether g is exactly the recorded edge label
	// carrying x to g(x), i.e. whether g(x) was reached from x by an edge
	// labelled g; used to filter out Schreier generators that would reduce
	// to the identity.
	Incoming(x int, g perm.Permutation) bool

	// Transversal returns u_x, the group element with u_x(Root()) == x.
	// Panics with ErrNotInOrbit if x is not in the orbit.
	Transversal(x int) perm.Permutation
}

// New builds an empty Structure of the requested kind, rooted at root, over
// a domain of the given degree.
func New(kind Kind, root, degree int) Structure {
	switch kind {
	case Explicit:
		return newExplicitTable(root, degree)
	default:
		return newTree(root, degree)
	}
}
