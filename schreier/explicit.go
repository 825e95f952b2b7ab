package schreier

import "github.com/katalvlaran/symarch/perm"

// ExplicitTable is the "explicit transversals" Structure variant: it stores
// u_x directly for every orbit point x, giving O(1) Transversal lookups at
// the cost of an O(degree) write per discovered edge.
type ExplicitTable struct {
	root        int
	degree      int
	labels      []perm.Permutation
	transversal map[int]perm.Permutation
	edgeLabel   map[int]int // destination -> label index of its incoming edge
}

func newExplicitTable(root, degree int) *ExplicitTable {
	t := &ExplicitTable{
		root:        root,
		degree:      degree,
		transversal: make(map[int]perm.Permutation),
		edgeLabel:   make(map[int]int),
	}
	t.transversal[root] = perm.Identity(degree)
	return t
}

func (t *ExplicitTable) Root() int { return t.root }

func (t *ExplicitTable) AddLabel(label perm.Permutation) int {
	t.labels = append(t.labels, label)
	return len(t.labels) - 1
}

// CreateEdge records that origin --label--> destination, and computes
// u_destination = u_origin . label directly, since Explicit stores full
// transversals rather than parent pointers.
func (t *ExplicitTable) CreateEdge(origin, destination, labelIndex int) {
	uOrigin := t.transversal[origin]
	t.transversal[destination] = uOrigin.Compose(t.labels[labelIndex])
	t.edgeLabel[destination] = labelIndex
}

func (t *ExplicitTable) Nodes() []int {
	nodes := make([]int, 0, len(t.transversal))
	for x := range t.transversal {
		nodes = append(nodes, x)
	}
	return nodes
}

func (t *ExplicitTable) Labels() perm.Set {
	return perm.MustNewSet(t.labels...)
}

func (t *ExplicitTable) Contains(x int) bool {
	_, ok := t.transversal[x]
	return ok
}

// Incoming reports whether g is recorded as the edge that carries x to
// g(x), i.e. whether g(x) already has an incoming edge labelled g.
func (t *ExplicitTable) Incoming(x int, g perm.Permutation) bool {
	idx, ok := t.edgeLabel[g.At(x)]
	if !ok {
		return false
	}
	return t.labels[idx].Equal(g)
}

func (t *ExplicitTable) Transversal(x int) perm.Permutation {
	u, ok := t.transversal[x]
	if !ok {
		panic(ErrNotInOrbit)
	}
	return u
}
