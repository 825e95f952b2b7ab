package schreier

import "github.com/katalvlaran/symarch/perm"

// tree is the "Schreier tree" Structure variant: it stores, for each
// non-root orbit point, a parent point and a label index, reconstructing
// u_x on demand by walking the path from x back to the root. Transversal
// lookup costs O(depth); CreateEdge costs O(1).
type tree struct {
	root      int
	degree    int
	labels    []perm.Permutation
	parent    map[int]int
	edgeLabel map[int]int
}

func newTree(root, degree int) *tree {
	return &tree{
		root:      root,
		degree:    degree,
		parent:    make(map[int]int),
		edgeLabel: make(map[int]int),
	}
}

func (t *tree) Root() int { return t.root }

func (t *tree) AddLabel(label perm.Permutation) int {
	t.labels = append(t.labels, label)
	return len(t.labels) - 1
}

func (t *tree) CreateEdge(origin, destination, labelIndex int) {
	t.parent[destination] = origin
	t.edgeLabel[destination] = labelIndex
}

func (t *tree) Nodes() []int {
	nodes := make([]int, 0, len(t.parent)+1)
	nodes = append(nodes, t.root)
	for x := range t.parent {
		nodes = append(nodes, x)
	}
	return nodes
}

func (t *tree) Labels() perm.Set {
	return perm.MustNewSet(t.labels...)
}

func (t *tree) Contains(x int) bool {
	if x == t.root {
		return true
	}
	_, ok := t.parent[x]
	return ok
}

func (t *tree) Incoming(x int, g perm.Permutation) bool {
	idx, ok := t.edgeLabel[g.At(x)]
	if !ok {
		return false
	}
	return t.labels[idx].Equal(g)
}

func (t *tree) Transversal(origin int) perm.Permutation {
	if !t.Contains(origin) {
		panic(ErrNotInOrbit)
	}

	result := perm.Identity(t.degree)
	for cur := origin; cur != t.root; cur = t.parent[cur] {
		label := t.labels[t.edgeLabel[cur]]
		result = label.Compose(result)
	}
	return result
}
