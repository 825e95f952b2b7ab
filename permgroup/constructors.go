package permgroup

import (
	"github.com/katalvlaran/symarch/bsgs"
	"github.com/katalvlaran/symarch/perm"
)

// Symmetric returns S_n, the full symmetric group on n points, generated by
// the transposition (1 2) and the n-cycle (1 2 ... n).
func Symmetric(n int) (*Group, error) {
	if n < 1 {
		return nil, ErrInvalidDegree
	}
	if n == 1 {
		return New(1, perm.Set{}, nil)
	}

	transposition, err := perm.NewFromCycles(n, [][]int{{1, 2}})
	if err != nil {
		return nil, err
	}
	cycle, err := fullCycle(n)
	if err != nil {
		return nil, err
	}
	gens := perm.MustNewSet(transposition, cycle)
	return New(n, gens, nil)
}

// Cyclic returns the cyclic group of order n generated by the single
// n-cycle (1 2 ... n), acting on n points.
func Cyclic(n int) (*Group, error) {
	if n < 1 {
		return nil, ErrInvalidDegree
	}
	cycle, err := fullCycle(n)
	if err != nil {
		return nil, err
	}
	gens := perm.MustNewSet(cycle)
	return New(n, gens, nil)
}

// Dihedral returns the dihedral group of order 2n, the symmetry group of a
// regular n-gon, acting on its n vertices. It is generated by the rotation
// (1 2 ... n) and the reflection through vertex 1.
func Dihedral(n int) (*Group, error) {
	if n < 3 {
		return nil, ErrInvalidDegree
	}
	rotation, err := fullCycle(n)
	if err != nil {
		return nil, err
	}
	reflection, err := reflectionThroughOne(n)
	if err != nil {
		return nil, err
	}
	gens := perm.MustNewSet(rotation, reflection)
	return New(n, gens, nil)
}

// Alternating returns A_n, the alternating group on n points, generated by
// the 3-cycle (1 2 3) and an (n-1)- or n-cycle chosen to be even.
func Alternating(n int) (*Group, error) {
	if n < 1 {
		return nil, ErrInvalidDegree
	}
	if n < 3 {
		return New(n, perm.Set{}, nil)
	}

	threeCycle, err := perm.NewFromCycles(n, [][]int{{1, 2, 3}})
	if err != nil {
		return nil, err
	}

	var second perm.Permutation
	if n%2 == 1 {
		second, err = fullCycle(n)
	} else {
		pts := make([]int, n-1)
		for i := range pts {
			pts[i] = i + 2
		}
		second, err = perm.NewFromCycles(n, [][]int{pts})
	}
	if err != nil {
		return nil, err
	}

	gens := perm.MustNewSet(threeCycle, second)
	return New(n, gens, &bsgs.Options{Construction: bsgs.SchreierSims, Transversals: bsgs.DefaultOptions().Transversals})
}

func fullCycle(n int) (perm.Permutation, error) {
	pts := make([]int, n)
	for i := range pts {
		pts[i] = i + 1
	}
	return perm.NewFromCycles(n, [][]int{pts})
}

// reflectionThroughOne returns the involution fixing vertex 1 and reversing
// the remaining n-1 vertices of a regular n-gon labelled 1..n in rotational
// order: i |-> n - i + 2 (mod n), taken into {1..n}.
func reflectionThroughOne(n int) (perm.Permutation, error) {
	image := make([]int, n)
	image[0] = 1
	for i := 2; i <= n; i++ {
		y := n - i + 2
		if y > n {
			y -= n
		}
		image[i-1] = y
	}
	return perm.New(image)
}
