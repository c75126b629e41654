package coalescent

import (
	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/coalescent/rng"
)

// Build draws one Kingman coalescent genealogy of n samples with Hudson's
// (1990) algorithm.
//
// Algorithm:
//  1. parent[0..2n-1) = NoParent, time[0..2n-1) = 0; pool R = [0, n).
//  2. While i > 1 active lineages remain:
//     a. the new ancestor is A = 2n - i;
//     b. now += Exp(i(i-1)/2); time[A] = now;
//     c. draw distinct pool slots j, k; parent[R[j]] = parent[R[k]] = A;
//     d. R[min(j,k)] = A; R[max(j,k)] = R[i-1]; i--.
//
// Step (d) is the swap-with-last removal that keeps R[0..i-1) dense in O(1).
// The write order matters: the slot identity it produces is part of the
// reproducible output for a given source.
//
// Errors (checked before any allocation or draw):
//   - ErrInvalidArgument if n < 2.
//   - ErrNilSource if src is nil.
//
// Complexity: Time O(n), Memory O(n).
func Build(n int, src rng.Source) (*Tree, error) {
	if n < 2 {
		return nil, errors.Wrapf(ErrInvalidArgument, "%s: sample size %d, need at least 2", methodBuild, n)
	}
	if src == nil {
		return nil, errors.Wrap(ErrNilSource, methodBuild)
	}

	nodes := 2*n - 1
	parent := make([]int, nodes)
	for i := range parent {
		parent[i] = NoParent
	}
	time := make([]float64, nodes)
	pool := make([]int, n)
	for i := range pool {
		pool[i] = i
	}

	var now float64
	for i := n; i > 1; i-- {
		a := 2*n - i
		now += src.Exp(float64(i*(i-1)) / 2)
		time[a] = now

		j, k := src.Pair(i)
		parent[pool[j]] = a
		parent[pool[k]] = a

		lo, hi := min(j, k), max(j, k)
		pool[lo] = a
		pool[hi] = pool[i-1]
	}

	return &Tree{n: n, parent: parent, time: time}, nil
}
