package treestat

import (
	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/coalescent/coalescent"
)

// TotalLength returns the sum of all branch lengths,
// Σ time[parent(i)] - time[i] over every non-root node i.
// A nil tree has length 0.
//
// Panics with an assertion failure if a branch length is not strictly
// positive: such a tree breaks the arena contract and cannot be analyzed.
//
// Complexity: O(n).
func TotalLength(t *coalescent.Tree) float64 {
	if t == nil {
		return 0
	}
	var total float64
	for i := 0; i < t.Root(); i++ {
		total += branch(t, i)
	}
	return total
}

// branch returns the length of the branch above non-root node i.
func branch(t *coalescent.Tree, i int) float64 {
	bl := t.BranchLength(i)
	if !(bl > 0) {
		panic(errors.AssertionFailedf("treestat: branch above node %d has length %v", i, bl))
	}
	return bl
}
