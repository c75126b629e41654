package treestat

import (
	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/coalescent/coalescent"
)

// Descendants returns, for every node, the number of present-day samples
// below it (1 for a leaf, n for the root).
//
// Algorithm: one sweep per leaf from the leaf up to the root, incrementing
// the counter of every node visited.
//
// Complexity: O(n · height) time, O(n) memory.
func Descendants(t *coalescent.Tree) []int {
	if t == nil {
		return nil
	}
	nd := make([]int, t.Len())
	for leaf := 0; leaf < t.Samples(); leaf++ {
		for p := leaf; p != coalescent.NoParent; p = t.Parent(p) {
			nd[p]++
		}
	}
	return nd
}

// SFSTimes adds the branch time of every non-root node i into
// acc[Descendants(i)-1]. Bucket k-1 therefore collects the total length of
// branches subtending exactly k of the n samples, k = 1..n-1. acc is updated
// in place so repeated calls over independent trees accumulate a running
// total.
//
// Errors:
//   - ErrNilTree if t is nil.
//   - ErrInvalidArgument if n != t.Samples() or len(acc) != n-1.
//
// Panics with an assertion failure on a non-positive branch length.
//
// Complexity: O(n · height) time, O(n) memory.
func SFSTimes(n int, t *coalescent.Tree, acc []float64) error {
	if t == nil {
		return ErrNilTree
	}
	if n != t.Samples() {
		return errors.Wrapf(ErrInvalidArgument, "SFSTimes: n=%d but tree has %d samples", n, t.Samples())
	}
	if len(acc) != n-1 {
		return errors.Wrapf(ErrInvalidArgument, "SFSTimes: len(acc)=%d, want %d", len(acc), n-1)
	}
	nd := Descendants(t)
	for i := 0; i < t.Root(); i++ {
		acc[nd[i]-1] += branch(t, i)
	}
	return nil
}
