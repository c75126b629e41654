package treestat

import (
	"iter"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/coalescent/coalescent"
)

// PathToRoot returns the ancestors of node, nearest first, ending with the
// root. node itself is not included, so the root yields an empty sequence.
//
// The sequence is lazy and restartable: each range over it walks the parent
// links again from node. Because parents always have larger indices, the walk
// ends after at most n-1 steps.
//
// Errors:
//   - ErrNilTree if t is nil.
//   - ErrInvalidArgument if node is not in [0, 2n-1).
func PathToRoot(t *coalescent.Tree, node int) (iter.Seq[int], error) {
	if t == nil {
		return nil, ErrNilTree
	}
	if !t.Contains(node) {
		return nil, errors.Wrapf(ErrInvalidArgument, "PathToRoot: node %d not in [0, %d)", node, t.Len())
	}
	return func(yield func(int) bool) {
		for p := t.Parent(node); p != coalescent.NoParent; p = t.Parent(p) {
			if !yield(p) {
				return
			}
		}
	}, nil
}

// Depth returns the number of ancestors of node (the length of its root
// path). The root has depth 0.
func Depth(t *coalescent.Tree, node int) (int, error) {
	path, err := PathToRoot(t, node)
	if err != nil {
		return 0, err
	}
	var d int
	for range path {
		d++
	}
	return d, nil
}

// MRCA returns the most recent common ancestor of nodes a and b. If one is
// an ancestor of the other, that node is returned.
//
// Complexity: O(depth(a) + depth(b)).
func MRCA(t *coalescent.Tree, a, b int) (int, error) {
	if t == nil {
		return 0, ErrNilTree
	}
	if !t.Contains(a) || !t.Contains(b) {
		return 0, errors.Wrapf(ErrInvalidArgument, "MRCA: nodes (%d, %d) not in [0, %d)", a, b, t.Len())
	}
	// Ancestors have strictly larger indices, so lifting the smaller index
	// meets the other lineage exactly at the MRCA.
	x, y := a, b
	for x != y {
		if x < y {
			x = t.Parent(x)
		} else {
			y = t.Parent(y)
		}
	}
	return x, nil
}
