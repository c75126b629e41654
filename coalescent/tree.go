package coalescent

import (
	"math"

	"github.com/cockroachdb/errors"
)

// NoParent marks the root in the parent array.
const NoParent = -1

// Tree is a rooted binary genealogy of n samples stored as two parallel
// arrays of length 2n-1. A Tree is immutable once returned by Build or
// FromArrays; accessors never expose the backing arrays.
type Tree struct {
	n      int
	parent []int
	time   []float64
}

// Samples returns the number of present-day samples n.
func (t *Tree) Samples() int { return t.n }

// Len returns the number of nodes, 2n-1.
func (t *Tree) Len() int { return len(t.parent) }

// Root returns the index of the root node, 2n-2.
func (t *Tree) Root() int { return len(t.parent) - 1 }

// Parent returns the parent of node i, or NoParent for the root.
// Panics if i is out of range, like a slice index.
func (t *Tree) Parent(i int) int { return t.parent[i] }

// Time returns the coalescence time of node i (0 for leaves).
func (t *Tree) Time(i int) float64 { return t.time[i] }

// IsLeaf reports whether i is a present-day sample.
func (t *Tree) IsLeaf(i int) bool { return i >= 0 && i < t.n }

// Contains reports whether i is a valid node index.
func (t *Tree) Contains(i int) bool { return i >= 0 && i < len(t.parent) }

// TMRCA returns the time to the most recent common ancestor.
func (t *Tree) TMRCA() float64 { return t.time[t.Root()] }

// BranchLength returns time[parent(i)] - time[i]; 0 for the root.
func (t *Tree) BranchLength(i int) float64 {
	p := t.parent[i]
	if p == NoParent {
		return 0
	}
	return t.time[p] - t.time[i]
}

// Parents returns a copy of the parent array.
func (t *Tree) Parents() []int {
	out := make([]int, len(t.parent))
	copy(out, t.parent)
	return out
}

// Times returns a copy of the time array.
func (t *Tree) Times() []float64 {
	out := make([]float64, len(t.time))
	copy(out, t.time)
	return out
}

// FromArrays builds a Tree from caller-owned arrays. Both slices are copied
// and the result is checked with Validate, so a returned Tree always
// satisfies every structural invariant.
//
// Errors:
//   - ErrInvalidArgument if the lengths differ or are not 2n-1 for some n ≥ 2.
//   - ErrMalformedTree if any invariant fails.
//
// Complexity: O(n) time and memory.
func FromArrays(parent []int, time []float64) (*Tree, error) {
	if len(parent) != len(time) {
		return nil, errors.Wrapf(ErrInvalidArgument, "%s: len(parent)=%d, len(time)=%d",
			methodFromArrays, len(parent), len(time))
	}
	if len(parent) < 3 || len(parent)%2 == 0 {
		return nil, errors.Wrapf(ErrInvalidArgument, "%s: %d nodes is not 2n-1 for n >= 2",
			methodFromArrays, len(parent))
	}
	t := &Tree{
		n:      (len(parent) + 1) / 2,
		parent: append([]int(nil), parent...),
		time:   append([]float64(nil), time...),
	}
	if err := t.Validate(); err != nil {
		return nil, errors.Wrap(err, methodFromArrays)
	}
	return t, nil
}

// Validate checks every structural invariant of the arena:
//   - leaves [0, n) have time 0;
//   - node 2n-2 is the only root;
//   - every other parent lies in [n, 2n-2] and is larger than its child;
//   - branch lengths are strictly positive and finite;
//   - internal times strictly increase with index;
//   - every internal node has exactly two children.
//
// Complexity: O(n) time, O(n) memory.
func (t *Tree) Validate() error {
	n, nodes := t.n, len(t.parent)
	if n < 2 || nodes != 2*n-1 || len(t.time) != nodes {
		return errors.Wrapf(ErrInvalidArgument, "%s: n=%d with %d/%d nodes",
			methodValidate, n, nodes, len(t.time))
	}

	for i := 0; i < n; i++ {
		if t.time[i] != 0 {
			return errors.Wrapf(ErrMalformedTree, "%s: leaf %d has time %v", methodValidate, i, t.time[i])
		}
	}
	for i := n; i < nodes; i++ {
		if math.IsNaN(t.time[i]) || math.IsInf(t.time[i], 0) {
			return errors.Wrapf(ErrMalformedTree, "%s: node %d has non-finite time", methodValidate, i)
		}
		if i > n && t.time[i] <= t.time[i-1] {
			return errors.Wrapf(ErrMalformedTree, "%s: internal times not increasing at node %d", methodValidate, i)
		}
	}

	root := nodes - 1
	if t.parent[root] != NoParent {
		return errors.Wrapf(ErrMalformedTree, "%s: node %d must be the root", methodValidate, root)
	}
	children := make([]int, nodes)
	for i := 0; i < root; i++ {
		p := t.parent[i]
		if p == NoParent {
			return errors.Wrapf(ErrMalformedTree, "%s: extra root at node %d", methodValidate, i)
		}
		if p < n || p > root || p <= i {
			return errors.Wrapf(ErrMalformedTree, "%s: node %d has parent %d outside (%d, %d]",
				methodValidate, i, p, max(i, n-1), root)
		}
		if !(t.time[p] > t.time[i]) {
			return errors.Wrapf(ErrMalformedTree, "%s: non-positive branch %d->%d", methodValidate, i, p)
		}
		children[p]++
	}
	for i := n; i < nodes; i++ {
		if children[i] != 2 {
			return errors.Wrapf(ErrMalformedTree, "%s: node %d has %d children", methodValidate, i, children[i])
		}
	}
	return nil
}
