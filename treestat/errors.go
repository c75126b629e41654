package treestat

import "github.com/cockroachdb/errors"

var (
	// ErrInvalidArgument indicates an out-of-range node, a sample size that
	// does not match the tree, or an accumulator of the wrong length.
	ErrInvalidArgument = errors.New("treestat: invalid argument")

	// ErrNilTree indicates a nil *coalescent.Tree.
	ErrNilTree = errors.New("treestat: tree is nil")
)
