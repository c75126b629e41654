// Package treestat computes statistics of a built coalescent.Tree: root
// paths, total branch length, per-node descendant counts and site frequency
// spectrum (SFS) branch times, plus the closed-form expectations these
// statistics converge to under the standard coalescent.
//
// Every routine reads the tree and never builds or mutates one; the builder
// and the analyzers only share the coalescent.Tree value.
//
// Key routines:
//
//   - PathToRoot(t, node): lazy, restartable iter.Seq over the ancestors of
//     node, ending at the root. Depth and MRCA build on the same links.
//   - TotalLength(t): Σ time[parent(i)] - time[i] over non-root nodes.
//   - Descendants(t): number of samples below every node.
//   - SFSTimes(n, t, acc): adds the length of each branch subtending k
//     samples into acc[k-1]; acc is caller-owned so many replicates can be
//     summed into one running total.
//   - PairwiseTMRCA(t): n×n matrix of sample-pair coalescence times.
//
// Invariant checks:
//
//	TotalLength and SFSTimes assert that every branch length is strictly
//	positive. A violation means the tree arrays are inconsistent and panics
//	with an assertion failure (errors.IsAssertionFailure).
//
// Complexity:
//
//   - PathToRoot: O(depth) per full iteration, O(1) to create.
//   - TotalLength: O(n).
//   - Descendants / SFSTimes: O(n · height), O(n log n) on average for
//     coalescent trees.
package treestat
