// Package tables stores a genealogy as columnar node and edge tables, the
// "tree sequence" layout used by population-genetics toolkits.
//
// What:
//
//   - NodeTable: one row per node with flags (NodeIsSample) and time.
//   - EdgeTable: one row per parent→child relationship over the genomic
//     half-open interval [Left, Right).
//   - TableCollection: both tables plus the sequence length.
//
// A single non-recombining coalescent tree becomes 2n-1 nodes and 2n-2
// edges, every edge spanning [0, SequenceLength). Rows are plain parallel
// slices so they can be appended, sorted and exported without pointers.
//
// Sort order (required by Validate):
//
//	edges ascending by time[parent], then parent, then child, then left.
//
// Conversions:
//
//   - FromTree(t, L) → *TableCollection (sorted, validated).
//   - (*TableCollection).Tree() → *coalescent.Tree; requires a single tree
//     covering the whole sequence with samples at rows [0, n).
//
// Errors:
//
//   - ErrInvalidArgument  nil tree, non-positive sequence length.
//   - ErrBadTables        ragged columns, bad intervals, dangling references,
//     time-inconsistent or unsorted edges, or a layout that is not one tree.
package tables
