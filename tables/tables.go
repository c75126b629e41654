package tables

import (
	"math"
	"sort"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/coalescent/coalescent"
)

// NodeIsSample flags a present-day sample node.
const NodeIsSample uint32 = 1

// NodeTable holds one row per node.
type NodeTable struct {
	Flags []uint32  `json:"flags" yaml:"flags"`
	Time  []float64 `json:"time" yaml:"time"`
}

// Add appends a node row and returns its id.
func (nt *NodeTable) Add(flags uint32, time float64) int {
	nt.Flags = append(nt.Flags, flags)
	nt.Time = append(nt.Time, time)
	return len(nt.Flags) - 1
}

// Len returns the number of rows.
func (nt *NodeTable) Len() int { return len(nt.Flags) }

// IsSample reports whether row id carries NodeIsSample.
func (nt *NodeTable) IsSample(id int) bool { return nt.Flags[id]&NodeIsSample != 0 }

// EdgeTable holds one row per parent→child relationship on [Left, Right).
type EdgeTable struct {
	Left   []float64 `json:"left" yaml:"left"`
	Right  []float64 `json:"right" yaml:"right"`
	Parent []int     `json:"parent" yaml:"parent"`
	Child  []int     `json:"child" yaml:"child"`
}

// Add appends an edge row and returns its id.
func (et *EdgeTable) Add(left, right float64, parent, child int) int {
	et.Left = append(et.Left, left)
	et.Right = append(et.Right, right)
	et.Parent = append(et.Parent, parent)
	et.Child = append(et.Child, child)
	return len(et.Parent) - 1
}

// Len returns the number of rows.
func (et *EdgeTable) Len() int { return len(et.Parent) }

// TableCollection is a genealogy over a sequence of length SequenceLength.
type TableCollection struct {
	SequenceLength float64   `json:"sequence_length" yaml:"sequence_length"`
	Nodes          NodeTable `json:"nodes" yaml:"nodes"`
	Edges          EdgeTable `json:"edges" yaml:"edges"`
}

// FromTree converts t into sorted tables over [0, seqLen).
//
// Complexity: O(n log n) for the sort, O(n) memory.
func FromTree(t *coalescent.Tree, seqLen float64) (*TableCollection, error) {
	if t == nil {
		return nil, errors.Wrap(ErrInvalidArgument, "FromTree: nil tree")
	}
	if !(seqLen > 0) || math.IsInf(seqLen, 1) {
		return nil, errors.Wrapf(ErrInvalidArgument, "FromTree: sequence length %v", seqLen)
	}

	tc := &TableCollection{SequenceLength: seqLen}
	for i := 0; i < t.Len(); i++ {
		var flags uint32
		if t.IsLeaf(i) {
			flags = NodeIsSample
		}
		tc.Nodes.Add(flags, t.Time(i))
	}
	for i := 0; i < t.Root(); i++ {
		tc.Edges.Add(0, seqLen, t.Parent(i), i)
	}
	tc.Sort()
	return tc, nil
}

// Sort orders edges by parent time, parent, child and left coordinate.
// Node rows are never reordered, so node ids stay stable.
func (tc *TableCollection) Sort() {
	sort.Sort(edgeOrder{tc})
}

type edgeOrder struct{ tc *TableCollection }

func (o edgeOrder) Len() int { return o.tc.Edges.Len() }

func (o edgeOrder) Less(a, b int) bool {
	e, nt := &o.tc.Edges, &o.tc.Nodes
	ta, tb := nt.Time[e.Parent[a]], nt.Time[e.Parent[b]]
	switch {
	case ta != tb:
		return ta < tb
	case e.Parent[a] != e.Parent[b]:
		return e.Parent[a] < e.Parent[b]
	case e.Child[a] != e.Child[b]:
		return e.Child[a] < e.Child[b]
	default:
		return e.Left[a] < e.Left[b]
	}
}

func (o edgeOrder) Swap(a, b int) {
	e := &o.tc.Edges
	e.Left[a], e.Left[b] = e.Left[b], e.Left[a]
	e.Right[a], e.Right[b] = e.Right[b], e.Right[a]
	e.Parent[a], e.Parent[b] = e.Parent[b], e.Parent[a]
	e.Child[a], e.Child[b] = e.Child[b], e.Child[a]
}

// Validate checks column lengths, intervals, node references, parent/child
// time order and the edge sort order.
//
// Complexity: O(E) time, O(1) extra memory.
func (tc *TableCollection) Validate() error {
	nt, et := &tc.Nodes, &tc.Edges
	if !(tc.SequenceLength > 0) {
		return errors.Wrapf(ErrBadTables, "sequence length %v", tc.SequenceLength)
	}
	if len(nt.Flags) != len(nt.Time) {
		return errors.Wrapf(ErrBadTables, "node columns: %d flags, %d times", len(nt.Flags), len(nt.Time))
	}
	m := len(et.Parent)
	if len(et.Left) != m || len(et.Right) != m || len(et.Child) != m {
		return errors.Wrapf(ErrBadTables, "edge columns: left=%d right=%d parent=%d child=%d",
			len(et.Left), len(et.Right), m, len(et.Child))
	}
	for i := 0; i < nt.Len(); i++ {
		if math.IsNaN(nt.Time[i]) || math.IsInf(nt.Time[i], 0) {
			return errors.Wrapf(ErrBadTables, "node %d: non-finite time", i)
		}
	}

	order := edgeOrder{tc}
	for e := 0; e < m; e++ {
		l, r := et.Left[e], et.Right[e]
		if !(l >= 0 && l < r && r <= tc.SequenceLength) {
			return errors.Wrapf(ErrBadTables, "edge %d: interval [%v, %v) outside [0, %v)", e, l, r, tc.SequenceLength)
		}
		p, c := et.Parent[e], et.Child[e]
		if p < 0 || p >= nt.Len() || c < 0 || c >= nt.Len() {
			return errors.Wrapf(ErrBadTables, "edge %d: node reference (%d -> %d) out of range", e, c, p)
		}
		if !(nt.Time[p] > nt.Time[c]) {
			return errors.Wrapf(ErrBadTables, "edge %d: parent %d not older than child %d", e, p, c)
		}
		if e > 0 && order.Less(e, e-1) {
			return errors.Wrapf(ErrBadTables, "edge %d: edges not sorted", e)
		}
	}
	return nil
}

// Tree converts tables describing a single tree back into a coalescent.Tree.
// Samples must occupy rows [0, n), there must be 2n-1 nodes, and every child
// must have exactly one edge spanning the whole sequence.
//
// Complexity: O(n) time and memory.
func (tc *TableCollection) Tree() (*coalescent.Tree, error) {
	if err := tc.Validate(); err != nil {
		return nil, err
	}
	nt, et := &tc.Nodes, &tc.Edges

	var n int
	for n < nt.Len() && nt.IsSample(n) {
		n++
	}
	if nt.Len() != 2*n-1 {
		return nil, errors.Wrapf(ErrBadTables, "%d nodes with %d leading samples is not one tree", nt.Len(), n)
	}
	for i := n; i < nt.Len(); i++ {
		if nt.IsSample(i) {
			return nil, errors.Wrapf(ErrBadTables, "sample node %d after internal nodes", i)
		}
	}

	parent := make([]int, nt.Len())
	for i := range parent {
		parent[i] = coalescent.NoParent
	}
	for e := 0; e < et.Len(); e++ {
		c := et.Child[e]
		if et.Left[e] != 0 || et.Right[e] != tc.SequenceLength {
			return nil, errors.Wrapf(ErrBadTables, "edge %d does not span the whole sequence", e)
		}
		if parent[c] != coalescent.NoParent {
			return nil, errors.Wrapf(ErrBadTables, "node %d has more than one parent", c)
		}
		parent[c] = et.Parent[e]
	}

	t, err := coalescent.FromArrays(parent, nt.Time)
	if err != nil {
		return nil, errors.Mark(errors.Wrap(err, "tables: Tree"), ErrBadTables)
	}
	return t, nil
}
