// Package coalescent builds random gene genealogies under the Kingman
// coalescent with Hudson's (1990) linear-time algorithm.
//
// 🚀 What is a coalescent tree?
//
//	Trace n present-day gene copies backward in time. While i lineages are
//	active, the waiting time to the next merge is exponential with rate
//	i(i-1)/2 (time in units of 2N generations) and the merging pair is
//	uniform over all C(i,2) pairs. After n-1 merges a single ancestor, the
//	most recent common ancestor (MRCA), remains.
//
// ✨ Representation:
//
//	Tree is a flat arena of 2n-1 nodes addressed by index:
//	  • nodes [0, n)      — leaves (samples), time 0
//	  • nodes [n, 2n-1)   — ancestors, created in merge order
//	  • node 2n-2         — the root (Parent == NoParent)
//	Links only point from a child to a strictly larger ancestor index, so the
//	arena is acyclic by construction and needs no pointers.
//
//	        4            time[4] = t2
//	       ╱ ╲
//	      3   ╲          time[3] = t1
//	     ╱ ╲   ╲
//	    0   2   1        time = 0
//
// ⚙️ Usage:
//
//	import (
//	  "github.com/katalvlaran/coalescent/coalescent"
//	  "github.com/katalvlaran/coalescent/rng"
//	)
//
//	t, err := coalescent.Build(10, rng.New(42))
//	if err != nil {
//	  // errors.Is(err, coalescent.ErrInvalidArgument) for n < 2
//	}
//	fmt.Println(t.Root(), t.TMRCA())
//
//	// or, with functional options:
//	b := coalescent.NewBuilder(coalescent.WithSeed(42))
//	t, err = b.Build(10)
//
// Complexity:
//
//   - Build: Time O(n), Memory O(n) (two arrays of 2n-1 plus an n-slot pool).
//   - Validate / FromArrays: Time O(n), Memory O(n).
//
// Errors:
//
//   - ErrInvalidArgument  sample size < 2, mismatched or malformed arrays.
//   - ErrNilSource        Build called without a random source.
//   - ErrMalformedTree    FromArrays/Validate found a broken invariant.
package coalescent
