// Package coalescent is the umbrella for a small toolkit that simulates
// neutral genealogies backwards in time and measures them: who shares an
// ancestor with whom, how long the branches are, and how branch time splits
// across the site frequency spectrum.
//
// 🚀 What is inside?
//
//	• coalescent/ – Tree (parent/time arrays) + Hudson (1990) builder
//	• treestat/   – PathToRoot, MRCA, TotalLength, Descendants, SFSTimes, closed forms
//	• rng/        – explicit seeded sources (PCG), per-worker stream derivation
//	• replicate/  – parallel independent replicates, sequential reduction, summaries
//	• tables/     – node + edge tables, round-trip to Tree
//	• drift/      – forward-time Wright–Fisher allele frequency trajectories
//	• cmd/coalsim – command line driver (simulate / tree / drift)
//
// ✨ Guarantees
//
//   - Every random draw goes through an explicit rng.Source; a seed fixes a tree.
//   - Trees are validated on construction: leaves at time 0, strictly
//     increasing internal times, one root, exactly two children per internal node.
//   - Broken tree invariants panic with an assertion failure; bad input
//     returns a wrapped sentinel error.
//
// Quick ASCII example (n=4, indices 0..6):
//
//	        6          time 2.0
//	      ┌─┴─┐
//	      │   5        time 1.0
//	      │  ┌┴─┐
//	      4  │  │      time 0.5
//	     ┌┴┐ │  │
//	     0 1 2  3      time 0
//
//	parent = [4 4 5 5 6 6 -1]
//
//	go get github.com/katalvlaran/coalescent
package coalescent
