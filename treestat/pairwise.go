// SPDX-License-Identifier: MIT

package treestat

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/coalescent/coalescent"
)

// Pairwise holds the coalescence times between every pair of samples as a
// symmetric n×n matrix with a zero diagonal.
type Pairwise struct {
	m *mat.SymDense
}

// PairwiseTMRCA returns, for every pair of samples (i, j), the time of their
// most recent common ancestor.
//
// Complexity: O(n² · depth) time, O(n²) memory.
func PairwiseTMRCA(t *coalescent.Tree) (*Pairwise, error) {
	if t == nil {
		return nil, ErrNilTree
	}
	n := t.Samples()
	m := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			a, err := MRCA(t, i, j)
			if err != nil {
				return nil, err
			}
			m.SetSym(i, j, t.Time(a))
		}
	}
	return &Pairwise{m: m}, nil
}

// Samples returns n.
func (p *Pairwise) Samples() int { return p.m.SymmetricDim() }

// Sym exposes the underlying matrix for gonum routines. Callers must not
// modify it.
func (p *Pairwise) Sym() *mat.SymDense { return p.m }

// At returns the coalescence time of samples i and j.
// Panics with an assertion failure on out-of-range indices.
func (p *Pairwise) At(i, j int) float64 {
	n := p.m.SymmetricDim()
	if i < 0 || i >= n || j < 0 || j >= n {
		panic(errors.AssertionFailedf("treestat: Pairwise.At(%d, %d) out of range [0, %d)", i, j, n))
	}
	return p.m.At(i, j)
}

// Mean is the average coalescence time over the n(n-1)/2 distinct pairs.
// Under the standard coalescent its expectation is 1 for every n.
func (p *Pairwise) Mean() float64 {
	n := p.m.SymmetricDim()
	// the diagonal is zero, so the full sum counts every pair twice
	return mat.Sum(p.m) / float64(n*(n-1))
}

// String renders the matrix with mat.Formatted.
func (p *Pairwise) String() string {
	return fmt.Sprintf("%v", mat.Formatted(p.m, mat.Squeeze()))
}
