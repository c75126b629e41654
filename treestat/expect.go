// SPDX-License-Identifier: MIT
// Package: coalescent/treestat
//
// expect.go — closed-form expectations under the standard coalescent and the
// infinite-sites mutation model.
//
// Time is in units of 2N generations and θ = 4Nμ, so a branch of length b
// carries Poisson(θ/2 · b) mutations.

package treestat

import "github.com/katalvlaran/coalescent/coalescent"

// ExpectedTMRCA returns E[T_MRCA] = 2(1 - 1/n). Zero for n < 2.
func ExpectedTMRCA(n int) float64 {
	if n < 2 {
		return 0
	}
	return 2 * (1 - 1/float64(n))
}

// ExpectedTotalLength returns E[L] = 2 Σ_{i=1}^{n-1} 1/i: while i lineages
// are active the tree grows by i · 2/(i(i-1)) on average.
// Not 4 Σ 1/i: that figure belongs to time in N-generation units, whereas
// here time is in 2N generations and E[L] = Σ_k ExpectedSFSTime(k).
func ExpectedTotalLength(n int) float64 {
	return 2 * harmonic(n-1)
}

// harmonic returns Σ_{i=1}^{m} 1/i.
func harmonic(m int) float64 {
	var s float64
	for i := 1; i <= m; i++ {
		s += 1 / float64(i)
	}
	return s
}

// VarianceTotalLength returns Var[L] = 4 Σ_{i=1}^{n-1} 1/i².
func VarianceTotalLength(n int) float64 {
	var s float64
	for i := 1; i < n; i++ {
		fi := float64(i)
		s += 1 / (fi * fi)
	}
	return 4 * s
}

// ExpectedSFSTime returns the expected total length of branches subtending
// exactly k samples, 2/k, for 1 <= k; zero otherwise.
func ExpectedSFSTime(k int) float64 {
	if k < 1 {
		return 0
	}
	return 2 / float64(k)
}

// ExpectedSFS converts SFS branch times into expected mutation counts per
// frequency class: θ/2 · times[k].
func ExpectedSFS(times []float64, theta float64) []float64 {
	out := make([]float64, len(times))
	for k, tk := range times {
		out[k] = theta / 2 * tk
	}
	return out
}

// ExpectedSegregatingSites returns the expected number of mutations on t,
// θ/2 · TotalLength(t).
func ExpectedSegregatingSites(t *coalescent.Tree, theta float64) float64 {
	return theta / 2 * TotalLength(t)
}

// WattersonTheta estimates θ from an observed number of segregating sites S
// in a sample of n: S / Σ_{i=1}^{n-1} 1/i. Zero for n < 2.
func WattersonTheta(segregating float64, n int) float64 {
	if n < 2 {
		return 0
	}
	return segregating / harmonic(n-1)
}
