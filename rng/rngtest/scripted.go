// Package rngtest provides a scripted rng.Source for tests that need exact,
// hand-chosen draws (tie-break checks, closed-form scenarios).
package rngtest

import (
	"fmt"
	"math"

	"github.com/katalvlaran/coalescent/rng"
)

// Scripted replays fixed waiting times and pairs. Exp ignores its rate and
// returns the next scripted waiting time verbatim, so a test can pin
// time[A] exactly; the rates it was asked for are recorded in Rates.
// Running past the end of a script panics.
type Scripted struct {
	Waits []float64
	Pairs [][2]int
	Rates []float64

	wi, pi int
}

var _ rng.Source = (*Scripted)(nil)

// Exp returns the next scripted waiting time and records rate.
func (s *Scripted) Exp(rate float64) float64 {
	if s.wi >= len(s.Waits) {
		panic(fmt.Sprintf("rngtest: Exp script exhausted after %d draws", s.wi))
	}
	s.Rates = append(s.Rates, rate)
	e := s.Waits[s.wi]
	s.wi++
	return e
}

// Pair returns the next scripted pair; it panics if the pair is not a valid
// draw from [0, i).
func (s *Scripted) Pair(i int) (int, int) {
	if s.pi >= len(s.Pairs) {
		panic(fmt.Sprintf("rngtest: Pair script exhausted after %d draws", s.pi))
	}
	p := s.Pairs[s.pi]
	s.pi++
	if p[0] == p[1] || p[0] < 0 || p[1] < 0 || p[0] >= i || p[1] >= i {
		panic(fmt.Sprintf("rngtest: scripted pair %v invalid for %d lineages", p, i))
	}
	return p[0], p[1]
}

// Float64 always returns 0.5.
func (s *Scripted) Float64() float64 { return 0.5 }

// Intn always returns 0.
func (s *Scripted) Intn(int) int { return 0 }

// Binomial returns the rounded expectation n·p, clamped to [0, n].
func (s *Scripted) Binomial(n int, p float64) int {
	if n <= 0 || p <= 0 {
		return 0
	}
	return int(math.Round(float64(n) * min(p, 1)))
}

// Done reports whether every scripted draw was consumed.
func (s *Scripted) Done() bool { return s.wi == len(s.Waits) && s.pi == len(s.Pairs) }
