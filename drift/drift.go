package drift

import (
	"math"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/coalescent/rng"
)

// maxPrealloc caps the initial Frequencies capacity.
const maxPrealloc = 1024

// Params configures one Wright–Fisher trajectory.
type Params struct {
	// PopulationSize is the diploid size N; the population carries 2N copies.
	PopulationSize int `json:"population_size" yaml:"population_size"`

	// InitialFrequency is the starting allele frequency in [0, 1].
	InitialFrequency float64 `json:"initial_frequency" yaml:"initial_frequency"`

	// Generations is the maximum number of generations to simulate.
	Generations int `json:"generations" yaml:"generations"`
}

// Validate rejects meaningless parameters.
func (p Params) Validate() error {
	if p.PopulationSize < 1 {
		return errors.Wrapf(ErrInvalidParams, "population size %d", p.PopulationSize)
	}
	if !(p.InitialFrequency >= 0 && p.InitialFrequency <= 1) {
		return errors.Wrapf(ErrInvalidParams, "initial frequency %v outside [0, 1]", p.InitialFrequency)
	}
	if p.Generations < 0 {
		return errors.Wrapf(ErrInvalidParams, "generations %d", p.Generations)
	}
	return nil
}

// Trajectory is the allele frequency per generation.
type Trajectory struct {
	// Frequencies[g] is the frequency after g generations; index 0 is the
	// (rounded) initial frequency.
	Frequencies []float64 `json:"frequencies" yaml:"frequencies"`

	// Lost / Fixed report absorption; AbsorbedAt is the generation it
	// happened, or -1 if the allele was still segregating at the end.
	Lost       bool `json:"lost" yaml:"lost"`
	Fixed      bool `json:"fixed" yaml:"fixed"`
	AbsorbedAt int  `json:"absorbed_at" yaml:"absorbed_at"`
}

// Simulate runs one Wright–Fisher trajectory. The initial count is
// round(2N·p0). Simulation stops early once the allele is lost or fixed.
//
// Complexity: O(Generations · 2N) uniform draws.
func Simulate(p Params, src rng.Source) (Trajectory, error) {
	if err := p.Validate(); err != nil {
		return Trajectory{}, err
	}
	if src == nil {
		return Trajectory{}, errors.Wrap(ErrInvalidParams, "random source is required")
	}

	copies := 2 * p.PopulationSize
	count := int(math.Round(p.InitialFrequency * float64(copies)))
	tr := Trajectory{
		Frequencies: make([]float64, 1, min(p.Generations+1, maxPrealloc)),
		AbsorbedAt:  -1,
	}
	tr.Frequencies[0] = float64(count) / float64(copies)

	for g := 0; ; g++ {
		if count == 0 || count == copies {
			tr.Lost, tr.Fixed = count == 0, count == copies
			tr.AbsorbedAt = g
			break
		}
		if g == p.Generations {
			break
		}
		count = src.Binomial(copies, float64(count)/float64(copies))
		tr.Frequencies = append(tr.Frequencies, float64(count)/float64(copies))
	}
	return tr, nil
}

// Heterozygosity returns 2p(1-p).
func Heterozygosity(p float64) float64 { return 2 * p * (1 - p) }

// ExpectedHeterozygosity returns H_t = H_0 (1 - 1/2N)^t.
// Zero for popSize < 1; negative generations count as 0.
func ExpectedHeterozygosity(h0 float64, popSize, generations int) float64 {
	if popSize < 1 {
		return 0
	}
	if generations < 0 {
		return h0
	}
	return h0 * math.Pow(1-1/float64(2*popSize), float64(generations))
}

// FixationProbability returns the neutral fixation probability of an allele
// at frequency p, which is p itself.
func FixationProbability(p float64) float64 { return p }
