package replicate

import (
	"github.com/cockroachdb/errors"
	"github.com/montanaflynn/stats"

	"github.com/katalvlaran/coalescent/treestat"
)

// Moments describes one per-replicate statistic next to its closed-form
// expectation under the standard coalescent.
type Moments struct {
	Mean     float64 `json:"mean" yaml:"mean"`
	Variance float64 `json:"variance" yaml:"variance"`
	Median   float64 `json:"median" yaml:"median"`
	P95      float64 `json:"p95" yaml:"p95"`

	ExpectedMean     float64 `json:"expected_mean" yaml:"expected_mean"`
	ExpectedVariance float64 `json:"expected_variance,omitempty" yaml:"expected_variance,omitempty"`
}

// SFSBucket is the mean branch time subtending Count samples.
type SFSBucket struct {
	Count    int     `json:"count" yaml:"count"`
	Mean     float64 `json:"mean" yaml:"mean"`
	Expected float64 `json:"expected" yaml:"expected"`
}

// Summary reduces a Result to the quantities the coalescent predicts.
type Summary struct {
	Samples     int         `json:"samples" yaml:"samples"`
	Replicates  int         `json:"replicates" yaml:"replicates"`
	Workers     int         `json:"workers" yaml:"workers"`
	Seed        uint64      `json:"seed" yaml:"seed"`
	TMRCA       Moments     `json:"tmrca" yaml:"tmrca"`
	TotalLength Moments     `json:"total_length" yaml:"total_length"`
	SFS         []SFSBucket `json:"sfs" yaml:"sfs"`
}

// Summary computes sample moments, median and 95th percentile of TMRCA and
// total tree length, and pairs every SFS bucket with 2/k.
//
// Variance is the unbiased sample variance; with a single replicate it is 0.
func (r *Result) Summary() (Summary, error) {
	if r == nil || len(r.TMRCA) == 0 {
		return Summary{}, ErrEmptyResult
	}
	n := r.Config.Samples

	tmrca, err := moments(r.TMRCA)
	if err != nil {
		return Summary{}, errors.Wrap(err, "replicate: tmrca")
	}
	tmrca.ExpectedMean = treestat.ExpectedTMRCA(n)

	length, err := moments(r.TotalLength)
	if err != nil {
		return Summary{}, errors.Wrap(err, "replicate: total length")
	}
	length.ExpectedMean = treestat.ExpectedTotalLength(n)
	length.ExpectedVariance = treestat.VarianceTotalLength(n)

	sfs := make([]SFSBucket, len(r.SFS))
	for i, v := range r.SFS {
		sfs[i] = SFSBucket{Count: i + 1, Mean: v, Expected: treestat.ExpectedSFSTime(i + 1)}
	}

	return Summary{
		Samples:     n,
		Replicates:  len(r.TMRCA),
		Workers:     r.Config.Workers,
		Seed:        r.Config.Seed,
		TMRCA:       tmrca,
		TotalLength: length,
		SFS:         sfs,
	}, nil
}

func moments(xs []float64) (Moments, error) {
	data := stats.Float64Data(xs)
	var (
		m   Moments
		err error
	)
	if m.Mean, err = stats.Mean(data); err != nil {
		return Moments{}, err
	}
	if len(data) > 1 {
		if m.Variance, err = stats.SampleVariance(data); err != nil {
			return Moments{}, err
		}
	}
	if m.Median, err = stats.Median(data); err != nil {
		return Moments{}, err
	}
	if m.P95, err = stats.Percentile(data, 95); err != nil {
		return Moments{}, err
	}
	return m, nil
}
