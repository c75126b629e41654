// Package replicate draws many independent coalescent trees and reduces
// their statistics.
//
// Replicates are embarrassingly parallel: worker w owns the stream
// rng.New(Seed).Derive(w) and a private SFS accumulator, handles replicates
// w, w+W, w+2W, ... and never touches another worker's state. Accumulators
// are merged sequentially in worker order after all workers finish, so a
// fixed (Seed, Workers) pair always yields bit-identical results.
package replicate

import (
	"context"

	"github.com/cockroachdb/errors"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/coalescent/coalescent"
	"github.com/katalvlaran/coalescent/rng"
	"github.com/katalvlaran/coalescent/treestat"
)

// Result holds per-replicate statistics and the mean SFS branch times.
type Result struct {
	Config Config

	// TMRCA[r] and TotalLength[r] belong to replicate r.
	TMRCA       []float64
	TotalLength []float64

	// SFS[k-1] is the mean total length of branches subtending k samples.
	SFS []float64
}

// Run draws cfg.Replicates trees of cfg.Samples leaves.
//
// Cancellation is checked before every replicate; the first worker error
// (including ctx.Err()) aborts the batch.
//
// Complexity: O(Replicates · n · height) time, O(Replicates + W·n) memory.
func Run(ctx context.Context, cfg Config) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	n, reps, workers := cfg.Samples, cfg.Replicates, cfg.workers()

	res := &Result{
		Config:      cfg,
		TMRCA:       make([]float64, reps),
		TotalLength: make([]float64, reps),
		SFS:         make([]float64, n-1),
	}
	res.Config.Workers = workers

	base := rng.New(cfg.Seed)
	partial := make([][]float64, workers)
	g, gctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		src := base.Derive(uint64(w))
		acc := make([]float64, n-1)
		partial[w] = acc
		g.Go(func() error {
			for r := w; r < reps; r += workers {
				if err := gctx.Err(); err != nil {
					return err
				}
				t, err := coalescent.Build(n, src)
				if err != nil {
					return err
				}
				res.TMRCA[r] = t.TMRCA()
				res.TotalLength[r] = treestat.TotalLength(t)
				if err := treestat.SFSTimes(n, t, acc); err != nil {
					return err
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, errors.Wrapf(err, "replicate: n=%d replicates=%d", n, reps)
	}

	for _, acc := range partial {
		for k, v := range acc {
			res.SFS[k] += v
		}
	}
	for k := range res.SFS {
		res.SFS[k] /= float64(reps)
	}
	return res, nil
}
