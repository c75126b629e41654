package replicate_test

import (
	"context"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/coalescent/coalescent"
	"github.com/katalvlaran/coalescent/replicate"
	"github.com/katalvlaran/coalescent/rng"
	"github.com/katalvlaran/coalescent/treestat"
)

func TestConfig_Validate(t *testing.T) {
	assert.NoError(t, replicate.DefaultConfig().Validate())

	bad := []replicate.Config{
		{Samples: 1, Replicates: 10},
		{Samples: 5, Replicates: 0},
		{Samples: 5, Replicates: 10, Workers: -1},
	}
	for _, cfg := range bad {
		assert.True(t, errors.Is(cfg.Validate(), replicate.ErrInvalidConfig), "%+v", cfg)
		_, err := replicate.Run(context.Background(), cfg)
		assert.True(t, errors.Is(err, replicate.ErrInvalidConfig), "%+v", cfg)
	}
}

// TestRun_SingleWorkerMatchesSequential verifies worker 0 replays exactly the
// stream a caller would get from Derive(0).
func TestRun_SingleWorkerMatchesSequential(t *testing.T) {
	cfg := replicate.Config{Samples: 6, Replicates: 50, Workers: 1, Seed: 17}
	res, err := replicate.Run(context.Background(), cfg)
	require.NoError(t, err)

	src := rng.New(17).Derive(0)
	acc := make([]float64, cfg.Samples-1)
	for r := 0; r < cfg.Replicates; r++ {
		tr, err := coalescent.Build(cfg.Samples, src)
		require.NoError(t, err)
		require.Equal(t, tr.TMRCA(), res.TMRCA[r], "replicate %d", r)
		require.Equal(t, treestat.TotalLength(tr), res.TotalLength[r], "replicate %d", r)
		require.NoError(t, treestat.SFSTimes(cfg.Samples, tr, acc))
	}
	for k := range acc {
		assert.InDelta(t, acc[k]/float64(cfg.Replicates), res.SFS[k], 1e-12)
	}
}

// TestRun_Deterministic verifies a fixed (Seed, Workers) is reproducible
// regardless of goroutine scheduling.
func TestRun_Deterministic(t *testing.T) {
	cfg := replicate.Config{Samples: 12, Replicates: 400, Workers: 4, Seed: 8}
	a, err := replicate.Run(context.Background(), cfg)
	require.NoError(t, err)
	b, err := replicate.Run(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, a.TMRCA, b.TMRCA)
	assert.Equal(t, a.TotalLength, b.TotalLength)
	assert.Equal(t, a.SFS, b.SFS)
	assert.Equal(t, 4, a.Config.Workers)
}

// TestRun_WorkersCappedByReplicates verifies idle workers are not spawned.
func TestRun_WorkersCappedByReplicates(t *testing.T) {
	res, err := replicate.Run(context.Background(), replicate.Config{Samples: 3, Replicates: 2, Workers: 8})
	require.NoError(t, err)
	assert.Equal(t, 2, res.Config.Workers)
	for _, v := range res.TMRCA {
		assert.Greater(t, v, 0.0)
	}
}

// TestRun_Cancelled verifies a cancelled context aborts the batch.
func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := replicate.Run(ctx, replicate.Config{Samples: 10, Replicates: 1000, Workers: 2})
	assert.True(t, errors.Is(err, context.Canceled), "got %v", err)
}

// TestRun_Convergence checks the n = 10 expectations through Summary.
func TestRun_Convergence(t *testing.T) {
	cfg := replicate.Config{Samples: 10, Replicates: 20000, Workers: 4, Seed: 665456}
	res, err := replicate.Run(context.Background(), cfg)
	require.NoError(t, err)
	sum, err := res.Summary()
	require.NoError(t, err)

	assert.Equal(t, 10, sum.Samples)
	assert.Equal(t, 20000, sum.Replicates)
	assert.InDelta(t, sum.TMRCA.ExpectedMean, sum.TMRCA.Mean, 0.05)
	assert.InDelta(t, sum.TotalLength.ExpectedMean, sum.TotalLength.Mean, 0.15)
	assert.InDelta(t, sum.TotalLength.ExpectedVariance, sum.TotalLength.Variance, 0.5)
	require.Len(t, sum.SFS, 9)
	for _, b := range sum.SFS {
		assert.InDelta(t, b.Expected, b.Mean, 0.1, "k=%d", b.Count)
	}
	assert.LessOrEqual(t, sum.TMRCA.Median, sum.TMRCA.P95)
}

func TestSummary_Empty(t *testing.T) {
	var r *replicate.Result
	_, err := r.Summary()
	assert.True(t, errors.Is(err, replicate.ErrEmptyResult))
	_, err = (&replicate.Result{}).Summary()
	assert.True(t, errors.Is(err, replicate.ErrEmptyResult))
}

func TestSummary_SingleReplicate(t *testing.T) {
	res, err := replicate.Run(context.Background(), replicate.Config{Samples: 4, Replicates: 1})
	require.NoError(t, err)
	sum, err := res.Summary()
	require.NoError(t, err)
	assert.Zero(t, sum.TMRCA.Variance)
	assert.Equal(t, res.TMRCA[0], sum.TMRCA.Mean)
	assert.Equal(t, res.TMRCA[0], sum.TMRCA.P95)
}
