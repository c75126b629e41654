package main

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/coalescent/replicate"
	"github.com/katalvlaran/coalescent/treestat"
)

// simulateReport is what `coalsim simulate` prints.
type simulateReport struct {
	replicate.Summary `yaml:",inline"`

	// Theta and ExpectedMutations are set only when --theta > 0.
	Theta             float64   `json:"theta,omitempty" yaml:"theta,omitempty"`
	ExpectedMutations []float64 `json:"expected_mutations,omitempty" yaml:"expected_mutations,omitempty"`
}

func newSimulateCmd(g *globalOptions) *cobra.Command {
	cfg := replicate.DefaultConfig()
	var theta float64

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Draw replicate genealogies and summarize TMRCA, tree length and SFS times",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg.Seed = g.seed
			slog.Info("simulating replicates",
				slog.Int("samples", cfg.Samples),
				slog.Int("replicates", cfg.Replicates),
				slog.Int("workers", cfg.Workers),
				slog.Uint64("seed", cfg.Seed))

			start := time.Now()
			res, err := replicate.Run(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			sum, err := res.Summary()
			if err != nil {
				return err
			}
			slog.Debug("replicates done", slog.Duration("elapsed", time.Since(start)))

			report := simulateReport{Summary: sum}
			if theta > 0 {
				report.Theta = theta
				report.ExpectedMutations = treestat.ExpectedSFS(res.SFS, theta)
			}
			return writeOutput(cmd.OutOrStdout(), g.format, report, report.writeText)
		},
	}

	f := cmd.Flags()
	f.IntVarP(&cfg.Samples, "samples", "n", cfg.Samples, "sample size per tree (>= 2)")
	f.IntVarP(&cfg.Replicates, "replicates", "r", cfg.Replicates, "number of independent trees")
	f.IntVarP(&cfg.Workers, "workers", "w", cfg.Workers, "worker goroutines (0 = GOMAXPROCS)")
	f.Float64Var(&theta, "theta", 0, "scaled mutation rate 4Nμ; > 0 adds expected SFS mutation counts")
	return cmd
}

func (r simulateReport) writeText(w io.Writer) error {
	fmt.Fprintf(w, "samples=%d replicates=%d workers=%d seed=%d\n",
		r.Samples, r.Replicates, r.Workers, r.Seed)

	stats := newTable(w, "statistic", "mean", "expected", "variance", "median", "p95")
	for _, row := range []struct {
		name string
		m    replicate.Moments
	}{
		{"tmrca", r.TMRCA},
		{"total length", r.TotalLength},
	} {
		stats.Append([]string{row.name, ff(row.m.Mean), ff(row.m.ExpectedMean),
			ff(row.m.Variance), ff(row.m.Median), ff(row.m.P95)})
	}
	stats.Render()

	header := []string{"k", "sfs time", "expected"}
	if r.Theta > 0 {
		header = append(header, "mutations")
	}
	sfs := newTable(w, header...)
	for i, b := range r.SFS {
		row := []string{strconv.Itoa(b.Count), ff(b.Mean), ff(b.Expected)}
		if r.Theta > 0 {
			row = append(row, ff(r.ExpectedMutations[i]))
		}
		sfs.Append(row)
	}
	sfs.Render()
	return nil
}
