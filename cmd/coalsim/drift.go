package main

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/coalescent/drift"
	"github.com/katalvlaran/coalescent/rng"
)

type driftReport struct {
	drift.Params     `yaml:",inline"`
	Seed             uint64  `json:"seed" yaml:"seed"`
	FixationProb     float64 `json:"fixation_probability" yaml:"fixation_probability"`
	drift.Trajectory `yaml:",inline"`
}

func newDriftCmd(g *globalOptions) *cobra.Command {
	p := drift.Params{PopulationSize: 100, InitialFrequency: 0.5, Generations: 1000}
	cmd := &cobra.Command{
		Use:   "drift",
		Short: "Run one Wright–Fisher allele frequency trajectory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			src := rng.New(g.seed)
			tr, err := drift.Simulate(p, src)
			if err != nil {
				return err
			}
			slog.Info("drift finished",
				slog.Int("generations", len(tr.Frequencies)-1),
				slog.Bool("lost", tr.Lost),
				slog.Bool("fixed", tr.Fixed))

			report := driftReport{
				Params:       p,
				Seed:         src.Seed(),
				FixationProb: drift.FixationProbability(tr.Frequencies[0]),
				Trajectory:   tr,
			}
			return writeOutput(cmd.OutOrStdout(), g.format, report, report.writeText)
		},
	}
	f := cmd.Flags()
	f.IntVar(&p.PopulationSize, "pop-size", p.PopulationSize, "diploid population size N")
	f.Float64Var(&p.InitialFrequency, "p0", p.InitialFrequency, "initial allele frequency in [0, 1]")
	f.IntVar(&p.Generations, "generations", p.Generations, "maximum generations to simulate")
	return cmd
}

func (r driftReport) writeText(w io.Writer) error {
	switch {
	case r.Lost:
		fmt.Fprintf(w, "allele lost at generation %d\n", r.AbsorbedAt)
	case r.Fixed:
		fmt.Fprintf(w, "allele fixed at generation %d\n", r.AbsorbedAt)
	default:
		fmt.Fprintf(w, "allele segregating after %d generations\n", len(r.Frequencies)-1)
	}
	table := newTable(w, "generation", "frequency")
	for g, f := range r.Frequencies {
		table.Append([]string{strconv.Itoa(g), strconv.FormatFloat(f, 'f', 6, 64)})
	}
	table.Render()
	return nil
}
