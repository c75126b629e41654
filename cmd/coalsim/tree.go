package main

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/coalescent/coalescent"
	"github.com/katalvlaran/coalescent/rng"
	"github.com/katalvlaran/coalescent/tables"
	"github.com/katalvlaran/coalescent/treestat"
)

// treeReport is one genealogy in table form plus its headline statistics.
type treeReport struct {
	Samples     int                     `json:"samples" yaml:"samples"`
	Seed        uint64                  `json:"seed" yaml:"seed"`
	TMRCA       float64                 `json:"tmrca" yaml:"tmrca"`
	TotalLength float64                 `json:"total_length" yaml:"total_length"`
	Tables      *tables.TableCollection `json:"tables" yaml:"tables"`
}

func newTreeCmd(g *globalOptions) *cobra.Command {
	var (
		samples int
		seqLen  float64
	)
	cmd := &cobra.Command{
		Use:   "tree",
		Short: "Draw one genealogy and print it as node and edge tables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			src := rng.New(g.seed)
			t, err := coalescent.Build(samples, src)
			if err != nil {
				return err
			}
			tc, err := tables.FromTree(t, seqLen)
			if err != nil {
				return err
			}
			slog.Debug("tree drawn",
				slog.Int("nodes", tc.Nodes.Len()),
				slog.Int("edges", tc.Edges.Len()),
				slog.Float64("tmrca", t.TMRCA()))

			report := treeReport{
				Samples:     samples,
				Seed:        src.Seed(),
				TMRCA:       t.TMRCA(),
				TotalLength: treestat.TotalLength(t),
				Tables:      tc,
			}
			return writeOutput(cmd.OutOrStdout(), g.format, report, report.writeText)
		},
	}
	f := cmd.Flags()
	f.IntVarP(&samples, "samples", "n", 5, "sample size (>= 2)")
	f.Float64Var(&seqLen, "seq-length", 1, "sequence length covered by every edge")
	return cmd
}

func (r treeReport) writeText(w io.Writer) error {
	fmt.Fprintf(w, "samples=%d seed=%d tmrca=%.6f total_length=%.6f\n",
		r.Samples, r.Seed, r.TMRCA, r.TotalLength)

	nodes := newTable(w, "id", "flags", "time")
	for i := 0; i < r.Tables.Nodes.Len(); i++ {
		nodes.Append([]string{strconv.Itoa(i),
			strconv.FormatUint(uint64(r.Tables.Nodes.Flags[i]), 10),
			strconv.FormatFloat(r.Tables.Nodes.Time[i], 'f', 6, 64)})
	}
	nodes.Render()

	et := &r.Tables.Edges
	edges := newTable(w, "left", "right", "parent", "child")
	for e := 0; e < et.Len(); e++ {
		edges.Append([]string{
			strconv.FormatFloat(et.Left[e], 'g', -1, 64),
			strconv.FormatFloat(et.Right[e], 'g', -1, 64),
			strconv.Itoa(et.Parent[e]),
			strconv.Itoa(et.Child[e]),
		})
	}
	edges.Render()
	return nil
}
