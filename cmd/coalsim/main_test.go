package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// execute runs the command tree with args and returns stdout and stderr.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), errOut.String(), err
}

func TestSimulate_JSON(t *testing.T) {
	out, _, err := execute(t, "simulate", "--samples", "6", "--replicates", "200",
		"--workers", "2", "--seed", "3", "--theta", "2", "--format", "json")
	require.NoError(t, err)

	var got struct {
		Samples    int `json:"samples"`
		Replicates int `json:"replicates"`
		Workers    int `json:"workers"`
		Seed       uint64
		TMRCA      struct {
			Mean         float64 `json:"mean"`
			ExpectedMean float64 `json:"expected_mean"`
		} `json:"tmrca"`
		SFS []struct {
			Count    int     `json:"count"`
			Expected float64 `json:"expected"`
		} `json:"sfs"`
		Theta             float64   `json:"theta"`
		ExpectedMutations []float64 `json:"expected_mutations"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, 6, got.Samples)
	assert.Equal(t, 200, got.Replicates)
	assert.Equal(t, 2, got.Workers)
	assert.Equal(t, uint64(3), got.Seed)
	assert.InDelta(t, 2*(1-1.0/6), got.TMRCA.ExpectedMean, 1e-12)
	assert.Greater(t, got.TMRCA.Mean, 0.0)
	require.Len(t, got.SFS, 5)
	assert.Equal(t, 1, got.SFS[0].Count)
	assert.InDelta(t, 2.0, got.SFS[0].Expected, 1e-12)
	assert.Equal(t, 2.0, got.Theta)
	assert.Len(t, got.ExpectedMutations, 5)
}

func TestSimulate_Deterministic(t *testing.T) {
	args := []string{"simulate", "-n", "5", "-r", "50", "-w", "3", "--seed", "9", "--format", "yaml"}
	a, _, err := execute(t, args...)
	require.NoError(t, err)
	b, _, err := execute(t, args...)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestSimulate_TextHasTables(t *testing.T) {
	out, _, err := execute(t, "simulate", "-n", "4", "-r", "20")
	require.NoError(t, err)
	assert.Contains(t, out, "tmrca")
	assert.Contains(t, out, "total length")
	assert.Contains(t, out, "sfs time")
}

func TestSimulate_TextWithTheta(t *testing.T) {
	out, _, err := execute(t, "simulate", "-n", "4", "-r", "20", "--theta", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "mutations")
	assert.Contains(t, out, "samples=4 replicates=20")
}

func TestSimulate_InvalidConfig(t *testing.T) {
	_, _, err := execute(t, "simulate", "--samples", "1")
	assert.Error(t, err)
}

func TestTree_YAML(t *testing.T) {
	out, _, err := execute(t, "tree", "--samples", "4", "--seed", "42", "--format", "yaml")
	require.NoError(t, err)

	var got struct {
		Samples     int     `yaml:"samples"`
		Seed        uint64  `yaml:"seed"`
		TMRCA       float64 `yaml:"tmrca"`
		TotalLength float64 `yaml:"total_length"`
		Tables      struct {
			SequenceLength float64 `yaml:"sequence_length"`
			Nodes          struct {
				Flags []uint32  `yaml:"flags"`
				Time  []float64 `yaml:"time"`
			} `yaml:"nodes"`
			Edges struct {
				Parent []int `yaml:"parent"`
				Child  []int `yaml:"child"`
			} `yaml:"edges"`
		} `yaml:"tables"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	assert.Equal(t, 4, got.Samples)
	assert.Equal(t, uint64(42), got.Seed)
	assert.Equal(t, 1.0, got.Tables.SequenceLength)
	assert.Len(t, got.Tables.Nodes.Time, 7)
	assert.Equal(t, []uint32{1, 1, 1, 1, 0, 0, 0}, got.Tables.Nodes.Flags)
	assert.Len(t, got.Tables.Edges.Child, 6)
	assert.Equal(t, got.Tables.Nodes.Time[6], got.TMRCA)
	assert.Greater(t, got.TotalLength, got.TMRCA)
}

func TestTree_TextHasNodeAndEdgeTables(t *testing.T) {
	out, _, err := execute(t, "tree", "--samples", "3", "--seed", "5", "--seq-length", "10")
	require.NoError(t, err)
	assert.Contains(t, out, "samples=3 seed=5")
	for _, col := range []string{"id", "flags", "time", "left", "right", "parent", "child"} {
		assert.Contains(t, out, col)
	}
	// 5 node rows and 4 edge rows, every edge spanning [0, 10).
	assert.Equal(t, 4, strings.Count(out, " 10 |"))
	assert.Contains(t, out, "0.000000")
}

func TestTree_ZeroSeedUsesDefault(t *testing.T) {
	zero, _, err := execute(t, "tree", "--seed", "0", "--format", "json")
	require.NoError(t, err)
	one, _, err := execute(t, "tree", "--seed", "1", "--format", "json")
	require.NoError(t, err)
	assert.Equal(t, zero, one)
}

func TestDrift_JSON(t *testing.T) {
	out, _, err := execute(t, "drift", "--pop-size", "10", "--p0", "0", "--generations", "5", "--format", "json")
	require.NoError(t, err)

	var got struct {
		PopulationSize int       `json:"population_size"`
		Frequencies    []float64 `json:"frequencies"`
		Lost           bool      `json:"lost"`
		AbsorbedAt     int       `json:"absorbed_at"`
		FixationProb   float64   `json:"fixation_probability"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, 10, got.PopulationSize)
	assert.True(t, got.Lost)
	assert.Equal(t, 0, got.AbsorbedAt)
	assert.Equal(t, []float64{0}, got.Frequencies)
	assert.Equal(t, 0.0, got.FixationProb)
}

func TestDrift_Text(t *testing.T) {
	out, _, err := execute(t, "drift", "--pop-size", "10", "--p0", "1", "--generations", "5")
	require.NoError(t, err)
	assert.Contains(t, out, "allele fixed at generation 0")
	assert.Contains(t, out, "generation")
	assert.Contains(t, out, "frequency")
	assert.Contains(t, out, "1.000000")

	out, _, err = execute(t, "drift", "--pop-size", "500", "--p0", "0.5", "--generations", "3", "--seed", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "allele segregating after 3 generations")
	assert.Contains(t, out, "0.500000")
}

func TestRoot_BadFlags(t *testing.T) {
	_, _, err := execute(t, "tree", "--format", "xml")
	assert.Error(t, err)

	_, _, err = execute(t, "tree", "--log-level", "chatty")
	assert.Error(t, err)
}

func TestRoot_DebugLogsToStderr(t *testing.T) {
	out, errOut, err := execute(t, "tree", "--log-level", "debug", "--format", "json")
	require.NoError(t, err)
	assert.Contains(t, errOut, "tree drawn")
	assert.NotContains(t, out, "tree drawn")
}
