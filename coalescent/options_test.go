package coalescent_test

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/coalescent/coalescent"
	"github.com/katalvlaran/coalescent/rng"
)

// TestWithSource_NilPanics verifies option constructors fail fast.
func TestWithSource_NilPanics(t *testing.T) {
	assert.PanicsWithValue(t, "coalescent: WithSource(nil)", func() {
		coalescent.WithSource(nil)
	})
}

// TestNewBuilder_DefaultSeed verifies an unconfigured Builder is reproducible
// and matches rng.DefaultSeed.
func TestNewBuilder_DefaultSeed(t *testing.T) {
	a, err := coalescent.NewBuilder().Build(15)
	require.NoError(t, err)
	b, err := coalescent.Build(15, rng.New(rng.DefaultSeed))
	require.NoError(t, err)
	assert.Equal(t, b.Parents(), a.Parents())
	assert.Equal(t, b.Times(), a.Times())
}

// TestBuilder_LaterOptionWins verifies option order.
func TestBuilder_LaterOptionWins(t *testing.T) {
	src := rng.New(77)
	b := coalescent.NewBuilder(coalescent.WithSeed(1), coalescent.WithSource(src))
	assert.Same(t, src, b.Source())
}

// TestBuilder_SuccessiveDraws verifies one Builder keeps consuming its
// stream, and that invalid sizes still surface as errors.
func TestBuilder_SuccessiveDraws(t *testing.T) {
	b := coalescent.NewBuilder(coalescent.WithSeed(9))
	first, err := b.Build(10)
	require.NoError(t, err)
	second, err := b.Build(10)
	require.NoError(t, err)
	assert.NotEqual(t, first.Times(), second.Times())

	_, err = b.Build(1)
	assert.True(t, errors.Is(err, coalescent.ErrInvalidArgument))
}
