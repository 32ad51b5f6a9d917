package io

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phil-mansfield/effarea"
)

func TestExampleConfigsParse(t *testing.T) {
	est, err := ParseEstimateConfig(ExampleEstimateFile)
	require.NoError(t, err)
	assert.Equal(t, 1.0, est.Radius)
	assert.Equal(t, 2.0, est.Height)
	assert.Equal(t, effarea.DefaultSamples, est.Samples)
	assert.Equal(t, 1, est.Trials)
	assert.False(t, est.UseFixedAngle())

	sweep, err := ParseSweepConfig(ExampleSweepFile)
	require.NoError(t, err)
	assert.Equal(t, "path/to/cylinders.txt", sweep.Input)
	assert.Equal(t, 0, sweep.RadiusColumn)
	assert.Equal(t, 1, sweep.HeightColumn)

	conv, err := ParseConvergenceConfig(ExampleConvergenceFile)
	require.NoError(t, err)
	counts, err := conv.Counts()
	require.NoError(t, err)
	assert.Equal(t, 100, counts[0])
	assert.Equal(t, 1000*1000, counts[len(counts) - 1])
}

func TestEstimateConfigOptional(t *testing.T) {
	text := `[Estimate]
Radius = 0.5
Height = 4
Samples = 2000
Trials = 16
Threads = 3
Seed = 99
FixedAngle = 0
TightBounds = true
LogFile = log.out`

	con, err := ParseEstimateConfig(text)
	require.NoError(t, err)
	assert.Equal(t, EstimateConfig{
		Radius: 0.5, Height: 4, Samples: 2000, Trials: 16, Threads: 3,
		Seed: 99, FixedAngle: 0, TightBounds: true, LogFile: "log.out",
	}, *con)
	assert.True(t, con.UseFixedAngle())
}

func TestEstimateConfigInvalid(t *testing.T) {
	table := []string{
		"[Estimate]\nHeight = 1",
		"[Estimate]\nRadius = 1\nHeight = -1",
		"[Estimate]\nRadius = 1\nHeight = 1\nSamples = 0",
		"[Estimate]\nRadius = 1\nHeight = 1\nTrials = -2",
		"[Estimate]\nRadius = 1\nHeight = 1\nFixedAngle = 2",
		"[Estimate]\nRadius = 1\nHeight = 1\nColour = red",
	}

	for i, text := range table {
		if _, err := ParseEstimateConfig(text); err == nil {
			t.Errorf("%d) Expected an error for config:\n%s", i+1, text)
		}
	}

	_, err := ParseEstimateConfig("[Estimate]\nRadius = 1\nHeight = 0")
	var rangeErr *effarea.ArgumentRangeError
	require.True(t, errors.As(err, &rangeErr))
	assert.Equal(t, "height", rangeErr.Name)
}

func TestSweepConfigInvalid(t *testing.T) {
	table := []string{
		"[Sweep]\nOutput = out.txt",
		"[Sweep]\nInput = in.txt",
		"[Sweep]\nInput = in.txt\nOutput = out.txt\nHeightColumn = 0",
		"[Sweep]\nInput = in.txt\nOutput = out.txt\nRadiusColumn = -1",
		"[Sweep]\nInput = in.txt\nOutput = out.txt\nSamples = -1",
	}

	for i, text := range table {
		if _, err := ParseSweepConfig(text); err == nil {
			t.Errorf("%d) Expected an error for config:\n%s", i+1, text)
		}
	}
}

func TestConvergenceConfigInvalid(t *testing.T) {
	table := []string{
		"[Convergence]\nRadius = 1\nHeight = 1",
		"[Convergence]\nRadius = 1\nOutput = a.png",
		"[Convergence]\nRadius = 1\nHeight = 1\nOutput = a.png\n" +
			"MinSamples = 0",
		"[Convergence]\nRadius = 1\nHeight = 1\nOutput = a.png\n" +
			"MinSamples = 1000\nMaxSamples = 10",
		"[Convergence]\nRadius = 1\nHeight = 1\nOutput = a.png\n" +
			"FixedAngle = -0.5",
	}

	for i, text := range table {
		if _, err := ParseConvergenceConfig(text); err == nil {
			t.Errorf("%d) Expected an error for config:\n%s", i+1, text)
		}
	}
}

func TestValidAngle(t *testing.T) {
	assert.True(t, validAngle(NoFixedAngle))
	assert.True(t, validAngle(0))
	assert.True(t, validAngle(math.Pi/2))
	assert.False(t, validAngle(math.Pi/2 + 1e-9))
	assert.False(t, validAngle(-0.1))
}
