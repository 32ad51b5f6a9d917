package io

import (
	"fmt"
	"math"

	"gopkg.in/gcfg.v1"

	"github.com/phil-mansfield/effarea"
)

const (
	ExampleEstimateFile = `[Estimate]

#######################
# Required Parameters #
#######################

# Dimensions of the cylinder. Both must be positive.
Radius = 1.0
Height = 2.0

#######################
# Optional Parameters #
#######################

# Number of rays thrown at the cylinder per trial. Default is 100000.
# Samples = 100000

# Each trial draws its own tilt angle. Running several trials and averaging
# gives the orientation-averaged area along with its error. Default is 1.
# Trials = 1

# Number of trials which are allowed to run at the same time. Default is the
# number of logical cores. A single trial always runs on one core.
# Threads = 4

# Seed for the random number generator. Runs with the same seed and the same
# parameters give identical output. If Seed is 0 or not set, the current time
# is used.
# Seed = 12345

# Tilt angles are drawn as theta = acos(sqrt(u)) for uniform u. Setting
# FixedAngle (in radians, within [0, pi/2]) skips the draw and uses this
# angle for every trial.
# FixedAngle = 0

# By default rays are thrown into a rectangle 1.5 times larger than any
# projection of the cylinder. TightBounds throws them into the exact
# projection of the tilted cylinder instead, which lowers the error.
# TightBounds = true

# Output files which are useful for profiling and debugging. Generally, there
# isn't a reason to use these unless something goes wrong.
# ProfileFile = prof.out
# LogFile = log.out`

	ExampleSweepFile = `[Sweep]

#######################
# Required Parameters #
#######################

# Whitespace-separated column file with one cylinder per line. Lines starting
# with '#' are ignored.
Input = path/to/cylinders.txt

# File the results table will be written to. Its columns are:
# radius, height, theta, samples, hits, area, area error, pi R^2
Output = path/to/areas.txt

#######################
# Optional Parameters #
#######################

# Zero-indexed columns of Input holding the radius and height. Defaults are
# 0 and 1.
# RadiusColumn = 0
# HeightColumn = 1

# Same meaning as in [Estimate].
# Samples = 100000
# Threads = 4
# Seed = 12345
# TightBounds = true
# ProfileFile = prof.out
# LogFile = log.out`

	ExampleConvergenceFile = `[Convergence]

#######################
# Required Parameters #
#######################

Radius = 1.0
Height = 2.0

# Plot of the estimate against the number of samples. Writing the plot
# requires python and matplotlib.
Output = convergence.png

#######################
# Optional Parameters #
#######################

# The estimate is repeated for Steps sample counts spaced logarithmically
# between MinSamples and MaxSamples. Defaults are 100, 1000000, and 9.
# MinSamples = 100
# MaxSamples = 1000000
# Steps = 9

# Same meaning as in [Estimate].
# Seed = 12345
# FixedAngle = 0
# TightBounds = true
# ProfileFile = prof.out
# LogFile = log.out`
)

// NoFixedAngle is the FixedAngle value which means that tilt angles should
// be drawn at random.
const NoFixedAngle = -1.0

type EstimateConfig struct {
	// Required
	Radius, Height float64

	// Optional
	Samples, Trials, Threads int
	Seed int64
	FixedAngle float64
	TightBounds bool

	LogFile, ProfileFile string
}

type EstimateWrapper struct {
	Estimate EstimateConfig
}

func DefaultEstimateWrapper() *EstimateWrapper {
	con := EstimateConfig{
		Samples: effarea.DefaultSamples, Trials: 1, FixedAngle: NoFixedAngle,
	}
	return &EstimateWrapper{ con }
}

func (con *EstimateConfig) ValidSamples() bool { return con.Samples > 0 }
func (con *EstimateConfig) ValidTrials() bool { return con.Trials > 0 }
func (con *EstimateConfig) ValidFixedAngle() bool {
	return validAngle(con.FixedAngle)
}

func (con *EstimateConfig) UseFixedAngle() bool {
	return con.FixedAngle != NoFixedAngle
}

// CheckInit returns a descriptive error if any field of con has an invalid
// value.
func (con *EstimateConfig) CheckInit() error {
	if err := effarea.CheckDimensions(con.Radius, con.Height); err != nil {
		return fmt.Errorf("Invalid/non-existent [Estimate] value: %w", err)
	} else if !con.ValidSamples() {
		return &effarea.InvalidSampleCountError{ Samples: con.Samples }
	} else if !con.ValidTrials() {
		return fmt.Errorf("Invalid 'Trials' value, %d.", con.Trials)
	} else if !con.ValidFixedAngle() {
		return fmt.Errorf(
			"'FixedAngle' must be in [0, pi/2], but is %g.", con.FixedAngle,
		)
	}
	return nil
}

// ReadEstimateConfig reads and checks an [Estimate] config file.
func ReadEstimateConfig(fname string) (*EstimateConfig, error) {
	wrap := DefaultEstimateWrapper()
	if err := gcfg.ReadFileInto(wrap, fname); err != nil { return nil, err }
	if err := wrap.Estimate.CheckInit(); err != nil { return nil, err }
	return &wrap.Estimate, nil
}

// ParseEstimateConfig is identical to ReadEstimateConfig, except that it
// parses the config from a string.
func ParseEstimateConfig(text string) (*EstimateConfig, error) {
	wrap := DefaultEstimateWrapper()
	if err := gcfg.ReadStringInto(wrap, text); err != nil { return nil, err }
	if err := wrap.Estimate.CheckInit(); err != nil { return nil, err }
	return &wrap.Estimate, nil
}

type SweepConfig struct {
	// Required
	Input, Output string

	// Optional
	RadiusColumn, HeightColumn int
	Samples, Threads int
	Seed int64
	TightBounds bool

	LogFile, ProfileFile string
}

type SweepWrapper struct {
	Sweep SweepConfig
}

func DefaultSweepWrapper() *SweepWrapper {
	con := SweepConfig{
		RadiusColumn: 0, HeightColumn: 1, Samples: effarea.DefaultSamples,
	}
	return &SweepWrapper{ con }
}

func (con *SweepConfig) ValidInput() bool { return con.Input != "" }
func (con *SweepConfig) ValidOutput() bool { return con.Output != "" }
func (con *SweepConfig) ValidSamples() bool { return con.Samples > 0 }

func (con *SweepConfig) ValidColumns() bool {
	return con.RadiusColumn >= 0 && con.HeightColumn >= 0 &&
		con.RadiusColumn != con.HeightColumn
}

func (con *SweepConfig) CheckInit() error {
	if !con.ValidInput() {
		return fmt.Errorf("Invalid/non-existent 'Input' value.")
	} else if !con.ValidOutput() {
		return fmt.Errorf("Invalid/non-existent 'Output' value.")
	} else if !con.ValidColumns() {
		return fmt.Errorf(
			"'RadiusColumn' and 'HeightColumn' must be distinct and " +
				"non-negative, but are %d and %d.",
			con.RadiusColumn, con.HeightColumn,
		)
	} else if !con.ValidSamples() {
		return &effarea.InvalidSampleCountError{ Samples: con.Samples }
	}
	return nil
}

func ReadSweepConfig(fname string) (*SweepConfig, error) {
	wrap := DefaultSweepWrapper()
	if err := gcfg.ReadFileInto(wrap, fname); err != nil { return nil, err }
	if err := wrap.Sweep.CheckInit(); err != nil { return nil, err }
	return &wrap.Sweep, nil
}

func ParseSweepConfig(text string) (*SweepConfig, error) {
	wrap := DefaultSweepWrapper()
	if err := gcfg.ReadStringInto(wrap, text); err != nil { return nil, err }
	if err := wrap.Sweep.CheckInit(); err != nil { return nil, err }
	return &wrap.Sweep, nil
}

type ConvergenceConfig struct {
	// Required
	Radius, Height float64
	Output string

	// Optional
	MinSamples, MaxSamples, Steps int
	Seed int64
	FixedAngle float64
	TightBounds bool

	LogFile, ProfileFile string
}

type ConvergenceWrapper struct {
	Convergence ConvergenceConfig
}

func DefaultConvergenceWrapper() *ConvergenceWrapper {
	con := ConvergenceConfig{
		MinSamples: 100, MaxSamples: 1000 * 1000, Steps: 9,
		FixedAngle: NoFixedAngle,
	}
	return &ConvergenceWrapper{ con }
}

func (con *ConvergenceConfig) ValidOutput() bool { return con.Output != "" }
func (con *ConvergenceConfig) ValidFixedAngle() bool {
	return validAngle(con.FixedAngle)
}

func (con *ConvergenceConfig) UseFixedAngle() bool {
	return con.FixedAngle != NoFixedAngle
}

func (con *ConvergenceConfig) CheckInit() error {
	if err := effarea.CheckDimensions(con.Radius, con.Height); err != nil {
		return fmt.Errorf("Invalid/non-existent [Convergence] value: %w", err)
	} else if !con.ValidOutput() {
		return fmt.Errorf("Invalid/non-existent 'Output' value.")
	} else if !con.ValidFixedAngle() {
		return fmt.Errorf(
			"'FixedAngle' must be in [0, pi/2], but is %g.", con.FixedAngle,
		)
	}
	_, err := con.Counts()
	return err
}

// Counts returns the sample counts the estimate will be repeated at.
func (con *ConvergenceConfig) Counts() ([]int, error) {
	return effarea.LogCounts(con.MinSamples, con.MaxSamples, con.Steps)
}

func ReadConvergenceConfig(fname string) (*ConvergenceConfig, error) {
	wrap := DefaultConvergenceWrapper()
	if err := gcfg.ReadFileInto(wrap, fname); err != nil { return nil, err }
	if err := wrap.Convergence.CheckInit(); err != nil { return nil, err }
	return &wrap.Convergence, nil
}

func ParseConvergenceConfig(text string) (*ConvergenceConfig, error) {
	wrap := DefaultConvergenceWrapper()
	if err := gcfg.ReadStringInto(wrap, text); err != nil { return nil, err }
	if err := wrap.Convergence.CheckInit(); err != nil { return nil, err }
	return &wrap.Convergence, nil
}

func validAngle(theta float64) bool {
	return theta == NoFixedAngle || (theta >= 0 && theta <= math.Pi/2)
}
