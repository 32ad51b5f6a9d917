package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"runtime/pprof"
	"strings"

	"github.com/phil-mansfield/effarea"
	"github.com/phil-mansfield/effarea/dist"
	"github.com/phil-mansfield/effarea/io"
	"github.com/phil-mansfield/effarea/rand"
)

// FileGroup contains utility files for logging and writing profiles to.
type FileGroup struct {
	log, prof *os.File
}

// Close closes the files inside FileGroup.
func (fg *FileGroup) Close() {
	if fg.log != nil {
		err := fg.log.Close()
		if err != nil { log.Fatal(err.Error()) }
	}

	if fg.prof != nil {
		pprof.StopCPUProfile()
		err := fg.prof.Close()
		if err != nil { log.Fatal(err.Error()) }
	}
}

// openFileGroup redirects logging to logFile and starts a CPU profile in
// profFile. Either name may be empty.
func openFileGroup(logFile, profFile string) *FileGroup {
	var err error
	fg := new(FileGroup)

	if logFile != "" {
		fg.log, err = os.Create(logFile)
		if err != nil { log.Fatal(err.Error()) }
		log.SetOutput(fg.log)
	}

	if profFile != "" {
		fg.prof, err = os.Create(profFile)
		if err != nil { log.Fatal(err.Error()) }
		err = pprof.StartCPUProfile(fg.prof)
		if err != nil { log.Fatal(err.Error()) }
	}

	return fg
}

func main() {
	// With no mode flag, main expects exactly two positional arguments,
	// radius and height. Every mode flag takes a config file instead and no
	// positional arguments.

	var (
		estimateStr, sweepStr, convergenceStr string
		exampleConfig string

		samples, trials, threads int
		seed int64
		tightBounds bool
	)
	vars := map[string]*string {
		"Estimate": &estimateStr,
		"Sweep": &sweepStr,
		"Convergence": &convergenceStr,
		"ExampleConfig": &exampleConfig,
	}

	flag.StringVar(
		&estimateStr, "Estimate", "",
		"Configuration file for [Estimate] mode.",
	)
	flag.StringVar(
		&sweepStr, "Sweep", "",
		"Configuration file for [Sweep] mode.",
	)
	flag.StringVar(
		&convergenceStr, "Convergence", "",
		"Configuration file for [Convergence] mode.",
	)
	flag.StringVar(
		&exampleConfig,
		"ExampleConfig", "", "Prints an example configuration file of the " +
			"specified type to stdout. Accepted arguments are 'Estimate', " +
			"'Sweep', and 'Convergence'.",
	)

	flag.IntVar(
		&samples, "Samples", effarea.DefaultSamples,
		"Number of rays thrown per trial when radius and height are given " +
			"on the command line.",
	)
	flag.IntVar(
		&trials, "Trials", 1,
		"Number of independent trials, each with its own tilt angle.",
	)
	flag.IntVar(
		&threads, "Threads", runtime.NumCPU(),
		"Number of trials run at once. Default is the number of logical cores.",
	)
	flag.Int64Var(
		&seed, "Seed", 0,
		"Random seed. 0 seeds from the current time.",
	)
	flag.BoolVar(
		&tightBounds, "TightBounds", false,
		"Throw rays into the exact projection of the tilted cylinder.",
	)

	flag.Parse()

	modeName, err := getModeName(vars)
	if err != nil { log.Fatal(err.Error()) }

	if modeName != "Default" && flag.NArg() != 0 {
		log.Fatalf(
			"%s mode takes no positional arguments, but was given %d.",
			modeName, flag.NArg(),
		)
	}

	switch modeName {
	case "Default":
		radius, height, err := io.ParseArgs(flag.Args())
		if err != nil { log.Fatal(err.Error()) }

		con := &io.DefaultEstimateWrapper().Estimate
		con.Radius, con.Height = radius, height
		con.Samples, con.Trials, con.Threads = samples, trials, threads
		con.Seed, con.TightBounds = seed, tightBounds
		if err := con.CheckInit(); err != nil { log.Fatal(err.Error()) }

		estimateMain(con)

	case "Estimate":
		con, err := io.ReadEstimateConfig(estimateStr)
		if err != nil { log.Fatal(err.Error()) }
		if con.Threads <= 0 { con.Threads = threads }
		estimateMain(con)

	case "Sweep":
		con, err := io.ReadSweepConfig(sweepStr)
		if err != nil { log.Fatal(err.Error()) }
		if con.Threads <= 0 { con.Threads = threads }
		sweepMain(con)

	case "Convergence":
		con, err := io.ReadConvergenceConfig(convergenceStr)
		if err != nil { log.Fatal(err.Error()) }
		convergenceMain(con)

	case "ExampleConfig":
		switch exampleConfig {
		case "Estimate":
			fmt.Println(io.ExampleEstimateFile)
		case "Sweep":
			fmt.Println(io.ExampleSweepFile)
		case "Convergence":
			fmt.Println(io.ExampleConvergenceFile)
		default:
			log.Fatal(
				"Unrecognized 'ExampleConfig' argument. Only recognized " +
					"arguments are 'Estimate', 'Sweep', and 'Convergence'.",
			)
		}
	default:
		panic("Impossible")
	}
}

// getModeName returns the name of the mode and fails with a descriptive error
// if the user provided more than one mode flag. "Default" is returned if no
// mode flag was set.
func getModeName(vars map[string]*string) (string, error) {
	setNames := []string{}

	for name, varPtr := range vars {
		if *varPtr != "" { setNames = append(setNames, name) }
	}

	if len(setNames) == 0 { return "Default", nil }

	if len(setNames) > 1 {
		return "", fmt.Errorf(
			"The following flags were set: %s, but effarea only accepts " +
				"one mode flag at a time.",
			strings.Join(setNames, ", "),
		)
	}

	return setNames[0], nil
}

// newGenerator creates a generator from a config seed, where 0 means that
// the seed should be taken from the clock.
func newGenerator(seed int64) *rand.Generator {
	var gen *rand.Generator
	if seed == 0 {
		gen = rand.NewTimeSeed()
	} else {
		gen = rand.New(uint64(seed))
	}
	log.Printf("Random seed: %d", gen.Seed())
	return gen
}

func estimator(fixedAngle float64, useFixed, tightBounds bool) *effarea.Estimator {
	est := &effarea.Estimator{ TightBounds: tightBounds, Log: true }
	if useFixed { est.Sampler = dist.FixedAngle(fixedAngle) }
	return est
}

// estimateMain runs [Estimate] mode and the default command line mode.
func estimateMain(con *io.EstimateConfig) {
	fg := openFileGroup(con.LogFile, con.ProfileFile)
	defer fg.Close()

	fmt.Println("Monte Carlo Simulation for Cylinder Effective Area")
	fmt.Printf("Radius: %g, Height: %g\n", con.Radius, con.Height)

	est := estimator(con.FixedAngle, con.UseFixedAngle(), con.TightBounds)
	est.Log = con.Trials > 1
	gen := newGenerator(con.Seed)

	if con.Trials == 1 {
		fmt.Printf("Running %d Monte Carlo samples...\n", con.Samples)
	} else {
		fmt.Printf(
			"Running %d trials of %d Monte Carlo samples...\n",
			con.Trials, con.Samples,
		)
	}

	sum, err := effarea.Trials(
		context.Background(), est, con.Radius, con.Height,
		con.Samples, con.Trials, con.Threads, gen,
	)
	if err != nil { log.Fatal(err.Error()) }

	fmt.Println("\nResults:")
	if con.Trials == 1 {
		res := &sum.Results[0]
		fmt.Printf("Tilt Angle: %.6f\n", res.Theta)
		fmt.Printf("Effective Area: %.6f +/- %.6f\n", res.Area, res.StdErr())
	} else {
		fmt.Printf(
			"Mean Effective Area: %.6f +/- %.6f\n", sum.Mean, sum.StdErr,
		)
	}
	fmt.Printf(
		"Geometric Area (πr²): %.6f\n", sum.Results[0].DiskArea(),
	)
}

// sweepMain runs [Sweep] mode.
func sweepMain(con *io.SweepConfig) {
	fg := openFileGroup(con.LogFile, con.ProfileFile)
	defer fg.Close()

	cases, err := io.ReadCases(con.Input, con.RadiusColumn, con.HeightColumn)
	if err != nil { log.Fatal(err.Error()) }
	log.Printf("Read %d cylinders from %s", len(cases), con.Input)

	est := estimator(0, false, con.TightBounds)
	gen := newGenerator(con.Seed)

	results, err := effarea.Sweep(
		context.Background(), est, cases, con.Samples, con.Threads, gen,
	)
	if err != nil { log.Fatal(err.Error()) }

	if err = io.WriteResultsFile(con.Output, results); err != nil {
		log.Fatal(err.Error())
	}
	log.Printf("Wrote %d results to %s", len(results), con.Output)
}

// convergenceMain runs [Convergence] mode.
func convergenceMain(con *io.ConvergenceConfig) {
	fg := openFileGroup(con.LogFile, con.ProfileFile)
	defer fg.Close()

	counts, err := con.Counts()
	if err != nil { log.Fatal(err.Error()) }

	est := estimator(con.FixedAngle, con.UseFixedAngle(), con.TightBounds)
	gen := newGenerator(con.Seed)

	results, err := effarea.Convergence(
		est, con.Radius, con.Height, counts, gen,
	)
	if err != nil { log.Fatal(err.Error()) }

	for i := range results {
		res := &results[i]
		fmt.Printf(
			"%10d %12.6f +/- %.6f\n", res.Samples, res.Area, res.StdErr(),
		)
	}

	plotConvergence(results, con.Output)
}
