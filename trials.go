package effarea

import (
	"context"
	"fmt"
	"log"
	"runtime"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat"

	"github.com/phil-mansfield/effarea/rand"
)

// TrialSummary contains the results of a set of independent estimates of the
// same cylinder and their orientation-averaged area.
type TrialSummary struct {
	Results []Result
	// Mean is the average area over all trials and StdErr is the error on
	// that average.
	Mean, StdErr float64
}

// Trials runs the given number of independent estimates of one cylinder.
// Every trial draws its own tilt angle and uses its own generator split from
// gen, so the output depends only on gen's seed and not on the number of
// threads. At most threads trials run at once; a non-positive value means
// runtime.NumCPU().
func Trials(
	ctx context.Context, est *Estimator,
	radius, height float64, samples, trials, threads int,
	gen *rand.Generator,
) (*TrialSummary, error) {
	if err := checkRun(radius, height, samples); err != nil {
		return nil, err
	} else if trials <= 0 {
		return nil, fmt.Errorf(
			"Trial count must be positive, but is %d.", trials,
		)
	}

	gens := gen.Split(trials)
	results := make([]Result, trials)

	err := forEach(ctx, trials, threads, func(i int) error {
		res, err := est.Run(radius, height, samples, gens[i])
		if err != nil { return err }
		results[i] = *res
		if est.Log {
			log.Printf(
				"Trial %d/%d: theta = %.4g, area = %.6g",
				i+1, trials, res.Theta, res.Area,
			)
		}
		return nil
	})
	if err != nil { return nil, err }

	return summarize(results), nil
}

func summarize(results []Result) *TrialSummary {
	sum := &TrialSummary{ Results: results }
	if len(results) == 1 {
		sum.Mean, sum.StdErr = results[0].Area, results[0].StdErr()
		return sum
	}

	areas := make([]float64, len(results))
	for i := range results { areas[i] = results[i].Area }
	mean, std := stat.MeanStdDev(areas, nil)
	sum.Mean, sum.StdErr = mean, stat.StdErr(std, float64(len(areas)))
	return sum
}

// forEach calls f(i) for every i in [0, n) using at most threads goroutines
// and returns the first error encountered. Once ctx is done no new calls are
// started.
func forEach(
	ctx context.Context, n, threads int, f func(i int) error,
) error {
	if threads <= 0 { threads = runtime.NumCPU() }

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(threads)
	for i := 0; i < n; i++ {
		i := i
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil { return err }
			return f(i)
		})
	}
	return eg.Wait()
}
