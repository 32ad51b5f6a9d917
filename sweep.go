package effarea

import (
	"context"
	"fmt"
	"log"

	"github.com/phil-mansfield/effarea/rand"
)

// Case is a single cylinder shape in a sweep.
type Case struct {
	Radius, Height float64
}

// Sweep estimates the effective area of every case. Each case gets its own
// generator split from gen and its own tilt angle, and the results are
// returned in the same order as cases. All cases are checked before any
// estimate starts.
func Sweep(
	ctx context.Context, est *Estimator, cases []Case, samples, threads int,
	gen *rand.Generator,
) ([]Result, error) {
	for i, c := range cases {
		if err := checkRun(c.Radius, c.Height, samples); err != nil {
			return nil, fmt.Errorf("Case %d: %w", i+1, err)
		}
	}

	gens := gen.Split(len(cases))
	results := make([]Result, len(cases))

	err := forEach(ctx, len(cases), threads, func(i int) error {
		c := cases[i]
		res, err := est.Run(c.Radius, c.Height, samples, gens[i])
		if err != nil { return err }
		results[i] = *res
		if est.Log {
			log.Printf(
				"Case %d/%d: R = %g, H = %g, area = %.6g",
				i+1, len(cases), c.Radius, c.Height, res.Area,
			)
		}
		return nil
	})
	if err != nil { return nil, err }

	return results, nil
}
