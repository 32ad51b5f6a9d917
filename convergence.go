package effarea

import (
	"fmt"
	"math"

	"github.com/phil-mansfield/effarea/rand"
)

// Convergence draws a single tilt angle and then estimates the effective
// area at that angle once for each entry of counts, continuing to draw from
// gen between estimates.
func Convergence(
	est *Estimator, radius, height float64, counts []int, gen *rand.Generator,
) ([]Result, error) {
	if err := CheckDimensions(radius, height); err != nil { return nil, err }
	for _, n := range counts {
		if n <= 0 { return nil, &InvalidSampleCountError{ n } }
	}

	theta := est.sampler().Sample(gen)
	results := make([]Result, len(counts))
	for i, n := range counts {
		results[i] = *est.run(radius, height, theta, n, gen)
	}
	return results, nil
}

// LogCounts returns steps sample counts spaced evenly in log between min
// and max, inclusive. Repeated counts caused by rounding are removed.
func LogCounts(min, max, steps int) ([]int, error) {
	if min <= 0 || max < min {
		return nil, fmt.Errorf(
			"Sample range [%d, %d] is not a valid positive range.", min, max,
		)
	} else if steps <= 0 {
		return nil, fmt.Errorf("Steps must be positive, but is %d.", steps)
	} else if steps == 1 || min == max {
		return []int{ max }, nil
	}

	lMin, lMax := math.Log(float64(min)), math.Log(float64(max))
	dl := (lMax - lMin) / float64(steps - 1)

	counts := make([]int, 0, steps)
	for i := 0; i < steps; i++ {
		n := int(math.Round(math.Exp(lMin + dl*float64(i))))
		if i == steps - 1 { n = max }
		if len(counts) > 0 && counts[len(counts) - 1] >= n { continue }
		counts = append(counts, n)
	}
	return counts, nil
}
