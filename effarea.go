/*package effarea estimates the effective area that a randomly tilted, finite
cylinder presents to a beam of parallel rays.

A single estimate draws one tilt angle, then throws ray offsets uniformly into
a rectangle in the plane transverse to the beam and counts how many strike
the cylinder. The hit fraction times the rectangle's area is the estimate.
*/
package effarea

import (
	"math"

	"github.com/phil-mansfield/effarea/dist"
	"github.com/phil-mansfield/effarea/geom"
	"github.com/phil-mansfield/effarea/rand"
)

const (
	// DefaultSamples is the number of rays thrown per estimate when the
	// caller does not say otherwise.
	DefaultSamples = 100 * 1000
)

// Result contains the outcome of a single estimate.
type Result struct {
	Radius, Height, Theta float64
	Samples, Hits int
	Bounds geom.Bounds
	// Area is the effective area estimate.
	Area float64
}

// StdErr returns the one-sigma Monte Carlo error on Area.
func (res *Result) StdErr() float64 {
	n := float64(res.Samples)
	p := float64(res.Hits) / n
	return res.Bounds.Area() * math.Sqrt(p * (1 - p) / n)
}

// DiskArea returns pi R^2, the area the cylinder presents when its axis is
// parallel to the beam.
func (res *Result) DiskArea() float64 {
	return math.Pi * res.Radius * res.Radius
}

// Estimator runs effective area estimates. The zero value samples the tilt
// angle with dist.Cos2Sampler and throws rays into geom.HeuristicBounds.
//
// An Estimator may be shared between goroutines as long as each goroutine
// uses its own generator.
type Estimator struct {
	// Sampler draws the tilt angle. nil means dist.Cos2Sampler.
	Sampler dist.Sampler
	// TightBounds throws rays into geom.TightBounds instead of the padded
	// heuristic rectangle.
	TightBounds bool
	// Log turns on progress logging for multi-estimate runs.
	Log bool
}

func (est *Estimator) sampler() dist.Sampler {
	if est.Sampler == nil { return dist.Cos2Sampler{} }
	return est.Sampler
}

func (est *Estimator) bounds(radius, height, theta float64) geom.Bounds {
	if est.TightBounds { return geom.TightBounds(radius, height, theta) }
	return geom.HeuristicBounds(radius, height)
}

// Run draws a tilt angle and estimates the effective area of the cylinder at
// that angle. Invalid arguments are reported before anything is drawn from
// gen.
func (est *Estimator) Run(
	radius, height float64, samples int, gen *rand.Generator,
) (*Result, error) {
	if err := checkRun(radius, height, samples); err != nil {
		return nil, err
	}
	theta := est.sampler().Sample(gen)
	return est.run(radius, height, theta, samples, gen), nil
}

// RunAt estimates the effective area of the cylinder at the given tilt
// angle without consulting the sampler.
func (est *Estimator) RunAt(
	radius, height, theta float64, samples int, gen *rand.Generator,
) (*Result, error) {
	if err := checkRun(radius, height, samples); err != nil {
		return nil, err
	}
	return est.run(radius, height, theta, samples, gen), nil
}

func checkRun(radius, height float64, samples int) error {
	if err := CheckDimensions(radius, height); err != nil { return err }
	if samples <= 0 { return &InvalidSampleCountError{ samples } }
	return nil
}

func (est *Estimator) run(
	radius, height, theta float64, samples int, gen *rand.Generator,
) *Result {
	c := geom.NewCylinder(radius, height, theta)
	b := est.bounds(radius, height, theta)

	hits := 0
	for i := 0; i < samples; i++ {
		x := gen.Uniform(-b.X, b.X)
		y := gen.Uniform(-b.Y, b.Y)
		if c.Hit(x, y) { hits++ }
	}

	return &Result{
		Radius: radius, Height: height, Theta: theta,
		Samples: samples, Hits: hits, Bounds: b,
		Area: float64(hits) / float64(samples) * b.Area(),
	}
}

// Estimate draws a tilt angle with dist.Cos2 and returns the effective area
// of the cylinder estimated from the given number of rays. It consumes
// exactly 1 + 2*samples values from gen.
func Estimate(
	radius, height float64, samples int, gen *rand.Generator,
) (float64, error) {
	est := &Estimator{}
	res, err := est.Run(radius, height, samples, gen)
	if err != nil { return 0, err }
	return res.Area, nil
}
