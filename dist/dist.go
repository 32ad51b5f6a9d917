/*package dist contains the orientation samplers used by the estimators.
*/
package dist

import (
	"fmt"
	"math"

	"github.com/phil-mansfield/effarea/rand"
)

// Cos2 maps a uniform value u in [0, 1) to a tilt angle in (0, pi/2] by
// inverse transform sampling: theta = acos(sqrt(u)). u = 0 maps to pi/2
// exactly and the map decreases monotonically toward 0 as u approaches 1.
//
// Because the substitution is u = cos^2(theta), the angles it produces are
// distributed with density sin(2 theta), and their CDF is Cos2CDF.
func Cos2(u float64) float64 {
	return math.Acos(math.Sqrt(u))
}

// Cos2CDF returns P(theta' <= theta) for the angles produced by Cos2.
func Cos2CDF(theta float64) float64 {
	if theta <= 0 {
		return 0
	} else if theta >= math.Pi/2 {
		return 1
	}
	s := math.Sin(theta)
	return s*s
}

// Sampler draws a tilt angle.
type Sampler interface {
	Sample(gen *rand.Generator) float64
	fmt.Stringer
}

// Cos2Sampler draws angles with Cos2. Each call consumes exactly one uniform
// value from the generator.
type Cos2Sampler struct{}

func (Cos2Sampler) Sample(gen *rand.Generator) float64 {
	return Cos2(gen.Float64())
}

func (Cos2Sampler) String() string { return "acos(sqrt(u))" }

// FixedAngle always returns the same angle and consumes nothing from the
// generator.
type FixedAngle float64

func (a FixedAngle) Sample(gen *rand.Generator) float64 { return float64(a) }

func (a FixedAngle) String() string {
	return fmt.Sprintf("fixed at %.6g", float64(a))
}
