package effarea

import (
	"fmt"
	"math"
)

// ArgumentRangeError is returned when a cylinder dimension is not a positive,
// finite number.
type ArgumentRangeError struct {
	Name  string
	Value float64
}

func (err *ArgumentRangeError) Error() string {
	return fmt.Sprintf(
		"%s must be a positive, finite number, but is %g.", err.Name, err.Value,
	)
}

// InvalidSampleCountError is returned when an estimate is requested with a
// non-positive number of samples.
type InvalidSampleCountError struct {
	Samples int
}

func (err *InvalidSampleCountError) Error() string {
	return fmt.Sprintf(
		"Sample count must be positive, but is %d.", err.Samples,
	)
}

// CheckDimensions returns an ArgumentRangeError if either radius or height is
// non-positive or non-finite.
func CheckDimensions(radius, height float64) error {
	if !validLength(radius) {
		return &ArgumentRangeError{ "radius", radius }
	} else if !validLength(height) {
		return &ArgumentRangeError{ "height", height }
	}
	return nil
}

func validLength(x float64) bool {
	return x > 0 && !math.IsInf(x, 0)
}
