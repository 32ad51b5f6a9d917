package geom

import (
	"math"
)

// BoundsMargin is the safety factor applied by HeuristicBounds.
const BoundsMargin = 1.5

// Bounds is the rectangle [-X, X) x [-Y, Y) in the transverse plane that ray
// offsets are drawn from.
type Bounds struct {
	X, Y float64
}

// HeuristicBounds returns a rectangle which contains the projection of a
// cylinder of the given radius and height at every tilt in [0, pi/2],
// padded by BoundsMargin.
func HeuristicBounds(radius, height float64) Bounds {
	return Bounds{
		X: BoundsMargin * radius,
		Y: BoundsMargin * (radius + height/2),
	}
}

// TightBounds returns the smallest rectangle which contains the projection
// of the given cylinder onto the transverse plane. No ray outside of it can
// hit the cylinder.
//
// A point on the cylinder is s*A + r*(cos(phi)*X + sin(phi)*E), where A is
// the axis, X is the x unit vector, and E = (0, cos, -sin). Its transverse
// y coordinate is s*sin + r*sin(phi)*cos, which is maximized at the end caps.
func TightBounds(radius, height, theta float64) Bounds {
	sin, cos := math.Sincos(theta)
	return Bounds{
		X: radius,
		Y: math.Abs(height/2 * sin) + math.Abs(radius * cos),
	}
}

// Area returns the area of the rectangle.
func (b Bounds) Area() float64 { return (2*b.X) * (2*b.Y) }

// Contains returns true if (x, y) is within the closed rectangle.
func (b Bounds) Contains(x, y float64) bool {
	return x >= -b.X && x <= b.X && y >= -b.Y && y <= b.Y
}
