package geom

import (
	"math"
)

// TrigEps is the magnitude below which sin(theta) and cos(theta) are treated
// as zero by the hit test.
var TrigEps = 1e-10

// Cylinder is a finite cylinder centered on the origin whose axis has been
// tilted away from the beam by Theta. The trigonometric values are computed
// once so that repeated hit tests against the same orientation are cheap.
type Cylinder struct {
	R, H, Theta float64
	sin, cos    float64
}

// NewCylinder creates a cylinder with the given radius, height, and tilt
// angle.
func NewCylinder(radius, height, theta float64) *Cylinder {
	c := &Cylinder{}
	c.Init(radius, height, theta)
	return c
}

// Init initializes a cylinder with the given radius, height, and tilt angle.
func (c *Cylinder) Init(radius, height, theta float64) {
	c.R, c.H, c.Theta = radius, height, theta
	c.sin, c.cos = math.Sincos(theta)
}

// Axis returns the unit vector along the cylinder's axis.
func (c *Cylinder) Axis() Vec {
	v := Vec{0, 0, 1}
	v.Rotate(TiltMatrix(c.Theta))
	return v
}

// Hit returns true if the ray which leaves the point (x, y, 0) in the +z
// direction passes strictly inside the cylinder and false otherwise. Rays
// which only graze the curved surface are misses.
//
// Points along the ray are (x, y, t) for t >= 0. The squared distance from
// such a point to the axis is x^2 + (y cos - t sin)^2 and its coordinate along
// the axis is y sin + t cos, which must lie within [-H/2, H/2].
func (c *Cylinder) Hit(x, y float64) bool {
	h2 := c.H / 2
	sin, cos := c.sin, c.cos

	var tMin, tMax float64
	if math.Abs(cos) < TrigEps {
		// The axis is perpendicular to the beam, so the axial coordinate is
		// the same everywhere along the ray.
		if s := y*sin; s < -h2 || s > h2 { return false }
		tMin, tMax = math.Inf(-1), math.Inf(+1)
	} else {
		tMin = (-h2 - y*sin) / cos
		tMax = (+h2 - y*sin) / cos
		if tMin > tMax { tMin, tMax = tMax, tMin }
	}

	if tMax < 0 { return false }
	tStart := math.Max(tMin, 0)
	if tStart > tMax { return false }

	tOpt := tStart
	if math.Abs(sin) > TrigEps { tOpt = y*cos / sin }
	t := math.Min(math.Max(tOpt, tStart), tMax)

	perp := y*cos - t*sin
	return x*x + perp*perp < c.R*c.R
}

// Hit is a convenience function which tests a single ray against a cylinder
// with the given radius, height, and tilt angle. Code which tests many rays
// against the same cylinder should use Cylinder.Hit instead.
func Hit(x, y, radius, height, theta float64) bool {
	c := Cylinder{}
	c.Init(radius, height, theta)
	return c.Hit(x, y)
}
