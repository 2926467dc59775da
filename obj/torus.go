package obj

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// torus is a torus around the z axis (exact distance field).
type torus struct {
	major float64 // center of tube to axis
	minor float64 // tube radius
	bb    r3.Box
}

// newTorus returns an SDF3 for a torus around the z axis.
func newTorus(major, minor float64) *torus {
	if minor <= 0 {
		panic("minor <= 0")
	}
	if major < minor {
		panic("major < minor")
	}
	r := major + minor
	return &torus{
		major: major,
		minor: minor,
		bb: r3.Box{
			Min: r3.Vec{X: -r, Y: -r, Z: -minor},
			Max: r3.Vec{X: r, Y: r, Z: minor},
		},
	}
}

// Evaluate returns the minimum distance to a torus.
func (s *torus) Evaluate(p r3.Vec) float64 {
	q := math.Hypot(p.X, p.Y) - s.major
	return math.Hypot(q, p.Z) - s.minor
}

// Bounds returns the bounding box for a torus.
func (s *torus) Bounds() r3.Box {
	return s.bb
}
