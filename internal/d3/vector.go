package d3

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Set is an ordered collection of 3d points.
type Set []r3.Vec

// Min returns the minimum component of a vector.
func Min(a r3.Vec) float64 {
	return math.Min(a.Z, math.Min(a.X, a.Y))
}
