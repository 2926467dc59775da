package d3

import (
	"math/rand"

	"gonum.org/v1/gonum/spatial/r3"
)

// Box is a 3d bounding box.
type Box r3.Box

// Size returns the size of a 3d box.
func (a Box) Size() r3.Vec {
	return r3.Sub(a.Max, a.Min)
}

// Center returns the center of a 3d box.
func (a Box) Center() r3.Vec {
	return r3.Add(a.Min, r3.Scale(0.5, a.Size()))
}

// Contains checks if the 3d box contains the given vector (considering bounds as inside).
func (a Box) Contains(v r3.Vec) bool {
	return a.Min.X <= v.X && a.Min.Y <= v.Y && a.Min.Z <= v.Z &&
		v.X <= a.Max.X && v.Y <= a.Max.Y && v.Z <= a.Max.Z
}

// Random returns a random point within a bounding box.
func (a Box) Random() r3.Vec {
	return r3.Vec{
		X: randomRange(a.Min.X, a.Max.X),
		Y: randomRange(a.Min.Y, a.Max.Y),
		Z: randomRange(a.Min.Z, a.Max.Z),
	}
}

// RandomSet returns a set of random points from within a bounding box.
func (a Box) RandomSet(n int) Set {
	s := make([]r3.Vec, n)
	for i := range s {
		s[i] = a.Random()
	}
	return s
}

// randomRange returns a random float64 [a,b)
func randomRange(a, b float64) float64 {
	return a + (b-a)*rand.Float64()
}
