package infill

import (
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

func TestRingProfile(t *testing.T) {
	const (
		cellSize  = 10.0
		edgeWidth = 4.0
		depth     = 6.0
	)
	ring := Ring(cellSize, edgeWidth, depth)
	// The hexagon vertex lies on the x axis, so along x the ring material
	// spans [cellSize-edgeWidth/2, cellSize].
	inside := r3.Vec{X: cellSize - edgeWidth/4}
	if d := ring.Evaluate(inside); d >= 0 {
		t.Errorf("edge midpoint %.4v outside ring, distance %g", inside, d)
	}
	if d := ring.Evaluate(r3.Vec{}); d <= 0 {
		t.Errorf("ring center not hollow, distance %g", d)
	}
	past := r3.Vec{X: cellSize + 1}
	if d := ring.Evaluate(past); d <= 0 {
		t.Errorf("point past the outer wall inside ring, distance %g", d)
	}
	above := r3.Vec{X: cellSize - edgeWidth/4, Z: depth/2 + 1}
	if d := ring.Evaluate(above); d <= 0 {
		t.Errorf("point above the extrusion inside ring, distance %g", d)
	}
}

func TestRingDegenerate(t *testing.T) {
	const (
		cellSize = 10.0
		depth    = 4.0
	)
	// A very wide edge collapses the inner hexagon and an edge width of
	// zero makes inner and outer coincide. Both must come out as plain
	// solid prisms rather than zero-area cuts.
	for _, edge := range []float64{0, 2 * cellSize, 3 * cellSize} {
		s := Ring(cellSize, edge, depth)
		if d := s.Evaluate(r3.Vec{}); d >= 0 {
			t.Errorf("edge width %g: center not solid, distance %g", edge, d)
		}
		if d := s.Evaluate(r3.Vec{X: cellSize / 2}); d >= 0 {
			t.Errorf("edge width %g: mid radius not solid, distance %g", edge, d)
		}
	}
}

func TestPatternSpan(t *testing.T) {
	const (
		width, height = 60.0, 30.0
		cellSize      = 8.0
		edgeWidth     = 3.0
		depth         = 5.0
	)
	p := Pattern(width, height, cellSize, edgeWidth, depth)
	bb := p.Bounds()
	// Lattice overshoots the rectangle so cropped cells sit outside it.
	if bb.Max.X < width/2 || bb.Max.Y < height/2 {
		t.Errorf("pattern bounds %+v do not span the %gx%g rectangle", bb, width, height)
	}
	if bb.Max.Z != depth/2 || bb.Min.Z != -depth/2 {
		t.Errorf("pattern z span [%g,%g], want [%g,%g]", bb.Min.Z, bb.Max.Z, -depth/2, depth/2)
	}
}
