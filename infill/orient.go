package infill

import (
	"errors"
	"fmt"

	"github.com/printbed/partgen/internal/d3"
	"gonum.org/v1/gonum/spatial/r3"
)

// ErrInvalidAxis is returned when a normal axis override does not name one
// of the three principal axes.
var ErrInvalidAxis = errors.New("axis must be one of X, Y, Z")

// Axis selects a principal axis. The zero value AxisAuto resolves to the
// axis of minimum bounding-box extent.
type Axis int

const (
	AxisAuto Axis = iota
	AxisX
	AxisY
	AxisZ
)

func (a Axis) String() (str string) {
	switch a {
	case AxisAuto:
		str = "auto"
	case AxisX:
		str = "X"
	case AxisY:
		str = "Y"
	case AxisZ:
		str = "Z"
	default:
		str = "unknown"
	}
	return str
}

// Orientation describes how a wall solid is tiled: which principal axis is
// treated as the thickness direction, the in-plane extents of the tiling
// rectangle, and the translation that recenters a pattern generated at the
// origin onto the solid.
//
// Width and Height name the world axes an origin XY pattern lands on after
// being rotated so its Z axis matches Normal: for AxisZ that is (X, Y),
// for AxisY (X, Z) and for AxisX (Z, Y).
type Orientation struct {
	Normal    Axis
	Width     float64
	Height    float64
	Thickness float64
	Center    r3.Vec
}

// ResolveOrientation decides the thickness direction of a box-aligned wall
// solid from its bounding box. A zero normal picks the axis of minimum
// extent, ties breaking toward the lower axis (X before Y before Z); the
// result is a pure function of the bounding box and override. Overrides
// outside the three principal axes fail with ErrInvalidAxis.
func ResolveOrientation(bb r3.Box, normal Axis) (Orientation, error) {
	box := d3.Box(bb)
	size := box.Size()
	if normal == AxisAuto {
		switch d3.Min(size) {
		case size.X:
			normal = AxisX
		case size.Y:
			normal = AxisY
		default:
			normal = AxisZ
		}
	}
	o := Orientation{
		Normal: normal,
		Center: box.Center(),
	}
	switch normal {
	case AxisX:
		o.Width, o.Height, o.Thickness = size.Z, size.Y, size.X
	case AxisY:
		o.Width, o.Height, o.Thickness = size.X, size.Z, size.Y
	case AxisZ:
		o.Width, o.Height, o.Thickness = size.X, size.Y, size.Z
	default:
		return Orientation{}, fmt.Errorf("%w: got %d", ErrInvalidAxis, int(normal))
	}
	return o, nil
}
