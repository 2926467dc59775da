// Package infill turns flat printable walls into shelled, honeycomb-filled
// versions of themselves. A hexagonal ring lattice is sized to the wall's
// bounding box, intersected with the wall body and unioned with a thin
// preserved skin on the two faces normal to the wall's thickness axis.
package infill

import (
	"errors"
	"fmt"
	"math"

	"github.com/printbed/partgen/internal/d3"
	"github.com/soypat/sdf"
	"github.com/soypat/sdf/form3/must3"
	"gonum.org/v1/gonum/spatial/r3"
)

// ErrDegenerateGeometry is returned when requested parameters would
// produce a self-intersecting or empty solid.
var ErrDegenerateGeometry = errors.New("degenerate geometry")

// Params configure the honeycomb infill applied to a wall solid.
type Params struct {
	// CellSize is the hexagon circumradius.
	CellSize float64
	// EdgeWidth is the ring wall thickness. Zero or anything at or above
	// twice the cell size leaves the cells uncut (solid hexagon prisms).
	EdgeWidth float64
	// ShellThickness is the depth of solid skin preserved on the two
	// faces normal to the resolved axis. Zero keeps no skin.
	ShellThickness float64
	// Normal overrides thickness-axis selection. Leave zero to pick the
	// axis of minimum bounding-box extent; non-flat walls must override.
	Normal Axis
}

func (p Params) validate() error {
	switch {
	case p.CellSize <= 0:
		return errors.New("cell size must be positive")
	case p.EdgeWidth < 0:
		return errors.New("edge width must not be negative")
	case p.ShellThickness < 0:
		return errors.New("shell thickness must not be negative")
	}
	return nil
}

// Honeycomb applies a honeycomb infill to a wall solid. The result is the
// union of the preserved outer skins and the intersection of the wall with
// the hexagonal lattice; it never extends past the wall's envelope.
//
// The call fails with ErrDegenerateGeometry when the skins would meet or
// overlap, i.e. when twice the shell thickness reaches the wall's extent
// along the resolved normal axis.
func Honeycomb(wall sdf.SDF3, p Params) (sdf.SDF3, error) {
	if wall == nil {
		return nil, errors.New("nil wall solid")
	}
	if err := p.validate(); err != nil {
		return nil, err
	}
	bb := d3.Box(wall.Bounds())
	o, err := ResolveOrientation(r3.Box(bb), p.Normal)
	if err != nil {
		return nil, err
	}
	if 2*p.ShellThickness >= o.Thickness {
		return nil, fmt.Errorf("%w: shell thickness %g consumes wall thickness %g along %v",
			ErrDegenerateGeometry, p.ShellThickness, o.Thickness, o.Normal)
	}

	pattern := Pattern(o.Width, o.Height, p.CellSize, p.EdgeWidth, o.Thickness)
	switch o.Normal {
	case AxisX:
		pattern = sdf.Transform3D(pattern, sdf.RotateY(math.Pi/2))
	case AxisY:
		pattern = sdf.Transform3D(pattern, sdf.RotateX(math.Pi/2))
	}
	pattern = sdf.Transform3D(pattern, sdf.Translate3D(o.Center))
	fill := sdf.Intersect3D(wall, pattern)

	skins := sdf.Difference3D(wall, interiorSlab(bb, o, p.ShellThickness))
	return sdf.Union3D(skins, fill), nil
}

// interiorSlab is the region deeper than shell below both faces normal to
// the resolved axis. Subtracting it from the wall leaves only the skins.
// In-plane the slab overshoots the bounding box so side geometry never
// clips the subtraction.
func interiorSlab(bb d3.Box, o Orientation, shell float64) sdf.SDF3 {
	size := bb.Size()
	const overshoot = 2.0
	inner := o.Thickness - 2*shell
	switch o.Normal {
	case AxisX:
		size = r3.Vec{X: inner, Y: size.Y * overshoot, Z: size.Z * overshoot}
	case AxisY:
		size = r3.Vec{X: size.X * overshoot, Y: inner, Z: size.Z * overshoot}
	default:
		size = r3.Vec{X: size.X * overshoot, Y: size.Y * overshoot, Z: inner}
	}
	slab := must3.Box(size, 0)
	return sdf.Transform3D(slab, sdf.Translate3D(o.Center))
}
