package infill

import (
	"github.com/soypat/sdf"
	"github.com/soypat/sdf/form2/must2"
	"gonum.org/v1/gonum/spatial/r3"
)

// Ring returns a hexagonal ring prism centered on the origin: a hexagon of
// circumradius cellSize minus a concentric hexagon of circumradius
// cellSize-edgeWidth/2, extruded to the given depth. The ring degenerates
// to a solid hexagon prism when the inner radius collapses to zero or when
// it would equal the outer radius (edgeWidth == 0); neither case issues a
// cut, so no zero-volume boolean operation is ever constructed.
func Ring(cellSize, edgeWidth, depth float64) sdf.SDF3 {
	if cellSize <= 0 {
		panic("cellSize <= 0")
	}
	if edgeWidth < 0 {
		panic("edgeWidth < 0")
	}
	if depth <= 0 {
		panic("depth <= 0")
	}
	outer := must2.Polygon(must2.Nagon(6, cellSize))
	innerR := cellSize - edgeWidth/2
	if innerR <= 0 || innerR >= cellSize {
		return sdf.Extrude3D(outer, depth)
	}
	inner := must2.Polygon(must2.Nagon(6, innerR))
	return sdf.Extrude3D(sdf.Difference2D(outer, inner), depth)
}

// Pattern returns the honeycomb lattice solid covering a width x height
// rectangle centered on the origin in the XY plane, extruded to depth
// along Z. One ring is built at the origin and replicated to every lattice
// center in a single batch union; pairwise per-cell unions are much slower
// to evaluate for large lattices.
func Pattern(width, height, cellSize, edgeWidth, depth float64) sdf.SDF3 {
	ring := Ring(cellSize, edgeWidth, depth)
	centers := Centers(width, height, cellSize)
	positions := make([]r3.Vec, len(centers))
	for i, c := range centers {
		positions[i] = r3.Vec{X: c.X, Y: c.Y}
	}
	return sdf.Multi3D(ring, positions)
}
