package infill

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Hexagonal lattice generation. Cells are regular hexagons identified by
// their circumradius (center to vertex distance), laid out with a vertex on
// the x axis so that columns repeat every 1.5 circumradii and rows every
// sqrt(3) circumradii, odd columns staggered by half a row pitch.

// latticePitch returns the column and row pitch of a hexagonal lattice
// with the given cell circumradius.
func latticePitch(cellSize float64) (dx, dy float64) {
	return 1.5 * cellSize, math.Sqrt(3) * cellSize
}

// latticeCount returns the number of columns and rows needed so that the
// lattice spans at least width+2*cellSize by height+2*cellSize. The extra
// cell on each side keeps cropped cells away from the tiled region; at
// least one column and row is always produced.
func latticeCount(width, height, cellSize float64) (cols, rows int) {
	dx, dy := latticePitch(cellSize)
	cols = int(math.Ceil((width+2*cellSize)/dx)) + 1
	rows = int(math.Ceil((height+2*cellSize)/dy)) + 1
	// Odd counts put a cell on the origin and keep the lattice
	// mirror-symmetric about it.
	if cols%2 == 0 {
		cols++
	}
	if rows%2 == 0 {
		rows++
	}
	return cols, rows
}

// Centers returns the hexagon center points of a lattice covering a
// width x height rectangle centered on the origin, in column-major then
// row order. Every point of the rectangle is within one cell circumradius
// of some returned center.
func Centers(width, height, cellSize float64) []r2.Vec {
	if width <= 0 {
		panic("width <= 0")
	}
	if height <= 0 {
		panic("height <= 0")
	}
	if cellSize <= 0 {
		panic("cellSize <= 0")
	}
	dx, dy := latticePitch(cellSize)
	cols, rows := latticeCount(width, height, cellSize)
	x0 := -float64(cols-1) / 2 * dx
	y0 := -float64(rows-1) / 2 * dy
	centers := make([]r2.Vec, 0, cols*(rows+1))
	for i := 0; i < cols; i++ {
		y, n := y0, rows
		if i%2 == 1 {
			// Staggered columns take one extra point so they stay
			// symmetric about the origin too.
			y -= dy / 2
			n++
		}
		for j := 0; j < n; j++ {
			centers = append(centers, r2.Vec{
				X: x0 + float64(i)*dx,
				Y: y + float64(j)*dy,
			})
		}
	}
	return centers
}
