package obj

import (
	"errors"
	"math"

	"github.com/printbed/partgen/infill"
	"github.com/soypat/sdf"
	"github.com/soypat/sdf/form2/must2"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// DisplayStandParams configures a tiered display stand. The stand prints
// as two pieces: the stack of L-profile steps and a base made of two
// honeycombed side walls the steps rest against.
type DisplayStandParams struct {
	Steps           int
	FirstStepHeight float64 // front step, may be 0 to disable
	StepHeight      float64
	StepWidth       float64 // X
	StepDepth       float64 // Y
	WallThickness   float64

	// Infill applied to the base side walls.
	Infill infill.Params
}

func (k DisplayStandParams) validate() error {
	switch {
	case k.Steps < 1:
		return errors.New("need at least one step")
	case k.StepHeight <= 0 || k.StepWidth <= 0 || k.StepDepth <= 0:
		return errors.New("step dimensions must be positive")
	case k.FirstStepHeight < 0:
		return errors.New("first step height must not be negative")
	case k.WallThickness <= 0:
		return errors.New("wall thickness must be positive")
	case 2*k.WallThickness >= k.StepDepth || k.WallThickness >= k.StepHeight:
		return errors.New("wall thickness too large for step profile")
	}
	return nil
}

// profileToWorld maps a profile extruded along local Z into world space:
// profile X becomes world Y, profile Y becomes world Z and the extrusion
// runs along world X.
var profileToWorld = sdf.RotateZ(math.Pi / 2).Mul(sdf.RotateX(math.Pi / 2))

// step builds one L-shaped step of the given height and the side wall
// panel hanging wallHeight below it. Both are centered on X and share
// the same profile coordinates.
func (k DisplayStandParams) step(height, wallHeight float64) (step, wall sdf.SDF3) {
	hd := k.StepDepth / 2
	hh := height / 2
	wt := k.WallThickness
	x0, y0 := hd, -hh
	x1 := hd - wt
	y2 := hh - wt
	x3 := -hd - wt
	y4 := hh

	profile := must2.Polygon([]r2.Vec{
		{X: x0, Y: y0},
		{X: x0, Y: y4},
		{X: x3, Y: y4},
		{X: x3, Y: y2},
		{X: x1, Y: y2},
		{X: x1, Y: y0},
	})
	step = sdf.Extrude3D(profile, k.StepWidth)
	step = sdf.Transform3D(step, profileToWorld)

	// The panel spans the step profile down to the hang, so it keeps a
	// positive extent even at zero wallHeight. Gate on that extent.
	if y2-(y0-wallHeight) <= 0 {
		return step, nil
	}
	side := must2.Polygon([]r2.Vec{
		{X: x1, Y: y0 - wallHeight},
		{X: x1, Y: y2},
		{X: x3, Y: y2},
		{X: x3, Y: y0 - wallHeight},
	})
	wall = sdf.Extrude3D(side, wt)
	wall = sdf.Transform3D(wall, profileToWorld)
	// Walls sit flush with the -X face of the steps.
	wall = sdf.Transform3D(wall, sdf.Translate3D(r3.Vec{X: -k.StepWidth/2 + wt/2}))
	return step, wall
}

// DisplayStand returns the step stack and the honeycombed base as two
// print-ready solids.
func DisplayStand(k DisplayStandParams) (steps, base sdf.SDF3, err error) {
	if err := k.validate(); err != nil {
		return nil, nil, err
	}
	zOfs := -float64(k.Steps-1) * k.StepHeight / 2
	yOfs := float64(k.Steps) * k.StepDepth / 2
	n := k.Steps

	var stepList, wallList []sdf.SDF3
	if k.FirstStepHeight > 0 {
		zOfs -= k.FirstStepHeight / 2
		yOfs -= k.StepDepth / 2
		s, _ := k.step(k.FirstStepHeight, 0)
		stepList = append(stepList, sdf.Transform3D(s, sdf.Translate3D(r3.Vec{Y: yOfs, Z: zOfs})))
		n--
	}

	firstOfs := k.FirstStepHeight
	for i := 0; i < n; i++ {
		zOfs += k.StepHeight
		yOfs -= k.StepDepth
		s, w := k.step(k.StepHeight, k.StepHeight*float64(i)+firstOfs)
		at := sdf.Translate3D(r3.Vec{Y: yOfs, Z: zOfs})
		stepList = append(stepList, sdf.Transform3D(s, at))
		if w != nil {
			wallList = append(wallList, sdf.Transform3D(w, at))
		}
	}
	if len(stepList) == 0 {
		return nil, nil, errors.New("stand has no steps")
	}
	steps = stepList[0]
	if len(stepList) > 1 {
		steps = sdf.Union3D(stepList...)
	}
	if len(wallList) == 0 {
		return steps, nil, nil
	}

	rightWall := wallList[0]
	if len(wallList) > 1 {
		rightWall = sdf.Union3D(wallList...)
	}
	leftWall := sdf.Transform3D(rightWall,
		sdf.Translate3D(r3.Vec{X: k.StepWidth - k.WallThickness}))
	right, err := infill.Honeycomb(rightWall, k.Infill)
	if err != nil {
		return nil, nil, err
	}
	left, err := infill.Honeycomb(leftWall, k.Infill)
	if err != nil {
		return nil, nil, err
	}
	return steps, sdf.Union3D(right, left), nil
}
