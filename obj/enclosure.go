package obj

import (
	"errors"
	"math"

	"github.com/soypat/sdf"
	"github.com/soypat/sdf/form3/must3"
	"gonum.org/v1/gonum/spatial/r3"
)

// Two-piece electronics enclosure: a base made of bottom plate plus front
// and rear walls, and a lid made of top plate plus side walls. The lid
// screws into four internal bosses rising from the base; alignment ledges
// on the lid drop into matching notches in the bottom plate. Connector
// holes and vents are cut by separate pipeline stages so each case
// configuration composes only what it needs.

// EnclosureParams defines the shared geometry of base and lid. The
// enclosure is centered on the origin in X and Y with z=0 at the bottom
// outer face.
type EnclosureParams struct {
	Width  float64 // X
	Length float64 // Y
	Height float64 // Z, outer

	WallThick   float64
	BottomThick float64
	TopThick    float64

	// Lid screws into the corner bosses.
	BossDiameter  float64
	ScrewDiameter float64
	// Countersinks for the lid screws (top) and the brass standoffs
	// holding the board (bottom). Angles in degrees.
	ScrewCskDiameter float64
	ScrewCskAngle    float64
	BrassCskDiameter float64
	BrassCskAngle    float64

	// Bottom mounting hole grid for the board standoffs.
	MountSpacingX float64
	MountSpacingY float64

	// Alignment ledge length along Y and its fit tolerance.
	AlignmentLength    float64
	AlignmentTolerance float64
}

func (k EnclosureParams) validate() error {
	switch {
	case k.Width <= 0 || k.Length <= 0 || k.Height <= 0:
		return errors.New("enclosure dimensions must be positive")
	case k.WallThick <= 0 || k.BottomThick <= 0 || k.TopThick <= 0:
		return errors.New("wall thicknesses must be positive")
	case 2*k.WallThick >= k.Width || 2*k.WallThick >= k.Length:
		return errors.New("walls leave no interior")
	case k.BottomThick+k.TopThick >= k.Height:
		return errors.New("plates leave no interior")
	case k.BossDiameter <= k.ScrewDiameter:
		return errors.New("boss must be wider than its screw")
	case k.ScrewCskDiameter <= k.ScrewDiameter || k.BrassCskDiameter <= k.ScrewDiameter:
		return errors.New("countersink must be wider than its hole")
	case k.ScrewCskAngle <= 0 || k.ScrewCskAngle >= 180 || k.BrassCskAngle <= 0 || k.BrassCskAngle >= 180:
		return errors.New("countersink angle out of range")
	case k.AlignmentLength <= 0 || k.AlignmentTolerance < 0 || k.AlignmentTolerance >= k.AlignmentLength:
		return errors.New("bad alignment ledge dimensions")
	}
	return nil
}

// bossPositions are the four internal screw boss centers.
func (k EnclosureParams) bossPositions() []r3.Vec {
	hx := k.Width/2 - k.WallThick - k.BossDiameter/2
	hy := k.Length/2 - k.WallThick - k.BossDiameter/2
	return []r3.Vec{{X: hx, Y: hy}, {X: -hx, Y: hy}, {X: hx, Y: -hy}, {X: -hx, Y: -hy}}
}

// cskHole returns a countersunk hole cutter pointing up from z=0: a
// through cylinder of the given depth with a conical countersink sunk
// into the z=0 face. angle is the full countersink angle in degrees.
func cskHole(holeD, depth, cskD float64, angle float64) sdf.SDF3 {
	hole := sdf.Transform3D(must3.Cylinder(depth, holeD/2, 0),
		sdf.Translate3D(r3.Vec{Z: depth / 2}))
	cskH := (cskD - holeD) / 2 / math.Tan(angle*math.Pi/360)
	csk := sdf.Transform3D(must3.Cone(cskH, cskD/2, holeD/2, 0),
		sdf.Translate3D(r3.Vec{Z: cskH / 2}))
	return sdf.Union3D(hole, csk)
}

// EnclosureBase returns the base: bottom plate, front and rear walls,
// corner bosses with screw bores, countersunk standoff mounting holes and
// alignment notches for the lid ledges.
func EnclosureBase(k EnclosureParams) (sdf.SDF3, error) {
	if err := k.validate(); err != nil {
		return nil, err
	}
	bottom := sdf.Transform3D(must3.Box(r3.Vec{X: k.Width, Y: k.Length, Z: k.BottomThick}, 0),
		sdf.Translate3D(r3.Vec{Z: k.BottomThick / 2}))

	wallH := k.Height - k.TopThick
	wall := sdf.Transform3D(must3.Box(r3.Vec{X: k.Width - 2*k.WallThick, Y: k.WallThick, Z: wallH}, 0),
		sdf.Translate3D(r3.Vec{Z: wallH / 2}))
	yOfs := k.Length/2 - k.WallThick/2
	front := sdf.Transform3D(wall, sdf.Translate3D(r3.Vec{Y: yOfs}))
	rear := sdf.Transform3D(wall, sdf.Translate3D(r3.Vec{Y: -yOfs}))

	// Corner bosses rise from the bottom plate to lid level.
	bossH := k.Height - k.TopThick - k.BottomThick
	boreDepth := math.Min(bossH, 4*k.ScrewDiameter)
	bore := sdf.Transform3D(must3.Cylinder(boreDepth, k.ScrewDiameter/2, 0),
		sdf.Translate3D(r3.Vec{Z: (bossH - boreDepth) / 2}))
	var boss sdf.SDF3 = sdf.Difference3D(must3.Cylinder(bossH, k.BossDiameter/2, 0), bore)
	boss = sdf.Transform3D(boss, sdf.Translate3D(r3.Vec{Z: k.BottomThick + bossH/2}))
	bosses := sdf.Multi3D(boss, k.bossPositions())

	var base sdf.SDF3 = sdf.Union3D(bottom, front, rear, bosses)

	// Countersunk mounting holes for the board standoffs, cut from below.
	if k.MountSpacingX > 0 && k.MountSpacingY > 0 {
		mount := cskHole(k.ScrewDiameter, k.BottomThick, k.BrassCskDiameter, k.BrassCskAngle)
		hx, hy := k.MountSpacingX/2, k.MountSpacingY/2
		mounts := sdf.Multi3D(mount, []r3.Vec{
			{X: hx, Y: hy}, {X: -hx, Y: hy}, {X: hx, Y: -hy}, {X: -hx, Y: -hy},
		})
		base = sdf.Difference3D(base, mounts)
	}

	// Notches in the bottom plate for the lid alignment ledges.
	notch := sdf.Transform3D(must3.Box(r3.Vec{X: k.WallThick, Y: k.AlignmentLength, Z: k.BottomThick}, 0),
		sdf.Translate3D(r3.Vec{Z: k.BottomThick / 2}))
	xOfs := k.Width/2 - k.WallThick/2
	notches := sdf.Multi3D(notch, []r3.Vec{{X: xOfs}, {X: -xOfs}})
	return sdf.Difference3D(base, notches), nil
}

// EnclosureLid returns the lid: top plate, side walls, countersunk screw
// holes over the base bosses and the alignment ledges that register in
// the base's bottom-plate notches.
func EnclosureLid(k EnclosureParams) (sdf.SDF3, error) {
	if err := k.validate(); err != nil {
		return nil, err
	}
	top := sdf.Transform3D(must3.Box(r3.Vec{X: k.Width, Y: k.Length, Z: k.TopThick}, 0),
		sdf.Translate3D(r3.Vec{Z: k.Height - k.TopThick/2}))

	sideH := k.Height - k.BottomThick - k.TopThick
	side := sdf.Transform3D(must3.Box(r3.Vec{X: k.WallThick, Y: k.Length, Z: sideH}, 0),
		sdf.Translate3D(r3.Vec{Z: k.BottomThick + sideH/2}))
	xOfs := k.Width/2 - k.WallThick/2
	sides := sdf.Multi3D(side, []r3.Vec{{X: xOfs}, {X: -xOfs}})

	ledge := sdf.Transform3D(must3.Box(r3.Vec{
		X: k.WallThick,
		Y: k.AlignmentLength - k.AlignmentTolerance,
		Z: k.BottomThick,
	}, 0), sdf.Translate3D(r3.Vec{Z: k.BottomThick / 2}))
	ledges := sdf.Multi3D(ledge, []r3.Vec{{X: xOfs}, {X: -xOfs}})

	lid := sdf.Union3D(top, sides, ledges)

	// Countersunk lid screw holes over the boss positions, cut from above.
	hole := cskHole(k.ScrewDiameter, k.TopThick, k.ScrewCskDiameter, k.ScrewCskAngle)
	hole = sdf.Transform3D(hole, sdf.RotateX(math.Pi))
	hole = sdf.Transform3D(hole, sdf.Translate3D(r3.Vec{Z: k.Height}))
	holes := sdf.Multi3D(hole, k.bossPositions())
	return sdf.Difference3D(lid, holes), nil
}

// RearHole is a circular connector hole in the rear wall, positioned by
// its center in wall coordinates: X across the wall, Z above the bottom.
type RearHole struct {
	X, Z     float64
	Diameter float64
}

// RearCutout is a rectangular opening in the rear wall.
type RearCutout struct {
	X, Z          float64
	Width, Height float64
}

// WithRearHoles cuts circular connector holes through the rear wall of a
// base solid.
func WithRearHoles(base sdf.SDF3, k EnclosureParams, holes []RearHole) sdf.SDF3 {
	if len(holes) == 0 {
		return base
	}
	cuts := make([]sdf.SDF3, len(holes))
	for i, h := range holes {
		c := sdf.Transform3D(must3.Cylinder(4*k.WallThick, h.Diameter/2, 0),
			sdf.RotateX(math.Pi/2))
		cuts[i] = sdf.Transform3D(c, sdf.Translate3D(r3.Vec{X: h.X, Y: -k.Length / 2, Z: h.Z}))
	}
	cut := cuts[0]
	if len(cuts) > 1 {
		cut = sdf.Union3D(cuts...)
	}
	return sdf.Difference3D(base, cut)
}

// WithRearCutout cuts one rectangular opening through the rear wall of a
// base solid.
func WithRearCutout(base sdf.SDF3, k EnclosureParams, c RearCutout) sdf.SDF3 {
	cut := sdf.Transform3D(must3.Box(r3.Vec{X: c.Width, Y: 4 * k.WallThick, Z: c.Height}, 0),
		sdf.Translate3D(r3.Vec{X: c.X, Y: -k.Length / 2, Z: c.Z}))
	return sdf.Difference3D(base, cut)
}

// VentParams defines an array of diagonal vent slots on the lid side walls.
type VentParams struct {
	// AreaLength is the vented span along Y, AreaHeight the vented span
	// along Z, centered on the wall.
	AreaLength float64
	AreaHeight float64
	Spacing    float64
	SlotWidth  float64
	// Angle of the slots around Z in radians.
	Angle float64
}

// WithSideVents cuts diagonal vent slot arrays through both side walls of
// a lid. Mirrored slots on the far wall use the opposite angle, as a
// cross-flow pattern sheds printing overhangs better than straight slots.
func WithSideVents(lid sdf.SDF3, k EnclosureParams, v VentParams) sdf.SDF3 {
	n := int(v.AreaLength / v.Spacing)
	if n < 1 {
		n = 1
	}
	spacing := v.AreaLength / float64(n)
	slotH := v.AreaHeight
	zOfs := k.BottomThick + (k.Height-k.BottomThick-k.TopThick)/2
	xOfs := k.Width/2 - k.WallThick/2

	slot := must3.Box(r3.Vec{X: 4 * k.WallThick, Y: v.SlotWidth, Z: slotH}, 0)
	left := sdf.Transform3D(slot, sdf.RotateZ(v.Angle))
	right := sdf.Transform3D(slot, sdf.RotateZ(-v.Angle))

	positions := make([]r3.Vec, n)
	start := -v.AreaLength/2 + spacing/2
	for i := range positions {
		positions[i] = r3.Vec{Y: start + float64(i)*spacing}
	}
	leftCuts := sdf.Transform3D(sdf.Multi3D(left, positions), sdf.Translate3D(r3.Vec{X: -xOfs, Z: zOfs}))
	rightCuts := sdf.Transform3D(sdf.Multi3D(right, positions), sdf.Translate3D(r3.Vec{X: xOfs, Z: zOfs}))
	return sdf.Difference3D(lid, sdf.Union3D(leftCuts, rightCuts))
}
