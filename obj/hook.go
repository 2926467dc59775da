package obj

import (
	"errors"
	"math"

	"github.com/soypat/sdf"
	"github.com/soypat/sdf/form2/must2"
	"github.com/soypat/sdf/form3/must3"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// KvartalHookParams defines the hook adapter that snaps a curtain hook
// onto IKEA Kvartal rail gliders: a stack of glider base, neck, a loft
// flaring the neck into a rectangular plate, and a vertical ring sunk
// into the plate.
type KvartalHookParams struct {
	BaseHeight   float64
	BaseDiameter float64
	BaseRound    float64 // edge rounding of the glider base

	MidHeight   float64
	MidDiameter float64

	PlateHeight float64 // total height of loft + top plate
	PlateX      float64 // plate size along the ring plane
	PlateY      float64

	RingInnerDiameter float64
	RingOuterDiameter float64
	RingEmbed         float64 // how deep the ring sinks into the plate
}

func (k KvartalHookParams) validate() error {
	switch {
	case k.BaseHeight <= 0 || k.BaseDiameter <= 0:
		return errors.New("base dimensions must be positive")
	case k.BaseRound < 0 || 2*k.BaseRound > k.BaseHeight || k.BaseRound > k.BaseDiameter/2:
		return errors.New("base rounding does not fit the base")
	case k.MidHeight <= 0 || k.MidDiameter <= 0:
		return errors.New("mid dimensions must be positive")
	case k.PlateHeight <= 0 || k.PlateX <= 0 || k.PlateY <= 0:
		return errors.New("plate dimensions must be positive")
	case k.RingOuterDiameter <= k.RingInnerDiameter || k.RingInnerDiameter <= 0:
		return errors.New("ring outer diameter must exceed inner diameter")
	case k.RingEmbed <= 0 || k.RingEmbed >= k.RingOuterDiameter:
		return errors.New("ring embed must be positive and shallower than the ring")
	}
	return nil
}

// KvartalHook returns the hook adapter with the glider base at z=0.
func KvartalHook(k KvartalHookParams) (sdf.SDF3, error) {
	if err := k.validate(); err != nil {
		return nil, err
	}
	base := sdf.Transform3D(must3.Cylinder(k.BaseHeight, k.BaseDiameter/2, k.BaseRound),
		sdf.Translate3D(r3.Vec{Z: k.BaseHeight / 2}))

	mid := sdf.Transform3D(must3.Cylinder(k.MidHeight, k.MidDiameter/2, 0),
		sdf.Translate3D(r3.Vec{Z: k.BaseHeight + k.MidHeight/2}))

	// Flare the neck circle into the plate rectangle, then cap with a
	// short straight-walled plate so the top face is flat.
	topThick := k.PlateHeight / 4
	loftH := k.PlateHeight - topThick
	circle := must2.Circle(k.MidDiameter / 2)
	rect := must2.Box(r2.Vec{X: k.PlateX, Y: k.PlateY}, 0)
	flare := sdf.Loft3D(circle, rect, loftH, 0)
	flare = sdf.Transform3D(flare, sdf.Translate3D(r3.Vec{Z: k.BaseHeight + k.MidHeight + loftH/2}))
	plate := sdf.Transform3D(must3.Box(r3.Vec{X: k.PlateX, Y: k.PlateY, Z: topThick}, 0),
		sdf.Translate3D(r3.Vec{Z: k.BaseHeight + k.MidHeight + loftH + topThick/2}))

	// Vertical ring in the XZ plane, sunk RingEmbed into the plate.
	tube := (k.RingOuterDiameter - k.RingInnerDiameter) / 4
	major := k.RingOuterDiameter/2 - tube
	ring := sdf.Transform3D(newTorus(major, tube), sdf.RotateX(math.Pi/2))
	totalH := k.BaseHeight + k.MidHeight + k.PlateHeight
	ringZ := totalH - k.RingEmbed + k.RingOuterDiameter/2
	ring = sdf.Transform3D(ring, sdf.Translate3D(r3.Vec{Z: ringZ}))

	hook := sdf.Union3D(base, mid, flare, plate, ring)
	if k.BaseRound > 0 {
		hook.SetMin(sdf.MinPoly(2, k.BaseRound))
	}
	return hook, nil
}
