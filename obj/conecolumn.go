// Package obj holds the parametric printable parts of this repository.
// Constructors take a parameter struct, validate it, and return a solid
// positioned with its base plane at z=0 unless noted otherwise. All
// dimensions are millimetres.
package obj

import (
	"errors"

	"github.com/soypat/sdf"
	"github.com/soypat/sdf/form2/must2"
	"github.com/soypat/sdf/form3/must3"
	"github.com/soypat/sdf/form3/obj3/thread"
	"gonum.org/v1/gonum/spatial/r3"
)

// ConeColumnParams defines a hollow truncated cone column: a central bore
// from the top face with a fastening feature at the bottom. Used as
// roller-shutter limiters.
type ConeColumnParams struct {
	BaseDiameter float64
	TopDiameter  float64
	Height       float64
	// BoreDiameter is the diameter of the central bore from the top face.
	BoreDiameter float64
}

func (k ConeColumnParams) validate() error {
	switch {
	case k.BaseDiameter <= 0 || k.TopDiameter <= 0:
		return errors.New("cone diameters must be positive")
	case k.Height <= 0:
		return errors.New("height must be positive")
	case k.BoreDiameter <= 0:
		return errors.New("bore diameter must be positive")
	case k.BoreDiameter >= k.TopDiameter:
		return errors.New("bore diameter must be smaller than top diameter")
	}
	return nil
}

// cone returns the column body with its base at z=0.
func (k ConeColumnParams) cone() sdf.SDF3 {
	body := must3.Cone(k.Height, k.BaseDiameter/2, k.TopDiameter/2, 0)
	return sdf.Transform3D(body, sdf.Translate3D(r3.Vec{Z: k.Height / 2}))
}

// topBore returns a cylinder cutting depth into the column from the top face.
func (k ConeColumnParams) topBore(depth float64) sdf.SDF3 {
	bore := must3.Cylinder(depth, k.BoreDiameter/2, 0)
	return sdf.Transform3D(bore, sdf.Translate3D(r3.Vec{Z: k.Height - depth/2}))
}

// ConeColumnThreadedParams defines the column variant with an internal ISO
// thread embedded at the bottom of the bore.
type ConeColumnThreadedParams struct {
	ConeColumnParams
	// Thread nominal diameter and pitch, e.g. M6: 6.0/1.0.
	ThreadDiameter float64
	ThreadPitch    float64
	ThreadLength   float64
}

// ConeColumnThreaded returns a cone column whose bore ends in an internal
// ISO thread of the given length.
func ConeColumnThreaded(k ConeColumnThreadedParams) (sdf.SDF3, error) {
	if err := k.validate(); err != nil {
		return nil, err
	}
	switch {
	case k.ThreadDiameter <= 0 || k.ThreadPitch <= 0:
		return nil, errors.New("thread diameter and pitch must be positive")
	case k.ThreadLength <= 0 || k.ThreadLength >= k.Height:
		return nil, errors.New("thread length must be positive and shorter than the column")
	}
	// Thread-shaped void below the wide bore.
	iso := thread.ISO{D: k.ThreadDiameter, P: k.ThreadPitch, Ext: true}
	screw, err := thread.Screw(k.ThreadLength, iso)
	if err != nil {
		return nil, err
	}
	screw = sdf.Transform3D(screw, sdf.Translate3D(r3.Vec{Z: k.ThreadLength / 2}))
	column := sdf.Difference3D(k.cone(), k.topBore(k.Height-k.ThreadLength))
	return sdf.Difference3D(column, screw), nil
}

// ConeColumnNutParams defines the column variant with a hexagonal recess
// for a separate nut in the bottom face and a screw bore through the floor.
type ConeColumnNutParams struct {
	ConeColumnParams
	// NutDiameter is the nut's corner to corner diameter.
	NutDiameter float64
	NutHeight   float64
	// BottomThickness is the floor below the recess that the screw
	// passes through.
	BottomThickness   float64
	ScrewHoleDiameter float64
}

// ConeColumnNutRecess returns a cone column with a captive-nut recess.
func ConeColumnNutRecess(k ConeColumnNutParams) (sdf.SDF3, error) {
	if err := k.validate(); err != nil {
		return nil, err
	}
	switch {
	case k.NutDiameter <= 0 || k.NutHeight <= 0:
		return nil, errors.New("nut dimensions must be positive")
	case k.ScrewHoleDiameter <= 0:
		return nil, errors.New("screw hole diameter must be positive")
	case k.NutHeight+k.BottomThickness >= k.Height:
		return nil, errors.New("nut recess and floor must fit under the bore")
	}
	boreDepth := k.Height - k.BottomThickness - k.NutHeight
	column := sdf.Difference3D(k.cone(), k.topBore(boreDepth))

	// Captive nut cavity above the bottom floor.
	recess := sdf.Extrude3D(must2.Polygon(must2.Nagon(6, k.NutDiameter/2)), k.NutHeight)
	recess = sdf.Transform3D(recess, sdf.Translate3D(r3.Vec{Z: k.BottomThickness + k.NutHeight/2}))
	column = sdf.Difference3D(column, recess)

	screw := sdf.Transform3D(must3.Cylinder(k.BottomThickness, k.ScrewHoleDiameter/2, 0),
		sdf.Translate3D(r3.Vec{Z: k.BottomThickness / 2}))
	return sdf.Difference3D(column, screw), nil
}
