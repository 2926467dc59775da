package obj

import (
	"errors"

	"github.com/soypat/sdf"
	"github.com/soypat/sdf/form2/must2"
	"github.com/soypat/sdf/form3/must3"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// TamperStationParams configures a barista tamper station: a rounded
// block with pockets for the portafilter, tamper, leveler, screens and
// two drawer openings in the sides. The outer block dimensions derive
// from the pocket sizes and margins.
type TamperStationParams struct {
	Margin float64

	PortaHolderDiameter   float64
	PortaHolderDepth      float64
	PortaHandleLength     float64 // Y
	PortaHandleWidth      float64 // X
	PortaHandleDepth      float64
	PortaHandleScrewDiam  float64
	PortaHandleScrewDepth float64

	UpperLeftDiameter float64
	UpperLeftDepth    float64

	UpperMiddleLength float64 // X
	UpperMiddleWidth  float64 // Y
	UpperMiddleDepth  float64

	UpperRightDiameter float64
	UpperRightDepth    float64

	LowerLeftWidth  float64 // X
	LowerLeftLength float64 // Y
	LowerLeftDepth  float64
	LowerLeftGap    float64
	LowerLeftCount  int

	LowerRightDiameter float64
	LowerRightDepth    float64

	InternalWall float64
	DrawerWidth  float64
	CornerRound  float64
}

// Length is the outer X extent of the station.
func (k TamperStationParams) Length() float64 {
	return k.Margin + k.UpperLeftDiameter + k.PortaHolderDiameter + k.UpperRightDiameter + k.Margin
}

// Width is the outer Y extent of the station.
func (k TamperStationParams) Width() float64 {
	return k.PortaHandleLength + k.PortaHolderDiameter + k.Margin + k.UpperMiddleWidth + k.Margin
}

// Height is the outer Z extent of the station.
func (k TamperStationParams) Height() float64 {
	return k.PortaHolderDepth + k.InternalWall
}

func (k TamperStationParams) drawerHeight() float64 {
	deep := k.UpperLeftDepth
	for _, d := range []float64{k.UpperRightDepth, k.LowerLeftDepth, k.LowerRightDepth} {
		if d > deep {
			deep = d
		}
	}
	return k.Height() - deep - 2*k.InternalWall
}

func (k TamperStationParams) drawerDepth() float64 {
	return (k.Length() - 2*k.InternalWall - k.PortaHolderDiameter) / 2
}

func (k TamperStationParams) validate() error {
	switch {
	case k.Margin <= 0 || k.InternalWall <= 0:
		return errors.New("margin and internal wall must be positive")
	case k.PortaHolderDiameter <= 0 || k.PortaHolderDepth <= 0:
		return errors.New("portafilter pocket dimensions must be positive")
	case k.LowerLeftCount < 1:
		return errors.New("need at least one accessory slot")
	case k.CornerRound < 0:
		return errors.New("corner rounding must not be negative")
	}
	m, l, w := k.Margin, k.Length(), k.Width()
	upperX := m + k.UpperLeftDiameter + m + k.UpperMiddleLength + m + k.UpperRightDiameter + m
	if upperX >= l {
		return errors.New("upper pockets do not fit along x")
	}
	slots := k.LowerLeftWidth*float64(k.LowerLeftCount) + k.LowerLeftGap*float64(k.LowerLeftCount-1)
	lowerX := m + slots + m + k.PortaHolderDiameter + m + k.LowerRightDiameter + m
	if lowerX > l {
		return errors.New("lower pockets do not fit along x")
	}
	if m+k.UpperLeftDiameter+m+k.LowerLeftLength+m > w {
		return errors.New("pockets do not fit along y")
	}
	if k.drawerHeight() <= 0 || k.drawerDepth() <= 0 {
		return errors.New("no room left for drawers")
	}
	return nil
}

// topBore is a round pocket cut downward from the top face.
func (k TamperStationParams) topBore(x, y, diameter, depth float64) sdf.SDF3 {
	c := must3.Cylinder(depth, diameter/2, 0)
	return sdf.Transform3D(c, sdf.Translate3D(r3.Vec{X: x, Y: y, Z: k.Height()/2 - depth/2}))
}

// topPocket is a rectangular pocket cut downward from the top face.
func (k TamperStationParams) topPocket(x, y, sizeX, sizeY, depth float64) sdf.SDF3 {
	b := must3.Box(r3.Vec{X: sizeX, Y: sizeY, Z: depth}, 0)
	return sdf.Transform3D(b, sdf.Translate3D(r3.Vec{X: x, Y: y, Z: k.Height()/2 - depth/2}))
}

// TamperStation returns the station as one print-ready solid with z=0 at
// mid height and the portafilter pocket on the -Y side.
func TamperStation(k TamperStationParams) (sdf.SDF3, error) {
	if err := k.validate(); err != nil {
		return nil, err
	}
	l, w, h := k.Length(), k.Width(), k.Height()
	body := sdf.Extrude3D(must2.Box(r2.Vec{X: l, Y: w}, k.CornerRound), h)

	var cuts []sdf.SDF3

	// Portafilter handle slot through the front edge, with a screw hole
	// in its floor so the handle rest can be bolted on.
	cuts = append(cuts,
		k.topPocket(0, -w/2, k.PortaHandleWidth, k.PortaHolderDiameter, k.PortaHandleDepth))
	screw := must3.Cylinder(k.PortaHandleScrewDepth, k.PortaHandleScrewDiam/2, 0)
	cuts = append(cuts, sdf.Transform3D(screw, sdf.Translate3D(r3.Vec{
		Y: -w/2 + k.PortaHandleLength/2,
		Z: h/2 - k.PortaHandleDepth - k.PortaHandleScrewDepth/2,
	})))

	cuts = append(cuts,
		k.topBore(0, -w/2+k.PortaHandleLength+k.PortaHolderDiameter/2,
			k.PortaHolderDiameter, k.PortaHolderDepth),
		k.topBore(-l/2+k.Margin+k.UpperLeftDiameter/2, w/2-k.Margin-k.UpperLeftDiameter/2,
			k.UpperLeftDiameter, k.UpperLeftDepth),
		k.topPocket(0, w/2-k.Margin-k.UpperMiddleWidth/2,
			k.UpperMiddleLength, k.UpperMiddleWidth, k.UpperMiddleDepth),
		k.topBore(l/2-k.Margin-k.UpperRightDiameter/2, w/2-k.Margin-k.UpperRightDiameter/2,
			k.UpperRightDiameter, k.UpperRightDepth),
		k.topBore(l/2-k.Margin-k.LowerRightDiameter/2, -w/2+k.Margin+k.LowerRightDiameter/2,
			k.LowerRightDiameter, k.LowerRightDepth))

	// Thin accessory slots between the left edge and the portafilter
	// pocket, one margin in from the edge.
	slotY := -w/2 + k.Margin + k.LowerLeftLength/2
	for i := 0; i < k.LowerLeftCount; i++ {
		x := -l/2 + k.Margin + k.LowerLeftWidth/2 +
			float64(i)*(k.LowerLeftWidth+k.LowerLeftGap)
		cuts = append(cuts,
			k.topPocket(x, slotY, k.LowerLeftWidth, k.LowerLeftLength, k.LowerLeftDepth))
	}

	// Drawer openings in the left and right faces.
	dh, dd := k.drawerHeight(), k.drawerDepth()
	drawer := must3.Box(r3.Vec{X: dd, Y: k.DrawerWidth, Z: dh}, 0)
	zOfs := -h/2 + k.InternalWall + dh/2
	cuts = append(cuts,
		sdf.Transform3D(drawer, sdf.Translate3D(r3.Vec{X: -l/2 + dd/2, Z: zOfs})),
		sdf.Transform3D(drawer, sdf.Translate3D(r3.Vec{X: l/2 - dd/2, Z: zOfs})))

	return sdf.Difference3D(body, sdf.Union3D(cuts...)), nil
}
