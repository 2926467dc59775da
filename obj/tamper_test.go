package obj_test

import (
	"testing"

	"github.com/printbed/partgen/obj"
	"gonum.org/v1/gonum/spatial/r3"
)

func tamperParams() obj.TamperStationParams {
	return obj.TamperStationParams{
		Margin: 10,

		PortaHolderDiameter:   74,
		PortaHolderDepth:      75,
		PortaHandleLength:     15,
		PortaHandleWidth:      25,
		PortaHandleDepth:      45,
		PortaHandleScrewDiam:  4,
		PortaHandleScrewDepth: 10,

		UpperLeftDiameter: 60,
		UpperLeftDepth:    15,

		UpperMiddleLength: 50,
		UpperMiddleWidth:  35,
		UpperMiddleDepth:  35,

		UpperRightDiameter: 60,
		UpperRightDepth:    15,

		LowerLeftWidth:  3,
		LowerLeftLength: 50,
		LowerLeftDepth:  15,
		LowerLeftGap:    10,
		LowerLeftCount:  3,

		LowerRightDiameter: 35,
		LowerRightDepth:    35,

		InternalWall: 5,
		DrawerWidth:  80,
		CornerRound:  15,
	}
}

func TestTamperStationDimensions(t *testing.T) {
	k := tamperParams()
	if got := k.Length(); got != 10+60+74+60+10 {
		t.Errorf("length %g, want 214", got)
	}
	if got := k.Width(); got != 15+74+10+35+10 {
		t.Errorf("width %g, want 144", got)
	}
	if got := k.Height(); got != 80 {
		t.Errorf("height %g, want 80", got)
	}
}

func TestTamperStation(t *testing.T) {
	k := tamperParams()
	station, err := obj.TamperStation(k)
	if err != nil {
		t.Fatal(err)
	}
	l, w, h := k.Length(), k.Width(), k.Height()
	top := h / 2

	// Pockets open at the top face.
	pockets := []struct {
		name string
		at   r3.Vec
	}{
		{"portafilter bore", r3.Vec{Y: -w/2 + 15 + 37, Z: top - 1}},
		{"tamper pocket", r3.Vec{X: -l/2 + 10 + 30, Y: w/2 - 10 - 30, Z: top - 1}},
		{"leveler pocket", r3.Vec{Y: w/2 - 10 - 17.5, Z: top - 1}},
		{"screen pocket", r3.Vec{X: l/2 - 10 - 30, Y: w/2 - 10 - 30, Z: top - 1}},
		{"lower right bore", r3.Vec{X: l/2 - 10 - 17.5, Y: -w/2 + 10 + 17.5, Z: top - 1}},
		{"handle slot", r3.Vec{Y: -w/2 + 2, Z: top - 1}},
	}
	for _, tc := range pockets {
		if d := station.Evaluate(tc.at); d <= 0 {
			t.Errorf("%s at %.4v not cut, distance %g", tc.name, tc.at, d)
		}
	}

	// Drawer openings pierce both side faces just above the floor.
	zDrawer := -h/2 + k.InternalWall + 1
	for _, pt := range []r3.Vec{
		{X: -l/2 + 1, Z: zDrawer},
		{X: l/2 - 1, Z: zDrawer},
	} {
		if d := station.Evaluate(pt); d <= 0 {
			t.Errorf("drawer at %.4v not cut, distance %g", pt, d)
		}
	}

	// Solid body regions: the floor under the portafilter bore and the
	// core between the drawers.
	for _, pt := range []r3.Vec{
		{Y: -w/2 + 15 + 37, Z: -h/2 + 2},
		{Z: -h/2 + 2},
	} {
		if d := station.Evaluate(pt); d >= 0 {
			t.Errorf("body at %.4v not solid, distance %g", pt, d)
		}
	}
}

func TestTamperStationAccessorySlots(t *testing.T) {
	k := tamperParams()
	station, err := obj.TamperStation(k)
	if err != nil {
		t.Fatal(err)
	}
	l, w, h := k.Length(), k.Width(), k.Height()
	// Three thin slots between the left edge and the portafilter bore.
	slotY := -w/2 + k.Margin + k.LowerLeftLength/2
	for i := 0; i < k.LowerLeftCount; i++ {
		x := -l/2 + k.Margin + k.LowerLeftWidth/2 +
			float64(i)*(k.LowerLeftWidth+k.LowerLeftGap)
		pt := r3.Vec{X: x, Y: slotY, Z: h/2 - 1}
		if d := station.Evaluate(pt); d <= 0 {
			t.Errorf("slot %d at %.4v not cut, distance %g", i, pt, d)
		}
		// Material between slots survives.
		gapPt := r3.Vec{X: x + (k.LowerLeftWidth+k.LowerLeftGap)/2, Y: slotY, Z: h/2 - 1}
		if d := station.Evaluate(gapPt); d >= 0 {
			t.Errorf("gap after slot %d at %.4v cut away, distance %g", i, gapPt, d)
		}
	}
}

func TestTamperStationValidation(t *testing.T) {
	k := tamperParams()
	k.UpperMiddleLength = 120 // upper pockets no longer fit side by side
	if _, err := obj.TamperStation(k); err == nil {
		t.Error("oversized middle pocket accepted")
	}
	k = tamperParams()
	k.LowerLeftCount = 0
	if _, err := obj.TamperStation(k); err == nil {
		t.Error("zero slots accepted")
	}
	k = tamperParams()
	k.InternalWall = 40 // drawers left without height
	if _, err := obj.TamperStation(k); err == nil {
		t.Error("no drawer room accepted")
	}
}
