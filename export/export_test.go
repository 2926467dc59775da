package export_test

import (
	"os"
	"path/filepath"
	"testing"

	sdfxobj "github.com/deadsy/sdfx/obj"
	sdfxrender "github.com/deadsy/sdfx/render"
	"github.com/hschendel/stl"
	"github.com/printbed/partgen/export"
	"github.com/printbed/partgen/infill"
	"github.com/soypat/sdf"
	"github.com/soypat/sdf/form3/must3"
	"github.com/soypat/sdf/render"
	"gonum.org/v1/gonum/spatial/r3"
)

func testWall(t testing.TB) sdf.SDF3 {
	wall := must3.Box(r3.Vec{X: 40, Y: 30, Z: 4}, 0)
	hc, err := infill.Honeycomb(wall, infill.Params{
		CellSize:       8,
		EdgeWidth:      3,
		ShellThickness: 1,
	})
	if err != nil {
		t.Fatal(err)
	}
	return hc
}

func TestModelsSTL(t *testing.T) {
	dir := t.TempDir()
	err := export.Models(export.Options{Dir: dir, STL: true, Cells: 50},
		map[string]sdf.SDF3{"wall": testWall(t)})
	if err != nil {
		t.Fatal(err)
	}
	solid, err := stl.ReadFile(filepath.Join(dir, "wall.stl"))
	if err != nil {
		t.Fatal(err)
	}
	if len(solid.Triangles) == 0 {
		t.Fatal("mesh has no triangles")
	}
	// Mesh vertices stay inside the wall envelope.
	const slack = 1
	for _, tri := range solid.Triangles {
		for _, v := range tri.Vertices {
			if v[0] < -20-slack || v[0] > 20+slack ||
				v[1] < -15-slack || v[1] > 15+slack ||
				v[2] < -2-slack || v[2] > 2+slack {
				t.Fatalf("vertex %v outside wall envelope", v)
			}
		}
	}
}

func TestModelsFormats(t *testing.T) {
	dir := t.TempDir()
	box := must3.Box(r3.Vec{X: 10, Y: 8, Z: 6}, 1)
	err := export.Models(export.Options{
		Dir:     dir,
		ThreeMF: true,
		PNG:     true,
		Cells:   30,
		View:    export.DefaultView(),
	}, map[string]sdf.SDF3{"box": box})
	if err != nil {
		t.Fatal(err)
	}
	// PNG output implies the STL intermediate.
	for _, name := range []string{"box.3mf", "box.stl", "box.png"} {
		fi, err := os.Stat(filepath.Join(dir, name))
		if err != nil {
			t.Errorf("%s: %v", name, err)
			continue
		}
		if fi.Size() == 0 {
			t.Errorf("%s is empty", name)
		}
	}
}

func TestModelsNoFormats(t *testing.T) {
	// All formats off is a no-op, not an error.
	dir := filepath.Join(t.TempDir(), "never-created")
	err := export.Models(export.Options{Dir: dir}, map[string]sdf.SDF3{"box": testWall(t)})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(dir); !os.IsNotExist(err) {
		t.Error("output directory created with no formats selected")
	}
}

func TestModelsNilModel(t *testing.T) {
	err := export.Models(export.Options{Dir: t.TempDir(), STL: true},
		map[string]sdf.SDF3{"broken": nil})
	if err == nil {
		t.Fatal("nil model accepted")
	}
}

const benchQuality = 200

func BenchmarkExportWall(b *testing.B) {
	dir := b.TempDir()
	wall := testWall(b)
	opts := export.Options{Dir: dir, STL: true, Cells: benchQuality}
	models := map[string]sdf.SDF3{"wall": wall}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := export.Models(opts, models); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSDFXBolt(b *testing.B) {
	// Same class of solid meshed through the sdfx renderer, as a
	// reference point for the octree renderer above.
	stdout := os.Stdout
	defer func() {
		os.Stdout = stdout // pesky sdfx prints out stuff
	}()
	os.Stdout, _ = os.Open(os.DevNull)
	out := filepath.Join(b.TempDir(), "sdfx_bolt.stl")
	object, err := sdfxobj.Bolt(&sdfxobj.BoltParms{
		Thread:      "M6x1",
		Style:       "hex",
		Tolerance:   0.1,
		TotalLength: 20,
		ShankLength: 10,
	})
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sdfxrender.ToSTL(object, benchQuality, out, &sdfxrender.MarchingCubesOctree{})
	}
}

func BenchmarkOctreeBox(b *testing.B) {
	out := filepath.Join(b.TempDir(), "box.stl")
	box := must3.Box(r3.Vec{X: 20, Y: 8, Z: 8}, 0)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		render.CreateSTL(out, render.NewOctreeRenderer(box, benchQuality))
	}
}
