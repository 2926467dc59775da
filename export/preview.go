package export

import (
	"github.com/fogleman/fauxgl"
	"github.com/nfnt/resize"
	"gonum.org/v1/gonum/spatial/r3"
)

// ViewConfig positions the preview camera. The mesh is normalized to a
// bi-unit cube around the origin before rendering, so eye positions a few
// units out frame any part regardless of its real size.
type ViewConfig struct {
	// Lookat is the point the camera looks at.
	Lookat r3.Vec
	// Up is the camera up direction.
	Up r3.Vec
	// Eyepos is the camera position.
	Eyepos r3.Vec
	Near   float64
	Far    float64
}

// DefaultView frames the origin from a high three-quarter angle.
func DefaultView() ViewConfig {
	return ViewConfig{
		Up:     r3.Vec{Z: 1},
		Eyepos: r3.Vec{X: 3, Y: 3, Z: 3},
		Near:   1,
		Far:    10,
	}
}

// PNG renders the STL mesh at stlPath into a PNG preview at outPath.
func PNG(outPath, stlPath string, view ViewConfig) error {
	mesh, err := fauxgl.LoadSTL(stlPath)
	if err != nil {
		return err
	}
	const (
		width, height = 1920, 1080 // output width and height in pixels
		scale         = 1          // optional supersampling
		fovy          = 30         // vertical field of view in degrees
	)
	var (
		eye    = fauxgl.V(view.Eyepos.X, view.Eyepos.Y, view.Eyepos.Z)
		center = fauxgl.V(view.Lookat.X, view.Lookat.Y, view.Lookat.Z)
		up     = fauxgl.V(view.Up.X, view.Up.Y, view.Up.Z)
		light  = fauxgl.V(-0.75, 1, 0.25).Normalize() // light direction
		color  = fauxgl.HexColor("#468966")           // object color
	)

	// fit mesh in a bi-unit cube centered at the origin
	mesh.BiUnitCube()
	context := fauxgl.NewContext(width*scale, height*scale)
	context.ClearColorBufferWith(fauxgl.HexColor("#FFF8E3"))
	aspect := float64(width) / float64(height)
	matrix := fauxgl.LookAt(eye, center, up).Perspective(fovy, aspect, view.Near, view.Far)
	shader := fauxgl.NewPhongShader(matrix, light, eye)
	shader.ObjectColor = color
	context.Shader = shader
	context.DrawMesh(mesh)
	// downsample image for antialiasing
	image := context.Image()
	image = resize.Resize(width, height, image, resize.Bilinear)
	return fauxgl.SavePNG(outPath, image)
}
