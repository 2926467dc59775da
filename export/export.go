// Package export writes named part models to disk as STL and 3MF meshes
// with optional PNG previews. Part programs build a map of models and
// hand it to Models with the formats they want toggled on.
package export

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"

	"github.com/soypat/sdf"
	"github.com/soypat/sdf/render"
)

// Options selects the output formats and mesh quality for a batch of
// models.
type Options struct {
	// Dir is the output directory, created if missing. Empty means
	// "exports".
	Dir string
	// STL and ThreeMF toggle mesh outputs. PNG renders a preview image
	// from the STL mesh and implies STL output.
	STL     bool
	ThreeMF bool
	PNG     bool
	// Cells is the octree mesher resolution. Zero means 200.
	Cells int
	// View is the camera used for PNG previews.
	View ViewConfig
}

func (o Options) dir() string {
	if o.Dir == "" {
		return "exports"
	}
	return o.Dir
}

func (o Options) cells() int {
	if o.Cells == 0 {
		return 200
	}
	return o.Cells
}

// Models meshes and writes every model in the map under its name. Models
// are processed in name order so runs are reproducible.
func Models(opts Options, models map[string]sdf.SDF3) error {
	if !opts.STL && !opts.ThreeMF && !opts.PNG {
		return nil
	}
	names := make([]string, 0, len(models))
	for name := range models {
		names = append(names, name)
	}
	sort.Strings(names)

	dir := opts.dir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("export: %w", err)
	}
	for _, name := range names {
		s := models[name]
		if s == nil {
			return fmt.Errorf("export: model %q is nil", name)
		}
		stlPath := filepath.Join(dir, name+".stl")
		if opts.STL || opts.PNG {
			err := render.CreateSTL(stlPath, render.NewOctreeRenderer(s, opts.cells()))
			if err != nil {
				return fmt.Errorf("export: stl %q: %w", name, err)
			}
			log.Printf("wrote %s", stlPath)
		}
		if opts.ThreeMF {
			path := filepath.Join(dir, name+".3mf")
			err := render.Create3MF(path, render.NewOctreeRenderer(s, opts.cells()))
			if err != nil {
				return fmt.Errorf("export: 3mf %q: %w", name, err)
			}
			log.Printf("wrote %s", path)
		}
		if opts.PNG {
			path := filepath.Join(dir, name+".png")
			if err := PNG(path, stlPath, opts.View); err != nil {
				return fmt.Errorf("export: png %q: %w", name, err)
			}
			log.Printf("wrote %s", path)
		}
	}
	return nil
}
