// Package assets provides the embedded default meshes and their layout.
package assets

import (
	"embed"
	"fmt"

	"github.com/Faultbox/meshview/internal/engine/mesh"
	"github.com/Faultbox/meshview/internal/engine/scene"
	"github.com/Faultbox/meshview/pkg/formats"
	"github.com/Faultbox/meshview/pkg/math"
)

//go:embed meshes/*.obj
var meshFS embed.FS

// defaultEntry pairs an embedded mesh file with its canonical pose. The pose
// travels with the object as metadata, so layout resets never have to match
// objects by name.
type defaultEntry struct {
	name  string
	file  string
	pose  scene.Pose
	color scene.Color
}

var defaultEntries = []defaultEntry{
	{
		name: "cube",
		file: "meshes/cube.obj",
		pose: scene.Pose{
			Position: math.Vec3{X: -0.7},
			Scale:    math.Vec3{X: 1, Y: 1, Z: 1},
		},
		color: scene.Color{R: 205, G: 92, B: 92},
	},
	{
		name: "pyramid",
		file: "meshes/pyramid.obj",
		pose: scene.Pose{
			Position: math.Vec3{X: 0.7},
			Scale:    math.Vec3{X: 1, Y: 1, Z: 1},
		},
		color: scene.Color{R: 70, G: 130, B: 180},
	},
}

// Defaults loads, parses, and normalizes the embedded default mesh set.
// A mesh that fails to load is reported through the returned errors and left
// out of the set; the viewer starts with whatever remains.
func Defaults() ([]scene.Default, []error) {
	var defaults []scene.Default
	var errs []error

	for _, e := range defaultEntries {
		data, err := meshFS.ReadFile(e.file)
		if err != nil {
			errs = append(errs, fmt.Errorf("reading %s: %w", e.file, err))
			continue
		}

		m := mesh.Normalize(mesh.FromOBJ(formats.ParseOBJ(data)))
		if len(m.Vertices) == 0 {
			errs = append(errs, fmt.Errorf("%s: no vertices parsed", e.file))
			continue
		}

		defaults = append(defaults, scene.Default{
			Name:  e.name,
			Mesh:  m,
			Pose:  e.pose,
			Color: e.color,
		})
	}

	return defaults, errs
}
