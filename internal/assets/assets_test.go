package assets

import (
	gomath "math"
	"testing"

	"github.com/Faultbox/meshview/internal/engine/mesh"
)

func TestDefaults(t *testing.T) {
	defaults, errs := Defaults()
	if len(errs) != 0 {
		t.Fatalf("embedded meshes failed to load: %v", errs)
	}
	if len(defaults) != 2 {
		t.Fatalf("expected 2 default meshes, got %d", len(defaults))
	}

	for _, d := range defaults {
		if d.Mesh.Bounds == nil {
			t.Errorf("%s: not normalized", d.Name)
			continue
		}
		size := d.Mesh.Bounds.Max.Sub(d.Mesh.Bounds.Min)
		largest := gomath.Max(float64(size.X), gomath.Max(float64(size.Y), float64(size.Z)))
		if gomath.Abs(largest-mesh.NormalizedExtent) > 1e-5 {
			t.Errorf("%s: largest dimension %v, want %v", d.Name, largest, mesh.NormalizedExtent)
		}
		if d.Mesh.TriangleCount() == 0 {
			t.Errorf("%s: no triangles", d.Name)
		}
	}
}

func TestDefaultsCubeTopology(t *testing.T) {
	defaults, _ := Defaults()
	for _, d := range defaults {
		if d.Name != "cube" {
			continue
		}
		if len(d.Mesh.Vertices) != 8 {
			t.Errorf("cube vertices = %d, want 8", len(d.Mesh.Vertices))
		}
		// Six quads fan into two triangles each.
		if d.Mesh.TriangleCount() != 12 {
			t.Errorf("cube triangles = %d, want 12", d.Mesh.TriangleCount())
		}
		return
	}
	t.Fatal("cube missing from defaults")
}
