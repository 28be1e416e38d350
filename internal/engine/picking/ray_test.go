package picking

import (
	"testing"

	"github.com/Faultbox/meshview/internal/engine/camera"
	"github.com/Faultbox/meshview/pkg/math"
)

func TestScreenToRayCenter(t *testing.T) {
	cam := camera.New()
	r := ScreenToRay(400, 300, 800, 600, cam)

	if r.Origin != cam.Position {
		t.Fatalf("origin = %+v, want camera position %+v", r.Origin, cam.Position)
	}
	want := math.Vec3{Z: 1}
	if r.Direction.Distance(want) > 1e-5 {
		t.Errorf("center ray direction = %+v, want %+v", r.Direction, want)
	}
}

func TestScreenToRayFollowsYaw(t *testing.T) {
	cam := camera.New()
	cam.Yaw = 3.14159265 / 2

	r := ScreenToRay(400, 300, 800, 600, cam)
	want := math.Vec3{X: 1}
	if r.Direction.Distance(want) > 1e-4 {
		t.Errorf("yawed ray direction = %+v, want %+v", r.Direction, want)
	}
}

func TestScreenToRayNormalized(t *testing.T) {
	cam := camera.New()
	r := ScreenToRay(10, 580, 800, 600, cam)
	if l := r.Direction.Length(); l < 0.9999 || l > 1.0001 {
		t.Errorf("direction length = %v, want 1", l)
	}
}

func TestIntersectAABB(t *testing.T) {
	unit := AABB{
		Min: math.Vec3{X: -1, Y: -1, Z: -1},
		Max: math.Vec3{X: 1, Y: 1, Z: 1},
	}

	tests := []struct {
		name  string
		ray   Ray
		box   AABB
		wantT float32
		hit   bool
	}{
		{
			name:  "head on",
			ray:   Ray{Origin: math.Vec3{Z: -6}, Direction: math.Vec3{Z: 1}},
			box:   unit,
			wantT: 5,
			hit:   true,
		},
		{
			name: "pointing away",
			ray:  Ray{Origin: math.Vec3{Z: -6}, Direction: math.Vec3{Z: -1}},
			box:  unit,
			hit:  false,
		},
		{
			name: "offset miss",
			ray:  Ray{Origin: math.Vec3{X: 5, Z: -6}, Direction: math.Vec3{Z: 1}},
			box:  unit,
			hit:  false,
		},
		{
			name: "parallel outside slab",
			ray:  Ray{Origin: math.Vec3{Y: 3, Z: -6}, Direction: math.Vec3{Z: 1}},
			box:  unit,
			hit:  false,
		},
		{
			name:  "starts inside reports exit",
			ray:   Ray{Origin: math.Vec3{}, Direction: math.Vec3{Z: 1}},
			box:   unit,
			wantT: 1,
			hit:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, hit := tt.ray.IntersectAABB(tt.box)
			if hit != tt.hit {
				t.Fatalf("hit = %v, want %v", hit, tt.hit)
			}
			if hit && (got < tt.wantT-1e-5 || got > tt.wantT+1e-5) {
				t.Errorf("t = %v, want %v", got, tt.wantT)
			}
		})
	}
}

func TestFromCorners(t *testing.T) {
	box := FromCorners([]math.Vec3{
		{X: 2, Y: -1, Z: 0},
		{X: -3, Y: 4, Z: 1},
		{X: 0, Y: 0, Z: -2},
	})

	wantMin := math.Vec3{X: -3, Y: -1, Z: -2}
	wantMax := math.Vec3{X: 2, Y: 4, Z: 1}
	if box.Min != wantMin || box.Max != wantMax {
		t.Errorf("box = %+v/%+v, want %+v/%+v", box.Min, box.Max, wantMin, wantMax)
	}
}
