package camera

import (
	gomath "math"
	"testing"

	"github.com/Faultbox/meshview/pkg/math"
)

func near(a, b float32) bool {
	return gomath.Abs(float64(a-b)) < 1e-5
}

func TestApplyView_Identity(t *testing.T) {
	c := New()
	c.Position = math.Vec3{}

	p := math.Vec3{X: 1, Y: 2, Z: 3}
	got := c.ApplyView(p)
	if got != p {
		t.Errorf("ApplyView at origin with no rotation = %v, want %v", got, p)
	}
}

func TestApplyView_Translation(t *testing.T) {
	// A camera at {0,0,-6} sees the origin at view-space z = +6.
	c := New()

	got := c.ApplyView(math.Vec3{})
	want := math.Vec3{X: 0, Y: 0, Z: 6}
	if !near(got.X, want.X) || !near(got.Y, want.Y) || !near(got.Z, want.Z) {
		t.Errorf("ApplyView(origin) = %v, want %v", got, want)
	}
}

func TestApplyView_YawUndo(t *testing.T) {
	// After turning right by yaw, a point the camera faces lands back on +Z.
	c := New()
	c.Position = math.Vec3{}
	c.Yaw = float32(gomath.Pi / 2)

	got := c.ApplyView(math.Vec3{X: 4, Y: 0, Z: 0})
	if !near(got.X, 0) || !near(got.Z, 4) {
		t.Errorf("ApplyView = %v, want {0 0 4}", got)
	}
}

func TestPitchClamp(t *testing.T) {
	c := New()

	c.SetPitch(3)
	if c.Pitch != PitchLimit {
		t.Errorf("pitch = %v, want clamped to %v", c.Pitch, PitchLimit)
	}

	c.SetPitch(-3)
	if c.Pitch != -PitchLimit {
		t.Errorf("pitch = %v, want clamped to %v", c.Pitch, -PitchLimit)
	}

	c.Pitch = 0
	c.HandleDrag(math.Vec2{Y: 1e6})
	if c.Pitch != PitchLimit {
		t.Errorf("pitch after huge drag = %v, want %v", c.Pitch, PitchLimit)
	}
}

func TestHandleMovement_FollowsYaw(t *testing.T) {
	c := New()
	c.Position = math.Vec3{}
	c.MoveSpeed = 1

	// Facing +Z: forward moves along +Z.
	c.HandleMovement(Movement{Forward: 1}, 1)
	if !near(c.Position.Z, 1) || !near(c.Position.X, 0) {
		t.Errorf("position = %v, want {0 0 1}", c.Position)
	}

	// Facing +X after a quarter turn: forward moves along +X.
	c.Position = math.Vec3{}
	c.Yaw = float32(gomath.Pi / 2)
	c.HandleMovement(Movement{Forward: 1}, 1)
	if !near(c.Position.X, 1) || !near(c.Position.Z, 0) {
		t.Errorf("position = %v, want {1 0 0}", c.Position)
	}
}
