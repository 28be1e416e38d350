// Package camera provides the free-fly camera for the viewer.
package camera

import (
	gomath "math"

	"github.com/Faultbox/meshview/pkg/math"
)

// PitchLimit keeps the view direction from inverting at the poles.
const PitchLimit = float32(gomath.Pi/2) - 0.01

// Movement is the per-frame snapshot of held movement keys, each component
// in [-1, 1]. Forward follows the camera yaw on the XZ plane; Up is world Y.
type Movement struct {
	Forward float32
	Right   float32
	Up      float32
}

// Camera is a position with yaw/pitch orientation. At yaw=pitch=0 it looks
// down the +Z axis of its local frame.
type Camera struct {
	Position math.Vec3
	Yaw      float32
	Pitch    float32

	MoveSpeed       float32 // units per second
	DragSensitivity float32 // radians per pixel
}

// New creates a camera at the default viewing position.
func New() *Camera {
	return &Camera{
		Position:        math.Vec3{X: 0, Y: 0, Z: -6},
		MoveSpeed:       2.5,
		DragSensitivity: 0.005,
	}
}

// ApplyView transforms a world-space point into view space: translate by the
// camera position, undo yaw, then undo pitch.
func (c *Camera) ApplyView(p math.Vec3) math.Vec3 {
	return p.Sub(c.Position).RotateY(-c.Yaw).RotateX(-c.Pitch)
}

// HandleDrag updates orientation from a mouse drag delta in pixels.
func (c *Camera) HandleDrag(delta math.Vec2) {
	c.Yaw += delta.X * c.DragSensitivity
	c.Pitch += delta.Y * c.DragSensitivity
	c.clampPitch()
}

// HandleMovement moves the camera from the held-key snapshot. dt is the
// frame duration in seconds.
func (c *Camera) HandleMovement(m Movement, dt float32) {
	sinYaw := float32(gomath.Sin(float64(c.Yaw)))
	cosYaw := float32(gomath.Cos(float64(c.Yaw)))

	forward := math.Vec3{X: sinYaw, Y: 0, Z: cosYaw}
	right := math.Vec3{X: cosYaw, Y: 0, Z: -sinYaw}

	step := c.MoveSpeed * dt
	c.Position = c.Position.
		Add(forward.Scale(m.Forward * step)).
		Add(right.Scale(m.Right * step)).
		Add(math.Vec3{Y: m.Up * step})
}

// SetPitch sets the pitch directly, clamped to the pole limit.
func (c *Camera) SetPitch(pitch float32) {
	c.Pitch = pitch
	c.clampPitch()
}

func (c *Camera) clampPitch() {
	if c.Pitch > PitchLimit {
		c.Pitch = PitchLimit
	}
	if c.Pitch < -PitchLimit {
		c.Pitch = -PitchLimit
	}
}
