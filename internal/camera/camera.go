// Package camera implements the third-person orbit camera that follows the player.
package camera

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// OrbitCamera circles a target. Alpha is the horizontal angle and doubles as
// the facing the player's movement is steered relative to.
type OrbitCamera struct {
	Target rl.Vector3
	Alpha  float32
	Beta   float32
	Radius float32

	MinRadius float32
	MaxRadius float32
	MinBeta   float32
	MaxBeta   float32

	LookSpeed float32 // radians per pixel of mouse drag
	ZoomSpeed float32 // units per wheel notch
	FOV       float32
}

func New(target rl.Vector3) *OrbitCamera {
	return &OrbitCamera{
		Target:    target,
		Alpha:     math.Pi, // behind the player
		Beta:      1.0,
		Radius:    55,
		MinRadius: 30,
		MaxRadius: 80,
		MinBeta:   0.5,
		MaxBeta:   1.4,
		LookSpeed: 0.005,
		ZoomSpeed: 4,
		FOV:       45,
	}
}

// Facing implements engine.FacingProvider
func (c *OrbitCamera) Facing() float32 {
	return c.Alpha
}

// Orbit rotates the camera by a mouse drag delta in pixels.
func (c *OrbitCamera) Orbit(dx, dy float32) {
	c.Alpha += dx * c.LookSpeed
	c.Beta -= dy * c.LookSpeed
	c.clamp()
}

// Zoom moves the camera closer for positive wheel movement.
func (c *OrbitCamera) Zoom(wheel float32) {
	c.Radius -= wheel * c.ZoomSpeed
	c.clamp()
}

func (c *OrbitCamera) Follow(target rl.Vector3) {
	c.Target = target
}

func (c *OrbitCamera) clamp() {
	c.Beta = rl.Clamp(c.Beta, c.MinBeta, c.MaxBeta)
	c.Radius = rl.Clamp(c.Radius, c.MinRadius, c.MaxRadius)
}

// Position returns the eye position in game space. The horizontal offset
// points along (sin alpha, cos alpha) so that "forward" input walks away
// from the camera.
func (c *OrbitCamera) Position() rl.Vector3 {
	sa, ca := math.Sincos(float64(c.Alpha))
	sb, cb := math.Sincos(float64(c.Beta))
	return rl.Vector3{
		X: c.Target.X + c.Radius*float32(sa*sb),
		Y: c.Target.Y + c.Radius*float32(cb),
		Z: c.Target.Z + c.Radius*float32(ca*sb),
	}
}

// Update applies this frame's mouse input. Dragging with the right button orbits.
func (c *OrbitCamera) Update() {
	if rl.IsMouseButtonDown(rl.MouseRightButton) {
		delta := rl.GetMouseDelta()
		c.Orbit(delta.X, delta.Y)
	}
	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		c.Zoom(wheel)
	}
}

// GetRaylibCamera converts to a raylib camera in view space.
func (c *OrbitCamera) GetRaylibCamera() rl.Camera3D {
	return rl.Camera3D{
		Position:   ToView(c.Position()),
		Target:     ToView(c.Target),
		Up:         rl.Vector3{X: 0, Y: 1, Z: 0},
		Fovy:       c.FOV,
		Projection: rl.CameraPerspective,
	}
}

// ToView maps a game-space point into raylib's right-handed view space.
// Game space is left-handed (+X right of +Z when seen from above), so X flips.
func ToView(v rl.Vector3) rl.Vector3 {
	return rl.Vector3{X: -v.X, Y: v.Y, Z: v.Z}
}
