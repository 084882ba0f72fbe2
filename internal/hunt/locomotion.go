package hunt

import (
	"math"

	"github.com/mironco/ghosthunt/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Locomotion steers the player relative to the camera facing and moves it
// through the collision primitive.
type Locomotion struct {
	BaseSpeed           float32
	FrameRateNormalizer float32
	TurnSmoothing       float32
	MinDelta            float32
	MaxDelta            float32
}

// Step reports what one locomotion update did.
type Step struct {
	Moved       bool
	TargetAngle float32
	Requested   rl.Vector3
	Applied     rl.Vector3
}

// ClampDelta keeps a frame delta inside the stable range, so a stalled
// frame does not teleport the player.
func (l Locomotion) ClampDelta(dt float32) float32 {
	if dt != dt { // NaN
		return l.MinDelta
	}
	return rl.Clamp(dt, l.MinDelta, l.MaxDelta)
}

// Step advances the player by one frame. dx and dz are the raw intent in
// {-1, 0, 1}; when both are zero nothing changes.
func (l Locomotion) Step(dt, facing float32, dx, dz int, player *engine.GameObject, mover engine.Mover) Step {
	if dx == 0 && dz == 0 {
		return Step{}
	}

	moveAngle := float32(math.Atan2(float64(-dx), float64(-dz)))
	targetAngle := facing + moveAngle

	heading := player.Transform.Rotation.Y
	diff := NormalizeAngle(targetAngle - heading)
	// Per-frame blend, deliberately not scaled by dt.
	player.Transform.Rotation.Y = rl.Lerp(heading, heading+diff, l.TurnSmoothing)

	speed := l.BaseSpeed * l.ClampDelta(dt) * l.FrameRateNormalizer
	sin, cos := math.Sincos(float64(targetAngle))
	delta := rl.Vector3{
		X: float32(sin) * speed,
		Y: 0,
		Z: float32(cos) * speed,
	}

	applied := mover.Move(player, delta)
	return Step{Moved: true, TargetAngle: targetAngle, Requested: delta, Applied: applied}
}

// NormalizeAngle wraps an angle into [-pi, pi] by whole turns.
func NormalizeAngle(a float32) float32 {
	v := float64(a)
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return 0
	}
	// float32 inputs far from zero lose the 2*pi step to rounding
	if math.Abs(v) > 4*math.Pi {
		v = math.Mod(v, 2*math.Pi)
	}
	for v > math.Pi {
		v -= 2 * math.Pi
	}
	for v < -math.Pi {
		v += 2 * math.Pi
	}
	return float32(v)
}
