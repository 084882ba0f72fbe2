package hunt

import (
	"github.com/mironco/ghosthunt/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Grounding keeps the player glued to the terrain below it.
type Grounding struct {
	RayLift   float32 // ray origin height above the player position
	RayLength float32
	EyeOffset float32 // player height above the hit point
	Blend     float32
	FallStep  float32
}

// GroundResult reports one grounding update.
type GroundResult struct {
	Grounded bool
	HitY     float32
	Surface  *engine.GameObject
}

var down = rl.Vector3{X: 0, Y: -1, Z: 0}

// Step casts straight down, ignoring the player and anything it carries.
// On a hit the height eases toward the surface; on a miss the player drops
// by FallStep. There is no terminal velocity and no respawn.
func (g Grounding) Step(player *engine.GameObject, caster engine.Raycaster) GroundResult {
	origin := player.Transform.Position
	origin.Y += g.RayLift

	hit, ok := caster.Raycast(origin, down, g.RayLength, engine.ExcludeHierarchy(player))
	if !ok {
		player.Transform.Position.Y -= g.FallStep
		return GroundResult{}
	}

	target := hit.Point.Y + g.EyeOffset
	player.Transform.Position.Y = rl.Lerp(player.Transform.Position.Y, target, g.Blend)
	return GroundResult{Grounded: true, HitY: hit.Point.Y, Surface: hit.GameObject}
}
