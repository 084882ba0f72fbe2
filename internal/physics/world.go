// Package physics resolves character movement and ray queries against
// static box geometry.
package physics

import (
	"github.com/mironco/ghosthunt/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Collider is a static axis-aligned box owned by a scene object.
type Collider struct {
	Object *engine.GameObject
	Box    AABB
}

// Body is the collision envelope of a moving character, centred on its position.
type Body struct {
	Radius     float32
	HalfHeight float32
}

// World holds static colliders and the bodies that move through them.
type World struct {
	// StepHeight is the tallest ledge a body walks over instead of sliding along.
	StepHeight float32

	colliders []Collider
	bodies    map[*engine.GameObject]Body
}

func NewWorld(stepHeight float32) *World {
	return &World{
		StepHeight: stepHeight,
		bodies:     make(map[*engine.GameObject]Body),
	}
}

func (w *World) AddCollider(g *engine.GameObject, box AABB) {
	w.colliders = append(w.colliders, Collider{Object: g, Box: box})
}

// AddBox registers a collider sized from the object's position and scale.
func (w *World) AddBox(g *engine.GameObject) {
	w.AddCollider(g, NewAABBFromCenter(g.WorldPosition(), g.WorldScale()))
}

func (w *World) RemoveObject(g *engine.GameObject) {
	kept := w.colliders[:0]
	for _, c := range w.colliders {
		if c.Object != g {
			kept = append(kept, c)
		}
	}
	w.colliders = kept
	delete(w.bodies, g)
}

func (w *World) Colliders() []Collider {
	return w.colliders
}

func (w *World) SetBody(g *engine.GameObject, body Body) {
	w.bodies[g] = body
}

// Move translates g by motion. Horizontal motion is resolved against the
// colliders, pushing the body out along X or Z so it slides along walls.
// Colliders whose top is within StepHeight of the body's feet are walked
// over. Vertical motion is applied unresolved; grounding owns height.
func (w *World) Move(g *engine.GameObject, motion rl.Vector3) rl.Vector3 {
	if g == nil {
		return rl.Vector3{}
	}

	body, ok := w.bodies[g]
	if !ok || len(w.colliders) == 0 {
		g.Transform.Position = rl.Vector3Add(g.Transform.Position, motion)
		return motion
	}

	originalPos := g.Transform.Position

	horizontal := rl.Vector3{X: motion.X, Z: motion.Z}
	if horizontal.X != 0 || horizontal.Z != 0 {
		w.slide(g, body, horizontal)
	}

	g.Transform.Position.Y += motion.Y

	return rl.Vector3Subtract(g.Transform.Position, originalPos)
}

func (w *World) slide(g *engine.GameObject, body Body, motion rl.Vector3) {
	g.Transform.Position = rl.Vector3Add(g.Transform.Position, motion)

	charBox := bodyBox(g.Transform.Position, body)
	exclude := engine.ExcludeHierarchy(g)

	for _, c := range w.colliders {
		if c.Object != nil && exclude(c.Object) {
			continue
		}
		if !charBox.Intersects(c.Box) {
			continue
		}

		feetY := g.Transform.Position.Y - body.HalfHeight
		if c.Box.Max.Y-feetY <= w.StepHeight {
			continue
		}

		pushOut := charBox.ResolveHorizontal(c.Box)
		g.Transform.Position = rl.Vector3Add(g.Transform.Position, pushOut)
		charBox = bodyBox(g.Transform.Position, body)
	}
}

func bodyBox(center rl.Vector3, body Body) AABB {
	return AABB{
		Min: rl.Vector3{X: center.X - body.Radius, Y: center.Y - body.HalfHeight, Z: center.Z - body.Radius},
		Max: rl.Vector3{X: center.X + body.Radius, Y: center.Y + body.HalfHeight, Z: center.Z + body.Radius},
	}
}

var (
	_ engine.Raycaster = (*World)(nil)
	_ engine.Mover     = (*World)(nil)
)
