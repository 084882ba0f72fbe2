package world

import (
	"math"

	"github.com/mironco/ghosthunt/internal/camera"
	"github.com/mironco/ghosthunt/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Renderer draws the world with raylib primitives.
type Renderer struct {
	Background    rl.Color
	ShowColliders bool

	drawn  int
	culled int
}

func NewRenderer() *Renderer {
	return &Renderer{Background: rl.NewColor(18, 20, 32, 255)}
}

// Stats reports how many objects the last Draw drew and culled.
func (r *Renderer) Stats() (drawn, culled int) {
	return r.drawn, r.culled
}

// Draw renders every prop visible from cam. Game-space positions go through
// camera.ToView on the way to raylib.
func (r *Renderer) Draw(w *World, cam rl.Camera3D, aspect float32) {
	frustum := ExtractFrustum(cam, aspect)
	r.drawn, r.culled = 0, 0

	rl.ClearBackground(r.Background)
	rl.BeginMode3D(cam)

	for _, g := range w.Scene.GameObjects {
		prop, ok := w.Prop(g)
		if !ok || !g.Active {
			continue
		}
		center, radius := bounds(g, prop)
		if !frustum.ContainsSphere(camera.ToView(center), radius) {
			r.culled++
			continue
		}
		r.drawn++

		switch prop.Kind {
		case KindTerrain:
			r.drawBox(g.WorldPosition(), scaled(g, prop), prop.Color)
		case KindContainer:
			r.drawContainer(g, prop)
		case KindGhost:
			r.drawGhost(g, prop)
		case KindPlayer:
			r.drawPlayer(g, prop)
		}
	}

	if r.ShowColliders && w.Physics != nil {
		for _, c := range w.Physics.Colliders() {
			size := c.Box.Size()
			rl.DrawCubeWires(camera.ToView(c.Box.Center()), size.X, size.Y, size.Z, rl.Red)
		}
	}

	rl.EndMode3D()
}

// bounds returns the culling sphere of g in game space.
func bounds(g *engine.GameObject, prop Prop) (rl.Vector3, float32) {
	size := scaled(g, prop)
	center := g.WorldPosition()
	if prop.Kind == KindContainer {
		center.Y += size.Y / 2
	}
	return center, rl.Vector3Length(size) / 2
}

func scaled(g *engine.GameObject, prop Prop) rl.Vector3 {
	return rl.Vector3Multiply(prop.Size, g.WorldScale())
}

func (r *Renderer) drawBox(center, size rl.Vector3, color rl.Color) {
	p := camera.ToView(center)
	rl.DrawCube(p, size.X, size.Y, size.Z, color)
	rl.DrawCubeWires(p, size.X, size.Y, size.Z, rl.Fade(rl.Black, 0.4))
}

func (r *Renderer) drawContainer(g *engine.GameObject, prop Prop) {
	size := scaled(g, prop)
	center := g.WorldPosition()
	center.Y += size.Y / 2
	p := camera.ToView(center)
	rl.DrawCube(p, size.X, size.Y, size.Z, rl.Fade(prop.Color, 0.6))
	rl.DrawCubeWires(p, size.X, size.Y, size.Z, prop.Color)
}

func (r *Renderer) drawGhost(g *engine.GameObject, prop Prop) {
	pos := g.WorldPosition()
	radius := prop.Size.X * g.WorldScale().X / 2
	rl.DrawSphere(camera.ToView(pos), radius, rl.Fade(prop.Color, 0.75))

	// Two eyes on the facing side so the spin is visible.
	heading := float64(g.WorldRotation().Y)
	for _, side := range []float64{-0.4, 0.4} {
		eye := rl.Vector3{
			X: pos.X + float32(math.Sin(heading+side))*radius*0.9,
			Y: pos.Y + radius*0.3,
			Z: pos.Z + float32(math.Cos(heading+side))*radius*0.9,
		}
		rl.DrawSphere(camera.ToView(eye), radius*0.18, rl.Black)
	}
}

func (r *Renderer) drawPlayer(g *engine.GameObject, prop Prop) {
	pos := g.WorldPosition()
	size := scaled(g, prop)
	feet := rl.Vector3{X: pos.X, Y: pos.Y - size.Y/2, Z: pos.Z}
	rl.DrawCylinder(camera.ToView(feet), size.X/2, size.X/2, size.Y, 16, prop.Color)

	heading := float64(g.Transform.Rotation.Y)
	nose := rl.Vector3{
		X: pos.X + float32(math.Sin(heading))*size.X/2,
		Y: pos.Y + size.Y/4,
		Z: pos.Z + float32(math.Cos(heading))*size.X/2,
	}
	rl.DrawSphere(camera.ToView(nose), size.X/6, rl.White)
}
