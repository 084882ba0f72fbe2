// Package world turns a level description into scene objects, static
// colliders and the hunt registry, and draws the result.
package world

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mironco/ghosthunt/internal/engine"
	"github.com/mironco/ghosthunt/internal/hunt"
	"github.com/mironco/ghosthunt/internal/logger"
	"github.com/mironco/ghosthunt/internal/physics"
	"github.com/mironco/ghosthunt/internal/telemetry"

	rl "github.com/gen2brain/raylib-go/raylib"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Kind selects how an object is drawn.
type Kind int

const (
	KindTerrain Kind = iota
	KindGhost
	KindContainer
	KindPlayer
)

// Tags set on built objects.
const (
	TagTerrain   = "terrain"
	TagGhost     = "ghost"
	TagContainer = "container"
	TagPlayer    = "player"
)

// ghostSize is the diameter of a ghost at scale 1.
var ghostSize = rl.Vector3{X: 2, Y: 2, Z: 2}

// Prop is the render description of a scene object. Size is in local units
// and is multiplied by the object's world scale.
type Prop struct {
	Kind  Kind
	Color rl.Color
	Size  rl.Vector3
}

type World struct {
	Scene   *engine.Scene
	Physics *physics.World
	State   *hunt.GameState
	Level   *LevelFile

	player *engine.GameObject
	props  map[*engine.GameObject]Prop

	log    *slog.Logger
	tracer trace.Tracer
}

// New creates an empty world around state. A nil logger or tracer uses the
// process defaults.
func New(state *hunt.GameState, log *slog.Logger, tracer trace.Tracer) *World {
	if log == nil {
		log = logger.L()
	}
	if tracer == nil {
		tracer = telemetry.Tracer("world")
	}
	return &World{
		Scene:  engine.NewScene("Main"),
		State:  state,
		props:  make(map[*engine.GameObject]Prop),
		log:    log.With("component", "world"),
		tracer: tracer,
	}
}

// Build populates the world from lf. Entities stay Loading until every
// collider is registered, then flip to Ready together.
func (w *World) Build(ctx context.Context, lf *LevelFile) error {
	_, span := w.tracer.Start(ctx, "level.load", trace.WithAttributes(
		attribute.String("level", lf.Name),
	))
	defer span.End()

	if err := lf.Validate(); err != nil {
		span.RecordError(err)
		return fmt.Errorf("build level %s: %w", lf.Name, err)
	}

	w.Unload()
	w.Level = lf
	if w.Physics == nil {
		w.Physics = physics.NewWorld(lf.StepHeight)
	}
	w.Physics.StepHeight = lf.StepHeight
	centre := lf.Centre.Vector()

	for _, def := range lf.Terrain {
		g := engine.NewGameObject(def.Name)
		g.Tags = append([]string{TagTerrain}, def.Tags...)
		g.Transform.Position = rl.Vector3Add(centre, def.Position.Vector())
		g.Transform.Scale = def.Size.Vector()
		w.add(g, Prop{Kind: KindTerrain, Color: lookupColor(def.Color), Size: rl.Vector3One()})
		w.Physics.AddBox(g)
	}

	var ghosts []*hunt.Target
	for _, def := range lf.Ghosts {
		g := engine.NewGameObject(def.Name)
		g.Tags = []string{TagGhost}
		g.Transform.Position = rl.Vector3{
			X: centre.X + def.Offset[0],
			Y: centre.Y + def.height(),
			Z: centre.Z + def.Offset[1],
		}
		s := def.scale()
		g.Transform.Scale = rl.Vector3{X: s, Y: s, Z: s}
		w.add(g, Prop{Kind: KindGhost, Color: lookupColor(def.Color), Size: ghostSize})

		t := &hunt.Target{
			Name:      def.Name,
			Object:    g,
			State:     engine.Loading,
			Color:     def.Color,
			Speed:     def.Speed,
			BaseY:     g.Transform.Position.Y,
			Amplitude: def.amplitude(),
			Spin:      def.spin(),
		}
		w.State.Registry.Add(t)
		ghosts = append(ghosts, t)
	}

	box := engine.NewGameObject("Container")
	box.Tags = []string{TagContainer}
	box.Transform.Position = rl.Vector3Add(centre, lf.Container.Offset.Vector())
	size := lf.Container.Size.Vector()
	w.add(box, Prop{Kind: KindContainer, Color: lookupColor(lf.Container.Color), Size: size})
	// The object sits on the ground; its collider rises from there.
	w.Physics.AddCollider(box, physics.NewAABBFromCenter(
		rl.Vector3Add(box.Transform.Position, rl.Vector3{Y: size.Y / 2}), size))
	container := &hunt.Container{Object: box, State: engine.Loading}
	w.State.Registry.SetContainer(container)

	pd := lf.Player
	player := engine.NewGameObject("Player")
	player.Tags = []string{TagPlayer}
	player.Transform.Position = rl.Vector3Add(centre, pd.Offset.Vector())
	w.add(player, Prop{
		Kind:  KindPlayer,
		Color: lookupColor(pd.Color),
		Size:  rl.Vector3{X: pd.Radius * 2, Y: pd.HalfHeight * 2, Z: pd.Radius * 2},
	})
	w.Physics.SetBody(player, physics.Body{Radius: pd.Radius, HalfHeight: pd.HalfHeight})
	w.player = player

	w.State.Progress.SetTotal(len(ghosts))
	for _, t := range ghosts {
		t.State = engine.Ready
	}
	container.State = engine.Ready
	w.State.SetPlayer(player)

	span.SetAttributes(
		attribute.Int("ghosts", len(ghosts)),
		attribute.Int("colliders", len(w.Physics.Colliders())),
	)
	w.log.Info("level loaded", "level", lf.Name,
		"ghosts", len(w.Scene.FindByTag(TagGhost)),
		"terrain", len(w.Scene.FindByTag(TagTerrain)))
	return nil
}

func (w *World) add(g *engine.GameObject, p Prop) {
	w.Scene.AddGameObject(g)
	w.props[g] = p
}

func (w *World) Player() *engine.GameObject {
	return w.player
}

// Prop returns the render description of g.
func (w *World) Prop(g *engine.GameObject) (Prop, bool) {
	p, ok := w.props[g]
	return p, ok
}

// Unload drops every object, its colliders and the registry contents. The
// physics world itself survives so collaborators holding it stay valid.
func (w *World) Unload() {
	for _, g := range append([]*engine.GameObject(nil), w.Scene.GameObjects...) {
		if w.Physics != nil {
			w.Physics.RemoveObject(g)
		}
		w.Scene.RemoveGameObject(g)
	}
	w.props = make(map[*engine.GameObject]Prop)
	w.player = nil
	w.State.Registry.Reset()
	w.State.Progress.Reset()
	w.State.Player = nil
	w.State.PlayerState = engine.Loading
	w.State.Capture = hunt.Idle
	w.State.Carried = nil
}
