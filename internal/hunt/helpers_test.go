package hunt

import (
	"fmt"
	"math"
	"testing"

	"github.com/mironco/ghosthunt/internal/engine"
	"github.com/mironco/ghosthunt/internal/input"
	"github.com/mironco/ghosthunt/internal/logger"
	"github.com/mironco/ghosthunt/internal/telemetry"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type freeMover struct {
	calls int
	last  rl.Vector3
}

func (m *freeMover) Move(g *engine.GameObject, motion rl.Vector3) rl.Vector3 {
	m.calls++
	m.last = motion
	g.Transform.Position = rl.Vector3Add(g.Transform.Position, motion)
	return motion
}

// flatGround answers every downward ray with a plane at height y.
type flatGround struct {
	y       float32
	hit     bool
	origin  rl.Vector3
	maxDist float32
	exclude engine.RaycastFilter
}

func (f *flatGround) Raycast(origin, direction rl.Vector3, maxDistance float32, exclude engine.RaycastFilter) (engine.RaycastResult, bool) {
	f.origin = origin
	f.maxDist = maxDistance
	f.exclude = exclude
	if !f.hit {
		return engine.RaycastResult{}, false
	}
	return engine.RaycastResult{
		Point:    rl.Vector3{X: origin.X, Y: f.y, Z: origin.Z},
		Normal:   rl.Vector3{Y: 1},
		Distance: origin.Y - f.y,
	}, true
}

type fixedFacing float32

func (f fixedFacing) Facing() float32 {
	return float32(f)
}

type fixture struct {
	state  *GameState
	ctrl   *Controller
	mover  *freeMover
	ground *flatGround
	input  *input.State
	player *engine.GameObject
	ghosts []*Target
	box    *Container
	tuning Tuning
}

// newFixture builds a ready level: player at the origin, one ghost per
// position, the container at containerPos.
func newFixture(t *testing.T, containerPos rl.Vector3, ghostPos ...rl.Vector3) *fixture {
	t.Helper()

	f := &fixture{
		state:  NewGameState(),
		mover:  &freeMover{},
		ground: &flatGround{hit: true},
		input:  input.NewState(),
		tuning: DefaultTuning(),
	}

	f.player = engine.NewGameObject("Player")
	f.state.SetPlayer(f.player)

	for i, p := range ghostPos {
		obj := engine.NewGameObject(fmt.Sprintf("ghost%d", i+1))
		obj.Transform.Position = p
		g := &Target{
			Name:      obj.Name,
			Object:    obj,
			State:     engine.Ready,
			Speed:     0.02,
			BaseY:     p.Y,
			Amplitude: 0.5,
			Spin:      0.01,
		}
		f.state.Registry.Add(g)
		f.ghosts = append(f.ghosts, g)
	}
	f.state.Progress.SetTotal(len(ghostPos))

	boxObj := engine.NewGameObject("Container")
	boxObj.Transform.Position = containerPos
	f.box = &Container{Object: boxObj, State: engine.Ready}
	f.state.Registry.SetContainer(f.box)

	f.ctrl = NewController(f.state, f.tuning, Deps{
		Mover:     f.mover,
		Raycaster: f.ground,
		Facing:    fixedFacing(0),
		Input:     f.input,
		Bindings:  input.DefaultBindings(),
		Logger:    logger.Discard(),
		Tracer:    telemetry.NoopTracer(),
	})
	return f
}

func approx(t *testing.T, got, want float32, field string) {
	t.Helper()
	if math.Abs(float64(got-want)) > 1e-4 {
		t.Errorf("%s = %.6f, want %.6f", field, got, want)
	}
}
