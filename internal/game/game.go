// Package game is the raylib host: window, input polling, camera, HUD.
package game

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/mironco/ghosthunt/internal/camera"
	"github.com/mironco/ghosthunt/internal/config"
	"github.com/mironco/ghosthunt/internal/hunt"
	"github.com/mironco/ghosthunt/internal/input"
	"github.com/mironco/ghosthunt/internal/logger"
	"github.com/mironco/ghosthunt/internal/telemetry"
	"github.com/mironco/ghosthunt/internal/world"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type Game struct {
	State      *hunt.GameState
	World      *world.World
	Camera     *camera.OrbitCamera
	Controller *hunt.Controller
	Renderer   *world.Renderer
	DebugMode  bool

	cfg      *config.Config
	sfx      cuePlayer
	bindings input.Bindings
	keys     []input.Key
	focused  bool
	quit     bool
	log      *slog.Logger

	// Debug timing (ms)
	updateMs float64
	drawMs   float64
}

// New builds the level and wires the core to the camera and physics. It
// does not open a window.
func New(ctx context.Context, cfg *config.Config, level *world.LevelFile) (*Game, error) {
	bindings, err := cfg.Bindings()
	if err != nil {
		return nil, err
	}

	log := logger.L().With("component", "game")
	state := hunt.NewGameState()

	w := world.New(state, logger.L(), telemetry.Tracer("world"))
	if err := w.Build(ctx, level); err != nil {
		return nil, err
	}

	cam := camera.New(w.Player().Transform.Position)
	cfg.ApplyCamera(cam)

	g := &Game{
		State:    state,
		World:    w,
		Camera:   cam,
		Renderer: world.NewRenderer(),
		cfg:      cfg,
		bindings: bindings,
		keys:     append(bindings.Movement(), bindings.Action),
		focused:  true,
		log:      log,
	}
	g.Controller = hunt.NewController(state, cfg.HuntTuning(), hunt.Deps{
		Mover:     w.Physics,
		Raycaster: w.Physics,
		Facing:    cam,
		Bindings:  bindings,
		Logger:    logger.L(),
		Tracer:    telemetry.Tracer("hunt"),
	})
	g.Controller.OnCaptured.AddListener(func(t *hunt.Target) {
		g.playAt(cueCapture, t.Position())
	})
	g.Controller.OnDelivered.AddListener(func(t *hunt.Target) {
		g.playAt(cueDeliver, t.Position())
		if g.Controller.Completed() {
			g.play(cueVictory)
		}
	})
	state.Progress.OnComplete.AddListener(func() {
		g.log.Info("victory", "total", state.Progress.Total())
	})
	return g, nil
}

func (g *Game) Run(ctx context.Context) {
	flags := uint32(rl.FlagWindowHighdpi | rl.FlagMsaa4xHint)
	if g.cfg.Window.Resizable {
		flags |= rl.FlagWindowResizable
	}
	rl.SetConfigFlags(flags)
	rl.InitWindow(int32(g.cfg.Window.Width), int32(g.cfg.Window.Height), g.cfg.Window.Title)
	defer rl.CloseWindow()

	rl.SetTargetFPS(int32(g.cfg.Window.TargetFPS))
	rl.SetExitKey(rl.KeyEscape)
	initHUDStyle()

	if m := g.openAudio(); m != nil {
		g.sfx = m
		defer m.Close()
	}

	g.log.Info("window opened", "width", g.cfg.Window.Width, "height", g.cfg.Window.Height)

	for !rl.WindowShouldClose() && !g.quit {
		if ctx.Err() != nil {
			break
		}
		g.Update(ctx)
		g.Draw()
	}

	d, total := g.Controller.Counter()
	g.log.Info("window closed", "contained", d, "total", total)
}

// Update reads the window and input devices, then advances one frame.
func (g *Game) Update(ctx context.Context) {
	start := time.Now()

	if rl.IsWindowResized() {
		g.log.Debug("window resized", "width", rl.GetScreenWidth(), "height", rl.GetScreenHeight())
	}
	if rl.IsKeyPressed(rl.KeyF1) {
		g.DebugMode = !g.DebugMode
	}
	if rl.IsKeyPressed(rl.KeyF2) {
		g.Renderer.ShowColliders = !g.Renderer.ShowColliders
	}

	g.Camera.Update()
	g.step(ctx, rl.GetFrameTime(), rl.IsKeyDown, rl.IsWindowFocused())

	g.updateMs = float64(time.Since(start).Microseconds()) / 1000.0
}

// step runs the frame logic that needs no window: key edges, the core tick,
// camera follow.
func (g *Game) step(ctx context.Context, dt float32, isDown func(int32) bool, focused bool) {
	if !focused {
		if g.focused {
			g.Controller.FocusLost()
		}
		g.focused = false
	} else {
		g.focused = true
		g.pollKeys(ctx, isDown)
	}

	g.Controller.Tick(dt)

	if p := g.World.Player(); p != nil {
		g.Camera.Follow(p.Transform.Position)
	}
	g.updateListener()
}

// pollKeys turns the held state of every bound key into press and release
// events. The action fires on the press edge only.
func (g *Game) pollKeys(ctx context.Context, isDown func(int32) bool) {
	for _, k := range g.keys {
		g.Controller.HandleKey(ctx, k, isDown(int32(k)))
	}
}

func (g *Game) Draw() {
	start := time.Now()
	aspect := float32(rl.GetScreenWidth()) / float32(max(rl.GetScreenHeight(), 1))

	rl.BeginDrawing()
	g.Renderer.Draw(g.World, g.Camera.GetRaylibCamera(), aspect)
	g.drawMs = float64(time.Since(start).Microseconds()) / 1000.0
	g.DrawUI()
	rl.EndDrawing()
}

func (g *Game) DrawUI() {
	n, total := g.Controller.Counter()
	drawCounter(n, total)
	if g.State.Capture == hunt.Carrying && g.State.Carried != nil {
		drawHint(carryHint(g.State.Carried.Name))
	}
	if g.Controller.Completed() {
		if drawVictory(total) {
			g.quit = true
		}
	}

	rl.DrawText(controlsHint(g.cfg.Controls), 10, int32(rl.GetScreenHeight())-30, 18, rl.LightGray)

	if g.DebugMode {
		g.drawDebug()
	}
}

func (g *Game) drawDebug() {
	rl.DrawFPS(10, 60)
	p := g.World.Player().Transform
	step, ground := g.Controller.LastStep(), g.Controller.LastGround()
	drawn, culled := g.Renderer.Stats()

	lines := []string{
		fmt.Sprintf("Player:  (%.1f, %.1f, %.1f) heading %.2f", p.Position.X, p.Position.Y, p.Position.Z, p.Rotation.Y),
		fmt.Sprintf("Ground:  %v at %.1f", ground.Grounded, ground.HitY),
		fmt.Sprintf("Move:    %v toward %.2f", step.Moved, step.TargetAngle),
		fmt.Sprintf("Camera:  alpha %.2f beta %.2f r %.1f", g.Camera.Alpha, g.Camera.Beta, g.Camera.Radius),
		fmt.Sprintf("Objects: %d drawn, %d culled", drawn, culled),
		fmt.Sprintf("Update:  %.2f ms", g.updateMs),
		fmt.Sprintf("Draw:    %.2f ms", g.drawMs),
	}
	for i, line := range lines {
		rl.DrawText(line, 10, int32(85+20*i), 16, rl.Green)
	}
}
