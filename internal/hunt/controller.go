// Package hunt is the game core: player locomotion and grounding, the ghost
// registry, and the capture/delivery state machine.
package hunt

import (
	"context"
	"log/slog"

	"github.com/mironco/ghosthunt/internal/engine"
	"github.com/mironco/ghosthunt/internal/input"
	"github.com/mironco/ghosthunt/internal/logger"
	"github.com/mironco/ghosthunt/internal/telemetry"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Deps are the collaborators a Controller drives the state through.
type Deps struct {
	Mover     engine.Mover
	Raycaster engine.Raycaster
	Facing    engine.FacingProvider
	Input     *input.State
	Bindings  input.Bindings
	Logger    *slog.Logger
	Tracer    trace.Tracer
}

// Controller owns the GameState and runs the per-frame tick and the
// per-event action handler. Both must be called from the same goroutine.
type Controller struct {
	State *GameState

	locomotion Locomotion
	grounding  Grounding
	capture    Capture

	deps   Deps
	log    *slog.Logger
	tracer trace.Tracer

	lastStep   Step
	lastGround GroundResult

	OnCaptured  engine.EventWithArg[*Target]
	OnDelivered engine.EventWithArg[*Target]
}

func NewController(state *GameState, tuning Tuning, deps Deps) *Controller {
	if deps.Input == nil {
		deps.Input = input.NewState()
	}
	if deps.Logger == nil {
		deps.Logger = logger.L()
	}
	if deps.Tracer == nil {
		deps.Tracer = telemetry.Tracer("hunt")
	}

	c := &Controller{
		State:      state,
		locomotion: tuning.Locomotion(),
		grounding:  tuning.Grounding(),
		capture:    tuning.Capture(),
		deps:       deps,
		log:        deps.Logger.With("component", "hunt"),
		tracer:     deps.Tracer,
	}

	state.Progress.OnComplete.AddListener(func() {
		c.log.Info("all ghosts contained", "total", state.Progress.Total())
	})
	return c
}

// Tick runs one frame: locomotion, then grounding, then the ghost float
// animation. Until the player has loaded it does nothing.
func (c *Controller) Tick(dt float32) {
	s := c.State
	if !s.PlayerReady() {
		return
	}

	dt = c.locomotion.ClampDelta(dt)

	if c.deps.Facing != nil && c.deps.Mover != nil {
		dx, dz := c.deps.Input.Axis(c.deps.Bindings)
		c.lastStep = c.locomotion.Step(dt, c.deps.Facing.Facing(), dx, dz, s.Player, c.deps.Mover)
	}

	if c.deps.Raycaster != nil {
		c.lastGround = c.grounding.Step(s.Player, c.deps.Raycaster)
	}

	s.Registry.Advance(dt * c.locomotion.FrameRateNormalizer)
}

// HandleKey feeds one key event. A fresh press of the action key runs the
// capture/delivery transition synchronously and returns its outcome.
func (c *Controller) HandleKey(ctx context.Context, key input.Key, pressed bool) (Outcome, bool) {
	edge := c.deps.Input.SetKey(key, pressed)
	if !edge || key != c.deps.Bindings.Action {
		return 0, false
	}
	return c.Action(ctx), true
}

// FocusLost releases every held key.
func (c *Controller) FocusLost() {
	if c.deps.Input.Held() > 0 {
		c.log.Debug("focus lost, releasing keys", "held", c.deps.Input.Held())
	}
	c.deps.Input.ClearAll()
}

// Action performs the capture or delivery for the current state.
func (c *Controller) Action(ctx context.Context) Outcome {
	s := c.State
	_, span := c.tracer.Start(ctx, "capture.action", trace.WithAttributes(
		attribute.String("state", s.Capture.String()),
	))
	defer span.End()

	outcome, target, dist := c.capture.Act(s)

	span.SetAttributes(
		attribute.String("outcome", outcome.String()),
		attribute.Float64("distance", float64(dist)),
		attribute.Int("contained", s.Progress.Count()),
	)
	if target != nil {
		span.SetAttributes(attribute.String("ghost", target.Name))
	}

	switch outcome {
	case OutcomeCaptured:
		c.log.Info("ghost captured", "ghost", target.Name, "distance", dist)
		c.OnCaptured.Invoke(target)
	case OutcomeDelivered, OutcomeCompleted:
		c.log.Info("ghost contained", "ghost", target.Name,
			"count", s.Progress.Count(), "total", s.Progress.Total())
		c.OnDelivered.Invoke(target)
	case OutcomeOutOfRange:
		c.log.Debug("action out of range", "state", s.Capture.String(), "distance", dist)
	case OutcomeNotReady:
		c.log.Debug("action ignored, level still loading")
	}
	return outcome
}

// Counter returns the delivered and total counts for the HUD.
func (c *Controller) Counter() (delivered, total int) {
	return c.State.Progress.Count(), c.State.Progress.Total()
}

func (c *Controller) Completed() bool {
	p := c.State.Progress
	return p.Total() > 0 && p.IsComplete()
}

// LastStep and LastGround expose the previous frame's updates for debug display.
func (c *Controller) LastStep() Step {
	return c.lastStep
}

func (c *Controller) LastGround() GroundResult {
	return c.lastGround
}
