package hunt

import (
	"math"

	"github.com/mironco/ghosthunt/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Target is a capturable ghost. Its float animation state lives here so the
// registry can drive every ghost from one loop.
type Target struct {
	Name   string
	Object *engine.GameObject
	State  engine.Lifecycle
	Color  string

	Captured  bool
	Delivered bool

	Phase     float32 // radians
	Speed     float32 // phase advance per 60 Hz frame
	BaseY     float32
	Amplitude float32
	Spin      float32 // heading advance per 60 Hz frame
}

func (t *Target) Position() rl.Vector3 {
	return t.Object.WorldPosition()
}

// Container is the fixed delivery point.
type Container struct {
	Object *engine.GameObject
	State  engine.Lifecycle
}

func (c *Container) Position() rl.Vector3 {
	return c.Object.WorldPosition()
}

// Registry owns the ghosts and the container.
type Registry struct {
	targets   []*Target
	container *Container
}

func NewRegistry() *Registry {
	return &Registry{}
}

func (r *Registry) Add(t *Target) {
	r.targets = append(r.targets, t)
}

func (r *Registry) SetContainer(c *Container) {
	r.container = c
}

func (r *Registry) Container() *Container {
	return r.container
}

// Targets returns every ghost in insertion order.
func (r *Registry) Targets() []*Target {
	return r.targets
}

func (r *Registry) Find(name string) *Target {
	for _, t := range r.targets {
		if t.Name == name {
			return t
		}
	}
	return nil
}

// FreeTargets returns loaded ghosts that have not been captured, in insertion order.
func (r *Registry) FreeTargets() []*Target {
	var free []*Target
	for _, t := range r.targets {
		if t.State == engine.Ready && !t.Captured {
			free = append(free, t)
		}
	}
	return free
}

// Ready reports whether the container and at least one ghost have loaded.
func (r *Registry) Ready() bool {
	if r.container == nil || r.container.State != engine.Ready {
		return false
	}
	for _, t := range r.targets {
		if t.State == engine.Ready {
			return true
		}
	}
	return false
}

// Total is the number of ghosts the level holds, loaded or not.
func (r *Registry) Total() int {
	return len(r.targets)
}

// Nearest finds the free ghost closest to pos. On equal distances the
// earlier ghost wins.
func (r *Registry) Nearest(pos rl.Vector3) (*Target, float32, bool) {
	var best *Target
	bestDist := float32(math.Inf(1))
	for _, t := range r.FreeTargets() {
		d := rl.Vector3Distance(pos, t.Position())
		if d < bestDist {
			bestDist = d
			best = t
		}
	}
	return best, bestDist, best != nil
}

// Advance moves every free ghost's bob and spin forward by frames
// (60 Hz frame equivalents). Captured ghosts stay frozen.
func (r *Registry) Advance(frames float32) {
	for _, t := range r.FreeTargets() {
		t.Phase += t.Speed * frames
		t.Object.Transform.Position.Y = t.BaseY + float32(math.Sin(float64(t.Phase)))*t.Amplitude
		t.Object.Transform.Rotation.Y += t.Spin * frames
	}
}

// Reset drops every entity. Used on teardown and before loading a new level.
func (r *Registry) Reset() {
	r.targets = nil
	r.container = nil
}
