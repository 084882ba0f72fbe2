package camera

import (
	"math"
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func TestNewStartsBehindPlayer(t *testing.T) {
	c := New(rl.Vector3{})

	if c.Facing() != math.Pi {
		t.Errorf("Facing() = %v, want pi", c.Facing())
	}

	pos := c.Position()
	if pos.Z >= 0 {
		t.Errorf("Position().Z = %v, want behind the target (negative)", pos.Z)
	}
	if math.Abs(float64(pos.X)) > 1e-3 {
		t.Errorf("Position().X = %v, want 0", pos.X)
	}

	dist := rl.Vector3Distance(pos, c.Target)
	if math.Abs(float64(dist-c.Radius)) > 1e-3 {
		t.Errorf("distance to target = %v, want %v", dist, c.Radius)
	}
}

func TestZoomClampsRadius(t *testing.T) {
	c := New(rl.Vector3{})

	c.Zoom(100)
	if c.Radius != c.MinRadius {
		t.Errorf("Radius after zoom in = %v, want %v", c.Radius, c.MinRadius)
	}

	c.Zoom(-100)
	if c.Radius != c.MaxRadius {
		t.Errorf("Radius after zoom out = %v, want %v", c.Radius, c.MaxRadius)
	}
}

func TestOrbitClampsBeta(t *testing.T) {
	c := New(rl.Vector3{})
	startAlpha := c.Alpha

	c.Orbit(100, 10000)
	if c.Beta != c.MinBeta {
		t.Errorf("Beta = %v, want %v", c.Beta, c.MinBeta)
	}
	if c.Alpha == startAlpha {
		t.Error("horizontal drag should change Alpha")
	}

	c.Orbit(0, -10000)
	if c.Beta != c.MaxBeta {
		t.Errorf("Beta = %v, want %v", c.Beta, c.MaxBeta)
	}
}

func TestFollowMovesPosition(t *testing.T) {
	c := New(rl.Vector3{})
	before := c.Position()

	c.Follow(rl.Vector3{X: 10, Y: 5, Z: -3})
	after := c.Position()

	diff := rl.Vector3Subtract(after, before)
	if math.Abs(float64(diff.X-10)) > 1e-3 || math.Abs(float64(diff.Y-5)) > 1e-3 || math.Abs(float64(diff.Z+3)) > 1e-3 {
		t.Errorf("Position moved by %v, want (10, 5, -3)", diff)
	}
}

func TestToViewMirrorsX(t *testing.T) {
	got := ToView(rl.Vector3{X: 1, Y: 2, Z: 3})
	if got != (rl.Vector3{X: -1, Y: 2, Z: 3}) {
		t.Errorf("ToView() = %v", got)
	}
}
