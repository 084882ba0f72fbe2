package hunt

import (
	"math"
	"testing"

	"github.com/mironco/ghosthunt/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func TestLocomotionNoIntentLeavesPlayer(t *testing.T) {
	loco := DefaultTuning().Locomotion()
	player := engine.NewGameObject("Player")
	player.Transform.Position = rl.Vector3{X: 3, Y: 4, Z: 5}
	player.Transform.Rotation.Y = 1.25
	mover := &freeMover{}

	for _, facing := range []float32{0, 1, math.Pi, -7} {
		step := loco.Step(1.0/60, facing, 0, 0, player, mover)
		if step.Moved {
			t.Errorf("facing %v: Step().Moved = true, want false", facing)
		}
	}

	if mover.calls != 0 {
		t.Errorf("mover called %d times, want 0", mover.calls)
	}
	if player.Transform.Position != (rl.Vector3{X: 3, Y: 4, Z: 5}) {
		t.Errorf("position = %v, want unchanged", player.Transform.Position)
	}
	if player.Transform.Rotation.Y != 1.25 {
		t.Errorf("heading = %v, want unchanged", player.Transform.Rotation.Y)
	}
}

func TestLocomotionForwardIsCameraRelative(t *testing.T) {
	loco := DefaultTuning().Locomotion()

	tests := []struct {
		name   string
		facing float32
		wantX  float32
		wantZ  float32
	}{
		{"facing pi walks +Z", math.Pi, 0, 1.5},
		{"facing zero walks -Z", 0, 0, -1.5},
		{"facing half pi walks -X", math.Pi / 2, -1.5, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			player := engine.NewGameObject("Player")
			mover := &freeMover{}

			step := loco.Step(1.0/60, tt.facing, 0, 1, player, mover)

			if !step.Moved || mover.calls != 1 {
				t.Fatalf("expected exactly one move, got %d", mover.calls)
			}
			approx(t, mover.last.X, tt.wantX, "delta.X")
			approx(t, mover.last.Y, 0, "delta.Y")
			approx(t, mover.last.Z, tt.wantZ, "delta.Z")
		})
	}
}

func TestLocomotionStrafeTurnsGradually(t *testing.T) {
	loco := DefaultTuning().Locomotion()
	player := engine.NewGameObject("Player")
	mover := &freeMover{}

	step := loco.Step(1.0/60, 0, 1, 0, player, mover)

	approx(t, step.TargetAngle, -math.Pi/2, "target angle")
	approx(t, player.Transform.Rotation.Y, -math.Pi/20, "heading")
	approx(t, mover.last.X, -1.5, "delta.X")
	approx(t, mover.last.Z, 0, "delta.Z")

	prev := player.Transform.Rotation.Y
	for i := 0; i < 100; i++ {
		loco.Step(1.0/60, 0, 1, 0, player, mover)
		h := player.Transform.Rotation.Y
		if h > prev+1e-6 {
			t.Fatalf("heading moved away from target: %v -> %v", prev, h)
		}
		prev = h
	}
	approx(t, player.Transform.Rotation.Y, -math.Pi/2, "settled heading")
}

func TestLocomotionTakesShortWayAround(t *testing.T) {
	loco := DefaultTuning().Locomotion()
	player := engine.NewGameObject("Player")
	// Target angle is 3pi/2, which is -pi/2 short way from zero.
	player.Transform.Rotation.Y = 0

	loco.Step(1.0/60, 2*math.Pi, 1, 0, player, &freeMover{})

	if player.Transform.Rotation.Y >= 0 {
		t.Errorf("heading = %v, want a small negative turn", player.Transform.Rotation.Y)
	}
	approx(t, player.Transform.Rotation.Y, -math.Pi/20, "heading")
}

func TestLocomotionClampsDelta(t *testing.T) {
	loco := DefaultTuning().Locomotion()

	tests := []struct {
		dt   float32
		want float32
	}{
		{1.0 / 60, 1.0 / 60},
		{5, 0.1},
		{0, 0.001},
		{-1, 0.001},
		{float32(math.NaN()), 0.001},
	}
	for _, tt := range tests {
		approx(t, loco.ClampDelta(tt.dt), tt.want, "ClampDelta")
	}

	player := engine.NewGameObject("Player")
	mover := &freeMover{}
	loco.Step(5, math.Pi, 0, 1, player, mover)
	approx(t, mover.last.Z, 9, "stalled frame delta.Z")
}

func TestNormalizeAngleRangeAndCongruence(t *testing.T) {
	values := []float32{0, 0.5, -0.5, math.Pi, -math.Pi, 3, -3, 4, -4, 7, -7, 13.2, -13.2, 100, -100, 1000.7, -1e5}
	bound := float32(math.Pi)

	for _, target := range values {
		for _, heading := range values {
			diff := NormalizeAngle(target - heading)
			if diff < -bound || diff > bound {
				t.Errorf("NormalizeAngle(%v - %v) = %v, outside [-pi, pi]", target, heading, diff)
			}

			rem := math.Remainder(float64(heading)+float64(diff)-float64(target), 2*math.Pi)
			// float32 inputs carry absolute error proportional to magnitude
			tol := 1e-5 * (1 + math.Abs(float64(target)) + math.Abs(float64(heading)))
			if math.Abs(rem) > tol {
				t.Errorf("heading %v + diff %v is not congruent to %v (remainder %v)", heading, diff, target, rem)
			}
		}
	}
}

func TestNormalizeAngleNonFinite(t *testing.T) {
	if got := NormalizeAngle(float32(math.Inf(1))); got != 0 {
		t.Errorf("NormalizeAngle(+Inf) = %v, want 0", got)
	}
	if got := NormalizeAngle(float32(math.NaN())); got != 0 {
		t.Errorf("NormalizeAngle(NaN) = %v, want 0", got)
	}
}
