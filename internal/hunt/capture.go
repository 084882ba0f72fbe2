package hunt

import rl "github.com/gen2brain/raylib-go/raylib"

// Outcome is the result of one action key press. None of them is an error.
type Outcome int

const (
	OutcomeNotReady Outcome = iota
	OutcomeOutOfRange
	OutcomeCaptured
	OutcomeDelivered
	OutcomeCompleted
)

func (o Outcome) String() string {
	switch o {
	case OutcomeNotReady:
		return "not_ready"
	case OutcomeOutOfRange:
		return "out_of_range"
	case OutcomeCaptured:
		return "captured"
	case OutcomeDelivered:
		return "delivered"
	case OutcomeCompleted:
		return "completed"
	default:
		return "unknown"
	}
}

// Capture holds the pickup and delivery rules.
type Capture struct {
	CaptureRadius  float32
	DeliveryRadius float32
	CarryOffset    rl.Vector3
	CarryScale     float32
	StackBase      float32
	StackStep      float32
	DeliveredScale float32
}

// Act runs the transition for the current state. The returned distance is
// to the nearest ghost when idle and to the container when carrying.
func (c Capture) Act(s *GameState) (Outcome, *Target, float32) {
	if !s.Ready() {
		return OutcomeNotReady, nil, 0
	}
	switch s.Capture {
	case Idle:
		return c.pickUp(s)
	case Carrying:
		if s.Carried == nil {
			return OutcomeNotReady, nil, 0
		}
		return c.deliver(s)
	default:
		return OutcomeNotReady, nil, 0
	}
}

func (c Capture) pickUp(s *GameState) (Outcome, *Target, float32) {
	target, dist, ok := s.Registry.Nearest(s.Player.WorldPosition())
	if !ok {
		return OutcomeOutOfRange, nil, 0
	}
	if dist >= c.CaptureRadius {
		return OutcomeOutOfRange, target, dist
	}

	target.Captured = true
	obj := target.Object
	obj.SetParent(s.Player)
	obj.Transform.Position = c.CarryOffset
	obj.Transform.Rotation = rl.Vector3Zero()
	obj.Transform.Scale = uniform(c.CarryScale)

	s.Carried = target
	s.Capture = Carrying
	return OutcomeCaptured, target, dist
}

func (c Capture) deliver(s *GameState) (Outcome, *Target, float32) {
	container := s.Registry.Container()
	dist := rl.Vector3Distance(s.Player.WorldPosition(), container.Position())
	if dist >= c.DeliveryRadius {
		return OutcomeOutOfRange, s.Carried, dist
	}

	target := s.Carried
	obj := target.Object
	obj.SetParent(nil)
	obj.Transform.Position = rl.Vector3Add(container.Position(), rl.Vector3{
		Y: c.StackOffset(s.Progress.Count()),
	})
	obj.Transform.Rotation = rl.Vector3Zero()
	obj.Transform.Scale = uniform(c.DeliveredScale)
	target.Delivered = true

	s.Carried = nil
	s.Capture = Idle

	s.Progress.Increment()
	if s.Progress.IsComplete() {
		return OutcomeCompleted, target, dist
	}
	return OutcomeDelivered, target, dist
}

// StackOffset is the height above the container of the delivered ghost
// number n, counting from zero.
func (c Capture) StackOffset(n int) float32 {
	return c.StackBase + float32(n)*c.StackStep
}

func uniform(s float32) rl.Vector3 {
	return rl.Vector3{X: s, Y: s, Z: s}
}

