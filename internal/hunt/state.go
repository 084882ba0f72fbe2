package hunt

import "github.com/mironco/ghosthunt/internal/engine"

// CaptureState is the player's interaction state.
type CaptureState int

const (
	Idle CaptureState = iota
	Carrying
)

func (s CaptureState) String() string {
	switch s {
	case Idle:
		return "idle"
	case Carrying:
		return "carrying"
	default:
		return "unknown"
	}
}

// GameState is everything a session mutates. It is touched only from the
// game loop goroutine.
type GameState struct {
	Player      *engine.GameObject
	PlayerState engine.Lifecycle

	Registry *Registry
	Progress *Progress

	Capture CaptureState
	Carried *Target
}

func NewGameState() *GameState {
	return &GameState{
		Registry: NewRegistry(),
		Progress: NewProgress(0),
	}
}

// SetPlayer installs the player and marks it ready.
func (s *GameState) SetPlayer(player *engine.GameObject) {
	s.Player = player
	s.PlayerState = engine.Ready
}

func (s *GameState) PlayerReady() bool {
	return s.Player != nil && s.PlayerState == engine.Ready
}

// Ready reports whether capture and delivery may run.
func (s *GameState) Ready() bool {
	return s.PlayerReady() && s.Registry.Ready()
}

// Consistent checks the Idle/Carrying invariant.
func (s *GameState) Consistent() bool {
	switch s.Capture {
	case Idle:
		return s.Carried == nil
	case Carrying:
		return s.Carried != nil && !s.Carried.Delivered
	default:
		return false
	}
}
