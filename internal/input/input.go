// Package input tracks held keys between key events.
package input

import (
	"fmt"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Key is a raylib keyboard key code.
type Key int32

// State is the set of currently held keys. Keys never seen are not pressed.
type State struct {
	held map[Key]bool
}

func NewState() *State {
	return &State{held: make(map[Key]bool)}
}

// SetKey records a key transition. It returns true only when the key goes
// from released to held, which is the edge the action key fires on.
func (s *State) SetKey(key Key, pressed bool) bool {
	if s.held == nil {
		s.held = make(map[Key]bool)
	}
	if !pressed {
		delete(s.held, key)
		return false
	}
	if s.held[key] {
		return false
	}
	s.held[key] = true
	return true
}

func (s *State) IsPressed(key Key) bool {
	return s.held[key]
}

// ClearAll drops every held key. Called when the window loses focus.
func (s *State) ClearAll() {
	clear(s.held)
}

// Held returns the number of keys currently held.
func (s *State) Held() int {
	return len(s.held)
}

// Bindings maps logical controls to keys.
type Bindings struct {
	Forward Key
	Back    Key
	Left    Key
	Right   Key
	Action  Key
}

func DefaultBindings() Bindings {
	return Bindings{
		Forward: rl.KeyW,
		Back:    rl.KeyS,
		Left:    rl.KeyA,
		Right:   rl.KeyD,
		Action:  rl.KeySpace,
	}
}

// Movement returns the keys that drive locomotion.
func (b Bindings) Movement() []Key {
	return []Key{b.Forward, b.Back, b.Left, b.Right}
}

// Axis derives the raw movement intent, each component in {-1, 0, 1}.
// Back overrides Forward and Left overrides Right when both are held.
func (s *State) Axis(b Bindings) (dx, dz int) {
	if s.IsPressed(b.Forward) {
		dz = 1
	}
	if s.IsPressed(b.Back) {
		dz = -1
	}
	if s.IsPressed(b.Right) {
		dx = 1
	}
	if s.IsPressed(b.Left) {
		dx = -1
	}
	return dx, dz
}

var keyByName = map[string]Key{
	"space":     rl.KeySpace,
	"enter":     rl.KeyEnter,
	"e":         rl.KeyE,
	"f":         rl.KeyF,
	"q":         rl.KeyQ,
	"w":         rl.KeyW,
	"a":         rl.KeyA,
	"s":         rl.KeyS,
	"d":         rl.KeyD,
	"z":         rl.KeyZ,
	"up":        rl.KeyUp,
	"down":      rl.KeyDown,
	"left":      rl.KeyLeft,
	"right":     rl.KeyRight,
	"leftshift": rl.KeyLeftShift,
}

// ParseKey resolves a key name such as "w" or "space".
func ParseKey(name string) (Key, error) {
	if k, ok := keyByName[strings.ToLower(strings.TrimSpace(name))]; ok {
		return k, nil
	}
	return 0, fmt.Errorf("unknown key %q", name)
}
