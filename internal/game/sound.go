package game

import (
	"github.com/mironco/ghosthunt/internal/audio"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	cueCapture = "capture"
	cueDeliver = "deliver"
	cueVictory = "victory"
)

var cueNotes = map[string][]audio.Note{
	cueCapture: {{Freq: 440, Duration: 0.07}, {Freq: 660, Duration: 0.07}, {Freq: 880, Duration: 0.12}},
	cueDeliver: {{Freq: 660, Duration: 0.1}, {Duration: 0.03}, {Freq: 523.25, Duration: 0.18}},
	cueVictory: {
		{Freq: 523.25, Duration: 0.15},
		{Freq: 659.25, Duration: 0.15},
		{Freq: 783.99, Duration: 0.15},
		{Freq: 1046.5, Duration: 0.45},
	},
}

// cuePlayer is the part of audio.Mixer the game drives.
type cuePlayer interface {
	PlayAt(name string, pos rl.Vector3)
	Play(name string)
	SetListener(l audio.Listener)
}

// openAudio opens the device and loads every cue. It returns nil when audio
// is disabled or unavailable.
func (g *Game) openAudio() *audio.Mixer {
	if !g.cfg.Audio.Enabled {
		return nil
	}
	m, ok := audio.Open(g.cfg.Audio.Volume, g.cfg.Audio.MaxDistance)
	if !ok {
		g.log.Warn("audio device unavailable, running silent")
		return nil
	}
	for name, notes := range cueNotes {
		if !m.Load(name, audio.Synth(notes, 0.6)) {
			g.log.Warn("cue failed to load", "cue", name)
		}
	}
	return m
}

func (g *Game) playAt(name string, pos rl.Vector3) {
	if g.sfx != nil {
		g.sfx.PlayAt(name, pos)
	}
}

func (g *Game) play(name string) {
	if g.sfx != nil {
		g.sfx.Play(name)
	}
}

// updateListener puts the ear at the camera, facing the player.
func (g *Game) updateListener() {
	if g.sfx == nil {
		return
	}
	eye := g.Camera.Position()
	g.sfx.SetListener(audio.NewListener(eye, rl.Vector3Subtract(g.Camera.Target, eye), rl.Vector3{Y: 1}))
}
