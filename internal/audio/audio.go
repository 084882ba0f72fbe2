// Package audio plays short positional cues through the raylib audio device.
package audio

import (
	"encoding/binary"
	"math"
	"sync"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const SampleRate = 44100

// Listener is the ear position and orientation in game space.
type Listener struct {
	Position rl.Vector3
	Forward  rl.Vector3
	Right    rl.Vector3
}

// NewListener orients a listener. A zero forward falls back to +Z.
func NewListener(pos, forward, up rl.Vector3) Listener {
	l := Listener{Position: pos}

	if fwdLen := rl.Vector3Length(forward); fwdLen > 0.001 {
		l.Forward = rl.Vector3Scale(forward, 1.0/fwdLen)
	} else {
		l.Forward = rl.Vector3{X: 0, Y: 0, Z: 1}
	}

	right := rl.Vector3CrossProduct(up, l.Forward)
	if rightLen := rl.Vector3Length(right); rightLen > 0.001 {
		l.Right = rl.Vector3Scale(right, 1.0/rightLen)
	} else {
		l.Right = rl.Vector3{X: 1, Y: 0, Z: 0}
	}
	return l
}

// Spatialize returns the volume and pan (0 left, 0.5 centre, 1 right) of a
// sound at pos. Volume falls off linearly to zero at maxDistance and sounds
// behind the listener are a little quieter.
func Spatialize(l Listener, pos rl.Vector3, volume, maxDistance float32) (float32, float32) {
	toSource := rl.Vector3Subtract(pos, l.Position)
	distance := rl.Vector3Length(toSource)

	if distance >= maxDistance {
		return 0, 0.5
	}
	vol := volume * (1.0 - distance/maxDistance)
	if distance <= 0.001 {
		return vol, 0.5
	}

	direction := rl.Vector3Scale(toSource, 1.0/distance)
	pan := rl.Clamp(0.5+rl.Vector3DotProduct(direction, l.Right)*0.5, 0, 1)

	if frontDot := rl.Vector3DotProduct(direction, l.Forward); frontDot < 0 {
		vol *= 0.7 + 0.3*float32(math.Abs(float64(frontDot)))
	}
	return vol, pan
}

// Note is one segment of a synthesized cue.
type Note struct {
	Freq     float32 // Hz, 0 for silence
	Duration float32 // seconds
}

// Synth renders notes as 16-bit mono PCM with a short fade on each note.
func Synth(notes []Note, amplitude float32) []int16 {
	var out []int16
	for _, n := range notes {
		count := int(n.Duration * SampleRate)
		fade := min(count/8, SampleRate/100)
		for i := 0; i < count; i++ {
			if n.Freq == 0 {
				out = append(out, 0)
				continue
			}
			env := float32(1)
			if i < fade {
				env = float32(i) / float32(fade)
			} else if count-i < fade {
				env = float32(count-i) / float32(fade)
			}
			s := math.Sin(2 * math.Pi * float64(n.Freq) * float64(i) / SampleRate)
			out = append(out, int16(float32(s)*amplitude*env*math.MaxInt16))
		}
	}
	return out
}

func pcmBytes(samples []int16) []byte {
	data := make([]byte, len(samples)*2)
	for i, s := range samples {
		binary.LittleEndian.PutUint16(data[i*2:], uint16(s))
	}
	return data
}

// Mixer owns the audio device and a set of named cues.
type Mixer struct {
	mu          sync.Mutex
	listener    Listener
	sounds      map[string]rl.Sound
	Volume      float32
	MaxDistance float32
}

// Open initializes the audio device. It reports false when no device is available.
func Open(volume, maxDistance float32) (*Mixer, bool) {
	rl.InitAudioDevice()
	if !rl.IsAudioDeviceReady() {
		return nil, false
	}
	return &Mixer{
		sounds:      make(map[string]rl.Sound),
		Volume:      volume,
		MaxDistance: maxDistance,
		listener:    NewListener(rl.Vector3{}, rl.Vector3{Z: 1}, rl.Vector3{Y: 1}),
	}, true
}

// Load registers a synthesized cue under name.
func (m *Mixer) Load(name string, samples []int16) bool {
	wave := rl.NewWave(uint32(len(samples)), SampleRate, 16, 1, pcmBytes(samples))
	sound := rl.LoadSoundFromWave(wave)
	if !rl.IsSoundValid(sound) {
		return false
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if old, ok := m.sounds[name]; ok {
		rl.UnloadSound(old)
	}
	m.sounds[name] = sound
	return true
}

func (m *Mixer) SetListener(l Listener) {
	m.mu.Lock()
	m.listener = l
	m.mu.Unlock()
}

// PlayAt plays a cue positioned at pos relative to the listener.
func (m *Mixer) PlayAt(name string, pos rl.Vector3) {
	m.mu.Lock()
	defer m.mu.Unlock()

	sound, ok := m.sounds[name]
	if !ok {
		return
	}
	vol, pan := Spatialize(m.listener, pos, m.Volume, m.MaxDistance)
	rl.SetSoundVolume(sound, vol)
	rl.SetSoundPan(sound, pan)
	rl.PlaySound(sound)
}

// Play plays a cue centred at full volume.
func (m *Mixer) Play(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if sound, ok := m.sounds[name]; ok {
		rl.SetSoundVolume(sound, m.Volume)
		rl.SetSoundPan(sound, 0.5)
		rl.PlaySound(sound)
	}
}

func (m *Mixer) Close() {
	m.mu.Lock()
	for _, s := range m.sounds {
		rl.UnloadSound(s)
	}
	m.sounds = nil
	m.mu.Unlock()
	rl.CloseAudioDevice()
}
