package world

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"
	"gopkg.in/yaml.v3"
)

//go:embed levels/graveyard.yaml
var graveyardLevel []byte

// --- YAML types ---

// Vec3 is a YAML [x, y, z] triple.
type Vec3 [3]float32

func (v Vec3) Vector() rl.Vector3 {
	return rl.Vector3{X: v[0], Y: v[1], Z: v[2]}
}

// LevelFile describes a level. Every position is relative to Centre.
type LevelFile struct {
	Name       string       `yaml:"name"`
	Centre     Vec3         `yaml:"centre"`
	StepHeight float32      `yaml:"step_height"`
	Player     PlayerDef    `yaml:"player"`
	Ghosts     []GhostDef   `yaml:"ghosts"`
	Container  ContainerDef `yaml:"container"`
	Terrain    []BoxDef     `yaml:"terrain"`
}

type PlayerDef struct {
	Offset     Vec3    `yaml:"offset"`
	Radius     float32 `yaml:"radius"`
	HalfHeight float32 `yaml:"half_height"`
	Color      string  `yaml:"color"`
}

// GhostDef places a ghost on the ground plane; Offset is (x, z) and the
// ghost floats Height above the centre.
type GhostDef struct {
	Name      string     `yaml:"name"`
	Offset    [2]float32 `yaml:"offset"`
	Height    *float32   `yaml:"height,omitempty"`
	Speed     float32    `yaml:"speed"`
	Amplitude *float32   `yaml:"amplitude,omitempty"`
	Spin      *float32   `yaml:"spin,omitempty"`
	Scale     float32    `yaml:"scale,omitempty"`
	Color     string     `yaml:"color"`
}

type ContainerDef struct {
	Offset Vec3   `yaml:"offset"`
	Size   Vec3   `yaml:"size"`
	Color  string `yaml:"color"`
}

type BoxDef struct {
	Name     string   `yaml:"name"`
	Tags     []string `yaml:"tags,omitempty"`
	Position Vec3     `yaml:"position"`
	Size     Vec3     `yaml:"size"`
	Color    string   `yaml:"color"`
}

const (
	defaultGhostHeight    float32 = 1
	defaultGhostAmplitude float32 = 0.5
	defaultGhostSpin      float32 = 0.01
	defaultGhostScale     float32 = 2
)

func (g GhostDef) height() float32 {
	if g.Height != nil {
		return *g.Height
	}
	return defaultGhostHeight
}

func (g GhostDef) amplitude() float32 {
	if g.Amplitude != nil {
		return *g.Amplitude
	}
	return defaultGhostAmplitude
}

func (g GhostDef) spin() float32 {
	if g.Spin != nil {
		return *g.Spin
	}
	return defaultGhostSpin
}

func (g GhostDef) scale() float32 {
	if g.Scale > 0 {
		return g.Scale
	}
	return defaultGhostScale
}

// --- Color mapping ---

var colorByName = map[string]rl.Color{
	"Red":       rl.Red,
	"Blue":      rl.Blue,
	"Green":     rl.Green,
	"DarkGreen": rl.DarkGreen,
	"Purple":    rl.Purple,
	"Orange":    rl.Orange,
	"Yellow":    rl.Yellow,
	"Pink":      rl.Pink,
	"SkyBlue":   rl.SkyBlue,
	"Lime":      rl.Lime,
	"Magenta":   rl.Magenta,
	"White":     rl.White,
	"LightGray": rl.LightGray,
	"Gray":      rl.Gray,
	"DarkGray":  rl.DarkGray,
	"Black":     rl.Black,
	"Brown":     rl.Brown,
	"Beige":     rl.Beige,
	"Maroon":    rl.Maroon,
	"Gold":      rl.Gold,
}

func lookupColor(name string) rl.Color {
	if c, ok := colorByName[name]; ok {
		return c
	}
	return rl.White
}

// --- Loading ---

// DefaultLevel returns the built-in graveyard.
func DefaultLevel() *LevelFile {
	lf, err := ParseLevel(graveyardLevel)
	if err != nil {
		panic(fmt.Sprintf("embedded level: %v", err))
	}
	return lf
}

// LoadLevel reads a level file, or the built-in graveyard when path is empty.
func LoadLevel(path string) (*LevelFile, error) {
	if path == "" {
		return DefaultLevel(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read level: %w", err)
	}
	lf, err := ParseLevel(data)
	if err != nil {
		return nil, fmt.Errorf("level %s: %w", path, err)
	}
	return lf, nil
}

func ParseLevel(data []byte) (*LevelFile, error) {
	var lf LevelFile
	if err := yaml.Unmarshal(data, &lf); err != nil {
		return nil, fmt.Errorf("parse level: %w", err)
	}
	if err := lf.Validate(); err != nil {
		return nil, err
	}
	return &lf, nil
}

func (lf *LevelFile) Validate() error {
	var errs []error
	if len(lf.Ghosts) == 0 {
		errs = append(errs, errors.New("level has no ghosts"))
	}
	seen := make(map[string]bool, len(lf.Ghosts))
	for i, g := range lf.Ghosts {
		if g.Name == "" {
			errs = append(errs, fmt.Errorf("ghost %d has no name", i))
		} else if seen[g.Name] {
			errs = append(errs, fmt.Errorf("duplicate ghost %q", g.Name))
		}
		seen[g.Name] = true
	}
	if lf.Player.Radius <= 0 || lf.Player.HalfHeight <= 0 {
		errs = append(errs, errors.New("player radius and half_height must be positive"))
	}
	if !positive(lf.Container.Size) {
		errs = append(errs, errors.New("container size must be positive"))
	}
	for _, b := range lf.Terrain {
		if !positive(b.Size) {
			errs = append(errs, fmt.Errorf("terrain %q size must be positive", b.Name))
		}
	}
	return errors.Join(errs...)
}

func positive(v Vec3) bool {
	return v[0] > 0 && v[1] > 0 && v[2] > 0
}
