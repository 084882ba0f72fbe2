// Package config loads the game configuration from YAML.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/mironco/ghosthunt/internal/camera"
	"github.com/mironco/ghosthunt/internal/hunt"
	"github.com/mironco/ghosthunt/internal/input"
	"github.com/mironco/ghosthunt/internal/logger"

	rl "github.com/gen2brain/raylib-go/raylib"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Window    WindowConfig    `yaml:"window"`
	Controls  ControlsConfig  `yaml:"controls"`
	Tuning    TuningConfig    `yaml:"tuning"`
	Camera    CameraConfig    `yaml:"camera"`
	Logging   LoggingConfig   `yaml:"logging"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
	Audio     AudioConfig     `yaml:"audio"`
	Level     LevelConfig     `yaml:"level"`
}

type WindowConfig struct {
	Title     string `yaml:"title"`
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	TargetFPS int    `yaml:"target_fps"`
	Resizable bool   `yaml:"resizable"`
}

// ControlsConfig names the keys, e.g. "w" or "space".
type ControlsConfig struct {
	Forward string `yaml:"forward"`
	Back    string `yaml:"back"`
	Left    string `yaml:"left"`
	Right   string `yaml:"right"`
	Action  string `yaml:"action"`
}

type TuningConfig struct {
	BaseSpeed     float32 `yaml:"base_speed"`
	TurnSmoothing float32 `yaml:"turn_smoothing"`
	MinDelta      float32 `yaml:"min_delta"`
	MaxDelta      float32 `yaml:"max_delta"`

	RayLift     float32 `yaml:"ray_lift"`
	RayLength   float32 `yaml:"ray_length"`
	EyeOffset   float32 `yaml:"eye_offset"`
	GroundBlend float32 `yaml:"ground_blend"`
	FallStep    float32 `yaml:"fall_step"`

	CaptureRadius  float32    `yaml:"capture_radius"`
	DeliveryRadius float32    `yaml:"delivery_radius"`
	CarryOffset    [3]float32 `yaml:"carry_offset"`
	CarryScale     float32    `yaml:"carry_scale"`
	StackBase      float32    `yaml:"stack_base"`
	StackStep      float32    `yaml:"stack_step"`
	DeliveredScale float32    `yaml:"delivered_scale"`
}

type CameraConfig struct {
	Alpha     float32 `yaml:"alpha"`
	Beta      float32 `yaml:"beta"`
	Radius    float32 `yaml:"radius"`
	MinRadius float32 `yaml:"min_radius"`
	MaxRadius float32 `yaml:"max_radius"`
	MinBeta   float32 `yaml:"min_beta"`
	MaxBeta   float32 `yaml:"max_beta"`
	LookSpeed float32 `yaml:"look_speed"`
	ZoomSpeed float32 `yaml:"zoom_speed"`
	FOV       float32 `yaml:"fov"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file"`
}

type TelemetryConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Endpoint string `yaml:"endpoint"`
}

type AudioConfig struct {
	Enabled     bool    `yaml:"enabled"`
	Volume      float32 `yaml:"volume"`
	MaxDistance float32 `yaml:"max_distance"`
}

// LevelConfig selects the level file. An empty path loads the built-in graveyard.
type LevelConfig struct {
	Path string `yaml:"path"`
}

// Default returns the configuration the game runs with when no file is given.
func Default() *Config {
	t := hunt.DefaultTuning()
	cam := camera.New(rl.Vector3{})
	return &Config{
		Window: WindowConfig{
			Title:     "Ghost Hunt",
			Width:     1280,
			Height:    720,
			TargetFPS: 60,
			Resizable: true,
		},
		Controls: ControlsConfig{
			Forward: "w",
			Back:    "s",
			Left:    "a",
			Right:   "d",
			Action:  "space",
		},
		Tuning: TuningConfig{
			BaseSpeed:      t.BaseSpeed,
			TurnSmoothing:  t.TurnSmoothing,
			MinDelta:       t.MinDelta,
			MaxDelta:       t.MaxDelta,
			RayLift:        t.RayLift,
			RayLength:      t.RayLength,
			EyeOffset:      t.EyeOffset,
			GroundBlend:    t.GroundBlend,
			FallStep:       t.FallStep,
			CaptureRadius:  t.CaptureRadius,
			DeliveryRadius: t.DeliveryRadius,
			CarryOffset:    [3]float32{t.CarryOffset.X, t.CarryOffset.Y, t.CarryOffset.Z},
			CarryScale:     t.CarryScale,
			StackBase:      t.StackBase,
			StackStep:      t.StackStep,
			DeliveredScale: t.DeliveredScale,
		},
		Camera: CameraConfig{
			Alpha:     cam.Alpha,
			Beta:      cam.Beta,
			Radius:    cam.Radius,
			MinRadius: cam.MinRadius,
			MaxRadius: cam.MaxRadius,
			MinBeta:   cam.MinBeta,
			MaxBeta:   cam.MaxBeta,
			LookSpeed: cam.LookSpeed,
			ZoomSpeed: cam.ZoomSpeed,
			FOV:       cam.FOV,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Audio: AudioConfig{
			Enabled:     true,
			Volume:      0.8,
			MaxDistance: 400,
		},
	}
}

// Load reads path over the defaults, so a file only needs the keys it changes.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports every problem found, joined.
func (c *Config) Validate() error {
	var errs []error
	positive := func(name string, v float32) {
		if !(v > 0) {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", name, v))
		}
	}

	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height))
	}

	t := c.Tuning
	positive("tuning.base_speed", t.BaseSpeed)
	positive("tuning.min_delta", t.MinDelta)
	positive("tuning.max_delta", t.MaxDelta)
	positive("tuning.ray_length", t.RayLength)
	positive("tuning.fall_step", t.FallStep)
	positive("tuning.capture_radius", t.CaptureRadius)
	positive("tuning.delivery_radius", t.DeliveryRadius)
	positive("tuning.carry_scale", t.CarryScale)
	positive("tuning.delivered_scale", t.DeliveredScale)
	if t.MinDelta > t.MaxDelta {
		errs = append(errs, fmt.Errorf("tuning.min_delta %v exceeds max_delta %v", t.MinDelta, t.MaxDelta))
	}
	if t.TurnSmoothing <= 0 || t.TurnSmoothing > 1 {
		errs = append(errs, fmt.Errorf("tuning.turn_smoothing must be in (0, 1], got %v", t.TurnSmoothing))
	}
	if t.GroundBlend <= 0 || t.GroundBlend > 1 {
		errs = append(errs, fmt.Errorf("tuning.ground_blend must be in (0, 1], got %v", t.GroundBlend))
	}

	cam := c.Camera
	positive("camera.radius", cam.Radius)
	positive("camera.min_radius", cam.MinRadius)
	positive("camera.fov", cam.FOV)
	if cam.MinRadius > cam.MaxRadius {
		errs = append(errs, fmt.Errorf("camera.min_radius %v exceeds max_radius %v", cam.MinRadius, cam.MaxRadius))
	}
	if cam.MinBeta > cam.MaxBeta {
		errs = append(errs, fmt.Errorf("camera.min_beta %v exceeds max_beta %v", cam.MinBeta, cam.MaxBeta))
	}

	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		errs = append(errs, fmt.Errorf("audio.volume must be in [0, 1], got %v", c.Audio.Volume))
	}
	positive("audio.max_distance", c.Audio.MaxDistance)

	if _, err := c.Bindings(); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

// Bindings resolves the configured key names. Each key may serve one control.
func (c *Config) Bindings() (input.Bindings, error) {
	var b input.Bindings
	keys := []struct {
		field string
		name  string
		dst   *input.Key
	}{
		{"forward", c.Controls.Forward, &b.Forward},
		{"back", c.Controls.Back, &b.Back},
		{"left", c.Controls.Left, &b.Left},
		{"right", c.Controls.Right, &b.Right},
		{"action", c.Controls.Action, &b.Action},
	}
	owner := make(map[input.Key]string, len(keys))
	for _, k := range keys {
		key, err := input.ParseKey(k.name)
		if err != nil {
			return input.Bindings{}, fmt.Errorf("controls.%s: %w", k.field, err)
		}
		if prev, dup := owner[key]; dup {
			return input.Bindings{}, fmt.Errorf("controls.%s: key %q already bound to controls.%s", k.field, k.name, prev)
		}
		owner[key] = k.field
		*k.dst = key
	}
	return b, nil
}

// HuntTuning converts the tuning section for the game core.
func (c *Config) HuntTuning() hunt.Tuning {
	t := c.Tuning
	return hunt.Tuning{
		BaseSpeed:           t.BaseSpeed,
		FrameRateNormalizer: 60,
		TurnSmoothing:       t.TurnSmoothing,
		MinDelta:            t.MinDelta,
		MaxDelta:            t.MaxDelta,
		RayLift:             t.RayLift,
		RayLength:           t.RayLength,
		EyeOffset:           t.EyeOffset,
		GroundBlend:         t.GroundBlend,
		FallStep:            t.FallStep,
		CaptureRadius:       t.CaptureRadius,
		DeliveryRadius:      t.DeliveryRadius,
		CarryOffset:         rl.Vector3{X: t.CarryOffset[0], Y: t.CarryOffset[1], Z: t.CarryOffset[2]},
		CarryScale:          t.CarryScale,
		StackBase:           t.StackBase,
		StackStep:           t.StackStep,
		DeliveredScale:      t.DeliveredScale,
	}
}

// ApplyCamera copies the camera section onto cam.
func (c *Config) ApplyCamera(cam *camera.OrbitCamera) {
	cam.Alpha = c.Camera.Alpha
	cam.Beta = c.Camera.Beta
	cam.Radius = c.Camera.Radius
	cam.MinRadius = c.Camera.MinRadius
	cam.MaxRadius = c.Camera.MaxRadius
	cam.MinBeta = c.Camera.MinBeta
	cam.MaxBeta = c.Camera.MaxBeta
	cam.LookSpeed = c.Camera.LookSpeed
	cam.ZoomSpeed = c.Camera.ZoomSpeed
	cam.FOV = c.Camera.FOV
}

// LoggerConfig builds the logger settings. The caller owns the returned file,
// if any.
func (c *Config) LoggerConfig() (logger.Config, *os.File, error) {
	cfg := logger.Config{Level: c.Logging.Level, Format: c.Logging.Format}
	if c.Logging.File == "" {
		return cfg, nil, nil
	}
	f, err := os.OpenFile(c.Logging.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return cfg, nil, fmt.Errorf("open log file: %w", err)
	}
	cfg.Output = f
	return cfg, f, nil
}
