package hunt

import rl "github.com/gen2brain/raylib-go/raylib"

// Tuning holds every gameplay constant of a session.
type Tuning struct {
	// Locomotion
	BaseSpeed           float32 // units per 60 Hz frame
	FrameRateNormalizer float32
	TurnSmoothing       float32 // fraction of the remaining turn applied each frame
	MinDelta            float32 // seconds
	MaxDelta            float32 // seconds

	// Grounding
	RayLift     float32
	RayLength   float32
	EyeOffset   float32
	GroundBlend float32
	FallStep    float32

	// Capture and delivery
	CaptureRadius  float32
	DeliveryRadius float32
	CarryOffset    rl.Vector3
	CarryScale     float32
	StackBase      float32
	StackStep      float32
	DeliveredScale float32
}

func DefaultTuning() Tuning {
	return Tuning{
		BaseSpeed:           1.5,
		FrameRateNormalizer: 60,
		TurnSmoothing:       0.1,
		MinDelta:            0.001,
		MaxDelta:            0.1,

		RayLift:     2,
		RayLength:   50,
		EyeOffset:   8,
		GroundBlend: 0.2,
		FallStep:    0.5,

		CaptureRadius:  35,
		DeliveryRadius: 25,
		CarryOffset:    rl.Vector3{X: 0, Y: 8, Z: 10},
		CarryScale:     2.5,
		StackBase:      5,
		StackStep:      6,
		DeliveredScale: 5,
	}
}

func (t Tuning) Locomotion() Locomotion {
	return Locomotion{
		BaseSpeed:           t.BaseSpeed,
		FrameRateNormalizer: t.FrameRateNormalizer,
		TurnSmoothing:       t.TurnSmoothing,
		MinDelta:            t.MinDelta,
		MaxDelta:            t.MaxDelta,
	}
}

func (t Tuning) Grounding() Grounding {
	return Grounding{
		RayLift:   t.RayLift,
		RayLength: t.RayLength,
		EyeOffset: t.EyeOffset,
		Blend:     t.GroundBlend,
		FallStep:  t.FallStep,
	}
}

func (t Tuning) Capture() Capture {
	return Capture{
		CaptureRadius:  t.CaptureRadius,
		DeliveryRadius: t.DeliveryRadius,
		CarryOffset:    t.CarryOffset,
		CarryScale:     t.CarryScale,
		StackBase:      t.StackBase,
		StackStep:      t.StackStep,
		DeliveredScale: t.DeliveredScale,
	}
}
