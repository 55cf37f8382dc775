// Package params holds the live animation parameters and the transitions
// that user commands apply to them.
package params

import (
	"github.com/iburimskiy/glimmera/internal/shutter"
	"github.com/iburimskiy/glimmera/internal/vmath"
)

// Parameters are the tunable inputs of frame synthesis.
type Parameters struct {
	BaseFrequency     float64
	HueFrequency      float64
	ScaleFrequency    float64
	OffsetFrequency   float64
	RotationFrequency float64

	Exposure      float64
	ShutterLength float64

	Offset          vmath.Vec2
	WaveAmplitudes  vmath.Vec2
	WaveFrequencies vmath.Vec2

	// Texture is the unwrapped texture selection; see texture.Wrap.
	Texture int
}

// State is everything a frame is synthesized from, apart from the frame number.
type State struct {
	Params  Parameters
	Shutter shutter.Profile
}

const (
	DefaultSteps     = 260
	DefaultFadeWidth = 0.5
)

// Defaults returns the startup state.
func Defaults() State {
	return State{
		Params: Parameters{
			BaseFrequency:     0.115,
			HueFrequency:      0.4,
			ScaleFrequency:    114.0,
			OffsetFrequency:   0.00633,
			RotationFrequency: 2.536,
			Exposure:          1.5,
			ShutterLength:     8.0,
			Offset:            vmath.Vec2{X: -0.57, Y: 1.08},
			WaveAmplitudes:    vmath.Vec2{X: 0.4, Y: 0.6},
			WaveFrequencies:   vmath.Vec2{X: 0.027, Y: 0.013},
		},
		Shutter: shutter.NewProfile(DefaultSteps, DefaultFadeWidth),
	}
}

// ResetSnapshot restores the reset snapshot. Exposure, shutter steps, texture
// selection and the wave constants keep their current values.
func ResetSnapshot(p Parameters) Parameters {
	p.ShutterLength = 7.0
	p.Offset = vmath.Vec2{X: -1.57, Y: 3.08}
	p.BaseFrequency = 0.3
	p.HueFrequency = 0.082176
	p.OffsetFrequency = 0.00633
	p.ScaleFrequency = 114.0
	p.RotationFrequency = 0.49152
	return p
}
