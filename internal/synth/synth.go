// Package synth turns the live parameter state into the ordered list of
// sub-sample draws that make up one displayed frame.
package synth

import (
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/iburimskiy/glimmera/internal/params"
	"github.com/iburimskiy/glimmera/internal/shutter"
	"github.com/iburimskiy/glimmera/internal/vmath"
)

const (
	phaseRate     = 5.6
	rotationRate  = 996.3
	rotationSwing = 9492.0
	scaleRate     = 666.3
	scaleSwing    = 5.0
)

// Options select between the reference behaviour and corrected variants.
type Options struct {
	// SplitWaveAmplitude scales the y wave by the y amplitude instead of
	// reusing the x amplitude for both axes.
	SplitWaveAmplitude bool
	// RotateOffset applies the offset-frequency rotation to the drawn position.
	RotateOffset bool
}

// FrameCommand fully describes one textured quad draw.
type FrameCommand struct {
	Rotation float64 // degrees about the view axis
	Hue      float64 // [0,1)
	Color    colorful.Color
	Alpha    float64
	Scale    float64 // quad half-size
	Position vmath.Vec2
}

// OffsetWave is the secondary oscillation added to the base translation.
func OffsetWave(frame int, dt float64, amps, freqs vmath.Vec2, split bool) vmath.Vec2 {
	t := float64(frame) + dt
	ay := amps.X
	if split {
		ay = amps.Y
	}
	return vmath.Vec2{
		X: math.Sin(t*freqs.X) * amps.X,
		Y: math.Cos(t*freqs.Y) * ay,
	}
}

// Synthesize produces one command per shutter step, in increasing shutter
// position. Commands must be composited in this order.
func Synthesize(frame int, st params.State, opt Options) []FrameCommand {
	p := st.Params
	prof := st.Shutter
	steps := prof.Steps()
	out := make([]FrameCommand, 0, steps)

	for i := 0; i < steps; i++ {
		pos := shutter.Position(i, steps)
		alpha := prof.Alpha(i, p.Exposure)
		dt := (pos - 0.5) * p.ShutterLength

		wave := OffsetWave(frame, dt, p.WaveAmplitudes, p.WaveFrequencies, opt.SplitWaveAmplitude)
		sampleTime := float64(frame)*p.BaseFrequency + dt

		out = append(out, sample(sampleTime, alpha, p.Offset.Add(wave), p, opt))
	}
	return out
}

func sample(t, alpha float64, offset vmath.Vec2, p params.Parameters, opt Options) FrameCommand {
	phase := t * phaseRate
	f := p.BaseFrequency

	hue := wrapUnit(phase * p.HueFrequency * f)

	pos := offset
	if opt.RotateOffset {
		pos = vmath.Rotate(offset, vmath.Radians(t*p.OffsetFrequency*f))
	}

	return FrameCommand{
		Rotation: math.Sin(phase/rotationRate) * rotationSwing * p.RotationFrequency * f,
		Hue:      hue,
		Color:    colorful.Hsv(hue*360, 1, 1),
		Alpha:    alpha,
		Scale:    math.Sin(phase/scaleRate*p.ScaleFrequency*f) * scaleSwing,
		Position: pos,
	}
}

// wrapUnit maps v into [0,1). Non-finite input maps to 0.
func wrapUnit(v float64) float64 {
	h := math.Mod(v, 1.0)
	if h < 0 {
		h += 1.0
	}
	if h >= 1.0 || math.IsNaN(h) {
		h = 0
	}
	return h
}
