// Package shutter models the temporal weighting of motion blur sub-samples.
//
// A displayed frame is built from Steps sub-samples spread across the shutter.
// Each sub-sample is weighted by an up-then-down envelope, and the weights are
// normalized by their sum so the total exposure does not depend on the step
// count or the fade width.
package shutter

import "github.com/iburimskiy/glimmera/internal/vmath"

// DefaultMinimum is the floor of the weight envelope used for normalization
// and for drawing.
const DefaultMinimum = 0.001

// MaxSteps caps the step count so a frame stays within one draw batch of
// uint16-indexed quads.
const MaxSteps = 16384

// Weight returns the envelope value at pos in [0,1]. It rises from minimum to
// 1 over [0, fade], falls back to minimum over [1-fade, 1], and the two ramps
// are multiplied so overlapping fades compound.
func Weight(pos, fade, minimum float64) float64 {
	up := vmath.Smoothstep(pos, 0, fade)
	down := 1.0 - vmath.Smoothstep(pos, 1.0-fade, 1.0)
	return up*down*(1.0-minimum) + minimum
}

// Position maps sub-sample i of n onto [0,1]. A single sample sits at 0.
func Position(i, n int) float64 {
	d := n - 1
	if d < 1 {
		d = 1
	}
	return float64(i) / float64(d)
}

// Sum adds the weights of steps evenly spaced sub-samples.
func Sum(steps int, fade float64) float64 {
	sum := 0.0
	for i := 0; i < steps; i++ {
		sum += Weight(Position(i, steps), fade, DefaultMinimum)
	}
	return sum
}

// Profile is the live shutter geometry with its cached normalization sum.
// The sum is only ever written by the constructor and the setters, so it
// always matches Steps and FadeWidth.
type Profile struct {
	steps   int
	fade    float64
	minimum float64
	sum     float64
}

// NewProfile returns a profile with steps clamped to [1, MaxSteps].
func NewProfile(steps int, fade float64) Profile {
	p := Profile{fade: fade, minimum: DefaultMinimum}
	p.SetSteps(steps)
	return p
}

func (p Profile) Steps() int         { return p.steps }
func (p Profile) FadeWidth() float64 { return p.fade }
func (p Profile) Minimum() float64   { return p.minimum }
func (p Profile) Sum() float64       { return p.sum }

// SetSteps changes the step count, clamping it to [1, MaxSteps].
func (p *Profile) SetSteps(n int) {
	if n < 1 {
		n = 1
	}
	if n > MaxSteps {
		n = MaxSteps
	}
	p.steps = n
	p.sum = Sum(p.steps, p.fade)
}

// SetFadeWidth changes the fade width, clamped into [0,1].
func (p *Profile) SetFadeWidth(f float64) {
	p.fade = vmath.Clamp01(f)
	p.sum = Sum(p.steps, p.fade)
}

// Alpha converts the weight of sub-sample i into its blend alpha for the
// given exposure.
func (p Profile) Alpha(i int, exposure float64) float64 {
	w := Weight(Position(i, p.steps), p.fade, p.minimum)
	return w / p.sum * exposure
}
