// Package vmath holds the small pure math helpers shared by the shutter model
// and frame synthesis.
package vmath

import (
	"math"
	"strings"
)

// Vec2 is a 2D float vector.
type Vec2 struct {
	X, Y float64
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Smoothstep is the cubic Hermite ramp between lo and hi. The anchors may be
// given in either order; the curve always rises from the smaller to the larger.
// When lo == hi it degenerates to a step that is 1 only strictly above lo.
func Smoothstep(x, lo, hi float64) float64 {
	a, b := lo, hi
	if a > b {
		a, b = b, a
	}
	if a == b {
		if x > a {
			return 1.0
		}
		return 0.0
	}
	if x <= a {
		return 0.0
	}
	if x >= b {
		return 1.0
	}
	t := (x - a) / (b - a)
	return -2*t*t*t + 3*t*t
}

// Rotate rotates v counter-clockwise by angle radians.
func Rotate(v Vec2, angle float64) Vec2 {
	s, c := math.Sincos(angle)
	return Vec2{
		X: v.X*c - v.Y*s,
		Y: v.X*s + v.Y*c,
	}
}

// Radians converts degrees to radians.
func Radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// Clamp01 clamps v into [0,1].
func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Stars renders value as a bar of '*' characters: value/white is clamped to
// [0,1] and scaled to at most width stars. A zero white point leaves value
// unscaled.
func Stars(value, white float64, width int) string {
	if white != 0 {
		value /= white
	}
	n := int(Clamp01(value) * float64(width))
	return strings.Repeat("*", n)
}
