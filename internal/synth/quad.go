package synth

import (
	"math"

	"github.com/iburimskiy/glimmera/internal/vmath"
)

const (
	FieldOfView = 45.0 // degrees, vertical
	NearPlane   = 0.1
	FarPlane    = 100.0
	EyeDistance = 6.0
)

// Viewport is the pixel size of the render target.
type Viewport struct {
	Width, Height float64
}

// Aspect returns width/height, treating a zero height as 1.
func (v Viewport) Aspect() float64 {
	h := v.Height
	if h == 0 {
		h = 1
	}
	return v.Width / h
}

// Corner is a projected quad vertex. X and Y are pixels with y pointing down;
// U and V are texture coordinates in image space (v=0 is the top row).
type Corner struct {
	X, Y float64
	U, V float64
}

// Quad is the four projected corners of one FrameCommand, in fan order.
type Quad [4]Corner

// Indices triangulates a Quad.
var Indices = [6]uint16{0, 1, 2, 0, 2, 3}

var quadCorners = [4]struct{ sx, sy, s, t float64 }{
	{+1, +1, 0, 0},
	{-1, +1, 1, 0},
	{-1, -1, 1, 1},
	{+1, -1, 0, 1},
}

// Project places cmd's quad in the scene and projects it through a 45 degree
// perspective camera onto vp. The quad sits at depth EyeDistance and is
// rotated about the view axis together with its offset.
func Project(cmd FrameCommand, vp Viewport) Quad {
	focal := 1 / math.Tan(vmath.Radians(FieldOfView)/2)
	aspect := vp.Aspect()
	angle := vmath.Radians(cmd.Rotation)

	var q Quad
	for i, c := range quadCorners {
		v := vmath.Vec2{
			X: c.sx*cmd.Scale + cmd.Position.X,
			Y: c.sy*cmd.Scale + cmd.Position.Y,
		}
		eye := vmath.Rotate(v, angle)

		ndcX := focal / aspect * eye.X / EyeDistance
		ndcY := focal * eye.Y / EyeDistance

		q[i] = Corner{
			X: (ndcX + 1) / 2 * vp.Width,
			Y: (1 - ndcY) / 2 * vp.Height,
			U: c.s,
			// Textures are uploaded bottom row first.
			V: 1 - c.t,
		}
	}
	return q
}
