package input

import (
	"github.com/iburimskiy/glimmera/internal/params"
	"github.com/iburimskiy/glimmera/internal/vmath"
)

// PointerSample is one poll of the pointer.
type PointerSample struct {
	X, Y                float64
	Left, Middle, Right bool
}

// Pointer turns successive pointer samples into motion commands. Commands
// fire only when the pointer moved since the previous sample.
type Pointer struct {
	last   vmath.Vec2
	primed bool
}

// Update consumes a sample and returns the commands it triggers, in the
// order drag, zero, place. size is the surface the position is measured on.
func (p *Pointer) Update(s PointerSample, size vmath.Vec2) []params.Command {
	pos := vmath.Vec2{X: s.X, Y: s.Y}
	if !p.primed {
		p.last, p.primed = pos, true
		return nil
	}
	delta := vmath.Vec2{X: pos.X - p.last.X, Y: pos.Y - p.last.Y}
	p.last = pos
	if delta == (vmath.Vec2{}) {
		return nil
	}

	var cmds []params.Command
	if s.Left {
		cmds = append(cmds, params.Command{Kind: params.Drag, Vec: delta})
	}
	if s.Middle {
		cmds = append(cmds, params.Command{Kind: params.ZeroOffset})
	}
	if s.Right {
		cmds = append(cmds, params.Command{Kind: params.PlaceOffset, Vec: pos, Size: size})
	}
	return cmds
}

// Reset forgets the last position, e.g. after the surface was recreated.
func (p *Pointer) Reset() {
	p.primed = false
}
