// Package hud builds the text overlay shown on top of the rendered frame.
// It has no rendering dependency; the game draws the returned lines.
package hud

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/iburimskiy/glimmera/internal/params"
	"github.com/iburimskiy/glimmera/internal/vmath"
)

// BarWidth is the number of stars at a bar's white point.
const BarWidth = 20

// Status is everything the overlay reports about one frame.
type Status struct {
	State params.State
	Frame int
	FPS   float64

	Texture      int // wrapped index
	TextureCount int
	TexturePath  string

	Recording bool
	NextFrame int
	Elapsed   time.Duration
}

// Lines renders s as overlay text, one entry per line.
func Lines(s Status) []string {
	p := s.State.Params
	sh := s.State.Shutter

	lines := []string{
		fmt.Sprintf("frame %d  %.0f fps", s.Frame, s.FPS),
		fmt.Sprintf("texture %d/%d %s", s.Texture+1, s.TextureCount, filepath.Base(s.TexturePath)),
		fmt.Sprintf("steps    %5d %s", sh.Steps(), vmath.Stars(float64(sh.Steps()), 512, BarWidth)),
		fmt.Sprintf("shutter  %5.2f %s", p.ShutterLength, vmath.Stars(p.ShutterLength, 32, BarWidth)),
		fmt.Sprintf("exposure %5.2f %s", p.Exposure, vmath.Stars(p.Exposure, 4, BarWidth)),
		fmt.Sprintf("freq     %.5g", p.BaseFrequency),
		fmt.Sprintf("hue      %.5g", p.HueFrequency),
		fmt.Sprintf("offset   %.5g (%.2f, %.2f)", p.OffsetFrequency, p.Offset.X, p.Offset.Y),
		fmt.Sprintf("rotate   %.5g", p.RotationFrequency),
		fmt.Sprintf("scale    %.5g", p.ScaleFrequency),
	}
	if s.Recording {
		lines = append(lines, fmt.Sprintf("REC %s  next frame %04d", formatDuration(s.Elapsed), s.NextFrame))
	} else {
		lines = append(lines, fmt.Sprintf("next frame %04d", s.NextFrame))
	}
	return lines
}
