package game

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/glimmera/internal/config"
	"github.com/iburimskiy/glimmera/internal/hud"
	"github.com/iburimskiy/glimmera/internal/synth"
	"github.com/iburimskiy/glimmera/internal/texture"
	"github.com/iburimskiy/glimmera/internal/vmath"
)

var quadOptions = &ebiten.DrawTrianglesOptions{
	ColorScaleMode: ebiten.ColorScaleModeStraightAlpha,
	Blend:          ebiten.BlendLighter,
	Filter:         ebiten.FilterLinear,
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.ensureCanvas(screen.Bounds().Dx(), screen.Bounds().Dy())
	g.canvas.Fill(color.Black)
	g.drawShutter(g.canvas)

	// Capture before the overlay so recorded frames stay clean.
	if g.rec.Recording() {
		buf := g.rec.Buffer(g.canvas.Bounds())
		g.canvas.ReadPixels(buf.Pix)
		g.rec.Capture(buf)
	}

	screen.DrawImage(g.canvas, nil)
	if g.showHUD {
		g.drawHUD(screen)
	}
	// The first drawn frame is frame 0.
	g.frame++
}

// ensureCanvas (re)creates the offscreen target when the surface size
// changes, e.g. after toggling fullscreen.
func (g *Game) ensureCanvas(w, h int) {
	if g.canvas != nil {
		b := g.canvas.Bounds()
		if b.Dx() == w && b.Dy() == h {
			return
		}
		g.canvas.Deallocate()
	}
	g.canvas = ebiten.NewImage(w, h)
	g.pointer.Reset()
}

// drawShutter accumulates every shutter sample of the current frame onto dst.
func (g *Game) drawShutter(dst *ebiten.Image) {
	if len(g.images) == 0 {
		return
	}
	img := g.images[texture.Wrap(g.state.Params.Texture, len(g.images))]
	tw := float32(img.Bounds().Dx())
	th := float32(img.Bounds().Dy())

	b := dst.Bounds()
	vp := synth.Viewport{Width: float64(b.Dx()), Height: float64(b.Dy())}

	cmds := synth.Synthesize(g.frame, g.state, g.opt)
	vertices := make([]ebiten.Vertex, 0, 4*len(cmds))
	indices := make([]uint16, 0, 6*len(cmds))
	for _, cmd := range cmds {
		// Index space is uint16; flush before it overflows.
		if len(vertices)+4 > 1<<16 {
			dst.DrawTriangles(vertices, indices, img, quadOptions)
			vertices, indices = vertices[:0], indices[:0]
		}

		base := uint16(len(vertices))
		q := synth.Project(cmd, vp)
		a := float32(vmath.Clamp01(cmd.Alpha))
		for _, c := range q {
			vertices = append(vertices, ebiten.Vertex{
				DstX:   float32(c.X),
				DstY:   float32(c.Y),
				SrcX:   float32(c.U) * tw,
				SrcY:   float32(c.V) * th,
				ColorR: float32(cmd.Color.R),
				ColorG: float32(cmd.Color.G),
				ColorB: float32(cmd.Color.B),
				ColorA: a,
			})
		}
		for _, i := range synth.Indices {
			indices = append(indices, base+i)
		}
	}
	if len(vertices) > 0 {
		dst.DrawTriangles(vertices, indices, img, quadOptions)
	}
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	status := hud.Status{
		State:        g.state,
		Frame:        g.frame,
		FPS:          ebiten.ActualFPS(),
		Texture:      texture.Wrap(g.state.Params.Texture, len(g.textures)),
		TextureCount: len(g.textures),
		Recording:    g.rec.Recording(),
		NextFrame:    g.rec.Next(),
	}
	if status.TextureCount > 0 {
		status.TexturePath = g.textures[status.Texture].Path
	}
	if status.Recording {
		status.Elapsed = time.Since(g.recStart)
	}

	lines := hud.Lines(status)
	lines = append(lines, g.messages.Recent(time.Now())...)

	height := float32(len(lines)*config.HUDLineHeight + 8)
	vector.DrawFilledRect(screen, config.HUDX-4, config.HUDY-4, 360, height, color.RGBA{A: 160}, false)
	for i, line := range lines {
		ebitenutil.DebugPrintAt(screen, line, config.HUDX, config.HUDY+i*config.HUDLineHeight)
	}
	if status.Recording {
		w := float32(screen.Bounds().Dx())
		vector.DrawFilledCircle(screen, w-24, 24, 8, color.RGBA{R: 230, G: 30, B: 30, A: 255}, true)
	}
}
