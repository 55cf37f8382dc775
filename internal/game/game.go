// Package game runs the interactive renderer on top of ebiten.
package game

import (
	"errors"
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/glimmera/internal/config"
	"github.com/iburimskiy/glimmera/internal/hud"
	"github.com/iburimskiy/glimmera/internal/input"
	"github.com/iburimskiy/glimmera/internal/logging"
	"github.com/iburimskiy/glimmera/internal/params"
	"github.com/iburimskiy/glimmera/internal/record"
	"github.com/iburimskiy/glimmera/internal/synth"
	"github.com/iburimskiy/glimmera/internal/texture"
	"github.com/iburimskiy/glimmera/internal/vmath"
)

type Game struct {
	cfg    config.Config
	keymap input.Keymap
	opt    synth.Options
	rec    *record.Recorder

	state params.State
	frame int

	// textures
	textureDir string
	textures   []texture.Texture
	images     []*ebiten.Image

	canvas  *ebiten.Image
	pointer input.Pointer

	// input
	keys []ebiten.Key

	// modes
	fullscreen bool
	showHUD    bool
	reload     bool
	recStart   time.Time
	messages   *hud.Messages

	done bool
}

// New builds the game around already decoded textures. rec is owned by the
// caller, which closes it after the loop ends.
func New(cfg config.Config, km input.Keymap, textures []texture.Texture, rec *record.Recorder) *Game {
	g := &Game{
		cfg:    cfg,
		keymap: km,
		opt: synth.Options{
			SplitWaveAmplitude: cfg.SplitWaveAmplitude,
			RotateOffset:       cfg.RotateOffset,
		},
		rec:        rec,
		state:      params.Defaults(),
		textureDir: cfg.TextureDir,
		fullscreen: cfg.Fullscreen,
		showHUD:    cfg.ShowHUD,
		messages:   hud.NewMessages(4),
	}
	g.setTextures(textures)
	return g
}

func (g *Game) Update() error {
	if g.done {
		return ebiten.Termination
	}
	if ebiten.IsWindowBeingClosed() {
		logging.Logger().Info("window closed")
		g.done = true
		return nil
	}

	if g.reload {
		g.reload = false
		g.reloadTextures(g.textureDir)
	}

	for _, err := range g.rec.Errors() {
		g.status("recording halted: " + err.Error())
	}

	ctrl := ebiten.IsKeyPressed(ebiten.KeyControl)
	g.keys = inpututil.AppendJustPressedKeys(g.keys[:0])
	for _, k := range g.keys {
		cmd, ok := g.keymap.Translate(k.String(), ctrl)
		if !ok {
			continue
		}
		g.apply(cmd)
	}

	x, y := ebiten.CursorPosition()
	sample := input.PointerSample{
		X:      float64(x),
		Y:      float64(y),
		Left:   ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		Middle: ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle),
		Right:  ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight),
	}
	for _, cmd := range g.pointer.Update(sample, g.size()) {
		g.apply(cmd)
	}

	return nil
}

func (g *Game) apply(cmd params.Command) {
	if !cmd.Kind.IsMode() {
		prev := g.state
		g.state = params.Apply(g.state, cmd)
		if g.state != prev {
			logState(cmd, g.state)
		}
		return
	}

	switch cmd.Kind {
	case params.ToggleRecording:
		g.toggleRecording()
	case params.ToggleFullscreen:
		g.fullscreen = !g.fullscreen
		logging.Logger().Info("toggling fullscreen", "fullscreen", g.fullscreen)
		ebiten.SetFullscreen(g.fullscreen)
		// Canvas and textures are rebuilt for the new surface.
		g.reload = true
		g.pointer.Reset()
	case params.ToggleHUD:
		g.showHUD = !g.showHUD
	case params.ChooseTextureDir:
		g.chooseTextureDir()
	case params.Quit:
		logging.Logger().Info("quit requested")
		g.done = true
	}
}

func (g *Game) toggleRecording() {
	on, err := g.rec.Toggle()
	if err != nil {
		logging.Logger().Error("cannot start recording", "err", err)
		g.status(err.Error())
		return
	}
	if on {
		g.recStart = time.Now()
		g.status(fmt.Sprintf("recording from frame %04d", g.rec.Next()))
	} else {
		g.status("recording stopped")
	}
}

func (g *Game) chooseTextureDir() {
	dir, err := zenity.SelectFile(
		zenity.Title("Choose texture directory"),
		zenity.Directory(),
		zenity.Filename(g.textureDir),
	)
	if err != nil {
		if !errors.Is(err, zenity.ErrCanceled) {
			logging.Logger().Error("texture directory dialog", "err", err)
			g.status(err.Error())
		}
		return
	}
	if g.reloadTextures(dir) {
		g.textureDir = dir
	}
}

func (g *Game) status(text string) {
	g.messages.Add(text, time.Now())
}

// size is the canvas size in pixels, used for pointer placement.
func (g *Game) size() vmath.Vec2 {
	if g.canvas == nil {
		return vmath.Vec2{X: float64(g.cfg.Width), Y: float64(g.cfg.Height)}
	}
	b := g.canvas.Bounds()
	return vmath.Vec2{X: float64(b.Dx()), Y: float64(b.Dy())}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.fullscreen {
		return outsideWidth, outsideHeight
	}
	return g.cfg.Width, g.cfg.Height
}

func logState(cmd params.Command, st params.State) {
	p := st.Params
	logging.Logger().Debug("parameters changed",
		"cmd", cmd.Kind.String(),
		"coarse", cmd.Coarse,
		"steps", st.Shutter.Steps(),
		"shutter_length", p.ShutterLength,
		"exposure", p.Exposure,
		"freq", p.BaseFrequency,
		"hue_freq", p.HueFrequency,
		"offset_freq", p.OffsetFrequency,
		"rotate_freq", p.RotationFrequency,
		"scale_freq", p.ScaleFrequency,
		"offset_x", p.Offset.X,
		"offset_y", p.Offset.Y,
		"texture", p.Texture,
	)
}
