package game

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/glimmera/internal/logging"
	"github.com/iburimskiy/glimmera/internal/texture"
)

// setTextures uploads ts and releases the previous set.
func (g *Game) setTextures(ts []texture.Texture) {
	for _, img := range g.images {
		img.Deallocate()
	}
	g.textures = ts
	g.images = make([]*ebiten.Image, len(ts))
	for i, t := range ts {
		g.images[i] = ebiten.NewImageFromImage(t.Image)
	}
}

// reloadTextures decodes dir and swaps it in. On failure the current
// textures stay and false is returned.
func (g *Game) reloadTextures(dir string) bool {
	ts, err := texture.Load(dir)
	if err != nil {
		logging.Logger().Error("texture reload failed, keeping current textures", "dir", dir, "err", err)
		g.status("texture reload failed: " + err.Error())
		return false
	}
	g.setTextures(ts)
	logging.Logger().Info("textures loaded", "dir", dir, "count", len(ts))
	return true
}
