package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/glimmera/internal/config"
	"github.com/iburimskiy/glimmera/internal/game"
	"github.com/iburimskiy/glimmera/internal/input"
	"github.com/iburimskiy/glimmera/internal/logging"
	"github.com/iburimskiy/glimmera/internal/record"
	"github.com/iburimskiy/glimmera/internal/texture"
)

func main() {
	if err := run(); err != nil {
		logging.Logger().Error("glimmera failed", "err", err)
		_ = zenity.Error(err.Error(), zenity.Title(config.WindowTitle))
		os.Exit(1)
	}
}

func run() error {
	// Errors before the config is read still reach stderr.
	logging.SetLogger(logging.NewText(os.Stderr, slog.LevelInfo))

	cfg, err := config.Load(config.Path())
	if err != nil {
		return err
	}
	level, _ := logging.ParseLevel(cfg.LogLevel)
	logging.SetLogger(logging.NewText(os.Stderr, level))

	km := input.DefaultKeymap()
	if err := km.Override(cfg.Bindings); err != nil {
		return fmt.Errorf("config bindings: %w", err)
	}

	textures, err := texture.Load(cfg.TextureDir)
	if err != nil {
		return err
	}
	logging.Logger().Info("textures loaded", "dir", cfg.TextureDir, "count", len(textures))

	enc, err := record.NewEncoder(cfg.Format)
	if err != nil {
		return err
	}
	rec := record.New(record.Options{
		Dir:          cfg.OutputDir,
		Name:         cfg.AnimName,
		Encoder:      enc,
		QueueSize:    cfg.QueueSize,
		MinFreeBytes: cfg.MinFreeMB << 20,
	})
	defer rec.Close()

	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetVsyncEnabled(cfg.VSync)
	ebiten.SetFullscreen(cfg.Fullscreen)
	// One Update per rendered frame keeps recorded sequences gapless.
	ebiten.SetTPS(ebiten.SyncWithFPS)

	g := game.New(cfg, km, textures, rec)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
