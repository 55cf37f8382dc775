package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/iburimskiy/glimmera/internal/logging"
	"github.com/iburimskiy/glimmera/internal/record"
)

const (
	WindowTitle = "glimmera"

	DefaultFile = "glimmera.yaml"
	EnvFile     = "GLIMMERA_CONFIG"

	WindowWidth  = 1024
	WindowHeight = 1024

	TextureDir = "textures"
	OutputDir  = "renderframes"
	AnimName   = "glimmera"

	// HUD layout
	HUDX          = 12
	HUDY          = 12
	HUDLineHeight = 16
)

// Config holds the user settings read from the YAML file.
type Config struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`

	TextureDir string `yaml:"texture_dir"`
	OutputDir  string `yaml:"output_dir"`
	AnimName   string `yaml:"anim_name"`
	Format     string `yaml:"format"`

	LogLevel string `yaml:"log_level"`
	ShowHUD  bool   `yaml:"show_hud"`

	QueueSize int    `yaml:"queue_size"`
	MinFreeMB uint64 `yaml:"min_free_mb"`

	SplitWaveAmplitude bool `yaml:"split_wave_amplitude"`
	RotateOffset       bool `yaml:"rotate_offset"`

	// Bindings maps key names to command names, e.g. "F5: reset".
	Bindings map[string]string `yaml:"bindings"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Width:      WindowWidth,
		Height:     WindowHeight,
		VSync:      true,
		TextureDir: TextureDir,
		OutputDir:  OutputDir,
		AnimName:   AnimName,
		Format:     "png",
		LogLevel:   "info",
		ShowHUD:    true,
		QueueSize:  8,
		MinFreeMB:  256,
	}
}

// Path returns the config file location: $GLIMMERA_CONFIG or glimmera.yaml.
func Path() string {
	if p := os.Getenv(EnvFile); p != "" {
		return p
	}
	return DefaultFile
}

// Load reads path over the defaults. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		logging.Logger().Debug("no config file, using defaults", "path", path)
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("invalid size %dx%d", c.Width, c.Height)
	}
	if strings.TrimSpace(c.TextureDir) == "" {
		return errors.New("texture_dir is empty")
	}
	if strings.TrimSpace(c.OutputDir) == "" {
		return errors.New("output_dir is empty")
	}
	if c.AnimName == "" || strings.ContainsAny(c.AnimName, `/\`) {
		return fmt.Errorf("invalid anim_name %q", c.AnimName)
	}
	if _, err := record.NewEncoder(c.Format); err != nil {
		return err
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	if c.QueueSize < 1 {
		return fmt.Errorf("queue_size must be at least 1, got %d", c.QueueSize)
	}
	return nil
}
