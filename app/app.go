// Package app wires configuration, logging and assets shared by the terminal and window
// binaries
package app

import (
	"fmt"
	"image"
	"os"

	"github.com/google/uuid"

	"github.com/lixenwraith/flatsouls/asset"
	"github.com/lixenwraith/flatsouls/config"
	"github.com/lixenwraith/flatsouls/engine"
	"github.com/lixenwraith/flatsouls/input"
	"github.com/lixenwraith/flatsouls/log"
	"github.com/lixenwraith/flatsouls/render"
)

// defaultSheetCell is the placeholder sprite sheet cell size in pixels
const defaultSheetCell = 16

// Options come from command-line flags
type Options struct {
	ConfigPath string
	Scene      string // overrides scene.kind when set
	Debug      bool   // forces log level debug

	// DefaultLogFile is used when log.file is empty; the terminal binary owns stdout and
	// stderr, so it always logs to a file
	DefaultLogFile string
}

// App holds everything a front end needs before the frame loop starts
type App struct {
	Config *config.Config
	Logger log.Log
	RunID  string
	Keys   *input.KeyTable
	Font   *asset.Font
	Sheet  image.Image

	base *log.Logger // owns the log output
}

// Load reads configuration, opens the logger and loads assets
// Missing asset paths fall back to the built-in placeholder sheet and Go Mono
func Load(opts Options) (*App, error) {
	cfg := config.Default()
	if opts.ConfigPath != "" {
		loaded, err := config.Load(opts.ConfigPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if opts.Scene != "" {
		cfg.Scene.Kind = opts.Scene
	}
	if opts.Debug {
		cfg.Log.Level = "debug"
	}
	if cfg.Log.File == "" {
		cfg.Log.File = opts.DefaultLogFile
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	level, _ := log.ParseLevel(cfg.Log.Level)
	base, err := log.New(log.Config{Level: level, Output: cfg.Log.File})
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}

	runID := uuid.NewString()
	a := &App{
		Config: cfg,
		Logger: base.With(log.String("run", runID)),
		RunID:  runID,
		base:   base,
	}
	if err := a.loadAssets(); err != nil {
		a.Logger.Error("startup failed",
			log.String("font", cfg.Assets.Font),
			log.String("sprite_sheet", cfg.Assets.SpriteSheet),
			log.Error(err))
		_ = base.Close()
		return nil, err
	}

	a.Logger.Info("configured",
		log.String("scene", cfg.Scene.Kind),
		log.Int("store_capacity", cfg.Store.Capacity),
		log.String("font", cfg.Assets.Font),
		log.String("sprite_sheet", cfg.Assets.SpriteSheet))
	return a, nil
}

// loadAssets resolves the key table, font and sprite sheet; empty asset paths select
// the built-in fallbacks
func (a *App) loadAssets() error {
	cfg := a.Config

	a.Keys = input.DefaultKeyTable()
	if err := a.Keys.ApplyConfig(cfg.Keys); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	var err error
	if cfg.Assets.Font != "" {
		a.Font, err = asset.LoadFont(cfg.Assets.Font, cfg.Render.FontSize)
	} else {
		a.Font, err = asset.DefaultFont(cfg.Render.FontSize)
	}
	if err != nil {
		return err
	}

	if cfg.Assets.SpriteSheet == "" {
		a.Sheet = asset.DefaultSpriteSheet(defaultSheetCell)
		return nil
	}
	a.Sheet, err = asset.LoadSpriteSheet(cfg.Assets.SpriteSheet)
	return err
}

// NewContext builds the simulation context and populates the configured scene
func (a *App) NewContext(clock *engine.Clock, audio engine.Audio) (*engine.Context, error) {
	ctx, err := engine.NewContext(a.Config, a.Logger, clock, a.Glyphs(), audio)
	if err != nil {
		return nil, err
	}
	if err := ctx.Setup(); err != nil {
		return nil, err
	}
	return ctx, nil
}

// Glyphs returns the baked glyph table
func (a *App) Glyphs() *render.GlyphTable {
	return a.Font.Glyphs
}

// Close flushes the logger and releases its output
func (a *App) Close() {
	_ = a.base.Close()
}

// WriteDefaultConfig writes the annotated default configuration to path
func WriteDefaultConfig(path string) error {
	if err := os.WriteFile(path, []byte(asset.DefaultConfigYAML), 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
