// Package config loads the runtime's YAML configuration
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/flatsouls/parameter"
)

// ErrInvalid wraps every validation failure
var ErrInvalid = errors.New("config: invalid")

// Scene names accepted by Scene.Kind
const (
	ScenePlanar  = "planar"
	SceneSpatial = "spatial"
)

type Config struct {
	Window WindowConfig        `yaml:"window"`
	Scene  SceneConfig         `yaml:"scene"`
	Player PlayerConfig        `yaml:"player"`
	Render RenderConfig        `yaml:"render"`
	Store  StoreConfig         `yaml:"store"`
	Assets AssetConfig         `yaml:"assets"`
	Keys   map[string][]string `yaml:"keys"`
	Log    LogConfig           `yaml:"log"`
	Audio  AudioConfig         `yaml:"audio"`
}

type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
	FPS    int    `yaml:"fps"`
}

type SceneConfig struct {
	Kind string `yaml:"kind"`
}

// PlayerConfig holds the movement tunables; units are world units and seconds
type PlayerConfig struct {
	Acceleration float64 `yaml:"acceleration"`
	MaxSpeed     float64 `yaml:"max_speed"`
	Skid         float64 `yaml:"skid"`
	Gravity      float64 `yaml:"gravity"`
	JumpPower    float64 `yaml:"jump_power"`
}

type RenderConfig struct {
	SpriteCapacity int     `yaml:"sprite_capacity"`
	TextCapacity   int     `yaml:"text_capacity"`
	FontSize       float64 `yaml:"font_size"`
	CameraHeight   float64 `yaml:"camera_height"`
}

type StoreConfig struct {
	Capacity int `yaml:"capacity"`
}

// AssetConfig paths; empty values select the built-in fallbacks
type AssetConfig struct {
	SpriteSheet string `yaml:"sprite_sheet"`
	Font        string `yaml:"font"`
}

type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

type AudioConfig struct {
	Enabled bool `yaml:"enabled"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Width:  1280,
			Height: 720,
			Title:  "flatsouls",
			FPS:    int(time.Second / parameter.FrameUpdateInterval),
		},
		Scene: SceneConfig{Kind: ScenePlanar},
		Player: PlayerConfig{
			Acceleration: parameter.PlayerAcceleration,
			MaxSpeed:     parameter.PlayerMaxSpeed,
			Skid:         parameter.PlayerSkid,
			Gravity:      parameter.PlayerGravity,
			JumpPower:    parameter.PlayerJumpPower,
		},
		Render: RenderConfig{
			SpriteCapacity: parameter.SpriteVertexCapacity,
			TextCapacity:   parameter.TextVertexCapacity,
			FontSize:       parameter.FontSize,
			CameraHeight:   parameter.CameraHeight,
		},
		Store: StoreConfig{Capacity: parameter.EntityCapacity},
		Log:   LogConfig{Level: "info"},
		Audio: AudioConfig{Enabled: true},
	}
}

// Load reads path over the defaults; unknown keys are rejected
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	cfg, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Decode reads YAML from r over the defaults and validates the result
func Decode(r io.Reader) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks ranges; every failure wraps ErrInvalid
func (c *Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
		}
	}

	check(c.Window.Width > 0 && c.Window.Height > 0, "window size %dx%d", c.Window.Width, c.Window.Height)
	check(c.Window.FPS > 0 && c.Window.FPS <= 240, "window.fps %d", c.Window.FPS)
	check(c.Scene.Kind == ScenePlanar || c.Scene.Kind == SceneSpatial, "scene.kind %q", c.Scene.Kind)
	check(c.Player.Acceleration > 0, "player.acceleration %v", c.Player.Acceleration)
	check(c.Player.MaxSpeed > 0, "player.max_speed %v", c.Player.MaxSpeed)
	check(c.Player.Skid >= 0, "player.skid %v", c.Player.Skid)
	check(c.Player.Gravity >= 0, "player.gravity %v", c.Player.Gravity)
	check(c.Player.JumpPower >= 0, "player.jump_power %v", c.Player.JumpPower)
	check(c.Render.SpriteCapacity >= 6, "render.sprite_capacity %d", c.Render.SpriteCapacity)
	check(c.Render.TextCapacity >= 6, "render.text_capacity %d", c.Render.TextCapacity)
	check(c.Render.FontSize > 0, "render.font_size %v", c.Render.FontSize)
	check(c.Render.CameraHeight > 0, "render.camera_height %v", c.Render.CameraHeight)
	check(c.Store.Capacity > 0, "store.capacity %d", c.Store.Capacity)
	_, ok := logLevels[c.Log.Level]
	check(ok, "log.level %q", c.Log.Level)

	return errors.Join(errs...)
}

var logLevels = map[string]struct{}{
	"debug": {}, "info": {}, "warn": {}, "error": {}, "fatal": {},
}

// FrameInterval converts Window.FPS to a tick interval
func (c *Config) FrameInterval() time.Duration {
	return time.Second / time.Duration(c.Window.FPS)
}
