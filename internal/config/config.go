// Package config loads the demo configuration from YAML.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"padkeys/internal/logger"
)

// EnvPath names the environment variable that points at the config file.
const EnvPath = "PADKEYS_CONFIG"

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	Window  WindowConfig        `yaml:"window"`
	World   WorldConfig         `yaml:"world"`
	Player  PlayerConfig        `yaml:"player"`
	Input   InputConfig         `yaml:"input"`
	Logging logger.LoggerConfig `yaml:"logging"`
}

type WindowConfig struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

type WorldConfig struct {
	Size     float64 `yaml:"size"`
	GridCell float64 `yaml:"grid_cell"`
	TPS      int     `yaml:"tps"`
}

type PlayerConfig struct {
	Name  string  `yaml:"name"`
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
	Speed float64 `yaml:"speed"`
	Size  float64 `yaml:"size"`
}

// InputConfig switches host input facilities on or off. A disabled gamepad
// behaves like a host without gamepad support.
type InputConfig struct {
	Gamepad  bool `yaml:"gamepad"`
	Keyboard bool `yaml:"keyboard"`
}

// Default is a 400x400 world with the player centered.
func Default() Config {
	return Config{
		Window:  WindowConfig{Title: "padkeys", Width: 800, Height: 800},
		World:   WorldConfig{Size: 400, GridCell: 40, TPS: 60},
		Player:  PlayerConfig{Name: "player", X: 200, Y: 200, Speed: 400, Size: 16},
		Input:   InputConfig{Gamepad: true, Keyboard: true},
		Logging: logger.DefaultConfig(),
	}
}

// Load reads path over the defaults. An empty path returns the defaults.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes data over the defaults and validates the result. Unknown
// keys are rejected.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		var typeErr *yaml.TypeError
		if errors.As(err, &typeErr) {
			return Config{}, fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(typeErr.Errors, "; "))
		}
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// FieldError names the offending key.
type FieldError struct {
	Field  string
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%v: %s %s", ErrInvalidConfig, e.Field, e.Reason)
}

func (e *FieldError) Unwrap() error {
	return ErrInvalidConfig
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	switch {
	case c.Window.Width <= 0:
		return &FieldError{Field: "window.width", Reason: "must be positive"}
	case c.Window.Height <= 0:
		return &FieldError{Field: "window.height", Reason: "must be positive"}
	case c.World.Size <= 0:
		return &FieldError{Field: "world.size", Reason: "must be positive"}
	case c.World.GridCell < 0:
		return &FieldError{Field: "world.grid_cell", Reason: "must not be negative"}
	case c.World.TPS <= 0:
		return &FieldError{Field: "world.tps", Reason: "must be positive"}
	case c.Player.Speed <= 0:
		return &FieldError{Field: "player.speed", Reason: "must be positive"}
	case c.Player.Size <= 0:
		return &FieldError{Field: "player.size", Reason: "must be positive"}
	case c.Player.X < 0 || c.Player.X > c.World.Size:
		return &FieldError{Field: "player.x", Reason: fmt.Sprintf("must be within [0, %v]", c.World.Size)}
	case c.Player.Y < 0 || c.Player.Y > c.World.Size:
		return &FieldError{Field: "player.y", Reason: fmt.Sprintf("must be within [0, %v]", c.World.Size)}
	}
	return nil
}
