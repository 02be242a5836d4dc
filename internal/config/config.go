// Package config loads game settings from defaults, an optional YAML file,
// and DIG_* environment variables, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"image"
	"math/rand"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/borkshop/dig/internal/terrain"
	"github.com/borkshop/dig/internal/world"
)

// Point is a grid coordinate as written in config files.
type Point struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// Terrain holds generator parameters.
type Terrain struct {
	Scale      float64 `yaml:"scale" env:"DIG_TERRAIN_SCALE"`
	WaterLevel float64 `yaml:"water_level" env:"DIG_TERRAIN_WATER_LEVEL"`
	StoneLevel float64 `yaml:"stone_level" env:"DIG_TERRAIN_STONE_LEVEL"`
}

// Config holds game configuration options.
type Config struct {
	Width  int     `yaml:"width" env:"DIG_WIDTH"`
	Height int     `yaml:"height" env:"DIG_HEIGHT"`
	Starts []Point `yaml:"starts"`

	Terrain Terrain `yaml:"terrain"`

	// LogCap is how many debug messages are kept.
	LogCap int `yaml:"log_cap" env:"DIG_LOG_CAP"`

	// LogFile, when set, receives a copy of every debug message.
	LogFile string `yaml:"log_file" env:"DIG_LOG_FILE"`
}

// Default returns the shipped configuration.
func Default() Config {
	sz := world.DefaultSize
	cfg := Config{
		Width:  sz.X,
		Height: sz.Y,
		Terrain: Terrain{
			Scale:      terrain.DefaultScale,
			WaterLevel: terrain.DefaultWaterLevel,
			StoneLevel: terrain.DefaultStoneLevel,
		},
		LogCap: world.DefaultLogCap,
	}
	cfg.Starts = defaultStarts(cfg.Width, cfg.Height)
	return cfg
}

func defaultStarts(width, height int) []Point {
	var starts []Point
	for _, pt := range world.DefaultStarts(image.Pt(width, height)) {
		starts = append(starts, Point{pt.X, pt.Y})
	}
	return starts
}

// Load returns the default configuration overlaid with the YAML file at path
// (skipped if path is empty) and then the environment, and validates it.
// Without explicit starts, actors start in opposite corners of whatever grid
// size results.
func Load(path string) (Config, error) {
	cfg := Default()
	cfg.Starts = nil
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return cfg, err
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return cfg, fmt.Errorf("%s: %w", path, err)
		}
	}
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	if len(cfg.Starts) == 0 {
		cfg.Starts = defaultStarts(cfg.Width, cfg.Height)
	}
	return cfg, cfg.Validate()
}

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// MinSize is the smallest width and height accepted; it is the smallest grid
// on which the default starts are distinct and clear of the border.
const MinSize = 8

// Validate checks that the grid can hold every actor along with the
// clearance carved around it.
func (cfg Config) Validate() error {
	if cfg.Width < MinSize || cfg.Height < MinSize {
		return fmt.Errorf("%w: grid %vx%v is smaller than %vx%v", ErrInvalid, cfg.Width, cfg.Height, MinSize, MinSize)
	}
	if len(cfg.Starts) == 0 {
		return fmt.Errorf("%w: no actor starts", ErrInvalid)
	}
	inner := image.Rect(2, 2, cfg.Width-2, cfg.Height-2)
	seen := make(map[Point]bool, len(cfg.Starts))
	for i, pt := range cfg.Starts {
		if !image.Pt(pt.X, pt.Y).In(inner) {
			return fmt.Errorf("%w: start %d at (%d, %d) is within 2 cells of the border", ErrInvalid, i+1, pt.X, pt.Y)
		}
		if seen[pt] {
			return fmt.Errorf("%w: start %d at (%d, %d) is taken", ErrInvalid, i+1, pt.X, pt.Y)
		}
		seen[pt] = true
	}
	if cfg.Terrain.Scale <= 0 {
		return fmt.Errorf("%w: terrain scale %v must be positive", ErrInvalid, cfg.Terrain.Scale)
	}
	if cfg.LogCap < 1 {
		return fmt.Errorf("%w: log cap %v must be at least 1", ErrInvalid, cfg.LogCap)
	}
	return nil
}

// WorldOptions builds world options from the config, seeding terrain from
// rng.
func (cfg Config) WorldOptions(rng *rand.Rand) world.Options {
	gen := terrain.New(rng)
	gen.Scale = cfg.Terrain.Scale
	gen.WaterLevel = cfg.Terrain.WaterLevel
	gen.StoneLevel = cfg.Terrain.StoneLevel

	opts := world.Options{
		Size:      image.Pt(cfg.Width, cfg.Height),
		LogCap:    cfg.LogCap,
		Generator: gen,
	}
	for _, pt := range cfg.Starts {
		opts.Starts = append(opts.Starts, image.Pt(pt.X, pt.Y))
	}
	return opts
}
