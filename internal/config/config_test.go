package config

import (
	"image"
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), "dig.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 60, cfg.Width)
	assert.Equal(t, 30, cfg.Height)
	assert.Equal(t, []Point{{3, 3}, {56, 26}}, cfg.Starts)
	assert.Equal(t, Terrain{Scale: 10, WaterLevel: 0.4, StoneLevel: 0.2}, cfg.Terrain)
	assert.Equal(t, 10, cfg.LogCap)
	assert.Empty(t, cfg.LogFile)
}

func TestLoad_noFile(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_yaml(t *testing.T) {
	path := writeFile(t, `
width: 40
height: 20
starts:
  - {x: 4, y: 4}
  - {x: 35, y: 15}
  - {x: 20, y: 10}
terrain:
  water_level: 0.5
log_file: dig.log
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 40, cfg.Width)
	assert.Equal(t, 20, cfg.Height)
	assert.Equal(t, []Point{{4, 4}, {35, 15}, {20, 10}}, cfg.Starts)
	assert.Equal(t, Terrain{Scale: 10, WaterLevel: 0.5, StoneLevel: 0.2}, cfg.Terrain)
	assert.Equal(t, 10, cfg.LogCap, "unset keys keep defaults")
	assert.Equal(t, "dig.log", cfg.LogFile)
}

func TestLoad_envOverridesYAML(t *testing.T) {
	path := writeFile(t, "width: 40\nlog_cap: 4\n")
	t.Setenv("DIG_WIDTH", "50")
	t.Setenv("DIG_TERRAIN_STONE_LEVEL", "0.1")
	t.Setenv("DIG_LOG_FILE", "/tmp/dig.log")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 50, cfg.Width)
	assert.Equal(t, 30, cfg.Height)
	assert.Equal(t, 4, cfg.LogCap)
	assert.Equal(t, 0.1, cfg.Terrain.StoneLevel)
	assert.Equal(t, "/tmp/dig.log", cfg.LogFile)
	assert.Equal(t, []Point{{3, 3}, {46, 26}}, cfg.Starts, "default starts follow the grid size")
}

func TestLoad_smallest(t *testing.T) {
	t.Setenv("DIG_WIDTH", "8")
	t.Setenv("DIG_HEIGHT", "8")
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, []Point{{3, 3}, {4, 4}}, cfg.Starts)

	for _, n := range []string{"5", "6", "7"} {
		t.Setenv("DIG_WIDTH", n)
		t.Setenv("DIG_HEIGHT", n)
		_, err := Load("")
		assert.ErrorIs(t, err, ErrInvalid, "size %v", n)
	}
}

func TestLoad_errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.True(t, os.IsNotExist(err), "%v", err)

	_, err = Load(writeFile(t, "width: [nope\n"))
	assert.Error(t, err)

	t.Setenv("DIG_HEIGHT", "tall")
	_, err = Load("")
	assert.Error(t, err)
}

func TestConfig_Validate(t *testing.T) {
	for _, tc := range []struct {
		name string
		edit func(*Config)
	}{
		{"too narrow", func(cfg *Config) { cfg.Width = MinSize - 1 }},
		{"too short", func(cfg *Config) { cfg.Height = 2 }},
		{"no starts", func(cfg *Config) { cfg.Starts = nil }},
		{"start on border", func(cfg *Config) { cfg.Starts[0] = Point{0, 5} }},
		{"start too close to border", func(cfg *Config) { cfg.Starts[0] = Point{1, 5} }},
		{"start too close to far border", func(cfg *Config) { cfg.Starts[1] = Point{cfg.Width - 2, 5} }},
		{"start outside", func(cfg *Config) { cfg.Starts[1] = Point{100, 100} }},
		{"duplicate start", func(cfg *Config) { cfg.Starts[1] = cfg.Starts[0] }},
		{"zero scale", func(cfg *Config) { cfg.Terrain.Scale = 0 }},
		{"zero log cap", func(cfg *Config) { cfg.LogCap = 0 }},
	} {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.edit(&cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalid)
		})
	}

	cfg := Default()
	cfg.Starts = []Point{{2, 2}, {cfg.Width - 3, cfg.Height - 3}}
	assert.NoError(t, cfg.Validate(), "inset by exactly 2 is fine")
}

func TestConfig_WorldOptions(t *testing.T) {
	cfg := Default()
	cfg.Width, cfg.Height = 20, 12
	cfg.Starts = []Point{{5, 5}}
	cfg.Terrain.WaterLevel = 0.9
	cfg.LogCap = 3

	opts := cfg.WorldOptions(rand.New(rand.NewSource(1)))
	assert.Equal(t, image.Pt(20, 12), opts.Size)
	assert.Equal(t, []image.Point{image.Pt(5, 5)}, opts.Starts)
	assert.Equal(t, 3, opts.LogCap)
	require.NotNil(t, opts.Generator)
	assert.Equal(t, 0.9, opts.Generator.WaterLevel)
	assert.Equal(t, 0.2, opts.Generator.StoneLevel)
	assert.Equal(t, 10.0, opts.Generator.Scale)
}
