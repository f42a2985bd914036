package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-topdown-arena/pkg/tilemap"
)

func TestParseEmptyGivesDefaults(t *testing.T) {
	cfg, err := Parse(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestParseOverrides(t *testing.T) {
	cfg, err := Parse(strings.NewReader(`
input:
  movement_mode: normalized
camera:
  max_zoom: 0
  locked_pan: snap
npcs:
  - position: {x: 1, y: 2}
    speed: 50
    route: [{x: 10, y: 0}]
    attack: true
map:
  mode: scatter
  origin: [0, 0]
  seed: 7
`))
	require.NoError(t, err)
	assert.Equal(t, MovementNormalized, cfg.Input.MovementMode)
	assert.Equal(t, FireEdge, cfg.Input.FireMode, "untouched keys keep defaults")
	assert.Zero(t, cfg.Camera.MaxZoom)
	assert.Equal(t, LockedPanSnap, cfg.Camera.LockedPan)
	require.Len(t, cfg.NPCs, 1)
	assert.Equal(t, []Point{{X: 10, Y: 0}}, cfg.NPCs[0].Route)
	assert.True(t, cfg.NPCs[0].Attack)
	assert.Equal(t, tilemap.ModeScatter, cfg.Map.Mode)
	assert.Equal(t, [2]float32{0, 0}, cfg.Map.Origin)
	assert.Equal(t, int64(7), cfg.Map.Seed)
}

func TestParseRejectsUnknownKeys(t *testing.T) {
	_, err := Parse(strings.NewReader("camera:\n  zoom_speed: 1\n"))
	assert.Error(t, err)
}

func TestValidateCollectsErrors(t *testing.T) {
	cfg := Default()
	cfg.Input.FireMode = "burst"
	cfg.Camera.MaxZoom = 0.1
	cfg.Commands.Arrival = "close-enough"
	cfg.NPCs = []NPCConfig{{Speed: 0}}

	err := cfg.Validate()
	require.ErrorIs(t, err, ErrInvalid)
	for _, want := range []string{"fire_mode", "max_zoom", "commands.arrival", "npcs[0].speed"} {
		assert.Contains(t, err.Error(), want)
	}
}

func TestValidateWrapsMapErrors(t *testing.T) {
	cfg := Default()
	cfg.Map.ChunkSize = 0

	err := cfg.Validate()
	assert.ErrorIs(t, err, ErrInvalid)
	assert.ErrorIs(t, err, tilemap.ErrBadParams)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log_level: debug\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestShippedConfigIsValid(t *testing.T) {
	cfg, err := Load(filepath.Join("..", "..", "configs", "game.yaml"))
	require.NoError(t, err)
	assert.Equal(t, tilemap.ModeScatter, cfg.Map.Mode)
	assert.Len(t, cfg.NPCs, 1)
}
