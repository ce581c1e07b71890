package config

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoader_LoadGame(t *testing.T) {
	loader := NewLoader("../../../cmd/game/configs")

	cfg, err := loader.LoadGame()
	require.NoError(t, err)

	assert.Equal(t, "Hero Tiles", cfg.Display.Title)
	assert.Equal(t, 60, cfg.Display.Framerate)
	assert.Equal(t, 15, cfg.Map.Rows)
	assert.Equal(t, 25, cfg.Map.Cols)
	assert.Equal(t, 16, cfg.Map.TileSize)
	assert.Equal(t, 400, cfg.Map.ScreenWidth())
	assert.Equal(t, 240, cfg.Map.ScreenHeight())
	assert.True(t, cfg.Map.CarveCross)
	assert.Equal(t, 1.5, cfg.Hero.Speed)
	assert.Equal(t, 100, cfg.Hero.Health)
	assert.Equal(t, 7.0, cfg.Hero.ProbeOffsetY)
	assert.Equal(t, 1.0, cfg.Enemy.Speed)
	require.Len(t, cfg.Enemy.PatrolAreas, 4)
	assert.Equal(t, RectConfig{X: 280, Y: 160, W: 64, H: 32}, cfg.Enemy.PatrolAreas[3])
	assert.Equal(t, 20.0, cfg.Rules.CatchDistance)
	assert.Equal(t, 0.5, cfg.Animation.IdlePeriod)
	assert.True(t, cfg.Audio.SoundEnabled)
}

func TestLoader_PartialFileKeepsDefaults(t *testing.T) {
	fsys := fstest.MapFS{
		"small.yaml": {Data: []byte("map:\n  rows: 10\n  cols: 20\nenemy:\n  patrolAreas: []\n")},
	}
	loader := NewFSLoader(fsys, "mem")

	cfg, err := loader.LoadGameFile("small.yaml")
	require.NoError(t, err)

	assert.Equal(t, 10, cfg.Map.Rows)
	assert.Equal(t, 20, cfg.Map.Cols)
	assert.Equal(t, 16, cfg.Map.TileSize, "unset fields keep their default")
	assert.Empty(t, cfg.Enemy.PatrolAreas)
	assert.Equal(t, "mem", loader.BasePath())
}

func TestLoader_JSON(t *testing.T) {
	fsys := fstest.MapFS{
		"game.json": {Data: []byte(`{"hero": {"speed": 2.5}, "rules": {"catchDistance": 12}}`)},
	}
	loader := NewFSLoader(fsys, "mem")

	cfg, err := loader.LoadGameFile("game.json")
	require.NoError(t, err)

	assert.Equal(t, 2.5, cfg.Hero.Speed)
	assert.Equal(t, 12.0, cfg.Rules.CatchDistance)
	assert.Equal(t, 20.0, cfg.Rules.CollectDistance)
}

func TestLoader_Errors(t *testing.T) {
	fsys := fstest.MapFS{
		"broken.yaml": {Data: []byte("map: [1, 2")},
		"game.toml":   {Data: []byte("x = 1")},
		"bad.yaml":    {Data: []byte("map:\n  grassProbability: 2\n")},
	}
	loader := NewFSLoader(fsys, "mem")

	tests := []struct {
		name    string
		file    string
		wantErr string
	}{
		{"missing file", "nope.yaml", "failed to read nope.yaml"},
		{"syntax error", "broken.yaml", "failed to parse broken.yaml"},
		{"unknown format", "game.toml", "unsupported config format"},
		{"invalid values", "bad.yaml", "grassProbability"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := loader.LoadGameFile(tt.file)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestGameConfig_Validate(t *testing.T) {
	require.NoError(t, Default().Validate())

	tests := []struct {
		name    string
		mutate  func(c *GameConfig)
		wantErr string
	}{
		{"tiny map", func(c *GameConfig) { c.Map.Rows = 2 }, "at least 3x3"},
		{"zero tile size", func(c *GameConfig) { c.Map.TileSize = 0 }, "tileSize"},
		{"negative probability", func(c *GameConfig) { c.Map.GrassProbability = -0.1 }, "grassProbability"},
		{"hero frozen", func(c *GameConfig) { c.Hero.Speed = 0 }, "hero.speed"},
		{"one frame", func(c *GameConfig) { c.Enemy.Frames = 1 }, "enemy.frames"},
		{"patrol off map", func(c *GameConfig) {
			c.Enemy.PatrolAreas = append(c.Enemy.PatrolAreas, RectConfig{X: 390, Y: 10, W: 20, H: 10})
		}, "patrolAreas[4]"},
		{"zero period", func(c *GameConfig) { c.Animation.MovePeriod = 0 }, "animation periods"},
		{"loud", func(c *GameConfig) { c.Audio.Volume = 1.5 }, "audio.volume"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		EnvSeed:      "1234",
		EnvSound:     "false",
		EnvGrass:     "0",
		EnvTelemetry: "true",
	}
	lookup := func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}

	cfg := Default()
	require.NoError(t, ApplyEnv(cfg, lookup))

	assert.Equal(t, int64(1234), cfg.Map.Seed)
	assert.False(t, cfg.Audio.SoundEnabled)
	assert.Equal(t, 0.0, cfg.Map.GrassProbability)
	assert.True(t, cfg.Telemetry.Enabled)
}

func TestApplyEnv_Errors(t *testing.T) {
	tests := []struct {
		key, value string
	}{
		{EnvSeed, "abc"},
		{EnvSound, "maybe"},
		{EnvGrass, "lots"},
		{EnvTelemetry, "2x"},
		{EnvGrass, "3"}, // parses but fails validation
	}

	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			lookup := func(k string) (string, bool) {
				if k == tt.key {
					return tt.value, true
				}
				return "", false
			}
			assert.Error(t, ApplyEnv(Default(), lookup))
		})
	}
}

func TestReadEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("HEROTILES_SEED=99\nHEROTILES_SOUND=0\n"), 0o600))

	lookup, err := ReadEnvFile(path)
	require.NoError(t, err)

	cfg := Default()
	require.NoError(t, ApplyEnv(cfg, lookup))
	assert.Equal(t, int64(99), cfg.Map.Seed)
	assert.False(t, cfg.Audio.SoundEnabled)

	_, err = ReadEnvFile(filepath.Join(t.TempDir(), "missing.env"))
	assert.Error(t, err)
}

func TestLoadDotEnv_MissingFile(t *testing.T) {
	assert.NoError(t, LoadDotEnv(filepath.Join(t.TempDir(), "nope.env")))
}
