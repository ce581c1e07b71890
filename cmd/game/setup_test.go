package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/herotiles/internal/application/replay"
	"github.com/younwookim/herotiles/internal/infrastructure/config"
)

func noEnv(string) (string, bool) { return "", false }

func TestLoadConfig_Embedded(t *testing.T) {
	cfg, err := loadConfig("", noEnv)
	require.NoError(t, err)

	assert.Equal(t, "Hero Tiles", cfg.Display.Title)
	assert.Equal(t, 400, cfg.Map.ScreenWidth())
	assert.Len(t, cfg.Enemy.PatrolAreas, 4)
}

func TestLoadConfig_Dir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.DefaultFile), []byte("map:\n  rows: 9\n  cols: 11\nenemy:\n  patrolAreas: []\n"), 0o600))

	cfg, err := loadConfig(dir, noEnv)
	require.NoError(t, err)
	assert.Equal(t, 9, cfg.Map.Rows)
	assert.Equal(t, 11, cfg.Map.Cols)

	_, err = loadConfig(filepath.Join(dir, "missing"), noEnv)
	assert.Error(t, err)
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	env := map[string]string{config.EnvSeed: "77"}
	lookup := func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}

	cfg, err := loadConfig("", lookup)
	require.NoError(t, err)
	assert.Equal(t, int64(77), cfg.Map.Seed)

	env[config.EnvSeed] = "seventy"
	_, err = loadConfig("", lookup)
	assert.ErrorContains(t, err, "invalid environment override")
}

func writeReplay(t *testing.T, data replay.ReplayData) string {
	t.Helper()
	raw, err := json.Marshal(data)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "run.json")
	require.NoError(t, os.WriteFile(path, raw, 0o600))
	return path
}

func TestVerifyReplay(t *testing.T) {
	data := replay.CreateTestReplayData(31, 0, 0)
	data.Frames[0].A = true
	for i := 1; i < len(data.Frames); i++ {
		data.Frames[i].R = true
	}
	path := writeReplay(t, data)

	var out bytes.Buffer
	require.NoError(t, verifyReplay(config.Default(), path, &out))

	assert.Contains(t, out.String(), "frames=31 seed=12345 state=Playing")

	// Same file, same outcome
	var again bytes.Buffer
	require.NoError(t, verifyReplay(config.Default(), path, &again))
	assert.Equal(t, out.String(), again.String())
}

func TestVerifyReplay_Missing(t *testing.T) {
	var out bytes.Buffer
	err := verifyReplay(config.Default(), filepath.Join(t.TempDir(), "none.json"), &out)
	assert.Error(t, err)
	assert.Empty(t, out.String())
}
