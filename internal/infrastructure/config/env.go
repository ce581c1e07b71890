package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variables that override file values
const (
	EnvSeed      = "HEROTILES_SEED"
	EnvSound     = "HEROTILES_SOUND"
	EnvGrass     = "HEROTILES_GRASS"
	EnvTelemetry = "HEROTILES_TELEMETRY"
)

// LookupFunc has the signature of os.LookupEnv
type LookupFunc func(key string) (string, bool)

// LoadDotEnv loads a .env file into the process environment.
// A missing file is not an error; variables may be set directly.
func LoadDotEnv(filenames ...string) error {
	if err := godotenv.Load(filenames...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load env file: %w", err)
	}
	return nil
}

// ReadEnvFile parses a .env file without touching the process environment
func ReadEnvFile(filename string) (LookupFunc, error) {
	vars, err := godotenv.Read(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", filename, err)
	}
	return func(key string) (string, bool) {
		v, ok := vars[key]
		return v, ok
	}, nil
}

// ApplyEnv overrides cfg with any HEROTILES_* variables found by lookup
func ApplyEnv(cfg *GameConfig, lookup LookupFunc) error {
	if v, ok := lookup(EnvSeed); ok && v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("failed to parse %s: %w", EnvSeed, err)
		}
		cfg.Map.Seed = seed
	}

	if v, ok := lookup(EnvSound); ok && v != "" {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("failed to parse %s: %w", EnvSound, err)
		}
		cfg.Audio.SoundEnabled = enabled
	}

	if v, ok := lookup(EnvGrass); ok && v != "" {
		p, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("failed to parse %s: %w", EnvGrass, err)
		}
		cfg.Map.GrassProbability = p
	}

	if v, ok := lookup(EnvTelemetry); ok && v != "" {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("failed to parse %s: %w", EnvTelemetry, err)
		}
		cfg.Telemetry.Enabled = enabled
	}

	return cfg.Validate()
}
