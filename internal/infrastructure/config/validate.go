package config

import (
	"errors"
	"fmt"
)

// Validate checks that the configuration can build a playable world
func (c *GameConfig) Validate() error {
	var errs []error

	if c.Display.Scale <= 0 {
		errs = append(errs, fmt.Errorf("display.scale must be positive, got %d", c.Display.Scale))
	}
	if c.Display.Framerate <= 0 {
		errs = append(errs, fmt.Errorf("display.framerate must be positive, got %d", c.Display.Framerate))
	}

	// A map needs at least one interior row and column
	if c.Map.Rows < 3 || c.Map.Cols < 3 {
		errs = append(errs, fmt.Errorf("map must be at least 3x3, got %dx%d", c.Map.Rows, c.Map.Cols))
	}
	if c.Map.TileSize <= 0 {
		errs = append(errs, fmt.Errorf("map.tileSize must be positive, got %d", c.Map.TileSize))
	}
	if c.Map.GrassProbability < 0 || c.Map.GrassProbability > 1 {
		errs = append(errs, fmt.Errorf("map.grassProbability must be within [0, 1], got %v", c.Map.GrassProbability))
	}

	if c.Hero.Speed <= 0 {
		errs = append(errs, fmt.Errorf("hero.speed must be positive, got %v", c.Hero.Speed))
	}
	if c.Hero.Health <= 0 {
		errs = append(errs, fmt.Errorf("hero.health must be positive, got %d", c.Hero.Health))
	}
	if c.Hero.Frames < 2 {
		errs = append(errs, fmt.Errorf("hero.frames must be at least 2, got %d", c.Hero.Frames))
	}
	if c.Enemy.Speed <= 0 {
		errs = append(errs, fmt.Errorf("enemy.speed must be positive, got %v", c.Enemy.Speed))
	}
	if c.Enemy.Frames < 2 {
		errs = append(errs, fmt.Errorf("enemy.frames must be at least 2, got %d", c.Enemy.Frames))
	}

	w, h := c.Map.ScreenWidth(), c.Map.ScreenHeight()
	for i, a := range c.Enemy.PatrolAreas {
		if a.W < 0 || a.H < 0 {
			errs = append(errs, fmt.Errorf("enemy.patrolAreas[%d] has negative size", i))
			continue
		}
		if a.X < 0 || a.Y < 0 || a.X+a.W > w || a.Y+a.H > h {
			errs = append(errs, fmt.Errorf("enemy.patrolAreas[%d] lies outside the %dx%d map", i, w, h))
		}
	}

	if c.Animation.IdlePeriod <= 0 || c.Animation.MovePeriod <= 0 {
		errs = append(errs, errors.New("animation periods must be positive"))
	}
	if c.Rules.CatchDistance < 0 || c.Rules.CollectDistance < 0 {
		errs = append(errs, errors.New("rules distances must not be negative"))
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		errs = append(errs, fmt.Errorf("audio.volume must be within [0, 1], got %v", c.Audio.Volume))
	}

	return errors.Join(errs...)
}
