package main

import (
	"fmt"
	"io"
	"io/fs"

	"github.com/younwookim/herotiles/internal/application/replay"
	"github.com/younwookim/herotiles/internal/application/session"
	"github.com/younwookim/herotiles/internal/infrastructure/config"
)

// loadConfig reads game.yaml from dir, or from the embedded configs when
// dir is empty, then applies environment overrides.
func loadConfig(dir string, lookup config.LookupFunc) (*config.GameConfig, error) {
	var loader *config.Loader
	if dir != "" {
		loader = config.NewLoader(dir)
	} else {
		fsys, err := fs.Sub(configFS, "configs")
		if err != nil {
			return nil, fmt.Errorf("failed to get config subfs: %w", err)
		}
		loader = config.NewFSLoader(fsys, "configs")
	}

	cfg, err := loader.LoadGame()
	if err != nil {
		return nil, err
	}
	if err := config.ApplyEnv(cfg, lookup); err != nil {
		return nil, fmt.Errorf("invalid environment override: %w", err)
	}
	return cfg, nil
}

// verifyReplay runs a recording headless and writes the final state to w
func verifyReplay(cfg *config.GameConfig, path string, w io.Writer) error {
	data, err := replay.LoadReplay(path)
	if err != nil {
		return err
	}

	s := replay.Run(cfg, *data, session.Deps{})
	_, err = fmt.Fprintf(w, "frames=%d seed=%d state=%s items=%d/%d hero=(%.1f,%.1f)\n",
		len(data.Frames), data.Seed, s.State, s.ItemsCollected, s.TotalItems, s.Hero.X, s.Hero.Y)
	return err
}
