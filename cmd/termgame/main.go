// Command termgame plays the game in a terminal.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"github.com/younwookim/herotiles/internal/application/replay"
	"github.com/younwookim/herotiles/internal/application/session"
	"github.com/younwookim/herotiles/internal/infrastructure/config"
	"github.com/younwookim/herotiles/internal/infrastructure/term"
)

func main() {
	asciiFlag := flag.Bool("ascii", false, "Draw with ASCII instead of emoji")
	recordFlag := flag.String("record", "", "Record input to file (e.g., -record replay.json)")
	configFlag := flag.String("config", "", "Config file (default: built-in settings)")
	logFlag := flag.String("log", "", "Write logs to this file (default: discard)")
	flag.Parse()

	if err := run(*configFlag, *logFlag, *recordFlag, *asciiFlag); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(configPath, logPath, recordPath string, ascii bool) error {
	// The screen owns the terminal, so logs go to a file or nowhere
	log.SetOutput(io.Discard)
	if logPath != "" {
		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		defer func() { _ = f.Close() }()
		log.SetOutput(f)
	}

	if err := config.LoadDotEnv(); err != nil {
		return err
	}
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	// The terminal has no audio output
	s := session.New(cfg, session.Deps{})

	glyphs := term.EmojiGlyphs
	if ascii {
		glyphs = term.ASCIIGlyphs
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to init screen: %w", err)
	}
	defer screen.Fini()

	app := term.NewApp(screen, s, glyphs, cfg.Display.Framerate)
	if recordPath != "" {
		app.Recorder = replay.NewRecorder(s, 1.0/float64(cfg.Display.Framerate))
		defer func() {
			if err := app.Recorder.Save(recordPath); err != nil {
				log.Printf("Failed to save recording: %v", err)
			}
		}()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// loadConfig reads path when given, otherwise uses the defaults.
// Environment overrides apply either way.
func loadConfig(path string) (*config.GameConfig, error) {
	cfg := config.Default()
	if path != "" {
		loaded, err := config.NewLoader(filepath.Dir(path)).LoadGameFile(filepath.Base(path))
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if err := config.ApplyEnv(cfg, os.LookupEnv); err != nil {
		return nil, fmt.Errorf("invalid environment override: %w", err)
	}
	return cfg, nil
}
