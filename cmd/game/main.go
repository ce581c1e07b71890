package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"go.opentelemetry.io/otel/trace"

	"github.com/younwookim/herotiles/internal/application/game"
	"github.com/younwookim/herotiles/internal/application/replay"
	"github.com/younwookim/herotiles/internal/application/scene/playing"
	"github.com/younwookim/herotiles/internal/application/session"
	"github.com/younwookim/herotiles/internal/application/system"
	"github.com/younwookim/herotiles/internal/infrastructure/config"
	"github.com/younwookim/herotiles/internal/infrastructure/render"
	"github.com/younwookim/herotiles/internal/infrastructure/sound"
	"github.com/younwookim/herotiles/internal/telemetry"
)

func main() {
	// Parse command line flags
	recordFlag := flag.String("record", "", "Record input to file (e.g., -record replay.json)")
	replayFlag := flag.String("replay", "", "Play back a recorded file, then continue live")
	verifyFlag := flag.Bool("verify", false, "With -replay: run the recording without a window and print the outcome")
	configFlag := flag.String("config", "", "Config directory (default: embedded configs)")
	envFlag := flag.String("env", ".env", "Env file with HEROTILES_* overrides")
	muteFlag := flag.Bool("mute", false, "Start with sound off")
	flag.Parse()

	if err := config.LoadDotEnv(*envFlag); err != nil {
		log.Fatalf("Failed to load env: %v", err)
	}

	cfg, err := loadConfig(*configFlag, os.LookupEnv)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *muteFlag {
		cfg.Audio.SoundEnabled = false
	}

	if *verifyFlag {
		if *replayFlag == "" {
			log.Fatal("-verify needs -replay")
		}
		if err := verifyReplay(cfg, *replayFlag, os.Stdout); err != nil {
			log.Fatalf("Replay failed: %v", err)
		}
		return
	}

	ctx := context.Background()
	var tracer trace.Tracer
	if cfg.Telemetry.Enabled {
		shutdown, err := telemetry.Setup(ctx)
		if err != nil {
			log.Fatalf("Failed to set up telemetry: %v", err)
		}
		defer func() {
			if err := shutdown(ctx); err != nil {
				log.Printf("Telemetry shutdown: %v", err)
			}
		}()
		tracer = telemetry.Tracer("session")
	}

	var audio session.Audio
	player, err := sound.New(cfg.Audio)
	if err != nil {
		log.Printf("Audio unavailable, continuing silently: %v", err)
		audio = sound.Silent{}
	} else {
		audio = player
	}
	deps := session.Deps{Audio: audio, Tracer: tracer, Context: ctx}

	live := system.NewInputSystem(system.DefaultKeyBindings())
	var (
		s     *session.GameSession
		input playing.InputSource = live
		dt    float64
	)
	if *replayFlag != "" {
		data, err := replay.LoadReplay(*replayFlag)
		if err != nil {
			log.Fatalf("Failed to load replay: %v", err)
		}
		s = replay.NewSession(cfg, *data, deps)
		input = playing.NewReplaySource(replay.NewReplayer(*data), live)
		dt = data.FrameDT
		log.Printf("Replaying %s (%d frames, seed %d)", *replayFlag, len(data.Frames), data.Seed)
	} else {
		s = session.New(cfg, deps)
	}

	// A replay may carry its own config
	cfg = s.Config()
	atlas := render.NewAtlas(cfg.Map.TileSize, cfg.Hero.Frames, cfg.Enemy.Frames)

	screenW, screenH := cfg.Map.ScreenWidth(), cfg.Map.ScreenHeight()
	g := game.New(
		playing.New(s, atlas, input, playing.Options{RecordPath: *recordFlag, FrameDT: 1.0 / float64(cfg.Display.Framerate)}),
		screenW, screenH, cfg.Display.Framerate,
	)
	if dt > 0 {
		g.SetDT(dt)
	}

	// Set up ebiten
	ebiten.SetWindowSize(screenW*cfg.Display.Scale, screenH*cfg.Display.Scale)
	ebiten.SetWindowTitle(cfg.Display.Title)
	ebiten.SetTPS(cfg.Display.Framerate)

	// Run game
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
