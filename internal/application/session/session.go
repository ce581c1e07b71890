// Package session holds the complete state of one game and advances it tick by tick.
package session

import (
	"context"
	"log"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/younwookim/herotiles/internal/application/state"
	"github.com/younwookim/herotiles/internal/application/system"
	"github.com/younwookim/herotiles/internal/domain/entity"
	"github.com/younwookim/herotiles/internal/infrastructure/config"
	"github.com/younwookim/herotiles/internal/telemetry"
)

// Deps are the collaborators of a session. Zero values pick safe defaults.
type Deps struct {
	Audio  Audio        // nil plays nothing
	Tracer trace.Tracer // nil disables tracing
	// Seed overrides cfg.Map.Seed. 0 falls back to the config, then to the clock.
	Seed int64
	// Context is the parent of every span the session starts
	Context context.Context
}

// GameSession owns the world and the state machine.
// Tick mutates it; Draw only reads it.
type GameSession struct {
	ID    string
	State state.GameState

	TileMap *entity.TileMap
	Hero    *entity.Hero
	Enemies []*entity.Enemy

	ItemsCollected int
	TotalItems     int
	SoundEnabled   bool

	// Frame counts Tick calls since the last reset
	Frame int

	// OnTransition is called after every state change
	OnTransition func(from, to state.GameState, ev state.Event)

	cfg        *config.GameConfig
	audio      Audio
	tracer     trace.Tracer
	ctx        context.Context
	seed       int64
	rng        *rand.Rand
	builder    *system.WorldBuilder
	encounters *system.EncounterSystem
}

// New builds a session in the Menu state with a fresh world
func New(cfg *config.GameConfig, deps Deps) *GameSession {
	if deps.Audio == nil {
		deps.Audio = nopAudio{}
	}
	if deps.Tracer == nil {
		deps.Tracer = telemetry.NoopTracer()
	}
	if deps.Context == nil {
		deps.Context = context.Background()
	}

	seed := deps.Seed
	if seed == 0 {
		seed = cfg.Map.Seed
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	s := &GameSession{
		State:        state.StateMenu,
		SoundEnabled: cfg.Audio.SoundEnabled,
		cfg:          cfg,
		audio:        deps.Audio,
		tracer:       deps.Tracer,
		ctx:          deps.Context,
		seed:         seed,
		rng:          rand.New(rand.NewSource(seed)),
		builder:      system.NewWorldBuilder(cfg, deps.Tracer),
		encounters:   system.NewEncounterSystem(cfg.Rules),
	}
	s.encounters.OnCaught = func(*entity.Enemy) { s.playSound(SoundHit) }
	s.encounters.OnCollect = func(*entity.Item) { s.playSound(SoundCollect) }

	s.Reset()
	s.selectTrack()
	return s
}

// Seed returns the seed of the session's random source
func (s *GameSession) Seed() int64 {
	return s.seed
}

// Config returns the configuration the session was built with
func (s *GameSession) Config() *config.GameConfig {
	return s.cfg
}

// Reset rebuilds hero, enemies and counters. The tile map is regenerated
// unless map.reuseOnRestart is set and a map already exists.
// The state is left unchanged.
func (s *GameSession) Reset() {
	s.ID = uuid.NewString()

	ctx, span := s.tracer.Start(s.ctx, "session.reset",
		trace.WithAttributes(attribute.String("session.id", s.ID)))
	defer span.End()

	var reuse *entity.TileMap
	if s.cfg.Map.ReuseOnRestart {
		reuse = s.TileMap
	}
	w := s.builder.Build(ctx, s.rng, reuse)

	s.TileMap = w.TileMap
	s.Hero = w.Hero
	s.Enemies = w.Enemies
	s.TotalItems = w.TotalItems()
	s.ItemsCollected = 0
	s.Frame = 0

	span.SetAttributes(attribute.Int("session.items", s.TotalItems))
}

// Start leaves the menu. It reports whether the state changed.
func (s *GameSession) Start() bool {
	return s.fire(state.EventStart)
}

// Restart returns a finished game to the menu with a fresh world.
// It reports whether the state changed.
func (s *GameSession) Restart() bool {
	if !s.State.IsFinished() {
		return false
	}
	s.Reset()
	return s.fire(state.EventRestart)
}

// Tick advances the session by one frame. Discrete input (sound toggle,
// clicks, activation) is handled first, then the world moves if the game
// is being played.
func (s *GameSession) Tick(dt float64, in system.InputState) {
	for _, intent := range system.Intents(in) {
		switch it := intent.(type) {
		case system.ToggleSoundIntent:
			s.ToggleSound()
		case system.ClickIntent:
			s.HandleClick(float64(it.X), float64(it.Y))
		case system.ActivateIntent:
			s.Activate()
		case system.MoveIntent:
			it.Apply(s.Hero.Input)
		}
	}

	if s.State != state.StatePlaying {
		return
	}
	s.Frame++

	s.Hero.Step(dt)
	for _, e := range s.Enemies {
		e.Step(dt)
	}

	res := s.encounters.Resolve(s.Hero, s.Enemies)
	if res.CaughtBy != nil {
		s.fire(state.EventCaught)
		return
	}
	if res.Collected > 0 {
		s.ItemsCollected += res.Collected
		if s.ItemsCollected >= s.TotalItems {
			s.fire(state.EventAllCollected)
		}
	}
}

// fire applies ev to the state machine and reports whether the state changed
func (s *GameSession) fire(ev state.Event) bool {
	from := s.State
	to, ok := state.Next(from, ev)
	if !ok {
		return false
	}

	_, span := s.tracer.Start(s.ctx, "session.transition", trace.WithAttributes(
		attribute.String("session.id", s.ID),
		attribute.String("state.from", from.String()),
		attribute.String("state.to", to.String()),
		attribute.String("state.event", ev.String()),
	))
	defer span.End()

	s.State = to
	log.Printf("session %s: %s -> %s on %s (items %d/%d, frame %d)",
		shortID(s.ID), from, to, ev, s.ItemsCollected, s.TotalItems, s.Frame)

	s.selectTrack()
	if s.OnTransition != nil {
		s.OnTransition(from, to, ev)
	}
	return true
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
