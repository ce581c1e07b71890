package system

import (
	"context"
	"math/rand"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/younwookim/herotiles/internal/domain/entity"
	"github.com/younwookim/herotiles/internal/infrastructure/config"
)

// World is the set of entities built on every session reset
type World struct {
	TileMap *entity.TileMap
	Hero    *entity.Hero
	Enemies []*entity.Enemy
}

// TotalItems returns the number of items guarded in the world
func (w World) TotalItems() int {
	n := 0
	for _, e := range w.Enemies {
		if e.Item != nil {
			n++
		}
	}
	return n
}

// WorldBuilder turns a GameConfig into a fresh World
type WorldBuilder struct {
	cfg    *config.GameConfig
	tracer trace.Tracer
}

// NewWorldBuilder creates a builder. tracer must not be nil.
func NewWorldBuilder(cfg *config.GameConfig, tracer trace.Tracer) *WorldBuilder {
	return &WorldBuilder{cfg: cfg, tracer: tracer}
}

// Build creates a new world. When reuse is non-nil that map is kept and no
// random numbers are consumed; otherwise a new map is generated from rng.
func (b *WorldBuilder) Build(ctx context.Context, rng *rand.Rand, reuse *entity.TileMap) World {
	tm := reuse
	if tm == nil {
		tm = b.LoadTileMap(ctx, rng)
	}
	return World{
		TileMap: tm,
		Hero:    b.SpawnHero(tm),
		Enemies: b.SpawnEnemies(),
	}
}

// LoadTileMap generates the map and clears the patrol areas and the hero spawn
func (b *WorldBuilder) LoadTileMap(ctx context.Context, rng *rand.Rand) *entity.TileMap {
	_, span := b.tracer.Start(ctx, "tilemap.generate")
	defer span.End()

	m := b.cfg.Map
	tm := entity.GenerateTileMap(entity.GenerateOptions{
		Rows:             m.Rows,
		Cols:             m.Cols,
		TileSize:         m.TileSize,
		GrassProbability: m.GrassProbability,
		CarveCross:       m.CarveCross,
	}, rng)

	// Enemies never probe the map, so their routes must be open
	for _, area := range PatrolAreas(b.cfg) {
		tm.ClearRect(area)
	}
	tm.ClearRect(spawnArea(tm))

	span.SetAttributes(
		attribute.Int("tilemap.rows", tm.Rows),
		attribute.Int("tilemap.cols", tm.Cols),
		attribute.Int("tilemap.blocked", tm.BlockedCount()),
	)
	return tm
}

// SpawnHero creates the hero at the map center
func (b *WorldBuilder) SpawnHero(tm *entity.TileMap) *entity.Hero {
	c := tm.Center()
	hero := entity.NewHero(c.X, c.Y, HeroOptions(b.cfg), tm)
	hero.Health = b.cfg.Hero.Health
	return hero
}

// SpawnEnemies creates one enemy per configured patrol area
func (b *WorldBuilder) SpawnEnemies() []*entity.Enemy {
	areas := PatrolAreas(b.cfg)
	enemies := make([]*entity.Enemy, 0, len(areas))
	for _, area := range areas {
		enemies = append(enemies, entity.NewEnemy(area, EnemyOptions(b.cfg)))
	}
	return enemies
}

// HeroOptions converts the hero config into character options
func HeroOptions(cfg *config.GameConfig) entity.CharacterOptions {
	return entity.CharacterOptions{
		Speed:        cfg.Hero.Speed,
		FrameCount:   cfg.Hero.Frames,
		IdlePeriod:   cfg.Animation.IdlePeriod,
		MovePeriod:   cfg.Animation.MovePeriod,
		ProbeOffsetY: cfg.Hero.ProbeOffsetY,
	}
}

// EnemyOptions converts the enemy config into character options
func EnemyOptions(cfg *config.GameConfig) entity.CharacterOptions {
	return entity.CharacterOptions{
		Speed:      cfg.Enemy.Speed,
		FrameCount: cfg.Enemy.Frames,
		IdlePeriod: cfg.Animation.IdlePeriod,
		MovePeriod: cfg.Animation.MovePeriod,
	}
}

// PatrolAreas returns the configured patrol rectangles in world units
func PatrolAreas(cfg *config.GameConfig) []entity.Rect {
	areas := make([]entity.Rect, 0, len(cfg.Enemy.PatrolAreas))
	for _, a := range cfg.Enemy.PatrolAreas {
		areas = append(areas, entity.Rect{
			X: float64(a.X),
			Y: float64(a.Y),
			W: float64(a.W),
			H: float64(a.H),
		})
	}
	return areas
}

// spawnArea covers the tiles around the map center
func spawnArea(tm *entity.TileMap) entity.Rect {
	c := tm.Center()
	ts := float64(tm.TileSize)
	return entity.Rect{X: c.X - ts, Y: c.Y - ts, W: 2*ts - 1, H: 2*ts - 1}
}
