package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/herotiles/internal/domain/entity"
	"github.com/younwookim/herotiles/internal/infrastructure/config"
)

func createTestEncounter() (*EncounterSystem, *entity.Hero, []*entity.Enemy) {
	sys := NewEncounterSystem(config.RulesConfig{CatchDistance: 20, CollectDistance: 20})
	hero := entity.NewHero(0, 0, entity.DefaultCharacterOptions(1.5), nil)
	enemies := []*entity.Enemy{
		entity.NewEnemy(entity.Rect{X: 100, Y: 100, W: 64, H: 32}, entity.DefaultCharacterOptions(1)),
		entity.NewEnemy(entity.Rect{X: 300, Y: 100, W: 64, H: 32}, entity.DefaultCharacterOptions(1)),
	}
	return sys, hero, enemies
}

func TestEncounterSystem_CatchThreshold(t *testing.T) {
	tests := []struct {
		name      string
		distance  float64
		wantCatch bool
	}{
		{"well inside", 5, true},
		{"just inside", 19, true},
		{"on the threshold", 20, false},
		{"outside", 25, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sys, hero, enemies := createTestEncounter()
			hero.X = enemies[0].X + tt.distance
			hero.Y = enemies[0].Y

			res := sys.Resolve(hero, enemies)

			if tt.wantCatch {
				assert.Same(t, enemies[0], res.CaughtBy)
			} else {
				assert.Nil(t, res.CaughtBy)
			}
		})
	}
}

func TestEncounterSystem_CaughtHeroCollectsNothing(t *testing.T) {
	sys, hero, enemies := createTestEncounter()

	// Park the enemy on its own item; the hero touches both
	e := enemies[0]
	e.X, e.Y = e.Item.X, e.Item.Y
	hero.X, hero.Y = e.Item.X+3, e.Item.Y

	res := sys.Resolve(hero, enemies)

	assert.NotNil(t, res.CaughtBy)
	assert.Zero(t, res.Collected)
	assert.False(t, e.Item.Collected)
}

func TestEncounterSystem_CollectIsIdempotent(t *testing.T) {
	sys, hero, enemies := createTestEncounter()

	var collected []*entity.Item
	sys.OnCollect = func(it *entity.Item) { collected = append(collected, it) }

	item := enemies[0].Item
	hero.X, hero.Y = item.X, item.Y+10

	res := sys.Resolve(hero, enemies)
	assert.Nil(t, res.CaughtBy)
	assert.Equal(t, 1, res.Collected)
	assert.True(t, item.Collected)

	for i := 0; i < 5; i++ {
		res = sys.Resolve(hero, enemies)
		assert.Zero(t, res.Collected)
	}
	require.Len(t, collected, 1)
	assert.Same(t, item, collected[0])
	assert.False(t, enemies[1].Item.Collected)
}

func TestEncounterSystem_OnCaught(t *testing.T) {
	sys, hero, enemies := createTestEncounter()

	var caught *entity.Enemy
	sys.OnCaught = func(e *entity.Enemy) { caught = e }

	hero.X, hero.Y = enemies[1].X, enemies[1].Y+1

	res := sys.Resolve(hero, enemies)

	assert.Same(t, enemies[1], res.CaughtBy)
	assert.Same(t, enemies[1], caught)
}

func TestEncounterSystem_NoEnemies(t *testing.T) {
	sys, hero, _ := createTestEncounter()

	res := sys.Resolve(hero, nil)

	assert.Nil(t, res.CaughtBy)
	assert.Zero(t, res.Collected)
}
