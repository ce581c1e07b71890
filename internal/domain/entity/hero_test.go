package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHero(t *testing.T) {
	tm := NewTileMap(10, 10, 16)
	hero := NewHero(80, 80, DefaultCharacterOptions(DefaultHeroSpeed), tm)

	require.NotNil(t, hero)
	assert.Equal(t, 100, hero.Health)
	assert.Equal(t, "hero", hero.Kind)
	assert.Equal(t, DirDown, hero.Facing)
	assert.Same(t, tm, hero.TileMap)
	assert.Equal(t, 1.5, hero.Speed)
}

func TestInputController_Intent(t *testing.T) {
	tests := []struct {
		name                  string
		left, right, up, down bool
		wantDX, wantDY        int
	}{
		{"none", false, false, false, false, 0, 0},
		{"left", true, false, false, false, -1, 0},
		{"right and up", false, true, true, false, 1, -1},
		{"opposites cancel", true, true, true, true, 0, 0},
		{"down", false, false, false, true, 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ic := &InputController{}
			ic.Set(tt.left, tt.right, tt.up, tt.down)
			dx, dy := ic.Intent(nil)
			assert.Equal(t, tt.wantDX, dx)
			assert.Equal(t, tt.wantDY, dy)
		})
	}
}

func TestHero_StepFollowsInput(t *testing.T) {
	hero := NewHero(80, 80, DefaultCharacterOptions(DefaultHeroSpeed), nil)
	hero.Input.Set(false, true, false, true)

	hero.Step(0.016)

	assert.Equal(t, 81.5, hero.X)
	assert.Equal(t, 81.5, hero.Y)
	assert.Equal(t, DirRight, hero.Facing)
}
