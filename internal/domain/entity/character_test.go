package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestCharacter(tm *TileMap) *Character {
	c := NewCharacter("hero", 40, 40, DefaultCharacterOptions(1.5))
	c.TileMap = tm
	return &c
}

func TestFacingFor_HorizontalPrecedence(t *testing.T) {
	tests := []struct {
		name   string
		dx, dy int
		want   Direction
		wantOK bool
	}{
		{"right", 1, 0, DirRight, true},
		{"right and up", 1, -1, DirRight, true},
		{"right and down", 1, 1, DirRight, true},
		{"left", -1, 0, DirLeft, true},
		{"left and down", -1, 1, DirLeft, true},
		{"down", 0, 1, DirDown, true},
		{"up", 0, -1, DirUp, true},
		{"none", 0, 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir, ok := FacingFor(tt.dx, tt.dy)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, dir)
			}
		})
	}
}

func TestCharacter_MoveSetsFacing(t *testing.T) {
	for _, dy := range []int{-1, 0, 1} {
		c := createTestCharacter(nil)
		c.Move(1, dy)
		assert.Equal(t, DirRight, c.Facing, "dx>0 must face right for dy=%d", dy)
	}

	c := createTestCharacter(nil)
	c.Move(0, -1)
	assert.Equal(t, DirUp, c.Facing)

	// No intent keeps the last facing
	c.Move(0, 0)
	assert.Equal(t, DirUp, c.Facing)
}

func TestCharacter_MoveWithoutTileMapAlwaysCommits(t *testing.T) {
	c := createTestCharacter(nil)

	ok := c.Move(-1, 1)

	assert.True(t, ok)
	assert.Equal(t, 38.5, c.X)
	assert.Equal(t, 41.5, c.Y)
}

func TestCharacter_MoveOntoWalkableTile(t *testing.T) {
	tm := NewTileMap(10, 10, 16)
	c := createTestCharacter(tm)

	ok := c.Move(1, 0)

	assert.True(t, ok)
	assert.Equal(t, 41.5, c.X, "x moves by exactly speed*dx")
	assert.Equal(t, 40.0, c.Y)
}

func TestCharacter_MoveOntoBlockedTileIsRejected(t *testing.T) {
	tm := NewTileMap(10, 10, 16)
	// Stepping right from (47, 40) probes (48.5, 47) -> tile (3, 2)
	tm.Set(3, 2, CellGrass)
	c := createTestCharacter(tm)
	c.X, c.Y = 47, 40

	ok := c.Move(1, 0)

	assert.False(t, ok)
	assert.Equal(t, 47.0, c.X, "rejected move leaves position unchanged")
	assert.Equal(t, 40.0, c.Y)
	assert.True(t, c.Anim.Moving, "animation still reports moving")
	assert.Equal(t, DirRight, c.Facing)
}

func TestCharacter_ProbeUsesFeetOffset(t *testing.T) {
	tm := NewTileMap(10, 10, 16)
	// Sprite center at y=40 is in row 2, but the feet probe at y=41.5+7 is in row 3.
	tm.Set(2, 3, CellGrass)
	c := createTestCharacter(tm)
	c.Y = 40

	ok := c.Move(0, 1)

	assert.False(t, ok)
	assert.Equal(t, 40.0, c.Y)

	// Without the offset the same move would succeed
	c.ProbeOffsetY = 0
	assert.True(t, c.Move(0, 1))
	assert.Equal(t, 41.5, c.Y)
}

func TestCharacter_StopResetsFrame(t *testing.T) {
	c := createTestCharacter(nil)
	c.Move(1, 0)
	c.Anim.Frame = 2

	c.Move(0, 0)

	assert.Equal(t, 0, c.Anim.Frame)
	assert.False(t, c.Anim.Moving)
}

func TestCharacter_IdleCyclesTwoFrames(t *testing.T) {
	c := createTestCharacter(nil)

	seen := make([]int, 0, 6)
	for i := 0; i < 6; i++ {
		c.Update(0.5)
		seen = append(seen, c.Anim.Frame)
	}

	assert.Equal(t, []int{1, 0, 1, 0, 1, 0}, seen)
}

func TestCharacter_IdleWaitsForPeriod(t *testing.T) {
	c := createTestCharacter(nil)

	c.Update(0.2)
	c.Update(0.2)
	assert.Equal(t, 0, c.Anim.Frame)
	assert.InDelta(t, 0.4, c.Anim.Elapsed, 1e-9)

	c.Update(0.2)
	assert.Equal(t, 1, c.Anim.Frame)
	assert.Equal(t, 0.0, c.Anim.Elapsed)
}

func TestCharacter_MovingCyclesAllFrames(t *testing.T) {
	c := createTestCharacter(nil)
	c.Move(0, 1)

	seen := make([]int, 0, 7)
	for i := 0; i < 7; i++ {
		c.Update(0.1)
		seen = append(seen, c.Anim.Frame)
	}

	assert.Equal(t, []int{1, 2, 0, 1, 2, 0, 1}, seen)
}

func TestCharacter_FrameAdvanceIgnoresDistance(t *testing.T) {
	tm := NewTileMap(10, 10, 16)
	for r := 0; r < 10; r++ {
		for col := 0; col < 10; col++ {
			tm.Set(col, r, CellGrass)
		}
	}
	c := createTestCharacter(tm)

	// Every move is rejected, but the walk cycle still runs
	c.Move(1, 0)
	c.Update(0.1)
	c.Move(1, 0)
	c.Update(0.1)

	assert.Equal(t, 40.0, c.X)
	assert.Equal(t, 2, c.Anim.Frame)
}

func TestCharacter_StepUsesController(t *testing.T) {
	c := createTestCharacter(nil)
	calls := 0
	c.Controller = ControllerFunc(func(*Character) (int, int) {
		calls++
		return -1, 0
	})

	c.Step(0.1)

	assert.Equal(t, 1, calls)
	assert.Equal(t, 38.5, c.X)
	assert.Equal(t, DirLeft, c.Facing)
	assert.Equal(t, 1, c.Anim.Frame)
}

func TestCharacter_StepWithoutControllerIdles(t *testing.T) {
	c := createTestCharacter(nil)

	c.Step(0.5)

	assert.Equal(t, 40.0, c.X)
	assert.False(t, c.Anim.Moving)
	assert.Equal(t, 1, c.Anim.Frame)
}

func TestCharacter_SpriteID(t *testing.T) {
	c := createTestCharacter(nil)
	require.Equal(t, "hero_down_1", c.SpriteID())

	c.Move(-1, 0)
	c.Update(0.1)
	assert.Equal(t, "hero_left_2", c.SpriteID())
}

func TestCharacter_DistanceTo(t *testing.T) {
	c := createTestCharacter(nil)

	assert.Equal(t, 5.0, c.DistanceTo(43, 44))
	assert.Equal(t, 0.0, c.DistanceTo(40, 40))
}

func TestDirection_String(t *testing.T) {
	assert.Equal(t, "up", DirUp.String())
	assert.Equal(t, "down", DirDown.String())
	assert.Equal(t, "left", DirLeft.String())
	assert.Equal(t, "right", DirRight.String())
	assert.Equal(t, "unknown", Direction(42).String())
}
