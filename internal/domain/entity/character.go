package entity

import (
	"fmt"
	"math"
)

const (
	// IdleFrames is the length of the idle animation cycle
	IdleFrames = 2

	DefaultIdlePeriod   = 0.5
	DefaultMovePeriod   = 0.1
	DefaultFrameCount   = 3
	DefaultProbeOffsetY = 7.0
)

// Controller supplies the movement intent of a character each tick.
// dx and dy are -1, 0 or 1.
type Controller interface {
	Intent(c *Character) (dx, dy int)
}

// ControllerFunc adapts a function to the Controller interface
type ControllerFunc func(c *Character) (dx, dy int)

// Intent calls f(c)
func (f ControllerFunc) Intent(c *Character) (dx, dy int) {
	return f(c)
}

// AnimationState tracks the current sprite frame.
// Frame indexes the facing's frame sequence while moving and the
// two-frame idle cycle otherwise.
type AnimationState struct {
	Frame   int
	Elapsed float64
	Moving  bool
}

// CharacterOptions holds the tunables shared by heroes and enemies
type CharacterOptions struct {
	Speed        float64 // world units per Move call
	FrameCount   int     // frames per direction while moving
	IdlePeriod   float64 // seconds per idle frame
	MovePeriod   float64 // seconds per movement frame
	ProbeOffsetY float64 // y offset of the tile collision probe (feet)
}

// DefaultCharacterOptions returns options with the given speed and default animation timing
func DefaultCharacterOptions(speed float64) CharacterOptions {
	return CharacterOptions{
		Speed:        speed,
		FrameCount:   DefaultFrameCount,
		IdlePeriod:   DefaultIdlePeriod,
		MovePeriod:   DefaultMovePeriod,
		ProbeOffsetY: DefaultProbeOffsetY,
	}
}

// Character is the movement and animation state shared by every actor.
// Per-kind behavior comes from the Controller.
type Character struct {
	Kind   string // sprite id prefix ("hero", "enemy")
	X, Y   float64
	Facing Direction
	Anim   AnimationState

	CharacterOptions

	// TileMap is shared and read-only. nil disables tile collision.
	TileMap    *TileMap
	Controller Controller
}

// NewCharacter creates a character facing down
func NewCharacter(kind string, x, y float64, opts CharacterOptions) Character {
	return Character{
		Kind:             kind,
		X:                x,
		Y:                y,
		Facing:           DirDown,
		CharacterOptions: opts,
	}
}

// Move applies a movement intent. dx and dy are directions, not distances.
// When a tile map is attached the step is only committed if the probe point
// (candidate position plus ProbeOffsetY) lands on a walkable tile; a rejected
// step leaves the position unchanged but still updates facing and animation.
// Returns true if the position was committed.
func (c *Character) Move(dx, dy int) bool {
	movingNow := dx != 0 || dy != 0

	if c.Anim.Moving && !movingNow {
		c.Anim.Frame = 0
	}
	c.Anim.Moving = movingNow

	if dir, ok := FacingFor(dx, dy); ok {
		c.Facing = dir
	}

	nx := c.X + float64(dx)*c.Speed
	ny := c.Y + float64(dy)*c.Speed

	if c.TileMap != nil && !c.TileMap.IsWalkableAt(nx, ny+c.ProbeOffsetY) {
		return false
	}

	c.X = nx
	c.Y = ny
	return true
}

// Update advances the animation timer. Frames change on elapsed time only,
// regardless of how far the character actually moved.
func (c *Character) Update(dt float64) {
	c.Anim.Elapsed += dt

	if !c.Anim.Moving {
		if c.Anim.Elapsed >= c.IdlePeriod {
			c.Anim.Elapsed = 0
			c.Anim.Frame = (c.Anim.Frame + 1) % IdleFrames
		}
		return
	}

	if c.Anim.Elapsed >= c.MovePeriod {
		c.Anim.Elapsed = 0
		c.Anim.Frame = (c.Anim.Frame + 1) % c.frames()
	}
}

// Step runs one tick: ask the controller for an intent, move, then animate
func (c *Character) Step(dt float64) {
	dx, dy := 0, 0
	if c.Controller != nil {
		dx, dy = c.Controller.Intent(c)
	}
	c.Move(dx, dy)
	c.Update(dt)
}

func (c *Character) frames() int {
	if c.FrameCount < IdleFrames {
		return IdleFrames
	}
	return c.FrameCount
}

// SpriteID returns the image id for the current frame, e.g. "hero_down_1"
func (c *Character) SpriteID() string {
	return fmt.Sprintf("%s_%s_%d", c.Kind, c.Facing, c.Anim.Frame+1)
}

// Position returns the current position
func (c *Character) Position() Point {
	return Point{X: c.X, Y: c.Y}
}

// DistanceTo returns the Euclidean distance to (x, y)
func (c *Character) DistanceTo(x, y float64) float64 {
	return math.Hypot(x-c.X, y-c.Y)
}

func sign(v float64) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
