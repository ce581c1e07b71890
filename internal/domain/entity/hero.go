package entity

const (
	DefaultHeroHealth = 100
	DefaultHeroSpeed  = 1.5
)

// InputController turns the four directional key flags into a move intent.
// Opposing keys cancel out.
type InputController struct {
	Left, Right, Up, Down bool
}

// Set replaces all four flags at once
func (ic *InputController) Set(left, right, up, down bool) {
	ic.Left = left
	ic.Right = right
	ic.Up = up
	ic.Down = down
}

// Intent implements Controller
func (ic *InputController) Intent(_ *Character) (dx, dy int) {
	if ic.Left {
		dx--
	}
	if ic.Right {
		dx++
	}
	if ic.Up {
		dy--
	}
	if ic.Down {
		dy++
	}
	return dx, dy
}

// Hero is the player-controlled character.
// Health is displayed but no rule decrements it: touching an enemy ends the run.
type Hero struct {
	Character
	Health int
	Input  *InputController
}

// NewHero creates a hero at (x, y) colliding against tm (may be nil)
func NewHero(x, y float64, opts CharacterOptions, tm *TileMap) *Hero {
	h := &Hero{
		Character: NewCharacter("hero", x, y, opts),
		Health:    DefaultHeroHealth,
		Input:     &InputController{},
	}
	h.TileMap = tm
	h.Controller = h.Input
	return h
}
