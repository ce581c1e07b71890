package system

import "github.com/younwookim/herotiles/internal/domain/entity"

// Intent represents an action the player wants to perform this frame
type Intent interface {
	isIntent()
}

// MoveIntent carries the held directions; the hero's InputController turns them into dx, dy
type MoveIntent struct {
	Left, Right, Up, Down bool
}

func (MoveIntent) isIntent() {}

// Apply copies the held directions into ic
func (m MoveIntent) Apply(ic *entity.InputController) {
	ic.Set(m.Left, m.Right, m.Up, m.Down)
}

// ClickIntent is a pointer click at a logical screen position
type ClickIntent struct {
	X, Y int
}

func (ClickIntent) isIntent() {}

// ActivateIntent presses the primary button
type ActivateIntent struct{}

func (ActivateIntent) isIntent() {}

// ToggleSoundIntent flips the sound setting
type ToggleSoundIntent struct{}

func (ToggleSoundIntent) isIntent() {}

// Intents splits an input snapshot into intents, discrete ones first.
// The MoveIntent is always last and always present so released keys stop the hero.
func Intents(in InputState) []Intent {
	intents := make([]Intent, 0, 4)
	if in.ToggleSound {
		intents = append(intents, ToggleSoundIntent{})
	}
	if in.Click {
		intents = append(intents, ClickIntent{X: in.MouseX, Y: in.MouseY})
	}
	if in.Activate {
		intents = append(intents, ActivateIntent{})
	}
	return append(intents, MoveIntent{Left: in.Left, Right: in.Right, Up: in.Up, Down: in.Down})
}
