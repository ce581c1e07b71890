package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputState holds one frame of player input
type InputState struct {
	Left  bool
	Right bool
	Up    bool
	Down  bool
	// Click is a left click this frame at (MouseX, MouseY) in logical screen coordinates
	Click  bool
	MouseX int
	MouseY int
	// Activate presses the primary button of the current screen
	Activate    bool
	ToggleSound bool
}

// AnyDirection reports whether a directional key is held
func (s InputState) AnyDirection() bool {
	return s.Left || s.Right || s.Up || s.Down
}

// KeyBindings maps keys to actions. Any key in a slice triggers the action.
type KeyBindings struct {
	Left        []ebiten.Key
	Right       []ebiten.Key
	Up          []ebiten.Key
	Down        []ebiten.Key
	Activate    []ebiten.Key
	ToggleSound []ebiten.Key
}

// DefaultKeyBindings binds the arrow keys and WASD, Enter/Space to activate and M to mute
func DefaultKeyBindings() KeyBindings {
	return KeyBindings{
		Left:        []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA},
		Right:       []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD},
		Up:          []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW},
		Down:        []ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS},
		Activate:    []ebiten.Key{ebiten.KeyEnter, ebiten.KeySpace},
		ToggleSound: []ebiten.Key{ebiten.KeyM},
	}
}

// InputSystem reads the ebiten keyboard and mouse
type InputSystem struct {
	bindings KeyBindings
}

// NewInputSystem creates a new input system
func NewInputSystem(bindings KeyBindings) *InputSystem {
	return &InputSystem{bindings: bindings}
}

// Bindings returns the active key bindings
func (s *InputSystem) Bindings() KeyBindings {
	return s.bindings
}

// GetInput reads the current input state. Directions are level-triggered,
// everything else fires only on the frame the key or button goes down.
func (s *InputSystem) GetInput() InputState {
	mx, my := ebiten.CursorPosition()
	return InputState{
		Left:        anyPressed(s.bindings.Left),
		Right:       anyPressed(s.bindings.Right),
		Up:          anyPressed(s.bindings.Up),
		Down:        anyPressed(s.bindings.Down),
		Click:       inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		MouseX:      mx,
		MouseY:      my,
		Activate:    anyJustPressed(s.bindings.Activate),
		ToggleSound: anyJustPressed(s.bindings.ToggleSound),
	}
}

func anyPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

func anyJustPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}
