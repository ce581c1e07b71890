package session

import (
	"github.com/younwookim/herotiles/internal/application/state"
	"github.com/younwookim/herotiles/internal/domain/entity"
)

// ButtonID identifies a UI button
type ButtonID int

const (
	ButtonStart ButtonID = iota
	ButtonRestart
	ButtonSound
)

// String returns the string representation of the button
func (b ButtonID) String() string {
	switch b {
	case ButtonStart:
		return "Start"
	case ButtonRestart:
		return "Restart"
	case ButtonSound:
		return "Sound"
	default:
		return "Unknown"
	}
}

// Button is a clickable rectangle in screen coordinates
type Button struct {
	ID    ButtonID
	Label string
	Rect  entity.Rect
}

const (
	buttonWidth  = 120
	buttonHeight = 28
	buttonGap    = 8
)

// Buttons returns the buttons shown in the current state, primary first
func (s *GameSession) Buttons() []Button {
	w, h := s.screenSize()
	cx, cy := w/2, h/2

	centered := func(id ButtonID, label string, y float64) Button {
		return Button{
			ID:    id,
			Label: label,
			Rect:  entity.Rect{X: cx - buttonWidth/2, Y: y, W: buttonWidth, H: buttonHeight},
		}
	}

	switch s.State {
	case state.StateMenu:
		return []Button{
			centered(ButtonStart, "Start", cy),
			centered(ButtonSound, s.soundLabel(), cy+buttonHeight+buttonGap),
		}
	case state.StatePlaying:
		return []Button{{
			ID:    ButtonSound,
			Label: s.soundLabel(),
			Rect:  entity.Rect{X: w - 90, Y: 6, W: 84, H: 18},
		}}
	case state.StateGameOver, state.StateVictory:
		return []Button{centered(ButtonRestart, "Restart", cy+buttonGap)}
	default:
		return nil
	}
}

func (s *GameSession) soundLabel() string {
	if s.SoundEnabled {
		return "Sound: On"
	}
	return "Sound: Off"
}

// HandleClick presses the button under (x, y), if any.
// It reports whether a button was hit.
func (s *GameSession) HandleClick(x, y float64) bool {
	for _, b := range s.Buttons() {
		if b.Rect.Contains(x, y) {
			s.press(b.ID)
			return true
		}
	}
	return false
}

// Activate presses the primary button: Start in the menu, Restart once the
// game has ended. It does nothing while playing.
func (s *GameSession) Activate() bool {
	switch {
	case s.State == state.StateMenu:
		s.press(ButtonStart)
		return true
	case s.State.IsFinished():
		s.press(ButtonRestart)
		return true
	default:
		return false
	}
}

func (s *GameSession) press(id ButtonID) {
	switch id {
	case ButtonStart:
		s.playSound(SoundClick)
		s.Start()
	case ButtonRestart:
		s.playSound(SoundClick)
		s.Restart()
	case ButtonSound:
		s.ToggleSound()
		s.playSound(SoundClick)
	}
}

func (s *GameSession) screenSize() (w, h float64) {
	return s.TileMap.Width(), s.TileMap.Height()
}
