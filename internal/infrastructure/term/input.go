package term

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/younwookim/herotiles/internal/application/system"
)

// DefaultHold is how long a direction stays held after its last key event.
// Terminals report key repeats but never key releases.
const DefaultHold = 200 * time.Millisecond

type direction int

const (
	dirLeft direction = iota
	dirRight
	dirUp
	dirDown
	numDirections
)

func (d direction) opposite() direction {
	switch d {
	case dirLeft:
		return dirRight
	case dirRight:
		return dirLeft
	case dirUp:
		return dirDown
	default:
		return dirUp
	}
}

// Input turns tcell events into per-frame input snapshots
type Input struct {
	view    Viewport
	hold    time.Duration
	pressed [numDirections]time.Time
	pending system.InputState
	buttons tcell.ButtonMask
}

// NewInput creates an input tracker. hold <= 0 uses DefaultHold.
func NewInput(view Viewport, hold time.Duration) *Input {
	if hold <= 0 {
		hold = DefaultHold
	}
	return &Input{view: view, hold: hold}
}

// HandleEvent records ev. It returns true when the player asked to quit.
func (in *Input) HandleEvent(ev tcell.Event, now time.Time) (quit bool) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return in.handleKey(ev, now)
	case *tcell.EventMouse:
		in.handleMouse(ev)
	}
	return false
}

func (in *Input) handleKey(ev *tcell.EventKey, now time.Time) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyLeft:
		in.press(dirLeft, now)
	case tcell.KeyRight:
		in.press(dirRight, now)
	case tcell.KeyUp:
		in.press(dirUp, now)
	case tcell.KeyDown:
		in.press(dirDown, now)
	case tcell.KeyEnter:
		in.pending.Activate = true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'a', 'A', 'h':
			in.press(dirLeft, now)
		case 'd', 'D', 'l':
			in.press(dirRight, now)
		case 'w', 'W', 'k':
			in.press(dirUp, now)
		case 's', 'S', 'j':
			in.press(dirDown, now)
		case ' ':
			in.pending.Activate = true
		case 'm', 'M':
			in.pending.ToggleSound = true
		case 'q', 'Q':
			return true
		}
	}
	return false
}

// press holds d and releases its opposite, so reversing is immediate
func (in *Input) press(d direction, now time.Time) {
	in.pressed[d] = now
	in.pressed[d.opposite()] = time.Time{}
}

// handleMouse reports a click when the left button goes down
func (in *Input) handleMouse(ev *tcell.EventMouse) {
	buttons := ev.Buttons()
	down := buttons&tcell.Button1 != 0 && in.buttons&tcell.Button1 == 0
	in.buttons = buttons
	if !down {
		return
	}

	col, row := ev.Position()
	x, y := in.view.ToLogical(col, row)
	in.pending.Click = true
	in.pending.MouseX = int(x)
	in.pending.MouseY = int(y)
}

// Snapshot returns the input for the frame at now and clears one-shot events
func (in *Input) Snapshot(now time.Time) system.InputState {
	s := in.pending
	s.Left = in.held(dirLeft, now)
	s.Right = in.held(dirRight, now)
	s.Up = in.held(dirUp, now)
	s.Down = in.held(dirDown, now)

	in.pending = system.InputState{}
	return s
}

func (in *Input) held(d direction, now time.Time) bool {
	t := in.pressed[d]
	return !t.IsZero() && now.Sub(t) < in.hold
}
