package state

// GameState represents the current state of the game
type GameState int

const (
	StateMenu GameState = iota
	StatePlaying
	StateGameOver
	StateVictory
)

// String returns the string representation of the game state
func (s GameState) String() string {
	switch s {
	case StateMenu:
		return "Menu"
	case StatePlaying:
		return "Playing"
	case StateGameOver:
		return "GameOver"
	case StateVictory:
		return "Victory"
	default:
		return "Unknown"
	}
}

// IsFinished reports whether the run has ended and waits for a restart
func (s GameState) IsFinished() bool {
	return s == StateGameOver || s == StateVictory
}

// Event is something that may move the game to another state
type Event int

const (
	EventStart        Event = iota // start button
	EventCaught                    // hero touched an enemy
	EventAllCollected              // last item collected
	EventRestart                   // restart button
)

// String returns the string representation of the event
func (e Event) String() string {
	switch e {
	case EventStart:
		return "Start"
	case EventCaught:
		return "Caught"
	case EventAllCollected:
		return "AllCollected"
	case EventRestart:
		return "Restart"
	default:
		return "Unknown"
	}
}

type transition struct {
	from  GameState
	event Event
}

var transitions = map[transition]GameState{
	{StateMenu, EventStart}:           StatePlaying,
	{StatePlaying, EventCaught}:       StateGameOver,
	{StatePlaying, EventAllCollected}: StateVictory,
	{StateGameOver, EventRestart}:     StateMenu,
	{StateVictory, EventRestart}:      StateMenu,
}

// Next returns the state reached from s on event e.
// ok is false (and s is returned) when e is not valid in s.
func Next(s GameState, e Event) (next GameState, ok bool) {
	next, ok = transitions[transition{s, e}]
	if !ok {
		return s, false
	}
	return next, true
}
