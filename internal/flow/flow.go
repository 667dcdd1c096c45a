// Package flow implements the menu / in-game / pause / game-over state
// machine shared by the demos. Transitions come from a fixed table; an event
// with no entry for the current state is ignored.
package flow

// State is the current application state.
type State int

const (
	MainMenu State = iota
	InGame
	Pause
	GameOver
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case MainMenu:
		return "MainMenu"
	case InGame:
		return "InGame"
	case Pause:
		return "Pause"
	case GameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Event drives a transition.
type Event int

const (
	EventStart Event = iota + 1
	EventPause
	EventResume
	EventTogglePause
	EventLose
	EventWin
	EventRestart
	EventMenu
)

// String returns a human-readable event name.
func (e Event) String() string {
	switch e {
	case EventStart:
		return "Start"
	case EventPause:
		return "Pause"
	case EventResume:
		return "Resume"
	case EventTogglePause:
		return "TogglePause"
	case EventLose:
		return "Lose"
	case EventWin:
		return "Win"
	case EventRestart:
		return "Restart"
	case EventMenu:
		return "Menu"
	default:
		return "Unknown"
	}
}

// Table maps a state and event to the next state.
type Table map[State]map[Event]State

// DefaultTable is the transition table used by every demo.
var DefaultTable = Table{
	MainMenu: {
		EventStart: InGame,
	},
	InGame: {
		EventPause:       Pause,
		EventTogglePause: Pause,
		EventLose:        GameOver,
		EventWin:         GameOver,
		EventMenu:        MainMenu,
	},
	Pause: {
		EventResume:      InGame,
		EventTogglePause: InGame,
		EventMenu:        MainMenu,
	},
	GameOver: {
		EventRestart: InGame,
		EventMenu:    MainMenu,
	},
}

// Machine holds the current state and its transition table.
type Machine struct {
	state State
	table Table
	won   bool
}

// New creates a machine in the given initial state using DefaultTable.
func New(initial State) *Machine {
	return NewWithTable(initial, DefaultTable)
}

// NewWithTable creates a machine with a custom transition table.
func NewWithTable(initial State, table Table) *Machine {
	return &Machine{state: initial, table: table}
}

// State returns the current state.
func (m *Machine) State() State {
	return m.state
}

// Is reports whether the machine is in state s.
func (m *Machine) Is(s State) bool {
	return m.state == s
}

// Won reports whether the last transition into GameOver was a win.
func (m *Machine) Won() bool {
	return m.won
}

// Fire applies an event and reports whether the state changed.
func (m *Machine) Fire(e Event) bool {
	next, ok := m.table[m.state][e]
	if !ok {
		return false
	}
	m.won = next == GameOver && e == EventWin
	m.state = next
	return true
}

// Reset forces the machine into state s.
func (m *Machine) Reset(s State) {
	m.state = s
	m.won = false
}

// Restart readies m for a new run, creating it when nil. A finished run goes
// back to InGame through EventRestart; any other state is forced to initial.
func Restart(m *Machine, initial State) *Machine {
	if m == nil {
		return New(initial)
	}
	if !m.Fire(EventRestart) {
		m.Reset(initial)
	}
	return m
}

// Running reports whether the simulation should advance this tick.
func (m *Machine) Running() bool {
	return m.state == InGame
}
