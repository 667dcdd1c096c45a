package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/arcade-demos/internal/core"
)

// HoldTicks is how long a directional key stays pressed after a key event.
// Terminals report no key release, so a held key is seen as repeated
// presses; the hold window bridges the gap between them.
const HoldTicks = 8

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a game action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	key := msg.String()

	// Global quit keys
	switch key {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	}

	// Game/menu actions
	switch key {
	case "w", "up":
		return core.ActionUp, false
	case "s", "down":
		return core.ActionDown, false
	case "a", "left":
		return core.ActionLeft, false
	case "d", "right":
		return core.ActionRight, false
	case " ":
		return core.ActionFire, false
	case "enter":
		return core.ActionConfirm, false
	case "b", "esc":
		return core.ActionBack, false
	case "p":
		return core.ActionPause, false
	case "r":
		return core.ActionRestart, false
	}

	return core.ActionNone, false
}

// IsHeld reports whether an action keeps firing for HoldTicks after its key.
func IsHeld(a core.Action) bool {
	switch a {
	case core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight, core.ActionFire:
		return true
	}
	return false
}

// MapMouse returns the clicked cell for a left-button press.
func (km *KeyMapper) MapMouse(msg tea.MouseMsg) (core.Click, bool) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return core.Click{}, false
	}
	return core.Click{X: msg.X, Y: msg.Y}, true
}

// HeldKeys tracks actions that stay active over several ticks.
type HeldKeys map[core.Action]int

// Press (re)starts the hold window for a.
func (h HeldKeys) Press(a core.Action) {
	// Opposite directions cancel each other so a turn is immediate.
	switch a {
	case core.ActionLeft:
		delete(h, core.ActionRight)
	case core.ActionRight:
		delete(h, core.ActionLeft)
	case core.ActionUp:
		delete(h, core.ActionDown)
	case core.ActionDown:
		delete(h, core.ActionUp)
	}
	h[a] = HoldTicks
}

// Apply sets every held action on frame and ages the hold windows by one tick.
func (h HeldKeys) Apply(frame *core.InputFrame) {
	for a, left := range h {
		frame.Set(a)
		if left <= 1 {
			delete(h, a)
		} else {
			h[a] = left - 1
		}
	}
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
	MenuActionScoreboard
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	key := msg.String()

	switch key {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}

	return MenuActionNone
}
