package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ShiJbey/tilt-escape/internal/core"
)

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

	switch key {
	case "a", "left":
		return core.ActionTiltLeft, false
	case "d", "right":
		return core.ActionTiltRight, false
	case "w", "up":
		return core.ActionTiltUp, false
	case "s", "down":
		return core.ActionTiltDown, false
	case "b", "esc":
		return core.ActionBack, false
	case "p":
		return core.ActionPause, false
	case "r":
		return core.ActionRestart, false
	}

	return core.ActionNone, false
}

// IsTiltAction reports whether the action is one of the four board tilts.
// Tilt actions are treated as held keys by the input loop; everything else
// fires once per key press.
func IsTiltAction(a core.Action) bool {
	switch a {
	case core.ActionTiltLeft, core.ActionTiltRight, core.ActionTiltUp, core.ActionTiltDown:
		return true
	}
	return false
}
