package game

import (
	"mrogue/internal/grid"

	"github.com/gdamore/tcell/v2"
)

// Action represents a player-requested action.
type Action uint8

const (
	ActionNone Action = iota
	ActionMoveUp
	ActionMoveDown
	ActionMoveRight
	ActionMoveLeft
	ActionWait
	ActionToggleReveal
	ActionQuit
)

// keyToAction maps a tcell key event to an action. WASD, arrows and hjkl all
// move; up is +y in the world.
func keyToAction(ev *tcell.EventKey) Action {
	switch ev.Key() {
	case tcell.KeyUp:
		return ActionMoveUp
	case tcell.KeyDown:
		return ActionMoveDown
	case tcell.KeyRight:
		return ActionMoveRight
	case tcell.KeyLeft:
		return ActionMoveLeft
	case tcell.KeyF10:
		return ActionToggleReveal
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ActionQuit
	}

	switch ev.Rune() {
	case 'w', 'W', 'k', 'K':
		return ActionMoveUp
	case 's', 'S', 'j', 'J':
		return ActionMoveDown
	case 'd', 'D', 'l', 'L':
		return ActionMoveRight
	case 'a', 'A', 'h', 'H':
		return ActionMoveLeft
	case '.', ' ':
		return ActionWait
	case '`':
		return ActionToggleReveal
	case 'q', 'Q':
		return ActionQuit
	}
	return ActionNone
}

// actionToInput converts a movement or wait action to simulation input.
func actionToInput(a Action) (Input, bool) {
	switch a {
	case ActionMoveUp:
		return Input{Dir: grid.DirUp}, true
	case ActionMoveDown:
		return Input{Dir: grid.DirDown}, true
	case ActionMoveRight:
		return Input{Dir: grid.DirRight}, true
	case ActionMoveLeft:
		return Input{Dir: grid.DirLeft}, true
	case ActionWait:
		return Input{Wait: true}, true
	}
	return Input{}, false
}
