package game

import "github.com/gdamore/tcell/v2"

// Action represents a player-requested game action.
type Action uint8

const (
	ActionNone Action = iota
	ActionForward
	ActionBack
	ActionStrafeLeft
	ActionStrafeRight
	ActionTurnLeft
	ActionTurnRight
	ActionFire
	ActionFireProjectile
	ActionPause
	ActionReset
	ActionQuit
)

// keyToAction maps a tcell key event to a game action.
func keyToAction(ev *tcell.EventKey) Action {
	// Named keys.
	switch ev.Key() {
	case tcell.KeyUp:
		return ActionForward
	case tcell.KeyDown:
		return ActionBack
	case tcell.KeyLeft:
		return ActionTurnLeft
	case tcell.KeyRight:
		return ActionTurnRight
	case tcell.KeyEnter:
		return ActionFire
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ActionQuit
	}

	// Rune keys.
	switch ev.Rune() {
	case 'w', 'W':
		return ActionForward
	case 's', 'S':
		return ActionBack
	case 'a', 'A':
		return ActionStrafeLeft
	case 'd', 'D':
		return ActionStrafeRight
	case 'j', 'J':
		return ActionTurnLeft
	case 'l', 'L':
		return ActionTurnRight
	case ' ':
		return ActionFire
	case 'f', 'F':
		return ActionFireProjectile
	case 'p', 'P':
		return ActionPause
	case 'r', 'R':
		return ActionReset
	case 'q', 'Q':
		return ActionQuit
	}
	return ActionNone
}

// actionToStep converts a movement action to (forward, right) steps.
func actionToStep(a Action) (float64, float64) {
	switch a {
	case ActionForward:
		return 1, 0
	case ActionBack:
		return -1, 0
	case ActionStrafeLeft:
		return 0, -1
	case ActionStrafeRight:
		return 0, 1
	}
	return 0, 0
}
