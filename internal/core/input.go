package core

// Action represents a semantic input action, abstracted from physical keys,
// mouse buttons and focus changes.
type Action int

const (
	ActionNone  Action = iota
	ActionStart        // Enter or pointer press - start, restart, resume or pause
	ActionPause        // Esc - pause a running game
	ActionHide         // input surface lost focus
	ActionType         // a single printable character was typed
	ActionQuit         // Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionStart:
		return "Start"
	case ActionPause:
		return "Pause"
	case ActionHide:
		return "Hide"
	case ActionType:
		return "Type"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Input is one input event delivered to the game.
// Rune is only meaningful for ActionType.
type Input struct {
	Action Action
	Rune   rune
}

// Typed builds an ActionType input for r.
func Typed(r rune) Input {
	return Input{Action: ActionType, Rune: r}
}
