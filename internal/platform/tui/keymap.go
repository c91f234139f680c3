package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/keysmash/internal/core"
)

// KeyMap defines the key bindings of the game screen. Every printable key
// is a letter, so only non-printable keys are bound.
type KeyMap struct {
	Start key.Binding
	Pause key.Binding
	Quit  key.Binding
	Type  key.Binding // Help entry only, letters are not matched by binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Type, k.Start, k.Pause, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Type},
		{k.Start, k.Pause, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Start: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter/click", "start/pause"),
		),
		Pause: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "pause"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		Type: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a-z…", "type the lowest letter"),
		),
	}
}

// KeyMapper translates Bubble Tea messages to game inputs.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	keys KeyMap
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{keys: DefaultKeyMap()}
}

// Keys returns the bindings for the help view.
func (km *KeyMapper) Keys() KeyMap {
	return km.keys
}

// MapKey translates a key message to an input. For a batch of runes, such
// as a paste, only the last one counts.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) core.Input {
	switch {
	case key.Matches(msg, km.keys.Quit):
		return core.Input{Action: core.ActionQuit}
	case key.Matches(msg, km.keys.Start):
		return core.Input{Action: core.ActionStart}
	case key.Matches(msg, km.keys.Pause):
		return core.Input{Action: core.ActionPause}
	}

	if msg.Type == tea.KeyRunes && len(msg.Runes) > 0 {
		return core.Typed(msg.Runes[len(msg.Runes)-1])
	}
	return core.Input{}
}

// MapMouse turns a left button press into the start trigger.
func (km *KeyMapper) MapMouse(msg tea.MouseMsg) core.Input {
	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		return core.Input{Action: core.ActionStart}
	}
	return core.Input{}
}

// MapFocus turns loss of terminal focus into the hide action.
func (km *KeyMapper) MapFocus(msg tea.Msg) core.Input {
	if _, ok := msg.(tea.BlurMsg); ok {
		return core.Input{Action: core.ActionHide}
	}
	return core.Input{}
}
