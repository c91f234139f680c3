package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/keysmash/internal/core"
)

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Input
	}{
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, core.Input{Action: core.ActionQuit}},
		{"enter starts", tea.KeyMsg{Type: tea.KeyEnter}, core.Input{Action: core.ActionStart}},
		{"esc pauses", tea.KeyMsg{Type: tea.KeyEsc}, core.Input{Action: core.ActionPause}},
		{"single rune", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'f'}}, core.Typed('f')},
		{"q is a letter", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}, core.Typed('q')},
		{"batch keeps last rune", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("asdf")}, core.Typed('f')},
		{"empty batch", tea.KeyMsg{Type: tea.KeyRunes}, core.Input{}},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.Input{}},
		{"arrow", tea.KeyMsg{Type: tea.KeyUp}, core.Input{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := km.MapKey(tc.msg); got != tc.want {
				t.Errorf("MapKey(%v) = %+v, expected %+v", tc.msg, got, tc.want)
			}
		})
	}
}

func TestMapMouse(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name string
		msg  tea.MouseMsg
		want core.Action
	}{
		{"left press", tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}, core.ActionStart},
		{"left release", tea.MouseMsg{Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft}, core.ActionNone},
		{"right press", tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonRight}, core.ActionNone},
		{"wheel", tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelUp}, core.ActionNone},
		{"motion", tea.MouseMsg{Action: tea.MouseActionMotion}, core.ActionNone},
	}

	for _, tc := range tests {
		if got := km.MapMouse(tc.msg).Action; got != tc.want {
			t.Errorf("%s: action = %v, expected %v", tc.name, got, tc.want)
		}
	}
}

func TestMapFocus(t *testing.T) {
	km := NewKeyMapper()

	if got := km.MapFocus(tea.BlurMsg{}).Action; got != core.ActionHide {
		t.Errorf("blur = %v, expected Hide", got)
	}
	if got := km.MapFocus(tea.FocusMsg{}).Action; got != core.ActionNone {
		t.Errorf("focus = %v, expected None", got)
	}
}

func TestHelpListsBindings(t *testing.T) {
	keys := DefaultKeyMap()

	if len(keys.ShortHelp()) != 4 {
		t.Errorf("ShortHelp() has %d bindings, expected 4", len(keys.ShortHelp()))
	}
	for _, b := range keys.ShortHelp() {
		if !b.Enabled() {
			t.Errorf("binding %q is disabled", b.Help().Key)
		}
	}
}
