package testutil

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Key builds a key-down for a single rune, as the terminal reports it.
// Upper-case letters are what a shifted press produces.
func Key(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

// Keys builds one key message per rune in s.
func Keys(s string) []tea.Msg {
	msgs := make([]tea.Msg, 0, len(s))
	for _, r := range s {
		msgs = append(msgs, Key(r))
	}
	return msgs
}

// Special builds a key message for a non-rune key such as tea.KeyEsc.
func Special(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

// Press builds a mouse button press at cell (x, y).
func Press(x, y int, button tea.MouseButton) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: button}
}

// LeftClick is a primary-button press at (x, y).
func LeftClick(x, y int) tea.MouseMsg {
	return Press(x, y, tea.MouseButtonLeft)
}

// RightClick is a secondary-button press at (x, y).
func RightClick(x, y int) tea.MouseMsg {
	return Press(x, y, tea.MouseButtonRight)
}

// WheelDown is a scroll-down event at (x, y).
func WheelDown(x, y int) tea.MouseMsg {
	return Press(x, y, tea.MouseButtonWheelDown)
}

// Resize builds a window size message.
func Resize(width, height int) tea.WindowSizeMsg {
	return tea.WindowSizeMsg{Width: width, Height: height}
}
