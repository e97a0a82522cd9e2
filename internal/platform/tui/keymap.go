package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/driver"
)

// KeyMap defines the key bindings understood by the terminal adapter.
type KeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Move    key.Binding // Help only, covers the four arrows
	Escape  key.Binding
	Restart key.Binding
	Quit    key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "right"),
		),
		Move: key.NewBinding(
			key.WithKeys("up", "down", "left", "right"),
			key.WithHelp("arrows", "move"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "restart"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Move, k.Escape, k.Restart}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Escape, k.Restart, k.Quit},
	}
}

// helpFor returns the bindings that do something in the state shown by f.
func (k KeyMap) helpFor(f driver.Frame) []key.Binding {
	switch {
	case f.TooSmall || !f.HasBoard:
		return []key.Binding{k.Quit}
	case f.Board.Terminated():
		exit := k.Escape
		exit.SetHelp("esc", "quit")
		return []key.Binding{k.Restart, exit}
	case f.Paused:
		resume := k.Escape
		resume.SetHelp("esc", "resume")
		return []key.Binding{resume}
	default:
		return []key.Binding{k.Move, k.Escape}
	}
}

// Translate converts a Bubble Tea key message to a core key code.
// The returned event has kind KeyPress.
func (k KeyMap) Translate(msg tea.KeyMsg) core.KeyEvent {
	switch {
	case key.Matches(msg, k.Up):
		return core.KeyEvent{Code: core.KeyUp}
	case key.Matches(msg, k.Down):
		return core.KeyEvent{Code: core.KeyDown}
	case key.Matches(msg, k.Left):
		return core.KeyEvent{Code: core.KeyLeft}
	case key.Matches(msg, k.Right):
		return core.KeyEvent{Code: core.KeyRight}
	case key.Matches(msg, k.Escape):
		return core.KeyEvent{Code: core.KeyEscape}
	case key.Matches(msg, k.Restart):
		return core.KeyEvent{Code: core.KeySpace}
	}

	if msg.Type == tea.KeyRunes && len(msg.Runes) == 1 {
		return core.KeyEvent{Code: core.KeyRune, Rune: msg.Runes[0]}
	}
	return core.KeyEvent{Code: core.KeyOther}
}
