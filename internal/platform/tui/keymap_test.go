package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/driver"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

func TestTranslate(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.KeyEvent
	}{
		{"up", tea.KeyMsg{Type: tea.KeyUp}, core.KeyEvent{Code: core.KeyUp}},
		{"down", tea.KeyMsg{Type: tea.KeyDown}, core.KeyEvent{Code: core.KeyDown}},
		{"left", tea.KeyMsg{Type: tea.KeyLeft}, core.KeyEvent{Code: core.KeyLeft}},
		{"right", tea.KeyMsg{Type: tea.KeyRight}, core.KeyEvent{Code: core.KeyRight}},
		{"escape", tea.KeyMsg{Type: tea.KeyEsc}, core.KeyEvent{Code: core.KeyEscape}},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.KeyEvent{Code: core.KeySpace}},
		{"rune", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}, core.KeyEvent{Code: core.KeyRune, Rune: 'q'}},
		{"tab", tea.KeyMsg{Type: tea.KeyTab}, core.KeyEvent{Code: core.KeyOther}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := km.Translate(tt.msg)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, core.KeyPress, got.Kind)
		})
	}
}

func TestHelpForState(t *testing.T) {
	km := DefaultKeyMap()
	board := snake.Snapshot{Width: 10, Height: 10, Snake: []core.Point{{X: 5, Y: 5}}, State: snake.StatePlaying}

	helpKeys := func(f driver.Frame) []string {
		var out []string
		for _, b := range km.helpFor(f) {
			out = append(out, b.Help().Key+" "+b.Help().Desc)
		}
		return out
	}

	active := driver.Frame{Board: board, HasBoard: true}
	assert.Equal(t, []string{"arrows move", "esc pause"}, helpKeys(active))

	paused := active
	paused.Paused = true
	assert.Equal(t, []string{"esc resume"}, helpKeys(paused))

	over := paused
	over.Board.State = snake.StateGameOver
	assert.Equal(t, []string{"space restart", "esc quit"}, helpKeys(over))

	won := active
	won.Board.State = snake.StateWin
	assert.Equal(t, []string{"space restart", "esc quit"}, helpKeys(won))

	// A snapshot without a state counts as a running round.
	bare := driver.Frame{Board: snake.Snapshot{Width: 10, Height: 10}, HasBoard: true}
	assert.Equal(t, []string{"arrows move", "esc pause"}, helpKeys(bare))

	// Relabelled copies leave the key map untouched.
	assert.Equal(t, "pause", km.Escape.Help().Desc)
}
