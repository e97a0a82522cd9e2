package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/driver"
)

func newTestTerminal(w, h int) *Terminal {
	return NewTerminal(w, h, newTestPainter(), nil)
}

func TestTerminalPollEmpty(t *testing.T) {
	term := newTestTerminal(20, 10)

	_, ok, err := term.Poll()
	assert.False(t, ok)
	assert.NoError(t, err)
}

func TestModelForwardsPressAndRelease(t *testing.T) {
	term := newTestTerminal(20, 10)
	m := NewModel(term)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	assert.Nil(t, cmd)

	ev, ok, err := term.Poll()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, core.KeyEvent{Code: core.KeyLeft, Kind: core.KeyPress}, ev)

	ev, ok, err = term.Poll()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, core.KeyEvent{Code: core.KeyLeft, Kind: core.KeyRelease}, ev)

	_, ok, _ = term.Poll()
	assert.False(t, ok)
}

func TestModelCtrlCDisconnects(t *testing.T) {
	term := newTestTerminal(20, 10)
	m := NewModel(term)

	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, next.View())

	// Queued keys are still delivered before the disconnect.
	for range 2 {
		_, ok, err := term.Poll()
		assert.True(t, ok)
		assert.NoError(t, err)
	}
	_, ok, err := term.Poll()
	assert.False(t, ok)
	assert.ErrorIs(t, err, driver.ErrDisconnected)
}

func TestModelWindowSize(t *testing.T) {
	term := newTestTerminal(20, 10)
	m := NewModel(term)

	m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})

	w, h := term.Size()
	assert.Equal(t, 100, w)
	assert.Equal(t, 40, h)
}

func TestTerminalKeepsLatestFrame(t *testing.T) {
	term := newTestTerminal(22, 12)
	first := boardFrame(20, 10)
	second := boardFrame(20, 10)
	second.Board.Score = 7

	require.NoError(t, term.Draw(first))
	require.NoError(t, term.Draw(second))

	msg := waitForFrame(term)()
	frame, ok := msg.(frameMsg)
	require.True(t, ok)
	assert.Contains(t, string(frame), "Score: 7")
	assert.Empty(t, term.frames)
}

func TestModelShowsFramesAndQuitsWhenLoopEnds(t *testing.T) {
	term := newTestTerminal(22, 12)
	m := NewModel(term)

	next, cmd := m.Update(frameMsg("hello"))
	assert.NotNil(t, cmd)
	assert.Equal(t, "hello", next.View())

	term.Finish()
	assert.IsType(t, loopDoneMsg{}, waitForFrame(term)())

	_, cmd = next.Update(loopDoneMsg{})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestDriverOverTerminal(t *testing.T) {
	term := newTestTerminal(22, 12)
	m := NewModel(term)
	d := driver.New(term, term)

	done, err := d.Iterate()
	require.NoError(t, err)
	require.False(t, done)
	require.NotNil(t, d.Game())
	assert.Equal(t, 20, d.Game().Width())
	assert.Equal(t, 10, d.Game().Height())

	// Press and release: only the release acts, one event per iteration.
	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	_, _ = d.Iterate()
	assert.False(t, d.Paused())
	_, _ = d.Iterate()
	assert.True(t, d.Paused())

	m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	done, err = d.Iterate()
	assert.NoError(t, err)
	assert.True(t, done)
}
