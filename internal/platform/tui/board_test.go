package tui

import (
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/driver"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

func newTestPainter() *Painter {
	return NewPainter(DefaultTheme(), lipgloss.NewRenderer(io.Discard))
}

func boardFrame(w, h int) driver.Frame {
	return driver.Frame{
		TermWidth:  w + driver.BorderMargin,
		TermHeight: h + driver.BorderMargin,
		HasBoard:   true,
		Board: snake.Snapshot{
			Width:  w,
			Height: h,
			Snake:  []core.Point{{X: 2, Y: 2}, {X: 1, Y: 2}, {X: 0, Y: 2}},
			Food:   core.Point{X: 5, Y: 3},
			Score:  3,
			State:  snake.StatePlaying,
		},
	}
}

func screenText(p *Painter) string {
	return p.screen.String()
}

func TestPaintBoard(t *testing.T) {
	p := newTestPainter()
	f := boardFrame(40, 10)
	theme := DefaultTheme()

	p.draw(f)

	assert.Equal(t, 42, p.screen.Width())
	assert.Equal(t, 12, p.screen.Height())

	// Frame corners
	assert.Equal(t, '┌', p.screen.Get(0, 0))
	assert.Equal(t, '┘', p.screen.Get(41, 11))

	// Board cells sit one cell inside the frame.
	assert.Equal(t, core.Cell{Rune: theme.HeadGlyph, Color: theme.Head}, p.screen.GetCell(3, 3))
	assert.Equal(t, core.Cell{Rune: theme.BodyGlyph, Color: theme.Body}, p.screen.GetCell(2, 3))
	assert.Equal(t, core.Cell{Rune: theme.BodyGlyph, Color: theme.Body}, p.screen.GetCell(1, 3))
	assert.Equal(t, core.Cell{Rune: theme.FoodGlyph, Color: theme.Food}, p.screen.GetCell(6, 4))

	assert.Contains(t, p.screen.Row(0), "Snake")
	assert.Contains(t, p.screen.Row(0), "esc pause")
	assert.Contains(t, p.screen.Row(11), "Score: 3")
	assert.NotContains(t, screenText(p), "PAUSED")
}

func TestPaintOverlays(t *testing.T) {
	p := newTestPainter()

	paused := boardFrame(40, 10)
	paused.Paused = true
	p.draw(paused)
	assert.Contains(t, screenText(p), "PAUSED")
	assert.Contains(t, p.screen.Row(0), "esc resume")

	over := paused
	over.Board.State = snake.StateGameOver
	p.draw(over)
	text := screenText(p)
	assert.Contains(t, text, "GAME OVER")
	assert.Contains(t, text, "space - restart")
	assert.NotContains(t, text, "PAUSED")

	won := over
	won.Board.State = snake.StateWin
	p.draw(won)
	assert.Contains(t, screenText(p), "YOU WIN")
}

func TestPaintTooSmall(t *testing.T) {
	p := newTestPainter()

	p.draw(driver.Frame{TermWidth: 30, TermHeight: 2, TooSmall: true})

	assert.Contains(t, p.screen.Row(1), tooSmallMessage)
	assert.NotContains(t, screenText(p), "Score")
}

func TestPaintWithoutBoard(t *testing.T) {
	p := newTestPainter()

	p.draw(driver.Frame{TermWidth: 30, TermHeight: 10})

	assert.Contains(t, p.screen.Row(5), waitingMessage)
	assert.NotContains(t, screenText(p), tooSmallMessage)
}

func TestPaintTinyTerminalClips(t *testing.T) {
	p := newTestPainter()
	f := boardFrame(1, 1)
	f.Board.Snake = []core.Point{{X: 0, Y: 0}}
	f.Board.Food = core.Point{X: 0, Y: 0}

	assert.NotPanics(t, func() { p.draw(f) })
	assert.Equal(t, DefaultTheme().HeadGlyph, p.screen.Get(1, 1))

	f.Board.State = snake.StateGameOver
	assert.NotPanics(t, func() { p.draw(f) })
	assert.Equal(t, 3, p.screen.Width())
}

func TestPaintPlainRenderer(t *testing.T) {
	p := newTestPainter()

	out := p.Paint(boardFrame(40, 10))

	lines := strings.Split(out, "\n")
	assert.Len(t, lines, 12)
	assert.Contains(t, out, "Score: 3")
}
