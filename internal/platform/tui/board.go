package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/driver"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

const (
	title           = " Snake "
	tooSmallMessage = "Terminal too small"
	waitingMessage  = "Starting..."
)

// Painter draws driver frames onto a screen buffer and styles the result.
// It is used from the driver goroutine only.
type Painter struct {
	theme  Theme
	styles Styles
	keys   KeyMap
	help   help.Model
	screen *core.Screen
}

// NewPainter creates a painter whose output is styled for r.
func NewPainter(theme Theme, r *lipgloss.Renderer) *Painter {
	plain := r.NewStyle()
	h := help.New()
	h.Styles = help.Styles{
		Ellipsis:       plain,
		ShortKey:       plain,
		ShortDesc:      plain,
		ShortSeparator: plain,
		FullKey:        plain,
		FullDesc:       plain,
		FullSeparator:  plain,
	}

	return &Painter{
		theme:  theme,
		styles: NewStyles(r),
		keys:   DefaultKeyMap(),
		help:   h,
		screen: core.NewScreen(0, 0),
	}
}

// Paint renders f to a styled string.
func (p *Painter) Paint(f driver.Frame) string {
	p.draw(f)
	return p.styles.RenderScreen(p.screen)
}

// draw fills the screen buffer for f.
func (p *Painter) draw(f driver.Frame) {
	p.screen.Resize(f.TermWidth, f.TermHeight)

	switch {
	case f.TooSmall:
		p.screen.DrawTextCentered(f.TermHeight/2, tooSmallMessage, p.theme.Overlay)
		return
	case !f.HasBoard:
		p.screen.DrawTextCentered(f.TermHeight/2, waitingMessage, p.theme.Title)
		return
	}

	b := f.Board
	frame := core.NewRect(0, 0, b.Width+2, b.Height+2)
	p.screen.DrawBox(frame, p.theme.Border)
	p.drawTitle(frame, f)

	p.screen.SetCell(b.Food.X+1, b.Food.Y+1, p.theme.FoodGlyph, p.theme.Food)
	for i := len(b.Snake) - 1; i >= 1; i-- {
		seg := b.Snake[i]
		p.screen.SetCell(seg.X+1, seg.Y+1, p.theme.BodyGlyph, p.theme.Body)
	}
	if head, ok := b.Head(); ok {
		p.screen.SetCell(head.X+1, head.Y+1, p.theme.HeadGlyph, p.theme.Head)
	}

	score := fmt.Sprintf(" Score: %d ", b.Score)
	x := (frame.W - len([]rune(score))) / 2
	p.screen.DrawText(x, frame.Bottom()-1, score, p.theme.Score)

	switch {
	case b.Terminated():
		heading := "GAME OVER"
		if b.State == snake.StateWin {
			heading = "YOU WIN"
		}
		p.drawOverlay(frame, heading, "space - restart", "esc - quit")
	case f.Paused:
		p.drawOverlay(frame, "PAUSED", "esc - resume")
	}
}

// drawTitle writes the title and the key help into the top border.
func (p *Painter) drawTitle(frame core.Rect, f driver.Frame) {
	x := 2
	p.screen.DrawText(x, frame.Y, title, p.theme.Title)
	x += len(title)

	room := frame.W - x - 3
	if room <= 0 {
		return
	}
	p.help.Width = room
	hint := p.help.ShortHelpView(p.keys.helpFor(f))
	if hint == "" {
		return
	}
	p.screen.DrawText(x+1, frame.Y, hint, p.theme.Border)
}

// drawOverlay draws a boxed panel centered on frame. The first line is the
// heading, the rest are hints.
func (p *Painter) drawOverlay(frame core.Rect, heading string, hints ...string) {
	lines := append([]string{heading}, hints...)
	width := 0
	for _, l := range lines {
		width = max(width, len([]rune(l)))
	}

	box := core.NewRect(0, 0, width+4, len(lines)+2)
	cx, cy := frame.Center()
	box.X = cx - box.W/2
	box.Y = cy - box.H/2

	p.screen.DrawRect(box, ' ', core.ColorDefault)
	p.screen.DrawBox(box, p.theme.Overlay)
	for i, l := range lines {
		c := p.theme.Title
		if i == 0 {
			c = p.theme.Overlay
		}
		lx := box.X + (box.W-len([]rune(l)))/2
		p.screen.DrawText(lx, box.Y+1+i, l, c)
	}
}
