// Package tui connects the snake driver loop to a Bubble Tea terminal program,
// locally or over SSH.
package tui

import tea "github.com/charmbracelet/bubbletea"

// frameMsg carries a fully rendered frame from the driver goroutine.
type frameMsg string

// loopDoneMsg is sent once the driver loop has exited.
type loopDoneMsg struct{}

// waitForFrame blocks until the next frame is published or the loop ends.
func waitForFrame(t *Terminal) tea.Cmd {
	return func() tea.Msg {
		select {
		case s := <-t.frames:
			return frameMsg(s)
		case <-t.finished:
			return loopDoneMsg{}
		}
	}
}
