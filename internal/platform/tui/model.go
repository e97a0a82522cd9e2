package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/driver"
)

// Model is the Bubble Tea model for one snake session. It only forwards
// input and shows the frames produced by the driver loop.
type Model struct {
	term     *Terminal
	keys     KeyMap
	view     string
	quitting bool
}

// NewModel creates a model bound to term.
func NewModel(term *Terminal) Model {
	return Model{
		term: term,
		keys: DefaultKeyMap(),
	}
}

// Init starts waiting for frames.
func (m Model) Init() tea.Cmd {
	return waitForFrame(m.term)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.term.setSize(msg.Width, msg.Height)
		return m, nil

	case frameMsg:
		m.view = string(msg)
		return m, waitForFrame(m.term)

	case loopDoneMsg:
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// handleKey forwards a key to the driver as a press followed by a release.
// Terminals report presses only.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		m.term.Close()
		m.quitting = true
		return m, tea.Quit
	}

	ev := m.keys.Translate(msg)
	ev.Kind = core.KeyPress
	m.term.pushKey(ev)
	ev.Kind = core.KeyRelease
	m.term.pushKey(ev)
	return m, nil
}

// View returns the latest frame.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return m.view
}

// Run plays snake in the local terminal until the player quits.
// A zero cfg.Seed picks a time-based seed.
func Run(ctx context.Context, cfg core.RuntimeConfig, theme Theme, logger *log.Logger) error {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	term := NewTerminal(cfg.ScreenW, cfg.ScreenH, NewPainter(theme, lipgloss.DefaultRenderer()), logger)
	d := driver.New(term, term,
		driver.WithLogger(term.logger),
		driver.WithSeed(cfg.Seed),
	)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	loopErr := make(chan error, 1)
	go func() {
		err := d.Run(ctx)
		term.Finish()
		loopErr <- err
	}()

	p := tea.NewProgram(NewModel(term), tea.WithAltScreen())
	_, runErr := p.Run()

	term.Close()
	cancel()
	err := <-loopErr

	if runErr != nil {
		return fmt.Errorf("tui: run program: %w", runErr)
	}
	if err != nil {
		return fmt.Errorf("tui: game loop: %w", err)
	}
	return nil
}
