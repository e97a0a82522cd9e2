// Package driver runs the Snake game loop. It owns the game state, the pause
// flag and the simulation tick timer, and interleaves rendering, input
// handling and simulation on a single goroutine.
package driver

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

const (
	// TickInterval is the fixed simulation step period.
	TickInterval = 120 * time.Millisecond

	// IdleInterval is the pause between loop iterations.
	IdleInterval = 10 * time.Millisecond

	// BorderMargin is subtracted from each terminal axis to get the board size
	// (one cell of frame on each side).
	BorderMargin = 2
)

// ErrDisconnected is returned by an InputSource whose event stream has ended.
var ErrDisconnected = errors.New("driver: input source disconnected")

// Frame is everything a Renderer needs to draw one screen.
type Frame struct {
	TermWidth  int
	TermHeight int

	// Board is only meaningful when HasBoard is set.
	Board    snake.Snapshot
	HasBoard bool

	Paused   bool
	TooSmall bool // Terminal leaves no room for a 1x1 board
}

// Renderer draws frames and reports the current terminal size.
type Renderer interface {
	Size() (width, height int)
	Draw(f Frame) error
}

// InputSource yields raw key events without blocking.
// ok is false when no event is pending. A closed source returns ErrDisconnected.
type InputSource interface {
	Poll() (ev core.KeyEvent, ok bool, err error)
}

// Clock abstracts time for the loop.
type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}

type systemClock struct{}

func (systemClock) Now() time.Time        { return time.Now() }
func (systemClock) Sleep(d time.Duration) { time.Sleep(d) }

// Option configures a Driver.
type Option func(*Driver)

// WithClock replaces the wall clock, mainly for tests.
func WithClock(c Clock) Option {
	return func(d *Driver) { d.clock = c }
}

// WithLogger sets the logger for lifecycle events.
func WithLogger(l *log.Logger) Option {
	return func(d *Driver) { d.logger = l }
}

// WithSeed sets the RNG seed of the first round.
func WithSeed(seed int64) Option {
	return func(d *Driver) { d.seed = seed }
}

// Driver is the game loop. It is not safe for concurrent use; Run owns it.
type Driver struct {
	renderer Renderer
	input    InputSource
	clock    Clock
	logger   *log.Logger
	seed     int64

	game     *snake.Game // nil until the first board size is known
	paused   bool
	lastTick time.Time

	rejected *core.Point // Last board size startGame refused (X width, Y height)
}

// New creates a driver reading from input and drawing to renderer.
func New(renderer Renderer, input InputSource, opts ...Option) *Driver {
	d := &Driver{
		renderer: renderer,
		input:    input,
		clock:    systemClock{},
		logger:   log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(d)
	}
	d.lastTick = d.clock.Now()
	return d
}

// Run loops until the player quits from the game-over screen, the input
// source disconnects or ctx is cancelled. Only a renderer failure or an
// unexpected input error is returned.
func (d *Driver) Run(ctx context.Context) error {
	d.logger.Info("loop started", "tick", TickInterval)
	for {
		if err := ctx.Err(); err != nil {
			d.logger.Info("loop stopped", "reason", "context done")
			return nil
		}

		done, err := d.Iterate()
		if err != nil {
			d.logger.Error("loop failed", "error", err)
			return err
		}
		if done {
			return nil
		}

		d.clock.Sleep(IdleInterval)
	}
}

// Iterate runs one loop iteration: render, input, simulate.
// done is true when the loop should exit.
func (d *Driver) Iterate() (done bool, err error) {
	if err := d.render(); err != nil {
		return false, err
	}

	done, err = d.handleInput()
	if done || err != nil {
		return done, err
	}

	d.simulate()
	return false, nil
}

// Game returns the current game, or nil before the first render.
func (d *Driver) Game() *snake.Game {
	return d.game
}

// Paused reports whether the simulation is paused.
func (d *Driver) Paused() bool {
	return d.paused
}

// render adapts the board to the terminal size and draws a frame.
func (d *Driver) render() error {
	termW, termH := d.renderer.Size()
	boardW, boardH := termW-BorderMargin, termH-BorderMargin

	switch {
	case d.game == nil:
		d.startGame(boardW, boardH, d.seed)
	case boardW != d.game.Width() || boardH != d.game.Height():
		d.resize(boardW, boardH)
	}

	frame := Frame{
		TermWidth:  termW,
		TermHeight: termH,
		Paused:     d.paused,
		TooSmall:   boardW < 1 || boardH < 1,
	}
	if d.game != nil {
		frame.Board = d.game.Snapshot()
		frame.HasBoard = true
	}

	if err := d.renderer.Draw(frame); err != nil {
		return fmt.Errorf("driver: draw frame: %w", err)
	}
	return nil
}

// startGame replaces the current game with a fresh one. On a board below
// 1x1 the current game (if any) is kept.
func (d *Driver) startGame(width, height int, seed int64) bool {
	g, err := snake.New(width, height, seed)
	if err != nil {
		size := core.Point{X: width, Y: height}
		if d.rejected == nil || *d.rejected != size {
			d.logger.Debug("cannot start game", "width", width, "height", height, "error", err)
			d.rejected = &size
		}
		return false
	}

	d.rejected = nil
	d.game = g
	d.paused = false
	d.lastTick = d.clock.Now()
	d.logger.Info("game started", "width", width, "height", height)
	return true
}

// resize applies new board dimensions and always pauses.
func (d *Driver) resize(width, height int) {
	oldW, oldH := d.game.Width(), d.game.Height()
	wasOver := d.game.Terminated()

	fits := d.game.Resize(width, height)
	d.paused = true

	d.logger.Info("board resized",
		"from", fmt.Sprintf("%dx%d", oldW, oldH),
		"to", fmt.Sprintf("%dx%d", width, height),
		"fits", fits,
	)
	if !wasOver && d.game.Terminated() {
		d.logGameOver("resize")
	}
}

// handleInput drains at most one event and dispatches key releases by state.
func (d *Driver) handleInput() (done bool, err error) {
	ev, ok, err := d.input.Poll()
	if err != nil {
		if errors.Is(err, ErrDisconnected) {
			d.logger.Info("loop stopped", "reason", "input disconnected")
			return true, nil
		}
		return true, fmt.Errorf("driver: poll input: %w", err)
	}
	if !ok || !ev.Released() || d.game == nil {
		return false, nil
	}

	switch {
	case d.game.Terminated():
		switch ev.Code {
		case core.KeySpace:
			if d.startGame(d.game.Width(), d.game.Height(), d.game.NextSeed()) {
				d.logger.Info("game restarted")
			}
		case core.KeyEscape:
			d.logger.Info("loop stopped", "reason", "quit")
			return true, nil
		}

	case d.paused:
		if ev.Code == core.KeyEscape {
			d.paused = false
			d.logger.Debug("resumed")
		}

	default:
		if ev.Code == core.KeyEscape {
			d.paused = true
			d.logger.Debug("paused")
			return false, nil
		}
		if dir, ok := ev.Direction(); ok {
			d.game.ChangeDirection(dir)
		}
	}
	return false, nil
}

// simulate steps the game when a tick interval has elapsed.
func (d *Driver) simulate() {
	if d.game == nil || d.game.Terminated() || d.paused {
		return
	}

	now := d.clock.Now()
	if now.Sub(d.lastTick) < TickInterval {
		return
	}

	d.game.Step()
	d.lastTick = now

	if d.game.Terminated() {
		d.logGameOver("collision")
	}
}

func (d *Driver) logGameOver(cause string) {
	if d.game.Won() {
		cause = "board full"
	}
	d.logger.Info("game over",
		"cause", cause,
		"score", d.game.Score(),
		"length", d.game.Len(),
		"won", d.game.Won(),
	)
}
