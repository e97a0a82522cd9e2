package tui

import (
	"io"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/driver"
)

// keyBuffer is the capacity of the key event queue.
const keyBuffer = 64

// Terminal is the driver's view of a Bubble Tea program. It implements both
// driver.Renderer and driver.InputSource. The program side feeds keys and
// window sizes in, the driver side takes frames out.
type Terminal struct {
	painter *Painter
	logger  *log.Logger

	keys     chan core.KeyEvent
	frames   chan string // Latest undelivered frame
	done     chan struct{}
	finished chan struct{}

	closeOnce  sync.Once
	finishOnce sync.Once

	mu     sync.Mutex
	width  int
	height int
}

// NewTerminal creates a terminal of the given initial size.
func NewTerminal(width, height int, painter *Painter, logger *log.Logger) *Terminal {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Terminal{
		painter:  painter,
		logger:   logger,
		keys:     make(chan core.KeyEvent, keyBuffer),
		frames:   make(chan string, 1),
		done:     make(chan struct{}),
		finished: make(chan struct{}),
		width:    width,
		height:   height,
	}
}

// Size returns the last known terminal size.
func (t *Terminal) Size() (int, int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.width, t.height
}

// Draw paints f and publishes it, replacing any frame the UI has not
// picked up yet.
func (t *Terminal) Draw(f driver.Frame) error {
	s := t.painter.Paint(f)

	select {
	case <-t.frames:
	default:
	}
	select {
	case t.frames <- s:
	default:
	}
	return nil
}

// Poll returns the next queued key event. Once the terminal is closed and
// the queue is drained it reports driver.ErrDisconnected.
func (t *Terminal) Poll() (core.KeyEvent, bool, error) {
	select {
	case ev := <-t.keys:
		return ev, true, nil
	default:
	}

	select {
	case <-t.done:
		return core.KeyEvent{}, false, driver.ErrDisconnected
	default:
		return core.KeyEvent{}, false, nil
	}
}

// Close marks the input side as disconnected. Safe to call more than once.
func (t *Terminal) Close() {
	t.closeOnce.Do(func() { close(t.done) })
}

// Finish tells the UI that the driver loop has exited.
func (t *Terminal) Finish() {
	t.finishOnce.Do(func() { close(t.finished) })
}

// Done is closed by Close.
func (t *Terminal) Done() <-chan struct{} {
	return t.done
}

func (t *Terminal) setSize(width, height int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.width, t.height = width, height
}

// pushKey queues ev without blocking. Events are dropped when the driver
// falls behind.
func (t *Terminal) pushKey(ev core.KeyEvent) {
	select {
	case t.keys <- ev:
	default:
		t.logger.Warn("key dropped", "key", ev.Code, "kind", ev.Kind)
	}
}
