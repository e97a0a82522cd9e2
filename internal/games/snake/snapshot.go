package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// StateType represents the current round state.
type StateType string

const (
	StatePlaying  StateType = "playing"
	StateGameOver StateType = "game_over"
	StateWin      StateType = "win"
)

// Snapshot is a read-only copy of the game state handed to renderers.
type Snapshot struct {
	Width  int
	Height int
	Snake  []core.Point // Head first
	Food   core.Point
	Dir    core.Direction
	Score  int
	State  StateType
}

// Snapshot returns a copy of the current state that shares no memory with the game.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.won:
		state = StateWin
	case g.terminated:
		state = StateGameOver
	}

	return Snapshot{
		Width:  g.width,
		Height: g.height,
		Snake:  g.Snake(),
		Food:   g.food,
		Dir:    g.dir,
		Score:  g.score,
		State:  state,
	}
}

// Terminated reports whether the snapshot was taken after the round ended.
// A zero Snapshot is not terminated.
func (s Snapshot) Terminated() bool {
	return s.State == StateGameOver || s.State == StateWin
}

// Head returns the head segment, or false for an empty snapshot.
func (s Snapshot) Head() (core.Point, bool) {
	if len(s.Snake) == 0 {
		return core.Point{}, false
	}
	return s.Snake[0], true
}
