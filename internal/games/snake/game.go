// Package snake implements the authoritative Snake game state: the snake body,
// its direction, the food cell, board bounds, score and terminal state.
// It performs no I/O; the driver loop owns timing, input and rendering.
package snake

import (
	"errors"
	"math/rand"

	"github.com/kamstrup/intmap"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// ErrBoardTooSmall is returned by New when either board dimension is below one cell.
var ErrBoardTooSmall = errors.New("snake: board must be at least 1x1")

// Game holds the state of a single Snake round.
type Game struct {
	rng *rand.Rand

	// Snake state
	snake    []core.Point // Head at index 0
	occupied *intmap.Map[uint64, struct{}]
	dir      core.Direction

	food   core.Point
	width  int
	height int

	score      int
	terminated bool
	won        bool // Board filled completely, no cell left for food
}

// New creates a game on a width x height board with a single-segment snake in
// the center heading right and food at one third of each dimension.
func New(width, height int, seed int64) (*Game, error) {
	if width < 1 || height < 1 {
		return nil, ErrBoardTooSmall
	}

	g := &Game{
		rng:      rand.New(rand.NewSource(seed)),
		occupied: intmap.New[uint64, struct{}](width * height),
		dir:      core.DirRight,
		width:    width,
		height:   height,
	}
	g.pushHead(core.Point{X: width / 2, Y: height / 2})

	g.food = core.Point{X: width / 3, Y: height / 3}
	if g.isSnakeAt(g.food) {
		// Center and one-third cell coincide on 1- or 3-cell axes.
		g.spawnFood()
	}
	return g, nil
}

// Step advances the simulation by one tick. It is a no-op once terminated.
// Losing moves are detected before the body is touched, so a terminated
// snake never occupies an illegal cell.
func (g *Game) Step() {
	if g.terminated {
		return
	}

	dx, dy := g.dir.Delta()
	newHead := g.snake[0].Add(dx, dy)

	// Wall collision
	if !newHead.In(g.width, g.height) {
		g.terminated = true
		return
	}

	// Self collision, tail included
	if g.isSnakeAt(newHead) {
		g.terminated = true
		return
	}

	g.pushHead(newHead)

	if newHead == g.food {
		g.score++
		g.spawnFood()
		return // Tail kept: growth
	}
	g.popTail()
}

// ChangeDirection applies the direction-change policy. A single-segment snake
// may turn anywhere; a longer one ignores a request to reverse. The new
// direction takes effect on the next Step.
func (g *Game) ChangeDirection(d core.Direction) {
	if len(g.snake) > 1 && d == g.dir.Opposite() {
		return
	}
	g.dir = d
}

// Resize updates the board dimensions. If any segment or the food no longer
// fits inside the new bounds the game is terminated, since positions are never
// clipped or relocated. It reports whether everything fit.
func (g *Game) Resize(width, height int) bool {
	fits := g.food.In(width, height)
	for _, seg := range g.snake {
		if !seg.In(width, height) {
			fits = false
			break
		}
	}

	g.width = width
	g.height = height
	if !fits {
		g.terminated = true
	}
	return fits
}

// pushHead adds p as the new head.
func (g *Game) pushHead(p core.Point) {
	g.snake = append(g.snake, core.Point{})
	copy(g.snake[1:], g.snake)
	g.snake[0] = p
	g.occupied.Put(pointKey(p), struct{}{})
}

// popTail removes the last segment.
func (g *Game) popTail() {
	last := len(g.snake) - 1
	g.occupied.Del(pointKey(g.snake[last]))
	g.snake = g.snake[:last]
}

// isSnakeAt checks if the snake occupies the given point.
func (g *Game) isSnakeAt(p core.Point) bool {
	if !p.In(g.width, g.height) {
		return false
	}
	_, ok := g.occupied.Get(pointKey(p))
	return ok
}

// pointKey packs an in-bounds point into an intmap key.
func pointKey(p core.Point) uint64 {
	return uint64(uint32(p.X))<<32 | uint64(uint32(p.Y))
}

// Width returns the board width in cells.
func (g *Game) Width() int { return g.width }

// Height returns the board height in cells.
func (g *Game) Height() int { return g.height }

// Score returns the number of food items eaten.
func (g *Game) Score() int { return g.score }

// Terminated reports whether the round has ended.
func (g *Game) Terminated() bool { return g.terminated }

// Won reports whether the round ended because the snake filled the board.
func (g *Game) Won() bool { return g.won }

// Direction returns the current movement direction.
func (g *Game) Direction() core.Direction { return g.dir }

// Head returns the head segment.
func (g *Game) Head() core.Point { return g.snake[0] }

// Food returns the food cell.
func (g *Game) Food() core.Point { return g.food }

// Len returns the number of segments.
func (g *Game) Len() int { return len(g.snake) }

// Snake returns a copy of the body, head first.
func (g *Game) Snake() []core.Point {
	body := make([]core.Point, len(g.snake))
	copy(body, g.snake)
	return body
}

// NextSeed draws a seed from the game's RNG for the next round.
func (g *Game) NextSeed() int64 {
	return g.rng.Int63()
}
