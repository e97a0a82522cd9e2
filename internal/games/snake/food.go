package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// maxFoodAttempts bounds rejection sampling before falling back to an
// enumeration of free cells.
const maxFoodAttempts = 64

// spawnFood places food on a uniformly random free cell. Random cells are
// re-rolled while they hit the snake; after maxFoodAttempts misses the free
// cells are enumerated and one is picked uniformly. A board with no free cell
// ends the round as a win.
func (g *Game) spawnFood() {
	cells := g.width * g.height
	if g.occupied.Len() >= cells {
		g.won = true
		g.terminated = true
		return
	}

	for range maxFoodAttempts {
		p := core.Point{X: g.rng.Intn(g.width), Y: g.rng.Intn(g.height)}
		if !g.isSnakeAt(p) {
			g.food = p
			return
		}
	}

	// Collect all empty cells
	free := make([]core.Point, 0, cells-g.occupied.Len())
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			p := core.Point{X: x, Y: y}
			if !g.isSnakeAt(p) {
				free = append(free, p)
			}
		}
	}
	g.food = free[g.rng.Intn(len(free))]
}
