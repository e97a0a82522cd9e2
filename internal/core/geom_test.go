package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPointIn(t *testing.T) {
	tests := []struct {
		name     string
		p        Point
		expected bool
	}{
		{"origin", Point{0, 0}, true},
		{"last cell", Point{9, 4}, true},
		{"x at width", Point{10, 0}, false},
		{"y at height", Point{0, 5}, false},
		{"negative x", Point{-1, 2}, false},
		{"negative y", Point{3, -1}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.p.In(10, 5))
		})
	}
}

func TestDirectionOpposite(t *testing.T) {
	pairs := map[Direction]Direction{
		DirUp:    DirDown,
		DirDown:  DirUp,
		DirLeft:  DirRight,
		DirRight: DirLeft,
	}
	for d, want := range pairs {
		assert.Equal(t, want, d.Opposite(), "%v.Opposite()", d)
	}
}

func TestDirectionDelta(t *testing.T) {
	start := Point{X: 5, Y: 5}
	tests := []struct {
		dir      Direction
		expected Point
	}{
		{DirUp, Point{5, 4}},
		{DirDown, Point{5, 6}},
		{DirLeft, Point{4, 5}},
		{DirRight, Point{6, 5}},
	}

	for _, tc := range tests {
		t.Run(tc.dir.String(), func(t *testing.T) {
			dx, dy := tc.dir.Delta()
			assert.Equal(t, tc.expected, start.Add(dx, dy))
		})
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside top", 15, 5, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, r.Contains(tc.x, tc.y))
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	assert.Equal(t, 25, r.Right())
	assert.Equal(t, 25, r.Bottom())

	cx, cy := r.Center()
	assert.Equal(t, 15, cx)
	assert.Equal(t, 17, cy)
}

func TestRectInset(t *testing.T) {
	assert.Equal(t, NewRect(1, 1, 78, 22), NewRect(0, 0, 80, 24).Inset(1))

	tiny := NewRect(0, 0, 1, 2).Inset(1)
	assert.Zero(t, tiny.W, "Inset should clamp at zero")
	assert.Zero(t, tiny.H, "Inset should clamp at zero")
}
