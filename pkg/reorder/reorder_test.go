package reorder

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShouldSwap(t *testing.T) {
	box := Box{Top: 10, Bottom: 20} // midpoint offset 5

	tests := []struct {
		name       string
		drag       int
		hover      int
		pointerY   float64
		wantSwap   bool
	}{
		{"same index never swaps", 2, 2, 19, false},
		{"down, above midpoint", 0, 1, 12, false},
		{"down, at midpoint", 0, 1, 15, true},
		{"down, below midpoint", 0, 1, 18, true},
		{"up, below midpoint", 3, 2, 18, false},
		{"up, at midpoint", 3, 2, 15, true},
		{"up, above midpoint", 3, 2, 11, true},
		{"down skipping rows, past midpoint", 0, 3, 16, true},
		{"up skipping rows, still below", 5, 1, 19, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantSwap, ShouldSwap(tt.drag, tt.hover, tt.pointerY, box))
		})
	}
}

// sliceTarget is a Reorderer over a plain slice
type sliceTarget struct {
	items []string
	calls int
}

func (s *sliceTarget) ReorderFields(src, dst int) bool {
	if src < 0 || src >= len(s.items) || dst < 0 || dst >= len(s.items) || src == dst {
		return false
	}
	s.calls++
	item := s.items[src]
	rest := append(append([]string{}, s.items[:src]...), s.items[src+1:]...)
	s.items = append(rest[:dst], append([]string{item}, rest[dst:]...)...)
	return true
}

func rowBox(i int) Box {
	return Box{Top: float64(i * 3), Bottom: float64(i*3 + 3)}
}

func TestGesture_DragDown(t *testing.T) {
	target := &sliceTarget{items: []string{"A", "B", "C"}}
	g := Begin(target, 0)

	// Enter B's top half: nothing happens
	assert.False(t, g.Hover(1, 3.2, rowBox(1)))
	assert.Equal(t, []string{"A", "B", "C"}, target.items)

	// Cross B's midpoint: A and B swap
	assert.True(t, g.Hover(1, 4.6, rowBox(1)))
	assert.Equal(t, []string{"B", "A", "C"}, target.items)
	assert.Equal(t, 1, g.Index())

	// Hovering the row A now occupies is a no-op
	assert.False(t, g.Hover(1, 4.8, rowBox(1)))

	// Cross C's midpoint
	assert.True(t, g.Hover(2, 7.9, rowBox(2)))
	assert.Equal(t, []string{"B", "C", "A"}, target.items)

	g.End()
	assert.False(t, g.Active())
	assert.True(t, g.Moved())
	assert.Equal(t, 0, g.Origin())
	assert.Equal(t, 2, target.calls)
}

func TestGesture_DragUp(t *testing.T) {
	target := &sliceTarget{items: []string{"A", "B", "C"}}
	g := Begin(target, 2)

	assert.False(t, g.Hover(1, 5.5, rowBox(1)), "still in lower half")
	assert.True(t, g.Hover(1, 4.0, rowBox(1)))
	assert.Equal(t, []string{"A", "C", "B"}, target.items)
}

func TestGesture_RepeatedHoverIsIdempotent(t *testing.T) {
	target := &sliceTarget{items: []string{"A", "B", "C", "D"}}
	g := Begin(target, 1)

	for i := 0; i < 100; i++ {
		g.Hover(2, 6.1, rowBox(2)) // above midpoint of row 2 while moving down
	}
	assert.Equal(t, 0, target.calls)
	assert.Equal(t, []string{"A", "B", "C", "D"}, target.items)
}

func TestGesture_NoOscillationAtBoundary(t *testing.T) {
	target := &sliceTarget{items: []string{"A", "B"}}
	g := Begin(target, 0)

	assert.True(t, g.Hover(1, 4.5, rowBox(1)))
	// A now sits at index 1; wiggling around the same midpoint must not
	// flip it back because the hovered row is A's own row.
	for _, y := range []float64{4.4, 4.5, 4.6, 4.5} {
		assert.False(t, g.Hover(1, y, rowBox(1)))
	}
	assert.Equal(t, []string{"B", "A"}, target.items)
}

func TestGesture_PointerOutsideBox(t *testing.T) {
	target := &sliceTarget{items: []string{"A", "B", "C"}}
	g := Begin(target, 0)

	// past row 1's midpoint, but the box handed in is row 2
	assert.False(t, g.Hover(2, 5.0, rowBox(2)))
	assert.False(t, g.Hover(1, 6.0, rowBox(1)), "bottom edge is exclusive")
	assert.Zero(t, target.calls)

	assert.True(t, g.Hover(1, 5.0, rowBox(1)))
}

func TestGesture_EndedIgnoresHover(t *testing.T) {
	target := &sliceTarget{items: []string{"A", "B"}}
	g := Begin(target, 0)
	g.End()

	assert.False(t, g.Hover(1, 5, rowBox(1)))
	assert.Zero(t, target.calls)

	var nilGesture *Gesture
	assert.False(t, nilGesture.Active())
	assert.False(t, nilGesture.Hover(1, 5, rowBox(1)))
	assert.NotPanics(t, nilGesture.End)
}

func TestBox(t *testing.T) {
	b := Box{Top: 4, Bottom: 7}
	assert.Equal(t, float64(3), b.Height())
	assert.True(t, b.Contains(4))
	assert.True(t, b.Contains(6.9))
	assert.False(t, b.Contains(7))
}
