// Package reorder turns a continuous drag gesture into discrete index
// swaps on an ordered collection.
package reorder

// Box is the vertical extent of a drop target on screen
type Box struct {
	Top    float64
	Bottom float64
}

// Height returns Bottom-Top
func (b Box) Height() float64 {
	return b.Bottom - b.Top
}

// Contains reports whether y falls inside the box (bottom exclusive)
func (b Box) Contains(y float64) bool {
	return y >= b.Top && y < b.Bottom
}

// ShouldSwap decides whether the item currently at dragIndex should move
// to hoverIndex given the pointer's vertical position over the hovered box.
//
// The item only moves once the pointer crosses the hovered target's
// midpoint in the direction of travel. Without this hysteresis adjacent
// items would trade places on every pixel of motion.
func ShouldSwap(dragIndex, hoverIndex int, pointerY float64, box Box) bool {
	if dragIndex == hoverIndex {
		return false
	}

	middle := box.Height() / 2
	offset := pointerY - box.Top

	// Dragging down: wait until the pointer is past the middle
	if dragIndex < hoverIndex && offset < middle {
		return false
	}
	// Dragging up: wait until the pointer is above the middle
	if dragIndex > hoverIndex && offset > middle {
		return false
	}

	return true
}

// Reorderer is the collection a gesture mutates
type Reorderer interface {
	ReorderFields(src, dst int) bool
}

// Gesture tracks one drag from pick-up to drop. Every committed hover is
// applied to the target immediately, so nothing is left to do on End.
type Gesture struct {
	target Reorderer
	index  int
	origin int
	active bool
}

// Begin starts a gesture for the item at index
func Begin(target Reorderer, index int) *Gesture {
	return &Gesture{
		target: target,
		index:  index,
		origin: index,
		active: true,
	}
}

// Hover handles the pointer moving over the target at hoverIndex. It
// reports whether a reorder was committed. A pointer outside box is not
// over the target and commits nothing.
func (g *Gesture) Hover(hoverIndex int, pointerY float64, box Box) bool {
	if g == nil || !g.active || !box.Contains(pointerY) {
		return false
	}
	if !ShouldSwap(g.index, hoverIndex, pointerY, box) {
		return false
	}
	if !g.target.ReorderFields(g.index, hoverIndex) {
		return false
	}
	g.index = hoverIndex
	return true
}

// End finishes the gesture. Further hovers are ignored.
func (g *Gesture) End() {
	if g == nil {
		return
	}
	g.active = false
}

// Active reports whether the gesture is still in progress
func (g *Gesture) Active() bool {
	return g != nil && g.active
}

// Index returns the dragged item's current position
func (g *Gesture) Index() int {
	return g.index
}

// Origin returns the position the item was picked up from
func (g *Gesture) Origin() int {
	return g.origin
}

// Moved reports whether the item ended up somewhere other than its origin
func (g *Gesture) Moved() bool {
	return g.index != g.origin
}
