// Package core provides fundamental types shared by the demos and the
// platform layer: runtime config, input frames, the screen buffer and
// world-to-screen mapping. It has no Bubble Tea dependency.
package core

// Rect is an integer rectangle in screen cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate one past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate one past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the cell (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Inset shrinks the rectangle by n cells on every side.
func (r Rect) Inset(n int) Rect {
	return Rect{X: r.X + n, Y: r.Y + n, W: max(r.W-2*n, 0), H: max(r.H-2*n, 0)}
}

// Clamp restricts a value to be within [lo, hi].
func Clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// Playfield returns the cells inside a one-cell border drawn below a one-row
// HUD on a w x h screen.
func Playfield(w, h int) Rect {
	return NewRect(1, 2, max(w-2, 0), max(h-3, 0))
}

// Frame returns the border rectangle around Playfield.
func Frame(w, h int) Rect {
	return NewRect(0, 1, max(w, 0), max(h-1, 0))
}
