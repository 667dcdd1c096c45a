package core

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/vovakirdan/arcade-demos/internal/sim"
)

// Viewport maps a world-space play area (y up) onto a rectangle of screen
// cells (y down). Pointer clicks go the other way, relative to the center of
// the area.
type Viewport struct {
	Area   sim.PlayArea
	Screen Rect
}

// NewViewport fits area into the given cell rectangle.
func NewViewport(area sim.PlayArea, screen Rect) Viewport {
	return Viewport{Area: area, Screen: screen}
}

// ToCell converts a world point to the cell that contains it.
func (v Viewport) ToCell(p r2.Vec) (x, y int) {
	w, h := v.Area.Width(), v.Area.Height()
	if w <= 0 || h <= 0 {
		return v.Screen.X, v.Screen.Y
	}
	fx := (p.X - v.Area.Left) * float64(v.Screen.W) / w
	fy := (v.Area.Top - p.Y) * float64(v.Screen.H) / h
	return v.Screen.X + floor(fx), v.Screen.Y + floor(fy)
}

// ToWorld converts a cell to the world point at its center.
func (v Viewport) ToWorld(x, y int) r2.Vec {
	if v.Screen.W <= 0 || v.Screen.H <= 0 {
		return v.Area.Center()
	}
	cx := float64(x-v.Screen.X) + 0.5
	cy := float64(y-v.Screen.Y) + 0.5
	return r2.Vec{
		X: v.Area.Left + cx*v.Area.Width()/float64(v.Screen.W),
		Y: v.Area.Top - cy*v.Area.Height()/float64(v.Screen.H),
	}
}

// ToCellRect converts a world-space box (center, half-extent) to the cells it
// covers. Every box covers at least one cell.
func (v Viewport) ToCellRect(center, half r2.Vec) Rect {
	x0, y0 := v.ToCell(r2.Vec{X: center.X - half.X, Y: center.Y + half.Y})
	x1, y1 := v.ToCell(r2.Vec{X: center.X + half.X, Y: center.Y - half.Y})
	return NewRect(x0, y0, max(x1-x0, 1), max(y1-y0, 1))
}

// Fill draws a world-space box, clipped to the viewport.
func (v Viewport) Fill(dst *Screen, center, half r2.Vec, r rune, c Color) {
	cells := v.ToCellRect(center, half)
	for y := cells.Y; y < cells.Bottom(); y++ {
		for x := cells.X; x < cells.Right(); x++ {
			if v.Visible(x, y) {
				dst.SetColor(x, y, r, c)
			}
		}
	}
}

// Visible reports whether a cell lies inside the viewport.
func (v Viewport) Visible(x, y int) bool {
	return v.Screen.Contains(x, y)
}

func floor(f float64) int {
	i := int(f)
	if f < 0 && float64(i) != f {
		i--
	}
	return i
}
