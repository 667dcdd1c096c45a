package sim

import "gonum.org/v1/gonum/spatial/r2"

// PlayArea is the fixed rectangle bodies are simulated in. Y grows upward.
type PlayArea struct {
	Left, Right float64
	Bottom, Top float64
}

// CenteredArea returns a w×h area centered on the origin.
func CenteredArea(w, h float64) PlayArea {
	return PlayArea{
		Left:   -w / 2,
		Right:  w / 2,
		Bottom: -h / 2,
		Top:    h / 2,
	}
}

// Width returns Right-Left.
func (a PlayArea) Width() float64 {
	return a.Right - a.Left
}

// Height returns Top-Bottom.
func (a PlayArea) Height() float64 {
	return a.Top - a.Bottom
}

// HalfSize returns half the width and height.
func (a PlayArea) HalfSize() r2.Vec {
	return r2.Vec{X: a.Width() / 2, Y: a.Height() / 2}
}

// Center returns the center point.
func (a PlayArea) Center() r2.Vec {
	return r2.Vec{X: (a.Left + a.Right) / 2, Y: (a.Bottom + a.Top) / 2}
}

// Inset shrinks the area by d on every side. Negative d grows it.
func (a PlayArea) Inset(d float64) PlayArea {
	return PlayArea{
		Left:   a.Left + d,
		Right:  a.Right - d,
		Bottom: a.Bottom + d,
		Top:    a.Top - d,
	}
}
