// Package sim provides the shared 2D kinematic simulation used by every demo:
// fixed-timestep integration, play-area boundary handling and overlap tests.
// Like core, it has no terminal or Bubble Tea dependencies.
package sim

import (
	"gonum.org/v1/gonum/spatial/r2"
)

// BodyID identifies a body for its whole lifetime. IDs are never reused
// within a World.
type BodyID uint32

// Kind tags a body with a demo-defined role (ball, bullet, enemy, tile...).
type Kind uint8

// Policy selects what the boundary pass does when a body leaves the play area.
type Policy uint8

const (
	// PolicyNone skips the boundary pass (players, static geometry).
	PolicyNone Policy = iota
	// PolicyBounce negates the offending velocity component.
	PolicyBounce
	// PolicyDespawn removes the body in the tick it is found out of bounds.
	PolicyDespawn
)

// String returns a human-readable policy name.
func (p Policy) String() string {
	switch p {
	case PolicyNone:
		return "none"
	case PolicyBounce:
		return "bounce"
	case PolicyDespawn:
		return "despawn"
	default:
		return "unknown"
	}
}

// Body is a moving (or static) axis-aligned box. Pos is the center, Vel is in
// world units per second and HalfExtent is fixed at spawn time.
type Body struct {
	ID     BodyID
	Kind   Kind
	Pos    r2.Vec
	Vel    r2.Vec
	Policy Policy

	half r2.Vec
}

// HalfExtent returns the body's half-size on each axis.
func (b *Body) HalfExtent() r2.Vec {
	return b.half
}

// Min returns the bottom-left corner of the body's bounding box.
func (b *Body) Min() r2.Vec {
	return r2.Sub(b.Pos, b.half)
}

// Max returns the top-right corner of the body's bounding box.
func (b *Body) Max() r2.Vec {
	return r2.Add(b.Pos, b.half)
}

// Spec describes a body to spawn.
type Spec struct {
	Kind       Kind
	Pos        r2.Vec
	Vel        r2.Vec
	HalfExtent r2.Vec
	Policy     Policy
}
