package sim

// Axes is a bit set of the axes a body has crossed the play area on.
type Axes uint8

const (
	AxisX Axes = 1 << iota
	AxisY
)

// Has reports whether a is set.
func (x Axes) Has(a Axes) bool {
	return x&a != 0
}

// OutOfBounds tests each axis independently: the body is out on X when its
// right edge is past area.Right or its left edge is before area.Left, and
// likewise on Y against Top and Bottom.
func OutOfBounds(b *Body, area PlayArea) Axes {
	var out Axes
	lo, hi := b.Min(), b.Max()
	if hi.X > area.Right || lo.X < area.Left {
		out |= AxisX
	}
	if hi.Y > area.Top || lo.Y < area.Bottom {
		out |= AxisY
	}
	return out
}

// Reflect negates the velocity component of every axis the body is out on and
// returns those axes. The position is not corrected.
func Reflect(b *Body, area PlayArea) Axes {
	out := OutOfBounds(b, area)
	if out.Has(AxisX) {
		b.Vel.X = -b.Vel.X
	}
	if out.Has(AxisY) {
		b.Vel.Y = -b.Vel.Y
	}
	return out
}

// Oversized reports whether the body cannot fit in the area on some axis.
// Such a body is permanently out of bounds.
func Oversized(b *Body, area PlayArea) bool {
	hs := area.HalfSize()
	return b.half.X >= hs.X || b.half.Y >= hs.Y
}

// ApplyBoundaries runs the boundary pass over every live body according to
// its Policy and returns one event per bounce or despawn.
func ApplyBoundaries(w *World, area PlayArea) []Event {
	var events []Event
	w.Each(func(b *Body) bool {
		switch b.Policy {
		case PolicyBounce:
			if axes := Reflect(b, area); axes != 0 {
				events = append(events, Event{Type: EventBounce, A: b.ID, Kind: b.Kind, Axes: axes, Point: b.Pos})
			}
		case PolicyDespawn:
			if axes := OutOfBounds(b, area); axes != 0 {
				events = append(events, Event{Type: EventDespawn, A: b.ID, Kind: b.Kind, Axes: axes, Point: b.Pos})
				w.Despawn(b.ID)
			}
		}
		return true
	})
	return events
}
