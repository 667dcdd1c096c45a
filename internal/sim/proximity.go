package sim

import (
	"gonum.org/v1/gonum/spatial/r2"
)

// DefaultHitMargin shrinks the notional body radius for pointer hits.
// A pointer hit tests HalfExtent.X minus this margin, not the true edge.
const DefaultHitMargin = 10.0

// Counter is a score counter mutated by proximity responses.
type Counter struct {
	Value int
}

// Dec decrements the counter by one.
func (c *Counter) Dec() {
	c.Value--
}

// Inc increments the counter by one.
func (c *Counter) Inc() {
	c.Value++
}

// PointInBody reports whether p is closer to the body's center than
// HalfExtent.X - margin.
func PointInBody(p r2.Vec, b *Body, margin float64) bool {
	return r2.Norm(r2.Sub(p, b.Pos)) < b.half.X-margin
}

// PointHit returns the first live body (in spawn order) that p hits. When
// kinds is non-empty only bodies of those kinds are tested.
func PointHit(w *World, p r2.Vec, margin float64, kinds ...Kind) (BodyID, bool) {
	var hit BodyID
	found := false
	w.Each(func(b *Body) bool {
		if !matchKind(b.Kind, kinds) {
			return true
		}
		if PointInBody(p, b, margin) {
			hit = b.ID
			found = true
			return false
		}
		return true
	})
	return hit, found
}

// ClickHit resolves a pointer click: the first body hit is despawned and the
// counter is decremented by one. Other overlapping bodies are untouched this
// tick. A nil counter is allowed.
func ClickHit(w *World, p r2.Vec, margin float64, score *Counter, kinds ...Kind) (Event, bool) {
	id, ok := PointHit(w, p, margin, kinds...)
	if !ok {
		return Event{}, false
	}
	b, _ := w.Get(id)
	ev := Event{Type: EventHit, A: id, Kind: b.Kind, Point: p}
	w.Despawn(id)
	if score != nil {
		score.Dec()
	}
	return ev, true
}

// ClampMove moves pos by dir*speed*dt and clamps the result per axis into the
// area shrunk by the body's half-extent plus padding. It bypasses Integrate.
func ClampMove(pos, dir r2.Vec, speed, dt float64, half r2.Vec, area PlayArea, padding float64) r2.Vec {
	next := r2.Add(pos, r2.Scale(speed*dt, dir))
	return r2.Vec{
		X: clamp(next.X, area.Left+half.X+padding, area.Right-half.X-padding),
		Y: clamp(next.Y, area.Bottom+half.Y+padding, area.Top-half.Y-padding),
	}
}

// Overlaps reports whether two bodies' boxes intersect. Touching edges do not
// count.
func Overlaps(a, b *Body) bool {
	amin, amax := a.Min(), a.Max()
	bmin, bmax := b.Min(), b.Max()
	return amin.X < bmax.X && bmin.X < amax.X &&
		amin.Y < bmax.Y && bmin.Y < amax.Y
}

// OverlapPairs returns an EventOverlap for every live (kindA, kindB) pair
// whose boxes intersect. Nothing is mutated; callers decide the response.
func OverlapPairs(w *World, kindA, kindB Kind) []Event {
	var events []Event
	w.EachKind(kindA, func(a *Body) bool {
		w.EachKind(kindB, func(b *Body) bool {
			if a.ID != b.ID && Overlaps(a, b) {
				events = append(events, Event{Type: EventOverlap, A: a.ID, B: b.ID, Kind: a.Kind, Point: a.Pos})
			}
			return true
		})
		return true
	})
	return events
}

func matchKind(k Kind, kinds []Kind) bool {
	if len(kinds) == 0 {
		return true
	}
	for _, want := range kinds {
		if k == want {
			return true
		}
	}
	return false
}

// clamp restricts v to [lo, hi]. If lo > hi the result is lo.
func clamp(v, lo, hi float64) float64 {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}
