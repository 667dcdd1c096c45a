package sim

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"gonum.org/v1/gonum/spatial/r2"
)

const eps = 1e-9

func approx(a, b float64) bool {
	return math.Abs(a-b) < eps
}

const (
	kindBall Kind = iota + 1
	kindBullet
	kindEnemy
)

func TestIntegrateConstantVelocity(t *testing.T) {
	s := NewSimulation(Config{Area: CenteredArea(1000, 1000), Dt: 1.0 / 60.0})
	start := r2.Vec{X: -10, Y: 5}
	vel := r2.Vec{X: 30, Y: -12}
	id := s.Spawn(Spec{Kind: kindBall, Pos: start, Vel: vel, HalfExtent: r2.Vec{X: 1, Y: 1}, Policy: PolicyBounce})

	const n = 120
	for i := 0; i < n; i++ {
		if events := s.Step(); len(events) != 0 {
			t.Fatalf("tick %d: unexpected boundary events %v", i, events)
		}
	}

	b, ok := s.World.Get(id)
	if !ok {
		t.Fatal("body should still be alive")
	}
	wantX := start.X + vel.X*s.Dt()*n
	wantY := start.Y + vel.Y*s.Dt()*n
	if math.Abs(b.Pos.X-wantX) > 1e-6 || math.Abs(b.Pos.Y-wantY) > 1e-6 {
		t.Errorf("position = %v, expected (%f, %f)", b.Pos, wantX, wantY)
	}
	if b.Vel != vel {
		t.Errorf("velocity changed to %v", b.Vel)
	}
}

func TestIntegrateEmptyWorld(t *testing.T) {
	w := NewWorld()
	Integrate(w, 1.0/60.0) // must not panic
	if w.Len() != 0 {
		t.Errorf("Len() = %d, expected 0", w.Len())
	}
}

func TestBounceReflection(t *testing.T) {
	area := PlayArea{Left: -100, Right: 100, Bottom: -100, Top: 100}
	s := NewSimulation(Config{Area: area, Dt: 0.1})
	id := s.Spawn(Spec{
		Kind:       kindBall,
		Pos:        r2.Vec{X: area.Right - 1, Y: 0},
		Vel:        r2.Vec{X: 10, Y: 0},
		HalfExtent: r2.Vec{X: 2, Y: 2},
		Policy:     PolicyBounce,
	})

	events := s.Step()

	b, _ := s.World.Get(id)
	if !approx(b.Vel.X, -10) {
		t.Errorf("Vel.X = %f, expected -10", b.Vel.X)
	}
	if len(events) != 1 || events[0].Type != EventBounce || !events[0].Axes.Has(AxisX) {
		t.Errorf("expected one X bounce event, got %v", events)
	}
	// no clamping
	if !approx(b.Pos.X, area.Right) {
		t.Errorf("Pos.X = %f, expected %f (unclamped)", b.Pos.X, area.Right)
	}

	// Once back inside, another test leaves velocity alone.
	b.Pos.X = 0
	if axes := Reflect(b, area); axes != 0 {
		t.Errorf("Reflect inside bounds returned %v", axes)
	}
	if !approx(b.Vel.X, -10) {
		t.Errorf("Vel.X = %f after inside test, expected -10", b.Vel.X)
	}
}

func TestCornerReflection(t *testing.T) {
	area := CenteredArea(200, 200)
	s := NewSimulation(Config{Area: area, Dt: 0.1})
	id := s.Spawn(Spec{
		Kind:       kindBall,
		Pos:        r2.Vec{X: 98, Y: 98},
		Vel:        r2.Vec{X: 20, Y: 30},
		HalfExtent: r2.Vec{X: 2, Y: 2},
		Policy:     PolicyBounce,
	})

	events := s.Step()

	b, _ := s.World.Get(id)
	if !approx(b.Vel.X, -20) || !approx(b.Vel.Y, -30) {
		t.Errorf("velocity = %v, expected both axes inverted", b.Vel)
	}
	if len(events) != 1 || !events[0].Axes.Has(AxisX) || !events[0].Axes.Has(AxisY) {
		t.Errorf("expected a single event on both axes, got %v", events)
	}
}

func TestReflectEachEdge(t *testing.T) {
	area := CenteredArea(100, 100)
	tests := []struct {
		name  string
		pos   r2.Vec
		vel   r2.Vec
		want  r2.Vec
		wantA Axes
	}{
		{"left", r2.Vec{X: -49, Y: 0}, r2.Vec{X: -5, Y: 1}, r2.Vec{X: 5, Y: 1}, AxisX},
		{"right", r2.Vec{X: 49, Y: 0}, r2.Vec{X: 5, Y: 1}, r2.Vec{X: -5, Y: 1}, AxisX},
		{"top", r2.Vec{X: 0, Y: 49}, r2.Vec{X: 1, Y: 5}, r2.Vec{X: 1, Y: -5}, AxisY},
		{"bottom", r2.Vec{X: 0, Y: -49}, r2.Vec{X: 1, Y: -5}, r2.Vec{X: 1, Y: 5}, AxisY},
		{"inside", r2.Vec{X: 0, Y: 0}, r2.Vec{X: 1, Y: 5}, r2.Vec{X: 1, Y: 5}, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := Body{Pos: tc.pos, Vel: tc.vel, half: r2.Vec{X: 2, Y: 2}}
			axes := Reflect(&b, area)
			if axes != tc.wantA {
				t.Errorf("Reflect() axes = %v, expected %v", axes, tc.wantA)
			}
			if b.Vel != tc.want {
				t.Errorf("Vel = %v, expected %v", b.Vel, tc.want)
			}
		})
	}
}

func TestDespawnOnExit(t *testing.T) {
	area := CenteredArea(100, 100)
	s := NewSimulation(Config{Area: area, Dt: 0.1})
	bullet := s.Spawn(Spec{
		Kind:   kindBullet,
		Pos:    r2.Vec{X: 0, Y: 49},
		Vel:    r2.Vec{X: 0, Y: 50},
		Policy: PolicyDespawn,
	})
	stay := s.Spawn(Spec{
		Kind:   kindBullet,
		Pos:    r2.Vec{X: 0, Y: 0},
		Vel:    r2.Vec{X: 0, Y: 1},
		Policy: PolicyDespawn,
	})

	events := s.Step()

	if s.World.Alive(bullet) {
		t.Error("bullet should be removed in the tick it left the area")
	}
	if !s.World.Alive(stay) {
		t.Error("bullet inside the area should survive")
	}
	if len(events) != 1 || events[0].Type != EventDespawn || events[0].A != bullet {
		t.Errorf("expected one despawn event for bullet, got %v", events)
	}

	for i := 0; i < 3; i++ {
		s.Step()
		s.World.Each(func(b *Body) bool {
			if b.ID == bullet {
				t.Errorf("removed body visited on tick %d", i)
			}
			return true
		})
	}
}

func TestPointHit(t *testing.T) {
	w := NewWorld()
	w.Spawn(Spec{Kind: kindBall, HalfExtent: r2.Vec{X: 25, Y: 25}})

	if _, ok := PointHit(w, r2.Vec{X: 10, Y: 0}, 10); !ok {
		t.Error("point at distance 10 should hit (10 < 15)")
	}
	if _, ok := PointHit(w, r2.Vec{X: 20, Y: 0}, 10); ok {
		t.Error("point at distance 20 should miss (20 >= 15)")
	}
	if _, ok := PointHit(w, r2.Vec{X: 15, Y: 0}, 10); ok {
		t.Error("point exactly at the shrunk radius should miss")
	}
}

func TestClickHitRemovesFirstMatchOnly(t *testing.T) {
	w := NewWorld()
	first := w.Spawn(Spec{Kind: kindBall, HalfExtent: r2.Vec{X: 25, Y: 25}})
	second := w.Spawn(Spec{Kind: kindBall, Pos: r2.Vec{X: 2, Y: 0}, HalfExtent: r2.Vec{X: 25, Y: 25}})
	score := &Counter{Value: 30}

	ev, ok := ClickHit(w, r2.Vec{X: 5, Y: 0}, DefaultHitMargin, score)
	if !ok {
		t.Fatal("expected a hit")
	}
	if ev.A != first || ev.Type != EventHit {
		t.Errorf("hit event = %+v, expected EventHit on first body", ev)
	}
	if score.Value != 29 {
		t.Errorf("score = %d, expected 29", score.Value)
	}
	if w.Alive(first) {
		t.Error("first body should be removed")
	}
	if !w.Alive(second) {
		t.Error("second overlapping body should be untouched")
	}
	if w.Len() != 1 {
		t.Errorf("Len() = %d, expected 1", w.Len())
	}
}

func TestClickHitEmptyWorld(t *testing.T) {
	w := NewWorld()
	score := &Counter{Value: 3}

	if _, ok := ClickHit(w, r2.Vec{}, DefaultHitMargin, score); ok {
		t.Error("click on empty world should not hit")
	}
	if score.Value != 3 {
		t.Errorf("score changed to %d", score.Value)
	}
	if _, ok := ClickHit(w, r2.Vec{}, DefaultHitMargin, nil); ok {
		t.Error("nil counter click should not hit")
	}
}

func TestClickHitKindFilter(t *testing.T) {
	w := NewWorld()
	enemy := w.Spawn(Spec{Kind: kindEnemy, HalfExtent: r2.Vec{X: 25, Y: 25}})
	ball := w.Spawn(Spec{Kind: kindBall, HalfExtent: r2.Vec{X: 25, Y: 25}})

	ev, ok := ClickHit(w, r2.Vec{}, DefaultHitMargin, nil, kindBall)
	if !ok || ev.A != ball {
		t.Fatalf("expected ball hit, got %+v ok=%v", ev, ok)
	}
	if !w.Alive(enemy) {
		t.Error("filtered-out kind should not be removed")
	}
}

func TestClampMove(t *testing.T) {
	area := CenteredArea(700, 700)
	half := r2.Vec{X: 7.5, Y: 7.5}
	const padding = 20.0
	left := area.Left + half.X + padding

	pos := r2.Vec{X: left, Y: 0}
	got := ClampMove(pos, r2.Vec{X: -1, Y: 0}, 200, 1.0/60.0, half, area, padding)
	if got.X != left {
		t.Errorf("X = %f, expected %f", got.X, left)
	}
	if got.Y != 0 {
		t.Errorf("Y = %f, expected 0", got.Y)
	}

	got = ClampMove(r2.Vec{}, r2.Vec{X: 1, Y: 1}, 60, 0.5, half, area, padding)
	if !approx(got.X, 30) || !approx(got.Y, 30) {
		t.Errorf("unclamped move = %v, expected (30, 30)", got)
	}

	got = ClampMove(r2.Vec{X: 0, Y: 300}, r2.Vec{X: 0, Y: 1}, 1000, 1, half, area, padding)
	top := area.Top - half.Y - padding
	if got.Y != top {
		t.Errorf("Y = %f, expected %f", got.Y, top)
	}
}

func TestOverlaps(t *testing.T) {
	a := Body{Pos: r2.Vec{X: 0, Y: 0}, half: r2.Vec{X: 5, Y: 5}}
	tests := []struct {
		name string
		b    Body
		want bool
	}{
		{"overlapping", Body{Pos: r2.Vec{X: 6, Y: 6}, half: r2.Vec{X: 5, Y: 5}}, true},
		{"touching", Body{Pos: r2.Vec{X: 10, Y: 0}, half: r2.Vec{X: 5, Y: 5}}, false},
		{"apart", Body{Pos: r2.Vec{X: 0, Y: 20}, half: r2.Vec{X: 5, Y: 5}}, false},
		{"contained", Body{Pos: r2.Vec{X: 1, Y: 1}, half: r2.Vec{X: 1, Y: 1}}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Overlaps(&a, &tc.b); got != tc.want {
				t.Errorf("Overlaps() = %v, expected %v", got, tc.want)
			}
			if got := Overlaps(&tc.b, &a); got != tc.want {
				t.Errorf("Overlaps() (reversed) = %v, expected %v", got, tc.want)
			}
		})
	}
}

func TestOverlapPairs(t *testing.T) {
	w := NewWorld()
	enemy := w.Spawn(Spec{Kind: kindEnemy, HalfExtent: r2.Vec{X: 10, Y: 10}})
	hit := w.Spawn(Spec{Kind: kindBullet, Pos: r2.Vec{X: 5}, HalfExtent: r2.Vec{X: 1, Y: 1}})
	w.Spawn(Spec{Kind: kindBullet, Pos: r2.Vec{X: 50}, HalfExtent: r2.Vec{X: 1, Y: 1}})

	events := OverlapPairs(w, kindBullet, kindEnemy)
	if len(events) != 1 {
		t.Fatalf("expected 1 overlap, got %d", len(events))
	}
	if events[0].A != hit || events[0].B != enemy || events[0].Type != EventOverlap {
		t.Errorf("unexpected event %+v", events[0])
	}
}

func TestOversizedBodyStaysOutOfBounds(t *testing.T) {
	area := CenteredArea(10, 10)
	s := NewSimulation(Config{Area: area, Dt: 0.1})
	id := s.Spawn(Spec{Kind: kindBall, HalfExtent: r2.Vec{X: 6, Y: 1}, Vel: r2.Vec{X: 1}, Policy: PolicyBounce})

	b, _ := s.World.Get(id)
	if !Oversized(b, area) {
		t.Fatal("body should be reported oversized")
	}
	for i := 0; i < 4; i++ {
		events := s.Step()
		if len(events) != 1 {
			t.Fatalf("tick %d: expected a bounce every tick, got %v", i, events)
		}
	}
}

func TestOversizedBodyWarnsOnce(t *testing.T) {
	var buf bytes.Buffer
	s := NewSimulation(Config{Area: CenteredArea(10, 10), Dt: 0.1, Logger: log.New(&buf)})
	id := s.Spawn(Spec{Kind: kindBall, HalfExtent: r2.Vec{X: 6, Y: 1}, Vel: r2.Vec{X: 1}, Policy: PolicyBounce})
	s.Spawn(Spec{Kind: kindBall, HalfExtent: r2.Vec{X: 1, Y: 1}, Policy: PolicyBounce})

	for i := 0; i < 5; i++ {
		s.Step()
	}

	if n := strings.Count(buf.String(), "larger than play area"); n != 1 {
		t.Errorf("got %d warnings, expected 1:\n%s", n, buf.String())
	}
	if b, _ := s.World.Get(id); b.Vel.X != -1 {
		t.Errorf("oversized body should keep reflecting, vel = %v", b.Vel)
	}
	if s.Ticks() != 5 {
		t.Errorf("Ticks() = %d, expected 5", s.Ticks())
	}

	s.Reset()
	if s.Ticks() != 0 || s.World.Len() != 0 {
		t.Error("Reset should clear bodies and the tick counter")
	}
}

func TestBodyBounds(t *testing.T) {
	b := Body{Pos: r2.Vec{X: 3, Y: -2}, half: r2.Vec{X: 1, Y: 4}}
	if got := b.Min(); got != (r2.Vec{X: 2, Y: -6}) {
		t.Errorf("Min() = %v", got)
	}
	if got := b.Max(); got != (r2.Vec{X: 4, Y: 2}) {
		t.Errorf("Max() = %v", got)
	}
}

func TestWorldSpawnDespawn(t *testing.T) {
	w := NewWorld()
	a := w.Spawn(Spec{Kind: kindBall})
	b := w.Spawn(Spec{Kind: kindBullet})
	c := w.Spawn(Spec{Kind: kindBall})

	if a == b || b == c {
		t.Fatal("IDs should be unique")
	}
	if !w.Despawn(b) {
		t.Error("Despawn of live body should succeed")
	}
	if w.Despawn(b) {
		t.Error("second Despawn should report false")
	}
	if w.Count(kindBall) != 2 || w.Count(kindBullet) != 0 {
		t.Errorf("counts = %d balls, %d bullets", w.Count(kindBall), w.Count(kindBullet))
	}

	w.Compact()
	bodies := w.Bodies()
	if len(bodies) != 2 || bodies[0].ID != a || bodies[1].ID != c {
		t.Errorf("Compact should preserve order, got %v", bodies)
	}
	if got, ok := w.Get(c); !ok || got.ID != c {
		t.Error("Get after Compact should find body by ID")
	}

	d := w.Spawn(Spec{})
	if d <= c {
		t.Errorf("IDs should keep increasing, got %d after %d", d, c)
	}

	w.Clear()
	if w.Len() != 0 || w.Alive(a) {
		t.Error("Clear should remove every body")
	}
}

func TestPlayArea(t *testing.T) {
	a := CenteredArea(900, 600)
	if a.Left != -450 || a.Right != 450 || a.Bottom != -300 || a.Top != 300 {
		t.Errorf("CenteredArea = %+v", a)
	}
	if a.Width() != 900 || a.Height() != 600 {
		t.Errorf("size = %fx%f", a.Width(), a.Height())
	}
	in := a.Inset(10)
	if in.Left != -440 || in.Top != 290 {
		t.Errorf("Inset = %+v", in)
	}
}
