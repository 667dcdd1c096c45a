package runjump

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/vovakirdan/arcade-demos/internal/core"
	"github.com/vovakirdan/arcade-demos/internal/sim"
)

func newGame(t *testing.T) *Game {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())
	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1})
	return g
}

func idle(g *Game, ticks int) {
	for i := 0; i < ticks; i++ {
		g.Step(core.NewInputFrame())
	}
}

func TestResetPlacement(t *testing.T) {
	g := newGame(t)

	if g.tiles != 14 {
		t.Errorf("placed %d tiles, expected 14", g.tiles)
	}
	if n := g.sim.World.Count(kindTile); n != g.tiles {
		t.Errorf("world has %d tiles, expected %d", n, g.tiles)
	}

	p, ok := g.sim.World.Get(g.playerID)
	if !ok {
		t.Fatal("player missing")
	}
	if p.Pos != (r2.Vec{X: -375, Y: 95}) {
		t.Errorf("player at %v, expected (-375, 95)", p.Pos)
	}
}

func TestFallAndLand(t *testing.T) {
	g := newGame(t)
	idle(g, 120)

	p, _ := g.sim.World.Get(g.playerID)
	// First platform is row 8: top edge at 300 - 8*40 = -20.
	if math.Abs(p.Pos.Y-(-7.5)) > 1e-6 {
		t.Errorf("player y = %v, expected to rest at -7.5", p.Pos.Y)
	}
	if !g.grounded {
		t.Error("player should be grounded")
	}
	if g.State().GameOver {
		t.Error("landing should not end the game")
	}
}

func TestJumpOnlyWhenGrounded(t *testing.T) {
	g := newGame(t)

	jump := core.NewInputFrame()
	jump.Set(core.ActionFire)

	// Mid-air jumps are ignored.
	g.Step(jump)
	p, _ := g.sim.World.Get(g.playerID)
	if p.Vel.Y > 0 {
		t.Fatalf("jumped while airborne, vel = %v", p.Vel)
	}

	idle(g, 120)
	restY := p.Pos.Y
	g.Step(jump)
	p, _ = g.sim.World.Get(g.playerID)
	if p.Pos.Y <= restY || p.Vel.Y <= 0 {
		t.Errorf("grounded jump failed: y %v -> %v, vel %v", restY, p.Pos.Y, p.Vel)
	}
}

func TestFallingOutEndsGame(t *testing.T) {
	g := newGame(t)
	p, _ := g.sim.World.Get(g.playerID)
	p.Pos = r2.Vec{X: -180, Y: -150} // above the gap in column 5

	idle(g, 120)

	if !g.State().GameOver {
		t.Fatal("falling out of the world should end the game")
	}
	if g.flow.Won() {
		t.Error("falling out is not a win")
	}
	if g.sim.World.Alive(g.playerID) {
		t.Error("player should be despawned")
	}
}

func TestSideContactBlocks(t *testing.T) {
	g := newGame(t)
	g.sim.World.Clear()
	g.playerID = g.sim.Spawn(sim.Spec{
		Kind:       kindPlayer,
		Pos:        r2.Vec{X: 0, Y: 0},
		HalfExtent: r2.Vec{X: 12.5, Y: 12.5},
		Policy:     sim.PolicyDespawn,
	})
	g.sim.Spawn(sim.Spec{Kind: kindTile, Pos: r2.Vec{X: 0, Y: -32.5}, HalfExtent: r2.Vec{X: 200, Y: 20}})
	g.sim.Spawn(sim.Spec{Kind: kindTile, Pos: r2.Vec{X: 40, Y: 7.5}, HalfExtent: r2.Vec{X: 20, Y: 20}})

	right := core.NewInputFrame()
	right.Set(core.ActionRight)
	for i := 0; i < 60; i++ {
		g.Step(right)
	}

	p, _ := g.sim.World.Get(g.playerID)
	if p.Pos.X+12.5 > 20+1e-6 {
		t.Errorf("runner walked into the wall: x = %v", p.Pos.X)
	}
	if !g.grounded {
		t.Error("runner should still stand on the floor tile")
	}
}

func TestDistanceScore(t *testing.T) {
	g := newGame(t)
	idle(g, 90)

	right := core.NewInputFrame()
	right.Set(core.ActionRight)
	for i := 0; i < 30; i++ {
		g.Step(right)
	}

	// 30 ticks at 200 u/s is 100 units.
	if got := g.State().Score; got < 99 || got > 100 {
		t.Errorf("score = %d, expected about 100", got)
	}
}

func TestDeterminism(t *testing.T) {
	run := func() r2.Vec {
		g := newGame(t)
		for i := 0; i < 600; i++ {
			in := core.NewInputFrame()
			in.Set(core.ActionRight)
			if i%45 == 0 {
				in.Set(core.ActionFire)
			}
			g.Step(in)
		}
		if p, ok := g.sim.World.Get(g.playerID); ok {
			return p.Pos
		}
		return r2.Vec{X: math.NaN()}
	}
	a, b := run(), run()
	if a != b && !(math.IsNaN(a.X) && math.IsNaN(b.X)) {
		t.Errorf("runs differ: %v vs %v", a, b)
	}
}
