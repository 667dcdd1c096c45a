// Package runjump implements a side-view platform demo on a JSON tile map.
// The runner moves left and right, jumps between ground tiles and loses when
// it falls out of the world.
package runjump

import (
	"fmt"
	"math"

	"github.com/charmbracelet/log"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/vovakirdan/arcade-demos/internal/config"
	"github.com/vovakirdan/arcade-demos/internal/core"
	"github.com/vovakirdan/arcade-demos/internal/flow"
	"github.com/vovakirdan/arcade-demos/internal/registry"
	"github.com/vovakirdan/arcade-demos/internal/sim"
	"github.com/vovakirdan/arcade-demos/internal/tilemap"
)

// ID is the registry and score key for this demo.
const ID = config.RunJumpID

const (
	kindPlayer sim.Kind = iota + 1
	kindTile
)

// Visual characters for rendering
const (
	PlayerChar = '■'
	TileChar   = '█'
)

// contactEps absorbs float error when deciding which side a contact is on.
const contactEps = 1e-6

// configPath stores the custom config path set via CLI
var configPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// Game implements the run-and-jump demo.
type Game struct {
	sim      *sim.Simulation
	flow     *flow.Machine
	cfg      config.RunJumpConfig
	runtime  core.RuntimeConfig
	log      *log.Logger
	area     sim.PlayArea
	tiles    int
	playerID sim.BodyID

	startX   float64
	maxX     float64
	grounded bool
}

// New creates a new run-and-jump instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Run and Jump"
}

// Reset loads the config and tile map and places the runner.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.log = runtime.Log().WithPrefix(ID)

	cfg, err := config.LoadRunJump(configPath)
	if err != nil {
		g.log.Warn("using default config", "err", err)
		cfg = config.DefaultRunJumpConfig()
	}
	g.cfg = cfg
	g.area = cfg.Area.PlayArea()
	g.sim = sim.NewSimulation(sim.Config{
		Area:   g.area,
		Dt:     runtime.Dt(),
		Logger: g.log,
	})
	g.flow = flow.Restart(g.flow, flow.InGame)

	m, err := tilemap.Load(cfg.Map)
	if err != nil {
		g.log.Warn("using built-in tile map", "err", err)
		m = tilemap.Default()
	}
	g.placeTiles(m)

	// Falling out of the world despawns the runner, which ends the game.
	ph := cfg.Player.HalfSize
	start := r2.Vec{
		X: g.area.Left + 2*ph,
		Y: g.area.Height()/5 - 2*ph,
	}
	g.playerID = g.sim.Spawn(sim.Spec{
		Kind:       kindPlayer,
		Pos:        start,
		HalfExtent: r2.Vec{X: ph, Y: ph},
		Policy:     sim.PolicyDespawn,
	})
	g.startX = start.X
	g.maxX = start.X
	g.grounded = false
}

func (g *Game) placeTiles(m *tilemap.Map) {
	half := g.cfg.TileSize / 2
	g.tiles = 0
	for _, t := range m.Place(g.area, g.cfg.TileSize) {
		g.sim.Spawn(sim.Spec{
			Kind:       kindTile,
			Pos:        t.Center,
			HalfExtent: r2.Vec{X: half, Y: half},
			Policy:     sim.PolicyNone,
		})
		g.tiles++
	}
	g.log.Debug("tile map placed", "tiles", g.tiles, "rows", m.Rows(), "cols", m.Cols())
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionPause) {
		g.flow.Fire(flow.EventTogglePause)
	}
	if !g.flow.Running() {
		return core.StepResult{State: g.State()}
	}

	p, ok := g.sim.World.Get(g.playerID)
	if !ok {
		return core.StepResult{State: g.State()}
	}
	dt := g.sim.Dt()
	prev := p.Pos

	// Horizontal movement is clamped to the walls; vertical motion is left
	// to the integrator so the runner can fall out of the bottom.
	dx, _ := in.Direction()
	p.Pos.X = sim.ClampMove(p.Pos, r2.Vec{X: dx}, g.cfg.Player.Speed, dt, p.HalfExtent(), g.area, 0).X

	if g.grounded && (in.Has(core.ActionFire) || in.Has(core.ActionUp)) {
		p.Vel.Y = g.cfg.Player.JumpSpeed
	}
	p.Vel.Y = math.Max(p.Vel.Y-g.cfg.Physics.Gravity*dt, -g.cfg.Physics.MaxFallSpeed)

	for _, ev := range g.sim.Step() {
		if ev.Type == sim.EventDespawn && ev.A == g.playerID {
			g.log.Debug("fell out", "x", ev.Point.X, "y", ev.Point.Y)
			g.flow.Fire(flow.EventLose)
			return core.StepResult{State: g.State()}
		}
	}

	// Step compacts the world, so the pointer is looked up again.
	p, _ = g.sim.World.Get(g.playerID)
	g.resolveTiles(p, prev)

	g.maxX = math.Max(g.maxX, p.Pos.X)
	if p.Pos.X+p.HalfExtent().X >= g.area.Right-contactEps {
		g.flow.Fire(flow.EventWin)
	}

	return core.StepResult{State: g.State()}
}

// resolveTiles pushes the runner out of every tile it overlaps, using its
// position before the step to pick the contact side.
func (g *Game) resolveTiles(p *sim.Body, prev r2.Vec) {
	g.grounded = false
	h := p.HalfExtent()
	for _, ev := range sim.OverlapPairs(g.sim.World, kindPlayer, kindTile) {
		t, ok := g.sim.World.Get(ev.B)
		if !ok {
			continue
		}
		th := t.HalfExtent()
		tileTop := t.Pos.Y + th.Y
		tileBottom := t.Pos.Y - th.Y

		switch {
		case prev.Y-h.Y >= tileTop-contactEps && p.Vel.Y <= 0:
			p.Pos.Y = tileTop + h.Y
			p.Vel.Y = 0
			g.grounded = true
		case prev.Y+h.Y <= tileBottom+contactEps && p.Vel.Y > 0:
			p.Pos.Y = tileBottom - h.Y
			p.Vel.Y = 0
		default:
			p.Pos.X = prev.X
		}
	}
}

// distance is how far right of its start the runner has been.
func (g *Game) distance() int {
	return int(g.maxX - g.startX)
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	w, h := dst.Width(), dst.Height()
	dst.DrawBox(core.Frame(w, h), core.ColorGray)
	vp := core.NewViewport(g.area, core.Playfield(w, h))

	g.sim.World.EachKind(kindTile, func(b *sim.Body) bool {
		vp.Fill(dst, b.Pos, b.HalfExtent(), TileChar, core.ColorBrown)
		return true
	})
	if p, ok := g.sim.World.Get(g.playerID); ok {
		vp.Fill(dst, p.Pos, p.HalfExtent(), PlayerChar, core.ColorGreen)
	}

	dst.DrawText(1, 0, fmt.Sprintf(" Distance: %d ", g.distance()))

	switch g.flow.State() {
	case flow.Pause:
		dst.DrawMessage("PAUSED", "Press P to resume")
	case flow.GameOver:
		title := "GAME OVER"
		if g.flow.Won() {
			title = "YOU MADE IT"
		}
		dst.DrawMessage(title, fmt.Sprintf("Distance: %d  |  Press R to restart", g.distance()))
	}
}

// State returns the current game state. The score is the furthest distance
// reached.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.distance(),
		GameOver: g.flow.Is(flow.GameOver),
		Won:      g.flow.Won(),
		Paused:   g.flow.Is(flow.Pause),
	}
}

// Register the game with the registry
func init() {
	registry.Register(ID, func() registry.Game {
		return New()
	})
}
