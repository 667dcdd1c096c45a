// Package click implements the click-the-balls demo: balls bounce around a
// walled area and every pointer click on one removes it.
package click

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/charmbracelet/log"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/vovakirdan/arcade-demos/internal/config"
	"github.com/vovakirdan/arcade-demos/internal/core"
	"github.com/vovakirdan/arcade-demos/internal/flow"
	"github.com/vovakirdan/arcade-demos/internal/registry"
	"github.com/vovakirdan/arcade-demos/internal/sim"
)

// ID is the registry and score key for this demo.
const ID = config.ClickID

const kindBall sim.Kind = 1

// BallChar is the glyph used for balls.
const BallChar = '●'

// configPath stores the custom config path set via CLI
var configPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// Game implements the click demo.
type Game struct {
	sim     *sim.Simulation
	flow    *flow.Machine
	cfg     config.ClickConfig
	runtime core.RuntimeConfig
	rng     *rand.Rand
	log     *log.Logger
	area    sim.PlayArea

	remaining sim.Counter // balls left on the field
	ticksLeft int
	timed     bool
}

// New creates a new click game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Click Game"
}

// Reset loads the config and scatters the balls.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.log = runtime.Log().WithPrefix(ID)

	cfg, err := config.LoadClick(configPath)
	if err != nil {
		g.log.Warn("using default config", "err", err)
		cfg = config.DefaultClickConfig()
	}
	g.cfg = cfg
	g.area = cfg.Area.PlayArea()
	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.sim = sim.NewSimulation(sim.Config{
		Area:      g.area,
		Dt:        runtime.Dt(),
		HitMargin: cfg.HitMargin,
		Logger:    g.log,
	})
	g.flow = flow.Restart(g.flow, flow.InGame)
	g.ticksLeft = cfg.Round.Ticks(runtime.TickRate)
	g.timed = g.ticksLeft > 0

	g.spawnBalls()
	g.remaining = sim.Counter{Value: g.sim.World.Len()}
}

// spawnBalls places balls uniformly inside the walls shrunk by one ball size,
// each with a velocity drawn from [-0.5, 0.5) per axis times the ball speed.
func (g *Game) spawnBalls() {
	b := g.cfg.Balls
	size := 2 * b.HalfSize
	inner := g.area.Inset(size)
	for i := 0; i < b.Count; i++ {
		pos := r2.Vec{
			X: uniform(g.rng, inner.Left, inner.Right),
			Y: uniform(g.rng, inner.Bottom, inner.Top),
		}
		vel := r2.Vec{
			X: g.rng.Float64() - 0.5,
			Y: g.rng.Float64() - 0.5,
		}
		g.sim.Spawn(sim.Spec{
			Kind:       kindBall,
			Pos:        pos,
			Vel:        r2.Scale(b.Speed, vel),
			HalfExtent: r2.Vec{X: b.HalfSize, Y: b.HalfSize},
			Policy:     sim.PolicyBounce,
		})
	}
}

// uniform samples [lo, hi). A degenerate range returns its midpoint.
func uniform(rng *rand.Rand, lo, hi float64) float64 {
	if hi <= lo {
		return (lo + hi) / 2
	}
	return lo + rng.Float64()*(hi-lo)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionPause) {
		g.flow.Fire(flow.EventTogglePause)
	}
	if !g.flow.Running() {
		return core.StepResult{State: g.State()}
	}

	g.sim.Step()

	if in.Click != nil {
		vp := g.viewport()
		p := vp.ToWorld(in.Click.X, in.Click.Y)
		g.Click(p)
	}

	if g.remaining.Value <= 0 {
		g.flow.Fire(flow.EventWin)
		return core.StepResult{State: g.State()}
	}

	if g.timed {
		g.ticksLeft--
		if g.ticksLeft <= 0 {
			g.ticksLeft = 0
			g.flow.Fire(flow.EventLose)
		}
	}

	return core.StepResult{State: g.State()}
}

// Resize follows a terminal resize without restarting the run.
func (g *Game) Resize(runtime core.RuntimeConfig) {
	g.runtime.ScreenW = runtime.ScreenW
	g.runtime.ScreenH = runtime.ScreenH
}

// Click resolves a pointer press at world point p and reports whether a ball
// was removed.
func (g *Game) Click(p r2.Vec) bool {
	ev, ok := sim.ClickHit(g.sim.World, p, g.sim.HitMargin(), &g.remaining, kindBall)
	if ok {
		g.log.Debug("ball removed", "id", ev.A, "remaining", g.remaining.Value)
		g.sim.World.Compact()
	}
	return ok
}

func (g *Game) viewport() core.Viewport {
	return core.NewViewport(g.area, core.Playfield(g.runtime.ScreenW, g.runtime.ScreenH))
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	w, h := dst.Width(), dst.Height()
	dst.DrawBox(core.Frame(w, h), core.ColorGray)
	vp := core.NewViewport(g.area, core.Playfield(w, h))

	g.sim.World.EachKind(kindBall, func(b *sim.Body) bool {
		x, y := vp.ToCell(b.Pos)
		if vp.Visible(x, y) {
			dst.SetColor(x, y, BallChar, core.ColorRed)
		}
		return true
	})

	dst.DrawTextColor(1, 0, " Ball Count: ", core.ColorBlue)
	dst.DrawTextColor(14, 0, fmt.Sprintf("%d ", g.remaining.Value), core.ColorBrightRed)
	if g.timed {
		secs := int(math.Ceil(float64(g.ticksLeft) / float64(max(g.runtime.TickRate, 1))))
		dst.DrawText(20, 0, fmt.Sprintf(" Time: %d ", secs))
	}

	switch g.flow.State() {
	case flow.Pause:
		dst.DrawMessage("PAUSED", "Press P to resume")
	case flow.GameOver:
		title := "TIME UP"
		if g.flow.Won() {
			title = "ALL CLEAR"
		}
		dst.DrawMessage(title, fmt.Sprintf("Cleared: %d  |  Press R to restart", g.cleared()))
	}
}

// cleared is the number of balls removed so far.
func (g *Game) cleared() int {
	return g.cfg.Balls.Count - g.remaining.Value
}

// State returns the current game state. The score is the number of balls
// cleared.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.cleared(),
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
