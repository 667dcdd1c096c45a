// Package catch implements a catching demo: items fall from the top and the
// player slides along the floor to catch them before they leave the area.
package catch

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/charmbracelet/log"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/vovakirdan/arcade-demos/internal/config"
	"github.com/vovakirdan/arcade-demos/internal/core"
	"github.com/vovakirdan/arcade-demos/internal/flow"
	"github.com/vovakirdan/arcade-demos/internal/registry"
	"github.com/vovakirdan/arcade-demos/internal/sim"
)

// ID is the registry and score key for this demo.
const ID = config.CatchID

const (
	kindPlayer sim.Kind = iota + 1
	kindItem
)

// Visual characters for rendering
const (
	PlayerChar = '▀'
	ItemChar   = '◆'
	LifeChar   = '♥'
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// Game implements the catch demo.
type Game struct {
	sim        *sim.Simulation
	flow       *flow.Machine
	cfg        config.CatchConfig
	runtime    core.RuntimeConfig
	difficulty *config.DifficultyManager
	rng        *rand.Rand
	log        *log.Logger
	area       sim.PlayArea
	playerID   sim.BodyID

	score     sim.Counter
	lives     int
	sinceDrop float64 // seconds since the last item spawned
}

// New creates a new catch game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Catch Game"
}

// Reset loads the config and places the player on the floor.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.log = runtime.Log().WithPrefix(ID)

	cfg, err := config.LoadCatch(configPath)
	if err != nil {
		g.log.Warn("using default config", "err", err)
		cfg = config.DefaultCatchConfig()
	}
	config.ApplyPreset(&cfg.Difficulty, difficultyPreset)
	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)

	g.area = cfg.Area.PlayArea()
	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.sim = sim.NewSimulation(sim.Config{
		Area:   g.area,
		Dt:     runtime.Dt(),
		Logger: g.log,
	})
	g.flow = flow.Restart(g.flow, flow.InGame)

	g.score = sim.Counter{}
	g.lives = cfg.Gameplay.Lives
	g.sinceDrop = 0

	ph := cfg.Player.HalfSize
	g.playerID = g.sim.Spawn(sim.Spec{
		Kind:       kindPlayer,
		Pos:        r2.Vec{X: 0, Y: g.area.Bottom + 2*ph},
		HalfExtent: r2.Vec{X: ph, Y: ph},
		Policy:     sim.PolicyNone,
	})
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionPause) {
		g.flow.Fire(flow.EventTogglePause)
	}
	if !g.flow.Running() {
		return core.StepResult{State: g.State()}
	}

	dt := g.sim.Dt()

	if p, ok := g.sim.World.Get(g.playerID); ok {
		dx, _ := in.Direction()
		p.Pos = sim.ClampMove(p.Pos, r2.Vec{X: dx}, g.cfg.Player.Speed, dt,
			p.HalfExtent(), g.area, g.cfg.Player.Padding)
	}

	g.sinceDrop += dt
	interval := g.difficulty.Interval(g.cfg.Items.SpawnInterval, g.score.Value, g.sim.Ticks())
	if g.sinceDrop >= interval {
		g.sinceDrop = 0
		g.dropItem()
	}

	for _, ev := range g.sim.Step() {
		if ev.Type == sim.EventDespawn && ev.Kind == kindItem {
			g.lives--
			g.log.Debug("missed", "id", ev.A, "lives", g.lives)
		}
	}

	for _, ev := range sim.OverlapPairs(g.sim.World, kindItem, kindPlayer) {
		if g.sim.World.Despawn(ev.A) {
			g.score.Inc()
		}
	}
	g.sim.World.Compact()

	if g.lives <= 0 {
		g.lives = 0
		g.flow.Fire(flow.EventLose)
	}

	return core.StepResult{State: g.State()}
}

// dropItem spawns an item just below the top edge at a random column.
func (g *Game) dropItem() {
	h := g.cfg.Items.HalfSize
	x := g.area.Left + h + g.rng.Float64()*(g.area.Width()-2*h)
	speed := g.difficulty.Speed(g.cfg.Items.FallSpeed, g.score.Value, g.sim.Ticks())
	g.sim.Spawn(sim.Spec{
		Kind:       kindItem,
		Pos:        r2.Vec{X: x, Y: g.area.Top - h},
		Vel:        r2.Vec{Y: -speed},
		HalfExtent: r2.Vec{X: h, Y: h},
		Policy:     sim.PolicyDespawn,
	})
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	w, h := dst.Width(), dst.Height()
	dst.DrawBox(core.Frame(w, h), core.ColorGray)
	vp := core.NewViewport(g.area, core.Playfield(w, h))

	g.sim.World.Each(func(b *sim.Body) bool {
		switch b.Kind {
		case kindPlayer:
			vp.Fill(dst, b.Pos, b.HalfExtent(), PlayerChar, core.ColorGreen)
		case kindItem:
			x, y := vp.ToCell(b.Pos)
			if vp.Visible(x, y) {
				dst.SetColor(x, y, ItemChar, core.ColorYellow)
			}
		}
		return true
	})

	dst.DrawText(1, 0, fmt.Sprintf(" Score: %d ", g.score.Value))
	dst.DrawTextColor(14, 0, strings.Repeat(string(LifeChar), g.lives), core.ColorRed)

	switch g.flow.State() {
	case flow.Pause:
		dst.DrawMessage("PAUSED", "Press P to resume")
	case flow.GameOver:
		dst.DrawMessage("GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", g.score.Value))
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score.Value,
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
