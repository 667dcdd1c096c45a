// Package shooter implements a top-down shooting demo. The player ship moves
// inside the play area and fires upward at an enemy that bounces between the
// side walls.
package shooter

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
)

// ID is the registry and score key for this demo.
const ID = config.ShooterID

// Body kinds
const (
	kindPlayer sim.Kind = iota + 1
	kindBullet
	kindEnemy
)

// Visual characters for rendering
const (
	PlayerChar = '▲'
	EnemyChar  = '■'
	BulletChar = '|'
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

// Game implements the shooter demo.
type Game struct {
	sim        *sim.Simulation
	flow       *flow.Machine
	cfg        config.ShooterConfig
	runtime    core.RuntimeConfig
	difficulty *config.DifficultyManager
	log        *log.Logger

	area      sim.PlayArea
	enemyArea sim.PlayArea // walls the enemy turns at
	playerID  sim.BodyID
	enemyID   sim.BodyID

	score     sim.Counter
	cooldown  int // ticks until the next shot
	remaining int // ticks left in the round, when timed
	timed     bool
}

// New creates a new shooter instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "2D Shooting"
}

// Reset loads the config and places the player and enemy.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.log = runtime.Log().WithPrefix(ID)

	cfg, err := config.LoadShooter(configPath)
	if err != nil {
		g.log.Warn("using default config", "err", err)
		cfg = config.DefaultShooterConfig()
	}
	config.ApplyPreset(&cfg.Difficulty, difficultyPreset)
	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)

	g.area = cfg.Area.PlayArea()
	g.enemyArea = g.area.Inset(cfg.Enemy.WallInset)
	g.sim = sim.NewSimulation(sim.Config{
		Area:   g.area,
		Dt:     runtime.Dt(),
		Logger: g.log,
	})
	g.flow = flow.Restart(g.flow, flow.InGame)

	g.score = sim.Counter{}
	g.cooldown = 0
	g.remaining = cfg.Round.Ticks(runtime.TickRate)
	g.timed = g.remaining > 0

	ph := cfg.Player.HalfSize
	g.playerID = g.sim.Spawn(sim.Spec{
		Kind:       kindPlayer,
		Pos:        r2.Vec{X: 0, Y: g.area.Bottom + cfg.Player.FloorGap},
		HalfExtent: r2.Vec{X: ph, Y: ph},
		Policy:     sim.PolicyNone,
	})

	// The enemy turns at the inset walls, so the reflection is applied by
	// the game rather than by the simulation's full-area pass.
	eh := cfg.Enemy.HalfSize
	g.enemyID = g.sim.Spawn(sim.Spec{
		Kind:       kindEnemy,
		Pos:        r2.Vec{X: 0, Y: g.area.Top - cfg.Enemy.TopGap},
		Vel:        enemyVelocity(cfg.Enemy, cfg.Enemy.Speed),
		HalfExtent: r2.Vec{X: eh, Y: eh},
		Policy:     sim.PolicyNone,
	})
}

// enemyVelocity scales the configured direction to the given speed.
func enemyVelocity(e config.ShooterEnemy, speed float64) r2.Vec {
	dir := r2.Vec{X: e.DirectionX, Y: e.DirectionY}
	n := r2.Norm(dir)
	if n == 0 {
		return r2.Vec{X: -speed}
	}
	return r2.Scale(speed/n, dir)
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

	g.movePlayer(in, dt)
	g.fire(in)
	g.updateEnemySpeed()

	for _, ev := range g.sim.Step() {
		g.log.Debug("boundary", "event", ev.Type, "id", ev.A)
	}

	if enemy, ok := g.sim.World.Get(g.enemyID); ok {
		sim.Reflect(enemy, g.enemyArea)
	}

	for _, ev := range sim.OverlapPairs(g.sim.World, kindBullet, kindEnemy) {
		if g.sim.World.Despawn(ev.A) {
			g.score.Inc()
			g.log.Debug("hit", "bullet", ev.A, "score", g.score.Value)
		}
	}
	g.sim.World.Compact()

	if g.timed {
		g.remaining--
		if g.remaining <= 0 {
			g.remaining = 0
			g.flow.Fire(flow.EventLose)
		}
	}

	return core.StepResult{State: g.State()}
}

// movePlayer applies held direction keys through the clamped mover.
func (g *Game) movePlayer(in core.InputFrame, dt float64) {
	p, ok := g.sim.World.Get(g.playerID)
	if !ok {
		return
	}
	dx, dy := in.Direction()
	p.Pos = sim.ClampMove(p.Pos, r2.Vec{X: dx, Y: dy}, g.cfg.Player.Speed, dt,
		p.HalfExtent(), g.area, g.cfg.Player.Padding)
}

// fire spawns a bullet above the player when the cooldown allows.
func (g *Game) fire(in core.InputFrame) {
	if g.cooldown > 0 {
		g.cooldown--
	}
	if !in.Has(core.ActionFire) || g.cooldown > 0 {
		return
	}
	p, ok := g.sim.World.Get(g.playerID)
	if !ok {
		return
	}
	bh := g.cfg.Bullet.HalfSize
	g.sim.Spawn(sim.Spec{
		Kind:       kindBullet,
		Pos:        r2.Vec{X: p.Pos.X, Y: p.Pos.Y + p.HalfExtent().Y + bh},
		Vel:        r2.Vec{X: 0, Y: g.cfg.Bullet.Speed},
		HalfExtent: r2.Vec{X: bh, Y: bh},
		Policy:     sim.PolicyDespawn,
	})
	g.cooldown = g.cfg.Player.FireCooldown
}

// updateEnemySpeed keeps the enemy's heading and rescales it to the current
// difficulty.
func (g *Game) updateEnemySpeed() {
	e, ok := g.sim.World.Get(g.enemyID)
	if !ok {
		return
	}
	n := r2.Norm(e.Vel)
	if n == 0 {
		return
	}
	speed := g.difficulty.Speed(g.cfg.Enemy.Speed, g.score.Value, g.sim.Ticks())
	e.Vel = r2.Scale(speed/n, e.Vel)
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
		case kindEnemy:
			vp.Fill(dst, b.Pos, b.HalfExtent(), EnemyChar, core.ColorRed)
		case kindBullet:
			vp.Fill(dst, b.Pos, b.HalfExtent(), BulletChar, core.ColorYellow)
		}
		return true
	})

	hud := fmt.Sprintf(" Score: %d ", g.score.Value)
	if g.timed {
		secs := int(math.Ceil(float64(g.remaining) / float64(max(g.runtime.TickRate, 1))))
		hud += fmt.Sprintf(" Time: %d ", secs)
	}
	dst.DrawText(1, 0, hud)

	switch g.flow.State() {
	case flow.Pause:
		dst.DrawMessage("PAUSED", "Press P to resume")
	case flow.GameOver:
		dst.DrawMessage("TIME UP", fmt.Sprintf("Score: %d  |  Press R to restart", g.score.Value))
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
