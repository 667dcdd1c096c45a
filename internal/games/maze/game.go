// Package maze implements a grid maze demo with a title screen, pause and a
// sequence of levels. The player steps one cell at a time and must reach the
// goal on every level.
package maze

import (
	"fmt"

	"github.com/charmbracelet/log"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/vovakirdan/arcade-demos/internal/config"
	"github.com/vovakirdan/arcade-demos/internal/core"
	"github.com/vovakirdan/arcade-demos/internal/flow"
	"github.com/vovakirdan/arcade-demos/internal/registry"
	"github.com/vovakirdan/arcade-demos/internal/sim"
)

// ID is the registry and score key for this demo.
const ID = config.MazeID

// CellSize is the world size of one grid cell.
const CellSize = 16.0

const (
	kindPlayer sim.Kind = iota + 1
	kindWall
	kindGoal
)

// Visual characters for rendering
const (
	PlayerChar = '●'
	WallChar   = '█'
	GoalChar   = '◎'
)

var (
	// configPath stores the custom config path set via CLI
	configPath string

	// selectedStartLevel is the 1-based level chosen in the level picker.
	selectedStartLevel int
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetStartLevel sets the starting level (1-based). 0 means start from the
// first level.
func SetStartLevel(level int) {
	selectedStartLevel = level
}

// GetStartLevel returns the currently selected start level.
func GetStartLevel() int {
	return selectedStartLevel
}

// LevelNames returns the names of the configured levels.
func LevelNames() []string {
	cfg, err := config.LoadMaze(configPath)
	if err != nil {
		cfg = config.DefaultMazeConfig()
	}
	names := make([]string, len(cfg.Levels))
	for i, l := range cfg.Levels {
		names[i] = l.Name
		if names[i] == "" {
			names[i] = fmt.Sprintf("Level %d", i+1)
		}
	}
	return names
}

// LevelCount returns the number of configured levels.
func LevelCount() int {
	return len(LevelNames())
}

// Game implements the maze demo.
type Game struct {
	sim     *sim.Simulation
	flow    *flow.Machine
	cfg     config.MazeConfig
	runtime core.RuntimeConfig
	log     *log.Logger

	levels     []*Grid
	levelIndex int
	startLevel int
	grid       *Grid
	area       sim.PlayArea
	player     Cell
	playerID   sim.BodyID
	goalID     sim.BodyID

	cleared  int // levels finished this run
	cooldown int // ticks until a held direction repeats
	lastDir  Cell
	moves    int
}

// New creates a new maze instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Maze"
}

// Reset loads the levels and returns to the title screen.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.log = runtime.Log().WithPrefix(ID)

	cfg, err := config.LoadMaze(configPath)
	if err != nil {
		g.log.Warn("using default levels", "err", err)
		cfg = config.DefaultMazeConfig()
	}
	g.cfg = cfg

	g.levels = g.levels[:0]
	for _, l := range cfg.Levels {
		grid, err := ParseGrid(l)
		if err != nil {
			g.log.Warn("skipping level", "err", err)
			continue
		}
		g.levels = append(g.levels, grid)
	}
	if len(g.levels) == 0 {
		grid, _ := ParseGrid(config.DefaultMazeConfig().Levels[0])
		g.levels = append(g.levels, grid)
	}

	g.startLevel = 0
	if selectedStartLevel > 0 && selectedStartLevel <= len(g.levels) {
		g.startLevel = selectedStartLevel - 1
	}

	g.flow = flow.Restart(g.flow, flow.MainMenu)
	g.cleared = 0
	g.moves = 0
	g.loadLevel(g.startLevel)
}

// loadLevel rebuilds the world for level i.
func (g *Game) loadLevel(i int) {
	g.levelIndex = i
	g.grid = g.levels[i]
	g.area = sim.PlayArea{
		Left:   0,
		Right:  float64(g.grid.Width) * CellSize,
		Bottom: -float64(g.grid.Height) * CellSize,
		Top:    0,
	}
	g.sim = sim.NewSimulation(sim.Config{
		Area:   g.area,
		Dt:     g.runtime.Dt(),
		Logger: g.log,
	})

	half := r2.Vec{X: CellSize / 2, Y: CellSize / 2}
	for _, c := range g.grid.Walls() {
		g.sim.Spawn(sim.Spec{Kind: kindWall, Pos: g.cellCenter(c), HalfExtent: half})
	}
	g.goalID = g.sim.Spawn(sim.Spec{Kind: kindGoal, Pos: g.cellCenter(g.grid.Goal), HalfExtent: r2.Scale(0.5, half)})

	g.player = g.grid.Start
	g.playerID = g.sim.Spawn(sim.Spec{Kind: kindPlayer, Pos: g.cellCenter(g.player), HalfExtent: r2.Scale(0.8, half)})
	g.cooldown = 0
	g.lastDir = Cell{}
	g.log.Debug("level loaded", "index", i, "name", g.grid.Name)
}

// cellCenter maps a grid cell to its world-space center.
func (g *Game) cellCenter(c Cell) r2.Vec {
	return r2.Vec{
		X: (float64(c.X) + 0.5) * CellSize,
		Y: -(float64(c.Y) + 0.5) * CellSize,
	}
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	switch g.flow.State() {
	case flow.MainMenu:
		if in.Has(core.ActionConfirm) || in.Has(core.ActionFire) {
			g.flow.Fire(flow.EventStart)
		}
		return core.StepResult{State: g.State()}
	case flow.Pause:
		if in.Has(core.ActionPause) {
			g.flow.Fire(flow.EventResume)
		} else if in.Has(core.ActionBack) {
			g.returnToMenu()
		}
		return core.StepResult{State: g.State()}
	case flow.GameOver:
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.flow.Fire(flow.EventPause)
		return core.StepResult{State: g.State()}
	}
	if in.Has(core.ActionBack) {
		g.returnToMenu()
		return core.StepResult{State: g.State()}
	}

	g.move(in)
	g.sim.Step()

	p, _ := g.sim.World.Get(g.playerID)
	goal, _ := g.sim.World.Get(g.goalID)
	if p != nil && goal != nil && sim.Overlaps(p, goal) {
		g.reachGoal()
	}

	return core.StepResult{State: g.State()}
}

// move steps the player one cell in the held direction. A new direction moves
// at once; holding the same direction repeats every MoveDelay ticks.
func (g *Game) move(in core.InputFrame) {
	dx, dy := in.Direction()
	dir := Cell{X: int(dx), Y: -int(dy)} // grid rows grow downward
	if dir.X != 0 && dir.Y != 0 {
		dir.Y = 0
	}

	if g.cooldown > 0 {
		g.cooldown--
	}
	if dir == (Cell{}) {
		g.lastDir = dir
		return
	}
	if dir == g.lastDir && g.cooldown > 0 {
		return
	}
	g.lastDir = dir
	g.cooldown = g.cfg.MoveDelay

	next := g.player.Add(dir.X, dir.Y)
	if g.grid.InWall(next) {
		return
	}
	g.player = next
	g.moves++
	if p, ok := g.sim.World.Get(g.playerID); ok {
		p.Pos = g.cellCenter(next)
	}
}

// reachGoal advances to the next level, or ends the run after the last one.
func (g *Game) reachGoal() {
	g.cleared++
	g.log.Debug("goal reached", "level", g.levelIndex, "moves", g.moves)
	if g.levelIndex+1 >= len(g.levels) {
		g.flow.Fire(flow.EventWin)
		return
	}
	g.loadLevel(g.levelIndex + 1)
}

// returnToMenu goes back to the title screen and restarts the run.
func (g *Game) returnToMenu() {
	g.flow.Fire(flow.EventMenu)
	g.cleared = 0
	g.moves = 0
	g.loadLevel(g.startLevel)
}

// Level returns the 0-based index of the current level.
func (g *Game) Level() int {
	return g.levelIndex
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	w, h := dst.Width(), dst.Height()

	if g.flow.Is(flow.MainMenu) {
		g.renderTitle(dst)
		return
	}

	dst.DrawBox(core.Frame(w, h), core.ColorGray)
	vp := core.NewViewport(g.area, core.Playfield(w, h))

	g.sim.World.Each(func(b *sim.Body) bool {
		switch b.Kind {
		case kindWall:
			vp.Fill(dst, b.Pos, b.HalfExtent(), WallChar, core.ColorWhite)
		case kindGoal:
			vp.Fill(dst, b.Pos, b.HalfExtent(), GoalChar, core.ColorYellow)
		case kindPlayer:
			vp.Fill(dst, b.Pos, b.HalfExtent(), PlayerChar, core.ColorGreen)
		}
		return true
	})

	dst.DrawText(1, 0, fmt.Sprintf(" Level %d/%d: %s  Moves: %d ",
		g.levelIndex+1, len(g.levels), g.grid.Name, g.moves))

	switch g.flow.State() {
	case flow.Pause:
		dst.DrawMessage("PAUSED", "P to resume  |  B for menu")
	case flow.GameOver:
		dst.DrawMessage("YOU ESCAPED", fmt.Sprintf("Levels: %d  Moves: %d  |  Press R to restart", g.cleared, g.moves))
	}
}

func (g *Game) renderTitle(dst *core.Screen) {
	dst.DrawBox(dst.Bounds(), core.ColorCyan)
	mid := dst.Height() / 2
	dst.DrawTextCentered(mid-2, "M A Z E")
	dst.DrawTextCentered(mid, fmt.Sprintf("Starting at level %d: %s", g.startLevel+1, g.levels[g.startLevel].Name))
	dst.DrawTextCentered(mid+2, "Press Enter to start")
	dst.DrawTextCentered(mid+3, "Arrows move  |  P pause  |  Q quit")
}

// State returns the current game state. The score is the number of levels
// cleared.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.cleared,
		GameOver: g.flow.Is(flow.GameOver),
		Won:      g.flow.Won(),
		Paused:   g.flow.Is(flow.Pause),
		InMenu:   g.flow.Is(flow.MainMenu),
	}
}

// Register the game with the registry
func init() {
	registry.Register(ID, func() registry.Game {
		return New()
	})
}
