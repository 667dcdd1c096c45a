package maze

import (
	"testing"

	"github.com/vovakirdan/arcade-demos/internal/config"
	"github.com/vovakirdan/arcade-demos/internal/core"
	"github.com/vovakirdan/arcade-demos/internal/flow"
)

func newGame(t *testing.T) *Game {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())
	SetStartLevel(0)
	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1})
	return g
}

func press(g *Game, actions ...core.Action) {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	g.Step(in)
}

// tap presses a direction and then releases it so the next tap moves again.
func tap(g *Game, a core.Action) {
	press(g, a)
	press(g)
}

func TestParseGrid(t *testing.T) {
	g, err := ParseGrid(config.MazeLevel{
		Name: "tiny",
		Grid: []string{
			"###",
			"#PG",
		},
	})
	if err != nil {
		t.Fatalf("ParseGrid: %v", err)
	}
	if g.Width != 3 || g.Height != 2 {
		t.Errorf("size = %dx%d, expected 3x2", g.Width, g.Height)
	}
	if g.Start != (Cell{1, 1}) || g.Goal != (Cell{2, 1}) {
		t.Errorf("start %v goal %v", g.Start, g.Goal)
	}
	if len(g.Walls()) != 4 {
		t.Errorf("walls = %d, expected 4", len(g.Walls()))
	}
}

func TestParseGridErrors(t *testing.T) {
	tests := []struct {
		name string
		grid []string
	}{
		{"empty", nil},
		{"no goal", []string{"P.."}},
		{"two players", []string{"PPG"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ParseGrid(config.MazeLevel{Name: tc.name, Grid: tc.grid}); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestInWall(t *testing.T) {
	g, err := ParseGrid(config.MazeLevel{Grid: []string{"P#", ".G"}})
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		c    Cell
		want bool
	}{
		{Cell{0, 0}, false},
		{Cell{1, 0}, true},
		{Cell{-1, 0}, true},
		{Cell{0, -1}, true},
		{Cell{2, 1}, true},
		{Cell{0, 2}, true},
		{Cell{1, 1}, false},
	}
	for _, tc := range tests {
		if got := g.InWall(tc.c); got != tc.want {
			t.Errorf("InWall(%v) = %v, expected %v", tc.c, got, tc.want)
		}
	}
}

func TestStartsInMainMenu(t *testing.T) {
	g := newGame(t)

	if !g.State().InMenu {
		t.Fatal("expected the title screen after Reset")
	}
	// Movement is ignored on the title screen.
	tap(g, core.ActionRight)
	if g.player != g.grid.Start {
		t.Error("player moved on the title screen")
	}

	press(g, core.ActionConfirm)
	if !g.flow.Is(flow.InGame) {
		t.Errorf("state = %v after Enter, expected InGame", g.flow.State())
	}
}

func TestWallsBlockMovement(t *testing.T) {
	g := newGame(t)
	press(g, core.ActionConfirm)

	start := g.player
	tap(g, core.ActionUp) // row 0 is wall on the first level
	if g.player != start {
		t.Errorf("moved into a wall: %v -> %v", start, g.player)
	}

	tap(g, core.ActionRight)
	if g.player != start.Add(1, 0) {
		t.Errorf("player at %v, expected %v", g.player, start.Add(1, 0))
	}
}

func TestHeldDirectionRepeats(t *testing.T) {
	g := newGame(t)
	press(g, core.ActionConfirm)
	start := g.player

	for i := 0; i < g.cfg.MoveDelay; i++ {
		press(g, core.ActionRight)
	}
	if g.player != start.Add(1, 0) {
		t.Fatalf("held key moved to %v within one delay, expected one step", g.player)
	}
	press(g, core.ActionRight)
	if g.player != start.Add(2, 0) {
		t.Errorf("held key should repeat after the delay, player at %v", g.player)
	}
}

func TestPauseAndResume(t *testing.T) {
	g := newGame(t)
	press(g, core.ActionConfirm)

	press(g, core.ActionPause)
	if !g.State().Paused {
		t.Fatal("expected paused")
	}
	start := g.player
	tap(g, core.ActionRight)
	if g.player != start {
		t.Error("moved while paused")
	}

	press(g, core.ActionPause)
	if !g.flow.Is(flow.InGame) {
		t.Errorf("state = %v, expected InGame after resume", g.flow.State())
	}
}

func TestBackReturnsToMenu(t *testing.T) {
	g := newGame(t)
	press(g, core.ActionConfirm)
	tap(g, core.ActionRight)

	press(g, core.ActionBack)
	if !g.State().InMenu {
		t.Fatal("Back should return to the title screen")
	}
	if g.player != g.grid.Start {
		t.Error("returning to the menu should restart the level")
	}
}

// TestCompleteAllLevels walks every embedded level along its shortest path.
func TestCompleteAllLevels(t *testing.T) {
	g := newGame(t)
	press(g, core.ActionConfirm)

	for level := 0; level < len(g.levels); level++ {
		path := bfs(g.grid)
		if path == nil {
			t.Fatalf("level %d has no path", level)
		}
		for _, a := range path {
			tap(g, a)
		}
		if level+1 < len(g.levels) && g.Level() != level+1 {
			t.Fatalf("after solving level %d, current level is %d", level, g.Level())
		}
	}

	st := g.State()
	if !st.GameOver || !g.flow.Won() {
		t.Fatal("finishing the last level should be a win")
	}
	if st.Score != len(g.levels) {
		t.Errorf("score = %d, expected %d", st.Score, len(g.levels))
	}
}

func TestStartLevel(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())
	SetStartLevel(2)
	defer SetStartLevel(0)

	g := New()
	g.Reset(core.DefaultConfig())
	if g.Level() != 1 {
		t.Errorf("Level() = %d, expected 1", g.Level())
	}
	if LevelCount() != 3 || len(LevelNames()) != 3 {
		t.Errorf("LevelCount = %d, expected 3", LevelCount())
	}
}

// bfs finds the shortest path from start to goal as direction actions.
func bfs(g *Grid) []core.Action {
	type step struct {
		prev Cell
		act  core.Action
	}
	dirs := []struct {
		dx, dy int
		act    core.Action
	}{
		{1, 0, core.ActionRight},
		{-1, 0, core.ActionLeft},
		{0, 1, core.ActionDown},
		{0, -1, core.ActionUp},
	}

	seen := map[Cell]step{g.Start: {}}
	queue := []Cell{g.Start}
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		if c == g.Goal {
			var path []core.Action
			for c != g.Start {
				s := seen[c]
				path = append([]core.Action{s.act}, path...)
				c = s.prev
			}
			return path
		}
		for _, d := range dirs {
			n := c.Add(d.dx, d.dy)
			if _, ok := seen[n]; ok || g.InWall(n) {
				continue
			}
			seen[n] = step{prev: c, act: d.act}
			queue = append(queue, n)
		}
	}
	return nil
}
