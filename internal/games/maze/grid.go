package maze

import (
	"fmt"

	"github.com/vovakirdan/arcade-demos/internal/config"
)

// Cell is an integer grid coordinate. Row 0 is the top row.
type Cell struct {
	X, Y int
}

// Add returns c moved by (dx, dy).
func (c Cell) Add(dx, dy int) Cell {
	return Cell{X: c.X + dx, Y: c.Y + dy}
}

// Grid is a parsed maze level.
type Grid struct {
	Name   string
	Width  int
	Height int
	Start  Cell
	Goal   Cell
	walls  map[Cell]bool
}

// ParseGrid reads a level. It needs exactly one 'P' and one 'G'. Rows may be
// ragged; missing cells are floor.
func ParseGrid(level config.MazeLevel) (*Grid, error) {
	g := &Grid{
		Name:   level.Name,
		Height: len(level.Grid),
		walls:  make(map[Cell]bool),
	}
	if g.Height == 0 {
		return nil, fmt.Errorf("maze: level %q has no rows", level.Name)
	}

	var starts, goals int
	for y, row := range level.Grid {
		x := 0
		for _, r := range row {
			c := Cell{X: x, Y: y}
			switch r {
			case '#':
				g.walls[c] = true
			case 'P':
				g.Start = c
				starts++
			case 'G':
				g.Goal = c
				goals++
			}
			x++
		}
		g.Width = max(g.Width, x)
	}

	if starts != 1 || goals != 1 {
		return nil, fmt.Errorf("maze: level %q needs one P and one G, found %d and %d", level.Name, starts, goals)
	}
	return g, nil
}

// InWall reports whether c is blocked. Cells outside the grid are blocked.
func (g *Grid) InWall(c Cell) bool {
	return c.X < 0 ||
		c.Y < 0 ||
		c.X >= g.Width ||
		c.Y >= g.Height ||
		g.walls[c]
}

// Walls returns every wall cell in row-major order.
func (g *Grid) Walls() []Cell {
	cells := make([]Cell, 0, len(g.walls))
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if c := (Cell{X: x, Y: y}); g.walls[c] {
				cells = append(cells, c)
			}
		}
	}
	return cells
}
