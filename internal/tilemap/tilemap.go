// Package tilemap loads integer grid maps stored as JSON
// ({"map": [[0, 1, ...], ...]}) and places their solid tiles in world space.
package tilemap

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/vovakirdan/arcade-demos/internal/sim"
)

// Solid is the cell value of a ground tile. Every other value is empty.
const Solid = 1

//go:embed map.json
var defaultMapJSON []byte

// Map is a row-major grid; row 0 is the top of the world.
type Map struct {
	Cells [][]int `json:"map"`
}

// Parse decodes a tile map.
func Parse(data []byte) (*Map, error) {
	var m Map
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("tilemap: parse: %w", err)
	}
	if len(m.Cells) == 0 {
		return nil, fmt.Errorf("tilemap: map has no rows")
	}
	return &m, nil
}

// Load reads a tile map from path, or the built-in map when path is empty.
func Load(path string) (*Map, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("tilemap: read %s: %w", path, err)
	}
	return Parse(data)
}

// Default returns the built-in run-and-jump map.
func Default() *Map {
	m, err := Parse(defaultMapJSON)
	if err != nil {
		panic(err)
	}
	return m
}

// Rows returns the number of rows.
func (m *Map) Rows() int {
	return len(m.Cells)
}

// Cols returns the length of the longest row. Rows may be ragged.
func (m *Map) Cols() int {
	n := 0
	for _, row := range m.Cells {
		n = max(n, len(row))
	}
	return n
}

// At returns the cell at column x, row y, or 0 outside the grid.
func (m *Map) At(x, y int) int {
	if y < 0 || y >= len(m.Cells) || x < 0 || x >= len(m.Cells[y]) {
		return 0
	}
	return m.Cells[y][x]
}

// Tile is a solid cell placed in world space.
type Tile struct {
	Col, Row int
	Center   r2.Vec
}

// Place lays the solid cells out from the top-left corner of area. The tile
// at (col, row) is centered at
// (area.Left + size*(col+0.5), area.Top - size*(row+0.5)).
func (m *Map) Place(area sim.PlayArea, size float64) []Tile {
	var tiles []Tile
	for y, row := range m.Cells {
		for x, cell := range row {
			if cell != Solid {
				continue
			}
			tiles = append(tiles, Tile{
				Col: x,
				Row: y,
				Center: r2.Vec{
					X: area.Left + size*(float64(x)+0.5),
					Y: area.Top - size*(float64(y)+0.5),
				},
			})
		}
	}
	return tiles
}
