package tilemap

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/arcade-demos/internal/sim"
)

func TestPlace(t *testing.T) {
	m, err := Parse([]byte(`{"map": [[1, 0], [0, 1]]}`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	tiles := m.Place(sim.CenteredArea(800, 600), 40)
	if len(tiles) != 2 {
		t.Fatalf("got %d tiles, expected 2", len(tiles))
	}

	tests := []struct {
		col, row int
		x, y     float64
	}{
		{0, 0, -380, 280},
		{1, 1, -340, 240},
	}
	for i, tc := range tests {
		got := tiles[i]
		if got.Col != tc.col || got.Row != tc.row {
			t.Errorf("tile %d at (%d, %d), expected (%d, %d)", i, got.Col, got.Row, tc.col, tc.row)
		}
		if got.Center.X != tc.x || got.Center.Y != tc.y {
			t.Errorf("tile %d center = %v, expected (%v, %v)", i, got.Center, tc.x, tc.y)
		}
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"invalid json", `{"map": [[1, 0]`},
		{"no rows", `{"map": []}`},
		{"missing key", `{}`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Parse([]byte(tc.data)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestAtAndSize(t *testing.T) {
	m, err := Parse([]byte(`{"map": [[0, 1, 1], [1]]}`))
	if err != nil {
		t.Fatal(err)
	}
	if m.Rows() != 2 || m.Cols() != 3 {
		t.Errorf("size = %dx%d, expected 3x2", m.Cols(), m.Rows())
	}
	if m.At(1, 0) != Solid || m.At(1, 1) != 0 || m.At(-1, 0) != 0 || m.At(0, 5) != 0 {
		t.Error("At returned wrong values")
	}
}

func TestLoad(t *testing.T) {
	m, err := Load("")
	if err != nil {
		t.Fatalf("Load built-in: %v", err)
	}
	if len(m.Place(sim.CenteredArea(800, 600), 40)) == 0 {
		t.Error("built-in map has no solid tiles")
	}

	path := filepath.Join(t.TempDir(), "map.json")
	if err := os.WriteFile(path, []byte(`{"map": [[1]]}`), 0o644); err != nil {
		t.Fatal(err)
	}
	m, err = Load(path)
	if err != nil {
		t.Fatalf("Load(%s): %v", path, err)
	}
	if m.Rows() != 1 {
		t.Errorf("Rows = %d, expected 1", m.Rows())
	}

	if _, err := Load(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Error("expected error for missing file")
	}
}
