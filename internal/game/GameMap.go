package game

import (
	"fmt"
	"strings"
)

// Grid is the fixed-size playfield. An occupied cell belongs either to the
// falling shape or to a shape that has already landed.
type Grid struct {
	width  int
	height int
	cells  [][]Cell
}

func NewGrid(width int, height int) *Grid {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("game: invalid grid size %dx%d", width, height))
	}

	cells := make([][]Cell, height)
	for row := 0; row < height; row++ {
		cells[row] = make([]Cell, width)
	}

	return &Grid{width: width, height: height, cells: cells}
}

func (g *Grid) Width() int { return g.width }
func (g *Grid) Height() int { return g.height }

func (g *Grid) contains(p Position) bool {
	return p.Row >= 0 && p.Row < g.height && p.Col >= 0 && p.Col < g.width
}

// Collision is the only boundary and overlap check in the engine.
func (g *Grid) Collision(p Position) bool {
	return !g.contains(p) || !g.cells[p.Row][p.Col].IsEmpty()
}

// Get panics when p is outside the grid; callers check Collision first.
func (g *Grid) Get(p Position) Cell {
	g.mustContain(p)
	return g.cells[p.Row][p.Col]
}

func (g *Grid) Set(p Position, c Cell) {
	g.mustContain(p)
	g.cells[p.Row][p.Col] = c
}

func (g *Grid) mustContain(p Position) {
	if !g.contains(p) {
		panic(fmt.Sprintf("game: position %s outside %dx%d grid", p, g.width, g.height))
	}
}

func (g *Grid) IsRowFull(row int) bool {
	for _, c := range g.cells[row] {
		if c.IsEmpty() {
			return false
		}
	}
	return true
}

// ClearFullRows removes every full row in one top-down pass and returns how
// many were removed. Each removal pulls all rows above it down by one and
// empties row 0. Row 0 itself is never tested.
func (g *Grid) ClearFullRows() int {
	removed := 0
	for row := 1; row < g.height; row++ {
		if !g.IsRowFull(row) {
			continue
		}
		for r := row; r > 0; r-- {
			copy(g.cells[r], g.cells[r-1])
		}
		clear(g.cells[0])
		removed++
	}
	return removed
}

// Cells returns a copy of the cell buffer for observers.
func (g *Grid) Cells() [][]Cell {
	snapshot := make([][]Cell, g.height)
	for row := range g.cells {
		snapshot[row] = append([]Cell(nil), g.cells[row]...)
	}
	return snapshot
}

// ColumnHeights reports, per column, the height of the highest occupied cell
// not covered by ignore.
func (g *Grid) ColumnHeights(ignore []Block) []int {
	skip := make(map[Position]bool, len(ignore))
	for _, b := range ignore {
		skip[b.Pos] = true
	}

	heights := make([]int, g.width)
	for col := 0; col < g.width; col++ {
		for row := 0; row < g.height; row++ {
			p := Position{Row: row, Col: col}
			if skip[p] || g.cells[row][col].IsEmpty() {
				continue
			}
			heights[col] = g.height - row
			break
		}
	}
	return heights
}

// String draws the grid with X for occupied and _ for empty cells, one row
// per line.
func (g *Grid) String() string {
	var sb strings.Builder
	for row := range g.cells {
		for _, c := range g.cells[row] {
			if c.IsEmpty() {
				sb.WriteByte('_')
			} else {
				sb.WriteByte('X')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
