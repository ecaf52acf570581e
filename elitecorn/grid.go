package elitecorn

import (
	"iter"
	"strconv"
)

type Height int

type Cell struct {
	Coordinate Coordinate
	Height     Height
}

// Grid is built once and never changed afterwards, so every query on it is
// safe to run from several goroutines at once.
type Grid struct {
	cells  map[Coordinate]Cell
	width  int
	height int
}

// NewGrid builds a grid from row-major heights. Every row must have the
// same length; a ragged grid is rejected rather than truncated.
func NewGrid(rows [][]Height) (*Grid, error) {
	g := Grid{cells: make(map[Coordinate]Cell)}
	if len(rows) == 0 {
		return &g, nil
	}
	g.width = len(rows[0])
	g.height = len(rows)
	for y, row := range rows {
		if len(row) == 0 {
			return nil, &ParseError{Line: y + 1, Column: 1, Reason: "empty row"}
		}
		if len(row) != g.width {
			return nil, &ParseError{
				Line:   y + 1,
				Column: min(len(row), g.width) + 1,
				Reason: "row has " + strconv.Itoa(len(row)) + " cells, expected " + strconv.Itoa(g.width),
			}
		}
		for x, h := range row {
			if h < 0 {
				return nil, &ParseError{Line: y + 1, Column: x + 1, Reason: "negative height"}
			}
			c := Coordinate{x, y}
			g.cells[c] = Cell{c, h}
		}
	}
	return &g, nil
}

func (g *Grid) Width() int {
	return g.width
}

func (g *Grid) Height() int {
	return g.height
}

func (g *Grid) Size() int {
	return len(g.cells)
}

func (g *Grid) InBounds(c Coordinate) bool {
	return c.X >= 0 && c.Y >= 0 && c.X < g.width && c.Y < g.height
}

func (g *Grid) IsOnEdge(c Coordinate) bool {
	return c.X == 0 || c.Y == 0 || c.X == g.width-1 || c.Y == g.height-1
}

func (g *Grid) Cell(c Coordinate) (Cell, bool) {
	cell, ok := g.cells[c]
	return cell, ok
}

// Cells yields every cell in row-major order.
func (g *Grid) Cells() iter.Seq[Cell] {
	return func(yield func(Cell) bool) {
		for y := 0; y < g.height; y++ {
			for x := 0; x < g.width; x++ {
				if !yield(g.cells[Coordinate{x, y}]) {
					return
				}
			}
		}
	}
}

// CastRay walks from one step past from in direction d and stops at the
// first coordinate outside the grid. The starting cell is never yielded, and
// an unknown direction yields nothing.
func (g *Grid) CastRay(from Coordinate, d Direction) iter.Seq[Cell] {
	return func(yield func(Cell) bool) {
		if dx, dy := d.Vector(); dx == 0 && dy == 0 {
			return
		}
		for c := from.Add(d); ; c = c.Add(d) {
			cell, ok := g.cells[c]
			if !ok {
				return
			}
			if !yield(cell) {
				return
			}
		}
	}
}

func (g *Grid) String() string {
	return g.renderRows(func(c Cell) string {
		return strconv.Itoa(int(c.Height))
	}, "")
}
