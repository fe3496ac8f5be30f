package tiles

import "fmt"

// Grid is a rectangular matrix of tile types stored row-major, the same
// layout the editor uses for layer data. Dimensions are fixed for the
// grid's lifetime.
type Grid struct {
	rows  int
	cols  int
	cells []Type
}

// NewGrid returns a rows x cols grid with every cell set to Empty.
func NewGrid(rows, cols int) *Grid {
	if rows <= 0 || cols <= 0 {
		return &Grid{}
	}
	g := &Grid{
		rows:  rows,
		cols:  cols,
		cells: make([]Type, rows*cols),
	}
	g.Fill(Empty)
	return g
}

// NewGridFrom builds a grid from explicit rows. Jagged input is rejected.
func NewGridFrom(rows [][]Type) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("tiles: grid must have at least one row and column")
	}
	cols := len(rows[0])
	g := NewGrid(len(rows), cols)
	for r, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("tiles: jagged grid: row %d has %d cells, want %d", r, len(row), cols)
		}
		copy(g.cells[r*cols:(r+1)*cols], row)
	}
	return g, nil
}

func (g *Grid) Rows() int { return g.rows }
func (g *Grid) Cols() int { return g.cols }

// InBounds reports whether (row, col) addresses a cell of the grid.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// Get returns the type at (row, col). The bool is false out of bounds,
// in which case the type is None.
func (g *Grid) Get(row, col int) (Type, bool) {
	if !g.InBounds(row, col) {
		return None, false
	}
	return g.cells[row*g.cols+col], true
}

// Set writes t at (row, col) and reports whether the cell exists.
func (g *Grid) Set(row, col int, t Type) bool {
	if !g.InBounds(row, col) {
		return false
	}
	g.cells[row*g.cols+col] = t
	return true
}

// Fill sets every cell to t.
func (g *Grid) Fill(t Type) {
	for i := range g.cells {
		g.cells[i] = t
	}
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	c := &Grid{
		rows:  g.rows,
		cols:  g.cols,
		cells: make([]Type, len(g.cells)),
	}
	copy(c.cells, g.cells)
	return c
}
