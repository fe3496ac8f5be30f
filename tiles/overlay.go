package tiles

// OverlayGrid stores per-cell decal texture ids, separate from the base
// tile types. Each cell holds an ordered, duplicate-free list because
// multiple decals can stack on one cell.
type OverlayGrid struct {
	rows  int
	cols  int
	cells [][]string
}

func NewOverlayGrid(rows, cols int) *OverlayGrid {
	if rows <= 0 || cols <= 0 {
		return &OverlayGrid{}
	}
	return &OverlayGrid{
		rows:  rows,
		cols:  cols,
		cells: make([][]string, rows*cols),
	}
}

func (g *OverlayGrid) Rows() int { return g.rows }
func (g *OverlayGrid) Cols() int { return g.cols }

func (g *OverlayGrid) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < g.rows && p.Col >= 0 && p.Col < g.cols
}

// Contains reports whether the cell at p holds id.
func (g *OverlayGrid) Contains(p Position, id string) bool {
	if !g.InBounds(p) {
		return false
	}
	for _, have := range g.cells[p.Row*g.cols+p.Col] {
		if have == id {
			return true
		}
	}
	return false
}

// Add appends id to the cell at p, keeping the list duplicate-free.
// It reports whether the cell changed.
func (g *OverlayGrid) Add(p Position, id string) bool {
	if !g.InBounds(p) || g.Contains(p, id) {
		return false
	}
	i := p.Row*g.cols + p.Col
	g.cells[i] = append(g.cells[i], id)
	return true
}

// Remove strikes id from the cell at p, preserving the order of the rest.
// It reports whether the cell changed.
func (g *OverlayGrid) Remove(p Position, id string) bool {
	if !g.InBounds(p) {
		return false
	}
	i := p.Row*g.cols + p.Col
	for j, have := range g.cells[i] {
		if have == id {
			g.cells[i] = append(g.cells[i][:j], g.cells[i][j+1:]...)
			if len(g.cells[i]) == 0 {
				g.cells[i] = nil
			}
			return true
		}
	}
	return false
}

// At returns a copy of the cell's id list, nil when empty or out of bounds.
func (g *OverlayGrid) At(p Position) []string {
	if !g.InBounds(p) {
		return nil
	}
	ids := g.cells[p.Row*g.cols+p.Col]
	if len(ids) == 0 {
		return nil
	}
	out := make([]string, len(ids))
	copy(out, ids)
	return out
}

// Clone returns an independent copy of the overlay grid.
func (g *OverlayGrid) Clone() *OverlayGrid {
	c := NewOverlayGrid(g.rows, g.cols)
	for i, ids := range g.cells {
		if len(ids) == 0 {
			continue
		}
		c.cells[i] = make([]string, len(ids))
		copy(c.cells[i], ids)
	}
	return c
}

// Equal reports whether two overlay grids have identical dimensions and
// identical id lists, order included.
func (g *OverlayGrid) Equal(o *OverlayGrid) bool {
	if g.rows != o.rows || g.cols != o.cols {
		return false
	}
	for i := range g.cells {
		if len(g.cells[i]) != len(o.cells[i]) {
			return false
		}
		for j := range g.cells[i] {
			if g.cells[i][j] != o.cells[i][j] {
				return false
			}
		}
	}
	return true
}
