package tiles

// Direction indexes the 8 cells surrounding a center cell. The order is
// also the bit order of Context.Mask: bit 0 is North, proceeding
// clockwise through bit 7 at NorthWest.
type Direction int

const (
	North Direction = iota
	NorthEast
	East
	SouthEast
	South
	SouthWest
	West
	NorthWest
)

var directionNames = [8]string{
	"TOP", "TOP_RIGHT", "RIGHT", "BOTTOM_RIGHT",
	"BOTTOM", "BOTTOM_LEFT", "LEFT", "TOP_LEFT",
}

// String names the direction the way texture assets do, with North as TOP.
func (d Direction) String() string {
	if d < 0 || d > NorthWest {
		return "INVALID"
	}
	return directionNames[d]
}

// Diagonal reports whether d is one of the 4 corner directions.
func (d Direction) Diagonal() bool {
	return d == NorthEast || d == SouthEast || d == SouthWest || d == NorthWest
}

// offsets holds the row/col delta for each direction, indexed by Direction.
var offsets = [8]Position{
	{Row: -1, Col: 0},  // North
	{Row: -1, Col: 1},  // NorthEast
	{Row: 0, Col: 1},   // East
	{Row: 1, Col: 1},   // SouthEast
	{Row: 1, Col: 0},   // South
	{Row: 1, Col: -1},  // SouthWest
	{Row: 0, Col: -1},  // West
	{Row: -1, Col: -1}, // NorthWest
}

// Offset returns the row/col delta from a center cell to its d neighbor.
func (d Direction) Offset() Position { return offsets[d] }

// Context describes one cell's surroundings: the raw neighbor types, the
// per-direction connection flags and the packed connectivity mask. Two
// cells connect only when they hold the identical non-Empty type;
// out-of-bounds neighbors are sampled as None and never connect.
type Context struct {
	Pos  Position
	Type Type

	// Neighbors holds the sampled type per Direction, None out of bounds.
	Neighbors [8]Type

	North bool
	East  bool
	South bool
	West  bool

	NorthEast bool
	SouthEast bool
	SouthWest bool
	NorthWest bool

	// Mask packs all 8 connection flags, bit i = Direction(i).
	Mask uint8
}

// Connected reports the connection flag for direction d.
func (c Context) Connected(d Direction) bool {
	return c.Mask&(1<<uint(d)) != 0
}

// CardinalCount returns how many of the 4 cardinal neighbors connect.
func (c Context) CardinalCount() int {
	n := 0
	for _, ok := range [4]bool{c.North, c.East, c.South, c.West} {
		if ok {
			n++
		}
	}
	return n
}

// DiagonalCount returns how many of the 4 diagonal neighbors connect.
func (c Context) DiagonalCount() int {
	n := 0
	for _, ok := range [4]bool{c.NorthEast, c.SouthEast, c.SouthWest, c.NorthWest} {
		if ok {
			n++
		}
	}
	return n
}

// Analyzer samples neighborhoods out of one grid. It keeps a plain
// reference; callers must not mutate the grid while analyzing.
type Analyzer struct {
	grid *Grid
}

func NewAnalyzer(g *Grid) *Analyzer {
	return &Analyzer{grid: g}
}

// SetGrid swaps the analyzer's grid reference. No copy is made.
func (a *Analyzer) SetGrid(g *Grid) {
	a.grid = g
}

// Analyze samples the 8 neighbors of (row, col) against the cell's own type.
func (a *Analyzer) Analyze(row, col int) Context {
	center, _ := a.grid.Get(row, col)
	return a.AnalyzeAs(row, col, center)
}

// AnalyzeAs samples the 8 neighbors of (row, col) as if the center held
// the given type, without writing it to the grid.
func (a *Analyzer) AnalyzeAs(row, col int, center Type) Context {
	ctx := Context{
		Pos:  Position{Row: row, Col: col},
		Type: center,
	}

	for d := North; d <= NorthWest; d++ {
		off := offsets[d]
		t, ok := a.grid.Get(row+off.Row, col+off.Col)
		if !ok {
			ctx.Neighbors[d] = None
			continue
		}
		ctx.Neighbors[d] = t
		if center != Empty && center != None && t == center {
			ctx.Mask |= 1 << uint(d)
		}
	}

	ctx.North = ctx.Connected(North)
	ctx.East = ctx.Connected(East)
	ctx.South = ctx.Connected(South)
	ctx.West = ctx.Connected(West)
	ctx.NorthEast = ctx.Connected(NorthEast)
	ctx.SouthEast = ctx.Connected(SouthEast)
	ctx.SouthWest = ctx.Connected(SouthWest)
	ctx.NorthWest = ctx.Connected(NorthWest)

	return ctx
}

// NeighborPositions returns the in-bounds neighbors of (row, col), in
// Direction order. Between 0 and 8 entries.
func (a *Analyzer) NeighborPositions(row, col int) []Position {
	out := make([]Position, 0, 8)
	for d := North; d <= NorthWest; d++ {
		off := offsets[d]
		p := Position{Row: row + off.Row, Col: col + off.Col}
		if a.grid.InBounds(p.Row, p.Col) {
			out = append(out, p)
		}
	}
	return out
}
