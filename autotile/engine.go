package autotile

import (
	"fmt"

	"github.com/MateusSousaSantos/RpgMapEditor-sub000/tiles"
	"github.com/MateusSousaSantos/RpgMapEditor-sub000/tileset"
)

// Update is the unit of engine output: the texture now assigned to one
// occupied cell.
type Update struct {
	Pos       tiles.Position
	TextureID string
	Type      tiles.Type
}

// Result is everything one edit produced: the recorded updates and the
// full set of positions the propagation visited, in visit order.
type Result struct {
	Updates []Update
	Visited []tiles.Position
}

// Engine owns the authoritative grid for one layer and keeps its resolved
// textures consistent while cells change. It dispatches per tile type
// through a resolver table and re-evaluates neighborhoods breadth-first
// after every edit. One engine serves exactly one grid; it is not safe
// for concurrent use.
type Engine struct {
	grid     *tiles.Grid
	analyzer *tiles.Analyzer
	registry *tileset.Registry

	resolvers map[tiles.Type]Resolver
	generic   Resolver

	// changedOnly stops propagation at cells whose texture did not
	// change. Off by default: a full same-type region sweep is the
	// documented behavior downstream consumers rely on, even though it
	// is expensive on large uniform regions.
	changedOnly bool
	last        map[tiles.Position]string
}

// Option configures an Engine at construction.
type Option func(*Engine)

// WithChangedOnlyPropagation makes UpdateTile enqueue a cell's neighbors
// only when the cell's resolved texture actually changed, instead of
// sweeping the whole connected same-type region on every edit.
func WithChangedOnlyPropagation() Option {
	return func(e *Engine) { e.changedOnly = true }
}

// WithResolver registers a resolver for one tile type, replacing the
// default for that type.
func WithResolver(t tiles.Type, r Resolver) Option {
	return func(e *Engine) { e.resolvers[t] = r }
}

// NewEngine binds an engine to grid and registry. Wall tiles get the wall
// table, every other type the generic one, unless overridden by options.
func NewEngine(grid *tiles.Grid, reg *tileset.Registry, opts ...Option) *Engine {
	e := &Engine{
		grid:     grid,
		analyzer: tiles.NewAnalyzer(grid),
		registry: reg,
		resolvers: map[tiles.Type]Resolver{
			tiles.Wall: WallResolver{},
		},
		generic: TileResolver{},
		last:    map[tiles.Position]string{},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Grid returns the engine's authoritative grid.
func (e *Engine) Grid() *tiles.Grid { return e.grid }

func (e *Engine) resolverFor(t tiles.Type) Resolver {
	if r, ok := e.resolvers[t]; ok {
		return r
	}
	return e.generic
}

// resolve picks the texture for an analyzed cell, nil when the cell's
// type has no registered tileset at all. That absence is the only hard
// failure in resolution; everything else falls through texture fallbacks.
func (e *Engine) resolve(ctx tiles.Context) *tileset.Texture {
	sets := e.registry.TilesetsForType(ctx.Type)
	if len(sets) == 0 {
		return nil
	}
	primary := sets[0]
	r := e.resolverFor(ctx.Type)
	return lookupTexture(primary, r.Resolve(ctx), r.Fallbacks())
}

// UpdateTile writes newType at (row, col) and re-resolves the affected
// neighborhood. The edit is applied to a working copy first so analysis
// reads a consistent grid, then the copy becomes authoritative.
//
// Propagation is breadth-first from the edited cell. Every visited
// non-empty cell records an update and enqueues its in-bounds neighbors,
// so by default the sweep covers the entire connected same-type region
// around the edit.
func (e *Engine) UpdateTile(row, col int, newType tiles.Type) (Result, error) {
	if !e.grid.InBounds(row, col) {
		return Result{}, fmt.Errorf("autotile: position (%d, %d) outside %dx%d grid", row, col, e.grid.Rows(), e.grid.Cols())
	}
	if !tiles.Known(newType) {
		return Result{}, fmt.Errorf("autotile: unknown tile type %q", newType)
	}

	seed := tiles.Position{Row: row, Col: col}
	working := e.grid.Clone()
	working.Set(row, col, newType)
	e.analyzer.SetGrid(working)

	var res Result
	visited := map[tiles.Position]bool{}
	queue := []tiles.Position{seed}

	for len(queue) > 0 {
		pos := queue[0]
		queue = queue[1:]

		if visited[pos] {
			continue
		}
		visited[pos] = true
		res.Visited = append(res.Visited, pos)

		t, _ := working.Get(pos.Row, pos.Col)
		if t == tiles.Empty {
			continue
		}

		ctx := e.analyzer.Analyze(pos.Row, pos.Col)
		tex := e.resolve(ctx)

		changed := true
		if tex != nil {
			changed = e.last[pos] != tex.ID
			e.last[pos] = tex.ID
			res.Updates = append(res.Updates, Update{Pos: pos, TextureID: tex.ID, Type: t})
		}

		if e.changedOnly && pos != seed && !changed {
			continue
		}

		for _, n := range e.analyzer.NeighborPositions(pos.Row, pos.Col) {
			if !visited[n] {
				queue = append(queue, n)
			}
		}
	}

	if newType == tiles.Empty {
		delete(e.last, seed)
	}

	e.grid = working
	e.analyzer.SetGrid(e.grid)
	return res, nil
}

// SetGrid replaces the engine's authoritative grid after bulk external
// edits. Callers typically follow with ResolveAll.
func (e *Engine) SetGrid(grid *tiles.Grid) {
	e.grid = grid
	e.analyzer.SetGrid(grid)
	e.last = map[tiles.Position]string{}
}

// ResolveAll runs one full-grid pass and returns one update per
// non-empty cell, row-major. Used after load or bulk initialization.
func (e *Engine) ResolveAll() []Update {
	var out []Update
	for row := 0; row < e.grid.Rows(); row++ {
		for col := 0; col < e.grid.Cols(); col++ {
			t, _ := e.grid.Get(row, col)
			if t == tiles.Empty {
				continue
			}
			ctx := e.analyzer.Analyze(row, col)
			tex := e.resolve(ctx)
			if tex == nil {
				continue
			}
			pos := tiles.Position{Row: row, Col: col}
			e.last[pos] = tex.ID
			out = append(out, Update{Pos: pos, TextureID: tex.ID, Type: t})
		}
	}
	return out
}

// ResolveTexture resolves a single cell without propagation. It returns
// nil for empty or out-of-bounds cells and for types with no registered
// tileset.
func (e *Engine) ResolveTexture(row, col int) *tileset.Texture {
	t, ok := e.grid.Get(row, col)
	if !ok || t == tiles.Empty {
		return nil
	}
	return e.resolve(e.analyzer.Analyze(row, col))
}

// AvailableTileTypes lists every tile type with a registered tileset.
func (e *Engine) AvailableTileTypes() []tiles.Type {
	return e.registry.Types()
}

// TexturesForType lists every registered texture for t, primary tileset
// first.
func (e *Engine) TexturesForType(t tiles.Type) []*tileset.Texture {
	return e.registry.TexturesForType(t)
}
