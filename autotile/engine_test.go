package autotile

import (
	"testing"

	"github.com/MateusSousaSantos/RpgMapEditor-sub000/tiles"
	"github.com/MateusSousaSantos/RpgMapEditor-sub000/tileset"
)

// fullRegistry registers a tileset per type with every generic variant,
// so resolved texture ids read "<tileset>:<variant>".
func fullRegistry(t *testing.T, types ...tiles.Type) *tileset.Registry {
	t.Helper()
	variants := []Variant{
		Single, EdgeTop, EdgeBottom, EdgeLeft, EdgeRight,
		Vertical, Horizontal,
		CornerTL, CornerTR, CornerBL, CornerBR,
		TTop, TRight, TBottom, TLeft,
		InnerTL, InnerTR, InnerBL, InnerBR,
		Center,
	}
	reg := tileset.NewRegistry()
	for _, tt := range types {
		ts := tileset.NewTileset(string(tt), "test", tt, string(Single))
		for _, v := range variants {
			ts.AddTexture(string(v), string(tt)+"/"+string(v)+".png")
		}
		if err := reg.Add(ts); err != nil {
			t.Fatalf("registry: %v", err)
		}
	}
	return reg
}

func uniformGrid(rows, cols int, t tiles.Type) *tiles.Grid {
	g := tiles.NewGrid(rows, cols)
	g.Fill(t)
	return g
}

func textureAt(t *testing.T, updates []Update, pos tiles.Position) string {
	t.Helper()
	for _, u := range updates {
		if u.Pos == pos {
			return u.TextureID
		}
	}
	t.Fatalf("no update recorded for %v", pos)
	return ""
}

// The scenario from the resolver table: painting water into the middle of
// a grass field isolates the water cell, turns the four orthogonal grass
// neighbors into T junctions open toward the water, and gives the four
// diagonal neighbors a concave inner corner.
func TestUpdateTileGrassWaterScenario(t *testing.T) {
	reg := fullRegistry(t, tiles.Grass, tiles.Water)
	e := NewEngine(uniformGrid(5, 5, tiles.Grass), reg)

	res, err := e.UpdateTile(2, 2, tiles.Water)
	if err != nil {
		t.Fatalf("UpdateTile: %v", err)
	}

	if got := textureAt(t, res.Updates, tiles.Position{Row: 2, Col: 2}); got != "water:SINGLE" {
		t.Fatalf("center: got %q, want water:SINGLE", got)
	}

	orthogonal := []struct {
		pos  tiles.Position
		want string
	}{
		{tiles.Position{Row: 1, Col: 2}, "grass:T_BOTTOM"}, // water below
		{tiles.Position{Row: 3, Col: 2}, "grass:T_TOP"},    // water above
		{tiles.Position{Row: 2, Col: 1}, "grass:T_RIGHT"},  // water to the east
		{tiles.Position{Row: 2, Col: 3}, "grass:T_LEFT"},   // water to the west
	}
	for _, c := range orthogonal {
		if got := textureAt(t, res.Updates, c.pos); got != c.want {
			t.Fatalf("%v: got %q, want %q", c.pos, got, c.want)
		}
	}

	diagonal := []struct {
		pos  tiles.Position
		want string
	}{
		{tiles.Position{Row: 1, Col: 1}, "grass:INNER_BR"},
		{tiles.Position{Row: 1, Col: 3}, "grass:INNER_BL"},
		{tiles.Position{Row: 3, Col: 1}, "grass:INNER_TR"},
		{tiles.Position{Row: 3, Col: 3}, "grass:INNER_TL"},
	}
	for _, c := range diagonal {
		if got := textureAt(t, res.Updates, c.pos); got != c.want {
			t.Fatalf("%v: got %q, want %q", c.pos, got, c.want)
		}
	}
}

// Every processed non-empty cell enqueues its neighbors, so one edit
// sweeps the entire connected same-type region.
func TestUpdateTileSweepsWholeRegion(t *testing.T) {
	reg := fullRegistry(t, tiles.Grass)
	e := NewEngine(uniformGrid(4, 6, tiles.Grass), reg)

	res, err := e.UpdateTile(0, 0, tiles.Grass)
	if err != nil {
		t.Fatalf("UpdateTile: %v", err)
	}
	if len(res.Visited) != 24 || len(res.Updates) != 24 {
		t.Fatalf("got %d visited / %d updates, want 24 / 24",
			len(res.Visited), len(res.Updates))
	}
}

func TestUpdateTileChangedOnlyPropagation(t *testing.T) {
	reg := fullRegistry(t, tiles.Grass)

	e := NewEngine(uniformGrid(8, 8, tiles.Grass), reg, WithChangedOnlyPropagation())
	e.ResolveAll() // settle the texture cache

	// Re-painting grass over grass changes nothing; only the seed and
	// its ring need a look.
	res, err := e.UpdateTile(4, 4, tiles.Grass)
	if err != nil {
		t.Fatalf("UpdateTile: %v", err)
	}
	if len(res.Visited) >= 64 {
		t.Fatalf("changed-only mode visited the whole region: %d cells", len(res.Visited))
	}

	// Default mode sweeps all 64 cells for the same no-op edit.
	full := NewEngine(uniformGrid(8, 8, tiles.Grass), reg)
	full.ResolveAll()
	fres, err := full.UpdateTile(4, 4, tiles.Grass)
	if err != nil {
		t.Fatalf("UpdateTile: %v", err)
	}
	if len(fres.Visited) != 64 {
		t.Fatalf("default mode should sweep the region: %d cells", len(fres.Visited))
	}
}

func TestUpdateTileRoundTrip(t *testing.T) {
	reg := fullRegistry(t, tiles.Grass, tiles.Water)
	e := NewEngine(uniformGrid(5, 5, tiles.Grass), reg)
	before := e.ResolveAll()

	if _, err := e.UpdateTile(2, 2, tiles.Water); err != nil {
		t.Fatalf("first edit: %v", err)
	}
	if _, err := e.UpdateTile(2, 2, tiles.Grass); err != nil {
		t.Fatalf("second edit: %v", err)
	}

	after := e.ResolveAll()
	if len(before) != len(after) {
		t.Fatalf("update counts differ: %d vs %d", len(before), len(after))
	}
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("cell %v changed across the round trip: %q vs %q",
				before[i].Pos, before[i].TextureID, after[i].TextureID)
		}
	}
}

func TestResolveAllIdempotent(t *testing.T) {
	reg := fullRegistry(t, tiles.Grass, tiles.Water)
	g := uniformGrid(4, 4, tiles.Grass)
	g.Set(1, 1, tiles.Water)
	g.Set(1, 2, tiles.Water)
	g.Set(3, 3, tiles.Empty)
	e := NewEngine(g, reg)

	first := e.ResolveAll()
	second := e.ResolveAll()

	if len(first) != 15 {
		t.Fatalf("expected one update per occupied cell, got %d", len(first))
	}
	if len(first) != len(second) {
		t.Fatalf("lengths differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("update %d differs: %+v vs %+v", i, first[i], second[i])
		}
	}
}

func TestEngineErrorsAndNulls(t *testing.T) {
	reg := fullRegistry(t, tiles.Grass)
	e := NewEngine(uniformGrid(3, 3, tiles.Grass), reg)

	if _, err := e.UpdateTile(5, 0, tiles.Grass); err == nil {
		t.Fatal("out-of-bounds edit should error")
	}
	if _, err := e.UpdateTile(0, 0, tiles.Type("lava")); err == nil {
		t.Fatal("unknown type should error")
	}

	// Stone has no registered tileset: the one hard failure.
	if _, err := e.UpdateTile(1, 1, tiles.Stone); err != nil {
		t.Fatalf("edit itself should succeed: %v", err)
	}
	if tex := e.ResolveTexture(1, 1); tex != nil {
		t.Fatalf("type without tileset should resolve to nil, got %+v", tex)
	}

	if tex := e.ResolveTexture(-1, 0); tex != nil {
		t.Fatal("out-of-bounds resolve should be nil")
	}
}

func TestUpdateTileToEmptyStopsPropagation(t *testing.T) {
	reg := fullRegistry(t, tiles.Grass)
	e := NewEngine(uniformGrid(3, 3, tiles.Grass), reg)

	res, err := e.UpdateTile(1, 1, tiles.Empty)
	if err != nil {
		t.Fatalf("UpdateTile: %v", err)
	}
	// An emptied cell records no update and enqueues nothing.
	if len(res.Updates) != 0 || len(res.Visited) != 1 {
		t.Fatalf("got %d updates / %d visited, want 0 / 1",
			len(res.Updates), len(res.Visited))
	}
	if tt, _ := e.Grid().Get(1, 1); tt != tiles.Empty {
		t.Fatalf("grid not updated: %q", tt)
	}
}

func TestEngineRegistryPassthroughs(t *testing.T) {
	reg := fullRegistry(t, tiles.Grass, tiles.Water)
	e := NewEngine(uniformGrid(2, 2, tiles.Grass), reg)

	types := e.AvailableTileTypes()
	if len(types) != 2 || types[0] != tiles.Grass || types[1] != tiles.Water {
		t.Fatalf("types wrong: %v", types)
	}
	if got := len(e.TexturesForType(tiles.Grass)); got != 20 {
		t.Fatalf("got %d grass textures, want 20", got)
	}
}

// stubResolver always answers the same variant; registering it for a
// type must not disturb the other entries of the strategy table.
type stubResolver struct{ variant string }

func (s stubResolver) Resolve(tiles.Context) string { return s.variant }
func (s stubResolver) Fallbacks() []string          { return nil }

func TestEngineCustomResolver(t *testing.T) {
	reg := fullRegistry(t, tiles.Grass, tiles.Water)
	grid := uniformGrid(3, 3, tiles.Grass)
	grid.Set(0, 0, tiles.Water)
	e := NewEngine(grid, reg, WithResolver(tiles.Water, stubResolver{variant: string(Center)}))

	if tex := e.ResolveTexture(0, 0); tex == nil || tex.ID != "water:CENTER" {
		t.Fatalf("custom resolver ignored: %+v", tex)
	}
	if tex := e.ResolveTexture(1, 1); tex == nil || tex.ID == "grass:CENTER" {
		t.Fatalf("grass should still use the generic table: %+v", tex)
	}
}
