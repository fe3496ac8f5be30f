package autotile

import (
	"testing"

	"github.com/MateusSousaSantos/RpgMapEditor-sub000/tiles"
	"github.com/MateusSousaSantos/RpgMapEditor-sub000/tileset"
)

// connCtx builds a connectivity description with exactly the given
// directions connected.
func connCtx(dirs ...tiles.Direction) tiles.Context {
	var ctx tiles.Context
	for _, d := range dirs {
		ctx.Mask |= 1 << uint(d)
		switch d {
		case tiles.North:
			ctx.North = true
		case tiles.East:
			ctx.East = true
		case tiles.South:
			ctx.South = true
		case tiles.West:
			ctx.West = true
		case tiles.NorthEast:
			ctx.NorthEast = true
		case tiles.SouthEast:
			ctx.SouthEast = true
		case tiles.SouthWest:
			ctx.SouthWest = true
		case tiles.NorthWest:
			ctx.NorthWest = true
		}
	}
	return ctx
}

func TestTileResolverTable(t *testing.T) {
	N, E, S, W := tiles.North, tiles.East, tiles.South, tiles.West
	NE, SE, SW, NW := tiles.NorthEast, tiles.SouthEast, tiles.SouthWest, tiles.NorthWest

	cases := []struct {
		name string
		dirs []tiles.Direction
		want Variant
	}{
		{"isolated", nil, Single},

		// One connection: edge named by the open side.
		{"only_north", []tiles.Direction{N}, EdgeBottom},
		{"only_south", []tiles.Direction{S}, EdgeTop},
		{"only_east", []tiles.Direction{E}, EdgeLeft},
		{"only_west", []tiles.Direction{W}, EdgeRight},

		// Two opposite.
		{"north_south", []tiles.Direction{N, S}, Vertical},
		{"east_west", []tiles.Direction{E, W}, Horizontal},

		// Two adjacent: corner named by the opposite corner.
		{"north_east", []tiles.Direction{N, E}, CornerBL},
		{"east_south", []tiles.Direction{E, S}, CornerTL},
		{"south_west", []tiles.Direction{S, W}, CornerTR},
		{"west_north", []tiles.Direction{W, N}, CornerBR},

		// Three: T named by the missing side.
		{"missing_north", []tiles.Direction{E, S, W}, TTop},
		{"missing_east", []tiles.Direction{N, S, W}, TRight},
		{"missing_south", []tiles.Direction{N, E, W}, TBottom},
		{"missing_west", []tiles.Direction{N, E, S}, TLeft},

		// Four: center unless exactly one diagonal is missing.
		{"surrounded", []tiles.Direction{N, E, S, W, NE, SE, SW, NW}, Center},
		{"four_cardinals_no_diagonals", []tiles.Direction{N, E, S, W}, Center},
		{"four_cardinals_two_diagonals", []tiles.Direction{N, E, S, W, NE, SW}, Center},
		{"missing_nw", []tiles.Direction{N, E, S, W, NE, SE, SW}, InnerTL},
		{"missing_ne", []tiles.Direction{N, E, S, W, SE, SW, NW}, InnerTR},
		{"missing_sw", []tiles.Direction{N, E, S, W, NE, SE, NW}, InnerBL},
		{"missing_se", []tiles.Direction{N, E, S, W, NE, SW, NW}, InnerBR},
	}

	var r TileResolver
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := r.Resolve(connCtx(c.dirs...)); got != string(c.want) {
				t.Fatalf("got %s, want %s", got, c.want)
			}
		})
	}
}

// Diagonal connections alone never change the variant of a cell with
// fewer than four cardinal connections.
func TestTileResolverIgnoresDiagonalsBelowFour(t *testing.T) {
	N, E := tiles.North, tiles.East
	NE, SW := tiles.NorthEast, tiles.SouthWest

	var r TileResolver
	plain := r.Resolve(connCtx(N, E))
	noisy := r.Resolve(connCtx(N, E, NE, SW))
	if plain != noisy {
		t.Fatalf("diagonals changed a corner: %s vs %s", plain, noisy)
	}
}

func TestLookupTextureFallbackChain(t *testing.T) {
	cases := []struct {
		name     string
		variants []string
		fallback string
		wantID   string
	}{
		{"exact", []string{"EDGE_TOP", "CENTER", "SINGLE"}, "VERTICAL", "ts:EDGE_TOP"},
		{"center_first", []string{"CENTER", "SINGLE"}, "VERTICAL", "ts:CENTER"},
		{"then_single", []string{"SINGLE", "VERTICAL"}, "VERTICAL", "ts:SINGLE"},
		{"then_declared_fallback", []string{"VERTICAL"}, "VERTICAL", "ts:VERTICAL"},
		{"placeholder_when_bare", nil, "VERTICAL", "missing:ts"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			ts := tileset.NewTileset("ts", "theme", tiles.Grass, c.fallback)
			for _, v := range c.variants {
				ts.AddTexture(v, v+".png")
			}
			tex := lookupTexture(ts, "EDGE_TOP", TileResolver{}.Fallbacks())
			if tex == nil {
				t.Fatal("lookup must never return nil")
			}
			if tex.ID != c.wantID {
				t.Fatalf("got %q, want %q", tex.ID, c.wantID)
			}
		})
	}
}
