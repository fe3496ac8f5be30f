package autotile

import (
	"github.com/MateusSousaSantos/RpgMapEditor-sub000/tiles"
	"github.com/MateusSousaSantos/RpgMapEditor-sub000/tileset"
)

// Resolver picks the variant for one analyzed cell. The engine keeps one
// resolver per tile type in a strategy table, so new tile-type-specific
// rule sets plug in without touching existing ones.
type Resolver interface {
	// Resolve maps a connectivity description to a variant name.
	Resolve(ctx tiles.Context) string

	// Fallbacks returns the variants tried, in order, when the resolved
	// variant has no registered texture. The tileset's declared fallback
	// and the synthesized placeholder always follow.
	Fallbacks() []string
}

// TileResolver implements the generic connectivity table used by every
// non-wall tile type. Dispatch is purely by the count of connected
// cardinal neighbors; diagonals only matter in the fully connected case,
// where a single missing diagonal produces a concave inner corner.
type TileResolver struct{}

func (TileResolver) Resolve(ctx tiles.Context) string {
	switch ctx.CardinalCount() {
	case 0:
		return string(Single)
	case 1:
		// Named by the open side: connected only to the north means the
		// cell is the bottom cap of its region.
		switch {
		case ctx.North:
			return string(EdgeBottom)
		case ctx.South:
			return string(EdgeTop)
		case ctx.East:
			return string(EdgeLeft)
		default:
			return string(EdgeRight)
		}
	case 2:
		switch {
		case ctx.North && ctx.South:
			return string(Vertical)
		case ctx.East && ctx.West:
			return string(Horizontal)
		// External corners, named by the corner opposite the two
		// connected sides.
		case ctx.North && ctx.East:
			return string(CornerBL)
		case ctx.East && ctx.South:
			return string(CornerTL)
		case ctx.South && ctx.West:
			return string(CornerTR)
		default: // West && North
			return string(CornerBR)
		}
	case 3:
		// Named by the single missing cardinal.
		switch {
		case !ctx.North:
			return string(TTop)
		case !ctx.East:
			return string(TRight)
		case !ctx.South:
			return string(TBottom)
		default:
			return string(TLeft)
		}
	default:
		// All cardinals connected. Exactly one missing diagonal makes a
		// concave inner corner; otherwise the cell is interior.
		if ctx.DiagonalCount() == 3 {
			switch {
			case !ctx.NorthWest:
				return string(InnerTL)
			case !ctx.NorthEast:
				return string(InnerTR)
			case !ctx.SouthWest:
				return string(InnerBL)
			default:
				return string(InnerBR)
			}
		}
		return string(Center)
	}
}

func (TileResolver) Fallbacks() []string {
	return []string{string(Center), string(Single)}
}

// lookupTexture walks the fallback chain for ts: the resolved variant,
// the resolver's fallbacks, the tileset's declared fallback and finally
// a synthesized placeholder. It never returns nil, so every occupied
// cell of a known tile type always renders as something; a placeholder
// id is the caller's signal of an incomplete tileset.
func lookupTexture(ts *tileset.Tileset, variant string, fallbacks []string) *tileset.Texture {
	if tex := ts.Texture(variant); tex != nil {
		return tex
	}
	for _, fb := range fallbacks {
		if tex := ts.Texture(fb); tex != nil {
			return tex
		}
	}
	if ts.Fallback != "" {
		if tex := ts.Texture(ts.Fallback); tex != nil {
			return tex
		}
	}
	return placeholderTexture(ts, variant)
}

// placeholderTexture synthesizes a stand-in for a texture the tileset
// never registered, the data equivalent of the editor's magenta
// missing-tile sprite.
func placeholderTexture(ts *tileset.Tileset, variant string) *tileset.Texture {
	return &tileset.Texture{
		ID:      "missing:" + ts.ID,
		Variant: variant,
		Type:    ts.Type,
	}
}
