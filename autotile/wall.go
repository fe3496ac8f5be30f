package autotile

import "github.com/MateusSousaSantos/RpgMapEditor-sub000/tiles"

// Cardinal and diagonal connection masks local to the wall table.
const (
	cardN = 1 << iota
	cardE
	cardS
	cardW
)

const (
	diagNE = 1 << iota
	diagSE
	diagSW
	diagNW
)

func cardinalMask(ctx tiles.Context) uint8 {
	var m uint8
	if ctx.North {
		m |= cardN
	}
	if ctx.East {
		m |= cardE
	}
	if ctx.South {
		m |= cardS
	}
	if ctx.West {
		m |= cardW
	}
	return m
}

func diagonalMask(ctx tiles.Context) uint8 {
	var m uint8
	if ctx.NorthEast {
		m |= diagNE
	}
	if ctx.SouthEast {
		m |= diagSE
	}
	if ctx.SouthWest {
		m |= diagSW
	}
	if ctx.NorthWest {
		m |= diagNW
	}
	return m
}

// WallResolver implements the wall decision table. It follows the same
// cardinal-count dispatch as TileResolver but inspects diagonal occupancy
// to pick between open, partially filled and fully filled sub-cases.
type WallResolver struct{}

func (WallResolver) Resolve(ctx tiles.Context) string {
	return string(WallVariantFor(ctx))
}

// Walls skip the generic CENTER/SINGLE chain; a missing texture goes
// straight to the tileset's declared fallback.
func (WallResolver) Fallbacks() []string { return nil }

// WallVariantFor is the full wall lookup, exposed so the table can be
// tested case by case without a registry.
func WallVariantFor(ctx tiles.Context) WallVariant {
	switch cardinalMask(ctx) {
	case 0:
		return WallSingle

	// One connection: edge named by the open side.
	case cardN:
		return WallBottomVerticalEdge
	case cardS:
		return WallTopVerticalEdge
	case cardE:
		return WallLeftHorizontalEdge
	case cardW:
		return WallRightHorizontalEdge

	// Two opposite connections: straight runs.
	case cardN | cardS:
		return WallVertical
	case cardE | cardW:
		return WallHorizontal

	// Two adjacent connections: corner named by the opposite corner,
	// filled when the enclosed diagonal is also wall.
	case cardN | cardE:
		return wallCorner(ctx.NorthEast, WallFullBottomLeft, WallBottomLeft)
	case cardN | cardW:
		return wallCorner(ctx.NorthWest, WallFullBottomRight, WallBottomRight)
	case cardS | cardE:
		return wallCorner(ctx.SouthEast, WallFullTopLeft, WallTopLeft)
	case cardS | cardW:
		return wallCorner(ctx.SouthWest, WallFullTopRight, WallTopRight)

	// T-junctions: named by the missing side, then promoted by the two
	// diagonals enclosed between the connected arms.
	case cardE | cardS | cardW: // missing N
		return wallTee(ctx.SouthWest, ctx.SouthEast,
			WallTTop, WallFullTTopLeft, WallFullTTopRight, WallFullBottomCenter)
	case cardE | cardN | cardW: // missing S
		return wallTee(ctx.NorthWest, ctx.NorthEast,
			WallTBottom, WallFullTBottomLeft, WallFullTBottomRight, WallFullTopCenter)
	case cardN | cardS | cardW: // missing E
		return wallTee(ctx.NorthWest, ctx.SouthWest,
			WallTRight, WallFullTRightTop, WallFullTRightBottom, WallFullLeftCenter)
	case cardN | cardS | cardE: // missing W
		return wallTee(ctx.NorthEast, ctx.SouthEast,
			WallTLeft, WallFullTLeftTop, WallFullTLeftBottom, WallFullRightCenter)

	default: // all four cardinals
		return wallJunction(diagonalMask(ctx))
	}
}

func wallCorner(filled bool, full, open WallVariant) WallVariant {
	if filled {
		return full
	}
	return open
}

// wallTee promotes a T-junction through its three tiers: neither enclosed
// diagonal filled, exactly one filled, or both filled.
func wallTee(first, second bool, plain, firstOnly, secondOnly, both WallVariant) WallVariant {
	switch {
	case first && second:
		return both
	case first:
		return firstOnly
	case second:
		return secondOnly
	default:
		return plain
	}
}

// wallJunction classifies the fully connected case by which diagonals are
// filled, one explicit entry per combination.
func wallJunction(diagonals uint8) WallVariant {
	switch diagonals {
	case 0:
		return WallCross

	case diagNE:
		return WallFullCrossTopRight
	case diagSE:
		return WallFullCrossBottomRight
	case diagSW:
		return WallFullCrossBottomLeft
	case diagNW:
		return WallFullCrossTopLeft

	// Adjacent pairs: one whole side filled, named by the open side.
	case diagNW | diagNE:
		return WallFullTBottom
	case diagSW | diagSE:
		return WallFullTTop
	case diagNW | diagSW:
		return WallFullTRight
	case diagNE | diagSE:
		return WallFullTLeft

	// Opposite pairs.
	case diagNW | diagSE:
		return WallFullCrossNWSE
	case diagNE | diagSW:
		return WallFullCrossNESW

	// Three filled: named by the single missing diagonal.
	case diagNE | diagSE | diagSW:
		return WallFullTopLeftCorner
	case diagNW | diagSE | diagSW:
		return WallFullTopRightCorner
	case diagNW | diagNE | diagSE:
		return WallFullBottomLeftCorner
	case diagNW | diagNE | diagSW:
		return WallFullBottomRightCorner

	default:
		return WallFullCenter
	}
}
