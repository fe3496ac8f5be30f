package autotile

// Variant names a sprite pattern for ordinary (non-wall) tile types.
//
// Edge, corner and T variants are named by the OPEN or MISSING side, not
// the connected one: a cell connected only to its north neighbor is the
// bottom edge of its region, so it resolves to EdgeBottom. Texture asset
// filenames depend on this naming; do not invert it.
type Variant string

const (
	Single Variant = "SINGLE"

	EdgeTop    Variant = "EDGE_TOP"
	EdgeBottom Variant = "EDGE_BOTTOM"
	EdgeLeft   Variant = "EDGE_LEFT"
	EdgeRight  Variant = "EDGE_RIGHT"

	Vertical   Variant = "VERTICAL"
	Horizontal Variant = "HORIZONTAL"

	CornerTL Variant = "CORNER_TL"
	CornerTR Variant = "CORNER_TR"
	CornerBL Variant = "CORNER_BL"
	CornerBR Variant = "CORNER_BR"

	TTop    Variant = "T_TOP"
	TRight  Variant = "T_RIGHT"
	TBottom Variant = "T_BOTTOM"
	TLeft   Variant = "T_LEFT"

	InnerTL Variant = "INNER_TL"
	InnerTR Variant = "INNER_TR"
	InnerBL Variant = "INNER_BL"
	InnerBR Variant = "INNER_BR"

	Center Variant = "CENTER"
)

// WallVariant names a sprite pattern for wall tiles. Walls have a much
// larger variant space than ordinary tiles because diagonal occupancy
// disambiguates corner, T-junction and junction sub-cases.
type WallVariant string

const (
	WallSingle WallVariant = "SINGLE"

	// Single connection, named by the open side.
	WallBottomVerticalEdge  WallVariant = "BOTTOM_VERTICAL_EDGE"
	WallTopVerticalEdge     WallVariant = "TOP_VERTICAL_EDGE"
	WallLeftHorizontalEdge  WallVariant = "LEFT_HORIZONTAL_EDGE"
	WallRightHorizontalEdge WallVariant = "RIGHT_HORIZONTAL_EDGE"

	WallVertical   WallVariant = "VERTICAL"
	WallHorizontal WallVariant = "HORIZONTAL"

	// Two adjacent connections, named by the opposite corner. The FULL_
	// form is used when the diagonal between the two connected cardinals
	// is also wall.
	WallTopLeft         WallVariant = "TOP_LEFT"
	WallTopRight        WallVariant = "TOP_RIGHT"
	WallBottomLeft      WallVariant = "BOTTOM_LEFT"
	WallBottomRight     WallVariant = "BOTTOM_RIGHT"
	WallFullTopLeft     WallVariant = "FULL_TOP_LEFT"
	WallFullTopRight    WallVariant = "FULL_TOP_RIGHT"
	WallFullBottomLeft  WallVariant = "FULL_BOTTOM_LEFT"
	WallFullBottomRight WallVariant = "FULL_BOTTOM_RIGHT"

	// T-junctions, named by the missing side, promoted when the diagonals
	// between the connected arms are filled.
	WallTTop    WallVariant = "T_TOP"
	WallTRight  WallVariant = "T_RIGHT"
	WallTBottom WallVariant = "T_BOTTOM"
	WallTLeft   WallVariant = "T_LEFT"

	WallFullTTopLeft     WallVariant = "FULL_T_TOP_LEFT"
	WallFullTTopRight    WallVariant = "FULL_T_TOP_RIGHT"
	WallFullTBottomLeft  WallVariant = "FULL_T_BOTTOM_LEFT"
	WallFullTBottomRight WallVariant = "FULL_T_BOTTOM_RIGHT"
	WallFullTRightTop    WallVariant = "FULL_T_RIGHT_TOP"
	WallFullTRightBottom WallVariant = "FULL_T_RIGHT_BOTTOM"
	WallFullTLeftTop     WallVariant = "FULL_T_LEFT_TOP"
	WallFullTLeftBottom  WallVariant = "FULL_T_LEFT_BOTTOM"

	WallFullTopCenter    WallVariant = "FULL_TOP_CENTER"
	WallFullBottomCenter WallVariant = "FULL_BOTTOM_CENTER"
	WallFullLeftCenter   WallVariant = "FULL_LEFT_CENTER"
	WallFullRightCenter  WallVariant = "FULL_RIGHT_CENTER"

	// All four cardinals connected, classified by filled diagonals.
	WallFullCenter WallVariant = "FULL_CENTER"

	WallFullTopLeftCorner     WallVariant = "FULL_TOP_LEFT_CORNER"
	WallFullTopRightCorner    WallVariant = "FULL_TOP_RIGHT_CORNER"
	WallFullBottomLeftCorner  WallVariant = "FULL_BOTTOM_LEFT_CORNER"
	WallFullBottomRightCorner WallVariant = "FULL_BOTTOM_RIGHT_CORNER"

	WallFullTTop    WallVariant = "FULL_T_TOP"
	WallFullTRight  WallVariant = "FULL_T_RIGHT"
	WallFullTBottom WallVariant = "FULL_T_BOTTOM"
	WallFullTLeft   WallVariant = "FULL_T_LEFT"

	WallFullCrossNWSE WallVariant = "FULL_CROSS_NW_SE"
	WallFullCrossNESW WallVariant = "FULL_CROSS_NE_SW"

	WallFullCrossTopLeft     WallVariant = "FULL_CROSS_TOP_LEFT"
	WallFullCrossTopRight    WallVariant = "FULL_CROSS_TOP_RIGHT"
	WallFullCrossBottomLeft  WallVariant = "FULL_CROSS_BOTTOM_LEFT"
	WallFullCrossBottomRight WallVariant = "FULL_CROSS_BOTTOM_RIGHT"

	WallCross WallVariant = "CROSS"
)

// OverlayCenter is the variant of a decal's center texture; directional
// fragment variants use tiles.Direction names (TOP, TOP_RIGHT, ...).
const OverlayCenter = "CENTER"
