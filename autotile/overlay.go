package autotile

import (
	"github.com/MateusSousaSantos/RpgMapEditor-sub000/tiles"
	"github.com/MateusSousaSantos/RpgMapEditor-sub000/tileset"
)

// OverlayPlacement is one cell's share of a 3x3 decal: the center texture
// at the target cell or a directional fragment bleeding into a neighbor.
type OverlayPlacement struct {
	Pos       tiles.Position
	Variant   string
	TextureID string
}

// OverlayResolver places and removes 3x3 decals. Decals annotate the
// cells around a target without replacing base tile content; fragments
// live in each cell's overlay list next to fragments of other decals.
type OverlayResolver struct {
	registry *tileset.Registry
}

func NewOverlayResolver(reg *tileset.Registry) *OverlayResolver {
	return &OverlayResolver{registry: reg}
}

// Resolve returns the center placement for tilesetID at (row, col) plus
// one placement per direction whose fragment texture is registered.
// Unregistered fragments are omitted, not errors; a decal with no center
// texture resolves to nothing.
func (o *OverlayResolver) Resolve(tilesetID string, row, col int) []OverlayPlacement {
	ts := o.registry.Tileset(tilesetID)
	if ts == nil {
		return nil
	}
	center := ts.Texture(OverlayCenter)
	if center == nil {
		return nil
	}

	out := make([]OverlayPlacement, 0, 9)
	out = append(out, OverlayPlacement{
		Pos:       tiles.Position{Row: row, Col: col},
		Variant:   OverlayCenter,
		TextureID: center.ID,
	})

	for d := tiles.North; d <= tiles.NorthWest; d++ {
		frag := ts.Texture(d.String())
		if frag == nil {
			continue
		}
		off := d.Offset()
		out = append(out, OverlayPlacement{
			Pos:       tiles.Position{Row: row + off.Row, Col: col + off.Col},
			Variant:   d.String(),
			TextureID: frag.ID,
		})
	}
	return out
}

// FilterValidOverlays drops placements whose position lies outside a
// rows x cols grid.
func FilterValidOverlays(list []OverlayPlacement, rows, cols int) []OverlayPlacement {
	out := make([]OverlayPlacement, 0, len(list))
	for _, p := range list {
		if p.Pos.Row >= 0 && p.Pos.Row < rows && p.Pos.Col >= 0 && p.Pos.Col < cols {
			out = append(out, p)
		}
	}
	return out
}

// Apply writes the decal for tilesetID at (row, col) into g. The center
// texture is always appended to its own cell; a directional fragment is
// appended only when its target cell does not already hold the center
// texture, so a cell with its own full decal never also collects a
// bleeding fragment from a neighbor.
func (o *OverlayResolver) Apply(g *tiles.OverlayGrid, tilesetID string, row, col int) {
	placements := FilterValidOverlays(o.Resolve(tilesetID, row, col), g.Rows(), g.Cols())
	if len(placements) == 0 {
		return
	}
	centerID := placements[0].TextureID

	for _, p := range placements {
		if p.Variant == OverlayCenter {
			g.Add(p.Pos, p.TextureID)
			continue
		}
		if !g.Contains(p.Pos, centerID) {
			g.Add(p.Pos, p.TextureID)
		}
	}
}

// Remove mirrors Apply: it recomputes the same placement set and strikes
// each texture id from the corresponding cell's list.
func (o *OverlayResolver) Remove(g *tiles.OverlayGrid, tilesetID string, row, col int) {
	placements := FilterValidOverlays(o.Resolve(tilesetID, row, col), g.Rows(), g.Cols())
	for _, p := range placements {
		g.Remove(p.Pos, p.TextureID)
	}
}
