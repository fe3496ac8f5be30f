package tileset

import (
	"fmt"
	"sort"

	"github.com/MateusSousaSantos/RpgMapEditor-sub000/tiles"
)

// Texture names one sprite: a unique id, the source it is cut from, the
// variant it depicts and the tile type it belongs to.
type Texture struct {
	ID      string
	Source  string
	Variant string
	Type    tiles.Type
}

// Tileset is the variant -> texture table for one (theme, tile type)
// pair, with a declared fallback variant used when a specific variant has
// no registered texture.
type Tileset struct {
	ID       string
	Theme    string
	Type     tiles.Type
	Fallback string

	textures map[string]*Texture
	variants []string
}

func NewTileset(id, theme string, t tiles.Type, fallback string) *Tileset {
	return &Tileset{
		ID:       id,
		Theme:    theme,
		Type:     t,
		Fallback: fallback,
		textures: map[string]*Texture{},
	}
}

// AddTexture registers the texture for a variant, replacing any previous
// registration of the same variant.
func (t *Tileset) AddTexture(variant, source string) *Texture {
	tex := &Texture{
		ID:      t.ID + ":" + variant,
		Source:  source,
		Variant: variant,
		Type:    t.Type,
	}
	if _, ok := t.textures[variant]; !ok {
		t.variants = append(t.variants, variant)
	}
	t.textures[variant] = tex
	return tex
}

// Texture returns the texture registered for variant, nil when missing.
func (t *Tileset) Texture(variant string) *Texture {
	return t.textures[variant]
}

// Textures returns every registered texture in variant-name order.
func (t *Tileset) Textures() []*Texture {
	names := make([]string, len(t.variants))
	copy(names, t.variants)
	sort.Strings(names)
	out := make([]*Texture, 0, len(names))
	for _, v := range names {
		out = append(out, t.textures[v])
	}
	return out
}

// Registry holds every loaded tileset. It is an explicitly constructed
// object passed into resolvers, never package-level state, so tests stay
// deterministic and independent.
type Registry struct {
	tilesets map[string]*Tileset
	byType   map[tiles.Type][]*Tileset
	order    []string
}

func NewRegistry() *Registry {
	return &Registry{
		tilesets: map[string]*Tileset{},
		byType:   map[tiles.Type][]*Tileset{},
	}
}

// Add registers ts. Tileset ids are unique; the first tileset added for a
// tile type becomes that type's primary.
func (r *Registry) Add(ts *Tileset) error {
	if ts == nil || ts.ID == "" {
		return fmt.Errorf("tileset: cannot register a tileset without an id")
	}
	if _, ok := r.tilesets[ts.ID]; ok {
		return fmt.Errorf("tileset: duplicate tileset id %q", ts.ID)
	}
	r.tilesets[ts.ID] = ts
	r.byType[ts.Type] = append(r.byType[ts.Type], ts)
	r.order = append(r.order, ts.ID)
	return nil
}

// Tileset returns the tileset registered under id, nil when missing.
func (r *Registry) Tileset(id string) *Tileset {
	return r.tilesets[id]
}

// Texture looks up (tileset, variant). A miss on the exact variant falls
// back to the tileset's declared fallback variant; nil when neither is
// registered or the tileset is unknown.
func (r *Registry) Texture(tilesetID, variant string) *Texture {
	ts := r.tilesets[tilesetID]
	if ts == nil {
		return nil
	}
	if tex := ts.Texture(variant); tex != nil {
		return tex
	}
	if ts.Fallback != "" && ts.Fallback != variant {
		return ts.Texture(ts.Fallback)
	}
	return nil
}

// TilesetsForType returns the tilesets registered for t in registration
// order. The first entry is the type's primary tileset.
func (r *Registry) TilesetsForType(t tiles.Type) []*Tileset {
	sets := r.byType[t]
	out := make([]*Tileset, len(sets))
	copy(out, sets)
	return out
}

// Types returns every tile type with at least one registered tileset,
// in first-registration order.
func (r *Registry) Types() []tiles.Type {
	seen := map[tiles.Type]bool{}
	out := make([]tiles.Type, 0, len(r.byType))
	for _, id := range r.order {
		t := r.tilesets[id].Type
		if !seen[t] {
			seen[t] = true
			out = append(out, t)
		}
	}
	return out
}

// TexturesForType returns every texture registered for t across all of
// its tilesets, primary tileset first.
func (r *Registry) TexturesForType(t tiles.Type) []*Texture {
	var out []*Texture
	for _, ts := range r.byType[t] {
		out = append(out, ts.Textures()...)
	}
	return out
}
