package autotile

import (
	"fmt"
	"os"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"

	"github.com/MateusSousaSantos/RpgMapEditor-sub000/tiles"
)

// scriptDispatch calls the resolver function a script must export.
const scriptDispatch = `
__variant = resolve(__ctx)
`

// ScriptResolver runs a Tengo script to pick variants for one tile type,
// the open slot of the engine's resolver table. The script exports
//
//	resolve := func(ctx) { ... return "SINGLE" }
//
// where ctx carries the connection flags (north, east, south, west,
// north_east, south_east, south_west, north_west), the packed mask and
// the cardinal/diagonal counts. A script error or empty result falls
// back to the generic table, so a broken script degrades instead of
// breaking resolution.
type ScriptResolver struct {
	path     string
	compiled *tengo.Compiled
	fallback Resolver
}

// NewScriptResolver compiles the script at path once. The resolver is
// reused for every cell afterwards.
func NewScriptResolver(path string) (*ScriptResolver, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("autotile: load script %s: %w", path, err)
	}

	script := tengo.NewScript(append(src, scriptDispatch...))
	_ = script.Add("__ctx", map[string]any{})
	_ = script.Add("__variant", "")
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("autotile: compile script %s: %w", path, err)
	}

	return &ScriptResolver{
		path:     path,
		compiled: compiled,
		fallback: TileResolver{},
	}, nil
}

func (r *ScriptResolver) Resolve(ctx tiles.Context) string {
	variant, err := r.run(ctx)
	if err != nil || variant == "" {
		return r.fallback.Resolve(ctx)
	}
	return variant
}

func (r *ScriptResolver) Fallbacks() []string {
	return r.fallback.Fallbacks()
}

func (r *ScriptResolver) run(ctx tiles.Context) (string, error) {
	c := r.compiled.Clone()
	if err := c.Set("__ctx", scriptContext(ctx)); err != nil {
		return "", err
	}
	if err := c.Run(); err != nil {
		return "", fmt.Errorf("autotile: script %s: %w", r.path, err)
	}
	return strings.TrimSpace(c.Get("__variant").String()), nil
}

func scriptContext(ctx tiles.Context) map[string]any {
	return map[string]any{
		"row":  ctx.Pos.Row,
		"col":  ctx.Pos.Col,
		"type": string(ctx.Type),

		"north": ctx.North,
		"east":  ctx.East,
		"south": ctx.South,
		"west":  ctx.West,

		"north_east": ctx.NorthEast,
		"south_east": ctx.SouthEast,
		"south_west": ctx.SouthWest,
		"north_west": ctx.NorthWest,

		"mask":      int(ctx.Mask),
		"cardinals": ctx.CardinalCount(),
		"diagonals": ctx.DiagonalCount(),
	}
}
