package tiles

import "fmt"

// Type is the semantic category of a grid cell.
type Type string

const (
	// Empty marks a cell with no tile. It never participates in
	// connectivity, not even with other Empty cells.
	Empty Type = "empty"

	Grass Type = "grass"
	Water Type = "water"
	Stone Type = "stone"
	Dirt  Type = "dirt"
	Sand  Type = "sand"
	Wall  Type = "wall"
)

// None marks a sampled position that lies outside the grid. It is not a
// placeable type and never matches any cell value.
const None Type = ""

var knownTypes = []Type{Empty, Grass, Water, Stone, Dirt, Sand, Wall}

// Known reports whether t is one of the defined tile types.
func Known(t Type) bool {
	for _, k := range knownTypes {
		if k == t {
			return true
		}
	}
	return false
}

// ParseType converts a stored tile name into a Type.
func ParseType(name string) (Type, error) {
	t := Type(name)
	if !Known(t) {
		return None, fmt.Errorf("tiles: unknown tile type %q", name)
	}
	return t, nil
}

// Position is a (row, col) cell address.
type Position struct {
	Row int
	Col int
}
