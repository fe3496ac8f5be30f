package tileset

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/MateusSousaSantos/RpgMapEditor-sub000/tiles"
)

// Spec is the YAML definition of one tileset.
//
//	name: dungeon_walls
//	theme: dungeon
//	type: wall
//	fallback: SINGLE
//	textures:
//	  SINGLE: walls/dungeon/single.png
//	  VERTICAL: walls/dungeon/vertical.png
type Spec struct {
	Name     string            `yaml:"name"`
	Theme    string            `yaml:"theme"`
	Type     string            `yaml:"type"`
	Fallback string            `yaml:"fallback"`
	Textures map[string]string `yaml:"textures"`
}

// LoadSpec reads and parses one tileset definition file.
func LoadSpec(path string) (*Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("tileset: load %s: %w", path, err)
	}

	var spec Spec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("tileset: unmarshal %s: %w", path, err)
	}
	return &spec, nil
}

// Tileset materializes the spec. Variants are added in name order so a
// spec always produces the same tileset.
func (s *Spec) Tileset() (*Tileset, error) {
	if s.Name == "" {
		return nil, fmt.Errorf("tileset: spec has no name")
	}
	t, err := tiles.ParseType(s.Type)
	if err != nil {
		return nil, fmt.Errorf("tileset: spec %s: %w", s.Name, err)
	}
	if t == tiles.Empty {
		return nil, fmt.Errorf("tileset: spec %s: tilesets cannot target the empty type", s.Name)
	}

	ts := NewTileset(s.Name, s.Theme, t, s.Fallback)
	variants := make([]string, 0, len(s.Textures))
	for v := range s.Textures {
		variants = append(variants, v)
	}
	sort.Strings(variants)
	for _, v := range variants {
		ts.AddTexture(v, s.Textures[v])
	}
	return ts, nil
}

// LoadDir loads every .yaml/.yml tileset definition in dir into a fresh
// registry. Files load in name order so primary tilesets are stable.
func LoadDir(dir string) (*Registry, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("tileset: read dir %s: %w", dir, err)
	}

	reg := NewRegistry()
	for _, entry := range entries {
		if entry.IsDir() || !isSpecFile(entry.Name()) {
			continue
		}
		spec, err := LoadSpec(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, err
		}
		ts, err := spec.Tileset()
		if err != nil {
			return nil, err
		}
		if err := reg.Add(ts); err != nil {
			return nil, fmt.Errorf("tileset: %s: %w", entry.Name(), err)
		}
	}
	return reg, nil
}

func isSpecFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}
