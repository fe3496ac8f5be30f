package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/MateusSousaSantos/RpgMapEditor-sub000/autotile"
	"github.com/MateusSousaSantos/RpgMapEditor-sub000/tiles"
)

// gridSnapshot is the on-disk shape of one layer's tile types: row-major
// names, the same flat layout the editor saves. Documents never store
// resolved textures; they are recomputed from the types on load.
type gridSnapshot struct {
	Width  int      `json:"width"`
	Height int      `json:"height"`
	Tiles  []string `json:"tiles"`
}

func loadGrid(path string) (*tiles.Grid, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load grid %s: %w", path, err)
	}

	var snap gridSnapshot
	if err := json.Unmarshal(b, &snap); err != nil {
		return nil, fmt.Errorf("parse grid %s: %w", path, err)
	}
	if snap.Width <= 0 || snap.Height <= 0 {
		return nil, fmt.Errorf("invalid grid dimensions: %dx%d", snap.Width, snap.Height)
	}
	if len(snap.Tiles) != snap.Width*snap.Height {
		return nil, fmt.Errorf("grid %s: have %d tiles, want %d", path, len(snap.Tiles), snap.Width*snap.Height)
	}

	g := tiles.NewGrid(snap.Height, snap.Width)
	for i, name := range snap.Tiles {
		t, err := tiles.ParseType(name)
		if err != nil {
			return nil, fmt.Errorf("grid %s: cell %d: %w", path, i, err)
		}
		g.Set(i/snap.Width, i%snap.Width, t)
	}
	return g, nil
}

// updateOut is one resolved cell in the tool's JSON output.
type updateOut struct {
	Row       int    `json:"row"`
	Col       int    `json:"col"`
	Type      string `json:"type"`
	TextureID string `json:"texture_id"`
}

func writeUpdates(updates []autotile.Update) error {
	out := make([]updateOut, 0, len(updates))
	for _, u := range updates {
		out = append(out, updateOut{
			Row:       u.Pos.Row,
			Col:       u.Pos.Col,
			Type:      string(u.Type),
			TextureID: u.TextureID,
		})
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
