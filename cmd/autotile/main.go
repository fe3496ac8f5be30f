package main

import (
	"flag"
	"log"

	"github.com/MateusSousaSantos/RpgMapEditor-sub000/autotile"
	"github.com/MateusSousaSantos/RpgMapEditor-sub000/tileset"
)

// autotile resolves a grid snapshot against a directory of tileset
// definitions and prints the texture assignment for every occupied cell.
// With -watch it re-resolves whenever a definition file changes, which is
// how tileset authors preview their variant tables.
func main() {
	gridPath := flag.String("grid", "", "grid snapshot JSON to resolve")
	tilesetDir := flag.String("tilesets", "tilesets", "directory of tileset definition YAML files")
	watch := flag.Bool("watch", false, "re-resolve when tileset definitions change")
	flag.Parse()

	if *gridPath == "" {
		log.Fatal("missing -grid")
	}

	grid, err := loadGrid(*gridPath)
	if err != nil {
		log.Fatalf("failed to load grid: %v", err)
	}

	resolve := func() error {
		reg, err := tileset.LoadDir(*tilesetDir)
		if err != nil {
			return err
		}
		engine := autotile.NewEngine(grid, reg)
		return writeUpdates(engine.ResolveAll())
	}

	if err := resolve(); err != nil {
		log.Fatalf("resolve failed: %v", err)
	}

	if !*watch {
		return
	}

	watcher, err := tileset.NewWatcher(*tilesetDir)
	if err != nil {
		log.Fatalf("failed to watch %s: %v", *tilesetDir, err)
	}
	defer watcher.Close()

	for {
		select {
		case path, ok := <-watcher.Events:
			if !ok {
				return
			}
			log.Printf("tileset definition changed: %s", path)
			if err := resolve(); err != nil {
				log.Printf("resolve failed: %v", err)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			log.Printf("watch error: %v", err)
		}
	}
}
