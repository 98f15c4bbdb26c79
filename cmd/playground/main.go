package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/charactercore/config"
)

func main() {
	cfg, err := config.LoadPlayground()
	if err != nil {
		log.Fatal(err)
	}

	levelName := flag.String("level", cfg.Level, "level name in levels/ (basename, .json optional)")
	debug := flag.Bool("debug", cfg.Debug, "start with every debug overlay enabled")
	watch := flag.Bool("watch", cfg.Watch, "hot reload tuning when prefab files change on disk")
	prefabDir := flag.String("prefabs", cfg.PrefabDir, "directory checked for prefab overrides before the embedded copies")
	zoom := flag.Float64("zoom", cfg.Zoom, "pixels per world unit")
	flag.Parse()

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(baseWidth, baseHeight)
	ebiten.SetWindowTitle("charactercore playground")

	game, err := NewGame(Options{
		Level:     *levelName,
		Debug:     *debug,
		Watch:     *watch,
		PrefabDir: *prefabDir,
		Zoom:      *zoom,
	})
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil && err != ebiten.Termination {
		log.Fatal(err)
	}
}
