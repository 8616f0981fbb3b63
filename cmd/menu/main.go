package main

import (
	"io/fs"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/simplemenu/internal/application/app"
	"github.com/younwookim/simplemenu/internal/application/game"
	"github.com/younwookim/simplemenu/internal/application/menus"
	"github.com/younwookim/simplemenu/internal/infrastructure/assets"
	"github.com/younwookim/simplemenu/internal/infrastructure/config"
	"github.com/younwookim/simplemenu/internal/infrastructure/view"
)

func main() {
	// Load configuration using embedded filesystem
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		log.Fatalf("Failed to get config subfs: %v", err)
	}
	cfg, err := config.NewFSLoader(fsys, "configs").LoadOrDefault()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// The font is parsed in the background; menus use a bitmap face until then
	fonts := assets.LoadFontAsync(os.DirFS(cfg.Assets.Dir), cfg.Assets.Font)

	a := app.New(cfg).
		AddStartupSystem(menus.SpawnUICamera).
		AddPlugin(menus.Plugin{})
	a.Start(cfg.StartState())

	renderer := view.NewRenderer(a.World, fonts, cfg)
	g := game.New(a, renderer, cfg.Window.Width, cfg.Window.Height)

	// Set up ebiten
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	if cfg.Window.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	} else {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	}
	ebiten.SetVsyncEnabled(cfg.Window.VSync)

	// Run game
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
