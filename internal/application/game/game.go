// Package game provides the ebiten game loop driving the app and its view.
package game

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/simplemenu/internal/application/app"
)

// View mirrors the world on screen and turns pointer input into button
// interactions.
type View interface {
	Update()
	Draw(screen *ebiten.Image)
}

// Game implements ebiten.Game on top of an App.
type Game struct {
	app     *app.App
	view    View
	screenW int
	screenH int
}

// New creates a new Game. The app must already be started.
func New(a *app.App, view View, screenW, screenH int) *Game {
	return &Game{
		app:     a,
		view:    view,
		screenW: screenW,
		screenH: screenH,
	}
}

// Update collects input through the view, then runs one app frame.
// Implements ebiten.Game interface.
func (g *Game) Update() error {
	if g.view != nil {
		g.view.Update()
	}
	g.app.Update()

	if g.app.ExitRequested() {
		return ebiten.Termination
	}
	return nil
}

// Draw clears the screen to the app's clear color and draws the view.
// Implements ebiten.Game interface.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.app.ClearColor)
	if g.view != nil {
		g.view.Draw(screen)
	}
}

// Layout returns the game's logical screen dimensions.
// Implements ebiten.Game interface.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenW, g.screenH
}
