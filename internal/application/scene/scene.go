// Package scene defines the Scene interface for menu screens.
//
// Each screen (main menu, controls, etc.) owns the UI tree built for one
// application state. The tree hangs off roots tagged with the scene's
// marker so the whole screen can be torn down as a unit.
package scene

import (
	"github.com/younwookim/simplemenu/internal/application/app"
	"github.com/younwookim/simplemenu/internal/application/state"
	"github.com/younwookim/simplemenu/internal/ecs"
)

// Scene represents a screen bound to an application state
type Scene interface {
	// State is the application state the scene belongs to.
	State() state.GameState

	// Marker tags every root node the scene spawns.
	Marker() ecs.Marker

	// Build spawns the scene's UI tree. Roots must be created with
	// World.SpawnRoot and the scene's marker.
	Build(a *app.App)
}

// BuildSystem returns a system that builds s
func BuildSystem(s Scene) app.System {
	return func(a *app.App) {
		s.Build(a)
	}
}

// TeardownSystem returns a system that removes everything s spawned
func TeardownSystem(s Scene) app.System {
	return func(a *app.App) {
		a.World.Teardown(s.Marker())
	}
}
