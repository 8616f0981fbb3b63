// Package menus wires the main menu and controls screen into the app's
// state lifecycle.
package menus

import (
	"github.com/younwookim/simplemenu/internal/application/app"
	"github.com/younwookim/simplemenu/internal/application/scene"
	"github.com/younwookim/simplemenu/internal/application/state"
	"github.com/younwookim/simplemenu/internal/application/system"
)

// Plugin registers the menu screens
type Plugin struct{}

// Build registers, per state, what runs on enter, resume, update, pause
// and exit. The controls screen is always on top while active, so it has
// no pause or resume systems.
func (Plugin) Build(a *app.App) {
	mainMenu := MainMenu{}
	a.AddSystem(state.StateMainMenu, state.OnEnter, scene.BuildSystem(mainMenu)).
		AddSystem(state.StateMainMenu, state.OnResume, scene.BuildSystem(mainMenu)).
		AddSystem(state.StateMainMenu, state.OnUpdate, system.HandleMenuItemClicks).
		AddSystem(state.StateMainMenu, state.OnPause, scene.TeardownSystem(mainMenu)).
		AddSystem(state.StateMainMenu, state.OnExit, scene.TeardownSystem(mainMenu))

	controls := ControlsMenu{}
	a.AddSystem(state.StateControlsMenu, state.OnEnter, scene.BuildSystem(controls)).
		AddSystem(state.StateControlsMenu, state.OnUpdate, system.HandleBackButton).
		AddSystem(state.StateControlsMenu, state.OnExit, scene.TeardownSystem(controls))
}

// SpawnUICamera is a startup system creating the camera the view draws with
func SpawnUICamera(a *app.App) {
	a.World.SpawnCamera()
}
