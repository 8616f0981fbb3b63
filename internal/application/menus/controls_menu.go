package menus

import (
	"image/color"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/component"

	"github.com/younwookim/simplemenu/internal/application/app"
	"github.com/younwookim/simplemenu/internal/application/state"
	"github.com/younwookim/simplemenu/internal/ecs"
)

// ControlsText is the instruction shown on the controls screen
const ControlsText = `Use "WASD" to move and "E" to interact with things.`

// ControlsMenu explains the controls and offers a way back
type ControlsMenu struct{}

func (ControlsMenu) State() state.GameState { return state.StateControlsMenu }
func (ControlsMenu) Marker() ecs.Marker     { return ecs.ControlsMenuTag }

// Build spawns the instructions and the Back button. With nothing beneath
// this state on the stack the button is disabled.
func (ControlsMenu) Build(a *app.App) {
	root := a.World.SpawnRoot(ecs.ControlsMenuTag, ecs.Node{Style: ecs.FullScreenColumn()}, true)
	a.World.SpawnText(root, ecs.Text{Value: ControlsText, Size: 24, Color: color.White})

	back := spawnButton(a, root, "Back", ecs.BackButtonTag)
	if a.Depth() <= 1 {
		ecs.ButtonComponent.SetValue(back, ecs.Button{Disabled: true})
	}
}

func spawnButton(a *app.App, parent ecs.Entity, label string, tags ...component.IComponentType) *donburi.Entry {
	layout := a.Config.Layout
	style := ecs.Style{
		Width:      ecs.PercentOf(layout.ButtonWidthPercent),
		Height:     ecs.Pixels(layout.ButtonHeight),
		Direction:  ecs.ColumnReverse,
		AlignItems: ecs.AlignCenter,
		Justify:    ecs.JustifySpaceEvenly,
	}
	return a.World.SpawnButton(parent, style, ecs.Text{Value: label, Size: 20, Color: colorButtonText}, tags...)
}
