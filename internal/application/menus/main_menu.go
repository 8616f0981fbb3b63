package menus

import (
	"image/color"

	"github.com/younwookim/simplemenu/internal/application/app"
	"github.com/younwookim/simplemenu/internal/application/state"
	"github.com/younwookim/simplemenu/internal/domain/menu"
	"github.com/younwookim/simplemenu/internal/ecs"
)

// Title is the game title shown on the main menu
const Title = "Bevy Simple Menu"

var (
	colorTitle      = color.White
	colorButtonText = color.RGBA{64, 64, 64, 255}
)

// MainMenu is the title screen with Play, Controls and Exit
type MainMenu struct{}

func (MainMenu) State() state.GameState { return state.StateMainMenu }
func (MainMenu) Marker() ecs.Marker     { return ecs.MainMenuTag }

// Build sets a black background and spawns the title and one button per
// menu item.
func (MainMenu) Build(a *app.App) {
	a.ClearColor = color.Black

	root := a.World.SpawnRoot(ecs.MainMenuTag, ecs.Node{Style: ecs.FullScreenColumn()}, true)
	a.World.SpawnText(root, ecs.Text{Value: Title, Size: 50, Color: colorTitle})

	for _, item := range menu.MainMenuItems() {
		entry := spawnButton(a, root, item.Label(), ecs.MenuItemComponent)
		ecs.MenuItemComponent.SetValue(entry, item)
	}
}
