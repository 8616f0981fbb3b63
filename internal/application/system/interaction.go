package system

import (
	"log"

	"github.com/yohamta/donburi"

	"github.com/younwookim/simplemenu/internal/application/app"
	"github.com/younwookim/simplemenu/internal/domain/menu"
	"github.com/younwookim/simplemenu/internal/ecs"
)

// clicked collects the intents of clicked, enabled buttons under marker.
// Buttons are visited in spawn order; every click in the frame is kept.
func clicked(w *ecs.World, marker ecs.Marker, intentOf func(entry *donburi.Entry) (Intent, bool)) []Intent {
	var intents []Intent
	w.Walk(marker, func(entry *donburi.Entry) {
		if !entry.HasComponent(ecs.ButtonComponent) || !entry.HasComponent(ecs.InteractionComponent) {
			return
		}
		if ecs.ButtonComponent.Get(entry).Disabled {
			return
		}

		switch *ecs.InteractionComponent.Get(entry) {
		case menu.Clicked:
			if in, ok := intentOf(entry); ok {
				intents = append(intents, in)
			}
		case menu.Hovered:
			// Hover feedback is drawn by the view.
		}
	})
	return intents
}

// HandleMenuItemClicks turns clicks on main menu buttons into intents
func HandleMenuItemClicks(a *app.App) {
	intents := clicked(a.World, ecs.MainMenuTag, func(entry *donburi.Entry) (Intent, bool) {
		if !entry.HasComponent(ecs.MenuItemComponent) {
			return nil, false
		}
		action, ok := menu.ActionFor(*ecs.MenuItemComponent.Get(entry))
		if !ok {
			return nil, false
		}
		return IntentFor(action)
	})

	for _, in := range intents {
		if err := Apply(a, in); err != nil {
			log.Printf("Menu click: %v", err)
		}
	}
}

// HandleBackButton pops the state stack when the back button is clicked.
// Popping the last state is logged and ignored.
func HandleBackButton(a *app.App) {
	intents := clicked(a.World, ecs.ControlsMenuTag, func(entry *donburi.Entry) (Intent, bool) {
		if !entry.HasComponent(ecs.BackButtonTag) {
			return nil, false
		}
		return BackIntent{}, true
	})

	for _, in := range intents {
		if err := Apply(a, in); err != nil {
			log.Printf("Back button: %v", err)
			continue
		}
		log.Printf("Popped game state")
	}
}
