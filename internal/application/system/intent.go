package system

import (
	"fmt"

	"github.com/younwookim/simplemenu/internal/application/app"
	"github.com/younwookim/simplemenu/internal/application/state"
	"github.com/younwookim/simplemenu/internal/domain/menu"
)

// Intent represents what a clicked button wants the app to do
type Intent interface {
	isIntent()
}

// StartGameIntent pushes the game state
type StartGameIntent struct{}

func (StartGameIntent) isIntent() {}

// OpenControlsIntent pushes the controls screen
type OpenControlsIntent struct{}

func (OpenControlsIntent) isIntent() {}

// QuitIntent asks the run loop to stop
type QuitIntent struct{}

func (QuitIntent) isIntent() {}

// BackIntent returns to the previous state
type BackIntent struct{}

func (BackIntent) isIntent() {}

// IntentFor maps an action to its intent
func IntentFor(a menu.Action) (Intent, bool) {
	switch a {
	case menu.StartGame:
		return StartGameIntent{}, true
	case menu.OpenControls:
		return OpenControlsIntent{}, true
	case menu.Quit:
		return QuitIntent{}, true
	case menu.Back:
		return BackIntent{}, true
	default:
		return nil, false
	}
}

// Apply carries out an intent against the app
func Apply(a *app.App, in Intent) error {
	switch in.(type) {
	case StartGameIntent:
		if err := a.Push(state.StateMainGame); err != nil {
			return fmt.Errorf("failed to start game: %w", err)
		}
	case OpenControlsIntent:
		if err := a.Push(state.StateControlsMenu); err != nil {
			return fmt.Errorf("failed to open control menu: %w", err)
		}
	case QuitIntent:
		a.Exit()
	case BackIntent:
		if err := a.Pop(); err != nil {
			return fmt.Errorf("failed to return to main menu: %w", err)
		}
	default:
		return fmt.Errorf("unknown intent %T", in)
	}
	return nil
}
