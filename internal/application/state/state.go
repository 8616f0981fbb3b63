package state

import "fmt"

// GameState represents an application state that can sit on the stack
type GameState int

const (
	StateMainMenu GameState = iota
	StateControlsMenu
	StateMainGame
)

// String returns the string representation of the game state
func (s GameState) String() string {
	switch s {
	case StateMainMenu:
		return "MainMenu"
	case StateControlsMenu:
		return "ControlsMenu"
	case StateMainGame:
		return "MainGame"
	default:
		return "Unknown"
	}
}

// ParseGameState maps a config name to a state
func ParseGameState(name string) (GameState, error) {
	switch name {
	case "main_menu", "MainMenu":
		return StateMainMenu, nil
	case "controls_menu", "ControlsMenu":
		return StateControlsMenu, nil
	case "main_game", "MainGame":
		return StateMainGame, nil
	default:
		return 0, fmt.Errorf("unknown game state %q", name)
	}
}

// Hook is a point in a state's lifecycle where systems run
type Hook int

const (
	OnEnter Hook = iota
	OnResume
	OnUpdate
	OnPause
	OnExit
)

// String returns the string representation of the hook
func (h Hook) String() string {
	switch h {
	case OnEnter:
		return "OnEnter"
	case OnResume:
		return "OnResume"
	case OnUpdate:
		return "OnUpdate"
	case OnPause:
		return "OnPause"
	case OnExit:
		return "OnExit"
	default:
		return "Unknown"
	}
}
