// Package menu holds the menu data model: button tags, interaction
// signals and the actions they map to.
package menu

// MenuItem tags a main menu button with the action it performs
type MenuItem int

const (
	// Play starts the game.
	Play MenuItem = iota
	// Controls opens the controls screen.
	Controls
	// Exit quits the application.
	Exit
)

// Label returns the text shown on the button
func (m MenuItem) Label() string {
	switch m {
	case Play:
		return "Play"
	case Controls:
		return "Controls"
	case Exit:
		return "Exit"
	default:
		return "Unknown"
	}
}

// String implements fmt.Stringer
func (m MenuItem) String() string { return m.Label() }

// MainMenuItems returns the main menu buttons in display order
func MainMenuItems() []MenuItem {
	return []MenuItem{Play, Controls, Exit}
}

// Interaction is the per-frame input signal of a button
type Interaction int

const (
	None Interaction = iota
	Hovered
	Clicked
)

// String returns the string representation of the interaction
func (i Interaction) String() string {
	switch i {
	case None:
		return "None"
	case Hovered:
		return "Hovered"
	case Clicked:
		return "Clicked"
	default:
		return "Unknown"
	}
}

// Action is what a clicked button asks the application to do
type Action int

const (
	StartGame Action = iota
	OpenControls
	Quit
	Back
)

// String returns the string representation of the action
func (a Action) String() string {
	switch a {
	case StartGame:
		return "StartGame"
	case OpenControls:
		return "OpenControls"
	case Quit:
		return "Quit"
	case Back:
		return "Back"
	default:
		return "Unknown"
	}
}

var actions = map[MenuItem]Action{
	Play:     StartGame,
	Controls: OpenControls,
	Exit:     Quit,
}

// ActionFor looks up the action bound to a menu item
func ActionFor(item MenuItem) (Action, bool) {
	a, ok := actions[item]
	return a, ok
}
