package ecs

import (
	"image/color"

	"github.com/yohamta/donburi"

	"github.com/younwookim/simplemenu/internal/domain/menu"
)

// Unit is the unit of a layout value
type Unit int

const (
	Auto Unit = iota
	Px
	Percent
)

// Val is a layout length
type Val struct {
	Unit  Unit
	Value float64
}

// Pixels returns a fixed length in pixels
func Pixels(v float64) Val { return Val{Unit: Px, Value: v} }

// PercentOf returns a length relative to the parent
func PercentOf(v float64) Val { return Val{Unit: Percent, Value: v} }

// Resolve converts the value to pixels against the parent length.
// Auto resolves to 0 so callers can fall back to the content size.
func (v Val) Resolve(parent int) int {
	switch v.Unit {
	case Px:
		return int(v.Value)
	case Percent:
		return int(float64(parent) * v.Value / 100)
	default:
		return 0
	}
}

// FlexDirection orders a node's children. The y axis points up, so
// ColumnReverse lists children top-down in spawn order.
type FlexDirection int

const (
	Column FlexDirection = iota
	ColumnReverse
	Row
)

// Align positions children on the cross axis
type Align int

const (
	AlignStart Align = iota
	AlignCenter
	AlignEnd
)

// Justify distributes children on the main axis
type Justify int

const (
	JustifyStart Justify = iota
	JustifyCenter
	JustifySpaceEvenly
)

// Style describes how a node lays out its children
type Style struct {
	Width, Height Val
	Direction     FlexDirection
	AlignItems    Align
	Justify       Justify
}

// FullScreenColumn is the style shared by every scene root: fill the
// window and stack children vertically, centred and evenly spaced.
func FullScreenColumn() Style {
	return Style{
		Width:      PercentOf(100),
		Height:     PercentOf(100),
		Direction:  ColumnReverse,
		AlignItems: AlignCenter,
		Justify:    JustifySpaceEvenly,
	}
}

// Node is a layout container
type Node struct {
	Style Style
}

// Text is a run of text drawn with the scene font
type Text struct {
	Value string
	Size  float64
	Color color.Color
}

// Button marks a clickable node. Its label is the first Text child.
type Button struct {
	Disabled bool
}

// Visibility controls whether a node and its subtree are drawn
type Visibility struct {
	Visible bool
}

// Marker is a zero-data tag identifying the scene that owns a root node
type Marker = *donburi.ComponentType[struct{}]

var (
	NodeComponent        = donburi.NewComponentType[Node]()
	TextComponent        = donburi.NewComponentType[Text]()
	ButtonComponent      = donburi.NewComponentType[Button]()
	VisibilityComponent  = donburi.NewComponentType[Visibility]()
	InteractionComponent = donburi.NewComponentType[menu.Interaction]()
	MenuItemComponent    = donburi.NewComponentType[menu.MenuItem]()
)

// Tags
var (
	MainMenuTag     Marker = donburi.NewComponentType[struct{}]()
	ControlsMenuTag Marker = donburi.NewComponentType[struct{}]()
	BackButtonTag          = donburi.NewComponentType[struct{}]()
	UICameraTag            = donburi.NewComponentType[struct{}]()
)
