// Package view mirrors the UI scene graph into an ebitenui widget tree and
// feeds pointer interaction back into the world.
package view

import (
	"image/color"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/yohamta/donburi"

	"github.com/younwookim/simplemenu/internal/domain/menu"
	"github.com/younwookim/simplemenu/internal/ecs"
	"github.com/younwookim/simplemenu/internal/infrastructure/config"
)

var (
	colorButtonIdle     = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	colorButtonHover    = color.NRGBA{R: 0xd9, G: 0xd9, B: 0xd9, A: 0xff}
	colorButtonPressed  = color.NRGBA{R: 0xb3, G: 0xb3, B: 0xb3, A: 0xff}
	colorButtonDisabled = color.NRGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff}
	colorLabelDisabled  = color.NRGBA{R: 0x50, G: 0x50, B: 0x50, A: 0xff}
)

// FontSource hands out faces at a given size
type FontSource interface {
	Face(size float64) text.Face
	Version() uint64
}

// Renderer draws the visible scene roots of a world
type Renderer struct {
	world *ecs.World
	fonts FontSource
	cfg   *config.MenuConfig

	ui *ebitenui.UI

	buttons map[ecs.Entity]*widget.Button

	builtGen  uint64
	fontVer   uint64
	built     bool
	hasCamera bool
}

// NewRenderer creates a renderer for world
func NewRenderer(world *ecs.World, fonts FontSource, cfg *config.MenuConfig) *Renderer {
	if cfg == nil {
		cfg = config.Default()
	}
	return &Renderer{world: world, fonts: fonts, cfg: cfg}
}

// Update rebuilds the widget tree when the world or the loaded font
// changed, then lets ebitenui process input.
func (r *Renderer) Update() {
	if r.stale() {
		r.rebuild()
	}
	if r.ui != nil {
		r.ui.Update()
	}
}

// Draw renders the widget tree. Nothing is drawn without a UI camera.
func (r *Renderer) Draw(screen *ebiten.Image) {
	if r.ui == nil || !r.hasCamera {
		return
	}
	r.ui.Draw(screen)
}

// Buttons returns how many buttons the current tree holds
func (r *Renderer) Buttons() int {
	return len(r.buttons)
}

// Button returns the widget built for a button entity
func (r *Renderer) Button(e ecs.Entity) (*widget.Button, bool) {
	btn, ok := r.buttons[e]
	return btn, ok
}

func (r *Renderer) stale() bool {
	if !r.built {
		return true
	}
	return r.builtGen != r.world.Generation() || r.fontVer != r.fonts.Version()
}

func (r *Renderer) rebuild() {
	r.built = true
	r.builtGen = r.world.Generation()
	r.fontVer = r.fonts.Version()
	r.hasCamera = r.world.HasCamera()
	r.buttons = make(map[ecs.Entity]*widget.Button)

	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	for _, e := range r.world.Roots() {
		entry := r.world.Entry(e)
		if entry == nil || !visible(entry) {
			continue
		}
		root.AddChild(r.buildNode(entry, true))
	}
	r.ui = &ebitenui.UI{Container: root}
}

func visible(entry *donburi.Entry) bool {
	if !entry.HasComponent(ecs.VisibilityComponent) {
		return true
	}
	return ecs.VisibilityComponent.Get(entry).Visible
}

func (r *Renderer) buildNode(entry *donburi.Entry, isRoot bool) widget.PreferredSizeLocateableWidget {
	if entry.HasComponent(ecs.ButtonComponent) {
		return r.buildButton(entry)
	}
	if entry.HasComponent(ecs.TextComponent) {
		return r.buildText(ecs.TextComponent.Get(entry))
	}

	var style ecs.Style
	if entry.HasComponent(ecs.NodeComponent) {
		style = ecs.NodeComponent.Get(entry).Style
	}

	layoutData := widget.RowLayoutData{Position: rowPosition(style.AlignItems)}
	var widgetOpts []widget.WidgetOpt
	if isRoot {
		widgetOpts = append(widgetOpts,
			widget.WidgetOpts.MinSize(style.Width.Resolve(r.cfg.Window.Width), style.Height.Resolve(r.cfg.Window.Height)),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		)
	} else {
		widgetOpts = append(widgetOpts, widget.WidgetOpts.LayoutData(layoutData))
	}

	c := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(direction(style.Direction)),
			widget.RowLayoutOpts.Spacing(r.cfg.Layout.Spacing),
		)),
		widget.ContainerOpts.WidgetOpts(widgetOpts...),
	)
	for _, child := range r.orderedChildren(entry.Entity(), style.Direction) {
		ce := r.world.Entry(child)
		if ce == nil || !visible(ce) {
			continue
		}
		c.AddChild(r.buildNode(ce, false))
	}
	return c
}

func (r *Renderer) buildText(t *ecs.Text) *widget.Text {
	face := r.fonts.Face(t.Size)
	c := t.Color
	if c == nil {
		c = color.White
	}
	return widget.NewText(
		widget.TextOpts.Text(t.Value, &face, c),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
	)
}

func (r *Renderer) buildButton(entry *donburi.Entry) *widget.Button {
	e := entry.Entity()
	style := ecs.NodeComponent.Get(entry).Style
	disabled := ecs.ButtonComponent.Get(entry).Disabled

	label := ecs.Text{Size: 20, Color: color.Black}
	for _, c := range r.world.ChildrenOf(e) {
		if ce := r.world.Entry(c); ce != nil && ce.HasComponent(ecs.TextComponent) {
			label = *ecs.TextComponent.Get(ce)
			break
		}
	}
	face := r.fonts.Face(label.Size)
	labelColor := label.Color
	if labelColor == nil {
		labelColor = color.Black
	}

	btn := widget.NewButton(
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:     imageui.NewNineSliceColor(colorButtonIdle),
			Hover:    imageui.NewNineSliceColor(colorButtonHover),
			Pressed:  imageui.NewNineSliceColor(colorButtonPressed),
			Disabled: imageui.NewNineSliceColor(colorButtonDisabled),
		}),
		widget.ButtonOpts.Text(label.Value, &face, &widget.ButtonTextColor{Idle: labelColor, Disabled: colorLabelDisabled}),
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(style.Width.Resolve(r.cfg.Window.Width), style.Height.Resolve(r.cfg.Window.Height)),
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter}),
			widget.WidgetOpts.CursorEnterHandler(func(args *widget.WidgetCursorEnterEventArgs) {
				r.world.SetInteraction(e, menu.Hovered)
			}),
			widget.WidgetOpts.CursorExitHandler(func(args *widget.WidgetCursorExitEventArgs) {
				r.world.SetInteraction(e, menu.None)
			}),
		),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			r.world.SetInteraction(e, menu.Clicked)
		}),
	)
	btn.GetWidget().Disabled = disabled
	r.buttons[e] = btn
	return btn
}

// orderedChildren returns children top to bottom. Column grows upwards
// from the first child, ColumnReverse reads top-down in spawn order.
func (r *Renderer) orderedChildren(e ecs.Entity, dir ecs.FlexDirection) []ecs.Entity {
	children := r.world.ChildrenOf(e)
	if dir == ecs.Column {
		for i, j := 0, len(children)-1; i < j; i, j = i+1, j-1 {
			children[i], children[j] = children[j], children[i]
		}
	}
	return children
}

func direction(d ecs.FlexDirection) widget.Direction {
	if d == ecs.Row {
		return widget.DirectionHorizontal
	}
	return widget.DirectionVertical
}

func rowPosition(a ecs.Align) widget.RowLayoutPosition {
	switch a {
	case ecs.AlignStart:
		return widget.RowLayoutPositionStart
	case ecs.AlignEnd:
		return widget.RowLayoutPositionEnd
	default:
		return widget.RowLayoutPositionCenter
	}
}
