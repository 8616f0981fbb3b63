package view

import (
	"testing"
	"testing/fstest"

	"github.com/ebitenui/ebitenui/event"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/younwookim/simplemenu/internal/application/app"
	"github.com/younwookim/simplemenu/internal/application/menus"
	"github.com/younwookim/simplemenu/internal/application/state"
	"github.com/younwookim/simplemenu/internal/domain/menu"
	"github.com/younwookim/simplemenu/internal/ecs"
	"github.com/younwookim/simplemenu/internal/infrastructure/assets"
)

func newMenuApp(t *testing.T, initial state.GameState) *app.App {
	t.Helper()
	a := app.New(nil)
	a.AddStartupSystem(menus.SpawnUICamera)
	a.AddPlugin(menus.Plugin{})
	a.Start(initial)
	return a
}

func newRenderer(a *app.App) *Renderer {
	return NewRenderer(a.World, assets.NewFallbackFonts(), a.Config)
}

func findButton(t *testing.T, a *app.App, marker ecs.Marker, match func(entry *donburi.Entry) bool) ecs.Entity {
	t.Helper()
	found := donburi.Null
	a.World.Walk(marker, func(entry *donburi.Entry) {
		if entry.HasComponent(ecs.ButtonComponent) && match(entry) {
			found = entry.Entity()
		}
	})
	require.True(t, a.World.Exists(found), "button not found")
	return found
}

func menuButton(t *testing.T, a *app.App, item menu.MenuItem) ecs.Entity {
	t.Helper()
	return findButton(t, a, ecs.MainMenuTag, func(entry *donburi.Entry) bool {
		return entry.HasComponent(ecs.MenuItemComponent) && *ecs.MenuItemComponent.Get(entry) == item
	})
}

func builtButton(t *testing.T, r *Renderer, e ecs.Entity) *widget.Button {
	t.Helper()
	btn, ok := r.Button(e)
	require.True(t, ok, "no widget for entity")
	// ebitenui registers handlers through its deferred queue
	event.ExecuteDeferred()
	return btn
}

func TestRenderer_BuildsVisibleScene(t *testing.T) {
	a := newMenuApp(t, state.StateMainMenu)
	r := newRenderer(a)

	require.True(t, r.stale())
	r.rebuild()

	assert.False(t, r.stale())
	assert.True(t, r.hasCamera)
	assert.Equal(t, 3, r.Buttons())
	require.NotNil(t, r.ui)
	assert.Len(t, r.ui.Container.Children(), 1)
}

func TestRenderer_ClickWritesInteraction(t *testing.T) {
	a := newMenuApp(t, state.StateMainMenu)
	r := newRenderer(a)
	r.rebuild()

	controls := menuButton(t, a, menu.Controls)
	btn := builtButton(t, r, controls)

	btn.Click()
	event.ExecuteDeferred()

	assert.Equal(t, menu.Clicked, a.World.Interaction(controls))
	assert.Equal(t, menu.None, a.World.Interaction(menuButton(t, a, menu.Play)))

	a.Update()
	assert.Equal(t, []state.GameState{state.StateMainMenu, state.StateControlsMenu}, a.States())
}

func TestRenderer_ButtonSizeFromStyle(t *testing.T) {
	a := newMenuApp(t, state.StateMainMenu)
	r := newRenderer(a)
	r.rebuild()

	// 10% of an 800px window by 30px
	w := builtButton(t, r, menuButton(t, a, menu.Play)).GetWidget()
	assert.Equal(t, 80, w.MinWidth)
	assert.Equal(t, 30, w.MinHeight)
}

func TestRenderer_HoverWritesInteraction(t *testing.T) {
	a := newMenuApp(t, state.StateMainMenu)
	r := newRenderer(a)
	r.rebuild()

	play := menuButton(t, a, menu.Play)
	w := builtButton(t, r, play).GetWidget()

	w.CursorEnterEvent.Fire(&widget.WidgetCursorEnterEventArgs{Widget: w})
	event.ExecuteDeferred()
	assert.Equal(t, menu.Hovered, a.World.Interaction(play))

	w.CursorExitEvent.Fire(&widget.WidgetCursorExitEventArgs{Widget: w})
	event.ExecuteDeferred()
	assert.Equal(t, menu.None, a.World.Interaction(play))
}

func TestRenderer_DisabledButtonIgnoresClick(t *testing.T) {
	a := newMenuApp(t, state.StateControlsMenu)
	r := newRenderer(a)
	r.rebuild()

	back := findButton(t, a, ecs.ControlsMenuTag, func(entry *donburi.Entry) bool {
		return entry.HasComponent(ecs.BackButtonTag)
	})
	btn := builtButton(t, r, back)
	require.True(t, btn.GetWidget().Disabled)

	btn.Click()
	event.ExecuteDeferred()

	assert.Equal(t, menu.None, a.World.Interaction(back))
}

func TestRenderer_RebuildsOnTransition(t *testing.T) {
	a := newMenuApp(t, state.StateMainMenu)
	r := newRenderer(a)
	r.rebuild()

	a.World.SetInteraction(menuButton(t, a, menu.Controls), menu.Clicked)
	a.Update()

	require.True(t, r.stale())
	r.rebuild()
	assert.Equal(t, 1, r.Buttons(), "only the Back button is shown")
}

func TestRenderer_RebuildsWhenFontLoads(t *testing.T) {
	a := newMenuApp(t, state.StateMainMenu)
	fonts := &swappableFonts{Fonts: assets.NewFallbackFonts()}
	r := NewRenderer(a.World, fonts, a.Config)
	r.rebuild()
	require.False(t, r.stale())

	fsys := fstest.MapFS{"fonts/goregular.ttf": {Data: goregular.TTF}}
	fonts.Fonts = assets.LoadFontAsync(fsys, "fonts/goregular.ttf")
	require.NoError(t, fonts.Wait())

	assert.True(t, r.stale(), "font version changed")
	_, ok := fonts.Face(20).(*text.GoTextFace)
	assert.True(t, ok, "real font replaces the fallback")

	r.rebuild()
	assert.False(t, r.stale())
}

func TestRenderer_SkipsHiddenRoots(t *testing.T) {
	a := newMenuApp(t, state.StateMainMenu)
	root := a.World.RootsOf(ecs.MainMenuTag)[0]
	ecs.VisibilityComponent.Get(a.World.Entry(root)).Visible = false

	r := newRenderer(a)
	r.rebuild()

	assert.Equal(t, 0, r.Buttons())
	assert.Empty(t, r.ui.Container.Children())
}

func TestRenderer_NoCamera(t *testing.T) {
	a := app.New(nil)
	a.AddPlugin(menus.Plugin{})
	a.Start(state.StateMainMenu)

	r := newRenderer(a)
	r.rebuild()

	assert.False(t, r.hasCamera)
}

func TestRenderer_OrderedChildren(t *testing.T) {
	w := ecs.NewWorld()
	root := w.SpawnRoot(ecs.MainMenuTag, ecs.Node{}, true)
	first := w.SpawnText(root, ecs.Text{Value: "first"})
	second := w.SpawnText(root, ecs.Text{Value: "second"})
	r := NewRenderer(w, assets.NewFallbackFonts(), nil)

	assert.Equal(t, []ecs.Entity{first, second}, r.orderedChildren(root, ecs.ColumnReverse))
	assert.Equal(t, []ecs.Entity{second, first}, r.orderedChildren(root, ecs.Column))
}

// swappableFonts lets a test replace the provider behind a live renderer
type swappableFonts struct {
	*assets.Fonts
}
