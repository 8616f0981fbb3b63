package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/simplemenu/internal/application/app"
	"github.com/younwookim/simplemenu/internal/application/state"
	"github.com/younwookim/simplemenu/internal/domain/menu"
)

func newTestApp(t *testing.T, initial state.GameState) *app.App {
	t.Helper()
	a := app.New(nil)
	a.Start(initial)
	return a
}

func TestIntentFor(t *testing.T) {
	tests := []struct {
		action menu.Action
		want   Intent
	}{
		{menu.StartGame, StartGameIntent{}},
		{menu.OpenControls, OpenControlsIntent{}},
		{menu.Quit, QuitIntent{}},
		{menu.Back, BackIntent{}},
	}

	for _, tt := range tests {
		t.Run(tt.action.String(), func(t *testing.T) {
			got, ok := IntentFor(tt.action)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}

	_, ok := IntentFor(menu.Action(42))
	assert.False(t, ok)
}

func TestApply(t *testing.T) {
	t.Run("start game pushes MainGame", func(t *testing.T) {
		a := newTestApp(t, state.StateMainMenu)
		require.NoError(t, Apply(a, StartGameIntent{}))
		a.Update()
		assert.Equal(t, []state.GameState{state.StateMainMenu, state.StateMainGame}, a.States())
	})

	t.Run("open controls pushes ControlsMenu", func(t *testing.T) {
		a := newTestApp(t, state.StateMainMenu)
		require.NoError(t, Apply(a, OpenControlsIntent{}))
		a.Update()
		assert.Equal(t, []state.GameState{state.StateMainMenu, state.StateControlsMenu}, a.States())
	})

	t.Run("quit emits exit without touching the stack", func(t *testing.T) {
		a := newTestApp(t, state.StateMainMenu)
		require.NoError(t, Apply(a, QuitIntent{}))
		a.Update()
		assert.Equal(t, 1, a.ExitCount())
		assert.Equal(t, []state.GameState{state.StateMainMenu}, a.States())
	})

	t.Run("back on a single state fails", func(t *testing.T) {
		a := newTestApp(t, state.StateControlsMenu)
		err := Apply(a, BackIntent{})
		assert.ErrorIs(t, err, state.ErrEmptyStack)
		assert.Contains(t, err.Error(), "failed to return to main menu")
	})

	t.Run("second transition in a frame fails", func(t *testing.T) {
		a := newTestApp(t, state.StateMainMenu)
		require.NoError(t, Apply(a, OpenControlsIntent{}))
		err := Apply(a, StartGameIntent{})
		assert.ErrorIs(t, err, app.ErrTransitionQueued)
		assert.Contains(t, err.Error(), "failed to start game")
	})

	t.Run("unknown intent", func(t *testing.T) {
		a := newTestApp(t, state.StateMainMenu)
		assert.Error(t, Apply(a, nil))
	})
}
