package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGameState_String(t *testing.T) {
	tests := []struct {
		state    GameState
		expected string
	}{
		{StateMainMenu, "MainMenu"},
		{StateControlsMenu, "ControlsMenu"},
		{StateMainGame, "MainGame"},
		{GameState(99), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.state.String())
		})
	}
}

func TestGameStateConstants(t *testing.T) {
	// Verify the iota ordering
	assert.Equal(t, GameState(0), StateMainMenu)
	assert.Equal(t, GameState(1), StateControlsMenu)
	assert.Equal(t, GameState(2), StateMainGame)
}

func TestParseGameState(t *testing.T) {
	tests := []struct {
		name string
		want GameState
	}{
		{"main_menu", StateMainMenu},
		{"MainMenu", StateMainMenu},
		{"controls_menu", StateControlsMenu},
		{"main_game", StateMainGame},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseGameState(tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseGameState("pause")
	assert.Error(t, err)
}

func TestHook_String(t *testing.T) {
	assert.Equal(t, "OnEnter", OnEnter.String())
	assert.Equal(t, "OnResume", OnResume.String())
	assert.Equal(t, "OnUpdate", OnUpdate.String())
	assert.Equal(t, "OnPause", OnPause.String())
	assert.Equal(t, "OnExit", OnExit.String())
	assert.Equal(t, "Unknown", Hook(10).String())
}
