package config

import "image/color"

// MenuConfig is the root config for menu.yaml
type MenuConfig struct {
	Window       WindowConfig `yaml:"window"`
	Assets       AssetsConfig `yaml:"assets"`
	InitialState string       `yaml:"initialState"`
	ClearColor   RGBA         `yaml:"clearColor"`
	Layout       LayoutConfig `yaml:"layout"`
}

// WindowConfig is applied once at startup
type WindowConfig struct {
	Title     string `yaml:"title"`
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	Resizable bool   `yaml:"resizable"`
	VSync     bool   `yaml:"vsync"`
}

// AssetsConfig locates the font, relative to Dir
type AssetsConfig struct {
	Dir  string `yaml:"dir"`
	Font string `yaml:"font"`
}

// LayoutConfig sizes menu widgets
type LayoutConfig struct {
	ButtonWidthPercent float64 `yaml:"buttonWidthPercent"`
	ButtonHeight       float64 `yaml:"buttonHeight"`
	Spacing            int     `yaml:"spacing"`
}

// RGBA is a color as 0-255 channels
type RGBA struct {
	R uint8 `yaml:"r"`
	G uint8 `yaml:"g"`
	B uint8 `yaml:"b"`
	A uint8 `yaml:"a"`
}

// Color converts to a color.Color
func (c RGBA) Color() color.Color {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// Default returns the built-in configuration
func Default() *MenuConfig {
	return &MenuConfig{
		Window: WindowConfig{
			Title:     "Bevy Simple Menu",
			Width:     800,
			Height:    600,
			Resizable: false,
			VSync:     false,
		},
		Assets: AssetsConfig{
			Dir:  "assets",
			Font: "fonts/RobotoMono-Regular.ttf",
		},
		InitialState: "main_menu",
		ClearColor:   RGBA{R: 102, G: 102, B: 102, A: 255},
		Layout: LayoutConfig{
			ButtonWidthPercent: 10,
			ButtonHeight:       30,
			Spacing:            40,
		},
	}
}
