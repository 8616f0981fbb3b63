package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/younwookim/simplemenu/internal/application/state"
)

// FileName is the config file read by the loader
const FileName = "menu.yaml"

// Loader loads menu configuration from YAML files using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// Load reads menu.yaml over the defaults and validates the result
func (l *Loader) Load() (*MenuConfig, error) {
	data, err := fs.ReadFile(l.fsys, FileName)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", FileName, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", FileName, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid %s in %s: %w", FileName, l.basePath, err)
	}

	return cfg, nil
}

// LoadOrDefault loads menu.yaml, falling back to Default when the file
// does not exist. Parse and validation errors are still returned.
func (l *Loader) LoadOrDefault() (*MenuConfig, error) {
	cfg, err := l.Load()
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// Validate checks required fields
func (c *MenuConfig) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Assets.Font == "" {
		return errors.New("assets.font is required")
	}
	if c.Layout.ButtonHeight <= 0 || c.Layout.ButtonWidthPercent <= 0 {
		return errors.New("layout button size must be positive")
	}
	if _, err := state.ParseGameState(c.InitialState); err != nil {
		return fmt.Errorf("initialState: %w", err)
	}
	return nil
}

// StartState returns the parsed initial state
func (c *MenuConfig) StartState() state.GameState {
	s, err := state.ParseGameState(c.InitialState)
	if err != nil {
		return state.StateMainMenu
	}
	return s
}
