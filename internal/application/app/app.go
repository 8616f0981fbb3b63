// Package app is the host application: it owns the world and the state
// stack, and runs the systems plugins register against state lifecycle
// hooks.
package app

import (
	"errors"
	"image/color"
	"log"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"

	"github.com/younwookim/simplemenu/internal/application/state"
	"github.com/younwookim/simplemenu/internal/ecs"
	"github.com/younwookim/simplemenu/internal/infrastructure/config"
)

var (
	// ErrTransitionQueued is returned when a second transition is requested
	// in the same frame.
	ErrTransitionQueued = errors.New("a state transition is already queued")
	// ErrAlreadyInState is returned when pushing or replacing with the
	// current state.
	ErrAlreadyInState = errors.New("state is already current")
)

// AppExit asks the run loop to stop
type AppExit struct{}

// ExitEvent carries AppExit on the world's event bus
var ExitEvent = events.NewEventType[AppExit]()

// System is run by the app at a lifecycle hook
type System func(a *App)

// Plugin registers systems with the app
type Plugin interface {
	Build(a *App)
}

type opKind int

const (
	opPush opKind = iota
	opPop
	opReplace
)

type request struct {
	kind   opKind
	target state.GameState
}

// App owns the world, the state stack and the registered systems
type App struct {
	World      *ecs.World
	Config     *config.MenuConfig
	ClearColor color.Color

	stack   *state.Stack
	systems map[state.GameState]map[state.Hook][]System
	startup []System
	pending *request

	exits   int
	started bool
}

// New creates an app with an empty world and stack
func New(cfg *config.MenuConfig) *App {
	if cfg == nil {
		cfg = config.Default()
	}
	a := &App{
		World:      ecs.NewWorld(),
		Config:     cfg,
		ClearColor: cfg.ClearColor.Color(),
		stack:      state.NewStack(),
		systems:    make(map[state.GameState]map[state.Hook][]System),
	}
	ExitEvent.Subscribe(a.World.Raw(), func(_ donburi.World, _ AppExit) {
		a.exits++
	})
	return a
}

// AddPlugin lets p register its systems
func (a *App) AddPlugin(p Plugin) *App {
	p.Build(a)
	return a
}

// AddStartupSystem registers a system run once by Start
func (a *App) AddStartupSystem(sys System) *App {
	a.startup = append(a.startup, sys)
	return a
}

// AddSystem registers sys to run for s at hook, after systems already
// registered there.
func (a *App) AddSystem(s state.GameState, hook state.Hook, sys System) *App {
	hooks, ok := a.systems[s]
	if !ok {
		hooks = make(map[state.Hook][]System)
		a.systems[s] = hooks
	}
	hooks[hook] = append(hooks[hook], sys)
	return a
}

// Start runs startup systems and enters the initial state
func (a *App) Start(initial state.GameState) {
	if a.started {
		return
	}
	a.started = true
	for _, sys := range a.startup {
		sys(a)
	}
	a.run(a.stack.Push(initial))
}

// Current returns the active state
func (a *App) Current() (state.GameState, bool) {
	return a.stack.Current()
}

// States returns the stack, bottom first
func (a *App) States() []state.GameState {
	return a.stack.States()
}

// Depth returns the number of states on the stack
func (a *App) Depth() int {
	return a.stack.Len()
}

// Push queues pushing s on top of the stack
func (a *App) Push(s state.GameState) error {
	if cur, ok := a.stack.Current(); ok && cur == s {
		return ErrAlreadyInState
	}
	return a.queue(request{kind: opPush, target: s})
}

// Pop queues popping the current state. The last state can't be popped.
func (a *App) Pop() error {
	if a.stack.Len() <= 1 {
		return state.ErrEmptyStack
	}
	return a.queue(request{kind: opPop})
}

// Replace queues swapping the current state for s
func (a *App) Replace(s state.GameState) error {
	if cur, ok := a.stack.Current(); ok && cur == s {
		return ErrAlreadyInState
	}
	return a.queue(request{kind: opReplace, target: s})
}

func (a *App) queue(r request) error {
	if a.pending != nil {
		return ErrTransitionQueued
	}
	a.pending = &r
	return nil
}

// Exit publishes an AppExit event, delivered at the end of the frame
func (a *App) Exit() {
	ExitEvent.Publish(a.World.Raw(), AppExit{})
}

// ExitRequested reports whether an AppExit was delivered
func (a *App) ExitRequested() bool {
	return a.exits > 0
}

// ExitCount returns how many AppExit events were delivered
func (a *App) ExitCount() int {
	return a.exits
}

// Update runs one frame: update systems of the current state, event
// delivery, the queued transition, then click release.
func (a *App) Update() {
	if cur, ok := a.stack.Current(); ok {
		for _, sys := range a.systems[cur][state.OnUpdate] {
			sys(a)
		}
	}

	ExitEvent.ProcessEvents(a.World.Raw())

	if r := a.pending; r != nil {
		a.pending = nil
		a.apply(*r)
	}

	a.World.ReleaseClicks()
}

func (a *App) apply(r request) {
	var t state.Transition
	switch r.kind {
	case opPush:
		t = a.stack.Push(r.target)
	case opReplace:
		t = a.stack.Replace(r.target)
	case opPop:
		var err error
		t, err = a.stack.Pop()
		if err != nil {
			log.Printf("Ignoring pop: %v", err)
			return
		}
	}
	log.Printf("State stack: %v", a.stack.States())
	a.run(t)
}

func (a *App) run(t state.Transition) {
	for _, step := range t {
		for _, sys := range a.systems[step.State][step.Hook] {
			sys(a)
		}
	}
}
