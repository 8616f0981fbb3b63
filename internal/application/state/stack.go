package state

import "errors"

// ErrEmptyStack is returned when popping would leave the stack empty
var ErrEmptyStack = errors.New("state stack would be empty")

// Step is one lifecycle hook fired for one state
type Step struct {
	State GameState
	Hook  Hook
}

// Transition lists the hooks an operation fires, in order
type Transition []Step

// Stack is an ordered stack of application states; the top is current.
// States below the top are dormant, not discarded.
type Stack struct {
	states []GameState
}

// NewStack creates a stack holding the initial states, bottom first
func NewStack(states ...GameState) *Stack {
	return &Stack{states: append([]GameState(nil), states...)}
}

// Current returns the top state
func (s *Stack) Current() (GameState, bool) {
	if len(s.states) == 0 {
		return 0, false
	}
	return s.states[len(s.states)-1], true
}

// Len returns the stack depth
func (s *Stack) Len() int {
	return len(s.states)
}

// States returns a copy of the stack, bottom first
func (s *Stack) States() []GameState {
	return append([]GameState(nil), s.states...)
}

// Push suspends the current state and activates next on top of it
func (s *Stack) Push(next GameState) Transition {
	var t Transition
	if cur, ok := s.Current(); ok {
		t = append(t, Step{State: cur, Hook: OnPause})
	}
	s.states = append(s.states, next)
	return append(t, Step{State: next, Hook: OnEnter})
}

// Pop exits the current state and resumes the one beneath it.
// Popping the last state fails with ErrEmptyStack and changes nothing.
func (s *Stack) Pop() (Transition, error) {
	if len(s.states) <= 1 {
		return nil, ErrEmptyStack
	}
	top := s.states[len(s.states)-1]
	s.states = s.states[:len(s.states)-1]
	below := s.states[len(s.states)-1]
	return Transition{
		{State: top, Hook: OnExit},
		{State: below, Hook: OnResume},
	}, nil
}

// Replace exits the current state and enters next in its place.
// On an empty stack it behaves like Push.
func (s *Stack) Replace(next GameState) Transition {
	if len(s.states) == 0 {
		return s.Push(next)
	}
	top := s.states[len(s.states)-1]
	s.states[len(s.states)-1] = next
	return Transition{
		{State: top, Hook: OnExit},
		{State: next, Hook: OnEnter},
	}
}
