package types

import "fmt"

// State is the process state. It moves Init -> Running -> Stopped, each
// transition exactly once.
type State uint8

// Process states.
const (
	StateInit State = iota
	StateRunning
	StateStopped
)

var stateNames = [...]string{
	StateInit:    "init",
	StateRunning: "running",
	StateStopped: "stopped",
}

func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return fmt.Sprintf("state(%d)", uint8(s))
}

// Start moves the state from Init to Running.
// Returns ErrInvalidTransition from any other state.
func (s *State) Start() error {
	if *s != StateInit {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, *s, StateRunning)
	}
	*s = StateRunning
	return nil
}

// Stop moves the state from Running to Stopped.
// Returns ErrInvalidTransition from any other state.
func (s *State) Stop() error {
	if *s != StateRunning {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, *s, StateStopped)
	}
	*s = StateStopped
	return nil
}
