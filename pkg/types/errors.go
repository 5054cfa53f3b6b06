package types

import "errors"

// Node lifecycle errors.
var (
	// ErrAllocation reports that storage for a new node could not be obtained.
	ErrAllocation = errors.New("node allocation failed")

	// ErrInvalidHandle reports a handle that does not name a live node.
	ErrInvalidHandle = errors.New("invalid node handle")

	// ErrDoubleRelease reports a release of a node that was already released.
	ErrDoubleRelease = errors.New("node already released")

	// ErrAlreadyLinked reports an append of a node that is already in a list.
	ErrAlreadyLinked = errors.New("node already linked")
)

// ErrInvalidTransition reports a process state change outside
// Init -> Running -> Stopped.
var ErrInvalidTransition = errors.New("invalid state transition")
