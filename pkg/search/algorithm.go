package search

import (
	"github.com/matzehuels/pathfinder/pkg/errors"
)

// State is the lifecycle position of an [Algorithm].
type State int

const (
	// Idle holds no search state. The grid may be edited.
	Idle State = iota
	// Initialized has a seeded frontier but has not stepped yet.
	Initialized
	// Stepping has performed at least one step and not finished.
	Stepping
	// Done has found the target or exhausted its frontier.
	Done
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Initialized:
		return "initialized"
	case Stepping:
		return "stepping"
	case Done:
		return "done"
	default:
		return "unknown"
	}
}

// Algorithm is an incremental search over a grid.
//
// Implementations read the grid they were built with on every call; callers
// must not edit it outside the Idle state.
type Algorithm interface {
	// Name is the human-readable algorithm name.
	Name() string

	// State reports the lifecycle position.
	State() State

	// Init seeds the frontier. It is legal only in Idle.
	Init() error

	// Step performs one frontier pop and expansion and reports whether the
	// search has terminated. It is legal after Init; once Done it returns
	// true without further work.
	Step() (done bool, err error)

	// Reset discards all search state and returns to Idle.
	Reset()

	// Unvisited returns the open nodes in frontier order.
	Unvisited() []*Node

	// Visited returns the closed nodes in the order they were closed.
	Visited() []*Node

	// BestPaths returns the nodes whose parent chains are worth drawing:
	// the found path once the search succeeded, otherwise the most recently
	// expanded node(s).
	BestPaths() []*Node
}

// lifecycle tracks the shared state machine.
type lifecycle struct {
	state State
}

func (l *lifecycle) State() State { return l.state }

func (l *lifecycle) beginInit(name string) error {
	if l.state != Idle {
		return errors.New(errors.ErrCodeInvalidState, "%s: init while %s", name, l.state)
	}
	l.state = Initialized
	return nil
}

// beginStep reports whether the step should be skipped: either the search
// already finished or the call is illegal.
func (l *lifecycle) beginStep(name string) (skip bool, err error) {
	switch l.state {
	case Idle:
		return true, errors.New(errors.ErrCodeInvalidState, "%s: step before init", name)
	case Done:
		return true, nil
	}
	l.state = Stepping
	return false, nil
}

func (l *lifecycle) finish() { l.state = Done }

func (l *lifecycle) reset() { l.state = Idle }

// Solution returns the last node of the path alg found, if it finished at
// the target. Its Distance is the path cost.
func Solution(alg Algorithm) (*Node, bool) {
	if alg.State() != Done {
		return nil, false
	}
	paths := alg.BestPaths()
	if len(paths) != 1 {
		return nil, false
	}
	return paths[0], true
}
