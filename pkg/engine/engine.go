package engine

import (
	"sync"
	"time"

	"github.com/matzehuels/pathfinder/pkg/errors"
	"github.com/matzehuels/pathfinder/pkg/grid"
	"github.com/matzehuels/pathfinder/pkg/observability"
	"github.com/matzehuels/pathfinder/pkg/search"
)

// DefaultSpeed is the initial stepping speed in steps per second.
const DefaultSpeed = 20

// Phase is the editing/running position of an Engine.
type Phase int

const (
	// PhaseEditing allows grid edits. The active algorithm is idle.
	PhaseEditing Phase = iota
	// PhaseRunning has an initialized search that has not finished.
	PhaseRunning
	// PhaseDone has a finished search.
	PhaseDone
)

func (p Phase) String() string {
	switch p {
	case PhaseEditing:
		return "editing"
	case PhaseRunning:
		return "running"
	case PhaseDone:
		return "done"
	default:
		return "unknown"
	}
}

// MarshalText encodes the phase by name.
func (p Phase) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

// Engine holds a grid, a registry of algorithms bound to it and the state
// of the active search. It is safe for concurrent use.
type Engine struct {
	mu         sync.Mutex
	grid       *grid.Grid
	registry   *search.Registry
	active     search.Entry
	iterations int
	speed      int
	started    time.Time
	elapsed    time.Duration
}

// New returns an engine editing g with the default registry. The engine
// takes ownership of g; callers must not edit it directly afterwards.
func New(g *grid.Grid) *Engine {
	if g == nil {
		g = grid.Default()
	}
	reg := search.DefaultRegistry(g)
	return &Engine{
		grid:     g,
		registry: reg,
		active:   reg.Default(),
		speed:    DefaultSpeed,
	}
}

func phaseOf(s search.State) Phase {
	switch s {
	case search.Idle:
		return PhaseEditing
	case search.Done:
		return PhaseDone
	default:
		return PhaseRunning
	}
}

// Phase reports the current phase.
func (e *Engine) Phase() Phase {
	e.mu.Lock()
	defer e.mu.Unlock()
	return phaseOf(e.active.Algorithm.State())
}

// =============================================================================
// Grid Editing
// =============================================================================

// edit runs fn on the grid if the engine is editing.
func (e *Engine) edit(fn func(g *grid.Grid) error) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if p := phaseOf(e.active.Algorithm.State()); p != PhaseEditing {
		return errors.New(errors.ErrCodeInvalidState, "grid cannot be edited while the search is %s; reset first", p)
	}
	return fn(e.grid)
}

// Grid returns a copy of the grid.
func (e *Engine) Grid() *grid.Grid {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.grid.Clone()
}

// Resize changes the grid dimensions, clamping the source and target.
func (e *Engine) Resize(width, height int) error {
	return e.edit(func(g *grid.Grid) error { return g.Resize(width, height) })
}

// SetSource moves the source.
func (e *Engine) SetSource(c grid.Coord) error {
	return e.edit(func(g *grid.Grid) error { return g.SetSource(c) })
}

// SetTarget moves the target.
func (e *Engine) SetTarget(c grid.Coord) error {
	return e.edit(func(g *grid.Grid) error { return g.SetTarget(c) })
}

// AddWall turns c into a wall.
func (e *Engine) AddWall(c grid.Coord) error {
	return e.edit(func(g *grid.Grid) error { return g.AddWall(c) })
}

// RemoveWall frees c and reports whether it was a wall.
func (e *Engine) RemoveWall(c grid.Coord) (bool, error) {
	var removed bool
	err := e.edit(func(g *grid.Grid) error {
		removed = g.RemoveWall(c)
		return nil
	})
	return removed, err
}

// ToggleWall flips c and reports whether it is a wall afterwards.
func (e *Engine) ToggleWall(c grid.Coord) (bool, error) {
	var isWall bool
	err := e.edit(func(g *grid.Grid) error {
		var err error
		isWall, err = g.ToggleWall(c)
		return err
	})
	return isWall, err
}

// ClearWalls removes every wall.
func (e *Engine) ClearWalls() error {
	return e.edit(func(g *grid.Grid) error {
		g.ClearWalls()
		return nil
	})
}

// GenerateWalls replaces the walls with random noise of the given density.
func (e *Engine) GenerateWalls(density float64, seed uint64) error {
	return e.edit(func(g *grid.Grid) error { return grid.ScatterWalls(g, density, seed) })
}

// GenerateMaze replaces the walls with a maze carved from the source.
func (e *Engine) GenerateMaze(seed uint64) error {
	return e.edit(func(g *grid.Grid) error {
		grid.Maze(g, seed)
		return nil
	})
}

// LoadGrid replaces the grid with a copy of g.
func (e *Engine) LoadGrid(g *grid.Grid) error {
	return e.edit(func(cur *grid.Grid) error {
		cur.Assign(g)
		return nil
	})
}

// =============================================================================
// Algorithm Selection
// =============================================================================

// Algorithms returns the registered algorithms in presentation order.
func (e *Engine) Algorithms() []search.Entry {
	return e.registry.Entries()
}

// Algorithm returns the active entry.
func (e *Engine) Algorithm() search.Entry {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.active
}

// Select makes the algorithm with the given key or name active. The
// previously active search is reset, returning the engine to editing.
func (e *Engine) Select(keyOrName string) error {
	entry, err := e.registry.Lookup(keyOrName)
	if err != nil {
		return err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.resetLocked()
	e.active = entry
	return nil
}

// Cycle selects the next registered algorithm, wrapping around, and
// returns it.
func (e *Engine) Cycle() search.Entry {
	entries := e.registry.Entries()
	e.mu.Lock()
	defer e.mu.Unlock()
	next := entries[0]
	for i, entry := range entries {
		if entry.Key == e.active.Key {
			next = entries[(i+1)%len(entries)]
			break
		}
	}
	e.resetLocked()
	e.active = next
	return next
}

// =============================================================================
// Search Control
// =============================================================================

// Start validates the grid and initializes the active search.
func (e *Engine) Start() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if p := phaseOf(e.active.Algorithm.State()); p != PhaseEditing {
		return errors.New(errors.ErrCodeInvalidState, "search already %s", p)
	}
	if e.grid.Source() == e.grid.Target() {
		return errors.New(errors.ErrCodeSourceIsTarget, "Source cannot be the same as the target")
	}
	if err := e.active.Algorithm.Init(); err != nil {
		return err
	}
	e.iterations = 0
	e.started = time.Now()
	e.elapsed = 0
	observability.Search().OnSearchStart(e.active.Name, e.grid.Width(), e.grid.Height(), e.grid.WallCount())
	return nil
}

// Step advances the active search by one step and reports whether it has
// finished. The iteration counter grows once per step performed; a step on
// a finished search is a no-op that reports done.
func (e *Engine) Step() (bool, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	alg := e.active.Algorithm
	if alg.State() == search.Done {
		return true, nil
	}
	done, err := alg.Step()
	if err != nil {
		return false, err
	}
	e.iterations++

	hooks := observability.Search()
	hooks.OnStep(e.active.Name, e.iterations, len(alg.Unvisited()), len(alg.Visited()))
	if done {
		e.elapsed = time.Since(e.started)
		n, found := search.Solution(alg)
		cost := 0.0
		if found {
			cost = n.Distance
		}
		hooks.OnSearchComplete(e.active.Name, found, cost, e.iterations, e.elapsed)
	}
	return done, nil
}

// Reset discards the active search and returns to editing.
func (e *Engine) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.resetLocked()
}

func (e *Engine) resetLocked() {
	if e.active.Algorithm.State() != search.Idle {
		observability.Search().OnReset(e.active.Name)
	}
	e.active.Algorithm.Reset()
	e.iterations = 0
	e.elapsed = 0
}

// Iterations returns the number of steps performed since Start.
func (e *Engine) Iterations() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.iterations
}

// Speed returns the stepping speed in steps per second; 0 means paused.
func (e *Engine) Speed() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.speed
}

// SetSpeed sets the stepping speed. It must lie in [0, 100].
func (e *Engine) SetSpeed(speed int) error {
	if err := errors.ValidateSpeed(speed); err != nil {
		return err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.speed = speed
	return nil
}
