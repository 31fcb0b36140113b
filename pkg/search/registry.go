package search

import (
	"strings"

	"github.com/matzehuels/pathfinder/pkg/errors"
	"github.com/matzehuels/pathfinder/pkg/grid"
)

// Registry keys of the built-in algorithms.
const (
	KeyAStarManhattan = "astar-manhattan"
	KeyAStarChebyshev = "astar-chebyshev"
	KeyAStarEuclidean = "astar-euclidean"
	KeyDijkstra       = "dijkstra"
	KeyBidirectional  = "bidirectional"
)

// Entry is one registered algorithm.
type Entry struct {
	Key       string
	Name      string
	Algorithm Algorithm
}

// Registry is an ordered set of algorithms addressable by key or name.
// The first entry is the default.
type Registry struct {
	entries []Entry
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// DefaultRegistry returns one instance of every built-in algorithm over g,
// with A* (Manhattan) first.
func DefaultRegistry(g *grid.Grid) *Registry {
	r := NewRegistry()
	r.mustRegister(KeyAStarManhattan, NewAStar(g, Manhattan))
	r.mustRegister(KeyAStarChebyshev, NewAStar(g, Chebyshev))
	r.mustRegister(KeyAStarEuclidean, NewAStar(g, Euclidean))
	r.mustRegister(KeyDijkstra, NewDijkstra(g))
	r.mustRegister(KeyBidirectional, NewBidirectional(g))
	return r
}

// Register appends alg under key. Keys and names must be unique, ignoring
// case.
func (r *Registry) Register(key string, alg Algorithm) error {
	if key == "" || alg == nil {
		return errors.New(errors.ErrCodeInvalidInput, "algorithm key and implementation are required")
	}
	for _, e := range r.entries {
		if strings.EqualFold(e.Key, key) || strings.EqualFold(e.Name, alg.Name()) {
			return errors.New(errors.ErrCodeInvalidInput, "algorithm %q already registered", key)
		}
	}
	r.entries = append(r.entries, Entry{Key: key, Name: alg.Name(), Algorithm: alg})
	return nil
}

func (r *Registry) mustRegister(key string, alg Algorithm) {
	if err := r.Register(key, alg); err != nil {
		panic(err)
	}
}

// Lookup finds an entry by key or by name, ignoring case.
func (r *Registry) Lookup(keyOrName string) (Entry, error) {
	for _, e := range r.entries {
		if strings.EqualFold(e.Key, keyOrName) || strings.EqualFold(e.Name, keyOrName) {
			return e, nil
		}
	}
	return Entry{}, errors.New(errors.ErrCodeUnknownAlgorithm,
		"unknown algorithm %q (available: %s)", keyOrName, strings.Join(r.Keys(), ", "))
}

// Default returns the first entry. It panics on an empty registry.
func (r *Registry) Default() Entry { return r.entries[0] }

// Keys returns the keys in registration order.
func (r *Registry) Keys() []string {
	keys := make([]string, len(r.entries))
	for i, e := range r.entries {
		keys[i] = e.Key
	}
	return keys
}

// Entries returns a copy of the entries in registration order.
func (r *Registry) Entries() []Entry {
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Len returns the number of entries.
func (r *Registry) Len() int { return len(r.entries) }
