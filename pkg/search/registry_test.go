package search

import (
	"context"
	stderrors "errors"
	"slices"
	"testing"

	"github.com/matzehuels/pathfinder/pkg/errors"
	"github.com/matzehuels/pathfinder/pkg/grid"
)

func TestDefaultRegistry(t *testing.T) {
	reg := DefaultRegistry(grid.Default())

	wantKeys := []string{KeyAStarManhattan, KeyAStarChebyshev, KeyAStarEuclidean, KeyDijkstra, KeyBidirectional}
	if got := reg.Keys(); !slices.Equal(got, wantKeys) {
		t.Errorf("Keys() = %v, want %v", got, wantKeys)
	}

	wantNames := []string{
		"A-Star (Manhattan Distance)",
		"A-Star (Chebyshev Distance)",
		"A-Star (Euclidean Distance)",
		"Dijkstra",
		"Bidirectional Best-First Search",
	}
	for i, e := range reg.Entries() {
		if e.Name != wantNames[i] || e.Algorithm.Name() != wantNames[i] {
			t.Errorf("entry %d name = %q, want %q", i, e.Name, wantNames[i])
		}
	}
	if reg.Default().Key != KeyAStarManhattan {
		t.Errorf("Default() = %q", reg.Default().Key)
	}
	if reg.Len() != 5 {
		t.Errorf("Len() = %d", reg.Len())
	}
}

func TestRegistryLookup(t *testing.T) {
	reg := DefaultRegistry(grid.Default())

	tests := []struct {
		in   string
		want string
	}{
		{"dijkstra", KeyDijkstra},
		{"Dijkstra", KeyDijkstra},
		{"A-Star (Euclidean Distance)", KeyAStarEuclidean},
		{"BIDIRECTIONAL", KeyBidirectional},
	}
	for _, tt := range tests {
		e, err := reg.Lookup(tt.in)
		if err != nil {
			t.Errorf("Lookup(%q): %v", tt.in, err)
			continue
		}
		if e.Key != tt.want {
			t.Errorf("Lookup(%q) = %q, want %q", tt.in, e.Key, tt.want)
		}
	}

	if _, err := reg.Lookup("bfs"); !errors.Is(err, errors.ErrCodeUnknownAlgorithm) {
		t.Errorf("Lookup(bfs) error = %v, want UNKNOWN_ALGORITHM", err)
	}
}

func TestRegistryRegister(t *testing.T) {
	g := grid.Default()
	reg := NewRegistry()
	if err := reg.Register("d", NewDijkstra(g)); err != nil {
		t.Fatal(err)
	}
	if err := reg.Register("D", NewAStar(g, Chebyshev)); err == nil {
		t.Error("duplicate key accepted")
	}
	if err := reg.Register("other", NewDijkstra(g)); err == nil {
		t.Error("duplicate name accepted")
	}
	if err := reg.Register("", NewDijkstra(g)); err == nil {
		t.Error("empty key accepted")
	}
}

func TestRun(t *testing.T) {
	g := parse(t, `
S...T
..#..
..#..`)

	res, err := Run(context.Background(), NewDijkstra(g), 0)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !res.Found || !approx(res.Cost, 4) || len(res.Path) != 5 {
		t.Errorf("Run() = %+v", res)
	}
	if res.Steps == 0 || res.Visited == 0 || res.Algorithm != "Dijkstra" {
		t.Errorf("Run() stats = %+v", res)
	}

	blocked := parse(t, "S#T")
	res, err = Run(context.Background(), NewAStar(blocked, Chebyshev), 0)
	if err != nil || res.Found || res.Path != nil {
		t.Errorf("Run() on blocked grid = %+v, %v", res, err)
	}
}

func TestRunLimits(t *testing.T) {
	g := grid.Default()
	_ = g.SetSource(grid.C(0, 0))
	_ = g.SetTarget(grid.C(49, 29))

	_, err := Run(context.Background(), NewDijkstra(g), 3)
	if !errors.Is(err, errors.ErrCodeInternal) {
		t.Errorf("Run with step limit error = %v, want INTERNAL_ERROR", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = Run(ctx, NewDijkstra(g), 0)
	if !stderrors.Is(err, context.Canceled) {
		t.Errorf("Run with cancelled context error = %v, want context.Canceled", err)
	}
}

func TestRunContinues(t *testing.T) {
	g := parse(t, "S...T")
	alg := NewDijkstra(g)
	_ = alg.Init()
	_, _ = alg.Step()

	res, err := Run(context.Background(), alg, 0)
	if err != nil || !res.Found {
		t.Fatalf("Run() = %+v, %v", res, err)
	}
	if res.Steps != 4 {
		t.Errorf("Run() took %d steps after one manual step, want 4", res.Steps)
	}
}
