package cli

import (
	"context"
	"strings"
	"testing"

	"github.com/matzehuels/pathfinder/pkg/engine"
	"github.com/matzehuels/pathfinder/pkg/errors"
	"github.com/matzehuels/pathfinder/pkg/grid"
	"github.com/matzehuels/pathfinder/pkg/search"
)

func TestParseFormats(t *testing.T) {
	got := parseFormats("svg, png ,txt")
	want := []string{"svg", "png", "txt"}
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Errorf("parseFormats = %q, want %q", got, want)
	}
}

func TestOutputPath(t *testing.T) {
	tests := []struct {
		output, format string
		multi          bool
		want           string
	}{
		{"", "svg", false, "pathfinder.svg"},
		{"", "png", true, "pathfinder.png"},
		{"out.svg", "svg", false, "out.svg"},
		{"frame", "svg", false, "frame"},
		{"maze", "png", true, "maze.png"},
		{"maze.svg", "svg", true, "maze.svg"},
	}
	for _, tt := range tests {
		if got := outputPath(tt.output, tt.format, tt.multi); got != tt.want {
			t.Errorf("outputPath(%q, %q, %v) = %q, want %q", tt.output, tt.format, tt.multi, got, tt.want)
		}
	}
}

func TestSolve(t *testing.T) {
	g, err := grid.ParseASCII("S#..\n.#.#\n...T")
	if err != nil {
		t.Fatal(err)
	}
	e := engine.New(g)
	if err := e.Select(search.KeyDijkstra); err != nil {
		t.Fatal(err)
	}

	var calls int
	if err := solve(context.Background(), e, maxSolveSteps, func(int) { calls++ }); err != nil {
		t.Fatalf("solve: %v", err)
	}
	snap := e.Snapshot()
	if snap.Phase != engine.PhaseDone || !snap.Found {
		t.Fatalf("phase = %v, found = %v", snap.Phase, snap.Found)
	}
	if calls != 0 {
		t.Errorf("progress called %d times on a tiny grid", calls)
	}
}

func TestSolveErrors(t *testing.T) {
	g, _ := grid.ParseASCII("S...........T")

	e := engine.New(g)
	err := solve(context.Background(), e, 2, nil)
	if errors.GetCode(err) != errors.ErrCodeInternal {
		t.Errorf("step limit: err = %v, want INTERNAL", err)
	}

	e.Reset()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := solve(ctx, e, maxSolveSteps, nil); err != context.Canceled {
		t.Errorf("cancelled: err = %v", err)
	}
}

func TestCompareTable(t *testing.T) {
	results := []search.Result{
		{Algorithm: "Fast", Found: true, Cost: 4, Path: make([]grid.Coord, 5), Steps: 6, Visited: 5},
		{Algorithm: "Lost", Found: false, Steps: 9, Visited: 9},
	}
	out := compareTable(results)
	for _, want := range []string{"Algorithm", "Fast", "4.000", "yes", "Lost", "no", "-"} {
		if !strings.Contains(out, want) {
			t.Errorf("table missing %q:\n%s", want, out)
		}
	}
}

func TestFormatPath(t *testing.T) {
	path := []grid.Coord{grid.C(0, 0), grid.C(1, 0), grid.C(2, 0)}
	if got := formatPath(path, 12); got != "(0,0) → (1,0) → (2,0)" {
		t.Errorf("formatPath = %q", got)
	}

	long := make([]grid.Coord, 10)
	for i := range long {
		long[i] = grid.C(i, 0)
	}
	got := formatPath(long, 4)
	if got != "(0,0) → (1,0) → … 6 more … → (8,0) → (9,0)" {
		t.Errorf("formatPath = %q", got)
	}
}
