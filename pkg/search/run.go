package search

import (
	"context"
	"time"

	"github.com/matzehuels/pathfinder/pkg/errors"
	"github.com/matzehuels/pathfinder/pkg/grid"
	"github.com/matzehuels/pathfinder/pkg/observability"
)

// Result summarizes a finished search.
type Result struct {
	Algorithm string        `json:"algorithm"`
	Found     bool          `json:"found"`
	Cost      float64       `json:"cost"`
	Path      []grid.Coord  `json:"path,omitempty"`
	Steps     int           `json:"steps"`
	Visited   int           `json:"visited"`
	Unvisited int           `json:"unvisited"`
	Duration  time.Duration `json:"duration"`
}

// Run steps alg until it is done and summarizes the outcome. An idle
// algorithm is initialized first; one that is already running is continued.
// maxSteps bounds the number of steps taken by this call, zero meaning no
// bound. The context is checked between steps.
func Run(ctx context.Context, alg Algorithm, maxSteps int) (Result, error) {
	hooks := observability.Search()
	start := time.Now()
	res := Result{Algorithm: alg.Name()}

	if alg.State() == Idle {
		if err := alg.Init(); err != nil {
			return res, err
		}
	}

	for {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		if maxSteps > 0 && res.Steps >= maxSteps {
			return res, errors.New(errors.ErrCodeInternal, "%s: no result after %d steps", alg.Name(), maxSteps)
		}
		done, err := alg.Step()
		if err != nil {
			return res, err
		}
		res.Steps++
		if done {
			break
		}
	}

	res.Duration = time.Since(start)
	res.Visited = len(alg.Visited())
	res.Unvisited = len(alg.Unvisited())
	if n, ok := Solution(alg); ok {
		res.Found = true
		res.Cost = n.Distance
		res.Path = n.Path()
	}
	hooks.OnSearchComplete(res.Algorithm, res.Found, res.Cost, res.Steps, res.Duration)
	return res, nil
}
