// Package search implements incremental graph searches over a [grid.Grid].
//
// Every algorithm in this package advances one frontier pop at a time so a
// caller can render, pause and resume a search between steps. The shared
// contract is the [Algorithm] interface and its state machine:
//
//	Idle --Init--> Initialized --Step--> Stepping --Step--> ... --> Done
//	  ^                                                              |
//	  +---------------------------- Reset ---------------------------+
//
// Init is legal only from Idle and Step only after Init. Violations return an
// INVALID_STATE error from pkg/errors and leave the algorithm untouched.
// Step after Done returns done=true without doing anything.
//
// # Algorithms
//
//   - [Dijkstra]: uniform-cost search ordered by distance from the source.
//   - [AStar]: Dijkstra ordered by distance plus a [Heuristic] estimate of the
//     remaining distance. [Manhattan], [Chebyshev] and [Euclidean] are built in.
//   - [Bidirectional]: two Dijkstra searches, one from each endpoint, that
//     stop as soon as one side pops a cell the other side has already seen.
//
// All three share one frontier implementation: a [heap.Heap] keyed by
// [ByDistance] or [ByCost], a map of open nodes and a map of closed nodes.
// A node is in at most one of those sets and a closed node is never reopened.
//
// # Costs
//
// Orthogonal steps cost 1 and diagonal steps cost [DiagonalCost], a fixed
// literal rather than math.Sqrt2, so every algorithm sums identical terms.
//
// # Registry
//
// [DefaultRegistry] binds one instance of each algorithm to a grid, in the
// order front-ends present them:
//
//	reg := search.DefaultRegistry(g)
//	entry, _ := reg.Lookup("dijkstra")
//	res, err := search.Run(ctx, entry.Algorithm, 0)
//
// Algorithms are not safe for concurrent use. pkg/engine wraps one registry in
// a mutex for interactive front-ends.
package search
