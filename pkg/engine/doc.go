// Package engine owns the grid and the search algorithms of one interactive
// session and serializes every access to them.
//
// An [Engine] is the only state shared between the goroutine that edits the
// grid (keyboard, mouse or HTTP handlers) and the goroutine that steps the
// search ([Driver]). One mutex guards it: Start, Step, Reset and every grid
// edit run under that lock, and [Engine.Snapshot] copies everything a
// renderer needs under the same lock, so a frame never shows a node that has
// left the frontier without having reached the visited set.
//
// # Phases
//
//	PhaseEditing --Start--> PhaseRunning --Step...--> PhaseDone
//	      ^                                               |
//	      +------------------- Reset / Select ------------+
//
// Grid edits are accepted only in PhaseEditing and fail with INVALID_STATE
// otherwise. Start refuses a grid whose source is its target with
// SOURCE_IS_TARGET and leaves the engine untouched.
//
// # Driving
//
// A [Driver] calls [Engine.Step] on a cadence derived from the engine speed:
// speed s in 1..100 means one step every 1000/s milliseconds and speed 0
// means paused. Changing the speed reschedules the pending step at once.
//
//	e := engine.New(grid.Default())
//	d := engine.NewDriver(e, engine.WithOnStep(func(done bool, err error) {
//	    redraw(e.Snapshot())
//	}))
//	go d.Run(ctx)
//	_ = d.Play()
package engine
