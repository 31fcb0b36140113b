package engine

import (
	"context"
	"sync"
	"time"
)

// Interval returns the delay between steps at the given speed. Speed 0 has
// no interval; the driver waits until the speed changes.
func Interval(speed int) time.Duration {
	if speed <= 0 {
		return 0
	}
	return time.Duration(1000/speed) * time.Millisecond
}

// Driver steps an engine on a timer while playing.
type Driver struct {
	engine *Engine
	onStep func(done bool, err error)

	mu      sync.Mutex
	playing bool
	wake    chan struct{}
}

// DriverOption configures a Driver.
type DriverOption func(*Driver)

// WithOnStep registers a callback run after every step the driver takes,
// outside the engine lock.
func WithOnStep(fn func(done bool, err error)) DriverOption {
	return func(d *Driver) { d.onStep = fn }
}

// NewDriver returns a paused driver for e.
func NewDriver(e *Engine, opts ...DriverOption) *Driver {
	d := &Driver{
		engine: e,
		wake:   make(chan struct{}, 1),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Engine returns the driven engine.
func (d *Driver) Engine() *Engine { return d.engine }

func (d *Driver) notify() {
	select {
	case d.wake <- struct{}{}:
	default:
	}
}

func (d *Driver) setPlaying(v bool) {
	d.mu.Lock()
	d.playing = v
	d.mu.Unlock()
	d.notify()
}

// Playing reports whether the driver is stepping.
func (d *Driver) Playing() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.playing
}

// Play starts the search if the engine is editing and resumes stepping.
// A finished search stays finished.
func (d *Driver) Play() error {
	switch d.engine.Phase() {
	case PhaseEditing:
		if err := d.engine.Start(); err != nil {
			return err
		}
	case PhaseDone:
		return nil
	}
	d.setPlaying(true)
	return nil
}

// Pause stops stepping after any step in progress.
func (d *Driver) Pause() { d.setPlaying(false) }

// Toggle starts, pauses or continues the search, in that cycle.
func (d *Driver) Toggle() error {
	if d.Playing() {
		d.Pause()
		return nil
	}
	return d.Play()
}

// StepOnce pauses the driver and performs a single step, starting the
// search first if the engine is editing.
func (d *Driver) StepOnce() (bool, error) {
	d.Pause()
	if d.engine.Phase() == PhaseEditing {
		if err := d.engine.Start(); err != nil {
			return false, err
		}
	}
	return d.engine.Step()
}

// Reset pauses the driver and resets the engine.
func (d *Driver) Reset() {
	d.Pause()
	d.engine.Reset()
}

// SetSpeed changes the engine speed and reschedules the pending step.
func (d *Driver) SetSpeed(speed int) error {
	if err := d.engine.SetSpeed(speed); err != nil {
		return err
	}
	d.notify()
	return nil
}

// Run steps the engine while playing until ctx is done. The next step is
// due one interval after the previous one; speed changes move that
// deadline at once. Stepping stops when the search finishes or fails.
func (d *Driver) Run(ctx context.Context) {
	var last time.Time
	for ctx.Err() == nil {
		interval := Interval(d.engine.Speed())
		if !d.Playing() || interval == 0 {
			select {
			case <-ctx.Done():
				return
			case <-d.wake:
				continue
			}
		}

		if wait := time.Until(last.Add(interval)); wait > 0 {
			timer := time.NewTimer(wait)
			select {
			case <-ctx.Done():
				timer.Stop()
				return
			case <-d.wake:
				timer.Stop()
				continue
			case <-timer.C:
			}
		}
		if !d.Playing() {
			continue
		}

		last = time.Now()
		done, err := d.engine.Step()
		if done || err != nil {
			d.mu.Lock()
			d.playing = false
			d.mu.Unlock()
		}
		if d.onStep != nil {
			d.onStep(done, err)
		}
	}
}
