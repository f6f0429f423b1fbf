package clock

import "time"

// TickFunc advances the simulation by one fixed step of dtMs milliseconds.
type TickFunc func(dtMs float64)

// FixedStep accumulates wall-clock time between frames and spends it in
// fixed-size ticks. Rendering rate and simulation rate are independent:
// a slow frame runs several ticks, a fast frame may run none.
//
// FixedStep is driven from the caller's goroutine and is not safe for
// concurrent use.
type FixedStep struct {
	clock    TimeProvider
	step     time.Duration
	maxDelta time.Duration
	tick     TickFunc

	accumulator time.Duration
	last        time.Time
	running     bool
	ticks       uint64
}

// NewFixedStep creates a stopped scheduler. maxDelta caps the time credited
// for a single frame; zero disables the cap.
func NewFixedStep(clock TimeProvider, step, maxDelta time.Duration, tick TickFunc) *FixedStep {
	if step <= 0 {
		panic("clock: non-positive step")
	}
	return &FixedStep{
		clock:    clock,
		step:     step,
		maxDelta: maxDelta,
		tick:     tick,
	}
}

// Start begins a fresh run: the accumulator is emptied and the time
// reference taken now.
func (f *FixedStep) Start() {
	f.accumulator = 0
	f.last = f.clock.Now()
	f.running = true
}

// Stop halts ticking. Ticks still pending in the current Frame are dropped.
// Returns false if the scheduler was already stopped.
func (f *FixedStep) Stop() bool {
	if !f.running {
		return false
	}
	f.running = false
	return true
}

// Resume restarts ticking after Stop without crediting the stopped
// interval: the time reference moves to now and the leftover accumulator
// from before the stop is kept. Returns false if already running.
func (f *FixedStep) Resume() bool {
	if f.running {
		return false
	}
	f.last = f.clock.Now()
	f.running = true
	return true
}

// Running reports whether Frame will advance the simulation.
func (f *FixedStep) Running() bool {
	return f.running
}

// Frame credits the time elapsed since the previous frame and runs every
// due tick. It returns the number of ticks run.
func (f *FixedStep) Frame() int {
	if !f.running {
		return 0
	}

	now := f.clock.Now()
	elapsed := now.Sub(f.last)
	f.last = now
	if elapsed < 0 {
		elapsed = 0
	}
	if f.maxDelta > 0 && elapsed > f.maxDelta {
		elapsed = f.maxDelta
	}
	f.accumulator += elapsed

	dtMs := float64(f.step) / float64(time.Millisecond)
	n := 0
	for f.running && f.accumulator >= f.step {
		f.tick(dtMs)
		f.accumulator -= f.step
		f.ticks++
		n++
	}
	return n
}

// Alpha is the fraction of a step left in the accumulator, for renderers
// that interpolate between ticks.
func (f *FixedStep) Alpha() float64 {
	return float64(f.accumulator) / float64(f.step)
}

// Ticks returns the total number of ticks run since creation.
func (f *FixedStep) Ticks() uint64 {
	return f.ticks
}

// Step returns the tick duration.
func (f *FixedStep) Step() time.Duration {
	return f.step
}
