package core

import "time"

const (
	// TickRate is the simulation rate in steps per second.
	TickRate = 60

	// FixedStep is the simulation step in seconds. Effects always see this
	// value as dt; wall-clock variance never leaks past the clock.
	FixedStep = 1.0 / TickRate

	// MaxStepsPerTick bounds catch-up after a stall. Accumulated time beyond
	// the cap is discarded rather than replayed, so a long stall never
	// causes an unbounded burst of updates.
	MaxStepsPerTick = 5
)

// Clock converts irregular wall-clock ticks into fixed-size simulation
// steps using an accumulator.
type Clock struct {
	last    time.Time
	started bool
	acc     float64
	simTime float64
}

// NewClock creates a clock that has not observed any tick yet.
func NewClock() *Clock {
	return &Clock{}
}

// Tick feeds the current wall-clock time and returns how many fixed steps
// the caller should run. The first tick only establishes the time base.
func (c *Clock) Tick(now time.Time) int {
	if !c.started {
		c.started = true
		c.last = now
		return 0
	}
	elapsed := now.Sub(c.last).Seconds()
	c.last = now
	if elapsed < 0 {
		return 0
	}
	c.acc += elapsed

	steps := int(c.acc / FixedStep)
	if steps >= MaxStepsPerTick {
		steps = MaxStepsPerTick
		c.acc = 0
	} else {
		c.acc -= float64(steps) * FixedStep
	}
	c.simTime += float64(steps) * FixedStep
	return steps
}

// Skip moves the time base to now without accumulating the elapsed span.
// Used while paused so unpausing does not replay the paused interval.
func (c *Clock) Skip(now time.Time) {
	c.started = true
	c.last = now
	c.acc = 0
}

// SimTime returns total simulated seconds stepped so far.
func (c *Clock) SimTime() float64 {
	return c.simTime
}
