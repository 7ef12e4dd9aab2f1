package core

import (
	"testing"
	"time"
)

func TestClockFirstTickEstablishesBase(t *testing.T) {
	c := NewClock()
	now := time.Now()

	if steps := c.Tick(now); steps != 0 {
		t.Errorf("first Tick = %d steps, expected 0", steps)
	}
	if c.SimTime() != 0 {
		t.Errorf("SimTime after first tick = %v, expected 0", c.SimTime())
	}
}

func TestClockAccumulatesFixedSteps(t *testing.T) {
	c := NewClock()
	base := time.Now()
	c.Tick(base)

	// 50ms at 60Hz is exactly 3 fixed steps.
	steps := c.Tick(base.Add(50 * time.Millisecond))
	if steps != 3 {
		t.Errorf("Tick after 50ms = %d steps, expected 3", steps)
	}

	want := 3 * FixedStep
	if diff := c.SimTime() - want; diff < -1e-9 || diff > 1e-9 {
		t.Errorf("SimTime = %v, expected %v", c.SimTime(), want)
	}
}

func TestClockRemainderCarriesOver(t *testing.T) {
	c := NewClock()
	base := time.Now()
	c.Tick(base)

	// 25ms = 1.5 steps: one step now, half a step left in the accumulator.
	if steps := c.Tick(base.Add(25 * time.Millisecond)); steps != 1 {
		t.Errorf("Tick after 25ms = %d steps, expected 1", steps)
	}
	// Another 9ms brings the remainder over one step.
	if steps := c.Tick(base.Add(34 * time.Millisecond)); steps != 1 {
		t.Errorf("Tick after further 9ms = %d steps, expected 1", steps)
	}
}

func TestClockCapsCatchUp(t *testing.T) {
	c := NewClock()
	base := time.Now()
	c.Tick(base)

	// A 2s stall would be 120 steps; the cap bounds it and discards the rest.
	steps := c.Tick(base.Add(2 * time.Second))
	if steps != MaxStepsPerTick {
		t.Errorf("Tick after 2s stall = %d steps, expected %d", steps, MaxStepsPerTick)
	}

	// The discarded backlog must not leak into the next tick.
	if steps := c.Tick(base.Add(2*time.Second + 5*time.Millisecond)); steps != 0 {
		t.Errorf("Tick after discard = %d steps, expected 0", steps)
	}
}

func TestClockSkip(t *testing.T) {
	c := NewClock()
	base := time.Now()
	c.Tick(base)

	// Skip over a long pause; the paused span must not be replayed.
	c.Skip(base.Add(10 * time.Second))

	steps := c.Tick(base.Add(10*time.Second + 17*time.Millisecond))
	if steps != 1 {
		t.Errorf("Tick after Skip = %d steps, expected 1", steps)
	}
}

func TestClockBackwardTimeIgnored(t *testing.T) {
	c := NewClock()
	base := time.Now()
	c.Tick(base)

	if steps := c.Tick(base.Add(-time.Second)); steps != 0 {
		t.Errorf("Tick with backward time = %d steps, expected 0", steps)
	}
}
