package session

import "time"

// Clock is a pausable stopwatch. Once stopped it never runs again.
type Clock struct {
	now     func() time.Time
	since   time.Time
	total   time.Duration
	running bool
	stopped bool
}

// NewClock returns a running clock. A nil now uses time.Now.
func NewClock(now func() time.Time) *Clock {
	if now == nil {
		now = time.Now
	}
	return &Clock{now: now, since: now(), running: true}
}

// Pause freezes the elapsed time.
func (c *Clock) Pause() {
	if !c.running {
		return
	}
	c.total += c.now().Sub(c.since)
	c.running = false
}

// Resume continues a paused clock.
func (c *Clock) Resume() {
	if c.running || c.stopped {
		return
	}
	c.since = c.now()
	c.running = true
}

// Stop freezes the clock permanently.
func (c *Clock) Stop() {
	c.Pause()
	c.stopped = true
}

// Running reports whether time is accumulating.
func (c *Clock) Running() bool {
	return c.running
}

// Elapsed returns the accumulated running time.
func (c *Clock) Elapsed() time.Duration {
	if c.running {
		return c.total + c.now().Sub(c.since)
	}
	return c.total
}
