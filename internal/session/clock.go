package session

import (
	"errors"
	"fmt"
)

// ErrInvalidDuration is returned when a clock is configured with a
// non-positive number of seconds.
var ErrInvalidDuration = errors.New("invalid duration")

// Clock tracks a single countdown in whole seconds. The zero value is a
// stopped clock with nothing left to count.
type Clock struct {
	remaining int
	running   bool
}

// Configure sets the remaining time to seconds and stops the clock.
func (c *Clock) Configure(seconds int) error {
	if seconds <= 0 {
		return fmt.Errorf("configure clock with %d seconds: %w", seconds, ErrInvalidDuration)
	}
	c.remaining = seconds
	c.running = false
	return nil
}

// Start begins counting down. An expired clock stays stopped.
func (c *Clock) Start() {
	if c.running || c.remaining == 0 {
		return
	}
	c.running = true
}

func (c *Clock) Pause() {
	if !c.running {
		return
	}
	c.running = false
}

// Tick advances a running clock by one second and reports whether this tick
// caused expiry. Expiry stops the clock.
func (c *Clock) Tick() bool {
	if !c.running {
		return false
	}
	if c.remaining > 0 {
		c.remaining--
	}
	if c.remaining == 0 {
		c.running = false
		return true
	}
	return false
}

func (c *Clock) Remaining() int { return c.remaining }
func (c *Clock) Running() bool  { return c.running }
