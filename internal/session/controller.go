package session

import "fmt"

// Controller runs the focus/break cycle on top of a Clock.
//
// A Controller is not safe for concurrent use. The host calls Tick once per
// second and every other method from the same goroutine.
type Controller struct {
	cfg        Config
	clock      Clock
	kind       Kind
	cycleIndex int

	observers []subscription
	nextID    int
}

type subscription struct {
	id int
	fn Observer
}

// NewController creates a controller at the start of a focus session.
// cfg is normalized before use.
func NewController(cfg Config) *Controller {
	c := &Controller{
		cfg:  cfg.Normalize(),
		kind: Focus,
	}
	c.configureClock(c.cfg.Focus)
	return c
}

// Subscribe registers fn for every subsequent event. The returned function
// removes the registration.
func (c *Controller) Subscribe(fn Observer) func() {
	c.nextID++
	id := c.nextID
	c.observers = append(c.observers, subscription{id: id, fn: fn})
	return func() {
		for i, s := range c.observers {
			if s.id == id {
				c.observers = append(c.observers[:i:i], c.observers[i+1:]...)
				return
			}
		}
	}
}

func (c *Controller) Start() {
	before := c.State()
	c.clock.Start()
	c.notifyIfChanged(before)
}

func (c *Controller) Pause() {
	before := c.State()
	c.clock.Pause()
	c.notifyIfChanged(before)
}

// Reset stops the clock and restores the full duration of the current
// session kind. The kind and cycle index are kept.
func (c *Controller) Reset() {
	before := c.State()
	c.configureClock(c.cfg.Duration(c.kind))
	c.notifyIfChanged(before)
}

// Tick advances a running session by one second. When the session expires
// the next one is set up, left stopped, and an EventTransitioned is sent.
func (c *Controller) Tick() {
	if !c.clock.Running() {
		return
	}
	before := c.State()
	if !c.clock.Tick() {
		c.notifyIfChanged(before)
		return
	}
	tr := c.advance()
	c.notifyIfChanged(before)
	c.emit(Event{Type: EventTransitioned, State: c.State(), Transition: tr})
}

// Skip ends the current session immediately and moves to the next one as
// an expiry would. The transition is marked Skipped.
func (c *Controller) Skip() {
	before := c.State()
	tr := c.advance()
	tr.Skipped = true
	c.notifyIfChanged(before)
	c.emit(Event{Type: EventTransitioned, State: c.State(), Transition: tr})
}

// ReloadConfiguration replaces the configuration and restarts the cycle
// from a stopped focus session, discarding any time already elapsed.
func (c *Controller) ReloadConfiguration(cfg Config) {
	before := c.State()
	c.cfg = cfg.Normalize()
	c.kind = Focus
	c.cycleIndex = 0
	c.configureClock(c.cfg.Focus)
	c.notifyIfChanged(before)
}

func (c *Controller) State() State {
	return State{
		Kind:       c.kind,
		CycleIndex: c.cycleIndex,
		Remaining:  c.clock.Remaining(),
		Running:    c.clock.Running(),
	}
}

func (c *Controller) Config() Config { return c.cfg }

// RemainingDisplay returns the remaining time as MM:SS.
func (c *Controller) RemainingDisplay() string {
	return FormatRemaining(c.clock.Remaining())
}

// FormatRemaining formats seconds as zero-padded MM:SS. Minutes are not
// wrapped into hours.
func FormatRemaining(secs int) string {
	if secs < 0 {
		secs = 0
	}
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}

func (c *Controller) advance() Transition {
	from := c.kind
	elapsed := c.cfg.Duration(c.kind) - c.clock.Remaining()
	switch c.kind {
	case Focus:
		c.cycleIndex++
		if c.cycleIndex < c.cfg.Repetitions {
			c.kind = ShortBreak
		} else {
			c.kind = LongBreak
			c.cycleIndex = 0
		}
	default:
		c.kind = Focus
	}
	c.configureClock(c.cfg.Duration(c.kind))
	return Transition{From: from, To: c.kind, CycleIndex: c.cycleIndex, Elapsed: elapsed}
}

// configureClock panics on failure: durations come from a normalized
// Config, so an invalid one is a bug in this package.
func (c *Controller) configureClock(seconds int) {
	if err := c.clock.Configure(seconds); err != nil {
		panic(fmt.Sprintf("session: %v", err))
	}
}

func (c *Controller) notifyIfChanged(before State) {
	after := c.State()
	if after.Remaining == before.Remaining && after.Running == before.Running && after.Kind == before.Kind {
		return
	}
	c.emit(Event{Type: EventChanged, State: after})
}

func (c *Controller) emit(e Event) {
	observers := make([]subscription, len(c.observers))
	copy(observers, c.observers)
	for _, s := range observers {
		s.fn(e)
	}
}
