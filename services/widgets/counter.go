package widgets

import (
	"fmt"
	"sync"
	"time"
)

const (
	// DefaultCounterTick is the period between counter increments.
	DefaultCounterTick = 30 * time.Millisecond
	// CounterMaxTicks bounds how many ticks a counter needs to settle.
	CounterMaxTicks = 50
)

// CounterPhase is the lifecycle stage of a Counter.
type CounterPhase int

const (
	CounterIdle CounterPhase = iota
	CounterCounting
	CounterSettled
)

func (p CounterPhase) String() string {
	switch p {
	case CounterIdle:
		return "idle"
	case CounterCounting:
		return "counting"
	case CounterSettled:
		return "settled"
	default:
		return fmt.Sprintf("CounterPhase(%d)", int(p))
	}
}

// CounterOptions configures a Counter.
type CounterOptions struct {
	Target int
	Suffix string
	// Tick defaults to DefaultCounterTick when zero.
	Tick time.Duration
}

// CounterState is a snapshot of a Counter.
type CounterState struct {
	Current int
	Target  int
	Step    int
	Phase   CounterPhase
	Display string
}

// CounterStep returns the per-tick increment for target: ceil(target/50).
func CounterStep(target int) int {
	if target <= 0 {
		return 0
	}
	return (target + CounterMaxTicks - 1) / CounterMaxTicks
}

// FormatCounter renders a counter value as shown on the page, e.g. "10K+".
func FormatCounter(value int, suffix string) string {
	return fmt.Sprintf("%d%s+", value, suffix)
}

// Counter animates an integer from zero up to a target the first time its
// element becomes visible.
type Counter struct {
	mu       sync.Mutex
	sched    Scheduler
	tick     time.Duration
	target   int
	step     int
	suffix   string
	current  int
	phase    CounterPhase
	observer *Observer
	timer    Timer
	gen      uint64
	onChange func(CounterState)
}

// NewCounter creates an idle counter. Negative targets are treated as zero.
func NewCounter(opts CounterOptions, sched Scheduler) *Counter {
	if opts.Target < 0 {
		opts.Target = 0
	}
	if opts.Tick <= 0 {
		opts.Tick = DefaultCounterTick
	}
	if sched == nil {
		sched = RealScheduler{}
	}
	return &Counter{
		sched:  sched,
		tick:   opts.Tick,
		target: opts.Target,
		step:   CounterStep(opts.Target),
		suffix: opts.Suffix,
	}
}

// OnChange registers fn to receive a snapshot after every tick.
func (c *Counter) OnChange(fn func(CounterState)) {
	c.mu.Lock()
	c.onChange = fn
	c.mu.Unlock()
}

// Mount observes element and starts counting on its first visibility.
func (c *Counter) Mount(source IntersectionSource, element string) {
	c.mu.Lock()
	if c.observer != nil {
		c.mu.Unlock()
		return
	}
	obs := NewObserver(source, element, ObserverOptions{Once: true})
	c.observer = obs
	c.mu.Unlock()

	obs.Start(func(visible bool) {
		if visible {
			c.Start()
		}
	})
}

// Start moves an idle counter to counting. It has no effect in any other phase.
func (c *Counter) Start() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.phase != CounterIdle {
		return
	}
	c.phase = CounterCounting
	gen := c.gen
	c.timer = c.sched.Every(c.tick, func() { c.advance(gen) })
}

func (c *Counter) advance(gen uint64) {
	c.mu.Lock()
	if gen != c.gen || c.phase != CounterCounting {
		c.mu.Unlock()
		return
	}
	// A zero target has a zero step and must settle here rather than tick forever.
	if c.step == 0 {
		c.current = c.target
	} else {
		c.current += c.step
	}
	if c.current >= c.target {
		c.current = c.target
		c.phase = CounterSettled
		if c.timer != nil {
			c.timer.Stop()
			c.timer = nil
		}
	}
	state := c.stateLocked()
	fn := c.onChange
	c.mu.Unlock()

	if fn != nil {
		fn(state)
	}
}

// Unmount stops observing and cancels a running tick timer. A counter that
// had not settled goes back to idle at zero, so a later Mount counts again
// from the start; a settled counter keeps its value.
func (c *Counter) Unmount() {
	c.mu.Lock()
	obs := c.observer
	c.observer = nil
	c.gen++
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	if c.phase == CounterCounting {
		c.phase = CounterIdle
		c.current = 0
	}
	c.mu.Unlock()

	if obs != nil {
		obs.Stop()
	}
}

// State returns a snapshot of the counter.
func (c *Counter) State() CounterState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stateLocked()
}

// Display returns the rendered value, e.g. "500+".
func (c *Counter) Display() string {
	return c.State().Display
}

func (c *Counter) stateLocked() CounterState {
	return CounterState{
		Current: c.current,
		Target:  c.target,
		Step:    c.step,
		Phase:   c.phase,
		Display: FormatCounter(c.current, c.suffix),
	}
}
