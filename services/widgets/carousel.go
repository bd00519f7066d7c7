package widgets

import (
	"errors"
	"sync"
	"time"
)

const (
	// DefaultAutoplayInterval is how long a slide stays up before autoplay advances.
	DefaultAutoplayInterval = 6 * time.Second
	// DefaultTransitionLock is how long index changes are rejected after a change.
	DefaultTransitionLock = 500 * time.Millisecond
)

// ErrEmptyCarousel is returned when a carousel is created without items.
var ErrEmptyCarousel = errors.New("carousel requires at least one item")

// CarouselOptions configures a Carousel. Zero durations take the defaults.
type CarouselOptions struct {
	Autoplay time.Duration
	Lock     time.Duration
}

// CarouselState is a snapshot of a Carousel.
type CarouselState struct {
	Active        int
	Len           int
	Transitioning bool
	Autoplay      bool
}

// WrapIndex maps any integer onto [0, n) circularly. n must be positive.
func WrapIndex(i, n int) int {
	i %= n
	if i < 0 {
		i += n
	}
	return i
}

// Carousel rotates through a fixed number of slides with autoplay, a
// transition lock and pause-on-hover.
type Carousel struct {
	mu            sync.Mutex
	sched         Scheduler
	opts          CarouselOptions
	n             int
	active        int
	transitioning bool
	autoplay      bool
	mounted       bool
	lockTimer     Timer
	lockSeq       uint64
	autoplayTimer Timer
	autoplaySeq   uint64
	onChange      func(CarouselState)
}

// NewCarousel creates a carousel over n slides, starting at index 0 with
// autoplay enabled. Autoplay only runs between Start and Stop.
func NewCarousel(n int, sched Scheduler, opts CarouselOptions) (*Carousel, error) {
	if n < 1 {
		return nil, ErrEmptyCarousel
	}
	if opts.Autoplay <= 0 {
		opts.Autoplay = DefaultAutoplayInterval
	}
	if opts.Lock <= 0 {
		opts.Lock = DefaultTransitionLock
	}
	if sched == nil {
		sched = RealScheduler{}
	}
	return &Carousel{sched: sched, opts: opts, n: n, autoplay: true}, nil
}

// OnChange registers fn to receive a snapshot after every state change.
func (c *Carousel) OnChange(fn func(CarouselState)) {
	c.mu.Lock()
	c.onChange = fn
	c.mu.Unlock()
}

// Start mounts the carousel and arms autoplay.
func (c *Carousel) Start() {
	c.mu.Lock()
	if c.mounted {
		c.mu.Unlock()
		return
	}
	c.mounted = true
	c.armAutoplayLocked()
	c.mu.Unlock()
}

// Stop unmounts the carousel and cancels every pending timer.
func (c *Carousel) Stop() {
	c.mu.Lock()
	c.mounted = false
	c.cancelAutoplayLocked()
	c.lockSeq++
	if c.lockTimer != nil {
		c.lockTimer.Stop()
		c.lockTimer = nil
	}
	c.transitioning = false
	c.mu.Unlock()
}

// Next advances one slide, wrapping to the first. It reports false when the
// request was rejected by the transition lock.
func (c *Carousel) Next() bool {
	return c.moveBy(1)
}

// Prev goes back one slide, wrapping to the last.
func (c *Carousel) Prev() bool {
	return c.moveBy(-1)
}

// GoTo selects slide i directly. Out-of-range indices and the active slide
// are rejected.
func (c *Carousel) GoTo(i int) bool {
	c.mu.Lock()
	if i < 0 || i >= c.n || i == c.active {
		c.mu.Unlock()
		return false
	}
	ok := c.moveLocked(i)
	state, fn := c.stateLocked(), c.onChange
	c.mu.Unlock()

	if ok && fn != nil {
		fn(state)
	}
	return ok
}

func (c *Carousel) moveBy(delta int) bool {
	c.mu.Lock()
	ok := c.moveLocked(WrapIndex(c.active+delta, c.n))
	state, fn := c.stateLocked(), c.onChange
	c.mu.Unlock()

	if ok && fn != nil {
		fn(state)
	}
	return ok
}

func (c *Carousel) moveLocked(to int) bool {
	if c.transitioning {
		return false
	}
	c.active = to
	c.transitioning = true
	c.cancelAutoplayLocked()

	c.lockSeq++
	seq := c.lockSeq
	c.lockTimer = c.sched.AfterFunc(c.opts.Lock, func() { c.endTransition(seq) })
	return true
}

func (c *Carousel) endTransition(seq uint64) {
	c.mu.Lock()
	if seq != c.lockSeq {
		c.mu.Unlock()
		return
	}
	c.transitioning = false
	c.lockTimer = nil
	c.armAutoplayLocked()
	state, fn := c.stateLocked(), c.onChange
	c.mu.Unlock()

	if fn != nil {
		fn(state)
	}
}

// PointerEnter pauses autoplay while the pointer hovers the carousel.
func (c *Carousel) PointerEnter() {
	c.mu.Lock()
	c.autoplay = false
	c.cancelAutoplayLocked()
	state, fn := c.stateLocked(), c.onChange
	c.mu.Unlock()

	if fn != nil {
		fn(state)
	}
}

// PointerLeave resumes autoplay; the next advance comes one full autoplay
// interval later.
func (c *Carousel) PointerLeave() {
	c.mu.Lock()
	c.autoplay = true
	c.armAutoplayLocked()
	state, fn := c.stateLocked(), c.onChange
	c.mu.Unlock()

	if fn != nil {
		fn(state)
	}
}

func (c *Carousel) armAutoplayLocked() {
	if !c.mounted || !c.autoplay || c.transitioning || c.autoplayTimer != nil {
		return
	}
	c.autoplaySeq++
	seq := c.autoplaySeq
	c.autoplayTimer = c.sched.AfterFunc(c.opts.Autoplay, func() { c.autoplayTick(seq) })
}

func (c *Carousel) cancelAutoplayLocked() {
	c.autoplaySeq++
	if c.autoplayTimer != nil {
		c.autoplayTimer.Stop()
		c.autoplayTimer = nil
	}
}

func (c *Carousel) autoplayTick(seq uint64) {
	c.mu.Lock()
	if seq != c.autoplaySeq {
		c.mu.Unlock()
		return
	}
	c.autoplayTimer = nil
	ok := false
	if c.mounted && c.autoplay {
		ok = c.moveLocked(WrapIndex(c.active+1, c.n))
	}
	state, fn := c.stateLocked(), c.onChange
	c.mu.Unlock()

	if ok && fn != nil {
		fn(state)
	}
}

// State returns a snapshot of the carousel.
func (c *Carousel) State() CarouselState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stateLocked()
}

// Active returns the index of the visible slide.
func (c *Carousel) Active() int {
	return c.State().Active
}

// Len returns the number of slides.
func (c *Carousel) Len() int {
	return c.n
}

func (c *Carousel) stateLocked() CarouselState {
	return CarouselState{
		Active:        c.active,
		Len:           c.n,
		Transitioning: c.transitioning,
		Autoplay:      c.autoplay,
	}
}
