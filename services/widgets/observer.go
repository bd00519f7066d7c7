package widgets

import "sync"

// DefaultThreshold is the fraction of an element's area that must be inside
// the viewport before it counts as visible.
const DefaultThreshold = 0.1

// Entry is a single intersection observation for a target element.
type Entry struct {
	Target       string
	Ratio        float64
	Intersecting bool
}

// IntersectionSource delivers intersection entries for a target element.
// Implementations deliver an initial entry once the target's geometry is
// known, and afterwards only when the intersecting state changes. The
// returned cancel func stops delivery and is safe to call more than once.
type IntersectionSource interface {
	Observe(target string, threshold float64, fn func(Entry)) (cancel func())
}

// ScrollSource delivers the vertical scroll offset on every scroll event.
type ScrollSource interface {
	OnScroll(fn func(offset float64)) (cancel func())
}

// ObserverOptions configures an Observer.
type ObserverOptions struct {
	// Threshold defaults to DefaultThreshold when zero.
	Threshold float64
	// Once stops observing after the first visible event.
	Once bool
}

// Observer turns intersection entries for one element into a stream of
// visibility changes.
type Observer struct {
	mu      sync.Mutex
	source  IntersectionSource
	target  string
	opts    ObserverOptions
	cancel  func()
	active  bool
	fired   bool
	visible bool
}

// NewObserver creates an observer for target. A nil source or an empty target
// yields an observer whose Start is a no-op.
func NewObserver(source IntersectionSource, target string, opts ObserverOptions) *Observer {
	if opts.Threshold <= 0 {
		opts.Threshold = DefaultThreshold
	}
	return &Observer{source: source, target: target, opts: opts}
}

// Start subscribes to the source and calls fn for every visibility change.
func (o *Observer) Start(fn func(visible bool)) {
	o.mu.Lock()
	if o.active || o.source == nil || o.target == "" || fn == nil {
		o.mu.Unlock()
		return
	}
	o.active = true
	o.fired = false
	o.visible = false
	o.mu.Unlock()

	cancel := o.source.Observe(o.target, o.opts.Threshold, func(e Entry) {
		o.deliver(e, fn)
	})

	o.mu.Lock()
	// A single-fire observer may already have fired during Observe, before the
	// cancel func existed.
	if !o.active {
		o.mu.Unlock()
		cancel()
		return
	}
	o.cancel = cancel
	o.mu.Unlock()
}

func (o *Observer) deliver(e Entry, fn func(visible bool)) {
	o.mu.Lock()
	if !o.active || (o.fired && e.Intersecting == o.visible) {
		o.mu.Unlock()
		return
	}
	o.fired = true
	o.visible = e.Intersecting

	var cancel func()
	if o.opts.Once && e.Intersecting {
		o.active = false
		cancel = o.cancel
		o.cancel = nil
	}
	o.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	fn(e.Intersecting)
}

// Stop ends the subscription. Pending entries are dropped.
func (o *Observer) Stop() {
	o.mu.Lock()
	cancel := o.cancel
	o.cancel = nil
	o.active = false
	o.mu.Unlock()

	if cancel != nil {
		cancel()
	}
}

// Active reports whether the observer is still subscribed.
func (o *Observer) Active() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.active
}
