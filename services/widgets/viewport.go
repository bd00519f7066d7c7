package widgets

import (
	"maps"
	"slices"
	"sync"
)

// Rect is the vertical extent of an element in page coordinates.
type Rect struct {
	Top    float64
	Height float64
}

// Viewport is a synthetic scrolling viewport. It implements IntersectionSource
// and ScrollSource over elements placed with Place, and is used wherever no
// real browser is available.
type Viewport struct {
	mu         sync.Mutex
	height     float64
	scrollY    float64
	elements   map[string]Rect
	subs       map[uint64]*viewportSub
	scrollSubs map[uint64]func(float64)
	nextID     uint64
}

type viewportSub struct {
	target       string
	threshold    float64
	fn           func(Entry)
	delivered    bool
	intersecting bool
}

type pendingEntry struct {
	fn    func(Entry)
	entry Entry
}

// NewViewport creates a viewport of the given visible height, scrolled to the top.
func NewViewport(height float64) *Viewport {
	return &Viewport{
		height:     height,
		elements:   make(map[string]Rect),
		subs:       make(map[uint64]*viewportSub),
		scrollSubs: make(map[uint64]func(float64)),
	}
}

// Place sets or moves an element and re-evaluates its observers.
func (v *Viewport) Place(id string, r Rect) {
	v.mu.Lock()
	v.elements[id] = r
	pending := v.evaluateLocked(id)
	v.mu.Unlock()
	dispatch(pending)
}

// Remove forgets an element. Observers keep their last state.
func (v *Viewport) Remove(id string) {
	v.mu.Lock()
	delete(v.elements, id)
	v.mu.Unlock()
}

// ScrollY returns the current scroll offset.
func (v *Viewport) ScrollY() float64 {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.scrollY
}

// Height returns the visible height.
func (v *Viewport) Height() float64 {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.height
}

// ScrollTo moves the viewport, notifies scroll listeners and delivers any
// intersection changes.
func (v *Viewport) ScrollTo(y float64) {
	if y < 0 {
		y = 0
	}
	v.mu.Lock()
	v.scrollY = y
	listeners := make([]func(float64), 0, len(v.scrollSubs))
	for _, id := range sortedIDs(v.scrollSubs) {
		listeners = append(listeners, v.scrollSubs[id])
	}
	pending := v.evaluateLocked("")
	v.mu.Unlock()

	for _, fn := range listeners {
		fn(y)
	}
	dispatch(pending)
}

// Observe implements IntersectionSource.
func (v *Viewport) Observe(target string, threshold float64, fn func(Entry)) func() {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	v.mu.Lock()
	v.nextID++
	id := v.nextID
	v.subs[id] = &viewportSub{target: target, threshold: threshold, fn: fn}
	pending := v.evaluateLocked(target)
	v.mu.Unlock()

	dispatch(pending)

	var once sync.Once
	return func() {
		once.Do(func() {
			v.mu.Lock()
			delete(v.subs, id)
			v.mu.Unlock()
		})
	}
}

// OnScroll implements ScrollSource.
func (v *Viewport) OnScroll(fn func(offset float64)) func() {
	v.mu.Lock()
	v.nextID++
	id := v.nextID
	v.scrollSubs[id] = fn
	v.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			v.mu.Lock()
			delete(v.scrollSubs, id)
			v.mu.Unlock()
		})
	}
}

// Observers returns the number of live intersection subscriptions.
func (v *Viewport) Observers() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return len(v.subs)
}

// IntersectionRatio returns the visible fraction of r for a viewport of the
// given height scrolled to top.
func IntersectionRatio(r Rect, top, height float64) float64 {
	if r.Height <= 0 || height <= 0 {
		return 0
	}
	start := max(r.Top, top)
	end := min(r.Top+r.Height, top+height)
	if end <= start {
		return 0
	}
	return (end - start) / r.Height
}

// evaluateLocked collects entries whose intersecting state changed. An empty
// target evaluates every subscription.
func (v *Viewport) evaluateLocked(target string) []pendingEntry {
	var pending []pendingEntry
	for _, id := range sortedIDs(v.subs) {
		sub := v.subs[id]
		if target != "" && sub.target != target {
			continue
		}
		r, ok := v.elements[sub.target]
		if !ok {
			continue
		}
		ratio := IntersectionRatio(r, v.scrollY, v.height)
		intersecting := ratio > 0 && ratio >= sub.threshold
		if sub.delivered && intersecting == sub.intersecting {
			continue
		}
		sub.delivered = true
		sub.intersecting = intersecting
		pending = append(pending, pendingEntry{
			fn:    sub.fn,
			entry: Entry{Target: sub.target, Ratio: ratio, Intersecting: intersecting},
		})
	}
	return pending
}

func dispatch(pending []pendingEntry) {
	for _, p := range pending {
		p.fn(p.entry)
	}
}

func sortedIDs[V any](m map[uint64]V) []uint64 {
	return slices.Sorted(maps.Keys(m))
}
