package widgets

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"
)

// RevealEasing is the timing function used for every reveal transition.
const RevealEasing = "cubic-bezier(0.4, 0, 0.2, 1)"

// RevealOptions configures a Reveal. Start from DefaultRevealOptions or
// ScaleRevealOptions; the zero value is a repeatable, instant reveal.
type RevealOptions struct {
	// Delay before the transition starts once the element is visible.
	Delay time.Duration
	// Duration of the opacity/transform transition.
	Duration time.Duration
	// Offset is the hidden translateY in pixels.
	Offset float64
	// Scale is the hidden scale factor. Zero disables the scale variant and
	// the reveal translates instead.
	Scale float64
	// Once keeps the element revealed after the first trigger.
	Once bool
	// Threshold defaults to DefaultThreshold when zero.
	Threshold float64
}

// DefaultRevealOptions returns the fade-up reveal: 700ms, 10px offset, once.
func DefaultRevealOptions() RevealOptions {
	return RevealOptions{
		Duration:  700 * time.Millisecond,
		Offset:    10,
		Once:      true,
		Threshold: DefaultThreshold,
	}
}

// ScaleRevealOptions returns the scale-in reveal, starting from scale.
// A non-positive scale falls back to 0.95.
func ScaleRevealOptions(scale float64) RevealOptions {
	if scale <= 0 || scale > 1 {
		scale = 0.95
	}
	opts := DefaultRevealOptions()
	opts.Offset = 0
	opts.Scale = scale
	return opts
}

// WithDelay returns a copy of o with Delay set.
func (o RevealOptions) WithDelay(d time.Duration) RevealOptions {
	o.Delay = d
	return o
}

// WithOffset returns a copy of o with Offset set.
func (o RevealOptions) WithOffset(px float64) RevealOptions {
	o.Offset = px
	return o
}

// RevealStyle is the CSS state of a reveal wrapper.
type RevealStyle struct {
	Opacity    float64
	TranslateY float64
	Scale      float64
	Duration   time.Duration
	Delay      time.Duration
	scaled     bool
}

// Transform renders the CSS transform value.
func (s RevealStyle) Transform() string {
	if s.scaled {
		return "scale(" + formatFloat(s.Scale) + ")"
	}
	return "translateY(" + formatFloat(s.TranslateY) + "px)"
}

// CSS renders the inline style declaration for the wrapper element.
func (s RevealStyle) CSS() string {
	var b strings.Builder
	fmt.Fprintf(&b, "opacity:%s;", formatFloat(s.Opacity))
	fmt.Fprintf(&b, "transform:%s;", s.Transform())
	b.WriteString("transition-property:opacity, transform;")
	fmt.Fprintf(&b, "transition-duration:%dms;", s.Duration.Milliseconds())
	fmt.Fprintf(&b, "transition-delay:%dms;", s.Delay.Milliseconds())
	b.WriteString("transition-timing-function:" + RevealEasing)
	return b.String()
}

// StyleFor returns the style of a reveal with opts in the given visibility.
func StyleFor(opts RevealOptions, visible bool) RevealStyle {
	s := RevealStyle{
		Duration: opts.Duration,
		Delay:    opts.Delay,
		scaled:   opts.Scale > 0,
		Scale:    1,
	}
	if visible {
		s.Opacity = 1
		return s
	}
	if s.scaled {
		s.Scale = opts.Scale
	} else {
		s.TranslateY = opts.Offset
	}
	return s
}

// Reveal fades (or scales) an element in when it enters the viewport.
type Reveal struct {
	mu       sync.Mutex
	opts     RevealOptions
	observer *Observer
	visible  bool
	reveals  int
	onChange func(RevealStyle)
}

// NewReveal creates an unmounted reveal wrapper.
func NewReveal(opts RevealOptions) *Reveal {
	if opts.Threshold <= 0 {
		opts.Threshold = DefaultThreshold
	}
	return &Reveal{opts: opts}
}

// OnChange registers fn to receive the new style after every visibility change.
func (r *Reveal) OnChange(fn func(RevealStyle)) {
	r.mu.Lock()
	r.onChange = fn
	r.mu.Unlock()
}

// Mount starts observing element on source. Mounting twice is a no-op.
func (r *Reveal) Mount(source IntersectionSource, element string) {
	r.mu.Lock()
	if r.observer != nil {
		r.mu.Unlock()
		return
	}
	obs := NewObserver(source, element, ObserverOptions{Threshold: r.opts.Threshold, Once: r.opts.Once})
	r.observer = obs
	r.mu.Unlock()

	obs.Start(r.setVisible)
}

// Unmount stops observing. The current style is kept.
func (r *Reveal) Unmount() {
	r.mu.Lock()
	obs := r.observer
	r.observer = nil
	r.mu.Unlock()

	if obs != nil {
		obs.Stop()
	}
}

func (r *Reveal) setVisible(visible bool) {
	r.mu.Lock()
	if visible == r.visible {
		r.mu.Unlock()
		return
	}
	// Once mode never hides again.
	if !visible && r.opts.Once {
		r.mu.Unlock()
		return
	}
	r.visible = visible
	if visible {
		r.reveals++
	}
	style := StyleFor(r.opts, visible)
	fn := r.onChange
	r.mu.Unlock()

	if fn != nil {
		fn(style)
	}
}

// Visible reports the current visibility flag.
func (r *Reveal) Visible() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.visible
}

// Reveals counts false-to-true transitions since creation.
func (r *Reveal) Reveals() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.reveals
}

// Style returns the current style.
func (r *Reveal) Style() RevealStyle {
	r.mu.Lock()
	defer r.mu.Unlock()
	return StyleFor(r.opts, r.visible)
}

// Options returns the reveal's configuration.
func (r *Reveal) Options() RevealOptions {
	return r.opts
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
