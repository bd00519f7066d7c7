package landing

import (
	"fmt"

	"donna_landing_go/services/widgets"
)

// Runtime is one mounted instance of the page's widgets. It exclusively owns
// every observer subscription and timer it creates; Unmount releases all of them.
type Runtime struct {
	Page     *widgets.Page
	Reveals  map[string]*widgets.Reveal
	Counters map[string]*widgets.Counter
	Carousel *widgets.Carousel

	order []string
}

// Mount creates the widgets for p and attaches them to the given sources.
func Mount(p *Page, source widgets.IntersectionSource, scroll widgets.ScrollSource, sched widgets.Scheduler) (*Runtime, error) {
	carousel, err := widgets.NewCarousel(len(p.Testimonials), sched, widgets.CarouselOptions{
		Autoplay: p.Timings.Autoplay,
		Lock:     p.Timings.Lock,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create testimonial carousel: %w", err)
	}

	rt := &Runtime{
		Page:     widgets.NewPage(),
		Reveals:  make(map[string]*widgets.Reveal),
		Counters: make(map[string]*widgets.Counter),
		Carousel: carousel,
	}

	for _, b := range p.Blocks() {
		switch b.Kind {
		case BlockCounter:
			c := widgets.NewCounter(widgets.CounterOptions{
				Target: b.Stat.Target,
				Suffix: b.Stat.Suffix,
				Tick:   p.Timings.CounterTick,
			}, sched)
			rt.Counters[b.ID] = c
		default:
			rt.Reveals[b.ID] = widgets.NewReveal(b.Reveal)
		}
		rt.order = append(rt.order, b.ID)
	}

	rt.Page.Mount(scroll)
	for _, id := range rt.order {
		if r, ok := rt.Reveals[id]; ok {
			r.Mount(source, id)
		}
		if c, ok := rt.Counters[id]; ok {
			c.Mount(source, id)
		}
	}
	rt.Carousel.Start()
	return rt, nil
}

// Unmount tears every widget down.
func (rt *Runtime) Unmount() {
	rt.Carousel.Stop()
	for _, id := range rt.order {
		if r, ok := rt.Reveals[id]; ok {
			r.Unmount()
		}
		if c, ok := rt.Counters[id]; ok {
			c.Unmount()
		}
	}
	rt.Page.Unmount()
}

// Snapshot is a point-in-time view of all widgets.
type Snapshot struct {
	Page     widgets.PageState
	Visible  []string
	Counters map[string]widgets.CounterState
	Carousel widgets.CarouselState
}

// Snapshot captures the current widget state. Visible lists revealed blocks in
// document order.
func (rt *Runtime) Snapshot() Snapshot {
	s := Snapshot{
		Page:     rt.Page.State(),
		Counters: make(map[string]widgets.CounterState, len(rt.Counters)),
		Carousel: rt.Carousel.State(),
	}
	for _, id := range rt.order {
		if r, ok := rt.Reveals[id]; ok && r.Visible() {
			s.Visible = append(s.Visible, id)
		}
		if c, ok := rt.Counters[id]; ok {
			s.Counters[id] = c.State()
		}
	}
	return s
}
