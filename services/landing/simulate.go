package landing

import (
	"time"

	"donna_landing_go/services/widgets"
)

// SimulationOptions drive a virtual page visit.
type SimulationOptions struct {
	// ViewportHeight of the synthetic browser window in pixels.
	ViewportHeight float64
	// Scroll offsets applied in order, one every ScrollEvery.
	Scroll      []float64
	ScrollEvery time.Duration
	// Duration of the visit in virtual time.
	Duration time.Duration
	// Sample is the interval between recorded frames.
	Sample time.Duration
}

func (o SimulationOptions) withDefaults() SimulationOptions {
	if o.ViewportHeight <= 0 {
		o.ViewportHeight = 800
	}
	if o.ScrollEvery <= 0 {
		o.ScrollEvery = time.Second
	}
	if o.Duration <= 0 {
		o.Duration = 10 * time.Second
	}
	if o.Sample <= 0 {
		o.Sample = 500 * time.Millisecond
	}
	return o
}

// Frame is the widget state at one point of a simulation.
type Frame struct {
	At     time.Duration
	Scroll float64
	Snapshot
}

// Simulate mounts p on a synthetic viewport with a manual scheduler and
// records the widget state every Sample until Duration has elapsed. The
// first frame is taken at time zero, right after mounting.
func Simulate(p *Page, opts SimulationOptions) ([]Frame, error) {
	opts = opts.withDefaults()

	sched := widgets.NewManualScheduler()
	vp := widgets.NewViewport(opts.ViewportHeight)
	p.PlaceOn(vp)

	rt, err := Mount(p, vp, vp, sched)
	if err != nil {
		return nil, err
	}
	defer rt.Unmount()

	next := 0
	applyScrolls := func() {
		for next < len(opts.Scroll) && time.Duration(next)*opts.ScrollEvery <= sched.Now() {
			vp.ScrollTo(opts.Scroll[next])
			next++
		}
	}

	var frames []Frame
	record := func() {
		frames = append(frames, Frame{At: sched.Now(), Scroll: vp.ScrollY(), Snapshot: rt.Snapshot()})
	}

	applyScrolls()
	record()
	for sched.Now() < opts.Duration {
		target := (sched.Now()/opts.Sample + 1) * opts.Sample
		if target > opts.Duration {
			target = opts.Duration
		}
		// Scroll events land between timer ticks, as they would in a browser.
		if next < len(opts.Scroll) {
			if due := time.Duration(next) * opts.ScrollEvery; due < target {
				sched.Advance(due - sched.Now())
				applyScrolls()
				continue
			}
		}
		sched.Advance(target - sched.Now())
		applyScrolls()
		record()
	}
	return frames, nil
}
