package landing

import (
	"testing"

	"donna_landing_go/services/widgets"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mountTestPage(t *testing.T) (*Page, *Runtime, *widgets.Viewport, *widgets.ManualScheduler) {
	t.Helper()
	p := buildTestPage(t)
	vp := widgets.NewViewport(800)
	p.PlaceOn(vp)
	sched := widgets.NewManualScheduler()

	rt, err := Mount(p, vp, vp, sched)
	require.NoError(t, err)
	return p, rt, vp, sched
}

func TestRuntimeInitialReveal(t *testing.T) {
	_, rt, _, _ := mountTestPage(t)
	defer rt.Unmount()

	snap := rt.Snapshot()
	assert.Equal(t, []string{"hero-title", "hero-subtitle", "hero-actions"}, snap.Visible)
	assert.False(t, snap.Page.NavbarSolid)
	for id, c := range snap.Counters {
		assert.Equal(t, widgets.CounterIdle, c.Phase, id)
	}
	assert.Equal(t, 0, snap.Carousel.Active)
	assert.Equal(t, 4, snap.Carousel.Len)
}

func TestRuntimeScrollToStats(t *testing.T) {
	p, rt, vp, sched := mountTestPage(t)
	defer rt.Unmount()

	card := p.Layout()["stat-card-firms"]
	vp.ScrollTo(card.Top - 100)

	snap := rt.Snapshot()
	assert.True(t, snap.Page.NavbarSolid)
	assert.Contains(t, snap.Visible, "stat-card-firms")
	assert.Equal(t, widgets.CounterCounting, snap.Counters["stat-firms"].Phase)

	sched.Advance(widgets.CounterMaxTicks * p.Timings.CounterTick)

	snap = rt.Snapshot()
	assert.Equal(t, "500+", snap.Counters["stat-firms"].Display)
	assert.Equal(t, "10K+", snap.Counters["stat-cases"].Display)
	assert.Equal(t, "95%+", snap.Counters["stat-satisfaction"].Display)

	// Scrolling away keeps revealed blocks and settled counters.
	vp.ScrollTo(0)
	snap = rt.Snapshot()
	assert.Contains(t, snap.Visible, "stat-card-firms")
	assert.Equal(t, widgets.CounterSettled, snap.Counters["stat-firms"].Phase)
	assert.False(t, snap.Page.NavbarSolid)
}

func TestRuntimeCarouselAutoplay(t *testing.T) {
	p, rt, _, sched := mountTestPage(t)
	defer rt.Unmount()

	sched.Advance(p.Timings.Autoplay)
	assert.Equal(t, 1, rt.Carousel.Active())
	assert.True(t, rt.Carousel.State().Transitioning)

	sched.Advance(p.Timings.Lock + p.Timings.Autoplay)
	assert.Equal(t, 2, rt.Carousel.Active())
}

func TestRuntimeUnmountReleasesEverything(t *testing.T) {
	_, rt, vp, sched := mountTestPage(t)

	rt.Unmount()

	assert.Equal(t, 0, vp.Observers())
	assert.Equal(t, 0, sched.Pending())

	vp.ScrollTo(2000)
	assert.False(t, rt.Snapshot().Page.NavbarSolid)
}
