package widgets

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCounterStep(t *testing.T) {
	assert.Equal(t, 0, CounterStep(0))
	assert.Equal(t, 0, CounterStep(-3))
	assert.Equal(t, 1, CounterStep(1))
	assert.Equal(t, 1, CounterStep(10))
	assert.Equal(t, 1, CounterStep(50))
	assert.Equal(t, 2, CounterStep(95))
	assert.Equal(t, 10, CounterStep(500))
	assert.Equal(t, 21, CounterStep(1001))
}

func TestCounterSettlesExactly(t *testing.T) {
	targets := []int{1, 10, 49, 50, 51, 95, 500, 999, 1001, 123457}

	for _, target := range targets {
		sched := NewManualScheduler()
		c := NewCounter(CounterOptions{Target: target}, sched)

		var seen []int
		c.OnChange(func(s CounterState) { seen = append(seen, s.Current) })
		c.Start()

		sched.Advance(CounterMaxTicks * DefaultCounterTick)

		state := c.State()
		require.Equal(t, CounterSettled, state.Phase, "target %d should settle within 50 ticks", target)
		assert.Equal(t, target, state.Current)
		assert.LessOrEqual(t, len(seen), CounterMaxTicks)
		for i, v := range seen {
			assert.LessOrEqual(t, v, target, "target %d overshot at tick %d", target, i)
			if i > 0 {
				assert.Greater(t, v, seen[i-1], "target %d must increase monotonically", target)
			}
		}
		assert.Equal(t, 0, sched.Pending(), "settled counter must clear its timer")
	}
}

func TestCounterFiveHundred(t *testing.T) {
	vp := NewViewport(800)
	vp.Place("stat-firms", Rect{Top: 2000, Height: 120})
	sched := NewManualScheduler()

	c := NewCounter(CounterOptions{Target: 500}, sched)
	var seen []int
	c.OnChange(func(s CounterState) { seen = append(seen, s.Current) })
	c.Mount(vp, "stat-firms")

	sched.Advance(time.Second)
	assert.Equal(t, CounterIdle, c.State().Phase, "counter waits for visibility")
	assert.Equal(t, "0+", c.Display())

	vp.ScrollTo(1600)
	assert.Equal(t, CounterCounting, c.State().Phase)

	sched.Advance(1500 * time.Millisecond)
	assert.Equal(t, CounterSettled, c.State().Phase)
	assert.Equal(t, 500, seen[len(seen)-1])
	assert.Len(t, seen, 50)
	assert.NotContains(t, seen, 510)
	assert.Equal(t, "500+", c.Display())
}

func TestCounterSuffix(t *testing.T) {
	sched := NewManualScheduler()
	c := NewCounter(CounterOptions{Target: 10, Suffix: "K"}, sched)
	c.Start()
	sched.Advance(DefaultCounterTick)
	assert.Equal(t, "1K+", c.Display())

	sched.Advance(time.Second)
	assert.Equal(t, "10K+", c.Display())
}

func TestCounterZeroTarget(t *testing.T) {
	sched := NewManualScheduler()
	c := NewCounter(CounterOptions{Target: 0, Suffix: "%"}, sched)
	c.Start()

	sched.Advance(DefaultCounterTick)

	state := c.State()
	assert.Equal(t, CounterSettled, state.Phase)
	assert.Equal(t, 0, state.Current)
	assert.Equal(t, "0%+", state.Display)
	assert.Equal(t, 0, sched.Pending())
}

func TestCounterNegativeTargetClamped(t *testing.T) {
	sched := NewManualScheduler()
	c := NewCounter(CounterOptions{Target: -40}, sched)
	c.Start()
	sched.Advance(DefaultCounterTick)

	assert.Equal(t, 0, c.State().Target)
	assert.Equal(t, CounterSettled, c.State().Phase)
}

func TestCounterFiresOnce(t *testing.T) {
	vp := NewViewport(800)
	vp.Place("stat", Rect{Top: 2000, Height: 120})
	sched := NewManualScheduler()

	c := NewCounter(CounterOptions{Target: 95}, sched)
	c.Mount(vp, "stat")

	vp.ScrollTo(1600)
	sched.Advance(CounterMaxTicks * DefaultCounterTick)
	require.Equal(t, CounterSettled, c.State().Phase)

	vp.ScrollTo(0)
	vp.ScrollTo(1600)
	sched.Advance(CounterMaxTicks * DefaultCounterTick)
	assert.Equal(t, 95, c.State().Current)
	assert.Equal(t, 0, vp.Observers())
	assert.Equal(t, 0, sched.Pending())

	c.Start()
	assert.Equal(t, CounterSettled, c.State().Phase)
}

func TestCounterUnmountCancelsTimer(t *testing.T) {
	sched := NewManualScheduler()
	c := NewCounter(CounterOptions{Target: 500}, sched)
	c.Start()
	sched.Advance(3 * DefaultCounterTick)
	require.Equal(t, 30, c.State().Current)

	c.Unmount()
	assert.Equal(t, 0, sched.Pending())
	assert.Equal(t, CounterIdle, c.State().Phase)

	sched.Advance(time.Second)
	assert.Equal(t, 0, c.State().Current, "no tick may run after unmount")
}

func TestCounterRemountAfterUnmountWhileCounting(t *testing.T) {
	vp := NewViewport(800)
	vp.Place("stat", Rect{Top: 100, Height: 120})
	sched := NewManualScheduler()

	c := NewCounter(CounterOptions{Target: 500}, sched)
	c.Mount(vp, "stat")
	sched.Advance(3 * DefaultCounterTick)
	require.Equal(t, CounterCounting, c.State().Phase)

	c.Unmount()
	c.Mount(vp, "stat")
	assert.Equal(t, CounterCounting, c.State().Phase, "remount restarts the count")

	sched.Advance(CounterMaxTicks * DefaultCounterTick)
	assert.Equal(t, CounterSettled, c.State().Phase)
	assert.Equal(t, 500, c.State().Current)
}

func TestCounterRemountAfterSettle(t *testing.T) {
	sched := NewManualScheduler()
	c := NewCounter(CounterOptions{Target: 10}, sched)
	c.Start()
	sched.Advance(CounterMaxTicks * DefaultCounterTick)
	require.Equal(t, CounterSettled, c.State().Phase)

	c.Unmount()
	assert.Equal(t, CounterSettled, c.State().Phase)
	assert.Equal(t, 10, c.State().Current)
}

func TestCounterCustomTick(t *testing.T) {
	sched := NewManualScheduler()
	c := NewCounter(CounterOptions{Target: 50, Tick: 10 * time.Millisecond}, sched)
	c.Start()

	sched.Advance(500 * time.Millisecond)
	assert.Equal(t, CounterSettled, c.State().Phase)
}

func TestCounterPhaseString(t *testing.T) {
	assert.Equal(t, "idle", CounterIdle.String())
	assert.Equal(t, "counting", CounterCounting.String())
	assert.Equal(t, "settled", CounterSettled.String())
	assert.Equal(t, "CounterPhase(9)", CounterPhase(9).String())
}
