package widgets

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCarousel(t *testing.T, n int) (*Carousel, *ManualScheduler) {
	t.Helper()
	sched := NewManualScheduler()
	c, err := NewCarousel(n, sched, CarouselOptions{})
	require.NoError(t, err)
	return c, sched
}

func TestNewCarouselRejectsEmpty(t *testing.T) {
	c, err := NewCarousel(0, NewManualScheduler(), CarouselOptions{})
	assert.Nil(t, c)
	assert.ErrorIs(t, err, ErrEmptyCarousel)
}

func TestWrapIndex(t *testing.T) {
	assert.Equal(t, 0, WrapIndex(4, 4))
	assert.Equal(t, 3, WrapIndex(-1, 4))
	assert.Equal(t, 1, WrapIndex(-7, 4))
	assert.Equal(t, 2, WrapIndex(10, 4))
	assert.Equal(t, 0, WrapIndex(5, 1))
}

func TestCarouselWrapAround(t *testing.T) {
	t.Run("Prev at first slide goes to last", func(t *testing.T) {
		c, _ := newTestCarousel(t, 4)
		assert.True(t, c.Prev())
		assert.Equal(t, 3, c.Active())
	})

	t.Run("Next at last slide goes to first", func(t *testing.T) {
		c, sched := newTestCarousel(t, 4)
		require.True(t, c.GoTo(3))
		sched.Advance(DefaultTransitionLock)

		assert.True(t, c.Next())
		assert.Equal(t, 0, c.Active())
	})

	t.Run("N nexts return to the start", func(t *testing.T) {
		for n := 2; n <= 6; n++ {
			c, sched := newTestCarousel(t, n)
			for i := 0; i < n; i++ {
				require.True(t, c.Next())
				sched.Advance(DefaultTransitionLock)
			}
			assert.Equal(t, 0, c.Active(), "n=%d", n)
		}
	})
}

func TestCarouselTransitionLock(t *testing.T) {
	c, sched := newTestCarousel(t, 4)

	require.True(t, c.Next())
	assert.True(t, c.State().Transitioning)

	assert.False(t, c.Next())
	assert.False(t, c.Prev())
	assert.False(t, c.GoTo(3))
	assert.Equal(t, 1, c.Active(), "requests during the lock leave the index unchanged")

	sched.Advance(DefaultTransitionLock - time.Millisecond)
	assert.True(t, c.State().Transitioning)
	assert.False(t, c.Next())

	sched.Advance(time.Millisecond)
	assert.False(t, c.State().Transitioning)
	assert.True(t, c.GoTo(3))
	assert.Equal(t, 3, c.Active())
}

func TestCarouselGoToOutOfRange(t *testing.T) {
	c, _ := newTestCarousel(t, 4)
	assert.False(t, c.GoTo(4))
	assert.False(t, c.GoTo(-1))
	assert.Equal(t, 0, c.Active())
	assert.False(t, c.State().Transitioning)
}

func TestCarouselGoToActive(t *testing.T) {
	c, _ := newTestCarousel(t, 4)
	assert.False(t, c.GoTo(0))
	assert.False(t, c.State().Transitioning, "selecting the active slide takes no lock")
}

func TestCarouselAutoplay(t *testing.T) {
	c, sched := newTestCarousel(t, 4)
	c.Start()

	sched.Advance(DefaultAutoplayInterval - time.Millisecond)
	assert.Equal(t, 0, c.Active())

	sched.Advance(time.Millisecond)
	assert.Equal(t, 1, c.Active())
	assert.True(t, c.State().Transitioning)

	// The next interval starts once the lock is released.
	sched.Advance(DefaultTransitionLock + DefaultAutoplayInterval)
	assert.Equal(t, 2, c.Active())
}

func TestCarouselPauseOnHover(t *testing.T) {
	c, sched := newTestCarousel(t, 4)
	c.Start()

	sched.Advance(3 * time.Second)
	c.PointerEnter()
	assert.False(t, c.State().Autoplay)

	sched.Advance(time.Minute)
	assert.Equal(t, 0, c.Active(), "autoplay must not advance while hovered")

	c.PointerLeave()
	sched.Advance(DefaultAutoplayInterval)
	assert.Equal(t, 1, c.Active(), "autoplay resumes within one period after leave")
}

func TestCarouselManualNavigationResetsAutoplay(t *testing.T) {
	c, sched := newTestCarousel(t, 4)
	c.Start()

	sched.Advance(5 * time.Second)
	require.True(t, c.Next())
	sched.Advance(2 * time.Second)
	assert.Equal(t, 1, c.Active(), "old autoplay deadline is discarded")

	sched.Advance(DefaultTransitionLock + DefaultAutoplayInterval)
	assert.Equal(t, 2, c.Active())
}

func TestCarouselStopCancelsTimers(t *testing.T) {
	c, sched := newTestCarousel(t, 4)
	c.Start()
	require.True(t, c.Next())

	c.Stop()
	assert.Equal(t, 0, sched.Pending())
	assert.False(t, c.State().Transitioning)

	sched.Advance(time.Minute)
	assert.Equal(t, 1, c.Active())
}

func TestCarouselSingleSlide(t *testing.T) {
	c, sched := newTestCarousel(t, 1)
	c.Start()

	assert.True(t, c.Next())
	assert.Equal(t, 0, c.Active())
	sched.Advance(time.Minute)
	assert.Equal(t, 0, c.Active())
}

func TestCarouselOnChange(t *testing.T) {
	c, sched := newTestCarousel(t, 3)
	var states []CarouselState
	c.OnChange(func(s CarouselState) { states = append(states, s) })

	c.Next()
	c.Next()
	sched.Advance(DefaultTransitionLock)

	require.Len(t, states, 2)
	assert.Equal(t, CarouselState{Active: 1, Len: 3, Transitioning: true, Autoplay: true}, states[0])
	assert.Equal(t, CarouselState{Active: 1, Len: 3, Transitioning: false, Autoplay: true}, states[1])
}
