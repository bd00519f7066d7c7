package widgets

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRevealOnce(t *testing.T) {
	vp := NewViewport(800)
	vp.Place("feature-0", Rect{Top: 1200, Height: 300})

	r := NewReveal(DefaultRevealOptions().WithDelay(100 * time.Millisecond).WithOffset(20))
	var styles []RevealStyle
	r.OnChange(func(s RevealStyle) { styles = append(styles, s) })
	r.Mount(vp, "feature-0")

	assert.False(t, r.Visible())
	assert.Equal(t, 0.0, r.Style().Opacity)
	assert.Equal(t, 20.0, r.Style().TranslateY)

	for i := 0; i < 5; i++ {
		vp.ScrollTo(800)
		vp.ScrollTo(0)
	}

	assert.True(t, r.Visible(), "once mode stays revealed after leaving")
	assert.Equal(t, 1, r.Reveals())
	assert.Len(t, styles, 1)
	assert.Equal(t, 1.0, styles[0].Opacity)
	assert.Equal(t, 0.0, styles[0].TranslateY)
	assert.Equal(t, 100*time.Millisecond, styles[0].Delay)
	assert.Equal(t, 0, vp.Observers())
}

func TestRevealRepeatable(t *testing.T) {
	vp := NewViewport(800)
	vp.Place("card", Rect{Top: 1200, Height: 300})

	opts := DefaultRevealOptions()
	opts.Once = false
	r := NewReveal(opts)
	r.Mount(vp, "card")

	vp.ScrollTo(800)
	assert.True(t, r.Visible())
	vp.ScrollTo(0)
	assert.False(t, r.Visible(), "repeatable mode reverses on exit")
	vp.ScrollTo(800)
	assert.True(t, r.Visible())
	assert.Equal(t, 2, r.Reveals())

	r.Unmount()
	vp.ScrollTo(0)
	assert.True(t, r.Visible(), "unmounted reveal ignores the viewport")
	assert.Equal(t, 0, vp.Observers())
}

func TestRevealStyleCSS(t *testing.T) {
	t.Run("Hidden translate", func(t *testing.T) {
		css := StyleFor(DefaultRevealOptions().WithDelay(300*time.Millisecond).WithOffset(20), false).CSS()
		assert.Equal(t, "opacity:0;transform:translateY(20px);transition-property:opacity, transform;"+
			"transition-duration:700ms;transition-delay:300ms;transition-timing-function:cubic-bezier(0.4, 0, 0.2, 1)", css)
	})

	t.Run("Visible translate", func(t *testing.T) {
		s := StyleFor(DefaultRevealOptions(), true)
		assert.Equal(t, "translateY(0px)", s.Transform())
		assert.Contains(t, s.CSS(), "opacity:1;")
	})

	t.Run("Hidden scale", func(t *testing.T) {
		s := StyleFor(ScaleRevealOptions(0.9), false)
		assert.Equal(t, "scale(0.9)", s.Transform())
	})

	t.Run("Visible scale", func(t *testing.T) {
		s := StyleFor(ScaleRevealOptions(0.9), true)
		assert.Equal(t, "scale(1)", s.Transform())
	})

	t.Run("Invalid scale falls back", func(t *testing.T) {
		assert.Equal(t, 0.95, ScaleRevealOptions(0).Scale)
		assert.Equal(t, 0.95, ScaleRevealOptions(3).Scale)
	})
}

func TestRevealMissingElement(t *testing.T) {
	vp := NewViewport(800)
	r := NewReveal(DefaultRevealOptions())
	r.Mount(vp, "")

	vp.ScrollTo(500)
	assert.False(t, r.Visible())
	assert.Equal(t, 0, vp.Observers())
}
