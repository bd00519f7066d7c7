package landing

import (
	"fmt"
	"time"

	"donna_landing_go/models"
	"donna_landing_go/services/widgets"
)

// Timings are the widget durations shared by the server-side state machines
// and the browser script.
type Timings struct {
	CounterTick time.Duration
	Autoplay    time.Duration
	Lock        time.Duration
}

// DefaultTimings returns the production widget durations.
func DefaultTimings() Timings {
	return Timings{
		CounterTick: widgets.DefaultCounterTick,
		Autoplay:    widgets.DefaultAutoplayInterval,
		Lock:        widgets.DefaultTransitionLock,
	}
}

func (t Timings) withDefaults() Timings {
	d := DefaultTimings()
	if t.CounterTick <= 0 {
		t.CounterTick = d.CounterTick
	}
	if t.Autoplay <= 0 {
		t.Autoplay = d.Autoplay
	}
	if t.Lock <= 0 {
		t.Lock = d.Lock
	}
	return t
}

// BlockKind says which widget drives a block.
type BlockKind string

const (
	BlockReveal   BlockKind = "reveal"
	BlockScale    BlockKind = "scale"
	BlockCounter  BlockKind = "counter"
	BlockCarousel BlockKind = "carousel"
)

// Block is one animated element of the page.
type Block struct {
	ID     string
	Kind   BlockKind
	Reveal widgets.RevealOptions
	Stat   *models.Stat
	// Height is the estimated rendered height used for synthetic layouts.
	Height float64
}

// Section is an anchored page section and its animated blocks in document order.
type Section struct {
	ID     string
	Blocks []Block
}

// Page is the composed landing page.
type Page struct {
	Content      *models.LandingContent
	Testimonials []models.Testimonial
	Sections     []Section
	Timings      Timings

	blocks map[string]Block
}

const (
	navHeight      = 64
	sectionPadding = 96
	blockGap       = 48
)

// Build lays the content out into sections. resolveImage maps testimonial
// image references to URLs; nil keeps them unchanged.
func Build(content *models.LandingContent, timings Timings, resolveImage func(string) string) (*Page, error) {
	if err := ValidateContent(content); err != nil {
		return nil, err
	}

	p := &Page{
		Content: content,
		Timings: timings.withDefaults(),
		blocks:  make(map[string]Block),
	}

	p.Testimonials = make([]models.Testimonial, len(content.Testimonials))
	for i, t := range content.Testimonials {
		if resolveImage != nil {
			t.Image = resolveImage(t.Image)
		}
		p.Testimonials[i] = t
	}

	fade := widgets.DefaultRevealOptions()
	ms := func(n int) time.Duration { return time.Duration(n) * time.Millisecond }

	hero := Section{ID: "hero", Blocks: []Block{
		{ID: "hero-title", Kind: BlockReveal, Reveal: fade.WithDelay(ms(100)).WithOffset(20), Height: 180},
		{ID: "hero-subtitle", Kind: BlockReveal, Reveal: fade.WithDelay(ms(300)).WithOffset(20), Height: 90},
		{ID: "hero-actions", Kind: BlockReveal, Reveal: fade.WithDelay(ms(500)), Height: 64},
	}}

	features := Section{ID: "features", Blocks: []Block{
		{ID: "features-heading", Kind: BlockReveal, Reveal: fade, Height: 120},
	}}
	for i := range content.Features {
		features.Blocks = append(features.Blocks, Block{
			ID: fmt.Sprintf("feature-%d", i), Kind: BlockReveal,
			Reveal: fade.WithDelay(ms(i * 100)).WithOffset(20), Height: 380,
		})
	}
	if len(content.AdditionalFeatures) > 0 {
		features.Blocks = append(features.Blocks, Block{ID: "more-features-heading", Kind: BlockReveal, Reveal: fade, Height: 60})
		for i := range content.AdditionalFeatures {
			features.Blocks = append(features.Blocks, Block{
				ID: fmt.Sprintf("more-feature-%d", i), Kind: BlockReveal,
				Reveal: fade.WithDelay(ms(i * 100)), Height: 120,
			})
		}
	}

	stats := Section{ID: "stats", Blocks: []Block{
		{ID: "stats-heading", Kind: BlockReveal, Reveal: fade, Height: 80},
	}}
	for i := range content.Stats {
		stat := &content.Stats[i]
		stats.Blocks = append(stats.Blocks,
			Block{ID: "stat-card-" + stat.ID, Kind: BlockReveal, Reveal: fade.WithDelay(ms((i + 1) * 100)), Height: 200},
			Block{ID: "stat-" + stat.ID, Kind: BlockCounter, Stat: stat, Height: 72},
		)
	}

	testimonials := Section{ID: "testimonials", Blocks: []Block{
		{ID: "testimonials-heading", Kind: BlockReveal, Reveal: fade, Height: 120},
		{ID: "testimonials-carousel", Kind: BlockCarousel, Reveal: fade.WithDelay(ms(200)), Height: 360},
	}}

	how := Section{ID: "how-it-works", Blocks: []Block{
		{ID: "how-heading", Kind: BlockReveal, Reveal: fade, Height: 120},
	}}
	for i := range content.Steps {
		how.Blocks = append(how.Blocks, Block{
			ID: fmt.Sprintf("step-%d", i), Kind: BlockReveal,
			Reveal: fade.WithDelay(ms((i + 1) * 100)).WithOffset(20), Height: 260,
		})
	}

	pricing := Section{ID: "pricing", Blocks: []Block{
		{ID: "pricing-heading", Kind: BlockReveal, Reveal: fade, Height: 120},
		{ID: "pricing-plan", Kind: BlockScale, Reveal: widgets.ScaleRevealOptions(0.9), Height: 560},
	}}

	contact := Section{ID: "contact", Blocks: []Block{
		{ID: "contact-heading", Kind: BlockReveal, Reveal: fade, Height: 120},
		{ID: "contact-card", Kind: BlockReveal, Reveal: fade.WithDelay(ms(200)), Height: 460},
	}}

	p.Sections = []Section{hero, features, stats, testimonials, how, pricing, contact}
	for _, s := range p.Sections {
		for _, b := range s.Blocks {
			p.blocks[b.ID] = b
		}
	}
	return p, nil
}

// Block looks up a block by element id.
func (p *Page) Block(id string) (Block, bool) {
	b, ok := p.blocks[id]
	return b, ok
}

// Blocks returns every block in document order.
func (p *Page) Blocks() []Block {
	var out []Block
	for _, s := range p.Sections {
		out = append(out, s.Blocks...)
	}
	return out
}

// InitialStyle returns the server-rendered inline style of a reveal block:
// the hidden state, so that the browser animates it in on first visibility.
func (p *Page) InitialStyle(id string) string {
	b, ok := p.blocks[id]
	if !ok || b.Kind == BlockCounter {
		return ""
	}
	return widgets.StyleFor(b.Reveal, false).CSS()
}

// Layout estimates where every block sits on the page. Counter blocks sit
// inside their stat card.
func (p *Page) Layout() map[string]widgets.Rect {
	rects := make(map[string]widgets.Rect)
	y := float64(navHeight)
	for _, s := range p.Sections {
		y += sectionPadding
		var card widgets.Rect
		for _, b := range s.Blocks {
			if b.Kind == BlockCounter {
				rects[b.ID] = widgets.Rect{Top: card.Top + 24, Height: b.Height}
				continue
			}
			r := widgets.Rect{Top: y, Height: b.Height}
			rects[b.ID] = r
			card = r
			y += b.Height + blockGap
		}
		y += sectionPadding
	}
	return rects
}

// WidgetConfig is the JSON document the browser script reads at startup.
type WidgetConfig struct {
	CounterTickMS      int64                  `json:"counter_tick_ms"`
	CounterMaxTicks    int                    `json:"counter_max_ticks"`
	AutoplayMS         int64                  `json:"autoplay_ms"`
	TransitionLockMS   int64                  `json:"transition_lock_ms"`
	NavbarThreshold    int                    `json:"navbar_threshold"`
	VisibilityFraction float64                `json:"visibility_threshold"`
	Testimonials       int                    `json:"testimonials"`
	Blocks             map[string]BlockConfig `json:"blocks"`
}

// BlockConfig is the per-element part of WidgetConfig.
type BlockConfig struct {
	Kind       BlockKind `json:"kind"`
	DelayMS    int64     `json:"delay_ms,omitempty"`
	DurationMS int64     `json:"duration_ms,omitempty"`
	Offset     float64   `json:"offset,omitempty"`
	Scale      float64   `json:"scale,omitempty"`
	Once       bool      `json:"once"`
	Target     *int      `json:"target,omitempty"`
	Suffix     string    `json:"suffix,omitempty"`
}

// Config returns the widget configuration for the browser.
func (p *Page) Config() WidgetConfig {
	cfg := WidgetConfig{
		CounterTickMS:      p.Timings.CounterTick.Milliseconds(),
		CounterMaxTicks:    widgets.CounterMaxTicks,
		AutoplayMS:         p.Timings.Autoplay.Milliseconds(),
		TransitionLockMS:   p.Timings.Lock.Milliseconds(),
		NavbarThreshold:    widgets.NavbarSolidThreshold,
		VisibilityFraction: widgets.DefaultThreshold,
		Testimonials:       len(p.Testimonials),
		Blocks:             make(map[string]BlockConfig, len(p.blocks)),
	}
	for id, b := range p.blocks {
		bc := BlockConfig{Kind: b.Kind, Once: true}
		if b.Kind == BlockCounter {
			target := b.Stat.Target
			bc.Target = &target
			bc.Suffix = b.Stat.Suffix
		} else {
			bc.DelayMS = b.Reveal.Delay.Milliseconds()
			bc.DurationMS = b.Reveal.Duration.Milliseconds()
			bc.Offset = b.Reveal.Offset
			bc.Scale = b.Reveal.Scale
			bc.Once = b.Reveal.Once
		}
		cfg.Blocks[id] = bc
	}
	return cfg
}

// PlaceOn positions every block on a synthetic viewport using Layout.
func (p *Page) PlaceOn(v *widgets.Viewport) {
	for id, r := range p.Layout() {
		v.Place(id, r)
	}
}
