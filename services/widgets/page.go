package widgets

import "sync"

// NavbarSolidThreshold is the scroll offset past which the navbar turns solid.
const NavbarSolidThreshold = 50

// NavbarSolid reports whether the navbar is solid at the given scroll offset.
func NavbarSolid(offset float64) bool {
	return offset > NavbarSolidThreshold
}

// PageState holds the page-level UI flags.
type PageState struct {
	ScrollOffset   float64
	NavbarSolid    bool
	MobileMenuOpen bool
}

// Page tracks the navbar and mobile-menu flags.
type Page struct {
	mu           sync.Mutex
	state        PageState
	cancelScroll func()
	onChange     func(PageState)
}

func NewPage() *Page {
	return &Page{}
}

// OnChange registers fn to receive the state after every change.
func (p *Page) OnChange(fn func(PageState)) {
	p.mu.Lock()
	p.onChange = fn
	p.mu.Unlock()
}

// Mount subscribes to scroll events from source.
func (p *Page) Mount(source ScrollSource) {
	if source == nil {
		return
	}
	p.mu.Lock()
	if p.cancelScroll != nil {
		p.mu.Unlock()
		return
	}
	p.mu.Unlock()

	cancel := source.OnScroll(p.HandleScroll)

	p.mu.Lock()
	p.cancelScroll = cancel
	p.mu.Unlock()
}

// Unmount drops the scroll subscription.
func (p *Page) Unmount() {
	p.mu.Lock()
	cancel := p.cancelScroll
	p.cancelScroll = nil
	p.mu.Unlock()

	if cancel != nil {
		cancel()
	}
}

// HandleScroll recomputes the navbar flag for a scroll event.
func (p *Page) HandleScroll(offset float64) {
	p.update(func(s *PageState) {
		s.ScrollOffset = offset
		s.NavbarSolid = NavbarSolid(offset)
	})
}

// ToggleMobileMenu flips the mobile menu open flag.
func (p *Page) ToggleMobileMenu() {
	p.update(func(s *PageState) {
		s.MobileMenuOpen = !s.MobileMenuOpen
	})
}

// FollowLink closes the mobile menu when a navigation link is used.
func (p *Page) FollowLink(href string) {
	p.update(func(s *PageState) {
		s.MobileMenuOpen = false
	})
}

// State returns the current flags.
func (p *Page) State() PageState {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

func (p *Page) update(mutate func(*PageState)) {
	p.mu.Lock()
	mutate(&p.state)
	state, fn := p.state, p.onChange
	p.mu.Unlock()

	if fn != nil {
		fn(state)
	}
}
