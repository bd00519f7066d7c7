// Package widgets holds the state machines behind the landing page's
// interactive elements: reveal-on-scroll wrappers, animated counters, the
// testimonial carousel and the page-level navbar/menu flags.
//
// None of the widgets touch a real viewport or the time package directly.
// Intersection and scroll events arrive through IntersectionSource and
// ScrollSource, and every timer is created by an injected Scheduler, so the
// same code runs against the synthetic Viewport and ManualScheduler in tests
// and in the simulate command.
package widgets

import (
	"sort"
	"sync"
	"time"
)

// Timer is a cancellable scheduled callback.
type Timer interface {
	// Stop cancels the timer. It reports false if the timer had already
	// fired (one-shot) or been stopped.
	Stop() bool
}

// Scheduler creates timers for widgets.
type Scheduler interface {
	// AfterFunc runs f once after d.
	AfterFunc(d time.Duration, f func()) Timer
	// Every runs f every d until the returned timer is stopped.
	Every(d time.Duration, f func()) Timer
}

// RealScheduler schedules callbacks on wall-clock time.
type RealScheduler struct{}

func (RealScheduler) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

func (RealScheduler) Every(d time.Duration, f func()) Timer {
	t := &intervalTimer{
		ticker: time.NewTicker(d),
		done:   make(chan struct{}),
	}
	go func() {
		for {
			select {
			case <-t.ticker.C:
				f()
			case <-t.done:
				return
			}
		}
	}()
	return t
}

type intervalTimer struct {
	ticker *time.Ticker
	done   chan struct{}
	once   sync.Once
}

func (t *intervalTimer) Stop() bool {
	stopped := false
	t.once.Do(func() {
		t.ticker.Stop()
		close(t.done)
		stopped = true
	})
	return stopped
}

// ManualScheduler is a Scheduler driven by virtual time. Nothing fires until
// Advance is called; callbacks then run on the calling goroutine in due-time
// order (ties in scheduling order).
type ManualScheduler struct {
	mu     sync.Mutex
	now    time.Duration
	seq    uint64
	timers []*manualTimer
}

type manualTimer struct {
	s       *ManualScheduler
	due     time.Duration
	period  time.Duration
	seq     uint64
	fn      func()
	stopped bool
}

// NewManualScheduler returns a scheduler positioned at virtual time zero.
func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{}
}

// Now returns the virtual time elapsed since the scheduler was created.
func (s *ManualScheduler) Now() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.now
}

// Pending returns the number of armed timers.
func (s *ManualScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.timers)
}

func (s *ManualScheduler) AfterFunc(d time.Duration, f func()) Timer {
	return s.add(d, 0, f)
}

func (s *ManualScheduler) Every(d time.Duration, f func()) Timer {
	if d <= 0 {
		d = time.Millisecond
	}
	return s.add(d, d, f)
}

func (s *ManualScheduler) add(d, period time.Duration, f func()) *manualTimer {
	s.mu.Lock()
	defer s.mu.Unlock()
	if d < 0 {
		d = 0
	}
	s.seq++
	t := &manualTimer{s: s, due: s.now + d, period: period, seq: s.seq, fn: f}
	s.timers = append(s.timers, t)
	return t
}

// Advance moves virtual time forward by d, firing every timer that comes due
// on the way, including timers scheduled by callbacks during the advance.
func (s *ManualScheduler) Advance(d time.Duration) {
	s.mu.Lock()
	target := s.now + d
	s.mu.Unlock()

	for {
		s.mu.Lock()
		next := s.nextDue(target)
		if next == nil {
			s.now = target
			s.mu.Unlock()
			return
		}
		s.now = next.due
		if next.period > 0 {
			next.due += next.period
			s.seq++
			next.seq = s.seq
		} else {
			next.stopped = true
			s.remove(next)
		}
		fn := next.fn
		s.mu.Unlock()

		fn()
	}
}

// nextDue must be called with s.mu held.
func (s *ManualScheduler) nextDue(limit time.Duration) *manualTimer {
	if len(s.timers) == 0 {
		return nil
	}
	sort.SliceStable(s.timers, func(i, j int) bool {
		if s.timers[i].due != s.timers[j].due {
			return s.timers[i].due < s.timers[j].due
		}
		return s.timers[i].seq < s.timers[j].seq
	})
	if s.timers[0].due > limit {
		return nil
	}
	return s.timers[0]
}

// remove must be called with s.mu held.
func (s *ManualScheduler) remove(t *manualTimer) {
	for i, candidate := range s.timers {
		if candidate == t {
			s.timers = append(s.timers[:i], s.timers[i+1:]...)
			return
		}
	}
}

func (t *manualTimer) Stop() bool {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	if t.stopped {
		return false
	}
	t.stopped = true
	t.s.remove(t)
	return true
}
