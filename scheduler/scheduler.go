// Package scheduler drives per-frame callbacks and fixed-interval timers from the
// host's tick. It is single-threaded: Tick is called once per frame from the
// ebiten Update callback and never overlaps itself.
package scheduler

import (
	"math"
	"time"
)

// Handle is the single owned cancellation handle of a loop or timer.
type Handle struct {
	fn        func()
	interval  int // ticks between invocations, 1 for frame loops
	countdown int
	cancelled bool
}

// Cancel stops the callback. It is safe to call more than once.
func (h *Handle) Cancel() {
	if h == nil {
		return
	}
	h.cancelled = true
}

// Active reports whether the callback will run again.
func (h *Handle) Active() bool {
	return h != nil && !h.cancelled
}

// Scheduler owns every registered callback.
type Scheduler struct {
	tps     int
	handles []*Handle
	pending []*Handle
	ticking bool
}

// New creates a scheduler for a host running at tps ticks per second.
func New(tps int) *Scheduler {
	if tps <= 0 {
		tps = 60
	}
	return &Scheduler{tps: tps}
}

// Loop registers fn to run once per tick until cancelled.
func (s *Scheduler) Loop(fn func()) *Handle {
	return s.add(&Handle{fn: fn, interval: 1, countdown: 1})
}

// Every registers fn to run once per interval until cancelled. The interval is
// rounded to whole ticks, with a minimum of one.
func (s *Scheduler) Every(interval time.Duration, fn func()) *Handle {
	ticks := s.Ticks(interval)
	return s.add(&Handle{fn: fn, interval: ticks, countdown: ticks})
}

// Ticks converts a duration to a whole number of ticks, at least one.
func (s *Scheduler) Ticks(d time.Duration) int {
	n := int(math.Round(d.Seconds() * float64(s.tps)))
	if n < 1 {
		n = 1
	}
	return n
}

func (s *Scheduler) add(h *Handle) *Handle {
	// Registrations made during a tick first run on the next one.
	if s.ticking {
		s.pending = append(s.pending, h)
	} else {
		s.handles = append(s.handles, h)
	}
	return h
}

// Tick advances one frame, running due callbacks in registration order.
func (s *Scheduler) Tick() {
	s.ticking = true
	for _, h := range s.handles {
		if h.cancelled {
			continue
		}
		h.countdown--
		if h.countdown > 0 {
			continue
		}
		h.countdown = h.interval
		h.fn()
	}
	s.ticking = false

	live := s.handles[:0]
	for _, h := range s.handles {
		if !h.cancelled {
			live = append(live, h)
		}
	}
	for i := len(live); i < len(s.handles); i++ {
		s.handles[i] = nil
	}
	s.handles = append(live, s.pending...)
	s.pending = s.pending[:0]
}

// Pending returns how many callbacks are still registered.
func (s *Scheduler) Pending() int {
	n := 0
	for _, h := range s.handles {
		if !h.cancelled {
			n++
		}
	}
	for _, h := range s.pending {
		if !h.cancelled {
			n++
		}
	}
	return n
}
