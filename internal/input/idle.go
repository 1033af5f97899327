package input

import "time"

// Idle wraps a Source and adds a Quit once no event has arrived for the
// configured timeout.
type Idle struct {
	src     Source
	timeout time.Duration
	now     func() time.Time
	last    time.Time
	fired   bool
}

// WithIdleTimeout returns src wrapped with an inactivity Quit. now may be
// nil to use the wall clock.
func WithIdleTimeout(src Source, timeout time.Duration, now func() time.Time) *Idle {
	if now == nil {
		now = time.Now
	}
	return &Idle{src: src, timeout: timeout, now: now, last: now()}
}

// Poll forwards the wrapped source's events.
func (s *Idle) Poll() []Event {
	events := s.src.Poll()
	t := s.now()
	if len(events) > 0 {
		s.last = t
		return events
	}
	if !s.fired && s.timeout > 0 && t.Sub(s.last) >= s.timeout {
		s.fired = true
		return []Event{Quit}
	}
	return nil
}

var _ Source = (*Idle)(nil)
