package hero

import "sort"

// Scheduler runs deferred mutations on the simulation clock.
// Events fire in deadline order (ties in scheduling order) when Advance
// moves the clock past them, so deferred flag changes such as "attack over"
// happen at a deterministic point in the tick instead of on a wall-clock timer.
type Scheduler struct {
	now   float64
	seq   uint64
	queue []scheduled
}

type scheduled struct {
	at  float64
	seq uint64
	fn  func()
}

// Now returns the simulation clock in milliseconds.
func (s *Scheduler) Now() float64 {
	return s.now
}

// After schedules fn to run once the clock has advanced by delay ms.
// Events cannot be cancelled.
func (s *Scheduler) After(delay float64, fn func()) {
	if fn == nil {
		return
	}
	if delay < 0 {
		delay = 0
	}
	ev := scheduled{at: s.now + delay, seq: s.seq, fn: fn}
	s.seq++

	i := sort.Search(len(s.queue), func(i int) bool {
		q := s.queue[i]
		return q.at > ev.at || (q.at == ev.at && q.seq > ev.seq)
	})
	s.queue = append(s.queue, scheduled{})
	copy(s.queue[i+1:], s.queue[i:])
	s.queue[i] = ev
}

// Advance moves the clock forward by dt and runs every due event.
// Events scheduled by a running event fire in the same call if already due.
// Returns the number of events run.
func (s *Scheduler) Advance(dt float64) int {
	if dt > 0 {
		s.now += dt
	}
	ran := 0
	for len(s.queue) > 0 && s.queue[0].at <= s.now {
		ev := s.queue[0]
		s.queue = s.queue[1:]
		ev.fn()
		ran++
	}
	return ran
}

// Pending returns the number of events not yet run.
func (s *Scheduler) Pending() int {
	return len(s.queue)
}
