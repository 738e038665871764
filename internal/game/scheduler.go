package game

import "time"

// Scheduler issues fixed-interval ticks from the single-threaded frame
// loop. It is deadline-based rather than goroutine-based so tick
// delivery can never race with input handling, and so it is testable
// with injected clock values.
type Scheduler struct {
	interval time.Duration
	next     time.Time
	running  bool
}

func NewScheduler(interval time.Duration) *Scheduler {
	return &Scheduler{interval: interval}
}

// Start arms the scheduler: the first tick fires one full interval
// after now. Resuming from pause goes through here, so there is no
// partial-tick carryover.
func (t *Scheduler) Start(now time.Time) {
	t.running = true
	t.next = now.Add(t.interval)
}

// Stop suspends ticking entirely. Every path that leaves the running
// phase (pause, game over, restart) must stop or re-arm the scheduler.
func (t *Scheduler) Stop() {
	t.running = false
}

func (t *Scheduler) Running() bool { return t.running }

func (t *Scheduler) Interval() time.Duration { return t.interval }

// SetInterval adopts a new period and restarts it: the next tick fires
// a full new interval after now, not after the remainder of the old one.
func (t *Scheduler) SetInterval(d time.Duration, now time.Time) {
	t.interval = d
	if t.running {
		t.next = now.Add(d)
	}
}

// Tick reports whether a tick is due at now, consuming it and re-arming
// the next deadline. At most one tick is delivered per call; the frame
// loop calls this once per frame, so a stalled frame coalesces missed
// ticks instead of bursting.
func (t *Scheduler) Tick(now time.Time) bool {
	if !t.running || now.Before(t.next) {
		return false
	}
	t.next = now.Add(t.interval)
	return true
}
