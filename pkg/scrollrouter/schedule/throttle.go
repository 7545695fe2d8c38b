package schedule

import (
	"sync"
	"time"
)

// Throttle rate-limits calls to a function. The first call after a quiet
// period runs immediately; calls arriving inside the interval are coalesced
// into a single trailing run at the end of the interval. The function is
// expected to read the latest state itself, so coalesced calls lose nothing.
type Throttle struct {
	mu       sync.Mutex
	clock    Clock
	interval time.Duration
	fn       func()

	last     time.Time
	invoked  bool
	timer    Timer
	canceled bool
}

// NewThrottle creates a Throttle that runs fn at most once per interval.
func NewThrottle(interval time.Duration, clock Clock, fn func()) *Throttle {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Throttle{
		clock:    clock,
		interval: interval,
		fn:       fn,
	}
}

// Call requests a run of the throttled function.
func (t *Throttle) Call() {
	t.mu.Lock()
	if t.canceled {
		t.mu.Unlock()
		return
	}

	now := t.clock.Now()
	if !t.invoked || now.Sub(t.last) >= t.interval {
		if t.timer != nil {
			t.timer.Stop()
			t.timer = nil
		}
		t.invoked = true
		t.last = now
		t.mu.Unlock()

		t.fn()
		return
	}

	if t.timer == nil {
		t.timer = t.clock.AfterFunc(t.interval-now.Sub(t.last), t.trailing)
	}
	t.mu.Unlock()
}

func (t *Throttle) trailing() {
	t.mu.Lock()
	t.timer = nil
	if t.canceled {
		t.mu.Unlock()
		return
	}
	t.last = t.clock.Now()
	t.mu.Unlock()

	t.fn()
}

// Pending reports whether a trailing run is scheduled.
func (t *Throttle) Pending() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.timer != nil
}

// Cancel drops any scheduled run and turns later calls into no-ops.
func (t *Throttle) Cancel() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.canceled = true
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
}
