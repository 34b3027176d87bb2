// Package debounce coalesces a high-frequency input signal (search
// keystrokes) into a bounded-rate output signal. Only the most recent
// value survives a burst; earlier ones are discarded without error.
package debounce

import (
	"sync"
	"time"
)

// Debouncer schedules at most one pending dispatch per input stream.
// A newer Schedule call cancels the previous pending timer and arms a
// fresh one, so for any burst of calls spaced closer than the window
// exactly one callback fires, carrying the last submitted value.
//
// Callbacks run on the timer goroutine; the zero Debouncer is not
// usable, construct one with New.
type Debouncer struct {
	mu    sync.Mutex
	timer *time.Timer
}

// New returns a Debouncer with no pending dispatch.
func New() *Debouncer {
	return &Debouncer{}
}

// Schedule arms a timer that invokes fn(value) after window elapses
// without a further Schedule call. Any previously pending dispatch is
// cancelled first. A non-positive window invokes fn synchronously.
func (d *Debouncer) Schedule(value string, window time.Duration, fn func(string)) {
	d.mu.Lock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}

	if window <= 0 {
		d.mu.Unlock()
		fn(value)
		return
	}

	d.timer = time.AfterFunc(window, func() {
		d.mu.Lock()
		d.timer = nil
		d.mu.Unlock()
		fn(value)
	})
	d.mu.Unlock()
}

// Stop cancels the pending dispatch, if any. Stopping an already fired
// or never armed Debouncer is a no-op.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
