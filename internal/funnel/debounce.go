package funnel

import (
	"sync"
	"time"
)

const DefaultDebounce = 500 * time.Millisecond

// Debouncer coalesces rapid triggers: only the last call within the window
// fires. Each Trigger replaces any pending timer, so a keystroke burst
// results in exactly one execution.
type Debouncer struct {
	delay time.Duration

	mu    sync.Mutex
	timer *time.Timer
}

func NewDebouncer(delay time.Duration) *Debouncer {
	if delay <= 0 {
		delay = DefaultDebounce
	}
	return &Debouncer{delay: delay}
}

// Trigger schedules fn after the debounce window, cancelling any previously
// scheduled call.
func (d *Debouncer) Trigger(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, fn)
}

// Stop cancels any pending call. Called on form teardown.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
