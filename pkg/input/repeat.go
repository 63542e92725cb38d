package input

import (
	"sync"
	"time"
)

const (
	// DefaultInitialRepeatDelay bounds the pause between pressing a key and
	// the first auto-repeat. Desktop defaults sit between 250 and 600 ms.
	DefaultInitialRepeatDelay = 600 * time.Millisecond

	// DefaultRepeatWindow is the gap under which an identical key-down counts
	// as auto-repeat once a key is held. Typical repeat rates are 25-40 Hz.
	DefaultRepeatWindow = 90 * time.Millisecond
)

// RepeatDetector flags auto-repeated key-downs. Terminals do not report the
// repeat flag, so repeats are inferred from timing in two phases. The first
// identical key-down within the initial delay marks the key as held. While
// held, identical key-downs within the window are repeats, and each one
// slides the window forward. Any longer gap or a different key ends the hold.
//
// Two deliberate presses of the same key inside the initial delay are
// indistinguishable from a hold, so the second one is treated as a repeat.
type RepeatDetector struct {
	mu      sync.Mutex
	initial time.Duration
	window  time.Duration
	now     func() time.Time
	last    rune
	at      time.Time
	seen    bool
	held    bool
}

// NewRepeatDetector returns a detector with the given initial delay and
// sliding window. Non-positive values use the defaults.
func NewRepeatDetector(initial, window time.Duration) *RepeatDetector {
	if initial <= 0 {
		initial = DefaultInitialRepeatDelay
	}
	if window <= 0 {
		window = DefaultRepeatWindow
	}
	return &RepeatDetector{initial: initial, window: window, now: time.Now}
}

// SetClock replaces the time source.
func (d *RepeatDetector) SetClock(now func() time.Time) {
	d.mu.Lock()
	d.now = now
	d.mu.Unlock()
}

// InitialDelay returns the configured initial delay.
func (d *RepeatDetector) InitialDelay() time.Duration {
	return d.initial
}

// Window returns the configured window.
func (d *RepeatDetector) Window() time.Duration {
	return d.window
}

// Observe records a key-down of r and reports whether it is a repeat.
func (d *RepeatDetector) Observe(r rune) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	now := d.now()
	repeat := false
	if d.seen && r == d.last {
		limit := d.initial
		if d.held {
			limit = d.window
		}
		repeat = now.Sub(d.at) < limit
	}
	d.held = repeat
	d.last, d.at, d.seen = r, now, true
	return repeat
}

// Reset forgets the previous key, e.g. after focus changes.
func (d *RepeatDetector) Reset() {
	d.mu.Lock()
	d.seen, d.held = false, false
	d.mu.Unlock()
}
