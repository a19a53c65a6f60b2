// Package debounce collapses rapid repeated input into a single action.
//
// Each call to Schedule or Next issues a new Token and invalidates every
// earlier one. A pending action only runs if its token is still current
// when the quiet period ends.
package debounce

import (
	"sync"
	"time"
)

// DefaultSearchDelay is the quiet period before a search is re-evaluated
const DefaultSearchDelay = 300 * time.Millisecond

// Token identifies one scheduled action
type Token uint64

// Debouncer holds the current token and the pending timer
type Debouncer struct {
	mu       sync.Mutex
	timer    *time.Timer
	duration time.Duration
	current  Token
}

// New creates a debouncer with the given quiet period. Non-positive
// durations select DefaultSearchDelay.
func New(duration time.Duration) *Debouncer {
	if duration <= 0 {
		duration = DefaultSearchDelay
	}
	return &Debouncer{duration: duration}
}

// Duration returns the quiet period
func (d *Debouncer) Duration() time.Duration {
	return d.duration
}

// Next invalidates the pending action and returns a fresh token without
// starting a timer. Callers with their own scheduler (e.g. tea.Tick) use it
// together with IsCurrent.
func (d *Debouncer) Next() Token {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopLocked()
	d.current++
	return d.current
}

// Schedule supersedes any pending action and runs fn after the quiet period
// unless another call arrives first
func (d *Debouncer) Schedule(fn func()) Token {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopLocked()
	d.current++
	token := d.current

	d.timer = time.AfterFunc(d.duration, func() {
		if d.IsCurrent(token) {
			fn()
		}
	})

	return token
}

// IsCurrent reports whether token is the latest one issued
func (d *Debouncer) IsCurrent(token Token) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return token == d.current
}

// Cancel drops any pending action
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopLocked()
	d.current++
}

func (d *Debouncer) stopLocked() {
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
