// Package forms contains the per-step form state of the registration wizard.
// Each form restores its section from the draft store once at construction,
// auto-saves edits after a quiet period, and performs a final synchronous save
// on submit or back navigation.
package forms

import (
	"sync"
	"time"
)

// DefaultAutosaveDelay is the quiet period after the last edit before the
// form state is persisted.
const DefaultAutosaveDelay = 500 * time.Millisecond

// autosave coalesces a burst of edits into a single save call. Each Schedule
// resets the timer, so only the state at the end of the burst is persisted
// and at most one save is pending at any time.
type autosave struct {
	mu    sync.Mutex
	delay time.Duration
	timer *time.Timer
	save  func()
}

func newAutosave(delay time.Duration, save func()) *autosave {
	if delay <= 0 {
		delay = DefaultAutosaveDelay
	}
	return &autosave{delay: delay, save: save}
}

// Schedule arms the timer, cancelling any pending save first.
func (a *autosave) Schedule() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.timer != nil {
		a.timer.Stop()
	}
	a.timer = time.AfterFunc(a.delay, a.save)
}

// stop cancels any pending save. Callers that need a final save run it
// synchronously themselves with their own context.
func (a *autosave) stop() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.timer != nil {
		a.timer.Stop()
		a.timer = nil
	}
}
