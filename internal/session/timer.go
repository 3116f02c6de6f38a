package session

import "time"

// Scheduler abstracts the one asynchronous actor the engine needs: a
// cancellable delayed callback for question time limits. Production code
// uses WallScheduler; tests use a fake that fires on demand.
type Scheduler interface {
	// Schedule runs fn after d. The returned cancel function stops fn from
	// running if it hasn't started yet; cancelling after the callback ran
	// is a no-op.
	Schedule(d time.Duration, fn func()) (cancel func())
}

// WallScheduler schedules on the wall clock via time.AfterFunc.
type WallScheduler struct{}

func (WallScheduler) Schedule(d time.Duration, fn func()) func() {
	t := time.AfterFunc(d, fn)
	return func() { t.Stop() }
}
