// Restart throttling for gocui.MainLoop. The loop is restarted when it fails
// or when it is stopped deliberately, but a loop that keeps failing quickly
// points to a real problem inside the UI and the program has to give up.

package top

import (
	"fmt"
	"time"
)

// restartRate tracks how often the UI main loop fails.
type restartRate struct {
	lastSeen time.Time // time of the previous failure
	count    int       // failures within the current window
}

// allow registers a failure and tells whether restarting still makes sense.
// Failures separated by more than the window reset the counter.
func (r *restartRate) allow(window time.Duration, limit int) error {
	now := time.Now()

	if now.Sub(r.lastSeen) > window {
		r.lastSeen = now
		r.count = 0
		return nil
	}

	r.count++
	if r.count > limit {
		return fmt.Errorf("too many UI failures")
	}
	return nil
}
