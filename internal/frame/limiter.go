package frame

import (
	"time"

	"voxedit/internal/config"
)

// spinWindow is how long before the deadline the limiter stops sleeping and
// busy-waits instead.
const spinWindow = 200 * time.Microsecond

// Limiter paces the frame loop to config.GetFPSLimit frames per second
type Limiter struct {
	next  time.Time
	limit func() int
}

// NewLimiter creates a limiter that follows the runtime FPS setting
func NewLimiter() *Limiter {
	return &Limiter{limit: config.GetFPSLimit}
}

// Wait blocks until the next frame should start. A limit of 0 disables pacing.
// Uses a hybrid sleep/spin approach for better precision on high FPS caps.
func (f *Limiter) Wait() {
	effectiveLimit := f.limit()
	if effectiveLimit <= 0 {
		f.next = time.Time{}
		return
	}

	target := time.Second / time.Duration(effectiveLimit)
	if f.next.IsZero() {
		f.next = time.Now().Add(target)
	} else {
		f.next = f.next.Add(target)
	}

	for {
		remaining := time.Until(f.next)
		if remaining <= 0 {
			break
		}
		if remaining > spinWindow {
			time.Sleep(remaining - spinWindow)
		}
	}

	// Resync after a hitch instead of rushing frames to catch up
	if late := -time.Until(f.next); late > target {
		f.next = time.Now().Add(target)
	}
}
