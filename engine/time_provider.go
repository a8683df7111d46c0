package engine

import "time"

// TimeProvider provides the real system time with monotonic clock readings
// and the blocking pause used for tick pacing
type TimeProvider struct{}

// NewTimeProvider creates a new monotonic time provider
func NewTimeProvider() *TimeProvider {
	return &TimeProvider{}
}

// Now returns the current time with monotonic clock reading
func (p *TimeProvider) Now() time.Time {
	return time.Now()
}

// Sleep blocks the calling goroutine for d
func (p *TimeProvider) Sleep(d time.Duration) {
	if d > 0 {
		time.Sleep(d)
	}
}
