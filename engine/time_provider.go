package engine

import "time"

// TimeProvider is the wall-clock source the loop measures frame time with
type TimeProvider interface {
	Now() time.Time
}

// MonotonicTimeProvider returns the real system time with monotonic clock readings
type MonotonicTimeProvider struct{}

// NewMonotonicTimeProvider creates a new monotonic time provider
func NewMonotonicTimeProvider() *MonotonicTimeProvider {
	return &MonotonicTimeProvider{}
}

// Now returns the current time with monotonic clock reading
func (p *MonotonicTimeProvider) Now() time.Time {
	return time.Now()
}

// FrameTimer measures elapsed time between successive frames
type FrameTimer struct {
	provider TimeProvider
	last     time.Time
}

// NewFrameTimer starts measuring from the provider's current time
func NewFrameTimer(provider TimeProvider) *FrameTimer {
	return &FrameTimer{provider: provider, last: provider.Now()}
}

// Lap returns time since the previous Lap (or construction) and restarts the measurement
// Backwards steps of the provider yield zero
func (f *FrameTimer) Lap() time.Duration {
	now := f.provider.Now()
	d := now.Sub(f.last)
	f.last = now
	if d < 0 {
		return 0
	}
	return d
}
