package engine

import "time"

// Clock is the time source for schedulers and renderers
type Clock interface {
	Now() time.Time
}

// TimeProvider reads the system clock, readings carry the monotonic component
type TimeProvider struct{}

// NewTimeProvider creates a system clock
func NewTimeProvider() *TimeProvider {
	return &TimeProvider{}
}

// Now returns time.Now
func (p *TimeProvider) Now() time.Time {
	return time.Now()
}
