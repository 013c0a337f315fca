package engine

import "time"

// TimeProvider abstracts the clock so the frame loop can be driven by a mock
// in tests
type TimeProvider interface {
	Now() time.Time
}

// MonotonicTimeProvider returns the real system time with monotonic readings
type MonotonicTimeProvider struct{}

// NewMonotonicTimeProvider creates a real-time provider
func NewMonotonicTimeProvider() *MonotonicTimeProvider {
	return &MonotonicTimeProvider{}
}

// Now returns the current time
func (p *MonotonicTimeProvider) Now() time.Time {
	return time.Now()
}

// MockTimeProvider is a controllable time source for tests
type MockTimeProvider struct {
	current time.Time
}

// NewMockTimeProvider creates a mock starting at the given time
func NewMockTimeProvider(start time.Time) *MockTimeProvider {
	return &MockTimeProvider{current: start}
}

// Now returns the mocked time
func (m *MockTimeProvider) Now() time.Time {
	return m.current
}

// Advance moves the mocked time forward
func (m *MockTimeProvider) Advance(d time.Duration) {
	m.current = m.current.Add(d)
}

// FrameClock measures per-frame deltas for the game loop. While paused it
// reports zero deltas and excludes the paused span from game time, so
// resuming never hands the engine one giant catch-up tick.
//
// The engine itself never reads a clock; the loop owns a FrameClock and
// feeds the measured deltas into Game.Advance.
type FrameClock struct {
	provider TimeProvider
	last     time.Time
	paused   bool
}

// NewFrameClock creates a clock that measures from now
func NewFrameClock(provider TimeProvider) *FrameClock {
	return &FrameClock{
		provider: provider,
		last:     provider.Now(),
	}
}

// Delta returns the time elapsed since the previous Delta call, or zero while
// paused
func (c *FrameClock) Delta() time.Duration {
	now := c.provider.Now()
	if c.paused {
		c.last = now
		return 0
	}
	d := now.Sub(c.last)
	c.last = now
	if d < 0 {
		return 0
	}
	return d
}

// SetPaused freezes or resumes delta measurement. Resuming restarts the
// measurement window from the current instant.
func (c *FrameClock) SetPaused(paused bool) {
	if paused == c.paused {
		return
	}
	c.paused = paused
	c.last = c.provider.Now()
}

// IsPaused reports the pause state
func (c *FrameClock) IsPaused() bool {
	return c.paused
}
