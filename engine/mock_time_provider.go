package engine

import (
	"sync"
	"time"
)

// MockTimeProvider provides a controllable time source for testing
// Each Now call advances the clock by Tick after reading it
type MockTimeProvider struct {
	mu          sync.Mutex
	currentTime time.Time
	tick        time.Duration
}

// NewMockTimeProvider creates a new mock time provider with the given start time and tick
func NewMockTimeProvider(startTime time.Time, tick time.Duration) *MockTimeProvider {
	return &MockTimeProvider{
		currentTime: startTime,
		tick:        tick,
	}
}

// Now returns the current mocked time, then advances it by one tick
func (m *MockTimeProvider) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := m.currentTime
	m.currentTime = m.currentTime.Add(m.tick)
	return now
}

// Advance advances the current time by the given duration
func (m *MockTimeProvider) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.currentTime = m.currentTime.Add(d)
}
