package ticker

import "time"

// Mock is a test Ticker that ticks only when Force is written to,
// mirroring the mockTicker helpers scattered across the htlcswitch
// tests in the teacher repo.
type Mock struct {
	Force chan time.Time
}

// NewMock creates a Mock ticker.
func NewMock() *Mock {
	return &Mock{Force: make(chan time.Time)}
}

// Start returns the Force channel as the tick source.
func (m *Mock) Start() <-chan time.Time {
	return m.Force
}

// Stop is a no-op for Mock.
func (m *Mock) Stop() {}
