package ticker

import "time"

// DefaultTicker wraps time.Ticker to implement the Ticker interface.
type DefaultTicker struct {
	interval time.Duration
	ticker   *time.Ticker
}

// New creates a DefaultTicker with the given tick interval. It is not
// started until Start is called.
func New(interval time.Duration) *DefaultTicker {
	return &DefaultTicker{interval: interval}
}

// Start starts the underlying time.Ticker.
func (d *DefaultTicker) Start() <-chan time.Time {
	if d.ticker == nil {
		d.ticker = time.NewTicker(d.interval)
	}
	return d.ticker.C
}

// Stop halts the underlying time.Ticker.
func (d *DefaultTicker) Stop() {
	if d.ticker != nil {
		d.ticker.Stop()
	}
}
