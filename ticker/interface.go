// Package ticker defines a mockable periodic-tick interface so that a
// periodic loop (the peer ping loop, via peer.Config.PingTicker) can be
// driven by a real wall-clock ticker in production and by a
// manually-triggered one in tests.
package ticker

import "time"

// Ticker is something that periodically ticks, such as time.Ticker, for
// the purpose of letting callers mock out the ticker used in a worker
// loop.
type Ticker interface {
	// Start starts the ticker and returns the ticker channel that will
	// receive ticks at the configured interval.
	Start() <-chan time.Time

	// Stop halts the ticker.
	Stop()
}
