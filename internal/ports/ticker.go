package ports

import "time"

// Ticker delivers ticks until stopped
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

// TickerFactory creates tickers; the runner asks for one only while the clock runs
type TickerFactory interface {
	NewTicker(interval time.Duration) Ticker
}
