package ticker

import (
	"time"

	"github.com/tomate-timer/tomate/internal/ports"
)

// SystemTickerFactory hands out tickers backed by time.Ticker
type SystemTickerFactory struct{}

// NewSystemTickerFactory creates a new SystemTickerFactory
func NewSystemTickerFactory() *SystemTickerFactory {
	return &SystemTickerFactory{}
}

// NewTicker starts a ticker firing every interval
func (f *SystemTickerFactory) NewTicker(interval time.Duration) ports.Ticker {
	return &systemTicker{t: time.NewTicker(interval)}
}

type systemTicker struct {
	t *time.Ticker
}

func (s *systemTicker) C() <-chan time.Time { return s.t.C }

func (s *systemTicker) Stop() { s.t.Stop() }
