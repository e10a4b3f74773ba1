package animation

import (
	"sync"
	"time"

	"github.com/go-drift/motion/pkg/errors"
)

var (
	tickerMu      sync.Mutex
	activeTickers = make(map[*Ticker]struct{})
)

// Ticker calls a callback on each frame while active, passing the elapsed
// nanoseconds since the previous tick. It is the glue between a host frame
// loop and the delta-driven [Animator], [AnimationController] and
// [Animated] entry points.
//
// Tickers are driven by the host calling [StepTickers] once per frame.
type Ticker struct {
	callback func(deltaNanos float64)
	isActive bool
	last     time.Time
}

// NewTicker creates a new ticker with the given callback.
func NewTicker(callback func(deltaNanos float64)) *Ticker {
	return &Ticker{
		callback: callback,
	}
}

// Start activates the ticker. The first tick after Start delivers the time
// elapsed since Start.
func (t *Ticker) Start() {
	if t.isActive {
		return
	}
	t.isActive = true
	t.last = Now()
	tickerMu.Lock()
	activeTickers[t] = struct{}{}
	tickerMu.Unlock()
}

// Stop deactivates the ticker.
func (t *Ticker) Stop() {
	if !t.isActive {
		return
	}
	t.isActive = false
	tickerMu.Lock()
	delete(activeTickers, t)
	tickerMu.Unlock()
}

// IsActive returns whether the ticker is currently running.
func (t *Ticker) IsActive() bool {
	return t.isActive
}

// StepTickers advances all active tickers, delivering to each the delta
// since its previous tick. The host should call this once per frame.
func StepTickers() {
	tickerMu.Lock()
	if len(activeTickers) == 0 {
		tickerMu.Unlock()
		return
	}
	// Make a copy to avoid holding the lock during callbacks.
	tickers := make([]*Ticker, 0, len(activeTickers))
	for ticker := range activeTickers {
		tickers = append(tickers, ticker)
	}
	tickerMu.Unlock()

	now := Now()
	for _, ticker := range tickers {
		if ticker.isActive && ticker.callback != nil {
			delta := now.Sub(ticker.last)
			ticker.last = now
			ticker.dispatch(float64(delta.Nanoseconds()))
		}
	}
}

// dispatch runs the callback, containing panics so one failing ticker
// cannot take down the host frame loop.
func (t *Ticker) dispatch(deltaNanos float64) {
	defer errors.Recover("animation.StepTickers")
	t.callback(deltaNanos)
}

// HasActiveTickers returns true if any tickers are active.
func HasActiveTickers() bool {
	tickerMu.Lock()
	defer tickerMu.Unlock()
	return len(activeTickers) > 0
}
