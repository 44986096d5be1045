// Package poller runs a task on a fixed interval until it is stopped.
package poller

import (
	"context"
	"sync"
	"time"
)

// Ticker is the subset of *time.Ticker the poller depends on.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

// TickerFactory creates the ticker that drives a poll loop.
type TickerFactory func(interval time.Duration) Ticker

type timeTicker struct {
	t *time.Ticker
}

func (t timeTicker) C() <-chan time.Time { return t.t.C }
func (t timeTicker) Stop()               { t.t.Stop() }

// NewTimeTicker is the default TickerFactory backed by time.NewTicker.
func NewTimeTicker(interval time.Duration) Ticker {
	return timeTicker{t: time.NewTicker(interval)}
}

// Option configures a poll loop.
type Option func(*options)

type options struct {
	newTicker TickerFactory
}

// WithTickerFactory replaces the ticker used by the loop.
func WithTickerFactory(f TickerFactory) Option {
	return func(o *options) {
		if f != nil {
			o.newTicker = f
		}
	}
}

// Handle controls a running poll loop.
type Handle struct {
	cancel   context.CancelFunc
	trigger  chan struct{}
	done     chan struct{}
	stopOnce sync.Once
}

// Start runs task immediately and then once per interval on its own
// goroutine. Exactly one ticker is created per call and it is stopped when
// the loop exits. The loop exits when ctx is cancelled or Stop is called.
func Start(ctx context.Context, interval time.Duration, task func(context.Context), opts ...Option) *Handle {
	o := options{newTicker: NewTimeTicker}
	for _, opt := range opts {
		opt(&o)
	}

	ctx, cancel := context.WithCancel(ctx)
	h := &Handle{
		cancel:  cancel,
		trigger: make(chan struct{}, 1),
		done:    make(chan struct{}),
	}

	ticker := o.newTicker(interval)
	go h.run(ctx, ticker, task)

	return h
}

func (h *Handle) run(ctx context.Context, ticker Ticker, task func(context.Context)) {
	defer close(h.done)
	defer ticker.Stop()

	task(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C():
		case <-h.trigger:
		}
		if ctx.Err() != nil {
			return
		}
		task(ctx)
	}
}

// Trigger requests an immediate run. Requests made while one is already
// pending are coalesced.
func (h *Handle) Trigger() {
	select {
	case h.trigger <- struct{}{}:
	default:
	}
}

// Stop cancels the loop and waits for the running task to return. It is
// safe to call more than once and from several goroutines.
func (h *Handle) Stop() {
	h.stopOnce.Do(h.cancel)
	<-h.done
}

// Done is closed once the loop has exited.
func (h *Handle) Done() <-chan struct{} {
	return h.done
}
