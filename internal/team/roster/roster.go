// Package roster keeps a team builder's list of available students fresh
// while the builder is open.
package roster

import (
	"context"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	teamModel "github.com/festy23/sportsday/internal/team/model"
	"github.com/festy23/sportsday/pkg/poller"
)

// Source lists the students that can still join a team of a sport.
type Source interface {
	ListAvailable(ctx context.Context, sport string) ([]teamModel.RosterStudent, error)
}

// PushFunc delivers an update to the open builder. An error means the
// builder is gone and ends the watcher.
type PushFunc func(teamModel.RosterUpdate) error

// Watcher polls the roster of one sport at a time. Switching sports reuses
// the running poll loop.
type Watcher struct {
	source Source
	push   PushFunc
	logger *zap.SugaredLogger
	sport  atomic.Pointer[string]
	handle *poller.Handle
	cancel context.CancelFunc
}

// Watch starts polling sportName every interval and pushes each result.
// The first fetch happens right away. Call Stop when the builder closes; a
// failed push stops the watcher on its own.
func Watch(
	ctx context.Context,
	sportName string,
	interval time.Duration,
	source Source,
	push PushFunc,
	logger *zap.SugaredLogger,
	opts ...poller.Option,
) *Watcher {
	w := &Watcher{
		source: source,
		push:   push,
		logger: logger,
	}
	w.sport.Store(&sportName)
	ctx, w.cancel = context.WithCancel(ctx)
	w.handle = poller.Start(ctx, interval, w.refresh, opts...)

	logger.Debugw("roster watcher started", "sport", sportName, "interval", interval)
	return w
}

// Sport returns the sport currently watched.
func (w *Watcher) Sport() string {
	return *w.sport.Load()
}

// SetSport switches the watched sport and fetches it immediately.
func (w *Watcher) SetSport(sportName string) {
	w.sport.Store(&sportName)
	w.handle.Trigger()
}

// Refresh fetches the current sport now instead of waiting for the next tick.
func (w *Watcher) Refresh() {
	w.handle.Trigger()
}

// Stop ends polling. It may be called more than once.
func (w *Watcher) Stop() {
	w.cancel()
	w.handle.Stop()
}

// Done is closed once polling has ended.
func (w *Watcher) Done() <-chan struct{} {
	return w.handle.Done()
}

func (w *Watcher) refresh(ctx context.Context) {
	sportName := w.Sport()

	students, err := w.source.ListAvailable(ctx, sportName)
	if err != nil {
		if ctx.Err() == nil {
			w.logger.Warnw("roster refresh failed", "sport", sportName, "error", err)
		}
		return
	}

	if err := w.push(teamModel.RosterUpdate{Sport: sportName, Students: students}); err != nil {
		w.logger.Infow("roster push failed, stopping watcher", "sport", sportName, "error", err)
		// the poll loop exits once this run returns
		w.cancel()
	}
}
