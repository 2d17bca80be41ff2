// Package publisher runs the background loop that flips scheduled operator
// pages to published once their publish time passes.
package publisher

import (
	"context"
	"sync"
	"time"

	"github.com/whaamkabaam/trust-skin-hub/internal/logger"
	"github.com/whaamkabaam/trust-skin-hub/internal/operator"
)

// Worker periodically publishes due operators
type Worker struct {
	operators operator.Service
	interval  time.Duration
	quit      chan struct{}
	wg        sync.WaitGroup
	now       func() time.Time
}

// New creates a publisher worker ticking at the given interval
func New(operators operator.Service, interval time.Duration) *Worker {
	return &Worker{
		operators: operators,
		interval:  interval,
		quit:      make(chan struct{}),
		now:       time.Now,
	}
}

// Start launches the ticker loop. One pass runs immediately so a restart
// never leaves overdue operators waiting a full interval.
func (w *Worker) Start(ctx context.Context) {
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()

		w.RunOnce(ctx)

		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				w.RunOnce(ctx)
			case <-w.quit:
				return
			case <-ctx.Done():
				return
			}
		}
	}()
}

// RunOnce performs a single publish pass
func (w *Worker) RunOnce(ctx context.Context) {
	log := logger.FromContext(ctx)
	if _, err := w.operators.PublishDue(ctx, w.now()); err != nil {
		log.Error("Publish pass failed", "error", err)
	}
}

// Stop halts the loop and waits for an in-flight pass to finish
func (w *Worker) Stop(ctx context.Context) error {
	close(w.quit)

	done := make(chan struct{})
	go func() {
		w.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
