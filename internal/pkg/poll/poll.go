// Package poll provides a cancellable fixed-interval task, the client-side
// analogue of a browser setInterval tied to a view's lifetime.
package poll

import (
	"context"
	"sync"
	"time"
)

type Task struct {
	interval time.Duration
	fn       func(context.Context)
	cancel   context.CancelFunc
	done     chan struct{}
	runs     sync.WaitGroup
}

func New(interval time.Duration, fn func(context.Context)) *Task {
	return &Task{interval: interval, fn: fn}
}

// Start runs the task immediately and then on every tick. Ticks fire on
// schedule even while a previous run is still in flight; there is no
// overlap control.
func (t *Task) Start(ctx context.Context) {
	ctx, t.cancel = context.WithCancel(ctx)
	t.done = make(chan struct{})
	go t.run(ctx)
}

func (t *Task) run(ctx context.Context) {
	defer close(t.done)
	t.launch(ctx)
	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			t.launch(ctx)
		}
	}
}

func (t *Task) launch(ctx context.Context) {
	t.runs.Add(1)
	go func() {
		defer t.runs.Done()
		t.fn(ctx)
	}()
}

// Stop cancels the task and waits for the schedule loop and every in-flight
// run to return. After Stop no run is executing.
func (t *Task) Stop() {
	if t.cancel == nil {
		return
	}
	t.cancel()
	<-t.done
	t.runs.Wait()
}
