package session

import (
	"context"
	"sync/atomic"
	"time"
)

// Timer ends a session after a fixed duration.
type Timer struct {
	duration time.Duration
	expired  atomic.Bool
	done     chan struct{}
}

// StartTimer starts a goroutine that sends SessionOver once d has elapsed.
// A non-positive d fires immediately.
// The goroutine exits early when ctx is canceled.
func StartTimer(ctx context.Context, d time.Duration, signals chan<- Signal) *Timer {
	t := &Timer{duration: d, done: make(chan struct{})}
	go t.run(ctx, signals)
	return t
}

func (t *Timer) run(ctx context.Context, signals chan<- Signal) {
	defer close(t.done)
	clock := time.NewTimer(t.duration)
	defer clock.Stop()
	select {
	case <-clock.C:
		t.expired.Store(true)
		send(ctx, signals, SessionOver)
	case <-ctx.Done():
	}
}

// Expired reports whether the duration elapsed before the session ended.
func (t *Timer) Expired() bool {
	if t == nil {
		return false
	}
	return t.expired.Load()
}

// Done is closed when the timer goroutine has exited.
func (t *Timer) Done() <-chan struct{} {
	return t.done
}
