package testutil

import (
	"context"
	"testing"
	"time"
)

// DefaultTimeout bounds how long a test waits on a session.
const DefaultTimeout = 5 * time.Second

// Context returns a context canceled when the test ends or the timeout elapses,
// whichever comes first. The timeout is clamped to the test deadline.
func Context(t testing.TB, timeout time.Duration) context.Context {
	t.Helper()
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if dt, ok := t.(interface{ Deadline() (time.Time, bool) }); ok {
		if deadline, ok := dt.Deadline(); ok {
			if remaining := time.Until(deadline) - time.Second; remaining > 0 && remaining < timeout {
				timeout = remaining
			}
		}
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	t.Cleanup(cancel)
	return ctx
}
