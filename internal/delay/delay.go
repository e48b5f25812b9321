package delay

import (
	"context"
	"time"
)

// After returns a channel that is closed once at least d has passed.
// It never blocks the caller and cannot be cancelled; use Wait for that.
func After(d time.Duration) <-chan struct{} {
	done := make(chan struct{})
	time.AfterFunc(d, func() { close(done) })
	return done
}

// Millis is After for a millisecond count
func Millis(ms int64) <-chan struct{} {
	return After(time.Duration(ms) * time.Millisecond)
}

// Wait pauses the calling goroutine for d or until ctx is done, whichever
// comes first. It returns ctx.Err() when interrupted.
func Wait(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
