package generation

import (
	"context"
	"time"
)

// sleepFunc pauses for d or returns early with the context's error.
// Injected so tests can record backoff delays instead of waiting them out.
type sleepFunc func(ctx context.Context, d time.Duration) error

// sleepWithContext is the production sleepFunc.
func sleepWithContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// withBackoff runs fn up to maxAttempts times, doubling the delay between
// attempts starting at initialDelay. Every error from fn is treated as
// transient; once attempts are exhausted the last error is returned. A
// cancelled context aborts the wait immediately.
func withBackoff(ctx context.Context, maxAttempts int, initialDelay time.Duration, sleep sleepFunc, fn func(ctx context.Context) error) error {
	delay := initialDelay
	var lastErr error

	for attempt := 0; attempt < maxAttempts; attempt++ {
		if attempt > 0 {
			if err := sleep(ctx, delay); err != nil {
				return err
			}
			delay *= 2
		}

		if err := fn(ctx); err != nil {
			lastErr = err
			continue
		}
		return nil
	}

	return lastErr
}
