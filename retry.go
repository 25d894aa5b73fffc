package hndigest

import (
	"context"
	"time"
)

// DefaultRetryDelays returns the standard backoff schedule for upstream
// reads: three attempts with linear backoff from a one second base.
func DefaultRetryDelays() []time.Duration {
	return LinearDelays(time.Second, 3)
}

// LinearDelays builds a linear backoff schedule for the given number of
// attempts: base, 2*base, and so on, with one delay between each pair of
// consecutive attempts.
func LinearDelays(base time.Duration, attempts int) []time.Duration {
	if attempts < 2 {
		return nil
	}
	delays := make([]time.Duration, attempts-1)
	for i := range delays {
		delays[i] = base * time.Duration(i+1)
	}
	return delays
}

// Do runs op up to len(delays)+1 times, sleeping delays[i] after the i-th
// failure. Every failure is retried the same way; the final failure is
// returned unchanged. Passing an empty schedule means a single attempt.
func Do(ctx context.Context, delays []time.Duration, op func(ctx context.Context) error) error {
	maxAttempts := len(delays) + 1

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		err := op(ctx)
		if err == nil {
			return nil
		}
		lastErr = err

		if attempt == maxAttempts-1 {
			break
		}

		// Sleep before the next attempt, but let cancellation cut the
		// backoff short.
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delays[attempt]):
		}
	}

	return lastErr
}
