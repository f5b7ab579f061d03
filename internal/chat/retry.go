package chat

import (
	"context"
	"time"
)

// Retry defaults.
const (
	defaultMaxAttempts = 2
	defaultBackoffStep = 500 * time.Millisecond
)

// RetryPolicy bounds how an upstream call is retried.
type RetryPolicy struct {
	// MaxAttempts is the total number of attempts, including the first.
	MaxAttempts int
	// Backoff returns the wait after the given 1-based attempt failed.
	Backoff func(attempt int) time.Duration
	// Sleep waits for d or until ctx is done. Nil means a timer-based wait.
	Sleep func(ctx context.Context, d time.Duration) error
}

// LinearBackoff waits attempt*step: step after the first failure, 2*step
// after the second, and so on.
func LinearBackoff(step time.Duration) func(int) time.Duration {
	return func(attempt int) time.Duration { return time.Duration(attempt) * step }
}

// DefaultRetryPolicy makes two attempts with 500ms linear backoff.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{MaxAttempts: defaultMaxAttempts, Backoff: LinearBackoff(defaultBackoffStep)}
}

// Do calls fn until it succeeds or MaxAttempts is reached, waiting
// Backoff(attempt) between attempts (never after the last). It returns the
// number of attempts made and the last error, or nil on success. If ctx ends
// during a wait the loop stops early with the last attempt's error.
func (p RetryPolicy) Do(ctx context.Context, fn func(ctx context.Context, attempt int) error) (int, error) {
	p = p.withDefaults()
	var lastErr error
	for attempt := 1; attempt <= p.MaxAttempts; attempt++ {
		lastErr = fn(ctx, attempt)
		if lastErr == nil {
			return attempt, nil
		}
		if attempt == p.MaxAttempts {
			return attempt, lastErr
		}
		if err := p.Sleep(ctx, p.Backoff(attempt)); err != nil {
			return attempt, lastErr
		}
	}
	return p.MaxAttempts, lastErr
}

func (p RetryPolicy) withDefaults() RetryPolicy {
	if p.MaxAttempts <= 0 {
		p.MaxAttempts = defaultMaxAttempts
	}
	if p.Backoff == nil {
		p.Backoff = LinearBackoff(defaultBackoffStep)
	}
	if p.Sleep == nil {
		p.Sleep = sleepCtx
	}
	return p
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
