package ledger

import (
	"context"
	"time"
)

// RetryPolicy bounds resubmission of read requests. A freshly written
// transaction may not have replicated to the node answering a read; a short
// linear backoff absorbs typical propagation delay without blocking
// indefinitely. Writes are never wrapped in this policy: resubmitting a
// signed write could duplicate side effects.
type RetryPolicy struct {
	// MaxAttempts caps the number of submissions, including the first.
	MaxAttempts int
	// Backoff returns the delay before retry n (0-based), so the first
	// retry can fire immediately.
	Backoff func(retry int) time.Duration
	// Stop inspects a response and reports whether retrying is pointless:
	// either the node rejected the request outright or it already has the
	// queried entity.
	Stop func(resp *Response) bool
}

// DefaultRetryPolicy is the policy applied to read submissions: 3 attempts,
// 500ms linear backoff, stopping on rejection or a non-null data payload.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxAttempts: 3,
		Backoff: func(retry int) time.Duration {
			return time.Duration(retry) * 500 * time.Millisecond
		},
		Stop: func(resp *Response) bool {
			return resp.Rejected() || resp.HasData()
		},
	}
}

// Do runs submit until the stop condition holds or attempts are exhausted.
// When attempts run out the last response is returned as-is; the caller
// inspects outcome and data itself, exhaustion is not an error here.
// A transport failure from submit aborts immediately.
func (p RetryPolicy) Do(ctx context.Context, submit func(context.Context) (*Response, error)) (*Response, error) {
	var resp *Response
	for attempt := 0; attempt < p.MaxAttempts; attempt++ {
		if attempt > 0 {
			if err := sleep(ctx, p.Backoff(attempt-1)); err != nil {
				return nil, err
			}
		}
		var err error
		resp, err = submit(ctx)
		if err != nil {
			return nil, err
		}
		if p.Stop(resp) {
			return resp, nil
		}
	}
	return resp, nil
}

// sleep waits for d or until the context is cancelled.
func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
