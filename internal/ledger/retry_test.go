package ledger

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// zero backoff keeps the exhaustion cases fast; the policy semantics under
// test do not depend on the delay value.
func testPolicy() RetryPolicy {
	p := DefaultRetryPolicy()
	p.Backoff = func(int) time.Duration { return 0 }
	return p
}

func replyWithData() *Response {
	return &Response{Op: OpReply, Result: json.RawMessage(`{"data":{"seqNo":12}}`)}
}

func replyWithoutData() *Response {
	return &Response{Op: OpReply, Result: json.RawMessage(`{"data":null}`)}
}

func TestRetryPolicy_StopsOnDataAtAttemptK(t *testing.T) {
	for k := 1; k <= 3; k++ {
		calls := 0
		want := replyWithData()
		resp, err := testPolicy().Do(context.Background(), func(context.Context) (*Response, error) {
			calls++
			if calls == k {
				return want, nil
			}
			return replyWithoutData(), nil
		})
		require.NoError(t, err)
		assert.Equal(t, k, calls, "attempt count for k=%d", k)
		assert.Same(t, want, resp)
	}
}

func TestRetryPolicy_ExhaustsAllAttempts(t *testing.T) {
	calls := 0
	last := replyWithoutData()
	resp, err := testPolicy().Do(context.Background(), func(context.Context) (*Response, error) {
		calls++
		return last, nil
	})

	require.NoError(t, err)
	assert.Equal(t, 3, calls)
	// Exhaustion hands back the last response untouched; the caller checks
	// for missing data itself.
	assert.Same(t, last, resp)
	assert.False(t, resp.HasData())
}

func TestRetryPolicy_RejectionStopsImmediately(t *testing.T) {
	calls := 0
	rejected := &Response{Op: OpReject, Reason: "client request invalid"}
	resp, err := testPolicy().Do(context.Background(), func(context.Context) (*Response, error) {
		calls++
		return rejected, nil
	})

	require.NoError(t, err)
	assert.Equal(t, 1, calls)
	assert.Same(t, rejected, resp)
}

func TestRetryPolicy_SubmitErrorAborts(t *testing.T) {
	calls := 0
	boom := errors.New("pool timeout")
	_, err := testPolicy().Do(context.Background(), func(context.Context) (*Response, error) {
		calls++
		return nil, boom
	})

	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, calls)
}

func TestRetryPolicy_BackoffIsLinear(t *testing.T) {
	p := DefaultRetryPolicy()
	assert.Equal(t, time.Duration(0), p.Backoff(0))
	assert.Equal(t, 500*time.Millisecond, p.Backoff(1))
	assert.Equal(t, time.Second, p.Backoff(2))
}

func TestRetryPolicy_CancelledContextStopsWaiting(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	p := DefaultRetryPolicy()
	p.Backoff = func(int) time.Duration { return time.Hour }

	calls := 0
	_, err := p.Do(ctx, func(context.Context) (*Response, error) {
		calls++
		cancel()
		return replyWithoutData(), nil
	})

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, calls)
}
