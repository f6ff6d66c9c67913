package ledger

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"identitychain/internal/ledger/metrics"
)

// buildFunc produces a not-yet-submitted ledger request.
type buildFunc func(ctx context.Context) (Request, error)

// submitFunc sends a built request over the pool connection.
type submitFunc func(ctx context.Context, req Request) (*Response, error)

// execute is the single chokepoint every ledger interaction passes through:
// build the request, submit it, inspect the outcome. A REJECT or REQNACK
// becomes a RejectionError carrying the node's reason; any other response is
// returned unmodified.
func (g *Gateway) execute(ctx context.Context, txn string, build buildFunc, submit submitFunc) (*Response, error) {
	if g.pool.Handle() == HandleUnset {
		return nil, ErrPoolNotOpen
	}

	ctx, span := g.tracer.Start(ctx, "ledger."+txn,
		trace.WithAttributes(attribute.String("ledger.txn", txn)))
	defer span.End()

	start := time.Now()

	req, err := build(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("build %s request: %w", txn, err)
	}

	resp, err := submit(ctx, req)
	if err != nil {
		g.metrics.ObserveSubmission(txn, metrics.OutcomeError, time.Since(start))
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("submit %s request: %w", txn, err)
	}

	if resp.Rejected() {
		g.metrics.ObserveSubmission(txn, metrics.OutcomeRejected, time.Since(start))
		span.SetAttributes(attribute.String("ledger.op", resp.Op))
		span.SetStatus(codes.Error, resp.Reason)
		g.logger.WarnContext(ctx, "ledger rejected request",
			"txn", txn,
			"op", resp.Op,
			"reason", resp.Reason,
		)
		return nil, &RejectionError{Op: resp.Op, Reason: resp.Reason}
	}

	g.metrics.ObserveSubmission(txn, metrics.OutcomeReply, time.Since(start))
	return resp, nil
}

// readSubmit submits unsigned read requests under the retry policy. Reads may
// hit a node that has not replicated a just-written transaction yet; the
// policy absorbs that window.
func (g *Gateway) readSubmit() submitFunc {
	return func(ctx context.Context, req Request) (*Response, error) {
		attempts := 0
		resp, err := g.retry.Do(ctx, func(ctx context.Context) (*Response, error) {
			attempts++
			return g.sdk.SubmitRequest(ctx, g.pool.Handle(), req)
		})
		g.metrics.AddRetries(attempts - 1)
		return resp, err
	}
}

// writeSubmit signs and submits a write request. Writes run exactly once.
func (g *Gateway) writeSubmit(wallet WalletHandle, submitterDID string) submitFunc {
	return func(ctx context.Context, req Request) (*Response, error) {
		return g.sdk.SignAndSubmitRequest(ctx, g.pool.Handle(), wallet, submitterDID, req)
	}
}
