package ledger

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"identitychain/internal/ledger/metrics"
)

// EntityCache caches immutable ledger entities so repeat reads skip the pool.
// Misses are reported as (nil, false); cache failures are treated as misses,
// never surfaced to callers.
type EntityCache interface {
	Schema(ctx context.Context, id string) (*Schema, bool)
	PutSchema(ctx context.Context, id string, schema *Schema)
	CredDef(ctx context.Context, id string) (*CredentialDefinition, bool)
	PutCredDef(ctx context.Context, id string, credDef *CredentialDefinition)
}

// WriteObserver is notified after each ledger write that the pool accepted.
// The audit pipeline hangs off this port.
type WriteObserver interface {
	ObserveWrite(ctx context.Context, txn, submitterDID, target string)
}

// Gateway is the pool ledger gateway: it builds ledger requests through the
// SDK, submits them over the open pool connection, applies the read retry
// policy, and translates node rejections into a uniform error. Route handlers
// talk to the ledger only through this type.
//
// The pool handle is established once at startup and read-only afterwards, so
// Gateway is safe for concurrent use without locking.
type Gateway struct {
	sdk      Client
	pool     *Pool
	retry    RetryPolicy
	cache    EntityCache
	observer WriteObserver
	metrics  *metrics.Metrics
	logger   *slog.Logger
	tracer   trace.Tracer
}

// Option configures optional gateway collaborators.
type Option func(*Gateway)

// WithRetryPolicy overrides the read retry policy.
func WithRetryPolicy(p RetryPolicy) Option {
	return func(g *Gateway) { g.retry = p }
}

// WithCache plugs in an immutable entity cache for schema and credential
// definition reads.
func WithCache(c EntityCache) Option {
	return func(g *Gateway) { g.cache = c }
}

// WithWriteObserver registers a sink for accepted ledger writes.
func WithWriteObserver(o WriteObserver) Option {
	return func(g *Gateway) { g.observer = o }
}

// WithMetrics attaches Prometheus instruments.
func WithMetrics(m *metrics.Metrics) Option {
	return func(g *Gateway) { g.metrics = m }
}

// WithLogger attaches a structured logger.
func WithLogger(l *slog.Logger) Option {
	return func(g *Gateway) { g.logger = l }
}

// WithTracer overrides the OpenTelemetry tracer, mainly for tests.
func WithTracer(t trace.Tracer) Option {
	return func(g *Gateway) { g.tracer = t }
}

// New builds a gateway over an SDK client and a pool. The pool does not have
// to be open yet; operations fail with ErrPoolNotOpen until it is.
func New(sdk Client, pool *Pool, opts ...Option) *Gateway {
	g := &Gateway{
		sdk:   sdk,
		pool:  pool,
		retry: DefaultRetryPolicy(),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.logger == nil {
		g.logger = slog.Default()
	}
	if g.tracer == nil {
		g.tracer = otel.Tracer("identitychain/ledger")
	}
	return g
}
