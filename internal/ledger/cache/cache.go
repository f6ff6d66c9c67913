package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"identitychain/internal/ledger"
)

// Redis key prefixes for cached ledger entities.
const (
	schemaKeyPrefix  = "ledger:schema:"
	credDefKeyPrefix = "ledger:creddef:"
)

// RedisEntityCache caches schemas and credential definitions in Redis.
// Ledger entities are immutable, so entries never need invalidation; the TTL
// only bounds memory. Any Redis failure is treated as a miss and logged at
// debug level, never surfaced to the read pipeline.
type RedisEntityCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

// Option configures the cache.
type Option func(*RedisEntityCache)

// WithTTL bounds entry lifetime. Zero means no expiry.
func WithTTL(ttl time.Duration) Option {
	return func(c *RedisEntityCache) { c.ttl = ttl }
}

// WithLogger attaches a structured logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *RedisEntityCache) { c.logger = l }
}

// New constructs a Redis-backed entity cache.
func New(client *redis.Client, opts ...Option) *RedisEntityCache {
	c := &RedisEntityCache{client: client}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = slog.Default()
	}
	return c
}

func (c *RedisEntityCache) Schema(ctx context.Context, id string) (*ledger.Schema, bool) {
	var schema ledger.Schema
	if !c.get(ctx, schemaKeyPrefix+id, &schema) {
		return nil, false
	}
	return &schema, true
}

func (c *RedisEntityCache) PutSchema(ctx context.Context, id string, schema *ledger.Schema) {
	c.put(ctx, schemaKeyPrefix+id, schema)
}

func (c *RedisEntityCache) CredDef(ctx context.Context, id string) (*ledger.CredentialDefinition, bool) {
	var credDef ledger.CredentialDefinition
	if !c.get(ctx, credDefKeyPrefix+id, &credDef) {
		return nil, false
	}
	return &credDef, true
}

func (c *RedisEntityCache) PutCredDef(ctx context.Context, id string, credDef *ledger.CredentialDefinition) {
	c.put(ctx, credDefKeyPrefix+id, credDef)
}

func (c *RedisEntityCache) get(ctx context.Context, key string, dest any) bool {
	payload, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false
	}
	if err != nil {
		c.logger.DebugContext(ctx, "entity cache read failed", "key", key, "error", err)
		return false
	}
	if err := json.Unmarshal(payload, dest); err != nil {
		c.logger.DebugContext(ctx, "entity cache entry corrupt", "key", key, "error", err)
		return false
	}
	return true
}

func (c *RedisEntityCache) put(ctx context.Context, key string, value any) {
	payload, err := json.Marshal(value)
	if err != nil {
		c.logger.DebugContext(ctx, "entity cache encode failed", "key", key, "error", err)
		return
	}
	if err := c.client.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		c.logger.DebugContext(ctx, "entity cache write failed", "key", key, "error", err)
	}
}

// Interface check against the gateway's cache port.
var _ ledger.EntityCache = (*RedisEntityCache)(nil)
