package config

import (
	"os"
	"strconv"
	"time"
)

// Config captures everything the agent reads from the environment so main
// stays lean.
type Config struct {
	Addr          string
	JWTSigningKey string

	// SDKBridgeURL locates the ledger SDK bridge sidecar.
	SDKBridgeURL string

	Pool  PoolConfig
	Redis RedisConfig
	Kafka KafkaConfig

	// PostgresDSN enables the Postgres record stores; empty keeps the
	// in-memory stores.
	PostgresDSN string

	// EntityCacheTTL bounds cached ledger entity lifetime.
	EntityCacheTTL time.Duration
}

// PoolConfig describes the ledger pool connection.
type PoolConfig struct {
	Name        string
	GenesisPath string
	// PoolIP is the bootstrap peer; when set and GenesisPath is absent the
	// genesis transaction set is fetched from it.
	PoolIP   string
	InfoPort int
}

// RedisConfig configures the entity cache backend. Empty URL disables it.
type RedisConfig struct {
	URL          string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// KafkaConfig configures the audit event publisher. Empty Brokers disables it.
type KafkaConfig struct {
	Brokers    string
	AuditTopic string
}

// FromEnv builds the agent configuration from environment variables.
func FromEnv() Config {
	return Config{
		Addr:          envOr("AGENT_ADDR", ":8080"),
		JWTSigningKey: envOr("JWT_SIGNING_KEY", "dev-secret-key-change-in-production"),
		SDKBridgeURL:  envOr("SDK_BRIDGE_URL", "http://127.0.0.1:8090"),
		Pool: PoolConfig{
			Name:        envOr("POOL_NAME", "sandbox"),
			GenesisPath: envOr("POOL_GENESIS_PATH", "/var/lib/identitychain/pool_transactions_genesis"),
			PoolIP:      os.Getenv("POOL_IP"),
			InfoPort:    envIntOr("POOL_INFO_PORT", 8001),
		},
		Redis: RedisConfig{
			URL:          os.Getenv("REDIS_URL"),
			PoolSize:     envIntOr("REDIS_POOL_SIZE", 10),
			MinIdleConns: envIntOr("REDIS_MIN_IDLE_CONNS", 2),
			DialTimeout:  5 * time.Second,
			ReadTimeout:  3 * time.Second,
			WriteTimeout: 3 * time.Second,
		},
		Kafka: KafkaConfig{
			Brokers:    os.Getenv("KAFKA_BROKERS"),
			AuditTopic: envOr("KAFKA_AUDIT_TOPIC", "identitychain.ledger.audit"),
		},
		PostgresDSN:    os.Getenv("POSTGRES_DSN"),
		EntityCacheTTL: envDurationOr("ENTITY_CACHE_TTL", 24*time.Hour),
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envIntOr(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envDurationOr(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
