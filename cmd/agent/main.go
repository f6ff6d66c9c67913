package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus"

	"identitychain/internal/audit"
	"identitychain/internal/jwt_token"
	"identitychain/internal/ledger"
	"identitychain/internal/ledger/bridge"
	ledgercache "identitychain/internal/ledger/cache"
	ledgermetrics "identitychain/internal/ledger/metrics"
	"identitychain/internal/platform/config"
	"identitychain/internal/platform/httpserver"
	"identitychain/internal/platform/kafka/producer"
	"identitychain/internal/platform/logger"
	platformredis "identitychain/internal/platform/redis"
	"identitychain/internal/records"
	httptransport "identitychain/internal/transport/http"
)

// main wires high-level dependencies and keeps the server lifecycle small.
// Business logic lives in the internal packages.
func main() {
	cfg := config.FromEnv()
	log := logger.New()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sdk := bridge.New(cfg.SDKBridgeURL)

	pool := ledger.NewPool(sdk, ledger.PoolConfig{
		Name:        cfg.Pool.Name,
		GenesisPath: cfg.Pool.GenesisPath,
		PoolIP:      cfg.Pool.PoolIP,
		InfoPort:    cfg.Pool.InfoPort,
	}, ledger.WithPoolLogger(log))

	if err := pool.CreateConfig(ctx); err != nil {
		log.Error("pool configuration failed", "error", err)
		os.Exit(1)
	}
	if err := pool.Open(ctx); err != nil {
		log.Error("pool open failed", "error", err)
		os.Exit(1)
	}

	registry := prometheus.NewRegistry()
	gatewayMetrics := ledgermetrics.New(registry)

	gatewayOpts := []ledger.Option{
		ledger.WithLogger(log),
		ledger.WithMetrics(gatewayMetrics),
	}

	redisClient, err := platformredis.New(cfg.Redis)
	if err != nil {
		log.Error("redis connection failed", "error", err)
		os.Exit(1)
	}
	if redisClient != nil {
		defer redisClient.Close()
		cache := ledgercache.New(redisClient.Client,
			ledgercache.WithTTL(cfg.EntityCacheTTL),
			ledgercache.WithLogger(log),
		)
		gatewayOpts = append(gatewayOpts, ledger.WithCache(cache))
		log.Info("ledger entity cache enabled")
	}

	// Audit pipeline: observer -> inbox -> worker -> store (+Kafka).
	auditStore := audit.NewInMemoryStore()
	var publisherOpts []audit.PublisherOption
	if cfg.Kafka.Brokers != "" {
		kafkaProducer, err := producer.New(producer.Config{
			Brokers: cfg.Kafka.Brokers,
			Retries: 3,
		}, log)
		if err != nil {
			log.Error("kafka producer init failed", "error", err)
			os.Exit(1)
		}
		defer kafkaProducer.Close()
		publisherOpts = append(publisherOpts, audit.WithKafka(kafkaProducer, cfg.Kafka.AuditTopic))
		log.Info("audit kafka publisher enabled", "topic", cfg.Kafka.AuditTopic)
	}
	publisher := audit.NewPublisher(auditStore, log, publisherOpts...)

	auditInbox := make(chan audit.Event, 256)
	worker := audit.NewWorker(publisher, auditInbox)
	go func() {
		if err := worker.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			log.Error("audit worker stopped", "error", err)
		}
	}()
	gatewayOpts = append(gatewayOpts, ledger.WithWriteObserver(audit.NewObserver(auditInbox)))

	gateway := ledger.New(sdk, pool, gatewayOpts...)

	var recordStore records.Store = records.NewInMemoryStore()
	if cfg.PostgresDSN != "" {
		db, err := sql.Open("postgres", cfg.PostgresDSN)
		if err != nil {
			log.Error("postgres open failed", "error", err)
			os.Exit(1)
		}
		defer db.Close()
		pg := records.NewPostgres(db)
		if err := pg.Migrate(ctx); err != nil {
			log.Error("postgres migration failed", "error", err)
			os.Exit(1)
		}
		recordStore = pg
		log.Info("postgres record store enabled")
	}

	jwtService := jwttoken.NewJWTService(cfg.JWTSigningKey, "identitychain-agent", "identitychain")

	handler := httptransport.NewHandler(gateway, recordStore, log)
	router := httptransport.NewRouter(handler, log, httptransport.RouterConfig{
		Auth:     jwtService,
		Registry: registry,
		HealthFunc: func() bool {
			return pool.Handle() != ledger.HandleUnset
		},
	})

	srv := httpserver.New(cfg.Addr, router)

	go func() {
		log.Info("agent listening", "addr", cfg.Addr, "pool", cfg.Pool.Name)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
		os.Exit(1)
	}
}
