package ledger

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
)

// DefaultProtocolVersion is the ledger protocol version set before any pool
// configuration is created.
const DefaultProtocolVersion = 2

// PoolConfig describes one ledger pool.
type PoolConfig struct {
	// Name identifies the pool configuration, unique per process.
	Name string
	// GenesisPath points at the local genesis transaction file.
	GenesisPath string
	// PoolIP is the bootstrap peer address. When set and GenesisPath does
	// not exist, the genesis transaction set is fetched over HTTP.
	PoolIP string
	// InfoPort is the bootstrap peer's info port, 8001 by default.
	InfoPort int
	// ProtocolVersion overrides DefaultProtocolVersion when non-zero.
	ProtocolVersion int
}

// Pool owns the pool configuration and the open connection handle. The
// lifecycle is CreateConfig then Open; the handle is established once before
// the HTTP server starts serving and is read-only afterwards, so no locking
// guards it.
type Pool struct {
	cfg    PoolConfig
	sdk    Client
	http   *http.Client
	logger *slog.Logger

	genesisPath string
	handle      Handle
}

// PoolOption configures optional pool collaborators.
type PoolOption func(*Pool)

// WithHTTPClient overrides the client used for the genesis bootstrap fetch.
func WithHTTPClient(c *http.Client) PoolOption {
	return func(p *Pool) { p.http = c }
}

// WithPoolLogger attaches a structured logger.
func WithPoolLogger(l *slog.Logger) PoolOption {
	return func(p *Pool) { p.logger = l }
}

// NewPool constructs a pool in the unconfigured state.
func NewPool(sdk Client, cfg PoolConfig, opts ...PoolOption) *Pool {
	if cfg.InfoPort == 0 {
		cfg.InfoPort = DefaultInfoPort
	}
	if cfg.ProtocolVersion == 0 {
		cfg.ProtocolVersion = DefaultProtocolVersion
	}
	p := &Pool{
		cfg:    cfg,
		sdk:    sdk,
		handle: HandleUnset,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.http == nil {
		p.http = http.DefaultClient
	}
	if p.logger == nil {
		p.logger = slog.Default()
	}
	return p
}

// CreateConfig sets the ledger protocol version and registers the pool
// configuration with the SDK. When a bootstrap peer is configured and no
// local genesis file exists, the genesis transaction set is fetched first;
// a failed fetch is logged and the configured path is used as-is, so a
// missing file surfaces from the SDK call instead.
func (p *Pool) CreateConfig(ctx context.Context) error {
	if err := p.sdk.SetProtocolVersion(ctx, p.cfg.ProtocolVersion); err != nil {
		return fmt.Errorf("set protocol version: %w", err)
	}

	genesis := p.cfg.GenesisPath
	if p.cfg.PoolIP != "" {
		if _, err := os.Stat(genesis); os.IsNotExist(err) {
			fetched, err := p.fetchGenesis(ctx)
			if err != nil {
				p.logger.Warn("genesis fetch from bootstrap peer failed, using configured path",
					"pool_ip", p.cfg.PoolIP,
					"path", genesis,
					"error", err,
				)
			} else {
				p.logger.Info("fetched genesis transactions from bootstrap peer",
					"pool_ip", p.cfg.PoolIP,
					"path", fetched,
				)
				genesis = fetched
			}
		}
	}
	p.genesisPath = genesis

	if err := p.sdk.CreatePoolLedgerConfig(ctx, p.cfg.Name, genesis); err != nil {
		return fmt.Errorf("create pool ledger config %q: %w", p.cfg.Name, err)
	}
	return nil
}

// Open establishes the pool connection and stores the handle for the process
// lifetime.
func (p *Pool) Open(ctx context.Context) error {
	handle, err := p.sdk.OpenPoolLedger(ctx, p.cfg.Name)
	if err != nil {
		return fmt.Errorf("open pool ledger %q: %w", p.cfg.Name, err)
	}
	p.handle = handle
	p.logger.Info("pool ledger open", "pool", p.cfg.Name, "handle", int(handle))
	return nil
}

// Handle returns the open connection handle, or HandleUnset before Open
// succeeds.
func (p *Pool) Handle() Handle {
	return p.handle
}

// GenesisPath returns the genesis file the pool configuration was created
// from. Empty before CreateConfig.
func (p *Pool) GenesisPath() string {
	return p.genesisPath
}
