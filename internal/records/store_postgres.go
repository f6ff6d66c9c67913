package records

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"identitychain/pkg/sentinel"
)

// PostgresStore persists agent records in PostgreSQL.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgres constructs a PostgreSQL-backed record store.
func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

const postgresSchema = `
CREATE TABLE IF NOT EXISTS wallets (
	id UUID PRIMARY KEY,
	pool_name TEXT NOT NULL,
	name TEXT NOT NULL,
	type TEXT NOT NULL DEFAULT '',
	config JSONB,
	credentials JSONB,
	created_at TIMESTAMPTZ NOT NULL
);
CREATE TABLE IF NOT EXISTS connections (
	id UUID PRIMARY KEY,
	url TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL
);
CREATE TABLE IF NOT EXISTS claims (
	id UUID PRIMARY KEY,
	claim_object JSONB NOT NULL,
	created_at TIMESTAMPTZ NOT NULL
);
CREATE TABLE IF NOT EXISTS claim_offers (
	id UUID PRIMARY KEY,
	nid TEXT NOT NULL,
	schema_seq_no BIGINT NOT NULL,
	seq_no BIGINT NOT NULL DEFAULT 0,
	created_at TIMESTAMPTZ NOT NULL
);`

// Migrate creates the record tables if they do not exist.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, postgresSchema); err != nil {
		return fmt.Errorf("migrate record tables: %w", err)
	}
	return nil
}

func (s *PostgresStore) SaveWallet(ctx context.Context, wallet WalletRecord) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO wallets (id, pool_name, name, type, config, credentials, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO UPDATE SET
			pool_name = EXCLUDED.pool_name,
			name = EXCLUDED.name,
			type = EXCLUDED.type,
			config = EXCLUDED.config,
			credentials = EXCLUDED.credentials`,
		wallet.ID, wallet.PoolName, wallet.Name, wallet.Type,
		nullJSON(wallet.Config), nullJSON(wallet.Credentials), wallet.CreatedAt)
	if err != nil {
		return fmt.Errorf("save wallet: %w", err)
	}
	return nil
}

func (s *PostgresStore) GetWallet(ctx context.Context, id uuid.UUID) (WalletRecord, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, pool_name, name, type, config, credentials, created_at
		FROM wallets WHERE id = $1`, id)
	var w WalletRecord
	var config, credentials []byte
	err := row.Scan(&w.ID, &w.PoolName, &w.Name, &w.Type, &config, &credentials, &w.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return WalletRecord{}, sentinel.ErrNotFound
		}
		return WalletRecord{}, fmt.Errorf("get wallet: %w", err)
	}
	w.Config = config
	w.Credentials = credentials
	return w, nil
}

func (s *PostgresStore) ListWallets(ctx context.Context) ([]WalletRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, pool_name, name, type, config, credentials, created_at
		FROM wallets ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("list wallets: %w", err)
	}
	defer rows.Close()

	var out []WalletRecord
	for rows.Next() {
		var w WalletRecord
		var config, credentials []byte
		if err := rows.Scan(&w.ID, &w.PoolName, &w.Name, &w.Type, &config, &credentials, &w.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan wallet: %w", err)
		}
		w.Config = config
		w.Credentials = credentials
		out = append(out, w)
	}
	return out, rows.Err()
}

func (s *PostgresStore) DeleteWallet(ctx context.Context, id uuid.UUID) error {
	return s.deleteByID(ctx, "wallets", id)
}

func (s *PostgresStore) SaveConnection(ctx context.Context, conn ConnectionRecord) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO connections (id, url, created_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (id) DO UPDATE SET url = EXCLUDED.url`,
		conn.ID, conn.URL, conn.CreatedAt)
	if err != nil {
		return fmt.Errorf("save connection: %w", err)
	}
	return nil
}

func (s *PostgresStore) GetConnection(ctx context.Context, id uuid.UUID) (ConnectionRecord, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, url, created_at FROM connections WHERE id = $1`, id)
	var c ConnectionRecord
	err := row.Scan(&c.ID, &c.URL, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ConnectionRecord{}, sentinel.ErrNotFound
		}
		return ConnectionRecord{}, fmt.Errorf("get connection: %w", err)
	}
	return c, nil
}

func (s *PostgresStore) ListConnections(ctx context.Context) ([]ConnectionRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, url, created_at FROM connections ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("list connections: %w", err)
	}
	defer rows.Close()

	var out []ConnectionRecord
	for rows.Next() {
		var c ConnectionRecord
		if err := rows.Scan(&c.ID, &c.URL, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan connection: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (s *PostgresStore) DeleteConnection(ctx context.Context, id uuid.UUID) error {
	return s.deleteByID(ctx, "connections", id)
}

func (s *PostgresStore) SaveClaim(ctx context.Context, claim ClaimRecord) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO claims (id, claim_object, created_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (id) DO UPDATE SET claim_object = EXCLUDED.claim_object`,
		claim.ID, []byte(claim.ClaimObject), claim.CreatedAt)
	if err != nil {
		return fmt.Errorf("save claim: %w", err)
	}
	return nil
}

func (s *PostgresStore) GetClaim(ctx context.Context, id uuid.UUID) (ClaimRecord, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, claim_object, created_at FROM claims WHERE id = $1`, id)
	var c ClaimRecord
	var claimObject []byte
	err := row.Scan(&c.ID, &claimObject, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ClaimRecord{}, sentinel.ErrNotFound
		}
		return ClaimRecord{}, fmt.Errorf("get claim: %w", err)
	}
	c.ClaimObject = claimObject
	return c, nil
}

func (s *PostgresStore) ListClaims(ctx context.Context) ([]ClaimRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, claim_object, created_at FROM claims ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("list claims: %w", err)
	}
	defer rows.Close()

	var out []ClaimRecord
	for rows.Next() {
		var c ClaimRecord
		var claimObject []byte
		if err := rows.Scan(&c.ID, &claimObject, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan claim: %w", err)
		}
		c.ClaimObject = claimObject
		out = append(out, c)
	}
	return out, rows.Err()
}

func (s *PostgresStore) DeleteClaim(ctx context.Context, id uuid.UUID) error {
	return s.deleteByID(ctx, "claims", id)
}

func (s *PostgresStore) SaveClaimOffer(ctx context.Context, offer ClaimOfferRecord) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO claim_offers (id, nid, schema_seq_no, seq_no, created_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE SET
			nid = EXCLUDED.nid,
			schema_seq_no = EXCLUDED.schema_seq_no,
			seq_no = EXCLUDED.seq_no`,
		offer.ID, offer.NID, offer.SchemaSeqNo, offer.SeqNo, offer.CreatedAt)
	if err != nil {
		return fmt.Errorf("save claim offer: %w", err)
	}
	return nil
}

func (s *PostgresStore) GetClaimOffer(ctx context.Context, id uuid.UUID) (ClaimOfferRecord, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, nid, schema_seq_no, seq_no, created_at
		FROM claim_offers WHERE id = $1`, id)
	var o ClaimOfferRecord
	err := row.Scan(&o.ID, &o.NID, &o.SchemaSeqNo, &o.SeqNo, &o.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ClaimOfferRecord{}, sentinel.ErrNotFound
		}
		return ClaimOfferRecord{}, fmt.Errorf("get claim offer: %w", err)
	}
	return o, nil
}

func (s *PostgresStore) ListClaimOffers(ctx context.Context) ([]ClaimOfferRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, nid, schema_seq_no, seq_no, created_at
		FROM claim_offers ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("list claim offers: %w", err)
	}
	defer rows.Close()

	var out []ClaimOfferRecord
	for rows.Next() {
		var o ClaimOfferRecord
		if err := rows.Scan(&o.ID, &o.NID, &o.SchemaSeqNo, &o.SeqNo, &o.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan claim offer: %w", err)
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

func (s *PostgresStore) DeleteClaimOffer(ctx context.Context, id uuid.UUID) error {
	return s.deleteByID(ctx, "claim_offers", id)
}

func (s *PostgresStore) deleteByID(ctx context.Context, table string, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM `+table+` WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete from %s: %w", table, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete from %s: %w", table, err)
	}
	if n == 0 {
		return sentinel.ErrNotFound
	}
	return nil
}

func nullJSON(raw []byte) any {
	if len(raw) == 0 {
		return nil
	}
	return raw
}
