package records

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// WalletRecord tracks an agent wallet registered against a pool. Config and
// Credentials are kept opaque; the agent stores them for the SDK, it does not
// interpret them.
type WalletRecord struct {
	ID          uuid.UUID       `json:"id"`
	PoolName    string          `json:"pool_name"`
	Name        string          `json:"name"`
	Type        string          `json:"type,omitempty"`
	Config      json.RawMessage `json:"config,omitempty"`
	Credentials json.RawMessage `json:"credentials,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}

// ConnectionRecord tracks a known peer agent endpoint.
type ConnectionRecord struct {
	ID        uuid.UUID `json:"id"`
	URL       string    `json:"url"`
	CreatedAt time.Time `json:"created_at"`
}

// ClaimRecord stores an issued claim as the SDK produced it.
type ClaimRecord struct {
	ID          uuid.UUID       `json:"id"`
	ClaimObject json.RawMessage `json:"claim_object"`
	CreatedAt   time.Time       `json:"created_at"`
}

// ClaimOfferRecord tracks a claim offer extended to a prover. NID identifies
// the prover, SchemaSeqNo the schema the offer is against.
type ClaimOfferRecord struct {
	ID          uuid.UUID `json:"id"`
	NID         string    `json:"nid"`
	SchemaSeqNo int64     `json:"schema_seq_no"`
	SeqNo       int64     `json:"seq_no,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
