package records

import (
	"context"

	"github.com/google/uuid"
)

//go:generate mockgen -source=store.go -destination=mocks/store_mock.go -package=mocks

// Store persists agent records. Implementations return sentinel.ErrNotFound
// for lookups and deletes that match nothing.
type Store interface {
	SaveWallet(ctx context.Context, wallet WalletRecord) error
	GetWallet(ctx context.Context, id uuid.UUID) (WalletRecord, error)
	ListWallets(ctx context.Context) ([]WalletRecord, error)
	DeleteWallet(ctx context.Context, id uuid.UUID) error

	SaveConnection(ctx context.Context, conn ConnectionRecord) error
	GetConnection(ctx context.Context, id uuid.UUID) (ConnectionRecord, error)
	ListConnections(ctx context.Context) ([]ConnectionRecord, error)
	DeleteConnection(ctx context.Context, id uuid.UUID) error

	SaveClaim(ctx context.Context, claim ClaimRecord) error
	GetClaim(ctx context.Context, id uuid.UUID) (ClaimRecord, error)
	ListClaims(ctx context.Context) ([]ClaimRecord, error)
	DeleteClaim(ctx context.Context, id uuid.UUID) error

	SaveClaimOffer(ctx context.Context, offer ClaimOfferRecord) error
	GetClaimOffer(ctx context.Context, id uuid.UUID) (ClaimOfferRecord, error)
	ListClaimOffers(ctx context.Context) ([]ClaimOfferRecord, error)
	DeleteClaimOffer(ctx context.Context, id uuid.UUID) error
}
