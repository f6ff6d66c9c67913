package records

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"identitychain/pkg/sentinel"
)

// InMemoryStore keeps records in maps. It backs unit tests and single-node
// deployments without PostgreSQL.
type InMemoryStore struct {
	mu          sync.RWMutex
	wallets     map[uuid.UUID]WalletRecord
	connections map[uuid.UUID]ConnectionRecord
	claims      map[uuid.UUID]ClaimRecord
	claimOffers map[uuid.UUID]ClaimOfferRecord
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		wallets:     make(map[uuid.UUID]WalletRecord),
		connections: make(map[uuid.UUID]ConnectionRecord),
		claims:      make(map[uuid.UUID]ClaimRecord),
		claimOffers: make(map[uuid.UUID]ClaimOfferRecord),
	}
}

func (s *InMemoryStore) SaveWallet(_ context.Context, wallet WalletRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.wallets[wallet.ID] = wallet
	return nil
}

func (s *InMemoryStore) GetWallet(_ context.Context, id uuid.UUID) (WalletRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	wallet, ok := s.wallets[id]
	if !ok {
		return WalletRecord{}, sentinel.ErrNotFound
	}
	return wallet, nil
}

func (s *InMemoryStore) ListWallets(_ context.Context) ([]WalletRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]WalletRecord, 0, len(s.wallets))
	for _, w := range s.wallets {
		out = append(out, w)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (s *InMemoryStore) DeleteWallet(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.wallets[id]; !ok {
		return sentinel.ErrNotFound
	}
	delete(s.wallets, id)
	return nil
}

func (s *InMemoryStore) SaveConnection(_ context.Context, conn ConnectionRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.connections[conn.ID] = conn
	return nil
}

func (s *InMemoryStore) GetConnection(_ context.Context, id uuid.UUID) (ConnectionRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	conn, ok := s.connections[id]
	if !ok {
		return ConnectionRecord{}, sentinel.ErrNotFound
	}
	return conn, nil
}

func (s *InMemoryStore) ListConnections(_ context.Context) ([]ConnectionRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]ConnectionRecord, 0, len(s.connections))
	for _, c := range s.connections {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (s *InMemoryStore) DeleteConnection(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.connections[id]; !ok {
		return sentinel.ErrNotFound
	}
	delete(s.connections, id)
	return nil
}

func (s *InMemoryStore) SaveClaim(_ context.Context, claim ClaimRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.claims[claim.ID] = claim
	return nil
}

func (s *InMemoryStore) GetClaim(_ context.Context, id uuid.UUID) (ClaimRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	claim, ok := s.claims[id]
	if !ok {
		return ClaimRecord{}, sentinel.ErrNotFound
	}
	return claim, nil
}

func (s *InMemoryStore) ListClaims(_ context.Context) ([]ClaimRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]ClaimRecord, 0, len(s.claims))
	for _, c := range s.claims {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (s *InMemoryStore) DeleteClaim(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.claims[id]; !ok {
		return sentinel.ErrNotFound
	}
	delete(s.claims, id)
	return nil
}

func (s *InMemoryStore) SaveClaimOffer(_ context.Context, offer ClaimOfferRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.claimOffers[offer.ID] = offer
	return nil
}

func (s *InMemoryStore) GetClaimOffer(_ context.Context, id uuid.UUID) (ClaimOfferRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	offer, ok := s.claimOffers[id]
	if !ok {
		return ClaimOfferRecord{}, sentinel.ErrNotFound
	}
	return offer, nil
}

func (s *InMemoryStore) ListClaimOffers(_ context.Context) ([]ClaimOfferRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]ClaimOfferRecord, 0, len(s.claimOffers))
	for _, o := range s.claimOffers {
		out = append(out, o)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (s *InMemoryStore) DeleteClaimOffer(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.claimOffers[id]; !ok {
		return sentinel.ErrNotFound
	}
	delete(s.claimOffers, id)
	return nil
}
