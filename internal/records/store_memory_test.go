package records

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"identitychain/pkg/sentinel"
)

type MemoryStoreSuite struct {
	suite.Suite
	store *InMemoryStore
	ctx   context.Context
}

func (s *MemoryStoreSuite) SetupTest() {
	s.store = NewInMemoryStore()
	s.ctx = context.Background()
}

func TestMemoryStoreSuite(t *testing.T) {
	suite.Run(t, new(MemoryStoreSuite))
}

// ---------------------------------------------------------------------------
// Wallets
// ---------------------------------------------------------------------------

func (s *MemoryStoreSuite) TestWalletRoundTrip() {
	wallet := WalletRecord{
		ID:          uuid.New(),
		PoolName:    "sandbox",
		Name:        "issuer-wallet",
		Type:        "default",
		Config:      json.RawMessage(`{"freshness_time":0}`),
		Credentials: json.RawMessage(`{"key":"wallet-key"}`),
		CreatedAt:   time.Now(),
	}
	s.Require().NoError(s.store.SaveWallet(s.ctx, wallet))

	got, err := s.store.GetWallet(s.ctx, wallet.ID)
	s.Require().NoError(err)
	s.Equal(wallet.Name, got.Name)
	s.JSONEq(`{"freshness_time":0}`, string(got.Config))
}

func (s *MemoryStoreSuite) TestWalletNotFound() {
	_, err := s.store.GetWallet(s.ctx, uuid.New())
	s.ErrorIs(err, sentinel.ErrNotFound)

	err = s.store.DeleteWallet(s.ctx, uuid.New())
	s.ErrorIs(err, sentinel.ErrNotFound)
}

func (s *MemoryStoreSuite) TestListWalletsOrderedByCreation() {
	base := time.Now()
	second := WalletRecord{ID: uuid.New(), Name: "second", CreatedAt: base.Add(time.Minute)}
	first := WalletRecord{ID: uuid.New(), Name: "first", CreatedAt: base}
	s.Require().NoError(s.store.SaveWallet(s.ctx, second))
	s.Require().NoError(s.store.SaveWallet(s.ctx, first))

	wallets, err := s.store.ListWallets(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(wallets, 2)
	s.Equal("first", wallets[0].Name)
	s.Equal("second", wallets[1].Name)
}

func (s *MemoryStoreSuite) TestDeleteWallet() {
	wallet := WalletRecord{ID: uuid.New(), Name: "w", CreatedAt: time.Now()}
	s.Require().NoError(s.store.SaveWallet(s.ctx, wallet))
	s.Require().NoError(s.store.DeleteWallet(s.ctx, wallet.ID))

	_, err := s.store.GetWallet(s.ctx, wallet.ID)
	s.ErrorIs(err, sentinel.ErrNotFound)
}

// ---------------------------------------------------------------------------
// Connections, claims, claim offers
// ---------------------------------------------------------------------------

func (s *MemoryStoreSuite) TestConnectionRoundTrip() {
	conn := ConnectionRecord{ID: uuid.New(), URL: "http://peer-agent:5000", CreatedAt: time.Now()}
	s.Require().NoError(s.store.SaveConnection(s.ctx, conn))

	got, err := s.store.GetConnection(s.ctx, conn.ID)
	s.Require().NoError(err)
	s.Equal(conn.URL, got.URL)

	s.Require().NoError(s.store.DeleteConnection(s.ctx, conn.ID))
	_, err = s.store.GetConnection(s.ctx, conn.ID)
	s.ErrorIs(err, sentinel.ErrNotFound)
}

func (s *MemoryStoreSuite) TestClaimRoundTrip() {
	claim := ClaimRecord{
		ID:          uuid.New(),
		ClaimObject: json.RawMessage(`{"values":{"name":"alice"}}`),
		CreatedAt:   time.Now(),
	}
	s.Require().NoError(s.store.SaveClaim(s.ctx, claim))

	got, err := s.store.GetClaim(s.ctx, claim.ID)
	s.Require().NoError(err)
	s.JSONEq(string(claim.ClaimObject), string(got.ClaimObject))
}

func (s *MemoryStoreSuite) TestClaimOfferRoundTrip() {
	offer := ClaimOfferRecord{
		ID:          uuid.New(),
		NID:         "199003011234",
		SchemaSeqNo: 12,
		SeqNo:       3,
		CreatedAt:   time.Now(),
	}
	s.Require().NoError(s.store.SaveClaimOffer(s.ctx, offer))

	got, err := s.store.GetClaimOffer(s.ctx, offer.ID)
	s.Require().NoError(err)
	s.Equal(int64(12), got.SchemaSeqNo)

	offers, err := s.store.ListClaimOffers(s.ctx)
	s.Require().NoError(err)
	s.Len(offers, 1)
}

func (s *MemoryStoreSuite) TestSaveOverwritesExisting() {
	id := uuid.New()
	s.Require().NoError(s.store.SaveConnection(s.ctx, ConnectionRecord{ID: id, URL: "http://old"}))
	s.Require().NoError(s.store.SaveConnection(s.ctx, ConnectionRecord{ID: id, URL: "http://new"}))

	got, err := s.store.GetConnection(s.ctx, id)
	s.Require().NoError(err)
	s.Equal("http://new", got.URL)
}
