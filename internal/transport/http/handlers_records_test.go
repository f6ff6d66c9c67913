package httptransport

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"identitychain/internal/records"
	recordmocks "identitychain/internal/records/mocks"
)

type RecordsHandlerSuite struct {
	suite.Suite
	router http.Handler
	store  *records.InMemoryStore
}

func (s *RecordsHandlerSuite) SetupTest() {
	s.store = records.NewInMemoryStore()
	h := NewHandler(nil, s.store, slog.Default())
	s.router = NewRouter(h, slog.Default(), RouterConfig{})
}

func TestRecordsHandlerSuite(t *testing.T) {
	suite.Run(t, new(RecordsHandlerSuite))
}

func (s *RecordsHandlerSuite) TestWalletLifecycle() {
	rec, body := doJSON(s.T(), s.router, http.MethodPost, "/wallets", map[string]any{
		"pool_name": "sandbox",
		"name":      "issuer-wallet",
		"config":    map[string]any{"freshness_time": 0},
	})
	s.Require().Equal(http.StatusCreated, rec.Code)

	var id string
	s.Require().NoError(json.Unmarshal(body["id"], &id))
	s.Require().NotEmpty(id)

	rec, body = doJSON(s.T(), s.router, http.MethodGet, "/wallets/"+id, nil)
	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`"issuer-wallet"`, string(body["name"]))

	rec, body = doJSON(s.T(), s.router, http.MethodGet, "/wallets", nil)
	s.Equal(http.StatusOK, rec.Code)

	var wallets []records.WalletRecord
	s.Require().NoError(json.Unmarshal(body["wallets"], &wallets))
	s.Len(wallets, 1)

	rec, _ = doJSON(s.T(), s.router, http.MethodDelete, "/wallets/"+id, nil)
	s.Equal(http.StatusNoContent, rec.Code)

	rec, body = doJSON(s.T(), s.router, http.MethodGet, "/wallets/"+id, nil)
	s.Equal(http.StatusNotFound, rec.Code)
	s.JSONEq(`"not_found"`, string(body["error"]))
}

func (s *RecordsHandlerSuite) TestCreateWalletValidation() {
	rec, body := doJSON(s.T(), s.router, http.MethodPost, "/wallets", map[string]any{
		"name": "no-pool",
	})
	s.Equal(http.StatusBadRequest, rec.Code)
	s.JSONEq(`"invalid_input"`, string(body["error"]))
}

func (s *RecordsHandlerSuite) TestConnectionValidation() {
	rec, _ := doJSON(s.T(), s.router, http.MethodPost, "/connections", map[string]any{
		"url": "not a url",
	})
	s.Equal(http.StatusBadRequest, rec.Code)

	rec, body := doJSON(s.T(), s.router, http.MethodPost, "/connections", map[string]any{
		"url": "http://peer-agent:5000",
	})
	s.Equal(http.StatusCreated, rec.Code)
	s.JSONEq(`"http://peer-agent:5000"`, string(body["url"]))
}

func (s *RecordsHandlerSuite) TestClaimOfferLifecycle() {
	rec, body := doJSON(s.T(), s.router, http.MethodPost, "/claim-offers", map[string]any{
		"nid":           "199003011234",
		"schema_seq_no": 12,
	})
	s.Require().Equal(http.StatusCreated, rec.Code)

	var id string
	s.Require().NoError(json.Unmarshal(body["id"], &id))

	rec, body = doJSON(s.T(), s.router, http.MethodGet, "/claim-offers/"+id, nil)
	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`12`, string(body["schema_seq_no"]))
}

func (s *RecordsHandlerSuite) TestClaimOfferRequiresSchemaSeqNo() {
	rec, _ := doJSON(s.T(), s.router, http.MethodPost, "/claim-offers", map[string]any{
		"nid": "199003011234",
	})
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *RecordsHandlerSuite) TestInvalidUUID() {
	rec, _ := doJSON(s.T(), s.router, http.MethodGet, "/claims/not-a-uuid", nil)
	s.Equal(http.StatusBadRequest, rec.Code)
}

func TestRecordsHandler_StoreFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockStore := recordmocks.NewMockStore(ctrl)
	mockStore.EXPECT().
		SaveClaim(gomock.Any(), gomock.Any()).
		Return(errors.New("connection refused"))

	h := NewHandler(nil, mockStore, slog.Default())
	router := NewRouter(h, slog.Default(), RouterConfig{})

	rec, body := doJSON(t, router, http.MethodPost, "/claims", map[string]any{
		"claim_object": map[string]any{"values": map[string]string{"name": "alice"}},
	})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `"internal_error"`, string(body["error"]))
}

func TestRecordsHandler_GetMissingReturnsNotFound(t *testing.T) {
	h := NewHandler(nil, records.NewInMemoryStore(), slog.Default())
	router := NewRouter(h, slog.Default(), RouterConfig{})

	rec, body := doJSON(t, router, http.MethodGet, "/connections/"+uuid.NewString(), nil)

	require.Equal(t, http.StatusNotFound, rec.Code)
	require.JSONEq(t, `"not_found"`, string(body["error"]))
}
