package httptransport

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/asaskevich/govalidator"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"identitychain/internal/records"
	"identitychain/pkg/httperrors"
)

// RecordStore is the slice of the record store the HTTP layer calls.
type RecordStore = records.Store

func idFromPath(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSONError(w, httperrors.CodeInvalidInput, "id must be a UUID", http.StatusBadRequest)
		return uuid.Nil, false
	}
	return id, true
}

// ---------------------------------------------------------------------------
// Wallets
// ---------------------------------------------------------------------------

type createWalletRequest struct {
	PoolName    string          `json:"pool_name"`
	Name        string          `json:"name"`
	Type        string          `json:"type"`
	Config      json.RawMessage `json:"config"`
	Credentials json.RawMessage `json:"credentials"`
}

func (h *Handler) handleCreateWallet(w http.ResponseWriter, r *http.Request) {
	var req createWalletRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, httperrors.CodeInvalidInput, "invalid request body", http.StatusBadRequest)
		return
	}
	if !govalidator.StringLength(req.PoolName, "1", "255") || !govalidator.StringLength(req.Name, "1", "255") {
		writeJSONError(w, httperrors.CodeInvalidInput, "pool_name and name are required", http.StatusBadRequest)
		return
	}

	wallet := records.WalletRecord{
		ID:          uuid.New(),
		PoolName:    req.PoolName,
		Name:        req.Name,
		Type:        req.Type,
		Config:      req.Config,
		Credentials: req.Credentials,
		CreatedAt:   time.Now().UTC(),
	}
	if err := h.records.SaveWallet(r.Context(), wallet); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, wallet)
}

func (h *Handler) handleListWallets(w http.ResponseWriter, r *http.Request) {
	wallets, err := h.records.ListWallets(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"wallets": wallets})
}

func (h *Handler) handleGetWallet(w http.ResponseWriter, r *http.Request) {
	id, ok := idFromPath(w, r)
	if !ok {
		return
	}
	wallet, err := h.records.GetWallet(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, wallet)
}

func (h *Handler) handleDeleteWallet(w http.ResponseWriter, r *http.Request) {
	id, ok := idFromPath(w, r)
	if !ok {
		return
	}
	if err := h.records.DeleteWallet(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ---------------------------------------------------------------------------
// Connections
// ---------------------------------------------------------------------------

type createConnectionRequest struct {
	URL string `json:"url"`
}

func (h *Handler) handleCreateConnection(w http.ResponseWriter, r *http.Request) {
	var req createConnectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, httperrors.CodeInvalidInput, "invalid request body", http.StatusBadRequest)
		return
	}
	if !govalidator.IsURL(req.URL) {
		writeJSONError(w, httperrors.CodeInvalidInput, "url must be a valid URL", http.StatusBadRequest)
		return
	}

	conn := records.ConnectionRecord{
		ID:        uuid.New(),
		URL:       req.URL,
		CreatedAt: time.Now().UTC(),
	}
	if err := h.records.SaveConnection(r.Context(), conn); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, conn)
}

func (h *Handler) handleListConnections(w http.ResponseWriter, r *http.Request) {
	conns, err := h.records.ListConnections(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"connections": conns})
}

func (h *Handler) handleGetConnection(w http.ResponseWriter, r *http.Request) {
	id, ok := idFromPath(w, r)
	if !ok {
		return
	}
	conn, err := h.records.GetConnection(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, conn)
}

func (h *Handler) handleDeleteConnection(w http.ResponseWriter, r *http.Request) {
	id, ok := idFromPath(w, r)
	if !ok {
		return
	}
	if err := h.records.DeleteConnection(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ---------------------------------------------------------------------------
// Claims
// ---------------------------------------------------------------------------

type createClaimRequest struct {
	ClaimObject json.RawMessage `json:"claim_object"`
}

func (h *Handler) handleCreateClaim(w http.ResponseWriter, r *http.Request) {
	var req createClaimRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, httperrors.CodeInvalidInput, "invalid request body", http.StatusBadRequest)
		return
	}
	if len(req.ClaimObject) == 0 {
		writeJSONError(w, httperrors.CodeInvalidInput, "claim_object is required", http.StatusBadRequest)
		return
	}

	claim := records.ClaimRecord{
		ID:          uuid.New(),
		ClaimObject: req.ClaimObject,
		CreatedAt:   time.Now().UTC(),
	}
	if err := h.records.SaveClaim(r.Context(), claim); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, claim)
}

func (h *Handler) handleListClaims(w http.ResponseWriter, r *http.Request) {
	claims, err := h.records.ListClaims(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"claims": claims})
}

func (h *Handler) handleGetClaim(w http.ResponseWriter, r *http.Request) {
	id, ok := idFromPath(w, r)
	if !ok {
		return
	}
	claim, err := h.records.GetClaim(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, claim)
}

func (h *Handler) handleDeleteClaim(w http.ResponseWriter, r *http.Request) {
	id, ok := idFromPath(w, r)
	if !ok {
		return
	}
	if err := h.records.DeleteClaim(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ---------------------------------------------------------------------------
// Claim offers
// ---------------------------------------------------------------------------

type createClaimOfferRequest struct {
	NID         string `json:"nid"`
	SchemaSeqNo int64  `json:"schema_seq_no"`
	SeqNo       int64  `json:"seq_no"`
}

func (h *Handler) handleCreateClaimOffer(w http.ResponseWriter, r *http.Request) {
	var req createClaimOfferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, httperrors.CodeInvalidInput, "invalid request body", http.StatusBadRequest)
		return
	}
	if !govalidator.StringLength(req.NID, "1", "255") || req.SchemaSeqNo <= 0 {
		writeJSONError(w, httperrors.CodeInvalidInput, "nid and schema_seq_no are required", http.StatusBadRequest)
		return
	}

	offer := records.ClaimOfferRecord{
		ID:          uuid.New(),
		NID:         req.NID,
		SchemaSeqNo: req.SchemaSeqNo,
		SeqNo:       req.SeqNo,
		CreatedAt:   time.Now().UTC(),
	}
	if err := h.records.SaveClaimOffer(r.Context(), offer); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, offer)
}

func (h *Handler) handleListClaimOffers(w http.ResponseWriter, r *http.Request) {
	offers, err := h.records.ListClaimOffers(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"claim_offers": offers})
}

func (h *Handler) handleGetClaimOffer(w http.ResponseWriter, r *http.Request) {
	id, ok := idFromPath(w, r)
	if !ok {
		return
	}
	offer, err := h.records.GetClaimOffer(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, offer)
}

func (h *Handler) handleDeleteClaimOffer(w http.ResponseWriter, r *http.Request) {
	id, ok := idFromPath(w, r)
	if !ok {
		return
	}
	if err := h.records.DeleteClaimOffer(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
