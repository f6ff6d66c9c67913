package httptransport

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/asaskevich/govalidator"
	"github.com/go-chi/chi/v5"

	"identitychain/internal/ledger"
	"identitychain/pkg/httperrors"
)

//go:generate mockgen -source=handlers_ledger.go -destination=mocks/ledger_service_mock.go -package=mocks LedgerService

// LedgerService is the slice of the ledger gateway the HTTP layer calls.
type LedgerService interface {
	GetNym(ctx context.Context, submitterDID, targetDID string) (*ledger.Nym, error)
	GetSchema(ctx context.Context, submitterDID, schemaID string) (string, *ledger.Schema, error)
	GetCredDef(ctx context.Context, submitterDID, credDefID string) (string, *ledger.CredentialDefinition, error)
	GetRevocRegDef(ctx context.Context, submitterDID, revRegDefID string) (string, *ledger.RevocationRegistryDefinition, error)
	GetRevocReg(ctx context.Context, submitterDID, revRegDefID string, timestamp int64) (string, *ledger.RevocationRegistry, int64, error)
	GetRevocRegDelta(ctx context.Context, submitterDID, revRegDefID string, from, to int64) (string, *ledger.RevocationRegistryDelta, int64, error)
	GetTransactions(ctx context.Context, wallet ledger.WalletHandle, submitterDID string, from, to int, ledgerType string) ([]json.RawMessage, error)
	ResolveVerifierIdentifiers(ctx context.Context, submitterDID string, identifiers []ledger.ProofIdentifier) (*ledger.ResolvedEntities, error)

	SendNym(ctx context.Context, wallet ledger.WalletHandle, submitterDID, targetDID, verkey, alias, role string) (*ledger.Response, error)
	SendAttrib(ctx context.Context, wallet ledger.WalletHandle, submitterDID, targetDID, hash, raw, enc string) (*ledger.Response, error)
	SendSchema(ctx context.Context, wallet ledger.WalletHandle, submitterDID string, data json.RawMessage) (*ledger.Response, error)
	SendCredDef(ctx context.Context, wallet ledger.WalletHandle, submitterDID string, data json.RawMessage) (*ledger.Response, error)
	SendRevocRegDef(ctx context.Context, wallet ledger.WalletHandle, submitterDID string, data json.RawMessage) (*ledger.Response, error)
	SendRevocRegEntry(ctx context.Context, wallet ledger.WalletHandle, submitterDID, revRegDefID, revDefType string, value json.RawMessage) (*ledger.Response, error)
}

func submitterFromQuery(r *http.Request) (string, bool) {
	did := r.URL.Query().Get("submitter_did")
	return did, govalidator.StringLength(did, "1", "255")
}

// ---------------------------------------------------------------------------
// Reads
// ---------------------------------------------------------------------------

func (h *Handler) handleGetNym(w http.ResponseWriter, r *http.Request) {
	submitterDID, ok := submitterFromQuery(r)
	if !ok {
		writeJSONError(w, httperrors.CodeInvalidInput, "submitter_did is required", http.StatusBadRequest)
		return
	}

	nym, err := h.ledger.GetNym(r.Context(), submitterDID, chi.URLParam(r, "did"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, nym)
}

func (h *Handler) handleGetSchema(w http.ResponseWriter, r *http.Request) {
	submitterDID, ok := submitterFromQuery(r)
	if !ok {
		writeJSONError(w, httperrors.CodeInvalidInput, "submitter_did is required", http.StatusBadRequest)
		return
	}

	id, schema, err := h.ledger.GetSchema(r.Context(), submitterDID, chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"id": id, "schema": schema})
}

func (h *Handler) handleGetCredDef(w http.ResponseWriter, r *http.Request) {
	submitterDID, ok := submitterFromQuery(r)
	if !ok {
		writeJSONError(w, httperrors.CodeInvalidInput, "submitter_did is required", http.StatusBadRequest)
		return
	}

	id, credDef, err := h.ledger.GetCredDef(r.Context(), submitterDID, chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"id": id, "cred_def": credDef})
}

func (h *Handler) handleGetRevocRegDef(w http.ResponseWriter, r *http.Request) {
	submitterDID, ok := submitterFromQuery(r)
	if !ok {
		writeJSONError(w, httperrors.CodeInvalidInput, "submitter_did is required", http.StatusBadRequest)
		return
	}

	id, def, err := h.ledger.GetRevocRegDef(r.Context(), submitterDID, chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"id": id, "revoc_reg_def": def})
}

func (h *Handler) handleGetRevocReg(w http.ResponseWriter, r *http.Request) {
	submitterDID, ok := submitterFromQuery(r)
	if !ok {
		writeJSONError(w, httperrors.CodeInvalidInput, "submitter_did is required", http.StatusBadRequest)
		return
	}
	timestamp, err := strconv.ParseInt(r.URL.Query().Get("timestamp"), 10, 64)
	if err != nil {
		writeJSONError(w, httperrors.CodeInvalidInput, "timestamp must be an integer", http.StatusBadRequest)
		return
	}

	id, reg, ts, err := h.ledger.GetRevocReg(r.Context(), submitterDID, chi.URLParam(r, "id"), timestamp)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"id": id, "revoc_reg": reg, "timestamp": ts})
}

func (h *Handler) handleGetRevocRegDelta(w http.ResponseWriter, r *http.Request) {
	submitterDID, ok := submitterFromQuery(r)
	if !ok {
		writeJSONError(w, httperrors.CodeInvalidInput, "submitter_did is required", http.StatusBadRequest)
		return
	}
	from := int64(-1)
	if raw := r.URL.Query().Get("from"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			writeJSONError(w, httperrors.CodeInvalidInput, "from must be an integer", http.StatusBadRequest)
			return
		}
		from = parsed
	}
	to, err := strconv.ParseInt(r.URL.Query().Get("to"), 10, 64)
	if err != nil {
		writeJSONError(w, httperrors.CodeInvalidInput, "to must be an integer", http.StatusBadRequest)
		return
	}

	id, delta, ts, err := h.ledger.GetRevocRegDelta(r.Context(), submitterDID, chi.URLParam(r, "id"), from, to)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"id": id, "revoc_reg_delta": delta, "timestamp": ts})
}

type resolveRequest struct {
	SubmitterDID string                   `json:"submitter_did"`
	Identifiers  []ledger.ProofIdentifier `json:"identifiers"`
}

func (h *Handler) handleVerifierResolve(w http.ResponseWriter, r *http.Request) {
	var req resolveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, httperrors.CodeInvalidInput, "invalid request body", http.StatusBadRequest)
		return
	}
	if !govalidator.StringLength(req.SubmitterDID, "1", "255") {
		writeJSONError(w, httperrors.CodeInvalidInput, "submitter_did is required", http.StatusBadRequest)
		return
	}

	resolved, err := h.ledger.ResolveVerifierIdentifiers(r.Context(), req.SubmitterDID, req.Identifiers)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resolved)
}

// ---------------------------------------------------------------------------
// Writes
// ---------------------------------------------------------------------------

type sendNymRequest struct {
	WalletHandle int    `json:"wallet_handle"`
	SubmitterDID string `json:"submitter_did"`
	TargetDID    string `json:"target_did"`
	Verkey       string `json:"verkey"`
	Alias        string `json:"alias"`
	Role         string `json:"role"`
}

func (h *Handler) handleSendNym(w http.ResponseWriter, r *http.Request) {
	var req sendNymRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, httperrors.CodeInvalidInput, "invalid request body", http.StatusBadRequest)
		return
	}
	if !govalidator.StringLength(req.SubmitterDID, "1", "255") || !govalidator.StringLength(req.TargetDID, "1", "255") {
		writeJSONError(w, httperrors.CodeInvalidInput, "submitter_did and target_did are required", http.StatusBadRequest)
		return
	}

	resp, err := h.ledger.SendNym(r.Context(), ledger.WalletHandle(req.WalletHandle),
		req.SubmitterDID, req.TargetDID, req.Verkey, req.Alias, req.Role)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

type sendAttribRequest struct {
	WalletHandle int    `json:"wallet_handle"`
	SubmitterDID string `json:"submitter_did"`
	TargetDID    string `json:"target_did"`
	Hash         string `json:"hash"`
	Raw          string `json:"raw"`
	Enc          string `json:"enc"`
}

func (h *Handler) handleSendAttrib(w http.ResponseWriter, r *http.Request) {
	var req sendAttribRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, httperrors.CodeInvalidInput, "invalid request body", http.StatusBadRequest)
		return
	}
	if !govalidator.StringLength(req.SubmitterDID, "1", "255") || !govalidator.StringLength(req.TargetDID, "1", "255") {
		writeJSONError(w, httperrors.CodeInvalidInput, "submitter_did and target_did are required", http.StatusBadRequest)
		return
	}

	resp, err := h.ledger.SendAttrib(r.Context(), ledger.WalletHandle(req.WalletHandle),
		req.SubmitterDID, req.TargetDID, req.Hash, req.Raw, req.Enc)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

type sendDataRequest struct {
	WalletHandle int             `json:"wallet_handle"`
	SubmitterDID string          `json:"submitter_did"`
	Data         json.RawMessage `json:"data"`
}

func (h *Handler) decodeSendData(w http.ResponseWriter, r *http.Request) (*sendDataRequest, bool) {
	var req sendDataRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, httperrors.CodeInvalidInput, "invalid request body", http.StatusBadRequest)
		return nil, false
	}
	if !govalidator.StringLength(req.SubmitterDID, "1", "255") || len(req.Data) == 0 {
		writeJSONError(w, httperrors.CodeInvalidInput, "submitter_did and data are required", http.StatusBadRequest)
		return nil, false
	}
	return &req, true
}

func (h *Handler) handleSendSchema(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeSendData(w, r)
	if !ok {
		return
	}
	resp, err := h.ledger.SendSchema(r.Context(), ledger.WalletHandle(req.WalletHandle), req.SubmitterDID, req.Data)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleSendCredDef(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeSendData(w, r)
	if !ok {
		return
	}
	resp, err := h.ledger.SendCredDef(r.Context(), ledger.WalletHandle(req.WalletHandle), req.SubmitterDID, req.Data)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleSendRevocRegDef(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeSendData(w, r)
	if !ok {
		return
	}
	resp, err := h.ledger.SendRevocRegDef(r.Context(), ledger.WalletHandle(req.WalletHandle), req.SubmitterDID, req.Data)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

type sendRevocRegEntryRequest struct {
	WalletHandle int             `json:"wallet_handle"`
	SubmitterDID string          `json:"submitter_did"`
	RevRegDefID  string          `json:"rev_reg_def_id"`
	RevDefType   string          `json:"rev_def_type"`
	Value        json.RawMessage `json:"value"`
}

func (h *Handler) handleSendRevocRegEntry(w http.ResponseWriter, r *http.Request) {
	var req sendRevocRegEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, httperrors.CodeInvalidInput, "invalid request body", http.StatusBadRequest)
		return
	}
	if !govalidator.StringLength(req.SubmitterDID, "1", "255") || !govalidator.StringLength(req.RevRegDefID, "1", "512") {
		writeJSONError(w, httperrors.CodeInvalidInput, "submitter_did and rev_reg_def_id are required", http.StatusBadRequest)
		return
	}

	resp, err := h.ledger.SendRevocRegEntry(r.Context(), ledger.WalletHandle(req.WalletHandle),
		req.SubmitterDID, req.RevRegDefID, req.RevDefType, req.Value)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

type transactionsRequest struct {
	WalletHandle int    `json:"wallet_handle"`
	SubmitterDID string `json:"submitter_did"`
	From         int    `json:"from"`
	To           int    `json:"to"`
	LedgerType   string `json:"ledger_type"`
}

func (h *Handler) handleGetTransactions(w http.ResponseWriter, r *http.Request) {
	var req transactionsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, httperrors.CodeInvalidInput, "invalid request body", http.StatusBadRequest)
		return
	}
	if !govalidator.StringLength(req.SubmitterDID, "1", "255") {
		writeJSONError(w, httperrors.CodeInvalidInput, "submitter_did is required", http.StatusBadRequest)
		return
	}
	if req.From < 0 || req.To < req.From {
		writeJSONError(w, httperrors.CodeInvalidInput, "invalid sequence range", http.StatusBadRequest)
		return
	}

	txns, err := h.ledger.GetTransactions(r.Context(), ledger.WalletHandle(req.WalletHandle),
		req.SubmitterDID, req.From, req.To, req.LedgerType)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"txns": txns})
}
