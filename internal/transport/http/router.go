package httptransport

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"identitychain/internal/ledger"
	"identitychain/internal/platform/middleware"
	"identitychain/pkg/httperrors"
	"identitychain/pkg/sentinel"
)

// Handler is the thin HTTP layer. It delegates to the ledger gateway and the
// record store without embedding business logic so transport concerns remain
// isolated.
type Handler struct {
	ledger  LedgerService
	records RecordStore
	logger  *slog.Logger
}

func NewHandler(ledgerSvc LedgerService, records RecordStore, logger *slog.Logger) *Handler {
	return &Handler{
		ledger:  ledgerSvc,
		records: records,
		logger:  logger,
	}
}

// RouterConfig carries the optional pieces the router wires around handlers.
type RouterConfig struct {
	Auth       middleware.JWTValidator
	Registry   *prometheus.Registry
	HealthFunc func() bool
}

// NewRouter wires all public endpoints with middleware. Ledger writes sit
// behind bearer auth when a validator is configured; reads are open.
func NewRouter(h *Handler, logger *slog.Logger, cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recovery(logger))
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(middleware.ContentTypeJSON)

	r.Get("/healthz", h.handleHealth(cfg.HealthFunc))
	if cfg.Registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(cfg.Registry, promhttp.HandlerOpts{}))
	}

	// Ledger reads
	r.Get("/ledger/nym/{did}", h.handleGetNym)
	r.Get("/ledger/schema/{id}", h.handleGetSchema)
	r.Get("/ledger/cred-def/{id}", h.handleGetCredDef)
	r.Get("/ledger/revoc-reg-def/{id}", h.handleGetRevocRegDef)
	r.Get("/ledger/revoc-reg/{id}", h.handleGetRevocReg)
	r.Get("/ledger/revoc-reg-delta/{id}", h.handleGetRevocRegDelta)
	r.Post("/verifier/resolve", h.handleVerifierResolve)

	// Ledger writes and record mutations
	r.Group(func(r chi.Router) {
		if cfg.Auth != nil {
			r.Use(middleware.RequireAuth(cfg.Auth, logger))
		}

		r.Post("/ledger/nym", h.handleSendNym)
		r.Post("/ledger/attrib", h.handleSendAttrib)
		r.Post("/ledger/schema", h.handleSendSchema)
		r.Post("/ledger/cred-def", h.handleSendCredDef)
		r.Post("/ledger/revoc-reg-def", h.handleSendRevocRegDef)
		r.Post("/ledger/revoc-reg-entry", h.handleSendRevocRegEntry)
		r.Post("/ledger/txn", h.handleGetTransactions)

		r.Post("/wallets", h.handleCreateWallet)
		r.Get("/wallets", h.handleListWallets)
		r.Get("/wallets/{id}", h.handleGetWallet)
		r.Delete("/wallets/{id}", h.handleDeleteWallet)

		r.Post("/connections", h.handleCreateConnection)
		r.Get("/connections", h.handleListConnections)
		r.Get("/connections/{id}", h.handleGetConnection)
		r.Delete("/connections/{id}", h.handleDeleteConnection)

		r.Post("/claims", h.handleCreateClaim)
		r.Get("/claims", h.handleListClaims)
		r.Get("/claims/{id}", h.handleGetClaim)
		r.Delete("/claims/{id}", h.handleDeleteClaim)

		r.Post("/claim-offers", h.handleCreateClaimOffer)
		r.Get("/claim-offers", h.handleListClaimOffers)
		r.Get("/claim-offers/{id}", h.handleGetClaimOffer)
		r.Delete("/claim-offers/{id}", h.handleDeleteClaimOffer)
	})

	return r
}

func (h *Handler) handleHealth(healthy func() bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := http.StatusOK
		body := map[string]string{"status": "ok"}
		if healthy != nil && !healthy() {
			status = http.StatusServiceUnavailable
			body["status"] = "unavailable"
		}
		writeJSON(w, status, body)
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// writeError centralizes error translation to HTTP responses. Ledger
// rejections surface as 400 with the node's reason text verbatim; an
// unopened pool maps to 503.
func writeError(w http.ResponseWriter, err error) {
	var rejection *ledger.RejectionError
	if errors.As(err, &rejection) {
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"error":             string(httperrors.CodeLedgerRejected),
			"error_description": rejection.Reason,
		})
		return
	}
	if errors.Is(err, ledger.ErrPoolNotOpen) {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{
			"error": string(httperrors.CodePoolUnavailable),
		})
		return
	}
	if errors.Is(err, sentinel.ErrNotFound) {
		writeJSON(w, http.StatusNotFound, map[string]string{
			"error": string(httperrors.CodeNotFound),
		})
		return
	}

	var gw httperrors.GatewayError
	status := http.StatusInternalServerError
	code := string(httperrors.CodeInternal)
	if errors.As(err, &gw) {
		status = httperrors.ToHTTPStatus(gw.Code)
		code = string(gw.Code)
	}
	writeJSON(w, status, map[string]string{"error": code})
}

// writeJSONError writes a JSON error response with a custom error code and description.
func writeJSONError(w http.ResponseWriter, code httperrors.Code, description string, status int) {
	writeJSON(w, status, map[string]string{
		"error":             string(code),
		"error_description": description,
	})
}
