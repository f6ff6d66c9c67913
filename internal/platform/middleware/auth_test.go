package middleware

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	jwttoken "identitychain/internal/jwt_token"
)

func TestRequireAuth(t *testing.T) {
	svc := jwttoken.NewJWTService("test-key", "test-issuer", "test-audience")

	var gotDID string
	handler := RequireAuth(svc, slog.Default())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotDID = GetCallerDID(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	t.Run("valid token passes and exposes caller DID", func(t *testing.T) {
		token, err := svc.GenerateAccessToken("V4SGRU86Z58d6TV7PBUe6f", time.Hour)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodPost, "/ledger/nym", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "V4SGRU86Z58d6TV7PBUe6f", gotDID)
	})

	t.Run("missing header is rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/ledger/nym", nil)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "Missing or invalid Authorization header")
	})

	t.Run("garbage token is rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/ledger/nym", nil)
		req.Header.Set("Authorization", "Bearer not-a-jwt")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "Invalid or expired token")
	})

	t.Run("expired token is rejected", func(t *testing.T) {
		token, err := svc.GenerateAccessToken("did", -time.Minute)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodPost, "/ledger/nym", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
