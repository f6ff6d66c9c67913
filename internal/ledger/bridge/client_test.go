package bridge

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"identitychain/internal/ledger"
)

func newBridgeServer(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(srv.URL)
}

func TestClient_OpenPoolLedger(t *testing.T) {
	client := newBridgeServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/pool/open", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "sandbox", body["name"])

		_ = json.NewEncoder(w).Encode(map[string]int{"handle": 4})
	})

	handle, err := client.OpenPoolLedger(context.Background(), "sandbox")
	require.NoError(t, err)
	assert.Equal(t, ledger.Handle(4), handle)
}

func TestClient_SubmitRequest(t *testing.T) {
	client := newBridgeServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/submit", r.URL.Path)

		var body struct {
			PoolHandle int             `json:"pool_handle"`
			Request    json.RawMessage `json:"request"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, 4, body.PoolHandle)
		assert.JSONEq(t, `{"reqId":1}`, string(body.Request))

		_, _ = w.Write([]byte(`{"op":"REPLY","result":{"data":{"dest":"abc"}}}`))
	})

	resp, err := client.SubmitRequest(context.Background(), ledger.Handle(4), ledger.Request(`{"reqId":1}`))
	require.NoError(t, err)
	assert.Equal(t, ledger.OpReply, resp.Op)
	assert.False(t, resp.Rejected())
}

func TestClient_BuildNymRequest(t *testing.T) {
	client := newBridgeServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/build/nym", r.URL.Path)
		_ = json.NewEncoder(w).Encode(map[string]json.RawMessage{
			"request": json.RawMessage(`{"operation":{"type":"1"}}`),
		})
	})

	req, err := client.BuildNymRequest(context.Background(), "did-s", "did-t", "vk", "", "TRUST_ANCHOR")
	require.NoError(t, err)
	assert.JSONEq(t, `{"operation":{"type":"1"}}`, string(req))
}

func TestClient_BridgeErrorSurfaces(t *testing.T) {
	client := newBridgeServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "PoolLedgerTimeout"})
	})

	_, err := client.OpenPoolLedger(context.Background(), "sandbox")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "PoolLedgerTimeout")
}

func TestParseGetNymResponse_StringEncodedData(t *testing.T) {
	client := New("http://unused")
	resp, err := ledger.ParseResponse([]byte(`{"op":"REPLY","result":{"data":"{\"dest\":\"FYmoFw55GeQH7SRFa37dkx\",\"verkey\":\"~vk\",\"role\":\"101\"}"}}`))
	require.NoError(t, err)

	nym, err := client.ParseGetNymResponse(resp)
	require.NoError(t, err)
	assert.Equal(t, "FYmoFw55GeQH7SRFa37dkx", nym.DID)
	assert.Equal(t, "101", nym.Role)
}

func TestParseGetSchemaResponse(t *testing.T) {
	client := New("http://unused")
	resp, err := ledger.ParseResponse([]byte(`{"op":"REPLY","result":{"dest":"did-issuer","seqNo":12,"data":{"name":"degree","version":"1.0","attr_names":["name","year"]}}}`))
	require.NoError(t, err)

	id, schema, err := client.ParseGetSchemaResponse(resp)
	require.NoError(t, err)
	assert.Equal(t, "did-issuer:2:degree:1.0", id)
	assert.Equal(t, 12, schema.SeqNo)
	assert.Equal(t, "degree", schema.Name)
}

func TestParseResponses_NoData(t *testing.T) {
	client := New("http://unused")
	resp, err := ledger.ParseResponse([]byte(`{"op":"REPLY","result":{"data":null}}`))
	require.NoError(t, err)

	_, err = client.ParseGetNymResponse(resp)
	assert.Error(t, err)

	_, _, err = client.ParseGetCredDefResponse(resp)
	assert.Error(t, err)
}
