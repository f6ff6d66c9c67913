package ledger

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func txnResponse(seqNo int) *Response {
	result := fmt.Sprintf(`{"seqNo":%d,"data":{"txn":{"type":"1","seqNo":%d}}}`, seqNo, seqNo)
	return &Response{Op: OpReply, Result: json.RawMessage(result)}
}

// fetcher wires a fake pool where the response per sequence number is chosen
// by the test.
func fetcherGateway(t *testing.T, respond func(seqNo int) *Response) (*Gateway, *fakeClient) {
	t.Helper()
	sdk := &fakeClient{}
	sdk.buildGetTxnRequest = func(_ context.Context, _, _ string, seqNo int) (Request, error) {
		body, _ := json.Marshal(map[string]int{"seqNo": seqNo})
		return Request(body), nil
	}
	sdk.signAndSubmitRequest = func(_ context.Context, _ Handle, _ WalletHandle, _ string, req Request) (*Response, error) {
		var body struct {
			SeqNo int `json:"seqNo"`
		}
		if err := json.Unmarshal(json.RawMessage(req), &body); err != nil {
			return nil, err
		}
		return respond(body.SeqNo), nil
	}
	return New(sdk, openPool(sdk)), sdk
}

func TestGetTransactions_SkipsNonObjectResults(t *testing.T) {
	gw, _ := fetcherGateway(t, func(seqNo int) *Response {
		if seqNo == 6 {
			// Some nodes answer absent sequence numbers with a bare
			// string result instead of a transaction object.
			return &Response{Op: OpReply, Result: json.RawMessage(`"no such transaction"`)}
		}
		return txnResponse(seqNo)
	})

	txns, err := gw.GetTransactions(context.Background(), WalletHandle(3), "did:sub", 5, 8, "domain")

	require.NoError(t, err)
	require.Len(t, txns, 2)
	for i, wantSeq := range []int{5, 7} {
		var txn struct {
			Txn struct {
				SeqNo int `json:"seqNo"`
			} `json:"txn"`
		}
		require.NoError(t, json.Unmarshal(txns[i], &txn))
		assert.Equal(t, wantSeq, txn.Txn.SeqNo, "entry %d", i)
	}
}

func TestGetTransactions_SkipsNullData(t *testing.T) {
	gw, _ := fetcherGateway(t, func(seqNo int) *Response {
		if seqNo == 2 {
			return &Response{Op: OpReply, Result: json.RawMessage(`{"seqNo":2,"data":null}`)}
		}
		return txnResponse(seqNo)
	})

	txns, err := gw.GetTransactions(context.Background(), WalletHandle(3), "did:sub", 1, 4, "DOMAIN")
	require.NoError(t, err)
	assert.Len(t, txns, 2)
}

func TestGetTransactions_UppercasesLedgerType(t *testing.T) {
	sdk := &fakeClient{}
	var gotType string
	sdk.buildGetTxnRequest = func(_ context.Context, _, ledgerType string, seqNo int) (Request, error) {
		gotType = ledgerType
		return cannedRequest("GET_TXN", seqNo), nil
	}
	gw := New(sdk, openPool(sdk))

	_, err := gw.GetTransactions(context.Background(), WalletHandle(3), "did:sub", 1, 2, "pool")
	require.NoError(t, err)
	assert.Equal(t, LedgerPool, gotType)
}

func TestGetTransactions_EmptyRange(t *testing.T) {
	gw, sdk := fetcherGateway(t, txnResponse)

	txns, err := gw.GetTransactions(context.Background(), WalletHandle(3), "did:sub", 5, 5, "DOMAIN")
	require.NoError(t, err)
	assert.Empty(t, txns)
	assert.Zero(t, sdk.submitCalls)
}

func TestGetTransactions_RejectionPropagates(t *testing.T) {
	gw, _ := fetcherGateway(t, func(seqNo int) *Response {
		return &Response{Op: OpReqNack, Reason: "invalid ledger type"}
	})

	_, err := gw.GetTransactions(context.Background(), WalletHandle(3), "did:sub", 1, 3, "CONFIG")
	var rej *RejectionError
	require.ErrorAs(t, err, &rej)
	assert.Equal(t, "invalid ledger type", rej.Reason)
}
