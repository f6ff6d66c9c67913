package ledger

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseResponse(t *testing.T) {
	raw := []byte(`{"op":"REPLY","result":{"type":"107","data":{"seqNo":9},"reqId":1}}`)

	resp, err := ParseResponse(raw)
	require.NoError(t, err)
	assert.Equal(t, OpReply, resp.Op)
	assert.False(t, resp.Rejected())

	data, ok := resp.Data()
	require.True(t, ok)
	assert.JSONEq(t, `{"seqNo":9}`, string(data))
}

func TestParseResponse_Reqnack(t *testing.T) {
	resp, err := ParseResponse([]byte(`{"op":"REQNACK","reason":"client request invalid: missing signature"}`))
	require.NoError(t, err)
	assert.True(t, resp.Rejected())
	assert.Equal(t, "client request invalid: missing signature", resp.Reason)
}

func TestResponse_Data(t *testing.T) {
	cases := []struct {
		name   string
		result string
		ok     bool
	}{
		{"object with data", `{"data":{"k":"v"}}`, true},
		{"data is a string", `{"data":"endpoint"}`, true},
		{"null data", `{"data":null}`, false},
		{"missing data field", `{"seqNo":4}`, false},
		{"result not an object", `"unexpected"`, false},
		{"result is a number", `17`, false},
		{"empty result", ``, false},
		{"null result", `null`, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := &Response{Op: OpReply}
			if tc.result != "" {
				resp.Result = json.RawMessage(tc.result)
			}
			_, ok := resp.Data()
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.ok, resp.HasData())
		})
	}
}

func TestResponse_NilSafe(t *testing.T) {
	var resp *Response
	_, ok := resp.Data()
	assert.False(t, ok)
}
