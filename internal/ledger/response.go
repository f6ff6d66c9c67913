package ledger

import "encoding/json"

// Outcome codes carried in the response "op" field.
const (
	OpReply   = "REPLY"
	OpReject  = "REJECT"
	OpReqNack = "REQNACK"
)

// Response is the envelope every pool node returns for a submitted request.
// Op is REPLY on success, REJECT or REQNACK on failure. Result keeps the raw
// operation payload so nothing is renamed or dropped between the SDK and the
// caller; its "data" field is null when the contacted node has not replicated
// the queried entity yet.
type Response struct {
	Op     string          `json:"op"`
	Reason string          `json:"reason,omitempty"`
	Result json.RawMessage `json:"result,omitempty"`
}

// ParseResponse decodes a raw node response into the envelope.
func ParseResponse(raw []byte) (*Response, error) {
	var resp Response
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Rejected reports whether the node refused the request.
func (r *Response) Rejected() bool {
	return r.Op == OpReject || r.Op == OpReqNack
}

// Data returns the result's data payload. ok is false when the result is
// missing, not a JSON object, or carries a null data field.
func (r *Response) Data() (json.RawMessage, bool) {
	if r == nil || len(r.Result) == 0 {
		return nil, false
	}
	var payload struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(r.Result, &payload); err != nil {
		return nil, false
	}
	if len(payload.Data) == 0 || string(payload.Data) == "null" {
		return nil, false
	}
	return payload.Data, true
}

// HasData reports whether the result carries a non-null data payload, i.e.
// the contacted node has the queried entity.
func (r *Response) HasData() bool {
	_, ok := r.Data()
	return ok
}
