package audit

import "time"

// Event records one accepted ledger write. Keep it transport-agnostic so
// stores and sinks can fan out.
type Event struct {
	Timestamp    time.Time `json:"timestamp"`
	Txn          string    `json:"txn"`
	SubmitterDID string    `json:"submitter_did"`
	Target       string    `json:"target,omitempty"`
	RequestID    string    `json:"request_id,omitempty"`
}
