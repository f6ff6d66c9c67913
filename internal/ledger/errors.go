package ledger

import "errors"

// ErrPoolNotOpen is returned by every gateway operation attempted before the
// pool connection has been opened. Callers must run Pool.CreateConfig and
// Pool.Open during startup, before the HTTP server accepts requests.
var ErrPoolNotOpen = errors.New("pool ledger is not open")

// RejectionError surfaces a ledger REJECT or REQNACK. The reason text comes
// from the node verbatim and the HTTP layer maps it to a 400 response.
type RejectionError struct {
	Op     string
	Reason string
}

func (e *RejectionError) Error() string {
	return e.Reason
}

// IsRejection reports whether err carries a ledger rejection.
func IsRejection(err error) bool {
	var rej *RejectionError
	return errors.As(err, &rej)
}
