package audit

import (
	"context"
	"time"

	"identitychain/internal/platform/middleware"
)

// Observer records ledger write submissions as audit events. Events are
// queued on a buffered inbox; if the inbox is full the event is dropped
// rather than blocking the write path.
type Observer struct {
	inbox chan<- Event
}

func NewObserver(inbox chan<- Event) *Observer {
	return &Observer{inbox: inbox}
}

func (o *Observer) ObserveWrite(ctx context.Context, txn, submitterDID, target string) {
	event := Event{
		Timestamp:    time.Now(),
		Txn:          txn,
		SubmitterDID: submitterDID,
		Target:       target,
		RequestID:    middleware.GetRequestID(ctx),
	}
	select {
	case o.inbox <- event:
	default:
	}
}
