package ledger

import (
	"context"
	"encoding/json"
	"strings"
)

// Ledger type names accepted by GetTransactions.
const (
	LedgerPool   = "POOL"
	LedgerDomain = "DOMAIN"
	LedgerConfig = "CONFIG"
)

// GetTransactions fetches the transactions in [from, to) from the named
// ledger, ascending. Each sequence number is requested signed and without
// retry. Entries whose result is not a structured object or whose data is
// null are silently omitted, so gaps in the ledger do not error.
func (g *Gateway) GetTransactions(ctx context.Context, wallet WalletHandle, submitterDID string, from, to int, ledgerType string) ([]json.RawMessage, error) {
	ledgerType = strings.ToUpper(ledgerType)

	var txns []json.RawMessage
	for seqNo := from; seqNo < to; seqNo++ {
		resp, err := g.execute(ctx, "GET_TXN", func(ctx context.Context) (Request, error) {
			return g.sdk.BuildGetTxnRequest(ctx, submitterDID, ledgerType, seqNo)
		}, g.writeSubmit(wallet, submitterDID))
		if err != nil {
			return nil, err
		}
		if data, ok := resp.Data(); ok {
			txns = append(txns, data)
		}
	}
	return txns, nil
}
