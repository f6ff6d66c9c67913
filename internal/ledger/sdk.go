package ledger

import (
	"context"
	"encoding/json"
)

// Handle identifies an open pool connection. The SDK hands it out once per
// OpenPoolLedger call and every subsequent ledger operation needs it.
type Handle int

// HandleUnset is the sentinel for "pool not opened yet". No operation may run
// against it.
const HandleUnset Handle = -1

// WalletHandle identifies an open wallet used to sign write requests.
type WalletHandle int

// Request is an opaque, SDK-built ledger transaction. It is immutable once
// built and consumed exactly once by submission.
type Request json.RawMessage

// Client is the boundary to the ledger SDK. The SDK owns transaction
// building, signing, submission and response parsing; this interface only
// describes the contract the gateway relies on. Test doubles live in the
// package tests as function-field fakes.
type Client interface {
	// Pool lifecycle.
	SetProtocolVersion(ctx context.Context, version int) error
	CreatePoolLedgerConfig(ctx context.Context, name, genesisPath string) error
	OpenPoolLedger(ctx context.Context, name string) (Handle, error)

	// Submission. SubmitRequest sends unsigned read requests;
	// SignAndSubmitRequest signs with the submitter's wallet key first.
	SubmitRequest(ctx context.Context, pool Handle, req Request) (*Response, error)
	SignAndSubmitRequest(ctx context.Context, pool Handle, wallet WalletHandle, submitterDID string, req Request) (*Response, error)

	// Request builders.
	BuildNymRequest(ctx context.Context, submitterDID, targetDID, verkey, alias, role string) (Request, error)
	BuildGetNymRequest(ctx context.Context, submitterDID, targetDID string) (Request, error)
	BuildAttribRequest(ctx context.Context, submitterDID, targetDID, hash, raw, enc string) (Request, error)
	BuildSchemaRequest(ctx context.Context, submitterDID string, data json.RawMessage) (Request, error)
	BuildGetSchemaRequest(ctx context.Context, submitterDID, schemaID string) (Request, error)
	BuildCredDefRequest(ctx context.Context, submitterDID string, data json.RawMessage) (Request, error)
	BuildGetCredDefRequest(ctx context.Context, submitterDID, credDefID string) (Request, error)
	BuildRevocRegDefRequest(ctx context.Context, submitterDID string, data json.RawMessage) (Request, error)
	BuildGetRevocRegDefRequest(ctx context.Context, submitterDID, revRegDefID string) (Request, error)
	BuildRevocRegEntryRequest(ctx context.Context, submitterDID, revRegDefID, revDefType string, value json.RawMessage) (Request, error)
	BuildGetRevocRegRequest(ctx context.Context, submitterDID, revRegDefID string, timestamp int64) (Request, error)
	BuildGetRevocRegDeltaRequest(ctx context.Context, submitterDID, revRegDefID string, from, to int64) (Request, error)
	BuildGetTxnRequest(ctx context.Context, submitterDID, ledgerType string, seqNo int) (Request, error)

	// Response parsers, yielding typed entities for read queries.
	ParseGetNymResponse(resp *Response) (*Nym, error)
	ParseGetSchemaResponse(resp *Response) (string, *Schema, error)
	ParseGetCredDefResponse(resp *Response) (string, *CredentialDefinition, error)
	ParseGetRevocRegDefResponse(resp *Response) (string, *RevocationRegistryDefinition, error)
	ParseGetRevocRegResponse(resp *Response) (string, *RevocationRegistry, int64, error)
	ParseGetRevocRegDeltaResponse(resp *Response) (string, *RevocationRegistryDelta, int64, error)
}
