package ledger

import (
	"context"
	"encoding/json"
)

// RoleNone is the caller-facing literal requesting a NYM with no ledger role.
// The SDK expects an empty role string for that case.
const RoleNone = "NONE"

// Write operations. Each builds its transaction and submits it signed,
// exactly once: resubmitting a signed write could duplicate side effects, so
// the rejection path through execute is the only failure handling. Accepted
// writes are reported to the write observer.

// SendNym registers a DID and verification key, with optional alias and role.
func (g *Gateway) SendNym(ctx context.Context, wallet WalletHandle, submitterDID, targetDID, verkey, alias, role string) (*Response, error) {
	if role == RoleNone {
		role = ""
	}
	resp, err := g.execute(ctx, "NYM", func(ctx context.Context) (Request, error) {
		return g.sdk.BuildNymRequest(ctx, submitterDID, targetDID, verkey, alias, role)
	}, g.writeSubmit(wallet, submitterDID))
	if err != nil {
		return nil, err
	}
	g.observeWrite(ctx, "NYM", submitterDID, targetDID)
	return resp, nil
}

// SendAttrib attests an attribute for a DID. hash, raw and enc are each
// optional and not mutually exclusive; empty strings are omitted by the SDK.
func (g *Gateway) SendAttrib(ctx context.Context, wallet WalletHandle, submitterDID, targetDID, hash, raw, enc string) (*Response, error) {
	resp, err := g.execute(ctx, "ATTRIB", func(ctx context.Context) (Request, error) {
		return g.sdk.BuildAttribRequest(ctx, submitterDID, targetDID, hash, raw, enc)
	}, g.writeSubmit(wallet, submitterDID))
	if err != nil {
		return nil, err
	}
	g.observeWrite(ctx, "ATTRIB", submitterDID, targetDID)
	return resp, nil
}

// SendSchema publishes a schema. data is the SDK-shaped schema document.
func (g *Gateway) SendSchema(ctx context.Context, wallet WalletHandle, submitterDID string, data json.RawMessage) (*Response, error) {
	resp, err := g.execute(ctx, "SCHEMA", func(ctx context.Context) (Request, error) {
		return g.sdk.BuildSchemaRequest(ctx, submitterDID, data)
	}, g.writeSubmit(wallet, submitterDID))
	if err != nil {
		return nil, err
	}
	g.observeWrite(ctx, "SCHEMA", submitterDID, "")
	return resp, nil
}

// SendCredDef publishes a credential definition.
func (g *Gateway) SendCredDef(ctx context.Context, wallet WalletHandle, submitterDID string, data json.RawMessage) (*Response, error) {
	resp, err := g.execute(ctx, "CRED_DEF", func(ctx context.Context) (Request, error) {
		return g.sdk.BuildCredDefRequest(ctx, submitterDID, data)
	}, g.writeSubmit(wallet, submitterDID))
	if err != nil {
		return nil, err
	}
	g.observeWrite(ctx, "CRED_DEF", submitterDID, "")
	return resp, nil
}

// SendRevocRegDef publishes a revocation registry definition.
func (g *Gateway) SendRevocRegDef(ctx context.Context, wallet WalletHandle, submitterDID string, data json.RawMessage) (*Response, error) {
	resp, err := g.execute(ctx, "REVOC_REG_DEF", func(ctx context.Context) (Request, error) {
		return g.sdk.BuildRevocRegDefRequest(ctx, submitterDID, data)
	}, g.writeSubmit(wallet, submitterDID))
	if err != nil {
		return nil, err
	}
	g.observeWrite(ctx, "REVOC_REG_DEF", submitterDID, "")
	return resp, nil
}

// SendRevocRegEntry publishes an accumulator update for a revocation
// registry.
func (g *Gateway) SendRevocRegEntry(ctx context.Context, wallet WalletHandle, submitterDID, revRegDefID, revDefType string, value json.RawMessage) (*Response, error) {
	resp, err := g.execute(ctx, "REVOC_REG_ENTRY", func(ctx context.Context) (Request, error) {
		return g.sdk.BuildRevocRegEntryRequest(ctx, submitterDID, revRegDefID, revDefType, value)
	}, g.writeSubmit(wallet, submitterDID))
	if err != nil {
		return nil, err
	}
	g.observeWrite(ctx, "REVOC_REG_ENTRY", submitterDID, revRegDefID)
	return resp, nil
}

func (g *Gateway) observeWrite(ctx context.Context, txn, submitterDID, target string) {
	if g.observer != nil {
		g.observer.ObserveWrite(ctx, txn, submitterDID, target)
	}
}
