package ledger

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
)

// fakeClient implements Client with overridable function fields so each test
// wires only the calls it cares about. Unwired builders return a canned
// request; unwired parsers fail loudly.
type fakeClient struct {
	setProtocolVersion   func(ctx context.Context, version int) error
	createPoolConfig     func(ctx context.Context, name, genesisPath string) error
	openPoolLedger       func(ctx context.Context, name string) (Handle, error)
	submitRequest        func(ctx context.Context, pool Handle, req Request) (*Response, error)
	signAndSubmitRequest func(ctx context.Context, pool Handle, wallet WalletHandle, submitterDID string, req Request) (*Response, error)

	buildGetTxnRequest func(ctx context.Context, submitterDID, ledgerType string, seqNo int) (Request, error)

	parseGetNym          func(resp *Response) (*Nym, error)
	parseGetSchema       func(resp *Response) (string, *Schema, error)
	parseGetCredDef      func(resp *Response) (string, *CredentialDefinition, error)
	parseGetRevocRegDef  func(resp *Response) (string, *RevocationRegistryDefinition, error)
	parseGetRevocReg     func(resp *Response) (string, *RevocationRegistry, int64, error)
	parseGetRevocRegDelta func(resp *Response) (string, *RevocationRegistryDelta, int64, error)

	mu          sync.Mutex
	buildCalls  []string
	parseCalls  []string
	submitCalls int
}

func (f *fakeClient) recordBuild(kind string) {
	f.mu.Lock()
	f.buildCalls = append(f.buildCalls, kind)
	f.mu.Unlock()
}

func (f *fakeClient) recordParse(kind string) {
	f.mu.Lock()
	f.parseCalls = append(f.parseCalls, kind)
	f.mu.Unlock()
}

func (f *fakeClient) recordSubmit() {
	f.mu.Lock()
	f.submitCalls++
	f.mu.Unlock()
}

func cannedRequest(kind string, args ...any) Request {
	body, _ := json.Marshal(map[string]any{"req": kind, "args": fmt.Sprint(args...)})
	return Request(body)
}

func (f *fakeClient) SetProtocolVersion(ctx context.Context, version int) error {
	if f.setProtocolVersion != nil {
		return f.setProtocolVersion(ctx, version)
	}
	return nil
}

func (f *fakeClient) CreatePoolLedgerConfig(ctx context.Context, name, genesisPath string) error {
	if f.createPoolConfig != nil {
		return f.createPoolConfig(ctx, name, genesisPath)
	}
	return nil
}

func (f *fakeClient) OpenPoolLedger(ctx context.Context, name string) (Handle, error) {
	if f.openPoolLedger != nil {
		return f.openPoolLedger(ctx, name)
	}
	return Handle(7), nil
}

func (f *fakeClient) SubmitRequest(ctx context.Context, pool Handle, req Request) (*Response, error) {
	f.recordSubmit()
	if f.submitRequest != nil {
		return f.submitRequest(ctx, pool, req)
	}
	return &Response{Op: OpReply, Result: json.RawMessage(`{"data":{}}`)}, nil
}

func (f *fakeClient) SignAndSubmitRequest(ctx context.Context, pool Handle, wallet WalletHandle, submitterDID string, req Request) (*Response, error) {
	f.recordSubmit()
	if f.signAndSubmitRequest != nil {
		return f.signAndSubmitRequest(ctx, pool, wallet, submitterDID, req)
	}
	return &Response{Op: OpReply, Result: json.RawMessage(`{"data":{}}`)}, nil
}

func (f *fakeClient) build(kind string, args ...any) (Request, error) {
	f.recordBuild(kind)
	return cannedRequest(kind, args...), nil
}

func (f *fakeClient) BuildNymRequest(ctx context.Context, submitterDID, targetDID, verkey, alias, role string) (Request, error) {
	return f.build("NYM", submitterDID, targetDID, verkey, alias, role)
}

func (f *fakeClient) BuildGetNymRequest(ctx context.Context, submitterDID, targetDID string) (Request, error) {
	return f.build("GET_NYM", submitterDID, targetDID)
}

func (f *fakeClient) BuildAttribRequest(ctx context.Context, submitterDID, targetDID, hash, raw, enc string) (Request, error) {
	return f.build("ATTRIB", submitterDID, targetDID, hash, raw, enc)
}

func (f *fakeClient) BuildSchemaRequest(ctx context.Context, submitterDID string, data json.RawMessage) (Request, error) {
	return f.build("SCHEMA", submitterDID)
}

func (f *fakeClient) BuildGetSchemaRequest(ctx context.Context, submitterDID, schemaID string) (Request, error) {
	return f.build("GET_SCHEMA", submitterDID, schemaID)
}

func (f *fakeClient) BuildCredDefRequest(ctx context.Context, submitterDID string, data json.RawMessage) (Request, error) {
	return f.build("CRED_DEF", submitterDID)
}

func (f *fakeClient) BuildGetCredDefRequest(ctx context.Context, submitterDID, credDefID string) (Request, error) {
	return f.build("GET_CRED_DEF", submitterDID, credDefID)
}

func (f *fakeClient) BuildRevocRegDefRequest(ctx context.Context, submitterDID string, data json.RawMessage) (Request, error) {
	return f.build("REVOC_REG_DEF", submitterDID)
}

func (f *fakeClient) BuildGetRevocRegDefRequest(ctx context.Context, submitterDID, revRegDefID string) (Request, error) {
	return f.build("GET_REVOC_REG_DEF", submitterDID, revRegDefID)
}

func (f *fakeClient) BuildRevocRegEntryRequest(ctx context.Context, submitterDID, revRegDefID, revDefType string, value json.RawMessage) (Request, error) {
	return f.build("REVOC_REG_ENTRY", submitterDID, revRegDefID, revDefType)
}

func (f *fakeClient) BuildGetRevocRegRequest(ctx context.Context, submitterDID, revRegDefID string, timestamp int64) (Request, error) {
	return f.build("GET_REVOC_REG", submitterDID, revRegDefID, timestamp)
}

func (f *fakeClient) BuildGetRevocRegDeltaRequest(ctx context.Context, submitterDID, revRegDefID string, from, to int64) (Request, error) {
	return f.build("GET_REVOC_REG_DELTA", submitterDID, revRegDefID, from, to)
}

func (f *fakeClient) BuildGetTxnRequest(ctx context.Context, submitterDID, ledgerType string, seqNo int) (Request, error) {
	if f.buildGetTxnRequest != nil {
		f.recordBuild("GET_TXN")
		return f.buildGetTxnRequest(ctx, submitterDID, ledgerType, seqNo)
	}
	return f.build("GET_TXN", submitterDID, ledgerType, seqNo)
}

func (f *fakeClient) ParseGetNymResponse(resp *Response) (*Nym, error) {
	f.recordParse("GET_NYM")
	if f.parseGetNym != nil {
		return f.parseGetNym(resp)
	}
	return &Nym{}, nil
}

func (f *fakeClient) ParseGetSchemaResponse(resp *Response) (string, *Schema, error) {
	f.recordParse("GET_SCHEMA")
	if f.parseGetSchema != nil {
		return f.parseGetSchema(resp)
	}
	return "", &Schema{}, nil
}

func (f *fakeClient) ParseGetCredDefResponse(resp *Response) (string, *CredentialDefinition, error) {
	f.recordParse("GET_CRED_DEF")
	if f.parseGetCredDef != nil {
		return f.parseGetCredDef(resp)
	}
	return "", &CredentialDefinition{}, nil
}

func (f *fakeClient) ParseGetRevocRegDefResponse(resp *Response) (string, *RevocationRegistryDefinition, error) {
	f.recordParse("GET_REVOC_REG_DEF")
	if f.parseGetRevocRegDef != nil {
		return f.parseGetRevocRegDef(resp)
	}
	return "", &RevocationRegistryDefinition{}, nil
}

func (f *fakeClient) ParseGetRevocRegResponse(resp *Response) (string, *RevocationRegistry, int64, error) {
	f.recordParse("GET_REVOC_REG")
	if f.parseGetRevocReg != nil {
		return f.parseGetRevocReg(resp)
	}
	return "", &RevocationRegistry{}, 0, nil
}

func (f *fakeClient) ParseGetRevocRegDeltaResponse(resp *Response) (string, *RevocationRegistryDelta, int64, error) {
	f.recordParse("GET_REVOC_REG_DELTA")
	if f.parseGetRevocRegDelta != nil {
		return f.parseGetRevocRegDelta(resp)
	}
	return "", &RevocationRegistryDelta{}, 0, nil
}

// openPool returns a pool whose handle is already established, bypassing the
// SDK lifecycle calls.
func openPool(sdk Client) *Pool {
	p := NewPool(sdk, PoolConfig{Name: "test-pool"})
	p.handle = Handle(7)
	return p
}
