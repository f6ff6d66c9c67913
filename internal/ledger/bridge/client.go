// Package bridge implements ledger.Client against an SDK bridge sidecar.
// The sidecar wraps the native ledger SDK and exposes each capability as a
// JSON-over-HTTP endpoint, keeping the agent binary free of FFI.
package bridge

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"identitychain/internal/ledger"
)

// Client talks to the SDK bridge. One instance is shared by the whole agent.
type Client struct {
	baseURL string
	http    *http.Client
}

// Option configures the bridge client.
type Option func(*Client)

// WithHTTPClient swaps the underlying HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(b *Client) { b.http = c }
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 60 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var _ ledger.Client = (*Client)(nil)

func (c *Client) call(ctx context.Context, path string, body any, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("bridge %s: encode request: %w", path, err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("bridge %s: %w", path, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("bridge %s: %w", path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("bridge %s: read response: %w", path, err)
	}
	if resp.StatusCode != http.StatusOK {
		var failure struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(raw, &failure) == nil && failure.Error != "" {
			return fmt.Errorf("bridge %s: %s", path, failure.Error)
		}
		return fmt.Errorf("bridge %s: unexpected status %d", path, resp.StatusCode)
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("bridge %s: decode response: %w", path, err)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Pool lifecycle
// ---------------------------------------------------------------------------

func (c *Client) SetProtocolVersion(ctx context.Context, version int) error {
	return c.call(ctx, "/pool/protocol-version", map[string]int{"version": version}, nil)
}

func (c *Client) CreatePoolLedgerConfig(ctx context.Context, name, genesisPath string) error {
	return c.call(ctx, "/pool/create", map[string]string{
		"name":         name,
		"genesis_path": genesisPath,
	}, nil)
}

func (c *Client) OpenPoolLedger(ctx context.Context, name string) (ledger.Handle, error) {
	var out struct {
		Handle int `json:"handle"`
	}
	if err := c.call(ctx, "/pool/open", map[string]string{"name": name}, &out); err != nil {
		return ledger.HandleUnset, err
	}
	return ledger.Handle(out.Handle), nil
}

// ---------------------------------------------------------------------------
// Submission
// ---------------------------------------------------------------------------

func (c *Client) SubmitRequest(ctx context.Context, pool ledger.Handle, req ledger.Request) (*ledger.Response, error) {
	var out json.RawMessage
	err := c.call(ctx, "/submit", map[string]any{
		"pool_handle": int(pool),
		"request":     json.RawMessage(req),
	}, &out)
	if err != nil {
		return nil, err
	}
	return ledger.ParseResponse(out)
}

func (c *Client) SignAndSubmitRequest(ctx context.Context, pool ledger.Handle, wallet ledger.WalletHandle, submitterDID string, req ledger.Request) (*ledger.Response, error) {
	var out json.RawMessage
	err := c.call(ctx, "/sign-and-submit", map[string]any{
		"pool_handle":   int(pool),
		"wallet_handle": int(wallet),
		"submitter_did": submitterDID,
		"request":       json.RawMessage(req),
	}, &out)
	if err != nil {
		return nil, err
	}
	return ledger.ParseResponse(out)
}

// ---------------------------------------------------------------------------
// Request builders
// ---------------------------------------------------------------------------

func (c *Client) build(ctx context.Context, kind string, args map[string]any) (ledger.Request, error) {
	var out struct {
		Request json.RawMessage `json:"request"`
	}
	if err := c.call(ctx, "/build/"+kind, args, &out); err != nil {
		return nil, err
	}
	return ledger.Request(out.Request), nil
}

func (c *Client) BuildNymRequest(ctx context.Context, submitterDID, targetDID, verkey, alias, role string) (ledger.Request, error) {
	return c.build(ctx, "nym", map[string]any{
		"submitter_did": submitterDID,
		"target_did":    targetDID,
		"verkey":        verkey,
		"alias":         alias,
		"role":          role,
	})
}

func (c *Client) BuildGetNymRequest(ctx context.Context, submitterDID, targetDID string) (ledger.Request, error) {
	return c.build(ctx, "get-nym", map[string]any{
		"submitter_did": submitterDID,
		"target_did":    targetDID,
	})
}

func (c *Client) BuildAttribRequest(ctx context.Context, submitterDID, targetDID, hash, raw, enc string) (ledger.Request, error) {
	return c.build(ctx, "attrib", map[string]any{
		"submitter_did": submitterDID,
		"target_did":    targetDID,
		"hash":          hash,
		"raw":           raw,
		"enc":           enc,
	})
}

func (c *Client) BuildSchemaRequest(ctx context.Context, submitterDID string, data json.RawMessage) (ledger.Request, error) {
	return c.build(ctx, "schema", map[string]any{
		"submitter_did": submitterDID,
		"data":          data,
	})
}

func (c *Client) BuildGetSchemaRequest(ctx context.Context, submitterDID, schemaID string) (ledger.Request, error) {
	return c.build(ctx, "get-schema", map[string]any{
		"submitter_did": submitterDID,
		"id":            schemaID,
	})
}

func (c *Client) BuildCredDefRequest(ctx context.Context, submitterDID string, data json.RawMessage) (ledger.Request, error) {
	return c.build(ctx, "cred-def", map[string]any{
		"submitter_did": submitterDID,
		"data":          data,
	})
}

func (c *Client) BuildGetCredDefRequest(ctx context.Context, submitterDID, credDefID string) (ledger.Request, error) {
	return c.build(ctx, "get-cred-def", map[string]any{
		"submitter_did": submitterDID,
		"id":            credDefID,
	})
}

func (c *Client) BuildRevocRegDefRequest(ctx context.Context, submitterDID string, data json.RawMessage) (ledger.Request, error) {
	return c.build(ctx, "revoc-reg-def", map[string]any{
		"submitter_did": submitterDID,
		"data":          data,
	})
}

func (c *Client) BuildGetRevocRegDefRequest(ctx context.Context, submitterDID, revRegDefID string) (ledger.Request, error) {
	return c.build(ctx, "get-revoc-reg-def", map[string]any{
		"submitter_did": submitterDID,
		"id":            revRegDefID,
	})
}

func (c *Client) BuildRevocRegEntryRequest(ctx context.Context, submitterDID, revRegDefID, revDefType string, value json.RawMessage) (ledger.Request, error) {
	return c.build(ctx, "revoc-reg-entry", map[string]any{
		"submitter_did":  submitterDID,
		"rev_reg_def_id": revRegDefID,
		"rev_def_type":   revDefType,
		"value":          value,
	})
}

func (c *Client) BuildGetRevocRegRequest(ctx context.Context, submitterDID, revRegDefID string, timestamp int64) (ledger.Request, error) {
	return c.build(ctx, "get-revoc-reg", map[string]any{
		"submitter_did":  submitterDID,
		"rev_reg_def_id": revRegDefID,
		"timestamp":      timestamp,
	})
}

func (c *Client) BuildGetRevocRegDeltaRequest(ctx context.Context, submitterDID, revRegDefID string, from, to int64) (ledger.Request, error) {
	return c.build(ctx, "get-revoc-reg-delta", map[string]any{
		"submitter_did":  submitterDID,
		"rev_reg_def_id": revRegDefID,
		"from":           from,
		"to":             to,
	})
}

func (c *Client) BuildGetTxnRequest(ctx context.Context, submitterDID, ledgerType string, seqNo int) (ledger.Request, error) {
	return c.build(ctx, "get-txn", map[string]any{
		"submitter_did": submitterDID,
		"ledger_type":   ledgerType,
		"seq_no":        seqNo,
	})
}

// ---------------------------------------------------------------------------
// Response parsers
// ---------------------------------------------------------------------------

// Parsing is local. The bridge already returned the full node response and
// the typed payloads sit in well-known places inside result.data.

func (c *Client) ParseGetNymResponse(resp *ledger.Response) (*ledger.Nym, error) {
	data, ok := resp.Data()
	if !ok {
		return nil, fmt.Errorf("get nym response carries no data")
	}
	// GET_NYM data arrives as a JSON-encoded string.
	var inner string
	if err := json.Unmarshal(data, &inner); err == nil {
		data = json.RawMessage(inner)
	}
	var nym ledger.Nym
	if err := json.Unmarshal(data, &nym); err != nil {
		return nil, fmt.Errorf("parse get nym response: %w", err)
	}
	return &nym, nil
}

func (c *Client) ParseGetSchemaResponse(resp *ledger.Response) (string, *ledger.Schema, error) {
	data, ok := resp.Data()
	if !ok {
		return "", nil, fmt.Errorf("get schema response carries no data")
	}
	var result struct {
		Dest  string `json:"dest"`
		SeqNo int    `json:"seqNo"`
	}
	_ = json.Unmarshal(resp.Result, &result)

	var schema ledger.Schema
	if err := json.Unmarshal(data, &schema); err != nil {
		return "", nil, fmt.Errorf("parse get schema response: %w", err)
	}
	schema.SeqNo = result.SeqNo
	id := fmt.Sprintf("%s:2:%s:%s", result.Dest, schema.Name, schema.Version)
	schema.ID = id
	return id, &schema, nil
}

func (c *Client) ParseGetCredDefResponse(resp *ledger.Response) (string, *ledger.CredentialDefinition, error) {
	data, ok := resp.Data()
	if !ok {
		return "", nil, fmt.Errorf("get cred def response carries no data")
	}
	var result struct {
		ID string `json:"id"`
	}
	_ = json.Unmarshal(resp.Result, &result)

	credDef := ledger.CredentialDefinition{ID: result.ID, Value: data}
	var envelope struct {
		Ref int    `json:"ref"`
		Tag string `json:"tag"`
	}
	if err := json.Unmarshal(resp.Result, &envelope); err == nil {
		credDef.SchemaID = fmt.Sprintf("%d", envelope.Ref)
		credDef.Tag = envelope.Tag
	}
	return result.ID, &credDef, nil
}

func (c *Client) ParseGetRevocRegDefResponse(resp *ledger.Response) (string, *ledger.RevocationRegistryDefinition, error) {
	data, ok := resp.Data()
	if !ok {
		return "", nil, fmt.Errorf("get revoc reg def response carries no data")
	}
	var def ledger.RevocationRegistryDefinition
	if err := json.Unmarshal(data, &def); err != nil {
		return "", nil, fmt.Errorf("parse get revoc reg def response: %w", err)
	}
	return def.ID, &def, nil
}

func (c *Client) ParseGetRevocRegResponse(resp *ledger.Response) (string, *ledger.RevocationRegistry, int64, error) {
	data, ok := resp.Data()
	if !ok {
		return "", nil, 0, fmt.Errorf("get revoc reg response carries no data")
	}
	var result struct {
		RevocRegDefID string `json:"revocRegDefId"`
		TxnTime       int64  `json:"txnTime"`
	}
	_ = json.Unmarshal(resp.Result, &result)

	var reg ledger.RevocationRegistry
	if err := json.Unmarshal(data, &reg); err != nil {
		return "", nil, 0, fmt.Errorf("parse get revoc reg response: %w", err)
	}
	return result.RevocRegDefID, &reg, result.TxnTime, nil
}

func (c *Client) ParseGetRevocRegDeltaResponse(resp *ledger.Response) (string, *ledger.RevocationRegistryDelta, int64, error) {
	data, ok := resp.Data()
	if !ok {
		return "", nil, 0, fmt.Errorf("get revoc reg delta response carries no data")
	}
	var result struct {
		RevocRegDefID string `json:"revocRegDefId"`
		To            int64  `json:"to"`
	}
	_ = json.Unmarshal(resp.Result, &result)

	var delta ledger.RevocationRegistryDelta
	if err := json.Unmarshal(data, &delta); err != nil {
		return "", nil, 0, fmt.Errorf("parse get revoc reg delta response: %w", err)
	}
	return result.RevocRegDefID, &delta, result.To, nil
}
