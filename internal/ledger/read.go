package ledger

import "context"

// Read pipeline: every get composes execute (with the retry-wrapped read
// submit) and the SDK parse step for its query type. Parse only runs on
// non-rejected responses; a response whose data never became visible fails in
// the parse step and propagates to the caller unmasked.

// GetNym resolves a DID registration from the domain ledger.
func (g *Gateway) GetNym(ctx context.Context, submitterDID, targetDID string) (*Nym, error) {
	resp, err := g.execute(ctx, "GET_NYM", func(ctx context.Context) (Request, error) {
		return g.sdk.BuildGetNymRequest(ctx, submitterDID, targetDID)
	}, g.readSubmit())
	if err != nil {
		return nil, err
	}
	return g.sdk.ParseGetNymResponse(resp)
}

// GetSchema resolves a schema by id, consulting the immutable entity cache
// first when one is configured.
func (g *Gateway) GetSchema(ctx context.Context, submitterDID, schemaID string) (string, *Schema, error) {
	if g.cache != nil {
		if schema, ok := g.cache.Schema(ctx, schemaID); ok {
			g.metrics.CacheHit("schema")
			return schemaID, schema, nil
		}
		g.metrics.CacheMiss("schema")
	}

	resp, err := g.execute(ctx, "GET_SCHEMA", func(ctx context.Context) (Request, error) {
		return g.sdk.BuildGetSchemaRequest(ctx, submitterDID, schemaID)
	}, g.readSubmit())
	if err != nil {
		return "", nil, err
	}

	id, schema, err := g.sdk.ParseGetSchemaResponse(resp)
	if err != nil {
		return "", nil, err
	}
	if g.cache != nil {
		g.cache.PutSchema(ctx, id, schema)
	}
	return id, schema, nil
}

// GetCredDef resolves a credential definition by id, consulting the cache
// first when one is configured.
func (g *Gateway) GetCredDef(ctx context.Context, submitterDID, credDefID string) (string, *CredentialDefinition, error) {
	if g.cache != nil {
		if credDef, ok := g.cache.CredDef(ctx, credDefID); ok {
			g.metrics.CacheHit("cred_def")
			return credDefID, credDef, nil
		}
		g.metrics.CacheMiss("cred_def")
	}

	resp, err := g.execute(ctx, "GET_CRED_DEF", func(ctx context.Context) (Request, error) {
		return g.sdk.BuildGetCredDefRequest(ctx, submitterDID, credDefID)
	}, g.readSubmit())
	if err != nil {
		return "", nil, err
	}

	id, credDef, err := g.sdk.ParseGetCredDefResponse(resp)
	if err != nil {
		return "", nil, err
	}
	if g.cache != nil {
		g.cache.PutCredDef(ctx, id, credDef)
	}
	return id, credDef, nil
}

// GetRevocRegDef resolves a revocation registry definition by id.
func (g *Gateway) GetRevocRegDef(ctx context.Context, submitterDID, revRegDefID string) (string, *RevocationRegistryDefinition, error) {
	resp, err := g.execute(ctx, "GET_REVOC_REG_DEF", func(ctx context.Context) (Request, error) {
		return g.sdk.BuildGetRevocRegDefRequest(ctx, submitterDID, revRegDefID)
	}, g.readSubmit())
	if err != nil {
		return "", nil, err
	}
	return g.sdk.ParseGetRevocRegDefResponse(resp)
}

// GetRevocReg resolves the revocation registry state at or before timestamp.
// The returned timestamp is the accumulator's own, which may precede the
// requested one.
func (g *Gateway) GetRevocReg(ctx context.Context, submitterDID, revRegDefID string, timestamp int64) (string, *RevocationRegistry, int64, error) {
	resp, err := g.execute(ctx, "GET_REVOC_REG", func(ctx context.Context) (Request, error) {
		return g.sdk.BuildGetRevocRegRequest(ctx, submitterDID, revRegDefID, timestamp)
	}, g.readSubmit())
	if err != nil {
		return "", nil, 0, err
	}
	return g.sdk.ParseGetRevocRegResponse(resp)
}

// GetRevocRegDelta resolves accumulator changes between from and to.
func (g *Gateway) GetRevocRegDelta(ctx context.Context, submitterDID, revRegDefID string, from, to int64) (string, *RevocationRegistryDelta, int64, error) {
	resp, err := g.execute(ctx, "GET_REVOC_REG_DELTA", func(ctx context.Context) (Request, error) {
		return g.sdk.BuildGetRevocRegDeltaRequest(ctx, submitterDID, revRegDefID, from, to)
	}, g.readSubmit())
	if err != nil {
		return "", nil, 0, err
	}
	return g.sdk.ParseGetRevocRegDeltaResponse(resp)
}
