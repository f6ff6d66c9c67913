package ledger

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"
)

// ResolveVerifierIdentifiers fetches every ledger entity referenced by a
// proof: each bundle's schema and credential definition always, plus the
// revocation registry definition and the registry state at the bundle's
// timestamp when a registry id is present.
//
// Lookups for distinct ids commute, so they fan out concurrently; the result
// maps are keyed by entity id, which deduplicates repeated identifiers.
// Ledger entities are immutable, so a later overwrite of an already-resolved
// id is a no-op and is tolerated regardless of completion order. Registry
// states nest under their definition id keyed by the accumulator timestamp
// the ledger returned.
func (g *Gateway) ResolveVerifierIdentifiers(ctx context.Context, submitterDID string, identifiers []ProofIdentifier) (*ResolvedEntities, error) {
	resolved := &ResolvedEntities{
		Schemas:    make(map[string]*Schema),
		CredDefs:   make(map[string]*CredentialDefinition),
		RevRegDefs: make(map[string]*RevocationRegistryDefinition),
		RevRegs:    make(map[string]map[int64]*RevocationRegistry),
	}

	var mu sync.Mutex
	eg, ctx := errgroup.WithContext(ctx)

	for _, ident := range identifiers {
		eg.Go(func() error {
			id, schema, err := g.GetSchema(ctx, submitterDID, ident.SchemaID)
			if err != nil {
				return err
			}
			mu.Lock()
			resolved.Schemas[id] = schema
			mu.Unlock()
			return nil
		})

		eg.Go(func() error {
			id, credDef, err := g.GetCredDef(ctx, submitterDID, ident.CredDefID)
			if err != nil {
				return err
			}
			mu.Lock()
			resolved.CredDefs[id] = credDef
			mu.Unlock()
			return nil
		})

		if ident.RevRegID == "" {
			continue
		}

		eg.Go(func() error {
			id, def, err := g.GetRevocRegDef(ctx, submitterDID, ident.RevRegID)
			if err != nil {
				return err
			}
			mu.Lock()
			resolved.RevRegDefs[id] = def
			mu.Unlock()
			return nil
		})

		eg.Go(func() error {
			id, reg, timestamp, err := g.GetRevocReg(ctx, submitterDID, ident.RevRegID, ident.Timestamp)
			if err != nil {
				return err
			}
			mu.Lock()
			if resolved.RevRegs[id] == nil {
				resolved.RevRegs[id] = make(map[int64]*RevocationRegistry)
			}
			resolved.RevRegs[id][timestamp] = reg
			mu.Unlock()
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return resolved, nil
}
