package ledger

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"
)

var errMalformed = errors.New("unexpected response shape")

// memoryCache is a test double for the Redis-backed entity cache.
type memoryCache struct {
	schemas  map[string]*Schema
	credDefs map[string]*CredentialDefinition
}

func newMemoryCache() *memoryCache {
	return &memoryCache{
		schemas:  make(map[string]*Schema),
		credDefs: make(map[string]*CredentialDefinition),
	}
}

func (c *memoryCache) Schema(_ context.Context, id string) (*Schema, bool) {
	s, ok := c.schemas[id]
	return s, ok
}

func (c *memoryCache) PutSchema(_ context.Context, id string, schema *Schema) {
	c.schemas[id] = schema
}

func (c *memoryCache) CredDef(_ context.Context, id string) (*CredentialDefinition, bool) {
	d, ok := c.credDefs[id]
	return d, ok
}

func (c *memoryCache) PutCredDef(_ context.Context, id string, credDef *CredentialDefinition) {
	c.credDefs[id] = credDef
}

type ReadPipelineSuite struct {
	suite.Suite
	sdk   *fakeClient
	cache *memoryCache
}

func TestReadPipelineSuite(t *testing.T) {
	suite.Run(t, new(ReadPipelineSuite))
}

func (s *ReadPipelineSuite) SetupTest() {
	s.sdk = &fakeClient{}
	s.cache = newMemoryCache()
}

func (s *ReadPipelineSuite) gateway() *Gateway {
	return New(s.sdk, openPool(s.sdk), WithCache(s.cache))
}

func (s *ReadPipelineSuite) TestGetSchemaParsesAndCaches() {
	schemaID := "V4SGRU86Z58d6TV7PBUe6f:2:degree:1.0"
	s.sdk.parseGetSchema = func(*Response) (string, *Schema, error) {
		return schemaID, &Schema{ID: schemaID, Name: "degree", Version: "1.0", AttrNames: []string{"name", "gpa"}}, nil
	}

	id, schema, err := s.gateway().GetSchema(context.Background(), "did:sub", schemaID)
	s.Require().NoError(err)
	s.Equal(schemaID, id)
	s.Equal("degree", schema.Name)

	cached, ok := s.cache.Schema(context.Background(), schemaID)
	s.True(ok)
	s.Equal(schema, cached)
}

func (s *ReadPipelineSuite) TestGetSchemaServedFromCacheSkipsPool() {
	schemaID := "V4SGRU86Z58d6TV7PBUe6f:2:degree:1.0"
	s.cache.PutSchema(context.Background(), schemaID, &Schema{ID: schemaID, Name: "degree"})

	id, schema, err := s.gateway().GetSchema(context.Background(), "did:sub", schemaID)
	s.Require().NoError(err)
	s.Equal(schemaID, id)
	s.Equal("degree", schema.Name)
	s.Zero(s.sdk.submitCalls)
	s.Empty(s.sdk.buildCalls)
}

func (s *ReadPipelineSuite) TestGetCredDefServedFromCacheSkipsPool() {
	credDefID := "V4SGRU86Z58d6TV7PBUe6f:3:CL:44:TAG1"
	s.cache.PutCredDef(context.Background(), credDefID, &CredentialDefinition{ID: credDefID, Tag: "TAG1"})

	id, credDef, err := s.gateway().GetCredDef(context.Background(), "did:sub", credDefID)
	s.Require().NoError(err)
	s.Equal(credDefID, id)
	s.Equal("TAG1", credDef.Tag)
	s.Zero(s.sdk.submitCalls)
}

func (s *ReadPipelineSuite) TestGetRevocRegReturnsLedgerTimestamp() {
	s.sdk.parseGetRevocReg = func(*Response) (string, *RevocationRegistry, int64, error) {
		return "revreg-1", &RevocationRegistry{}, 1700000100, nil
	}

	id, reg, ts, err := s.gateway().GetRevocReg(context.Background(), "did:sub", "revreg-1", 1700000999)
	s.Require().NoError(err)
	s.Equal("revreg-1", id)
	s.NotNil(reg)
	// The accumulator's own timestamp wins over the requested one.
	s.Equal(int64(1700000100), ts)
}

func (s *ReadPipelineSuite) TestCacheWriteSkippedWhenParseFails() {
	schemaID := "V4SGRU86Z58d6TV7PBUe6f:2:degree:1.0"
	s.sdk.parseGetSchema = func(*Response) (string, *Schema, error) {
		return "", nil, errMalformed
	}

	_, _, err := s.gateway().GetSchema(context.Background(), "did:sub", schemaID)
	s.ErrorIs(err, errMalformed)

	_, ok := s.cache.Schema(context.Background(), schemaID)
	s.False(ok)
}
