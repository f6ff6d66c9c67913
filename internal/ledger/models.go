package ledger

import "encoding/json"

// Nym is a DID registration entry on the domain ledger.
type Nym struct {
	DID    string `json:"dest"`
	Verkey string `json:"verkey"`
	Role   string `json:"role,omitempty"`
}

// Schema describes the attribute list credentials are issued against.
type Schema struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Version   string   `json:"version"`
	AttrNames []string `json:"attrNames"`
	SeqNo     int      `json:"seqNo,omitempty"`
	Ver       string   `json:"ver,omitempty"`
}

// CredentialDefinition binds an issuer's keys to a schema. Value carries the
// cryptographic material untouched; the gateway never inspects it.
type CredentialDefinition struct {
	ID       string          `json:"id"`
	SchemaID string          `json:"schemaId"`
	Type     string          `json:"type"`
	Tag      string          `json:"tag"`
	Value    json.RawMessage `json:"value"`
	Ver      string          `json:"ver,omitempty"`
}

// RevocationRegistryDefinition declares a revocation registry for a
// credential definition.
type RevocationRegistryDefinition struct {
	ID           string          `json:"id"`
	CredDefID    string          `json:"credDefId"`
	RevocDefType string          `json:"revocDefType"`
	Tag          string          `json:"tag"`
	Value        json.RawMessage `json:"value"`
	Ver          string          `json:"ver,omitempty"`
}

// RevocationRegistry is the accumulator state of a registry at one point in
// time.
type RevocationRegistry struct {
	Value json.RawMessage `json:"value"`
	Ver   string          `json:"ver,omitempty"`
}

// RevocationRegistryDelta captures accumulator changes between two points in
// time.
type RevocationRegistryDelta struct {
	Value json.RawMessage `json:"value"`
	Ver   string          `json:"ver,omitempty"`
}

// ProofIdentifier is one per-credential identifier bundle from a proof.
// RevRegID and Timestamp are optional; a proof over a non-revocable
// credential carries neither.
type ProofIdentifier struct {
	SchemaID  string `json:"schema_id"`
	CredDefID string `json:"cred_def_id"`
	RevRegID  string `json:"rev_reg_id,omitempty"`
	Timestamp int64  `json:"timestamp,omitempty"`
}

// ResolvedEntities holds everything a verifier needs to check a proof, keyed
// by entity id. RevRegs nests registry states by definition id and then by
// the accumulator timestamp the ledger returned, so one resolution can carry
// multiple time points per registry.
type ResolvedEntities struct {
	Schemas    map[string]*Schema                       `json:"schemas"`
	CredDefs   map[string]*CredentialDefinition         `json:"cred_defs"`
	RevRegDefs map[string]*RevocationRegistryDefinition `json:"rev_reg_defs"`
	RevRegs    map[string]map[int64]*RevocationRegistry `json:"rev_regs"`
}
