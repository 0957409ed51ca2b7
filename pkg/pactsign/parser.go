package pactsign

import (
	"encoding/json"
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// ContractDocument is the on-disk form of a contract: the message, the
// canonical curve name, both public keys and optionally any signatures
// already collected.
type ContractDocument struct {
	Message    string `json:"message" yaml:"message"`
	CurveName  string `json:"curve" yaml:"curve"`
	PublicKey1 string `json:"public_key_1" yaml:"public_key_1"`
	PublicKey2 string `json:"public_key_2" yaml:"public_key_2"`
	Signature1 string `json:"signature_1,omitempty" yaml:"signature_1,omitempty"`
	Signature2 string `json:"signature_2,omitempty" yaml:"signature_2,omitempty"`
}

// Contract materializes the document as a Contract, applying any recorded
// signatures. The curve name must be one of the canonical enumeration
// names; anything else fails with ErrCurveNotFound.
func (d *ContractDocument) Contract() (*Contract, error) {
	curve, ok := CurveByName(d.CurveName)
	if !ok {
		return nil, fmt.Errorf("%w: unknown curve name %q", ErrCurveNotFound, d.CurveName)
	}
	c := NewContract(d.Message, d.PublicKey1, d.PublicKey2, curve)
	if d.Signature1 != "" {
		if err := c.Sign(PartyFirst, d.Signature1); err != nil {
			return nil, err
		}
	}
	if d.Signature2 != "" {
		if err := c.Sign(PartySecond, d.Signature2); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// ContractParser defines the interface for loading contract documents from
// various sources.
type ContractParser interface {
	// ParseContract loads a contract document from a file.
	ParseContract(path string) (*ContractDocument, error)
}

// JSONParser loads contract documents from JSON files.
type JSONParser struct{}

// ParseContract parses a contract document from a JSON file.
func (p *JSONParser) ParseContract(path string) (*ContractDocument, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	var doc ContractDocument
	dec := json.NewDecoder(file)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}
	return &doc, nil
}

// YAMLParser loads contract documents from YAML files.
type YAMLParser struct{}

// ParseContract parses a contract document from a YAML file.
func (p *YAMLParser) ParseContract(path string) (*ContractDocument, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	var doc ContractDocument
	if err := yaml.UnmarshalStrict(raw, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	return &doc, nil
}
