package pactsign

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// Identifier determines which named curve an encoded key belongs to by
// matching its canonical base64 form against a registry of encoding
// headers. It holds no mutable state and is safe for concurrent use.
type Identifier struct {
	reg *Registry
}

// NewIdentifier creates an identifier over the given registry.
func NewIdentifier(reg *Registry) *Identifier {
	return &Identifier{reg: reg}
}

// IdentifyCurve returns the curve a base64-encoded key was generated on.
//
// The input is decoded and re-encoded to canonical standard base64 first,
// so padding stripped in transit or surrounding whitespace does not defeat
// the prefix match. Returns ErrInvalidEncoding for empty or undecodable
// input and ErrCurveNotFound when no registry header matches.
func (id *Identifier) IdentifyCurve(encodedKey string) (Curve, error) {
	trimmed := strings.TrimSpace(encodedKey)
	if trimmed == "" {
		return CurveUnknown, fmt.Errorf("%w: empty key", ErrInvalidEncoding)
	}

	raw, err := base64.StdEncoding.DecodeString(trimmed)
	if err != nil {
		raw, err = base64.RawStdEncoding.DecodeString(trimmed)
	}
	if err != nil {
		return CurveUnknown, fmt.Errorf("%w: %v", ErrInvalidEncoding, err)
	}

	canonical := base64.StdEncoding.EncodeToString(raw)
	curve, ok := id.reg.Lookup(canonical)
	if !ok {
		return CurveUnknown, fmt.Errorf("%w: no header matches key encoding", ErrCurveNotFound)
	}
	return curve, nil
}
