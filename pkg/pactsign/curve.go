package pactsign

import (
	"crypto/elliptic"
	"strings"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// Curve identifies a named elliptic curve supported by the contract core.
// The zero value means "unknown".
type Curve uint8

const (
	CurveUnknown Curve = iota
	Secp224r1
	Secp256r1
	Secp256k1
	Secp384r1
	Secp521r1
)

// String returns the canonical lowercase curve name. This textual form is
// the public contract with callers and must match CurveByName.
func (c Curve) String() string {
	switch c {
	case Secp224r1:
		return "secp224r1"
	case Secp256r1:
		return "secp256r1"
	case Secp256k1:
		return "secp256k1"
	case Secp384r1:
		return "secp384r1"
	case Secp521r1:
		return "secp521r1"
	default:
		return "unknown"
	}
}

// CurveByName resolves a canonical lowercase curve name.
func CurveByName(name string) (Curve, bool) {
	for _, e := range curveTable {
		if e.Curve.String() == name {
			return e.Curve, true
		}
	}
	return CurveUnknown, false
}

// Curves returns all supported curves in registry order.
func Curves() []Curve {
	out := make([]Curve, len(curveTable))
	for i, e := range curveTable {
		out[i] = e.Curve
	}
	return out
}

// ellipticCurve returns the parameter set backing a named curve.
func (c Curve) ellipticCurve() elliptic.Curve {
	switch c {
	case Secp224r1:
		return elliptic.P224()
	case Secp256r1:
		return elliptic.P256()
	case Secp256k1:
		return secp256k1.S256()
	case Secp384r1:
		return elliptic.P384()
	case Secp521r1:
		return elliptic.P521()
	default:
		return nil
	}
}

// RegistryEntry binds a curve to the base64 prefixes of its private
// (PKCS#8) and public (SubjectPublicKeyInfo) encodings. The headers are the
// fixed leading bytes of the DER structure: outer SEQUENCE, version,
// algorithm identifier with the named-curve OID, and the tags preceding the
// variable key material. They hold for any key on the curve because every
// field before the key material has a fixed length.
type RegistryEntry struct {
	Curve         Curve
	PrivateHeader string
	PublicHeader  string
}

// curveTable is the single source of truth: it defines both the curve
// enumeration surface and the header lookup. Adding a curve means adding
// one row (plus arithmetic support in the engine); the two can no longer
// drift apart.
var curveTable = []RegistryEntry{
	{Secp224r1, "MHgCAQAwEAYHKoZIzj0CAQYFK4EEACEEYTBfAgEB", "ME4wEAYHKoZIzj0CAQYFK4EEACEDOgAE"},
	{Secp256r1, "MIGHAgEAMBMGByqGSM49AgEGCCqGSM49AwEHBG0wawIBAQQg", "MFkwEwYHKoZIzj0CAQYIKoZIzj0DAQcDQgAE"},
	{Secp256k1, "MIGEAgEAMBAGByqGSM49AgEGBSuBBAAKBG0wawIBAQQg", "MFYwEAYHKoZIzj0CAQYFK4EEAAoDQgAE"},
	{Secp384r1, "MIG2AgEAMBAGByqGSM49AgEGBSuBBAAiBIGeMIGbAgEB", "MHYwEAYHKoZIzj0CAQYFK4EEACIDYgAE"},
	{Secp521r1, "MIHuAgEAMBAGByqGSM49AgEGBSuBBAAjBIHWMIHTAgEB", "MIGbMBAGByqGSM49AgEGBSuBBAAjA4GG"},
}

// Registry maps encoding headers to curves. It is immutable after
// construction and safe for concurrent use.
type Registry struct {
	entries []RegistryEntry
}

// NewRegistry builds a registry from explicit entries. Entries are matched
// in order; headers must be prefix-disjoint across entries, which is the
// caller's construction invariant (DefaultRegistry guarantees it).
func NewRegistry(entries []RegistryEntry) *Registry {
	cp := make([]RegistryEntry, len(entries))
	copy(cp, entries)
	return &Registry{entries: cp}
}

// DefaultRegistry returns a registry covering every supported curve.
func DefaultRegistry() *Registry {
	return NewRegistry(curveTable)
}

// Lookup returns the curve of the first entry whose private or public
// header prefixes the canonical base64 encoding.
func (r *Registry) Lookup(canonical string) (Curve, bool) {
	for _, e := range r.entries {
		if strings.HasPrefix(canonical, e.PrivateHeader) || strings.HasPrefix(canonical, e.PublicHeader) {
			return e.Curve, true
		}
	}
	return CurveUnknown, false
}

// Entries returns a copy of the registry contents.
func (r *Registry) Entries() []RegistryEntry {
	cp := make([]RegistryEntry, len(r.entries))
	copy(cp, r.entries)
	return cp
}
