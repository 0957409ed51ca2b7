// Package keycodec encodes and decodes ECDSA keys in the standard DER
// structures: PKCS#8 for private keys and SubjectPublicKeyInfo for public
// keys. It extends crypto/x509 with a secp256k1 path, emitting the exact
// byte layout x509 produces for the NIST curves so that the leading bytes
// of an encoded key are deterministic per curve and key type.
package keycodec

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/asn1"
	"fmt"
	"math/big"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

var (
	oidPublicKeyECDSA = asn1.ObjectIdentifier{1, 2, 840, 10045, 2, 1}
	oidCurveSecp256k1 = asn1.ObjectIdentifier{1, 3, 132, 0, 10}
)

// pkcs8 mirrors the structure marshaled by x509.MarshalPKCS8PrivateKey.
type pkcs8 struct {
	Version    int
	Algo       pkix.AlgorithmIdentifier
	PrivateKey []byte
}

// ecPrivateKey is the SEC 1 ECPrivateKey structure. The curve OID is
// carried in the outer PKCS#8 algorithm identifier, so it is omitted here,
// matching x509's layout.
type ecPrivateKey struct {
	Version       int
	PrivateKey    []byte
	NamedCurveOID asn1.ObjectIdentifier `asn1:"optional,explicit,tag:0"`
	PublicKey     asn1.BitString        `asn1:"optional,explicit,tag:1"`
}

// publicKeyInfo mirrors the SubjectPublicKeyInfo structure marshaled by
// x509.MarshalPKIXPublicKey.
type publicKeyInfo struct {
	Algo      pkix.AlgorithmIdentifier
	PublicKey asn1.BitString
}

func isSecp256k1(curve elliptic.Curve) bool {
	return curve == secp256k1.S256()
}

// MarshalPrivateKey serializes an ECDSA private key into PKCS#8 DER.
func MarshalPrivateKey(key *ecdsa.PrivateKey) ([]byte, error) {
	if key == nil {
		return nil, fmt.Errorf("keycodec: nil private key")
	}
	if !isSecp256k1(key.Curve) {
		return x509.MarshalPKCS8PrivateKey(key)
	}

	priv := make([]byte, (key.Curve.Params().N.BitLen()+7)/8)
	key.D.FillBytes(priv)
	point := elliptic.Marshal(key.Curve, key.X, key.Y)

	ecDER, err := asn1.Marshal(ecPrivateKey{
		Version:    1,
		PrivateKey: priv,
		PublicKey:  asn1.BitString{Bytes: point, BitLength: len(point) * 8},
	})
	if err != nil {
		return nil, fmt.Errorf("keycodec: marshaling secp256k1 key: %w", err)
	}

	oidBytes, err := asn1.Marshal(oidCurveSecp256k1)
	if err != nil {
		return nil, fmt.Errorf("keycodec: marshaling curve OID: %w", err)
	}

	return asn1.Marshal(pkcs8{
		Algo: pkix.AlgorithmIdentifier{
			Algorithm:  oidPublicKeyECDSA,
			Parameters: asn1.RawValue{FullBytes: oidBytes},
		},
		PrivateKey: ecDER,
	})
}

// ParsePrivateKey parses a PKCS#8 DER private key and checks that it lies
// on the given curve.
func ParsePrivateKey(der []byte, curve elliptic.Curve) (*ecdsa.PrivateKey, error) {
	if isSecp256k1(curve) {
		return parseSecp256k1Private(der)
	}

	parsed, err := x509.ParsePKCS8PrivateKey(der)
	if err != nil {
		return nil, fmt.Errorf("keycodec: parsing PKCS#8 private key: %w", err)
	}
	key, ok := parsed.(*ecdsa.PrivateKey)
	if !ok {
		return nil, fmt.Errorf("keycodec: not an ECDSA private key (%T)", parsed)
	}
	if key.Curve != curve {
		return nil, fmt.Errorf("keycodec: private key is on %s, not the asserted curve", key.Curve.Params().Name)
	}
	return key, nil
}

func parseSecp256k1Private(der []byte) (*ecdsa.PrivateKey, error) {
	var p8 pkcs8
	if rest, err := asn1.Unmarshal(der, &p8); err != nil {
		return nil, fmt.Errorf("keycodec: parsing PKCS#8 structure: %w", err)
	} else if len(rest) != 0 {
		return nil, fmt.Errorf("keycodec: trailing data after PKCS#8 structure")
	}
	if !p8.Algo.Algorithm.Equal(oidPublicKeyECDSA) {
		return nil, fmt.Errorf("keycodec: not an EC private key (algorithm %v)", p8.Algo.Algorithm)
	}
	var oid asn1.ObjectIdentifier
	if _, err := asn1.Unmarshal(p8.Algo.Parameters.FullBytes, &oid); err != nil {
		return nil, fmt.Errorf("keycodec: parsing named curve OID: %w", err)
	}
	if !oid.Equal(oidCurveSecp256k1) {
		return nil, fmt.Errorf("keycodec: private key curve OID %v is not secp256k1", oid)
	}

	var ecKey ecPrivateKey
	if _, err := asn1.Unmarshal(p8.PrivateKey, &ecKey); err != nil {
		return nil, fmt.Errorf("keycodec: parsing ECPrivateKey structure: %w", err)
	}
	if ecKey.Version != 1 {
		return nil, fmt.Errorf("keycodec: unsupported ECPrivateKey version %d", ecKey.Version)
	}

	d := new(big.Int).SetBytes(ecKey.PrivateKey)
	if d.Sign() <= 0 || d.Cmp(secp256k1.S256().Params().N) >= 0 {
		return nil, fmt.Errorf("keycodec: secp256k1 scalar out of range")
	}

	scalar := make([]byte, 32)
	d.FillBytes(scalar)
	pub := secp256k1.PrivKeyFromBytes(scalar).PubKey().ToECDSA()
	return &ecdsa.PrivateKey{PublicKey: *pub, D: d}, nil
}

// MarshalPublicKey serializes an ECDSA public key into SubjectPublicKeyInfo
// DER, with the point in uncompressed form.
func MarshalPublicKey(key *ecdsa.PublicKey) ([]byte, error) {
	if key == nil {
		return nil, fmt.Errorf("keycodec: nil public key")
	}
	if !isSecp256k1(key.Curve) {
		return x509.MarshalPKIXPublicKey(key)
	}

	point := elliptic.Marshal(key.Curve, key.X, key.Y)
	oidBytes, err := asn1.Marshal(oidCurveSecp256k1)
	if err != nil {
		return nil, fmt.Errorf("keycodec: marshaling curve OID: %w", err)
	}

	return asn1.Marshal(publicKeyInfo{
		Algo: pkix.AlgorithmIdentifier{
			Algorithm:  oidPublicKeyECDSA,
			Parameters: asn1.RawValue{FullBytes: oidBytes},
		},
		PublicKey: asn1.BitString{Bytes: point, BitLength: len(point) * 8},
	})
}

// ParsePublicKey parses a SubjectPublicKeyInfo DER public key and checks
// that it lies on the given curve.
func ParsePublicKey(der []byte, curve elliptic.Curve) (*ecdsa.PublicKey, error) {
	if isSecp256k1(curve) {
		return parseSecp256k1Public(der)
	}

	parsed, err := x509.ParsePKIXPublicKey(der)
	if err != nil {
		return nil, fmt.Errorf("keycodec: parsing SubjectPublicKeyInfo: %w", err)
	}
	key, ok := parsed.(*ecdsa.PublicKey)
	if !ok {
		return nil, fmt.Errorf("keycodec: not an ECDSA public key (%T)", parsed)
	}
	if key.Curve != curve {
		return nil, fmt.Errorf("keycodec: public key is on %s, not the asserted curve", key.Curve.Params().Name)
	}
	return key, nil
}

func parseSecp256k1Public(der []byte) (*ecdsa.PublicKey, error) {
	var info publicKeyInfo
	if rest, err := asn1.Unmarshal(der, &info); err != nil {
		return nil, fmt.Errorf("keycodec: parsing SubjectPublicKeyInfo: %w", err)
	} else if len(rest) != 0 {
		return nil, fmt.Errorf("keycodec: trailing data after SubjectPublicKeyInfo")
	}
	if !info.Algo.Algorithm.Equal(oidPublicKeyECDSA) {
		return nil, fmt.Errorf("keycodec: not an EC public key (algorithm %v)", info.Algo.Algorithm)
	}
	var oid asn1.ObjectIdentifier
	if _, err := asn1.Unmarshal(info.Algo.Parameters.FullBytes, &oid); err != nil {
		return nil, fmt.Errorf("keycodec: parsing named curve OID: %w", err)
	}
	if !oid.Equal(oidCurveSecp256k1) {
		return nil, fmt.Errorf("keycodec: public key curve OID %v is not secp256k1", oid)
	}

	pub, err := secp256k1.ParsePubKey(info.PublicKey.RightAlign())
	if err != nil {
		return nil, fmt.Errorf("keycodec: parsing secp256k1 point: %w", err)
	}
	return pub.ToECDSA(), nil
}
