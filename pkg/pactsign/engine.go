package pactsign

import (
	"crypto/ecdsa"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"fmt"

	"github.com/pactsign/pactsign/internal/keycodec"
)

// KeyPair holds a freshly generated key pair: the private key in base64
// PKCS#8 form and the public key in base64 SubjectPublicKeyInfo form.
type KeyPair struct {
	Private string
	Public  string
}

// GenerateKeyPair creates a new ECDSA key pair on the named curve using a
// cryptographically secure random source.
func GenerateKeyPair(curve Curve) (KeyPair, error) {
	ec := curve.ellipticCurve()
	if ec == nil {
		return KeyPair{}, fmt.Errorf("%w: unsupported curve %q", ErrCurveNotFound, curve)
	}

	key, err := ecdsa.GenerateKey(ec, rand.Reader)
	if err != nil {
		return KeyPair{}, fmt.Errorf("generating %s key: %w", curve, err)
	}

	privDER, err := keycodec.MarshalPrivateKey(key)
	if err != nil {
		return KeyPair{}, fmt.Errorf("encoding %s private key: %w", curve, err)
	}
	pubDER, err := keycodec.MarshalPublicKey(&key.PublicKey)
	if err != nil {
		return KeyPair{}, fmt.Errorf("encoding %s public key: %w", curve, err)
	}

	return KeyPair{
		Private: base64.StdEncoding.EncodeToString(privDER),
		Public:  base64.StdEncoding.EncodeToString(pubDER),
	}, nil
}

// Sign hashes the UTF-8 encoding of message with SHA-256 and signs the
// digest with the given base64 PKCS#8 private key, which must be on the
// asserted curve. The signature is returned as base64 ASN.1 DER.
//
// ECDSA signing is randomized; only the verification outcome is
// deterministic, not the signature bytes.
func Sign(message, privateKey string, curve Curve) (string, error) {
	ec := curve.ellipticCurve()
	if ec == nil {
		return "", fmt.Errorf("%w: unsupported curve %q", ErrCurveNotFound, curve)
	}

	der, err := base64.StdEncoding.DecodeString(privateKey)
	if err != nil {
		return "", fmt.Errorf("%w: private key is not valid base64: %v", ErrInvalidEncoding, err)
	}
	key, err := keycodec.ParsePrivateKey(der, ec)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrKeyImport, err)
	}

	digest := sha256.Sum256([]byte(message))
	sig, err := ecdsa.SignASN1(rand.Reader, key, digest[:])
	if err != nil {
		return "", fmt.Errorf("signing with %s key: %w", curve, err)
	}
	return base64.StdEncoding.EncodeToString(sig), nil
}

// Verify re-hashes the message and checks the base64 ASN.1 DER signature
// against the base64 SubjectPublicKeyInfo public key on the asserted curve.
//
// A cryptographic mismatch (wrong signature, tampered message, wrong key)
// is a normal false result, not an error. Errors are reserved for
// structurally malformed input: undecodable base64 or a key that does not
// import under the asserted curve.
func Verify(message, signature, publicKey string, curve Curve) (bool, error) {
	ec := curve.ellipticCurve()
	if ec == nil {
		return false, fmt.Errorf("%w: unsupported curve %q", ErrCurveNotFound, curve)
	}

	sig, err := base64.StdEncoding.DecodeString(signature)
	if err != nil {
		return false, fmt.Errorf("%w: signature is not valid base64: %v", ErrInvalidEncoding, err)
	}
	der, err := base64.StdEncoding.DecodeString(publicKey)
	if err != nil {
		return false, fmt.Errorf("%w: public key is not valid base64: %v", ErrInvalidEncoding, err)
	}
	key, err := keycodec.ParsePublicKey(der, ec)
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrKeyImport, err)
	}

	digest := sha256.Sum256([]byte(message))
	return ecdsa.VerifyASN1(key, digest[:], sig), nil
}
