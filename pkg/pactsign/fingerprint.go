package pactsign

import (
	"crypto/sha256"
	"encoding/hex"
)

// Fingerprint computes a tamper-detection token over two secrets: the
// SHA-256 digest of their concatenated UTF-8 bytes, rendered as lowercase
// hex. It is order-sensitive and deterministic. Callers capture the
// fingerprint at contract formation and compare it against a fresh one
// before validation; a mismatch means the key material changed in between.
func Fingerprint(secret1, secret2 string) string {
	digest := sha256.Sum256([]byte(secret1 + secret2))
	return hex.EncodeToString(digest[:])
}
