package pactsign

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

var hexRe = regexp.MustCompile(`^[0-9a-f]{64}$`)

func TestFingerprint_Format(t *testing.T) {
	fp := Fingerprint("alpha", "beta")
	assert.Regexp(t, hexRe, fp, "fingerprint must be 64 lowercase hex chars")
}

func TestFingerprint_Deterministic(t *testing.T) {
	assert.Equal(t, Fingerprint("a", "b"), Fingerprint("a", "b"))
}

func TestFingerprint_OrderSensitive(t *testing.T) {
	assert.NotEqual(t, Fingerprint("a", "b"), Fingerprint("b", "a"))
}

func TestFingerprint_DetectsKeyChange(t *testing.T) {
	pair1, err := GenerateKeyPair(Secp256r1)
	assert.NoError(t, err)
	pair2, err := GenerateKeyPair(Secp256r1)
	assert.NoError(t, err)

	atFormation := Fingerprint(pair1.Private, pair2.Private)

	substituted, err := GenerateKeyPair(Secp256r1)
	assert.NoError(t, err)
	atValidation := Fingerprint(pair1.Private, substituted.Private)

	assert.NotEqual(t, atFormation, atValidation)
	assert.Equal(t, atFormation, Fingerprint(pair1.Private, pair2.Private))
}
