package pactsign

import (
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietChecker() *Checker {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return NewChecker(defaultIdentifier()).WithLogger(log)
}

func TestChecker_SameCurveAgrees(t *testing.T) {
	checker := quietChecker()
	for _, curve := range Curves() {
		t.Run(curve.String(), func(t *testing.T) {
			pair1, err := GenerateKeyPair(curve)
			require.NoError(t, err)
			pair2, err := GenerateKeyPair(curve)
			require.NoError(t, err)

			got, ok := checker.PrivateKeysAgree(pair1.Private, pair2.Private)
			require.True(t, ok)
			assert.Equal(t, curve, got)

			got, ok = checker.PublicKeysAgree(pair1.Public, pair2.Public)
			require.True(t, ok)
			assert.Equal(t, curve, got)
		})
	}
}

func TestChecker_DifferentCurvesDisagree(t *testing.T) {
	checker := quietChecker()
	r1, err := GenerateKeyPair(Secp256r1)
	require.NoError(t, err)
	k1, err := GenerateKeyPair(Secp256k1)
	require.NoError(t, err)

	got, ok := checker.PrivateKeysAgree(r1.Private, k1.Private)
	assert.False(t, ok)
	assert.Equal(t, CurveUnknown, got)

	got, ok = checker.PublicKeysAgree(r1.Public, k1.Public)
	assert.False(t, ok)
	assert.Equal(t, CurveUnknown, got)
}

func TestChecker_MalformedKeyIsNoAgreement(t *testing.T) {
	checker := quietChecker()
	pair, err := GenerateKeyPair(Secp384r1)
	require.NoError(t, err)

	for name, bad := range map[string]string{
		"empty":      "",
		"not base64": "@@@@",
		"no header":  "aGVsbG8gd29ybGQ=",
	} {
		t.Run(name, func(t *testing.T) {
			_, ok := checker.PublicKeysAgree(pair.Public, bad)
			assert.False(t, ok)
			_, ok = checker.PrivateKeysAgree(bad, pair.Private)
			assert.False(t, ok)
		})
	}
}
