package pactsign

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultIdentifier() *Identifier {
	return NewIdentifier(DefaultRegistry())
}

func TestIdentifyCurve_RoundTripAllCurves(t *testing.T) {
	ident := defaultIdentifier()
	for _, curve := range Curves() {
		t.Run(curve.String(), func(t *testing.T) {
			pair, err := GenerateKeyPair(curve)
			require.NoError(t, err)

			got, err := ident.IdentifyCurve(pair.Private)
			require.NoError(t, err)
			assert.Equal(t, curve, got, "private key must re-identify")

			got, err = ident.IdentifyCurve(pair.Public)
			require.NoError(t, err)
			assert.Equal(t, curve, got, "public key must re-identify")
		})
	}
}

func TestIdentifyCurve_NormalizesEncodingVariance(t *testing.T) {
	ident := defaultIdentifier()
	pair, err := GenerateKeyPair(Secp256r1)
	require.NoError(t, err)

	t.Run("surrounding whitespace", func(t *testing.T) {
		got, err := ident.IdentifyCurve("  " + pair.Public + "\n")
		require.NoError(t, err)
		assert.Equal(t, Secp256r1, got)
	})

	t.Run("stripped padding", func(t *testing.T) {
		got, err := ident.IdentifyCurve(strings.TrimRight(pair.Public, "="))
		require.NoError(t, err)
		assert.Equal(t, Secp256r1, got)
	})
}

func TestIdentifyCurve_InvalidEncoding(t *testing.T) {
	ident := defaultIdentifier()
	for name, input := range map[string]string{
		"empty":       "",
		"blank":       "   \t\n",
		"not base64":  "not!!valid@@base64##",
		"lone symbol": "%",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := ident.IdentifyCurve(input)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidEncoding)
			assert.NotErrorIs(t, err, ErrCurveNotFound)
		})
	}
}

func TestIdentifyCurve_NoMatchingHeader(t *testing.T) {
	ident := defaultIdentifier()
	payload := base64.StdEncoding.EncodeToString([]byte("definitely not a DER key structure"))

	_, err := ident.IdentifyCurve(payload)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCurveNotFound)
}

func TestIdentifyCurve_ReducedRegistry(t *testing.T) {
	var only []RegistryEntry
	for _, e := range DefaultRegistry().Entries() {
		if e.Curve == Secp256r1 {
			only = append(only, e)
		}
	}
	ident := NewIdentifier(NewRegistry(only))

	r1, err := GenerateKeyPair(Secp256r1)
	require.NoError(t, err)
	k1, err := GenerateKeyPair(Secp256k1)
	require.NoError(t, err)

	got, err := ident.IdentifyCurve(r1.Public)
	require.NoError(t, err)
	assert.Equal(t, Secp256r1, got)

	_, err = ident.IdentifyCurve(k1.Public)
	assert.ErrorIs(t, err, ErrCurveNotFound, "curve outside the injected registry must not match")
}
