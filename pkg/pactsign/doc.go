// Package pactsign implements a two-party dual-signature contract core:
// a message counts as executed only when both parties have produced a valid
// ECDSA signature over it on a mutually agreed named curve.
//
// The package identifies which curve an encoded key belongs to by sniffing
// the fixed prefix of its base64 PKCS#8 (private) or SubjectPublicKeyInfo
// (public) encoding, enforces that both parties' keys are on the same curve
// before a contract is formed, and gates contract execution on both
// signatures verifying.
//
// # Quick Start
//
//	import "github.com/pactsign/pactsign/pkg/pactsign"
//
//	pair1, _ := pactsign.GenerateKeyPair(pactsign.Secp256r1)
//	pair2, _ := pactsign.GenerateKeyPair(pactsign.Secp256r1)
//
//	checker := pactsign.NewChecker(pactsign.NewIdentifier(pactsign.DefaultRegistry()))
//	curve, ok := checker.PublicKeysAgree(pair1.Public, pair2.Public)
//	if !ok {
//	    log.Fatal("keys are not on the same curve")
//	}
//
//	contract := pactsign.NewContract("approve", pair1.Public, pair2.Public, curve)
//	sig1, _ := pactsign.Sign("approve", pair1.Private, curve)
//	sig2, _ := pactsign.Sign("approve", pair2.Private, curve)
//	contract.Sign(pactsign.PartyFirst, sig1)
//	contract.Sign(pactsign.PartySecond, sig2)
//
//	fmt.Println(contract.ExecuteIfConditionsMet())
//
// # Customization
//
// The identifier takes its registry by injection, so tests can focus on a
// reduced curve set:
//
//	reg := pactsign.NewRegistry(pactsign.DefaultRegistry().Entries()[:1])
//	ident := pactsign.NewIdentifier(reg)
//
// The agreement checker accepts a logrus logger for diagnostics:
//
//	checker := pactsign.NewChecker(ident).WithLogger(logger)
//
// # Errors
//
// Malformed input surfaces as ErrInvalidEncoding, ErrCurveNotFound or
// ErrKeyImport. A signature that simply does not verify is not an error:
// Verify returns false, and an evaluated contract reports the combined
// failure verdict without disclosing which check failed.
package pactsign
