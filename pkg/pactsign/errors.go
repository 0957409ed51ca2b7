package pactsign

import "errors"

var (
	// ErrInvalidEncoding indicates input that is not valid base64 or does
	// not decode as the expected key structure.
	ErrInvalidEncoding = errors.New("pactsign: invalid encoding")

	// ErrCurveNotFound indicates that no registry header matches the
	// encoded key.
	ErrCurveNotFound = errors.New("pactsign: curve not found")

	// ErrKeyImport indicates bytes that decode but are not a valid key for
	// the asserted curve and key type.
	ErrKeyImport = errors.New("pactsign: key import failed")
)
