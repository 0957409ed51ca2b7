package pactsign

import (
	"github.com/sirupsen/logrus"
)

// Checker confirms that two parties' keys were generated on the same named
// curve. It never returns an error: a key that fails identification is
// observationally the same as a curve mismatch, and both degrade to "no
// agreement". Failed lookups are logged at debug level for diagnostics.
type Checker struct {
	ident *Identifier
	log   *logrus.Logger
}

// NewChecker creates a checker over the given identifier.
func NewChecker(ident *Identifier) *Checker {
	return &Checker{ident: ident, log: logrus.New()}
}

// WithLogger replaces the diagnostic logger.
func (c *Checker) WithLogger(log *logrus.Logger) *Checker {
	c.log = log
	return c
}

// PrivateKeysAgree reports whether two base64 PKCS#8 private keys are on
// the same curve, and which one.
func (c *Checker) PrivateKeysAgree(key1, key2 string) (Curve, bool) {
	return c.agree("private", key1, key2)
}

// PublicKeysAgree reports whether two base64 SubjectPublicKeyInfo public
// keys are on the same curve, and which one.
func (c *Checker) PublicKeysAgree(key1, key2 string) (Curve, bool) {
	return c.agree("public", key1, key2)
}

func (c *Checker) agree(kind, key1, key2 string) (Curve, bool) {
	curve1, err := c.ident.IdentifyCurve(key1)
	if err != nil {
		c.log.WithFields(logrus.Fields{"kind": kind, "key": 1}).WithError(err).Debug("curve identification failed")
		return CurveUnknown, false
	}
	curve2, err := c.ident.IdentifyCurve(key2)
	if err != nil {
		c.log.WithFields(logrus.Fields{"kind": kind, "key": 2}).WithError(err).Debug("curve identification failed")
		return CurveUnknown, false
	}
	if curve1 != curve2 {
		c.log.WithFields(logrus.Fields{
			"kind":   kind,
			"curve1": curve1.String(),
			"curve2": curve2.String(),
		}).Debug("curve mismatch")
		return CurveUnknown, false
	}
	return curve1, true
}
