package pactsign

import (
	"fmt"
	"strings"
)

// Party names one of the two signers of a contract.
type Party int

const (
	PartyFirst  Party = 1
	PartySecond Party = 2
)

// ContractState is the derived lifecycle state of a contract.
type ContractState int

const (
	StateCreated ContractState = iota
	StatePartiallySigned
	StateFullySigned
	StateExecutedSuccess
	StateExecutedFailure
)

func (s ContractState) String() string {
	switch s {
	case StateCreated:
		return "created"
	case StatePartiallySigned:
		return "partially signed"
	case StateFullySigned:
		return "fully signed"
	case StateExecutedSuccess:
		return "executed (success)"
	case StateExecutedFailure:
		return "executed (failure)"
	default:
		return "invalid"
	}
}

// Verdict texts. The failure text is deliberately a single combined
// message: which field was missing or which signature failed is not
// disclosed through this channel.
const (
	InfoExecuted    = "contract executed: both signatures verified"
	InfoNotExecuted = "contract not executed: signing conditions not met"
)

// Contract is a two-party agreement over a single message. The message,
// public keys and curve are frozen at construction, so a message swap after
// signing is unrepresentable; only the signature slots and the verdict
// message ever change. A Contract is owned by a single logical thread of
// control and is not internally synchronized.
type Contract struct {
	message    string
	curve      Curve
	publicKey1 string
	publicKey2 string

	signature1 string
	signature2 string

	executed    bool
	succeeded   bool
	infoMessage string
}

// NewContract creates a contract in the Created state with both signature
// slots empty.
func NewContract(message, publicKey1, publicKey2 string, curve Curve) *Contract {
	return &Contract{
		message:    message,
		curve:      curve,
		publicKey1: publicKey1,
		publicKey2: publicKey2,
	}
}

// Sign records the named party's base64 signature over the contract
// message. Re-signing replaces the previous signature. Any recorded
// verdict is discarded, since it no longer describes the current fields.
func (c *Contract) Sign(party Party, signature string) error {
	switch party {
	case PartyFirst:
		c.signature1 = signature
	case PartySecond:
		c.signature2 = signature
	default:
		return fmt.Errorf("unknown party %d", party)
	}
	c.executed = false
	c.succeeded = false
	c.infoMessage = ""
	return nil
}

// State derives the contract's lifecycle state from its fields.
func (c *Contract) State() ContractState {
	if c.executed {
		if c.succeeded {
			return StateExecutedSuccess
		}
		return StateExecutedFailure
	}
	signed := 0
	if !isBlank(c.signature1) {
		signed++
	}
	if !isBlank(c.signature2) {
		signed++
	}
	switch signed {
	case 2:
		return StateFullySigned
	case 1:
		return StatePartiallySigned
	default:
		return StateCreated
	}
}

// ExecuteIfConditionsMet evaluates the contract and records the verdict in
// the info message, which it returns. Success requires every field to be
// non-blank and both signatures to verify against their party's public key
// under the stored curve; anything else is the combined failure verdict.
//
// Evaluation is idempotent: re-running against unchanged fields always
// yields the same verdict, and the info message is the only field mutated.
func (c *Contract) ExecuteIfConditionsMet() string {
	c.executed = true
	c.succeeded = c.conditionsMet()
	if c.succeeded {
		c.infoMessage = InfoExecuted
	} else {
		c.infoMessage = InfoNotExecuted
	}
	return c.infoMessage
}

func (c *Contract) conditionsMet() bool {
	if isBlank(c.message) || c.curve == CurveUnknown ||
		isBlank(c.publicKey1) || isBlank(c.publicKey2) ||
		isBlank(c.signature1) || isBlank(c.signature2) {
		return false
	}
	ok1, err := Verify(c.message, c.signature1, c.publicKey1, c.curve)
	if err != nil || !ok1 {
		return false
	}
	ok2, err := Verify(c.message, c.signature2, c.publicKey2, c.curve)
	if err != nil || !ok2 {
		return false
	}
	return true
}

// InfoMessage returns the verdict recorded by the last execution attempt,
// or the empty string if the contract has not been evaluated.
func (c *Contract) InfoMessage() string { return c.infoMessage }

// Message returns the contract message.
func (c *Contract) Message() string { return c.message }

// Curve returns the contract curve.
func (c *Contract) Curve() Curve { return c.curve }

// PublicKey returns the named party's public key.
func (c *Contract) PublicKey(party Party) string {
	if party == PartySecond {
		return c.publicKey2
	}
	return c.publicKey1
}

// Signature returns the named party's recorded signature, if any.
func (c *Contract) Signature(party Party) string {
	if party == PartySecond {
		return c.signature2
	}
	return c.signature1
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
