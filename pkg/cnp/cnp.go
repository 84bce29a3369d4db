// Package cnp validates Romanian personal numeric codes (CNP) and extracts
// the demographics embedded in them.
//
// A CNP is a 13-digit identifier: digit 1 encodes sex and birth century,
// digits 2-7 the birth date (YYMMDD), digits 8-9 the issuing county or
// Bucharest sector, digits 10-12 a sequence number, and digit 13 a control
// checksum over the first 12.
//
// Every function in this package is pure: no I/O, no shared state, no
// panics on hostile input. Failures are returned as data (Outcome/Result),
// never as Go errors, so the package stays safe to call per keystroke on
// arbitrary untrusted strings.
package cnp

import "time"

// Kind classifies a validation failure.
type Kind string

const (
	KindNotAValue        Kind = "not_a_value"
	KindWrongLength      Kind = "wrong_length"
	KindNonDigit         Kind = "non_digit"
	KindChecksumMismatch Kind = "checksum_mismatch"
	KindImpossibleDate   Kind = "impossible_date"
)

// Sex is the demographic class encoded by the leading digit.
type Sex string

const (
	SexMale    Sex = "male"
	SexFemale  Sex = "female"
	SexForeign Sex = "foreign"
)

// Outcome is the result of a validation stage. Invariant: Valid implies the
// sanitized input is exactly 13 decimal digits (and, for the checksum stage,
// that the control digit matches).
type Outcome struct {
	Valid   bool   `json:"valid"`
	Kind    Kind   `json:"kind,omitempty"`
	Message string `json:"message,omitempty"`
}

// Result is the composite analysis of one input. The decoded fields are
// either all set (Valid) or all zero (any failure); partial decoding is
// never produced.
type Result struct {
	Valid       bool      `json:"valid"`
	Kind        Kind      `json:"kind,omitempty"`
	Message     string    `json:"message,omitempty"`
	BirthDate   time.Time `json:"birth_date,omitzero"`
	Sex         Sex       `json:"sex,omitempty"`
	County      string    `json:"county,omitempty"`
	Century     int       `json:"century,omitempty"`
	Description string    `json:"description,omitempty"`
}

// End-user messages. Short, display-ready, no internal detail.
const (
	msgNotAValue   = "CNP is required"
	msgWrongLength = "must have exactly 13 digits"
	msgNonDigit    = "must contain only digits"
	msgChecksum    = "control digit does not match"
	msgBadDate     = "encodes an impossible birth date"
)

func failure(kind Kind, message string) Outcome {
	return Outcome{Valid: false, Kind: kind, Message: message}
}
