// Copyright (c) 2026 Digitcipher Team
// Digitcipher - six-digit code cipher
// This source code is licensed under the MIT license found in the LICENSE file.

package cipher

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// Reason identifies why an input failed validation.
type Reason int

const (
	// ReasonNone is reported for valid input.
	ReasonNone Reason = iota
	// ReasonEmpty means the input had zero length.
	ReasonEmpty
	// ReasonWrongLength means the input was not exactly Length characters.
	ReasonWrongLength
	// ReasonNonDigit means at least one character was outside '0'-'9'.
	ReasonNonDigit
)

// Sentinel errors matched by errors.Is against a *ValidationError.
var (
	ErrEmpty       = errors.New("input is empty")
	ErrWrongLength = fmt.Errorf("input must be exactly %d digits", Length)
	ErrNonDigit    = errors.New("input contains non-digit characters")
)

// String returns a stable identifier for r, suitable for logs and output.
func (r Reason) String() string {
	switch r {
	case ReasonNone:
		return "none"
	case ReasonEmpty:
		return "empty"
	case ReasonWrongLength:
		return "wrong_length"
	case ReasonNonDigit:
		return "non_digit"
	default:
		return fmt.Sprintf("reason(%d)", int(r))
	}
}

// MessageID returns the i18n message id carrying the user-facing text for r.
func (r Reason) MessageID() string {
	return "validation." + r.String()
}

func (r Reason) sentinel() error {
	switch r {
	case ReasonEmpty:
		return ErrEmpty
	case ReasonWrongLength:
		return ErrWrongLength
	case ReasonNonDigit:
		return ErrNonDigit
	}
	return nil
}

// ValidationError reports the first validation rule an input violated.
type ValidationError struct {
	Reason Reason
	Input  string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid code %q: %v", e.Input, e.Reason.sentinel())
}

// Is lets errors.Is match the reason sentinels.
func (e *ValidationError) Is(target error) bool {
	return target != nil && target == e.Reason.sentinel()
}

// Result is the outcome of Validate. The zero value is a valid result.
type Result struct {
	reason Reason
	input  string
}

// Valid reports whether the input passed every rule.
func (r Result) Valid() bool { return r.reason == ReasonNone }

// Reason returns the violated rule, or ReasonNone.
func (r Result) Reason() Reason { return r.reason }

// Err returns nil for a valid result and a *ValidationError otherwise.
func (r Result) Err() error {
	if r.Valid() {
		return nil
	}
	return &ValidationError{Reason: r.reason, Input: r.input}
}

// Validate checks that input is exactly Length ASCII decimal digits.
//
// Rules run in a fixed order and the first violation wins: empty, then
// length (counted in characters, not bytes), then digit content. Only '0'
// through '9' count as digits; numerals from other scripts are rejected as
// ReasonNonDigit. Validate does not trim whitespace.
func Validate(input string) Result {
	if input == "" {
		return Result{reason: ReasonEmpty, input: input}
	}
	if utf8.RuneCountInString(input) != Length {
		return Result{reason: ReasonWrongLength, input: input}
	}
	for i := 0; i < len(input); i++ {
		if !isASCIIDigit(input[i]) {
			return Result{reason: ReasonNonDigit, input: input}
		}
	}
	return Result{}
}

func isASCIIDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
