// Copyright (c) 2026 Digitcipher Team
// Digitcipher - six-digit code cipher
// This source code is licensed under the MIT license found in the LICENSE file.

package cipher

const (
	// Length is the number of digits in a code.
	Length = 6
	// Shift is the per-digit offset added on encode.
	Shift = 7
)

// Digits is a code as six digit values in [0,9].
type Digits [Length]uint8

// ParseDigits validates s and converts it to Digits.
// The returned error is a *ValidationError.
func ParseDigits(s string) (Digits, error) {
	if err := Validate(s).Err(); err != nil {
		return Digits{}, err
	}
	return fromString(s), nil
}

// MustParseDigits is like ParseDigits but panics on invalid input.
func MustParseDigits(s string) Digits {
	d, err := ParseDigits(s)
	if err != nil {
		panic(err)
	}
	return d
}

// fromString converts a pre-validated code without checking it.
func fromString(s string) Digits {
	var d Digits
	for i := range d {
		d[i] = s[i] - '0'
	}
	return d
}

// String renders d as exactly Length ASCII digits.
func (d Digits) String() string {
	var b [Length]byte
	for i, v := range d {
		b[i] = '0' + v
	}
	return string(b[:])
}
