// Copyright (c) 2026 Digitcipher Team
// Digitcipher - six-digit code cipher
// This source code is licensed under the MIT license found in the LICENSE file.

package cipher

// encodeShift[v] is (v + Shift) mod 10.
var encodeShift = [10]uint8{7, 8, 9, 0, 1, 2, 3, 4, 5, 6}

// decodeShift[v] is (v - Shift) mod 10, always in [0,9].
var decodeShift = [10]uint8{3, 4, 5, 6, 7, 8, 9, 0, 1, 2}

// permutation[i] is the source position of output position i.
// Pairs (0,2), (1,3) and (4,5) swap, so the table is its own inverse.
var permutation = [Length]int{2, 3, 0, 1, 5, 4}

// Permute applies the position swap alone.
func (d Digits) Permute() Digits {
	var out Digits
	for i, src := range permutation {
		out[i] = d[src]
	}
	return out
}

// Encode shifts every digit by Shift and then permutes positions.
func (d Digits) Encode() Digits {
	var shifted Digits
	for i, v := range d {
		shifted[i] = encodeShift[v]
	}
	return shifted.Permute()
}

// Decode is the inverse of Encode: it permutes first and then unshifts.
func (d Digits) Decode() Digits {
	unshifted := d.Permute()
	for i, v := range unshifted {
		unshifted[i] = decodeShift[v]
	}
	return unshifted
}

// Encode transforms a code that already passed Validate.
// The result for any other input is unspecified.
func Encode(code string) string {
	return fromString(code).Encode().String()
}

// Decode reverses Encode for a code that already passed Validate.
// The result for any other input is unspecified.
func Decode(code string) string {
	return fromString(code).Decode().String()
}
