// Copyright (c) 2026 Digitcipher Team
// Digitcipher - six-digit code cipher
// This source code is licensed under the MIT license found in the LICENSE file.

// Package cipher implements the six-digit code transform and the validation
// contract that guards it.
//
// A code is exactly six ASCII decimal digits. Encoding adds 7 to every digit
// modulo 10 and then swaps positions 0<->2, 1<->3 and 4<->5. Decoding undoes
// the swap (it is its own inverse) and subtracts 7 modulo 10.
//
// The transform is a fixed, keyless permutation of the code space. It is an
// obfuscation, not encryption.
//
// Validate is the only place input legality is checked. Encode and Decode
// assume their argument already passed Validate; callers that cannot
// guarantee this should go through ParseDigits or internal/core.
//
// Everything in this package is pure and safe for concurrent use.
package cipher
