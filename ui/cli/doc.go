// Copyright (c) 2026 Digitcipher Team
// Digitcipher - six-digit code cipher
// This source code is licensed under the MIT license found in the LICENSE file.
//
// Package cli implements the command-line interface for digitcipher using
// Cobra. It loads configuration, wires the history store and the converter,
// and delegates all conversion logic to internal/core.
package cli
