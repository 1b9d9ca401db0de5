// Copyright (c) 2026 Digitcipher Team
// Digitcipher - six-digit code cipher
// This source code is licensed under the MIT license found in the LICENSE file.

package core

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/toeirei/digitcipher/internal/cipher"
	"github.com/toeirei/digitcipher/internal/db"
	"github.com/toeirei/digitcipher/internal/logging"
)

// Direction selects encode or decode.
type Direction int

const (
	DirectionEncode Direction = iota
	DirectionDecode
)

// String returns "encode" or "decode".
func (d Direction) String() string {
	switch d {
	case DirectionEncode:
		return "encode"
	case DirectionDecode:
		return "decode"
	default:
		return fmt.Sprintf("direction(%d)", int(d))
	}
}

// MessageID is the i18n id of the direction's display name.
func (d Direction) MessageID() string { return "direction." + d.String() }

// ParseDirection is the inverse of Direction.String.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "encode":
		return DirectionEncode, nil
	case "decode":
		return DirectionDecode, nil
	default:
		return 0, fmt.Errorf("unknown direction %q", s)
	}
}

func (d Direction) apply(code string) string {
	if d == DirectionDecode {
		return cipher.Decode(code)
	}
	return cipher.Encode(code)
}

// Conversion is a successful conversion.
type Conversion struct {
	Direction Direction
	Input     string // trimmed
	Output    string
}

// Converter is safe for concurrent use.
type Converter struct {
	recorder HistoryRecorder
	now      func() time.Time
}

// NewConverter returns a Converter that records into recorder, which may be
// nil to disable history.
func NewConverter(recorder HistoryRecorder) *Converter {
	return &Converter{recorder: recorder, now: time.Now}
}

// Convert trims raw, validates it and applies dir. Invalid input yields a
// *cipher.ValidationError. A failure to record history is logged and does
// not fail the conversion.
func (c *Converter) Convert(ctx context.Context, dir Direction, raw string) (Conversion, error) {
	input := strings.TrimSpace(raw)
	if err := cipher.Validate(input).Err(); err != nil {
		logging.Debugf("rejected %s input: %v", dir, err)
		return Conversion{}, err
	}

	conv := Conversion{Direction: dir, Input: input, Output: dir.apply(input)}

	if c.recorder != nil {
		entry := db.HistoryEntry{
			Direction: dir.String(),
			Input:     conv.Input,
			Output:    conv.Output,
			CreatedAt: c.now(),
		}
		if err := c.recorder.Record(ctx, entry); err != nil {
			logging.Warnf("could not record %s of %s: %v", dir, conv.Input, err)
		}
	}
	return conv, nil
}

// Encode is Convert with DirectionEncode.
func (c *Converter) Encode(ctx context.Context, raw string) (Conversion, error) {
	return c.Convert(ctx, DirectionEncode, raw)
}

// Decode is Convert with DirectionDecode.
func (c *Converter) Decode(ctx context.Context, raw string) (Conversion, error) {
	return c.Convert(ctx, DirectionDecode, raw)
}

// BatchResult is the outcome for one input of ConvertBatch.
type BatchResult struct {
	Raw        string
	Conversion Conversion
	Err        error
}

// Failed reports whether the input was rejected.
func (r BatchResult) Failed() bool { return r.Err != nil }

// ConvertBatch converts every input in order. Invalid inputs do not stop the
// batch; once ctx is done the remaining inputs carry the context error.
func (c *Converter) ConvertBatch(ctx context.Context, dir Direction, inputs []string) []BatchResult {
	out := make([]BatchResult, len(inputs))
	for i, raw := range inputs {
		out[i].Raw = raw
		if err := ctx.Err(); err != nil {
			out[i].Err = err
			continue
		}
		out[i].Conversion, out[i].Err = c.Convert(ctx, dir, raw)
	}
	return out
}
