// Copyright (c) 2026 Digitcipher Team
// Digitcipher - six-digit code cipher
// This source code is licensed under the MIT license found in the LICENSE file.

// Package core runs the conversion flow shared by every frontend: trim the
// raw input, validate it, transform it and optionally record the result.
// The interfaces here describe the side-effect boundaries it depends on.
package core

import (
	"context"

	"github.com/toeirei/digitcipher/internal/db"
)

// HistoryRecorder receives every successful conversion.
type HistoryRecorder interface {
	Record(ctx context.Context, e db.HistoryEntry) error
}

// HistoryStore is the subset of db.Store needed for backup and restore.
type HistoryStore interface {
	List(ctx context.Context, limit int) ([]db.HistoryEntry, error)
	Import(ctx context.Context, entries []db.HistoryEntry) (int, error)
}
