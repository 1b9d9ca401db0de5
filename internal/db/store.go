// Copyright (c) 2026 Digitcipher Team
// Digitcipher - six-digit code cipher
// This source code is licensed under the MIT license found in the LICENSE file.

package db

import (
	"context"
	"time"
)

// HistoryEntry is one recorded conversion.
type HistoryEntry struct {
	ID        int64     `json:"id"`
	Direction string    `json:"direction"`
	Input     string    `json:"input"`
	Output    string    `json:"output"`
	CreatedAt time.Time `json:"created_at"`
}

// Store is the conversion history backend.
type Store interface {
	// Record appends e. A zero CreatedAt is replaced by the current time.
	Record(ctx context.Context, e HistoryEntry) error
	// List returns up to limit entries, newest first. limit <= 0 means all.
	List(ctx context.Context, limit int) ([]HistoryEntry, error)
	// Clear deletes every entry and reports how many were removed.
	Clear(ctx context.Context) (int64, error)
	// Import inserts entries, skipping ones already present, and reports
	// how many were added. IDs in entries are ignored.
	Import(ctx context.Context, entries []HistoryEntry) (int, error)
	// Close releases the underlying connection pool.
	Close() error
}
