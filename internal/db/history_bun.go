// Copyright (c) 2026 Digitcipher Team
// Digitcipher - six-digit code cipher
// This source code is licensed under the MIT license found in the LICENSE file.

package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect"
)

// historyModel maps the conversion_history table.
type historyModel struct {
	bun.BaseModel `bun:"table:conversion_history"`
	ID            int64     `bun:"id,pk,autoincrement"`
	Direction     string    `bun:"direction"`
	Input         string    `bun:"input"`
	Output        string    `bun:"output"`
	CreatedAt     time.Time `bun:"created_at"`
}

func (m historyModel) toEntry() HistoryEntry {
	return HistoryEntry{
		ID:        m.ID,
		Direction: m.Direction,
		Input:     m.Input,
		Output:    m.Output,
		CreatedAt: m.CreatedAt.UTC(),
	}
}

func newHistoryModel(e HistoryEntry) *historyModel {
	ts := e.CreatedAt
	if ts.IsZero() {
		ts = time.Now()
	}
	return &historyModel{
		Direction: e.Direction,
		Input:     e.Input,
		Output:    e.Output,
		// Microseconds are the finest precision every backend keeps.
		CreatedAt: ts.UTC().Truncate(time.Microsecond),
	}
}

// BunStore is the Store implementation shared by every supported engine.
type BunStore struct {
	bun *bun.DB
}

// BunDB exposes the underlying *bun.DB for maintenance and tests.
func (s *BunStore) BunDB() *bun.DB {
	return s.bun
}

// Record inserts e.
func (s *BunStore) Record(ctx context.Context, e HistoryEntry) error {
	if _, err := s.bun.NewInsert().Model(newHistoryModel(e)).Exec(ctx); err != nil {
		return MapDBError(err)
	}
	return nil
}

// List returns the newest entries first.
func (s *BunStore) List(ctx context.Context, limit int) ([]HistoryEntry, error) {
	var rows []historyModel
	q := s.bun.NewSelect().Model(&rows).OrderExpr("created_at DESC, id DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Scan(ctx); err != nil {
		return nil, err
	}
	out := make([]HistoryEntry, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.toEntry())
	}
	return out, nil
}

// Clear removes every entry.
func (s *BunStore) Clear(ctx context.Context) (int64, error) {
	// Bun refuses a DELETE without WHERE, so go through raw SQL.
	res, err := ExecRaw(ctx, s.bun, "DELETE FROM conversion_history")
	if err != nil {
		return 0, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	dbLogf("db: cleared %d history entries", n)
	return n, nil
}

// Import inserts entries within one transaction. Entries that collide with
// an existing (direction, input, created_at) row are skipped by the database
// itself, so a duplicate never aborts the transaction.
func (s *BunStore) Import(ctx context.Context, entries []HistoryEntry) (int, error) {
	added := 0
	err := s.bun.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		for _, e := range entries {
			ok, err := s.insertIgnoringDuplicate(ctx, tx, newHistoryModel(e))
			if err != nil {
				return fmt.Errorf("import entry %s %s: %w", e.Direction, e.Input, err)
			}
			if ok {
				added++
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return added, nil
}

// insertIgnoringDuplicate reports whether m was inserted.
func (s *BunStore) insertIgnoringDuplicate(ctx context.Context, tx bun.Tx, m *historyModel) (bool, error) {
	q := tx.NewInsert().Model(m).Returning("NULL")
	if s.bun.Dialect().Name() == dialect.MySQL {
		q = q.Ignore()
	} else {
		q = q.On("CONFLICT DO NOTHING")
	}
	res, err := q.Exec(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, MapDBError(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Close closes the connection pool.
func (s *BunStore) Close() error {
	return s.bun.Close()
}
