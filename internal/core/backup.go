// Copyright (c) 2026 Digitcipher Team
// Digitcipher - six-digit code cipher
// This source code is licensed under the MIT license found in the LICENSE file.

package core

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/klauspost/compress/zstd"

	"github.com/toeirei/digitcipher/internal/cipher"
	"github.com/toeirei/digitcipher/internal/db"
)

const backupVersion = 1

// BackupData is the serialized form of the conversion history.
type BackupData struct {
	Version   int               `json:"version"`
	CreatedAt time.Time         `json:"created_at"`
	Entries   []db.HistoryEntry `json:"entries"`
}

// Backup writes the whole history from st to w as zstd-compressed JSON and
// returns the number of entries written.
func Backup(ctx context.Context, st HistoryStore, w io.Writer) (int, error) {
	entries, err := st.List(ctx, 0)
	if err != nil {
		return 0, fmt.Errorf("list history: %w", err)
	}
	if entries == nil {
		entries = []db.HistoryEntry{}
	}
	data := BackupData{Version: backupVersion, CreatedAt: time.Now().UTC(), Entries: entries}

	zw, err := zstd.NewWriter(w)
	if err != nil {
		return 0, fmt.Errorf("create zstd writer: %w", err)
	}
	enc := json.NewEncoder(zw)
	enc.SetIndent("", "  ")
	if err := enc.Encode(&data); err != nil {
		_ = zw.Close()
		return 0, fmt.Errorf("encode backup: %w", err)
	}
	if err := zw.Close(); err != nil {
		return 0, fmt.Errorf("flush backup: %w", err)
	}
	return len(entries), nil
}

// Restore reads a backup written by Backup and merges it into st. Entries
// that already exist are skipped; the number added is returned.
func Restore(ctx context.Context, st HistoryStore, r io.Reader) (int, error) {
	zr, err := zstd.NewReader(r)
	if err != nil {
		return 0, fmt.Errorf("create zstd reader: %w", err)
	}
	defer zr.Close()

	var data BackupData
	if err := json.NewDecoder(zr).Decode(&data); err != nil {
		return 0, fmt.Errorf("decode backup: %w", err)
	}
	if data.Version != backupVersion {
		return 0, fmt.Errorf("unsupported backup version %d", data.Version)
	}
	if err := checkEntries(data.Entries); err != nil {
		return 0, err
	}
	return st.Import(ctx, data.Entries)
}

// checkEntries rejects the whole backup if any entry is not a conversion
// the cipher could have produced.
func checkEntries(entries []db.HistoryEntry) error {
	for i, e := range entries {
		dir, err := ParseDirection(e.Direction)
		if err != nil {
			return fmt.Errorf("backup entry %d: %w", i, err)
		}
		if err := cipher.Validate(e.Input).Err(); err != nil {
			return fmt.Errorf("backup entry %d: input %q: %w", i, e.Input, err)
		}
		if want := dir.apply(e.Input); e.Output != want {
			return fmt.Errorf("backup entry %d: output %q does not match %s of %q", i, e.Output, dir, e.Input)
		}
	}
	return nil
}
