// Copyright (c) 2026 Digitcipher Team
// Digitcipher - six-digit code cipher
// This source code is licensed under the MIT license found in the LICENSE file.

package db

import "testing"

// newTestStore opens an in-memory SQLite store private to the calling test.
func newTestStore(t *testing.T) *BunStore {
	t.Helper()
	dsn := "file:" + t.Name() + "?mode=memory&cache=shared"
	s, err := NewStoreFromDSN("sqlite", dsn)
	if err != nil {
		t.Fatalf("NewStoreFromDSN failed: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	bs, ok := s.(*BunStore)
	if !ok {
		t.Fatalf("expected *BunStore, got %T", s)
	}
	return bs
}
