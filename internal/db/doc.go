// Package db persists the conversion history.
//
// A single bun-backed Store serves SQLite (modernc.org/sqlite, the default),
// PostgreSQL (pgx) and MySQL. NewStoreFromDSN opens the connection, applies
// the embedded migrations for the chosen engine and returns the Store.
//
// Testing notes
//   - Prefer NewStoreFromDSN("sqlite", "file:<name>?mode=memory&cache=shared")
//     in tests that need real DB semantics and migrations.
//   - Callers that only need to record entries should depend on a narrower
//     interface of their own rather than on Store.
package db
