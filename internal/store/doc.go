// Package store provides the key/value persistence backends the account
// store mirrors its list into.
//
// Every backend implements domain.KVStore and is safe for concurrent use via
// internal locking. The backends are:
//   - MemoryKV: process memory only, used by tests and the "memory" backend
//   - FileKV: one file per key under a directory, written atomically
//   - SQLiteKV: a single kv table in a SQLite database
package store
