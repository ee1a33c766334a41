// Package store provides storage for scoreboard matches.
//
// Store is the capability the engine depends on: Save, FindByID,
// FindByTeams and ListAll. Two implementations exist:
//   - MemoryStore: a mutex-guarded map, the default for every driver
//   - SQLiteStore: SQLite-backed, in-memory (":memory:") or file-based
//
// # Value Semantics
//
// Matches cross the store boundary by value. Save keeps a copy of the
// match; lookups return copies. Mutating a returned match never changes
// stored state until it is saved again.
//
// # Integrity Rules
//
// The store enforces data integrity only (non-empty IDs, non-negative
// scores in SQLite). Domain rules such as "one live match per team" live
// in the engine.
//
// # Database Configuration
//
//   - WAL mode: Concurrent reads during writes (file databases)
//   - synchronous=NORMAL: Balance durability/performance
//   - busy_timeout=5000: Wait for locks up to 5 seconds
//   - Single connection: keeps ":memory:" databases alive and avoids SQLITE_BUSY
package store
