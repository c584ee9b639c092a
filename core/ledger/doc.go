// Package ledger implements the in-session inventory count table.
//
// The Ledger aggregates counted quantities by barcode: committing a quantity for
// a barcode that already has an entry increases that entry in place, while a new
// barcode appends a fresh entry. Insertion order of first appearance is preserved,
// so operators see the list in the order they scanned it.
//
// # Persistence
//
// Every successful mutation (Commit, Remove, Clear) pushes the full current state
// to the configured Store. Persistence failures are logged and never surfaced to
// the caller; the in-memory ledger remains the source of truth for the session.
// At construction the ledger rehydrates from the Store, treating a missing or
// unreadable record as an empty ledger.
//
// # Validation
//
// Commit trims the barcode and rejects empty barcodes and non-positive deltas
// with an *InvalidInputError before any state is touched, so the ledger is never
// left half-applied.
package ledger
