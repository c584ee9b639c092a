// Package reconcile diffs an imported expected-quantity table against the
// counted ledger.
//
// The engine builds the union of barcodes present in either source and
// classifies every barcode:
//
//   - match: present in both with equal quantities
//   - mismatch: present in both with differing quantities
//   - missing: expected but not yet counted
//   - extra: counted but not expected
//
// Compare is a pure function over its inputs; it never mutates the imported
// rows or the ledger snapshot, and its output is a one-shot value that is not
// wired to later ledger changes. Output order is deterministic: imported rows
// in first-appearance order, then ledger-only barcodes in ledger order.
//
// Deficits filters a comparison down to true shortfalls (missing rows and
// mismatches where the counted quantity is below the expected one), which is
// what the deficit export ships.
package reconcile
