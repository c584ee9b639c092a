// Package persist provides the ledger.Store implementations.
//
// The ledger is persisted as one logical record keyed by ledger.RecordKey,
// serialized as a JSON array of entries. Three backends exist:
//
//   - file: a JSON file on local disk (the default; mirrors the browser
//     localStorage record the tool originally relied on)
//   - object: a JSON object in an S3-compatible bucket via the storage client
//   - db: a ledger_entries table in MySQL via GORM, replaced wholesale on save
//
// Open selects the backend from the persist.driver configuration value.
package persist
