// Package inventory implements the inventory counting and reconciliation feature.
//
// It exposes the ledger, the entry coordinator and the spreadsheet import/export
// over HTTP, wiring the core packages together:
//  1. Ledger (core/ledger): the aggregated count table, persisted on every mutation.
//  2. Intake (core/intake): buffered entry with manual and auto (debounced) commit modes.
//  3. Reconcile (core/reconcile): comparison of an imported expected-quantity sheet
//     against the counted ledger.
//  4. Sheet (core/sheet): xlsx parsing and workbook generation.
//
// # Components
//
//   - Service: Orchestrates ledger mutations, intake buffering and reconciliation.
//   - Handler: Exposes the HTTP endpoints and translates domain errors to statuses.
//   - Loader: Registers the feature with the application.
//
// # HTTP Endpoints
//
//   - POST   /ledger               : Commit a counted quantity for a barcode.
//   - GET    /ledger               : Current ledger snapshot.
//   - DELETE /ledger/:id           : Remove a single entry.
//   - DELETE /ledger?confirm=true  : Clear the whole ledger.
//   - PUT    /intake/mode          : Switch between manual and auto entry.
//   - POST   /intake/buffer        : Update the barcode/quantity buffers.
//   - POST   /intake/submit        : Commit the current buffers (manual path).
//   - POST   /reconcile            : Upload an expected-quantity xlsx, get comparison rows.
//   - POST   /reconcile/export     : Upload an expected-quantity xlsx, download the deficit workbook.
//   - GET    /ledger/export        : Download the ledger workbook.
package inventory
