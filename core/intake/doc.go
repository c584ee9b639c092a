// Package intake coordinates the two-field (barcode, quantity) entry buffer and
// decides when a pending entry is committed to the ledger.
//
// Two operator-selectable modes exist:
//
//   - manual: a commit happens only on an explicit Submit call.
//   - auto: once both buffers hold valid values, a cancellable debounce timer is
//     armed; if no further edit arrives within the window the commit fires with
//     the buffer values at that moment. Every edit cancels and re-arms the
//     timer, so a rapid scan sequence produces at most one commit.
//
// After a commit the buffers reset to empty, unless an edit landed while the
// commit was in flight, and an optional callback signals
// the presentation layer to return focus to the barcode field. The coordinator
// remembers the last committed (barcode, quantity) signature and suppresses a
// repeat auto-commit of the identical pair, which guards against unrelated
// refreshes replaying a stale timer.
package intake
