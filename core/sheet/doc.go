// Package sheet is the spreadsheet boundary of the service, built on excelize.
//
// It parses operator-supplied expected-quantity workbooks into plain rows for
// the reconcile engine, and serializes ledger snapshots and deficit reports
// back into downloadable xlsx workbooks. Only the first sheet of an uploaded
// file is read; the header row is located by case-insensitive substring match
// on the column labels.
//
// Empty exports and unrecognizable headers are reported with typed errors
// (ErrEmptyExport, *MissingColumnError) so callers can surface them as notices
// instead of failures.
package sheet
